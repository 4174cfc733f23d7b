package alerts

import "time"

// Seed returns the demo triage queue: three open alerts staggered over
// the last hour, anchored to now so the feed always looks fresh. All
// three sit in the troubled south-east district the generator produces.
func Seed(now time.Time) []Alert {
	mk := func(id string, cat Category, sev Severity, cellID, desc string, age time.Duration) Alert {
		ts := now.Add(-age)
		return Alert{
			ID:          id,
			Category:    cat,
			Severity:    sev,
			Status:      StatusOpen,
			CellID:      cellID,
			Description: desc,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}
	return []Alert{
		mk("ALT-101", CategoryLeakSuspected, SeverityHigh, "C4-6", "Sustained low pressure with flow anomaly on the eastern feeder", 42*time.Minute),
		mk("ALT-102", CategoryPressureDrop, SeverityMedium, "C4-4", "Pressure below safe band across the district feeder", 25*time.Minute),
		mk("ALT-103", CategoryQualityAlert, SeverityLow, "C4-5", "Turbidity spike reported by inline sensor", 9*time.Minute),
	}
}
