package usage

import "github.com/shopspring/decimal"

// Currency for billed amounts. Display data only; nothing charges it.
const Currency = "USD"

// ratePerKL is the flat demo tariff applied to every month.
var ratePerKL = decimal.NewFromFloat(3.85)

// Record is one calendar month of household consumption and what it
// billed at the demo tariff.
type Record struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	UsedKL   float64         `json:"used_kl"`
	Billed   decimal.Decimal `json:"billed"`
	Currency string          `json:"currency"`
}

// Seed returns the fixed 12-month consumption history shown in the
// portal. The curve is hand-picked to read like a real household year:
// flat through winter, peaking in July.
func Seed() []Record {
	months := []struct {
		month string
		label string
		kl    float64
	}{
		{"2024-09", "Sep 2024", 14.2},
		{"2024-10", "Oct 2024", 13.1},
		{"2024-11", "Nov 2024", 12.4},
		{"2024-12", "Dec 2024", 11.8},
		{"2025-01", "Jan 2025", 11.5},
		{"2025-02", "Feb 2025", 11.9},
		{"2025-03", "Mar 2025", 12.6},
		{"2025-04", "Apr 2025", 13.4},
		{"2025-05", "May 2025", 15.0},
		{"2025-06", "Jun 2025", 16.8},
		{"2025-07", "Jul 2025", 18.3},
		{"2025-08", "Aug 2025", 17.6},
	}
	out := make([]Record, 0, len(months))
	for _, m := range months {
		out = append(out, Record{
			Month:    m.month,
			Label:    m.label,
			UsedKL:   m.kl,
			Billed:   Bill(m.kl),
			Currency: Currency,
		})
	}
	return out
}

// Bill prices a monthly volume at the flat tariff, rounded to cents.
func Bill(usedKL float64) decimal.Decimal {
	return ratePerKL.Mul(decimal.NewFromFloat(usedKL)).Round(2)
}

// Totals sums the year for the portal summary.
func Totals(records []Record) (usedKL float64, billed decimal.Decimal) {
	for _, r := range records {
		usedKL += r.UsedKL
		billed = billed.Add(r.Billed)
	}
	return usedKL, billed
}
