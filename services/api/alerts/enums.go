package alerts

import "fmt"

// Category says what kind of incident an alert flags. The set is
// closed: there is no catch-all variant, and unknown labels fail to
// parse.
type Category int

const (
	CategoryLeakSuspected Category = iota
	CategoryPressureDrop
	CategoryUnauthorizedUsage
	CategoryQualityAlert
)

func (c Category) String() string {
	switch c {
	case CategoryLeakSuspected:
		return "leak-suspected"
	case CategoryPressureDrop:
		return "pressure-drop"
	case CategoryUnauthorizedUsage:
		return "unauthorized-usage"
	case CategoryQualityAlert:
		return "quality-alert"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a wire label to its Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "leak-suspected":
		return CategoryLeakSuspected, nil
	case "pressure-drop":
		return CategoryPressureDrop, nil
	case "unauthorized-usage":
		return CategoryUnauthorizedUsage, nil
	case "quality-alert":
		return CategoryQualityAlert, nil
	}
	return 0, fmt.Errorf("alerts: unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Severity grades an alert's urgency. It is assigned at creation and
// never recomputed.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity maps a wire label to its Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	}
	return 0, fmt.Errorf("alerts: unknown severity %q", s)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Status is an alert's position in the triage workflow. The numeric
// order is the workflow order; transitions never move backwards.
type Status int

const (
	StatusOpen Status = iota
	StatusAcknowledged
	StatusDispatched
	StatusResolved
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusAcknowledged:
		return "acknowledged"
	case StatusDispatched:
		return "dispatched"
	case StatusResolved:
		return "resolved"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus maps a wire label to its Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "open":
		return StatusOpen, nil
	case "acknowledged":
		return StatusAcknowledged, nil
	case "dispatched":
		return StatusDispatched, nil
	case "resolved":
		return StatusResolved, nil
	}
	return 0, fmt.Errorf("alerts: unknown status %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
