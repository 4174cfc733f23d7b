package reports

import (
	"fmt"
	"time"
)

// IssueType categorizes a citizen report. The set is closed; unknown
// labels fail to parse.
type IssueType int

const (
	IssueLeak IssueType = iota
	IssueQuality
	IssueTheft
	IssuePressure
)

func (t IssueType) String() string {
	switch t {
	case IssueLeak:
		return "leak"
	case IssueQuality:
		return "quality"
	case IssueTheft:
		return "theft"
	case IssuePressure:
		return "pressure"
	}
	return fmt.Sprintf("IssueType(%d)", int(t))
}

// ParseIssueType maps a wire label to its IssueType.
func ParseIssueType(s string) (IssueType, error) {
	switch s {
	case "leak":
		return IssueLeak, nil
	case "quality":
		return IssueQuality, nil
	case "theft":
		return IssueTheft, nil
	case "pressure":
		return IssuePressure, nil
	}
	return 0, fmt.Errorf("reports: unknown issue type %q", s)
}

func (t IssueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *IssueType) UnmarshalText(b []byte) error {
	v, err := ParseIssueType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Report is an accepted citizen submission, kept per session so the
// portal can show a history. Nothing downstream consumes it; the grid
// side effect happens at intake time.
type Report struct {
	ID          string    `json:"id"`
	CellID      string    `json:"cell_id,omitempty"`
	Type        IssueType `json:"type"`
	Notes       string    `json:"notes"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ConfirmationMessage builds the transient notice shown after intake.
// It embeds the issue type and, when one was supplied, the cell id.
// Intake is fail-open, so an unknown id appears verbatim.
func ConfirmationMessage(t IssueType, cellID string) string {
	if cellID != "" {
		return fmt.Sprintf("Thanks! Your %s report for cell %s was received.", t, cellID)
	}
	return fmt.Sprintf("Thanks! Your %s report was received.", t)
}
