package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/hydrolens/aquaview-demo/services/api/alerts"
	"github.com/hydrolens/aquaview-demo/services/api/reports"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// Change tells the caller what a reduction did beyond the new state,
// so the session wrapper can arm timers and handlers can shape
// responses without re-diffing two states.
type Change struct {
	Applied     bool            // the returned state differs from the input
	Notice      string          // non-empty when a notice was posted
	NoticeSeq   uint64          // sequence of the posted notice
	Report      *reports.Report // appended report, if any
	Alert       *alerts.Alert   // alert the action addressed, if any
	CellTouched bool            // the quality side effect landed on a cell
}

// Reduce applies one action to a state and returns the next state.
// It is pure: no I/O, no timers, no clock reads, and no mutation of s;
// slices are cloned on write and shared otherwise. Every applied
// reduction stamps LastUpdated with now.
func Reduce(s State, a Action, now time.Time) (State, Change, error) {
	switch act := a.(type) {
	case SelectCell:
		if _, ok := watergrid.CellByID(s.Cells, act.CellID); !ok {
			return s, Change{}, fmt.Errorf("select %q: %w", act.CellID, watergrid.ErrNoSuchCell)
		}
		if s.SelectedCell == act.CellID {
			return s, Change{}, nil
		}
		s.SelectedCell = act.CellID
		s.LastUpdated = now
		return s, Change{Applied: true}, nil

	case SubmitReport:
		rep := reports.Report{
			ID:          act.ReceiptID,
			CellID:      act.CellID,
			Type:        act.Type,
			Notes:       act.Notes,
			SubmittedAt: now,
		}
		s.Reports = append(slices.Clone(s.Reports), rep)

		// Quality complaints against a real cell degrade it. Unknown
		// or absent cell ids skip the side effect but never fail the
		// intake.
		touched := false
		if act.Type == reports.IssueQuality && act.CellID != "" {
			if next, ok := watergrid.DegradeQuality(s.Cells, act.CellID); ok {
				s.Cells = next
				touched = true
			}
		}

		s.NoticeSeq++
		s.Notice = reports.ConfirmationMessage(act.Type, act.CellID)
		s.LastUpdated = now
		return s, Change{
			Applied:     true,
			Notice:      s.Notice,
			NoticeSeq:   s.NoticeSeq,
			Report:      &rep,
			CellTouched: touched,
		}, nil

	case ClearNotice:
		if s.Notice == "" || act.Seq != s.NoticeSeq {
			return s, Change{}, nil
		}
		s.Notice = ""
		s.LastUpdated = now
		return s, Change{Applied: true}, nil

	case AcknowledgeAlert:
		return reduceAlert(s, act.AlertID, now, func(list []alerts.Alert) ([]alerts.Alert, bool, error) {
			return alerts.Acknowledge(list, act.AlertID, now)
		})

	case DispatchAlert:
		return reduceAlert(s, act.AlertID, now, func(list []alerts.Alert) ([]alerts.Alert, bool, error) {
			return alerts.Dispatch(list, act.AlertID, act.Team, now)
		})

	case ResolveAlert:
		return reduceAlert(s, act.AlertID, now, func(list []alerts.Alert) ([]alerts.Alert, bool, error) {
			return alerts.Resolve(list, act.AlertID, now)
		})

	case AwardPoints:
		if act.Amount <= 0 {
			return s, Change{}, nil
		}
		s.EcoPoints += act.Amount
		s.LastUpdated = now
		return s, Change{Applied: true}, nil
	}

	return s, Change{}, fmt.Errorf("session: unhandled action %T", a)
}

func reduceAlert(s State, id string, now time.Time, op func([]alerts.Alert) ([]alerts.Alert, bool, error)) (State, Change, error) {
	next, changed, err := op(s.Alerts)
	if err != nil {
		return s, Change{}, err
	}
	a, _ := alerts.ByID(next, id)
	if !changed {
		return s, Change{Alert: &a}, nil
	}
	s.Alerts = next
	s.LastUpdated = now
	return s, Change{Applied: true, Alert: &a}, nil
}
