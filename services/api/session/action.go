package session

import "github.com/hydrolens/aquaview-demo/services/api/reports"

// Action is one command the view layer can issue against a session.
// The set is closed: every variant lives in this file and Reduce
// matches over all of them.
type Action interface {
	isAction()
}

// SelectCell focuses a grid cell for the detail panes.
type SelectCell struct {
	CellID string
}

// SubmitReport files a citizen issue report. ReceiptID is assigned by
// the caller so that reductions stay replayable.
type SubmitReport struct {
	ReceiptID string
	CellID    string
	Type      reports.IssueType
	Notes     string
}

// ClearNotice wipes the transient confirmation, but only while Seq
// still names the latest notice. Stale timers reduce to a no-op.
type ClearNotice struct {
	Seq uint64
}

// AcknowledgeAlert marks an open alert as seen.
type AcknowledgeAlert struct {
	AlertID string
}

// DispatchAlert assigns a crew to a non-resolved alert.
type DispatchAlert struct {
	AlertID string
	Team    string
}

// ResolveAlert closes out a non-resolved alert.
type ResolveAlert struct {
	AlertID string
}

// AwardPoints grants eco-points for a citizen action.
type AwardPoints struct {
	Amount int
}

func (SelectCell) isAction()       {}
func (SubmitReport) isAction()     {}
func (ClearNotice) isAction()      {}
func (AcknowledgeAlert) isAction() {}
func (DispatchAlert) isAction()    {}
func (ResolveAlert) isAction()     {}
func (AwardPoints) isAction()      {}
