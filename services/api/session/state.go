package session

import (
	"time"

	"github.com/hydrolens/aquaview-demo/services/api/alerts"
	"github.com/hydrolens/aquaview-demo/services/api/reports"
	"github.com/hydrolens/aquaview-demo/services/api/usage"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// State is everything one demo session shows: the generated grid, the
// seeded queues, and the interactive bits on top. It is a value;
// Reduce never mutates a State in place, it returns a new one sharing
// the slices it did not touch.
type State struct {
	Cells        []watergrid.Cell
	Alerts       []alerts.Alert
	Usage        []usage.Record
	Reports      []reports.Report
	SelectedCell string
	EcoPoints    int
	Notice       string
	NoticeSeq    uint64
	LastUpdated  time.Time
}

// NewState seeds a fresh session dataset anchored at now. Restarting
// the process (or opening a new session) always starts from exactly
// this data.
func NewState(now time.Time) State {
	return State{
		Cells:       watergrid.Generate(),
		Alerts:      alerts.Seed(now),
		Usage:       usage.Seed(),
		LastUpdated: now,
	}
}
