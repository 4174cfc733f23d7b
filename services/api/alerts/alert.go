package alerts

import "time"

// Alert is one entry in the department triage queue.
type Alert struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	CellID      string    `json:"cell_id"`
	Description string    `json:"description"`
	Team        string    `json:"team,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Acknowledge moves an open alert to acknowledged. From any other
// status it is a no-op: the workflow never moves backwards.
func (a Alert) Acknowledge(now time.Time) (Alert, bool) {
	if a.Status != StatusOpen {
		return a, false
	}
	a.Status = StatusAcknowledged
	a.UpdatedAt = now
	return a, true
}

// Dispatch assigns a crew and moves the alert to dispatched.
// Acknowledgement may be skipped, and re-dispatching just reassigns the
// crew. Resolved alerts never leave resolved.
func (a Alert) Dispatch(team string, now time.Time) (Alert, bool) {
	if a.Status == StatusResolved {
		return a, false
	}
	a.Status = StatusDispatched
	a.Team = team
	a.UpdatedAt = now
	return a, true
}

// Resolve closes the alert from any non-resolved status. The assigned
// crew is kept as a historical record.
func (a Alert) Resolve(now time.Time) (Alert, bool) {
	if a.Status == StatusResolved {
		return a, false
	}
	a.Status = StatusResolved
	a.UpdatedAt = now
	return a, true
}
