package alerts

import (
	"errors"
	"slices"
	"time"
)

// ErrNotFound reports an alert id that is not in the collection.
// Mutating a nonexistent alert is a caller bug and must surface, not
// silently no-op.
var ErrNotFound = errors.New("alerts: not found")

// apply runs one transition against the alert with the given id. The
// input slice is never mutated: when the transition applies, the result
// is a fresh slice sharing every untouched element; when it does not,
// the original slice comes back unchanged.
func apply(list []Alert, id string, fn func(Alert) (Alert, bool)) ([]Alert, bool, error) {
	for i, a := range list {
		if a.ID != id {
			continue
		}
		next, changed := fn(a)
		if !changed {
			return list, false, nil
		}
		out := slices.Clone(list)
		out[i] = next
		return out, true, nil
	}
	return nil, false, ErrNotFound
}

// Acknowledge acknowledges the alert with the given id.
func Acknowledge(list []Alert, id string, now time.Time) ([]Alert, bool, error) {
	return apply(list, id, func(a Alert) (Alert, bool) { return a.Acknowledge(now) })
}

// Dispatch assigns a crew to the alert with the given id.
func Dispatch(list []Alert, id, team string, now time.Time) ([]Alert, bool, error) {
	return apply(list, id, func(a Alert) (Alert, bool) { return a.Dispatch(team, now) })
}

// Resolve resolves the alert with the given id.
func Resolve(list []Alert, id string, now time.Time) ([]Alert, bool, error) {
	return apply(list, id, func(a Alert) (Alert, bool) { return a.Resolve(now) })
}

// ByID looks an alert up by id.
func ByID(list []Alert, id string) (Alert, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return Alert{}, false
}

// CountByStatus tallies the queue per lifecycle status. All four
// statuses are always present so response shapes stay stable.
func CountByStatus(list []Alert) map[Status]int {
	counts := map[Status]int{
		StatusOpen:         0,
		StatusAcknowledged: 0,
		StatusDispatched:   0,
		StatusResolved:     0,
	}
	for _, a := range list {
		counts[a.Status]++
	}
	return counts
}
