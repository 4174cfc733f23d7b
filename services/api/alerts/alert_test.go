package alerts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertTransitions(t *testing.T) {
	now := time.Date(2025, 8, 19, 10, 0, 0, 0, time.UTC)
	later := now.Add(5 * time.Minute)

	tests := []struct {
		verb        string
		from        Status
		want        Status
		wantChanged bool
	}{
		{"ack", StatusOpen, StatusAcknowledged, true},
		{"ack", StatusAcknowledged, StatusAcknowledged, false},
		{"ack", StatusDispatched, StatusDispatched, false},
		{"ack", StatusResolved, StatusResolved, false},
		{"dispatch", StatusOpen, StatusDispatched, true},
		{"dispatch", StatusAcknowledged, StatusDispatched, true},
		{"dispatch", StatusDispatched, StatusDispatched, true},
		{"dispatch", StatusResolved, StatusResolved, false},
		{"resolve", StatusOpen, StatusResolved, true},
		{"resolve", StatusAcknowledged, StatusResolved, true},
		{"resolve", StatusDispatched, StatusResolved, true},
		{"resolve", StatusResolved, StatusResolved, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s_from_%s", tc.verb, tc.from), func(t *testing.T) {
			a := Alert{ID: "ALT-1", Status: tc.from, UpdatedAt: now}

			var got Alert
			var changed bool
			switch tc.verb {
			case "ack":
				got, changed = a.Acknowledge(later)
			case "dispatch":
				got, changed = a.Dispatch("crew-7", later)
			case "resolve":
				got, changed = a.Resolve(later)
			}

			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.want, got.Status)
			assert.GreaterOrEqual(t, int(got.Status), int(tc.from), "workflow never moves backwards")
			if tc.wantChanged {
				assert.Equal(t, later, got.UpdatedAt)
			} else {
				assert.Equal(t, a, got, "no-ops return the alert untouched")
			}
		})
	}
}

func TestDispatchReassignsTeam(t *testing.T) {
	now := time.Now()

	a := Alert{ID: "ALT-1", Status: StatusOpen}
	a, changed := a.Dispatch("crew-7", now)
	require.True(t, changed)
	assert.Equal(t, "crew-7", a.Team)

	a, changed = a.Dispatch("crew-9", now.Add(time.Minute))
	require.True(t, changed)
	assert.Equal(t, "crew-9", a.Team)
	assert.Equal(t, StatusDispatched, a.Status)
}

func TestResolveKeepsTeam(t *testing.T) {
	now := time.Now()

	a := Alert{ID: "ALT-1", Status: StatusOpen}
	a, _ = a.Dispatch("crew-7", now)
	a, changed := a.Resolve(now.Add(time.Minute))
	require.True(t, changed)
	assert.Equal(t, StatusResolved, a.Status)
	assert.Equal(t, "crew-7", a.Team)
}
