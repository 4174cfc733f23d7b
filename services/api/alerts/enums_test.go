package alerts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrips(t *testing.T) {
	for _, s := range []string{"leak-suspected", "pressure-drop", "unauthorized-usage", "quality-alert"} {
		c, err := ParseCategory(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
	for _, s := range []string{"low", "medium", "high"} {
		sev, err := ParseSeverity(s)
		require.NoError(t, err)
		assert.Equal(t, s, sev.String())
	}
	for _, s := range []string{"open", "acknowledged", "dispatched", "resolved"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
}

func TestParseRejectsUnknownLabels(t *testing.T) {
	_, err := ParseCategory("flood")
	assert.Error(t, err)
	_, err = ParseCategory("leak") // prefix of a real label is still unknown
	assert.Error(t, err)
	_, err = ParseSeverity("critical")
	assert.Error(t, err)
	_, err = ParseStatus("escalated")
	assert.Error(t, err)
}

func TestStatusJSON(t *testing.T) {
	b, err := json.Marshal(CountByStatus(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"open":0,"acknowledged":0,"dispatched":0,"resolved":0}`, string(b))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"dispatched"`), &s))
	assert.Equal(t, StatusDispatched, s)
	assert.Error(t, json.Unmarshal([]byte(`"escalated"`), &s))
}
