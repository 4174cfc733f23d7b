package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReport(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{
		"cell_id": "C4-6",
		"type":    "leak",
		"notes":   "water pooling near the hydrant",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["receipt_id"])
	assert.Equal(t, "Thanks! Your leak report for cell C4-6 was received.", data["message"])
	assert.EqualValues(t, 25, data["points_awarded"])
	assert.EqualValues(t, 25, data["points_total"])

	// A second report stacks another bonus.
	again := doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{
		"type":  "pressure",
		"notes": "tap barely trickles in the morning",
	})
	require.Equal(t, http.StatusCreated, again.Code)
	data = decodeBody(t, again)["data"].(map[string]any)
	assert.Equal(t, "Thanks! Your pressure report was received.", data["message"])
	assert.EqualValues(t, 50, data["points_total"])
}

func TestSubmitReportValidation(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing type", map[string]string{"cell_id": "C1-1", "notes": "something is off"}},
		{"unknown type", map[string]string{"type": "billing", "notes": "charged twice"}},
		{"missing notes", map[string]string{"type": "leak"}},
		{"empty notes", map[string]string{"type": "leak", "notes": ""}},
		{"malformed cell id", map[string]string{"type": "leak", "cell_id": "X1-1", "notes": "puddle"}},
		{"notes too long", map[string]string{"type": "leak", "notes": strings.Repeat("x", 501)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// The rejected value is named so the portal can show it.
	w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{"type": "billing", "notes": "charged twice"})
	assert.Contains(t, decodeBody(t, w)["error"], "billing")
}

func TestQualityReportDegradesCell(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)
	other := openSession(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{
		"cell_id": "C4-5",
		"type":    "quality",
		"notes":   "tap water smells off",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data cellPayload `json:"data"`
	}

	cell := doRequest(t, engine, http.MethodGet, "/api/v1/grid/cells/C4-5", id, nil)
	require.NoError(t, json.Unmarshal(cell.Body.Bytes(), &resp))
	assert.Equal(t, 52, resp.Data.Quality)
	assert.Equal(t, 0.85, resp.Data.LeakRisk)

	// Sessions do not share grids.
	untouched := doRequest(t, engine, http.MethodGet, "/api/v1/grid/cells/C4-5", other, nil)
	require.NoError(t, json.Unmarshal(untouched.Body.Bytes(), &resp))
	assert.Equal(t, 55, resp.Data.Quality)
	assert.Equal(t, 0.8, resp.Data.LeakRisk)
}

func TestListReports(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	empty := doRequest(t, engine, http.MethodGet, "/api/v1/portal/reports", id, nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"count":0}}`, empty.Body.String())

	doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{"type": "theft", "notes": "meter bypass next door"})
	doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{"type": "leak", "cell_id": "C1-2", "notes": "wet pavement"})

	w := doRequest(t, engine, http.MethodGet, "/api/v1/portal/reports", id, nil)
	var resp struct {
		Data []struct {
			ID     string `json:"id"`
			CellID string `json:"cell_id"`
			Type   string `json:"type"`
		} `json:"data"`
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Meta.Count)
	assert.Equal(t, "theft", resp.Data[0].Type)
	assert.Equal(t, "leak", resp.Data[1].Type)
	assert.Equal(t, "C1-2", resp.Data[1].CellID)
}

func TestUsageHistory(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/portal/usage", id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Month    string  `json:"month"`
			UsedKL   float64 `json:"used_kl"`
			Billed   string  `json:"billed"`
			Currency string  `json:"currency"`
		} `json:"data"`
		Meta struct {
			Months      int     `json:"months"`
			TotalKL     float64 `json:"total_kl"`
			TotalBilled string  `json:"total_billed"`
			Currency    string  `json:"currency"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 12)
	assert.Equal(t, "2024-09", resp.Data[0].Month)
	assert.Equal(t, "54.67", resp.Data[0].Billed)
	assert.Equal(t, 12, resp.Meta.Months)
	assert.InDelta(t, 168.6, resp.Meta.TotalKL, 1e-9)
	assert.Equal(t, "649.13", resp.Meta.TotalBilled)
	assert.Equal(t, "USD", resp.Meta.Currency)
}

func TestAwardPoints(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/points", id, map[string]int{"amount": 40})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 40, decodeBody(t, w)["data"].(map[string]any)["eco_points"])

	for _, amount := range []int{0, -5} {
		w := doRequest(t, engine, http.MethodPost, "/api/v1/portal/points", id, map[string]int{"amount": amount})
		assert.Equalf(t, http.StatusBadRequest, w.Code, "amount %d", amount)
	}
}

func TestPortalSummary(t *testing.T) {
	srv := newTestServer(t)
	engine := srv.Engine()
	id := openSession(t, engine)

	doRequest(t, engine, http.MethodPut, "/api/v1/grid/selection", id, map[string]string{"cell_id": "C4-5"})
	doRequest(t, engine, http.MethodPost, "/api/v1/portal/reports", id, map[string]string{"type": "leak", "cell_id": "C4-5", "notes": "hissing under the sidewalk"})

	w := doRequest(t, engine, http.MethodGet, "/api/v1/portal/summary", id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.EqualValues(t, 25, data["eco_points"])
	assert.EqualValues(t, 1, data["reports_submitted"])
	assert.Equal(t, "2025-08", data["latest_usage"].(map[string]any)["month"])
	assert.Equal(t, "C4-5", data["selected_cell"].(map[string]any)["id"])
	assert.Contains(t, data["notice"], "Thanks!")
}
