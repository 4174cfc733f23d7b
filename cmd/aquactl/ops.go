package main

import (
	"context"
	"net/http"
)

// Wire shapes for the slices of the API the CLI renders. Optional
// fields stay zero when an endpoint does not send them.

type cellPayload struct {
	ID          string  `json:"id"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Quality     int     `json:"quality"`
	Pressure    float64 `json:"pressure_psi"`
	FlowLPM     float64 `json:"flow_lpm"`
	LeakRisk    float64 `json:"leak_risk"`
	QualityBand string  `json:"quality_band"`
	RiskTier    string  `json:"risk_tier"`
}

type alertPayload struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	CellID      string `json:"cell_id"`
	Description string `json:"description"`
	Team        string `json:"team"`
}

type usagePayload struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	UsedKL   float64 `json:"used_kl"`
	Billed   string  `json:"billed"`
	Currency string  `json:"currency"`
}

type gridResponse struct {
	Data []cellPayload `json:"data"`
	Meta struct {
		Selected string `json:"selected"`
	} `json:"meta"`
}

type alertsResponse struct {
	Data []alertPayload `json:"data"`
	Meta struct {
		ByStatus map[string]int `json:"by_status"`
	} `json:"meta"`
}

type alertActionResponse struct {
	Data alertPayload `json:"data"`
	Meta struct {
		Changed bool `json:"changed"`
	} `json:"meta"`
}

type usageResponse struct {
	Data []usagePayload `json:"data"`
	Meta struct {
		Months      int     `json:"months"`
		TotalKL     float64 `json:"total_kl"`
		TotalBilled string  `json:"total_billed"`
		Currency    string  `json:"currency"`
	} `json:"meta"`
}

type reportReceipt struct {
	ReceiptID     string `json:"receipt_id"`
	Message       string `json:"message"`
	PointsAwarded int    `json:"points_awarded"`
	PointsTotal   int    `json:"points_total"`
}

type realtimePayload struct {
	Notice        string `json:"notice"`
	NoticeSeq     uint64 `json:"notice_seq"`
	EcoPoints     int    `json:"eco_points"`
	AlertsOpen    int    `json:"alerts_open"`
	SelectedCell  string `json:"selected_cell"`
	LastUpdatedAt string `json:"last_updated_at"`
}

type summaryPayload struct {
	EcoPoints        int           `json:"eco_points"`
	ReportsSubmitted int           `json:"reports_submitted"`
	LatestUsage      *usagePayload `json:"latest_usage"`
	SelectedCell     *cellPayload  `json:"selected_cell"`
	Notice           string        `json:"notice"`
}

func (c *apiClient) fetchGrid(ctx context.Context) (gridResponse, error) {
	var out gridResponse
	err := c.request(ctx, http.MethodGet, "/api/v1/grid", nil, &out)
	return out, err
}

func (c *apiClient) fetchCell(ctx context.Context, id string) (cellPayload, error) {
	var out struct {
		Data cellPayload `json:"data"`
	}
	err := c.request(ctx, http.MethodGet, "/api/v1/grid/cells/"+id, nil, &out)
	return out.Data, err
}

func (c *apiClient) submitReport(ctx context.Context, cellID, issueType, notes string) (reportReceipt, error) {
	in := map[string]string{"type": issueType}
	if cellID != "" {
		in["cell_id"] = cellID
	}
	if notes != "" {
		in["notes"] = notes
	}

	var out struct {
		Data reportReceipt `json:"data"`
	}
	err := c.request(ctx, http.MethodPost, "/api/v1/portal/reports", in, &out)
	return out.Data, err
}

func (c *apiClient) fetchAlerts(ctx context.Context) (alertsResponse, error) {
	var out alertsResponse
	err := c.request(ctx, http.MethodGet, "/api/v1/console/alerts", nil, &out)
	return out, err
}

func (c *apiClient) alertAction(ctx context.Context, id, verb string, in any) (alertActionResponse, error) {
	var out alertActionResponse
	err := c.request(ctx, http.MethodPost, "/api/v1/console/alerts/"+id+"/"+verb, in, &out)
	return out, err
}

func (c *apiClient) fetchUsage(ctx context.Context) (usageResponse, error) {
	var out usageResponse
	err := c.request(ctx, http.MethodGet, "/api/v1/portal/usage", nil, &out)
	return out, err
}

func (c *apiClient) fetchSummary(ctx context.Context) (summaryPayload, error) {
	var out struct {
		Data summaryPayload `json:"data"`
	}
	err := c.request(ctx, http.MethodGet, "/api/v1/portal/summary", nil, &out)
	return out.Data, err
}

func (c *apiClient) fetchRealtime(ctx context.Context) (realtimePayload, error) {
	var out struct {
		Data realtimePayload `json:"data"`
	}
	err := c.request(ctx, http.MethodGet, "/api/v1/realtime/now", nil, &out)
	return out.Data, err
}
