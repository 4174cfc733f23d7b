package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// apiClient is a thin wrapper over the demo API. Responses arrive in a
// {"data": ..., "meta": ...} envelope; each call decodes just the part
// it renders.
type apiClient struct {
	httpClient *http.Client
	baseURL    string
	sessionID  string
	ownSession bool
}

func newAPIClient(baseURL, sessionID string) *apiClient {
	return &apiClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		sessionID:  sessionID,
	}
}

func (c *apiClient) request(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// openSession creates a server-side session and remembers its id for
// the rest of the process.
func (c *apiClient) openSession(ctx context.Context) error {
	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/v1/sessions", nil, &resp); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	c.sessionID = resp.Data.SessionID
	c.ownSession = true
	return nil
}

// closeSession ends the session, but only if this process opened it.
func (c *apiClient) closeSession(ctx context.Context) error {
	if !c.ownSession || c.sessionID == "" {
		return nil
	}
	return c.request(ctx, http.MethodDelete, "/api/v1/sessions/"+c.sessionID, nil, nil)
}
