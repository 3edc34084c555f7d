package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"checkers/internal/core"

	"github.com/sirupsen/logrus"
)

// Client talks to the game API served by the serve command
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx reply decoded from the server's error body
type APIError struct {
	Status int
	core.ErrorResponse
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.ErrorResponse.Error)
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// HealthResponse mirrors the /health body
type HealthResponse struct {
	Status string `json:"status"`
	Time   int64  `json:"time"`
	Games  int    `json:"games"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Trace(string(respBody))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, &apiErr.ErrorResponse); err != nil {
			apiErr.ErrorResponse.Error = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	err := c.doRequest(ctx, http.MethodGet, "/health", nil, &resp)
	return &resp, err
}

func (c *Client) CreateGame(ctx context.Context, req core.CreateGameRequest) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/games", req, &resp)
	return &resp, err
}

func (c *Client) GetGame(ctx context.Context, gameID string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/games/"+gameID, nil, &resp)
	return &resp, err
}

func (c *Client) DeleteGame(ctx context.Context, gameID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/games/"+gameID, nil, nil)
}

// MakeMove submits a move in wire format, or "bot" for the computer seat
func (c *Client) MakeMove(ctx context.Context, gameID, move string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/games/"+gameID+"/moves", core.MoveRequest{Move: move}, &resp)
	return &resp, err
}

func (c *Client) GetBoard(ctx context.Context, gameID string) (*core.BoardResponse, error) {
	var resp core.BoardResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/games/"+gameID+"/board", nil, &resp)
	return &resp, err
}
