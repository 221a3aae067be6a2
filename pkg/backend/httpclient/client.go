package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quan0401/quizz/pkg/backend"
)

var _ backend.Client = (*Client)(nil)

// Client implements backend.Client against the remote HTTP service.
type Client struct {
	baseURL string
	client  *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// NewWithTimeout constructs a client for the given base URL with a request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// CreateFAQ requests generated questions over HTTP.
func (c *Client) CreateFAQ(ctx context.Context, req backend.CreateFAQRequest) (backend.CreateFAQResponse, error) {
	const op = "httpclient.CreateFAQ"

	payload, err := json.Marshal(req)
	if err != nil {
		return backend.CreateFAQResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	body, status, err := c.do(ctx, http.MethodPost, backend.PathCreateFAQ, payload)
	if err != nil {
		return backend.CreateFAQResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if !success(status) {
		return backend.CreateFAQResponse{}, fmt.Errorf("%s: %w", op, decodeHTTPError(status, body))
	}
	var res backend.CreateFAQResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return backend.CreateFAQResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.Status != backend.StatusSuccess {
		return res, fmt.Errorf("%s: %w", op, &backend.StatusError{HTTPStatus: status, Status: res.Status})
	}
	return res, nil
}

// ListFiles fetches the stored documents over HTTP.
func (c *Client) ListFiles(ctx context.Context) (backend.ListFilesResponse, error) {
	const op = "httpclient.ListFiles"

	body, status, err := c.do(ctx, http.MethodGet, backend.PathListFiles, nil)
	if err != nil {
		return backend.ListFilesResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if !success(status) {
		return backend.ListFilesResponse{}, fmt.Errorf("%s: %w", op, decodeHTTPError(status, body))
	}
	var res backend.ListFilesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return backend.ListFilesResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.Status != backend.StatusSuccess {
		return res, fmt.Errorf("%s: %w", op, &backend.StatusError{HTTPStatus: status, Status: res.Status})
	}
	return res, nil
}

// DeleteFile removes a stored document over HTTP.
func (c *Client) DeleteFile(ctx context.Context, id string) (backend.StatusResponse, error) {
	const op = "httpclient.DeleteFile"

	body, status, err := c.do(ctx, http.MethodDelete, backend.PathDeleteFile+url.PathEscape(id), nil)
	if err != nil {
		return backend.StatusResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if !success(status) {
		return backend.StatusResponse{}, fmt.Errorf("%s: %w", op, decodeHTTPError(status, body))
	}
	var res backend.StatusResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return backend.StatusResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.Status != backend.StatusSuccess {
		return res, fmt.Errorf("%s: %w", op, &backend.StatusError{HTTPStatus: status, Status: res.Status})
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// success reports a 2xx status; the body status field decides the outcome.
func success(status int) bool {
	return status >= 200 && status < 300
}

type errorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		message := resp.Error
		if message == "" {
			message = resp.Message
		}
		return &backend.StatusError{HTTPStatus: status, Status: resp.Status, Message: message}
	}
	return &backend.StatusError{HTTPStatus: status}
}
