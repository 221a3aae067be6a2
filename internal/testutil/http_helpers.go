package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// HTTPGet sends a GET request without following redirects.
func HTTPGet(t testing.TB, rawURL string) Response {
	t.Helper()
	return doRequest(t, http.MethodGet, rawURL, "", nil)
}

// HTTPPostForm sends a form-encoded POST request without following redirects.
func HTTPPostForm(t testing.TB, rawURL string, form url.Values) Response {
	t.Helper()
	return doRequest(t, http.MethodPost, rawURL, "application/x-www-form-urlencoded", []byte(form.Encode()))
}

// HTTPPostJSON sends a JSON POST request.
func HTTPPostJSON(t testing.TB, rawURL string, payload string) Response {
	t.Helper()
	return doRequest(t, http.MethodPost, rawURL, "application/json", []byte(payload))
}

// HTTPDelete sends a DELETE request.
func HTTPDelete(t testing.TB, rawURL string) Response {
	t.Helper()
	return doRequest(t, http.MethodDelete, rawURL, "", nil)
}

// BodyContains reports whether the body contains every fragment.
func (r Response) BodyContains(fragments ...string) bool {
	body := string(r.Body)
	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			return false
		}
	}
	return true
}

// doRequest executes an HTTP request and returns the status, headers, and body.
func doRequest(t testing.TB, method, rawURL, contentType string, payload []byte) Response {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return Response{Status: resp.StatusCode, Header: resp.Header, Body: body}
}
