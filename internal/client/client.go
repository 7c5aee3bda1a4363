// Package client implements the REST client for the remote code-review
// service. All remote failures are converted to the package's error
// taxonomy at this boundary; callers never see transport detail.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/critapp/crit/internal/models"
)

// Service is the review repository operations. Implemented by HTTPClient;
// replaceable in tests.
type Service interface {
	Analyze(ctx context.Context, code string, language models.Language, filename string) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

// HTTPClient implements Service against the service's /api REST contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL (without the /api suffix).
// No timeout is imposed beyond the transport default; retrying is left to
// the user repeating the action.
func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

type analyzeRequest struct {
	Code     string          `json:"code"`
	Language models.Language `json:"language"`
	Filename string          `json:"filename,omitempty"`
}

// Analyze submits code for review and returns the stored review, including
// its service-assigned id. Empty or whitespace-only code is rejected with a
// ValidationError before any network traffic.
func (c *HTTPClient) Analyze(ctx context.Context, code string, language models.Language, filename string) (*models.Review, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &ValidationError{Reason: "code is empty"}
	}

	payload, err := json.Marshal(analyzeRequest{Code: code, Language: language, Filename: filename})
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	var review models.Review
	if err := c.do(ctx, "analyze", http.MethodPost, "/api/reviews/analyze", payload, &review); err != nil {
		return nil, err
	}
	if err := review.Validate(); err != nil {
		return nil, &RemoteError{Op: "analyze", Message: fmt.Sprintf("invalid review payload: %v", err)}
	}
	return &review, nil
}

// List fetches all reviews the service knows about, in service-defined
// order. Callers that display by recency sort explicitly.
func (c *HTTPClient) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, "list", http.MethodGet, "/api/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Get fetches a single review by id. A missing id yields a NotFoundError,
// distinct from transport and remote failures.
func (c *HTTPClient) Get(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := c.do(ctx, "get", http.MethodGet, "/api/reviews/"+id, nil, &review)
	if isStatus(err, http.StatusNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	if err := review.Validate(); err != nil {
		return nil, &RemoteError{Op: "get", Message: fmt.Sprintf("invalid review payload: %v", err)}
	}
	return &review, nil
}

// Delete removes a review. Deleting an id the service no longer has is
// treated as success, making the operation idempotent for callers.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	err := c.do(ctx, "delete", http.MethodDelete, "/api/reviews/"+id, nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

// do performs one request and decodes a JSON response into out (skipped when
// out is nil). Non-2xx statuses become RemoteError; failures to reach the
// service become TransportError.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

// errorMessage extracts a human-readable message from a failure body.
// The service uses {"error": ...}; FastAPI-style backends use {"detail": ...}.
func errorMessage(body []byte) string {
	var parsed struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Detail != "" {
			return parsed.Detail
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "no error detail"
	}
	return msg
}

// isStatus reports whether err is a RemoteError with the given status code.
func isStatus(err error, code int) bool {
	re, ok := err.(*RemoteError)
	return ok && re.StatusCode == code
}
