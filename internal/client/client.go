// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/javajoker/jobtracker/internal/models"
	"github.com/javajoker/jobtracker/internal/utils"
)

var ErrNotFound = errors.New("application not found")

// ValidationError carries the per-field messages of a 422 response.
type ValidationError struct {
	Details map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// StatusError is any other non-success response from the API.
type StatusError struct {
	StatusCode int
	Code       string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api returned %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("api returned %d", e.StatusCode)
}

// Payload maps API field names to submitted values. Blank values clear
// optional fields.
type Payload map[string]string

type ListOptions struct {
	Query  string
	Status string
}

type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type languageKey struct{}

// WithLanguage makes requests made with ctx forward the given Accept-Language
// header so validation messages come back localized.
func WithLanguage(ctx context.Context, acceptLanguage string) context.Context {
	return context.WithValue(ctx, languageKey{}, acceptLanguage)
}

func (c *Client) List(ctx context.Context, opts ListOptions) ([]models.Application, error) {
	query := url.Values{}
	if q := strings.TrimSpace(opts.Query); q != "" {
		query.Set("q", q)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	path := "/applications"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var applications []models.Application
	if err := c.do(ctx, http.MethodGet, path, nil, &applications); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*models.Application, error) {
	var application models.Application
	if err := c.do(ctx, http.MethodGet, applicationPath(id), nil, &application); err != nil {
		return nil, fmt.Errorf("get application %d: %w", id, err)
	}
	return &application, nil
}

func (c *Client) Create(ctx context.Context, payload Payload) (*models.Application, error) {
	var application models.Application
	if err := c.do(ctx, http.MethodPost, "/applications", payload, &application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &application, nil
}

func (c *Client) Update(ctx context.Context, id int64, payload Payload) (*models.Application, error) {
	var application models.Application
	if err := c.do(ctx, http.MethodPatch, applicationPath(id), payload, &application); err != nil {
		return nil, fmt.Errorf("update application %d: %w", id, err)
	}
	return &application, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, applicationPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	return nil
}

func applicationPath(id int64) string {
	return fmt.Sprintf("/applications/%d", id)
}

func (c *Client) do(ctx context.Context, method, path string, payload Payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang, ok := ctx.Value(languageKey{}).(string); ok && lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeError(res)
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(res *http.Response) error {
	var apiErr struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	_ = json.NewDecoder(res.Body).Decode(&apiErr)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode == http.StatusUnprocessableEntity && apiErr.Error == utils.ErrorCodeValidationFailed:
		return &ValidationError{Details: apiErr.Details}
	default:
		return &StatusError{StatusCode: res.StatusCode, Code: apiErr.Error}
	}
}
