// Package client implements the dashboard side of the system: a typed HTTP
// client for the student API, the state controller behind the form/table
// UI, CSV export of the filtered view, and the backend liveness prober.
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

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
)

// Form holds the editable field set of one record. It doubles as the
// create/update request body.
type Form struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Course string `json:"course"`
	Status string `json:"status"`
}

// DefaultForm returns the empty form with the default status.
func DefaultForm() Form {
	return Form{Status: model.StatusPending}
}

// APIError is a non-2xx response decoded into the server's error body.
type APIError struct {
	Status  int
	Message string // body "message"
	Detail  string // body "error"
}

// Error prefers the detail the server attached (the violated rule, the
// driver error) over the summary message.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// API is the HTTP client for the student endpoints.
type API struct {
	baseURL string
	httpc   *http.Client
}

// NewAPI builds an API client against the given base URL. A nil httpc
// falls back to a client with a 10 second timeout.
func NewAPI(baseURL string, httpc *http.Client) *API {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// ListStudents fetches the full record list, most recent first.
func (a *API) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := a.do(ctx, http.MethodGet, "/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent persists a new record and returns it with its assigned id.
func (a *API) CreateStudent(ctx context.Context, form Form) (*model.Student, error) {
	var student model.Student
	if err := a.do(ctx, http.MethodPost, "/students", form, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent replaces the record's fields and returns the result.
func (a *API) UpdateStudent(ctx context.Context, id string, form Form) (*model.Student, error) {
	var student model.Student
	if err := a.do(ctx, http.MethodPut, "/students/"+id, form, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes the record permanently.
func (a *API) DeleteStudent(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/students/"+id, nil, nil)
}

// CheckHealth probes the backend liveness endpoint.
func (a *API) CheckHealth(ctx context.Context) error {
	return a.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do issues one request and decodes the response, turning non-2xx bodies
// into *APIError.
func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(data, &errBody) == nil {
				apiErr.Message = errBody.Message
				apiErr.Detail = errBody.Error
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
