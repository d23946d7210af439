package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/trackfit/trackfit/internal/model"
)

// APIError is a non-2xx response from the tracker API.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		parts := make([]string, 0, len(e.Details))
		for field, msg := range e.Details {
			parts = append(parts, field+": "+msg)
		}
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
	}
	return e.Message
}

// JobPayload mirrors the API's partial job body. Nil fields are omitted so
// updates only touch what the user changed.
type JobPayload struct {
	Company *string    `json:"company,omitempty"`
	Role    *string    `json:"role,omitempty"`
	Status  *string    `json:"status,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Link    *string    `json:"link,omitempty"`
}

// AuthResult is the register/login response body.
type AuthResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Client is a typed HTTP client for the tracker REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Register(name, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Login(email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Me() (*model.User, error) {
	var user model.User
	err := c.do(http.MethodGet, "/api/auth/me", nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Jobs() ([]*model.Job, error) {
	var jobs []*model.Job
	err := c.do(http.MethodGet, "/api/jobs", nil, &jobs)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(payload JobPayload) (*model.Job, error) {
	var job model.Job
	err := c.do(http.MethodPost, "/api/jobs", payload, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(id string, payload JobPayload) (*model.Job, error) {
	var job model.Job
	err := c.do(http.MethodPut, "/api/jobs/"+id, payload, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(id string) error {
	return c.do(http.MethodDelete, "/api/jobs/"+id, nil, nil)
}

// do runs one request, attaching the bearer token when present, and
// decodes either the result or the API error body.
func (c *Client) do(method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call tracker API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}

	err := json.NewDecoder(resp.Body).Decode(&body)
	if err != nil || body.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = body.Message
	apiErr.Details = body.Details
	return apiErr
}
