package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-token" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()

	c := New(server.URL, "my-token")
	if _, err := c.Jobs(); err != nil {
		t.Fatalf("Jobs: %v", err)
	}
}

func TestClientDecodesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   "Validation Error",
			"message": "Validation failed",
			"details": map[string]string{"company": "Company name is required"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "")
	_, err := c.CreateJob(JobPayload{})
	if err == nil {
		t.Fatal("expected an error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Details["company"] != "Company name is required" {
		t.Errorf("details = %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Error(), "Company name is required") {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestClientNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(server.URL, "")
	err := c.DeleteJob("some-id")
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClientUpdateSendsOnlySetFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body) != 1 {
			t.Errorf("expected only the status field, got %v", body)
		}
		if body["status"] != "Offer" {
			t.Errorf("status = %v", body["status"])
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "j1", "status": "Offer"})
	}))
	defer server.Close()

	status := "Offer"
	c := New(server.URL, "token")
	job, err := c.UpdateJob("j1", JobPayload{Status: &status})
	if err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	if job.Status != "Offer" {
		t.Errorf("job status = %q", job.Status)
	}
}
