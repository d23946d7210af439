package handler

import (
	"net/http"
)

type HomeHandler struct {
	appName string
}

func NewHomeHandler(appName string) *HomeHandler {
	return &HomeHandler{appName: appName}
}

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Index is the welcome document listing the API surface.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]any{
		"message": h.appName + " API",
		"status":  "online",
		"endpoints": []endpointDoc{
			{Method: "GET", Path: "/api/jobs", Description: "Get all job applications"},
			{Method: "POST", Path: "/api/jobs", Description: "Create a new job application"},
			{Method: "PUT", Path: "/api/jobs/{id}", Description: "Update a job application"},
			{Method: "DELETE", Path: "/api/jobs/{id}", Description: "Delete a job application"},
			{Method: "POST", Path: "/api/auth/register", Description: "Register a new user"},
			{Method: "POST", Path: "/api/auth/login", Description: "Login a user"},
			{Method: "GET", Path: "/api/auth/me", Description: "Get user profile (requires auth)"},
		},
	})
}

// Health is a plain liveness probe.
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
