package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trackfit/trackfit/internal/ctxkeys"
	"github.com/trackfit/trackfit/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// List returns all applications sorted by date descending.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.Jobs()
	if err != nil {
		RespondServerError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.JobInput
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user := ctxkeys.User(r.Context())

	job, err := h.jobService.Create(user.ID, in)
	if err != nil {
		h.respondJobError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.JobInput
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	job, err := h.jobService.Update(r.PathValue("id"), in)
	if err != nil {
		h.respondJobError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.jobService.Delete(r.PathValue("id"))
	if err != nil {
		h.respondJobError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "Job deleted successfully"})
}

// respondJobError maps service errors onto the status-code contract:
// validation -> 400 with details, malformed id -> 400, missing -> 404,
// anything else -> 500.
func (h *JobHandler) respondJobError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		RespondValidationError(w, vErr.Error(), vErr.Fields)
	case errors.Is(err, service.ErrInvalidID):
		RespondError(w, http.StatusBadRequest, "Invalid job ID format")
	case errors.Is(err, service.ErrJobNotFound):
		RespondError(w, http.StatusNotFound, "Job not found")
	default:
		RespondServerError(w, err)
	}
}
