package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trackfit/trackfit/internal/model"
	"github.com/trackfit/trackfit/internal/repository"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrInvalidID   = errors.New("invalid job ID format")
)

// ValidationError carries per-field messages for 400 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// JobInput is a partial job payload. Nil fields are left untouched on
// update and defaulted on create.
type JobInput struct {
	Company *string    `json:"company"`
	Role    *string    `json:"role"`
	Status  *string    `json:"status"`
	Date    *time.Time `json:"date"`
	Link    *string    `json:"link"`
}

type JobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Jobs() ([]*model.Job, error) {
	jobs, err := s.repo.Jobs()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	return jobs, nil
}

func (s *JobService) ByID(id string) (*model.Job, error) {
	err := validateID(id)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// Create validates the payload, fills defaults (status Applied, date now)
// and stores a new application record owned by userID.
func (s *JobService) Create(userID string, in JobInput) (*model.Job, error) {
	now := time.Now()
	job := &model.Job{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    model.JobStatusApplied,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	applyInput(job, in)

	err := validateJob(job)
	if err != nil {
		return nil, err
	}

	err = s.repo.Create(job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// Update merges the non-nil fields of in into the stored record.
// Concurrent updates are last-write-wins.
func (s *JobService) Update(id string, in JobInput) (*model.Job, error) {
	job, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	applyInput(job, in)
	job.UpdatedAt = time.Now()

	err = validateJob(job)
	if err != nil {
		return nil, err
	}

	err = s.repo.Update(job)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

func (s *JobService) Delete(id string) error {
	err := validateID(id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}

func applyInput(job *model.Job, in JobInput) {
	if in.Company != nil {
		job.Company = strings.TrimSpace(*in.Company)
	}
	if in.Role != nil {
		job.Role = strings.TrimSpace(*in.Role)
	}
	if in.Status != nil {
		job.Status = strings.TrimSpace(*in.Status)
	}
	if in.Date != nil {
		job.Date = *in.Date
	}
	if in.Link != nil {
		job.Link = strings.TrimSpace(*in.Link)
	}
}

func validateJob(job *model.Job) error {
	fields := map[string]string{}

	if job.Company == "" {
		fields["company"] = "Company name is required"
	}
	if job.Role == "" {
		fields["role"] = "Job role is required"
	}
	if !model.ValidJobStatus(job.Status) {
		fields["status"] = fmt.Sprintf("%s is not a valid status", job.Status)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateID rejects identifiers that cannot be store-assigned ones, so a
// malformed path id maps to 400 rather than a blanket 404.
func validateID(id string) error {
	_, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}
	return nil
}
