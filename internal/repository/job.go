package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/trackfit/trackfit/internal/model"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	Create(job *model.Job) error
	ByID(id string) (*model.Job, error)
	Jobs() ([]*model.Job, error)
	Update(job *model.Job) error
	Delete(id string) error
}

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	query := `INSERT INTO jobs (id, user_id, company, role, status, date, link, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		job.ID,
		job.UserID,
		job.Company,
		job.Role,
		job.Status,
		job.Date,
		job.Link,
		job.CreatedAt,
		job.UpdatedAt,
	)

	return err
}

func (r *jobRepository) ByID(id string) (*model.Job, error) {
	job := &model.Job{}
	query := `SELECT * FROM jobs WHERE id = $1`

	err := r.db.Get(job, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}

	return job, err
}

// Jobs returns every application, newest first.
// Intentionally not scoped by owner: all authenticated users share one
// collection (see DESIGN.md).
func (r *jobRepository) Jobs() ([]*model.Job, error) {
	var jobs []*model.Job
	query := `SELECT * FROM jobs ORDER BY date DESC`

	err := r.db.Select(&jobs, query)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) Update(job *model.Job) error {
	query := `UPDATE jobs
	          SET company = $1, role = $2, status = $3, date = $4, link = $5, updated_at = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		job.Company,
		job.Role,
		job.Status,
		job.Date,
		job.Link,
		job.UpdatedAt,
		job.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *jobRepository) Delete(id string) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(query, id)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}
