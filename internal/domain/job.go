package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type JobPosting struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Company        string    `json:"company" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	Salary         *string   `json:"salary,omitempty"`
	Type           string    `json:"type" validate:"required"`
	EmploymentType *string   `json:"employment_type,omitempty"`
	WorkMode       *string   `json:"work_mode,omitempty"`
	Experience     string    `json:"experience" validate:"required"`
	Skills         string    `json:"skills" validate:"required"` // free text, comma separated by convention
	Description    *string   `json:"description,omitempty"`
	PostedBy       string    `json:"posted_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobWithPoster extends JobPosting with the minimal poster identity
// joined from the users table.
type JobWithPoster struct {
	JobPosting
	PosterName  string `json:"poster_name"`
	PosterEmail string `json:"poster_email"`
}

// JobFilter narrows a listing query. Search matches title, company or
// description; Location matches location. Both are case-insensitive
// substring matches and combine with AND.
type JobFilter struct {
	Search   string
	Location string
	Limit    int
	Offset   int
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type JobList struct {
	Jobs       []JobWithPoster `json:"jobs"`
	Pagination Pagination      `json:"pagination"`
}

type JobListQuery struct {
	Page     int
	Limit    int
	Search   string
	Location string
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	Search(ctx context.Context, filter JobFilter) ([]JobWithPoster, error)
	Count(ctx context.Context, filter JobFilter) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID, role string, job *JobPosting) error
	ListJobs(ctx context.Context, query JobListQuery) (*JobList, error)
}
