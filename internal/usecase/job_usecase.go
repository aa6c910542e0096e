package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// CreateJob inserts a posting on behalf of userID. Authorization comes
// before validation, validation before any store access; validation
// failures are collected per field rather than short-circuited.
func (u *jobUsecase) CreateJob(ctx context.Context, userID, role string, job *domain.JobPosting) error {
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if role != domain.RoleRecruiter {
		return apperror.Forbidden("Only recruiters can post jobs")
	}

	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Location = strings.TrimSpace(job.Location)
	job.Type = strings.TrimSpace(job.Type)
	job.Experience = strings.TrimSpace(job.Experience)
	job.Skills = strings.TrimSpace(job.Skills)

	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequestWithDetails("Validation failed", validation.FieldErrors(err))
	}

	job.PostedBy = userID
	job.CreatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

// ListJobs fetches one page plus the unpaginated count. The two queries
// are independent; an off-by-one last page under concurrent writes is
// accepted.
func (u *jobUsecase) ListJobs(ctx context.Context, query domain.JobListQuery) (*domain.JobList, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	filter := domain.JobFilter{
		Search:   query.Search,
		Location: query.Location,
		Limit:    query.Limit,
		Offset:   (query.Page - 1) * query.Limit,
	}

	jobs, err := u.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := u.jobRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &domain.JobList{
		Jobs: jobs,
		Pagination: domain.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}
