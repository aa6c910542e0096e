package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (title, company, location, salary, type, employment_type, work_mode, experience, skills, description, posted_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Salary, job.Type,
		job.EmploymentType, job.WorkMode, job.Experience, job.Skills, job.Description,
		job.PostedBy, job.CreatedAt,
	).Scan(&job.ID)
	return err
}

// buildFilter renders the WHERE clause shared by Search and Count.
// Search matches title OR company OR description; Location matches the
// location column. Both are case-insensitive substring matches combined
// with AND.
func buildFilter(filter domain.JobFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(j.title ILIKE $%d OR j.company ILIKE $%d OR j.description ILIKE $%d)", n, n, n))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	return where, args
}

func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithPoster, error) {
	where, args := buildFilter(filter)

	args = append(args, filter.Limit)
	limitIdx := len(args)
	args = append(args, filter.Offset)
	offsetIdx := len(args)

	query := fmt.Sprintf(`
		SELECT
			j.id, j.title, j.company, j.location, j.salary, j.type,
			j.employment_type, j.work_mode, j.experience, j.skills,
			j.description, j.posted_by, j.created_at,
			u.name, u.email
		FROM job_postings j
		JOIN users u ON j.posted_by = u.id
		%s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d`, where, limitIdx, offsetIdx)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithPoster{}
	for rows.Next() {
		var job domain.JobWithPoster
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Type,
			&job.EmploymentType, &job.WorkMode, &job.Experience, &job.Skills,
			&job.Description, &job.PostedBy, &job.CreatedAt,
			&job.PosterName, &job.PosterEmail,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Count runs independently of Search; the pair is not guaranteed mutually
// consistent under concurrent writers.
func (r *jobRepo) Count(ctx context.Context, filter domain.JobFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM job_postings j %s`, where)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
