package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx so the profile
// select can run inside or outside a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *profileRepository) getProfile(ctx context.Context, q rowQuerier, userID string) (*domain.Profile, error) {
	query := `
		SELECT
			p.id, p.user_id, p.summary, p.phone, p.city, p.website,
			p.languages, p.resume_url, p.created_at, p.updated_at,
			u.name, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p domain.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Summary, &p.Phone, &p.City, &p.Website,
		pq.Array(&p.Languages), &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt,
		&p.Name, &p.Email, &p.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetAggregate reads the profile row plus the five collections. The six
// queries are independent; no cross-query snapshot is taken, so a write
// landing mid-read may be visible in some parts and not others.
func (r *profileRepository) GetAggregate(ctx context.Context, userID string) (*domain.ProfileAggregate, error) {
	result := &domain.ProfileAggregate{
		Skills:         []domain.Skill{},
		Employments:    []domain.Employment{},
		Educations:     []domain.Education{},
		Projects:       []domain.Project{},
		Certifications: []domain.Certification{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := r.getProfile(gctx, r.db, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		result.Profile = profile
		return nil
	})

	g.Go(func() error {
		query := `SELECT id, user_id, name FROM skills WHERE user_id = $1 ORDER BY id`
		rows, err := r.db.Query(gctx, query, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch skills: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var s domain.Skill
			if err := rows.Scan(&s.ID, &s.UserID, &s.Name); err != nil {
				return err
			}
			result.Skills = append(result.Skills, s)
		}
		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT id, user_id, company, designation, date_from, date_to, current, description
		          FROM employments WHERE user_id = $1 ORDER BY id`
		rows, err := r.db.Query(gctx, query, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch employments: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var e domain.Employment
			if err := rows.Scan(&e.ID, &e.UserID, &e.Company, &e.Designation, &e.From, &e.To, &e.Current, &e.Description); err != nil {
				return err
			}
			result.Employments = append(result.Employments, e)
		}
		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT id, user_id, degree, institute, year FROM educations WHERE user_id = $1 ORDER BY id`
		rows, err := r.db.Query(gctx, query, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch educations: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var e domain.Education
			if err := rows.Scan(&e.ID, &e.UserID, &e.Degree, &e.Institute, &e.Year); err != nil {
				return err
			}
			result.Educations = append(result.Educations, e)
		}
		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT id, user_id, name, role, date_from, date_to, description
		          FROM projects WHERE user_id = $1 ORDER BY id`
		rows, err := r.db.Query(gctx, query, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch projects: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var p domain.Project
			if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Role, &p.From, &p.To, &p.Description); err != nil {
				return err
			}
			result.Projects = append(result.Projects, p)
		}
		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT id, user_id, name, authority, year FROM certifications WHERE user_id = $1 ORDER BY id`
		rows, err := r.db.Query(gctx, query, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch certifications: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var c domain.Certification
			if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Authority, &c.Year); err != nil {
				return err
			}
			result.Certifications = append(result.Certifications, c)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveAggregate writes the whole aggregate in one transaction: upsert the
// profile row, then for every collection present in the input delete the
// stored rows and insert the given ones. A nil collection is left alone.
// Any failure rolls the whole write back.
func (r *profileRepository) SaveAggregate(ctx context.Context, input *domain.ProfileSaveInput) (*domain.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	userID := input.UserID

	data := input.ProfileData
	if data == nil {
		data = &domain.ProfileInput{}
	}

	// 1. Upsert profile (update first, insert when no row yet). COALESCE
	// keeps stored values for fields the caller did not send.
	updateQuery := `
		UPDATE profiles SET
			summary = COALESCE($2, summary),
			phone = COALESCE($3, phone),
			city = COALESCE($4, city),
			website = COALESCE($5, website),
			languages = COALESCE($6, languages),
			resume_url = COALESCE($7, resume_url),
			updated_at = NOW()
		WHERE user_id = $1`

	cmdTag, err := tx.Exec(ctx, updateQuery,
		userID, data.Summary, data.Phone, data.City, data.Website,
		pq.Array(data.Languages), data.ResumeURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		insertQuery := `
			INSERT INTO profiles (user_id, summary, phone, city, website, languages, resume_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
		_, err := tx.Exec(ctx, insertQuery,
			userID, orEmpty(data.Summary), orEmpty(data.Phone), orEmpty(data.City),
			orEmpty(data.Website), pq.Array(data.Languages), orEmpty(data.ResumeURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert profile: %w", err)
		}
	}

	// 2. Skills (Delete All -> Insert)
	if input.Skills != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("failed to delete skills: %w", err)
		}
		for _, s := range input.Skills {
			if _, err := tx.Exec(ctx, `INSERT INTO skills (user_id, name) VALUES ($1, $2)`, userID, s.Name); err != nil {
				return nil, fmt.Errorf("failed to insert skill: %w", err)
			}
		}
	}

	// 3. Employments
	if input.Employments != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM employments WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("failed to delete employments: %w", err)
		}
		insert := `
			INSERT INTO employments (user_id, company, designation, date_from, date_to, current, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for _, e := range input.Employments {
			if _, err := tx.Exec(ctx, insert, userID, e.Company, e.Designation, e.From, e.To, e.Current, e.Description); err != nil {
				return nil, fmt.Errorf("failed to insert employment: %w", err)
			}
		}
	}

	// 4. Educations
	if input.Educations != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM educations WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("failed to delete educations: %w", err)
		}
		insert := `INSERT INTO educations (user_id, degree, institute, year) VALUES ($1, $2, $3, $4)`
		for _, e := range input.Educations {
			if _, err := tx.Exec(ctx, insert, userID, e.Degree, e.Institute, e.Year); err != nil {
				return nil, fmt.Errorf("failed to insert education: %w", err)
			}
		}
	}

	// 5. Projects
	if input.Projects != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("failed to delete projects: %w", err)
		}
		insert := `
			INSERT INTO projects (user_id, name, role, date_from, date_to, description)
			VALUES ($1, $2, $3, $4, $5, $6)`
		for _, p := range input.Projects {
			if _, err := tx.Exec(ctx, insert, userID, p.Name, p.Role, p.From, p.To, p.Description); err != nil {
				return nil, fmt.Errorf("failed to insert project: %w", err)
			}
		}
	}

	// 6. Certifications
	if input.Certifications != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM certifications WHERE user_id = $1`, userID); err != nil {
			return nil, fmt.Errorf("failed to delete certifications: %w", err)
		}
		insert := `INSERT INTO certifications (user_id, name, authority, year) VALUES ($1, $2, $3, $4)`
		for _, c := range input.Certifications {
			if _, err := tx.Exec(ctx, insert, userID, c.Name, c.Authority, c.Year); err != nil {
				return nil, fmt.Errorf("failed to insert certification: %w", err)
			}
		}
	}

	profile, err := r.getProfile(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
