package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type verificationRepo struct {
	db *pgxpool.Pool
}

func NewVerificationRepository(db *pgxpool.Pool) domain.VerificationRepository {
	return &verificationRepo{db: db}
}

func (r *verificationRepo) Create(ctx context.Context, v *domain.EmailVerification) error {
	query := `INSERT INTO email_verifications (token, user_id, verified, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, v.Token, v.UserID, v.Verified, v.CreatedAt)
	return err
}

func (r *verificationRepo) GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error) {
	query := `SELECT token, user_id, verified, created_at FROM email_verifications WHERE token = $1`
	var v domain.EmailVerification
	err := r.db.QueryRow(ctx, query, token).Scan(&v.Token, &v.UserID, &v.Verified, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepo) MarkVerified(ctx context.Context, token string) error {
	result, err := r.db.Exec(ctx, `UPDATE email_verifications SET verified = TRUE WHERE token = $1`, token)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
