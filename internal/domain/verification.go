package domain

import (
	"context"
	"time"
)

type EmailVerification struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// VerificationMailer is the outbound transactional-email collaborator.
type VerificationMailer interface {
	SendVerificationEmail(toEmail, recipientName, token string) error
	IsConfigured() bool
}

type VerificationRepository interface {
	Create(ctx context.Context, v *EmailVerification) error
	GetByToken(ctx context.Context, token string) (*EmailVerification, error)
	MarkVerified(ctx context.Context, token string) error
}

type VerificationUsecase interface {
	// RequestVerification stores a fresh token and sends the verification
	// email. The send is fire-and-forget: a failure is reported to the
	// caller but never retried.
	RequestVerification(ctx context.Context, userID string) (*EmailVerification, error)
	ConfirmVerification(ctx context.Context, token string) error
}
