package domain

import (
	"context"
	"time"
)

// Profile is the single per-account profile row. Name, Email and Role are
// joined from the users table on reads and never written through here.
type Profile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Summary   string    `json:"summary"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Website   string    `json:"website"`
	Languages []string  `json:"languages"`
	ResumeURL string    `json:"resume_url"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileInput carries a partial profile update. Nil fields keep the
// stored value (merge semantics).
type ProfileInput struct {
	Summary   *string  `json:"summary"`
	Phone     *string  `json:"phone"`
	City      *string  `json:"city"`
	Website   *string  `json:"website"`
	Languages []string `json:"languages"`
	ResumeURL *string  `json:"resume_url"`
}

type Skill struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name" validate:"required"`
}

type Employment struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Company     string  `json:"company" validate:"required"`
	Designation string  `json:"designation" validate:"required"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

type Education struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Degree    string `json:"degree" validate:"required"`
	Institute string `json:"institute" validate:"required"`
	Year      string `json:"year"`
}

type Project struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name" validate:"required"`
	Role        string  `json:"role"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Description string  `json:"description"`
}

type Certification struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name" validate:"required"`
	Authority string `json:"authority"`
	Year      string `json:"year"`
}

// ProfileAggregate is the composite read result. Profile is nil when the
// account never saved a profile; collections are empty, never nil.
type ProfileAggregate struct {
	Profile        *Profile        `json:"profile"`
	Skills         []Skill         `json:"skills"`
	Employments    []Employment    `json:"employments"`
	Educations     []Education     `json:"educations"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// ProfileSaveInput is the aggregate write payload. A nil collection means
// the caller omitted it and the stored rows stay untouched; a non-nil
// empty collection wipes the stored rows. The distinction falls out of
// JSON decoding: an absent key leaves the slice nil, "[]" makes it empty.
type ProfileSaveInput struct {
	UserID         string          `json:"userId"`
	ProfileData    *ProfileInput   `json:"profileData"`
	Skills         []Skill         `json:"skills"`
	Employments    []Employment    `json:"employments"`
	Educations     []Education     `json:"educations"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

type ProfileRepository interface {
	GetAggregate(ctx context.Context, userID string) (*ProfileAggregate, error)
	// SaveAggregate runs the whole write in one transaction and returns
	// the profile row as stored.
	SaveAggregate(ctx context.Context, input *ProfileSaveInput) (*Profile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*ProfileAggregate, error)
	SaveProfile(ctx context.Context, input *ProfileSaveInput) (*Profile, error)
}
