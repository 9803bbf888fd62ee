package domain

import "github.com/google/uuid"

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RealName string `json:"real_name" validate:"max=128"`
	School   string `json:"school" validate:"max=128"`
	Branch   string `json:"branch" validate:"max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Profile   *Profile `json:"profile"`
	AuthToken string   `json:"-"`
}

type SubmitScoreRequest struct {
	EntryID uuid.UUID `json:"entry_id" validate:"required"`
	Score   float64   `json:"score" validate:"min=0,max=100"`
	Comment string    `json:"comment" validate:"max=2000"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type SetRoleRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}
