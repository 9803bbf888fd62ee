package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Authorization checkpoints
// switch over it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleJudge       Role = "judge"
	RoleAdmin       Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleParticipant:
		return RoleParticipant, nil
	case RoleJudge:
		return RoleJudge, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleJudge, RoleAdmin:
		return true
	}
	return false
}

type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Username     string    `db:"username" json:"username"`
	RealName     string    `db:"real_name" json:"real_name"`
	School       string    `db:"school" json:"school"`
	Branch       string    `db:"branch" json:"branch"`
	Role         Role      `db:"role" json:"role"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
