package domain

import "time"

// Role is a platform role.
type Role string

const (
	RoleCoach  Role = "coach"
	RoleRunner Role = "runner"
)

// ValidRole reports whether s names a known platform role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCoach, RoleRunner:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
