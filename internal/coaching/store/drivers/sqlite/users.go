package sqlite

import (
	"context"
	"strings"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, full_name, password_hash, role)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FullName, u.PasswordHash, string(u.Role),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(ctx, `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(ctx, `
		SELECT id, email, full_name, password_hash, role, created_at, updated_at
		FROM users WHERE email = ?`, email)
}

func (r *usersRepo) scanUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var u domain.User
	var role string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Role = domain.Role(role)
	return u, nil
}
