// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"userservice/internal/domain"
	"userservice/internal/repository"
	"userservice/internal/util"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation pq.ErrorCode = "23505"

const userColumns = `id, email, name, age`

// UserRepository implements repository.UserRepository for PostgreSQL.
// It holds no connection; every method runs on the DBExecutor it receives.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// SaveUser inserts a new user and returns the stored row with its assigned ID.
func (r *UserRepository) SaveUser(ctx context.Context, q repository.DBExecutor, user *domain.User) (*domain.User, error) {
	var saved domain.User
	query := `INSERT INTO users (email, name, age) VALUES ($1, $2, $3) RETURNING ` + userColumns
	err := q.GetContext(ctx, &saved, query, user.Email, user.Name, user.Age)
	if err != nil {
		return nil, util.NewStorageError("failed to save user", translateError(err))
	}
	return &saved, nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.NewStorageError(fmt.Sprintf("failed to get user by ID %d", id), err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.NewStorageError(fmt.Sprintf("failed to get user by email '%s'", email), err)
	}
	return &user, nil
}

// GetAllUsers retrieves one page of users ordered by ID.
func (r *UserRepository) GetAllUsers(ctx context.Context, q repository.DBExecutor, skip, limit int) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &users, query, limit, skip); err != nil {
		return nil, util.NewStorageError(fmt.Sprintf("failed to list users (skip=%d, limit=%d)", skip, limit), err)
	}
	return users, nil
}

// UpdateUser overwrites the mutable fields of an existing user.
func (r *UserRepository) UpdateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) (*domain.User, error) {
	if !user.IsPersisted() {
		return nil, util.ErrMissingID
	}

	var updated domain.User
	query := `UPDATE users SET email = $1, name = $2, age = $3 WHERE id = $4 RETURNING ` + userColumns
	err := q.GetContext(ctx, &updated, query, user.Email, user.Name, user.Age, user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NewUserNotFound(user.ID)
		}
		return nil, util.NewStorageError(fmt.Sprintf("failed to update user %d", user.ID), translateError(err))
	}
	return &updated, nil
}

// DeleteUser removes a user by ID. It returns false when nothing matched.
func (r *UserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, util.NewStorageError(fmt.Sprintf("failed to delete user %d", id), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.NewStorageError(fmt.Sprintf("failed to get rows affected after deleting user %d", id), err)
	}
	return rowsAffected > 0, nil
}

// translateError marks unique constraint failures with util.ErrDuplicateEntry.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", util.ErrDuplicateEntry, pqErr.Message)
	}
	return err
}
