// internal/repository/user_repo.go
package repository

import (
	"context"

	"userservice/internal/domain"
)

// UserRepository defines the interface for user data operations.
// Every method runs on the DBExecutor it is given, either the pool or an open transaction.
type UserRepository interface {
	// SaveUser inserts a user with a zero ID and returns it with the store-assigned ID.
	SaveUser(ctx context.Context, q DBExecutor, user *domain.User) (*domain.User, error)
	// GetUserByID retrieves a user by ID. It returns nil, nil when no record matches.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a user by email. It returns nil, nil when no record matches.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// GetAllUsers returns up to limit users after skipping skip, in primary key order.
	GetAllUsers(ctx context.Context, q DBExecutor, skip, limit int) ([]domain.User, error)
	// UpdateUser overwrites email, name and age of an existing user.
	// It fails with util.ErrNotFound when the ID does not exist.
	UpdateUser(ctx context.Context, q DBExecutor, user *domain.User) (*domain.User, error)
	// DeleteUser removes a user and reports whether a record existed.
	DeleteUser(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
