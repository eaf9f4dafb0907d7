// internal/service/create_user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"userservice/internal/domain"
	"userservice/internal/repository"
	"userservice/internal/util"
)

// CreateUserUseCase registers a new user.
type CreateUserUseCase interface {
	Execute(ctx context.Context, email, name string, age int) (*domain.User, error)
}

type createUserUseCase struct {
	tx       *TxManager
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewCreateUserUseCase creates a new instance of CreateUserUseCase.
func NewCreateUserUseCase(tx *TxManager, userRepo repository.UserRepository, logger *slog.Logger) CreateUserUseCase {
	return &createUserUseCase{
		tx:       tx,
		userRepo: userRepo,
		logger:   logger.With("use_case", "CreateUser"),
	}
}

// Execute validates name, email format, age and email availability, in that
// order, then saves the user and returns it with its assigned ID.
func (uc *createUserUseCase) Execute(ctx context.Context, email, name string, age int) (*domain.User, error) {
	uc.logger.Info("creating user", "email", email, "name", name, "age", age)

	if !domain.ValidName(name) {
		uc.logger.Warn("create user rejected", "reason", util.ErrEmptyName.Error(), "name", name)
		return nil, util.ErrEmptyName
	}
	if !domain.ValidEmail(email) {
		uc.logger.Warn("create user rejected", "reason", util.ErrInvalidEmailFormat.Error(), "email", email)
		return nil, util.ErrInvalidEmailFormat
	}
	if !domain.ValidAge(age) {
		uc.logger.Warn("create user rejected", "reason", util.ErrNonPositiveAge.Error(), "age", age)
		return nil, util.ErrNonPositiveAge
	}

	var saved *domain.User
	err := uc.tx.WithinTx(ctx, "create user", func(q repository.DBExecutor) error {
		existing, err := uc.userRepo.GetUserByEmail(ctx, q, email)
		if err != nil {
			return fmt.Errorf("create user: failed to check existing email: %w", err)
		}
		if existing != nil {
			return util.ErrDuplicateEmail
		}

		saved, err = uc.userRepo.SaveUser(ctx, q, domain.NewUser(email, name, age))
		if err != nil {
			// Lost the race against a concurrent insert; the unique index caught it.
			if errors.Is(err, util.ErrDuplicateEntry) {
				return util.ErrDuplicateEmail
			}
			return fmt.Errorf("create user: failed to save user: %w", err)
		}
		return nil
	})
	if err != nil {
		logFailure(uc.logger, "create user failed", err)
		return nil, err
	}

	uc.logger.Info("user created", "id", saved.ID, "email", saved.Email)
	return saved, nil
}
