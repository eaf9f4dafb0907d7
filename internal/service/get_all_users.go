// internal/service/get_all_users.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"userservice/internal/domain"
	"userservice/internal/repository"
	"userservice/internal/util"
)

// Pagination defaults and bounds for listing users.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 100
)

// GetAllUsersUseCase lists users one page at a time.
type GetAllUsersUseCase interface {
	Execute(ctx context.Context, skip, limit int) ([]domain.User, error)
}

type getAllUsersUseCase struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewGetAllUsersUseCase creates a new instance of GetAllUsersUseCase.
func NewGetAllUsersUseCase(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, logger *slog.Logger) GetAllUsersUseCase {
	return &getAllUsersUseCase{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		logger:     logger.With("use_case", "GetAllUsers"),
	}
}

// Execute returns the page verbatim; an empty store yields an empty slice.
func (uc *getAllUsersUseCase) Execute(ctx context.Context, skip, limit int) ([]domain.User, error) {
	uc.logger.Info("listing users", "skip", skip, "limit", limit)

	switch {
	case skip < 0:
		uc.logger.Warn("list users rejected", "reason", util.ErrNegativeSkip.Error(), "skip", skip)
		return nil, util.ErrNegativeSkip
	case limit <= 0:
		uc.logger.Warn("list users rejected", "reason", util.ErrNonPositiveLimit.Error(), "limit", limit)
		return nil, util.ErrNonPositiveLimit
	case limit > MaxLimit:
		uc.logger.Warn("list users rejected", "reason", util.ErrLimitTooLarge.Error(), "limit", limit)
		return nil, util.ErrLimitTooLarge
	}

	users, err := uc.userRepo.GetAllUsers(ctx, uc.dbExecutor, skip, limit)
	if err != nil {
		err = fmt.Errorf("get all users: %w", err)
		logFailure(uc.logger, "list users failed", err)
		return nil, err
	}

	uc.logger.Info("users listed", "count", len(users))
	return users, nil
}
