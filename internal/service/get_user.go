// internal/service/get_user.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"userservice/internal/domain"
	"userservice/internal/repository"
	"userservice/internal/util"
)

// GetUserUseCase fetches a single user by ID.
type GetUserUseCase interface {
	Execute(ctx context.Context, userID int64) (*domain.User, error)
}

type getUserUseCase struct {
	dbExecutor repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewGetUserUseCase creates a new instance of GetUserUseCase.
func NewGetUserUseCase(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, logger *slog.Logger) GetUserUseCase {
	return &getUserUseCase{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		logger:     logger.With("use_case", "GetUser"),
	}
}

func (uc *getUserUseCase) Execute(ctx context.Context, userID int64) (*domain.User, error) {
	uc.logger.Info("fetching user", "user_id", userID)

	if userID <= 0 {
		uc.logger.Warn("get user rejected", "reason", util.ErrNonPositiveID.Error(), "user_id", userID)
		return nil, util.ErrNonPositiveID
	}

	user, err := uc.userRepo.GetUserByID(ctx, uc.dbExecutor, userID)
	if err != nil {
		err = fmt.Errorf("get user: failed to get user %d: %w", userID, err)
		logFailure(uc.logger, "get user failed", err)
		return nil, err
	}
	if user == nil {
		err := util.NewUserNotFound(userID)
		logFailure(uc.logger, "get user failed", err)
		return nil, err
	}

	return user, nil
}
