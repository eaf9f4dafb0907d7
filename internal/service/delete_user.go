// internal/service/delete_user.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"userservice/internal/repository"
	"userservice/internal/util"
)

// DeleteUserUseCase removes an existing user.
type DeleteUserUseCase interface {
	Execute(ctx context.Context, userID int64) (bool, error)
}

type deleteUserUseCase struct {
	tx       *TxManager
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewDeleteUserUseCase creates a new instance of DeleteUserUseCase.
func NewDeleteUserUseCase(tx *TxManager, userRepo repository.UserRepository, logger *slog.Logger) DeleteUserUseCase {
	return &deleteUserUseCase{
		tx:       tx,
		userRepo: userRepo,
		logger:   logger.With("use_case", "DeleteUser"),
	}
}

// Execute returns the repository's delete result, which is authoritative
// even when the preceding existence check succeeded.
func (uc *deleteUserUseCase) Execute(ctx context.Context, userID int64) (bool, error) {
	uc.logger.Info("deleting user", "user_id", userID)

	if userID <= 0 {
		uc.logger.Warn("delete user rejected", "reason", util.ErrNonPositiveID.Error(), "user_id", userID)
		return false, util.ErrNonPositiveID
	}

	var deleted bool
	err := uc.tx.WithinTx(ctx, "delete user", func(q repository.DBExecutor) error {
		existing, err := uc.userRepo.GetUserByID(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("delete user: failed to get user %d: %w", userID, err)
		}
		if existing == nil {
			return util.NewUserNotFound(userID)
		}

		deleted, err = uc.userRepo.DeleteUser(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("delete user: failed to delete user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		logFailure(uc.logger, "delete user failed", err)
		return false, err
	}

	if !deleted {
		uc.logger.Warn("delete returned no row", "user_id", userID)
	} else {
		uc.logger.Info("user deleted", "user_id", userID)
	}
	return deleted, nil
}
