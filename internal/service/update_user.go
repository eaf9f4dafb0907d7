// internal/service/update_user.go
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

// UpdateUserInput carries the fields to change. A nil field is left as stored.
type UpdateUserInput struct {
	Email *string
	Name  *string
	Age   *int
}

// Empty reports whether no field was provided.
func (in UpdateUserInput) Empty() bool {
	return in.Email == nil && in.Name == nil && in.Age == nil
}

// UpdateUserUseCase changes some or all fields of an existing user.
type UpdateUserUseCase interface {
	Execute(ctx context.Context, userID int64, input UpdateUserInput) (*domain.User, error)
}

type updateUserUseCase struct {
	tx       *TxManager
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUpdateUserUseCase creates a new instance of UpdateUserUseCase.
func NewUpdateUserUseCase(tx *TxManager, userRepo repository.UserRepository, logger *slog.Logger) UpdateUserUseCase {
	return &updateUserUseCase{
		tx:       tx,
		userRepo: userRepo,
		logger:   logger.With("use_case", "UpdateUser"),
	}
}

// Execute validates only the provided fields; the others keep their stored
// values, which were valid when written.
func (uc *updateUserUseCase) Execute(ctx context.Context, userID int64, input UpdateUserInput) (*domain.User, error) {
	uc.logger.Info("updating user", "user_id", userID,
		"email_provided", input.Email != nil, "name_provided", input.Name != nil, "age_provided", input.Age != nil)

	if userID <= 0 {
		uc.logger.Warn("update user rejected", "reason", util.ErrNonPositiveID.Error(), "user_id", userID)
		return nil, util.ErrNonPositiveID
	}
	if input.Empty() {
		uc.logger.Warn("update user rejected", "reason", util.ErrNoFieldsProvided.Error())
		return nil, util.ErrNoFieldsProvided
	}

	var updated *domain.User
	err := uc.tx.WithinTx(ctx, "update user", func(q repository.DBExecutor) error {
		existing, err := uc.userRepo.GetUserByID(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("update user: failed to get user %d: %w", userID, err)
		}
		if existing == nil {
			return util.NewUserNotFound(userID)
		}

		merged := *existing
		if input.Email != nil {
			if !domain.ValidEmail(*input.Email) {
				return util.ErrInvalidEmailFormat
			}
			holder, err := uc.userRepo.GetUserByEmail(ctx, q, *input.Email)
			if err != nil {
				return fmt.Errorf("update user: failed to check email availability: %w", err)
			}
			if holder != nil && holder.ID != userID {
				return util.ErrDuplicateEmail
			}
			merged.Email = *input.Email
		}
		if input.Name != nil {
			if !domain.ValidName(*input.Name) {
				return util.ErrEmptyName
			}
			merged.Name = *input.Name
		}
		if input.Age != nil {
			if !domain.ValidAge(*input.Age) {
				return util.ErrNonPositiveAge
			}
			merged.Age = *input.Age
		}

		updated, err = uc.userRepo.UpdateUser(ctx, q, &merged)
		if err != nil {
			switch {
			case errors.Is(err, util.ErrDuplicateEntry):
				return util.ErrDuplicateEmail
			case errors.Is(err, util.ErrNotFound):
				return err
			}
			return fmt.Errorf("update user: failed to update user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		logFailure(uc.logger, "update user failed", err)
		return nil, err
	}

	uc.logger.Info("user updated", "id", updated.ID, "email", updated.Email, "name", updated.Name, "age", updated.Age)
	return updated, nil
}
