// internal/service/delete_user_test.go
package service

import (
	"testing"

	"userservice/internal/domain"
	"userservice/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUser(t *testing.T) {
	t.Run("DeletesExistingUser", func(t *testing.T) {
		f := newTxFixture()
		uc := NewDeleteUserUseCase(f.txm, f.repo, f.logger)

		f.expectCommit()
		f.repo.On("GetUserByID", f.ctx, f.tx, int64(5)).
			Return(&domain.User{ID: 5, Email: "e@b.com", Name: "E", Age: 50}, nil).Once()
		f.repo.On("DeleteUser", f.ctx, f.tx, int64(5)).Return(true, nil).Once()

		deleted, err := uc.Execute(f.ctx, 5)

		require.NoError(t, err)
		assert.True(t, deleted)
		f.assertExpectations(t)
	})

	t.Run("RepositoryResultIsAuthoritative", func(t *testing.T) {
		f := newTxFixture()
		uc := NewDeleteUserUseCase(f.txm, f.repo, f.logger)

		f.expectCommit()
		f.repo.On("GetUserByID", f.ctx, f.tx, int64(5)).
			Return(&domain.User{ID: 5, Email: "e@b.com", Name: "E", Age: 50}, nil).Once()
		f.repo.On("DeleteUser", f.ctx, f.tx, int64(5)).Return(false, nil).Once()

		deleted, err := uc.Execute(f.ctx, 5)

		require.NoError(t, err)
		assert.False(t, deleted)
		f.assertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newTxFixture()
		uc := NewDeleteUserUseCase(f.txm, f.repo, f.logger)

		f.expectRollback()
		f.repo.On("GetUserByID", f.ctx, f.tx, int64(999)).Return(nil, nil).Once()

		deleted, err := uc.Execute(f.ctx, 999)

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.EqualError(t, err, "User with ID 999 not found")
		assert.False(t, deleted)
		f.repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
		f.assertNoCommit(t)
		f.assertExpectations(t)
	})

	t.Run("NonPositiveID", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			f := newTxFixture()
			uc := NewDeleteUserUseCase(f.txm, f.repo, f.logger)

			deleted, err := uc.Execute(f.ctx, id)

			assert.ErrorIs(t, err, util.ErrNonPositiveID)
			assert.False(t, deleted)
			assert.Equal(t, 0, f.begun)
		}
	})

	t.Run("StorageErrorOnDelete", func(t *testing.T) {
		f := newTxFixture()
		uc := NewDeleteUserUseCase(f.txm, f.repo, f.logger)

		f.expectRollback()
		f.repo.On("GetUserByID", f.ctx, f.tx, int64(5)).
			Return(&domain.User{ID: 5, Email: "e@b.com", Name: "E", Age: 50}, nil).Once()
		f.repo.On("DeleteUser", f.ctx, f.tx, int64(5)).
			Return(false, util.NewStorageError("failed to delete user 5", errDB)).Once()

		deleted, err := uc.Execute(f.ctx, 5)

		assert.ErrorIs(t, err, util.ErrStorage)
		assert.Contains(t, err.Error(), "failed to delete user 5")
		assert.False(t, deleted)
		f.assertNoCommit(t)
		f.assertExpectations(t)
	})
}
