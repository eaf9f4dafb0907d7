// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"userservice/internal/domain"
	"userservice/internal/repository"
	"userservice/internal/util"
	"userservice/pkg/db"

	"github.com/stretchr/testify/mock"
)

var errDB = errors.New("db error")

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, q repository.DBExecutor, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, q, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAllUsers(ctx context.Context, q repository.DBExecutor, skip, limit int) ([]domain.User, error) {
	args := m.Called(ctx, q, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, q, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

// MockDBExecutor stands in for the pool on read-only use cases.
// The repository is mocked, so none of its methods are expected to run.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return m.Called(ctx, dest, query, args).Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return m.Called(ctx, dest, query, args).Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	called := m.Called(ctx, query, args)
	return called.Get(0).(sql.Result), called.Error(1)
}

// MockTx is a transaction that also satisfies repository.DBExecutor.
type MockTx struct {
	MockDBExecutor
	ctrl mock.Mock
}

func (m *MockTx) Commit() error {
	return m.ctrl.Called().Error(0)
}

func (m *MockTx) Rollback() error {
	return m.ctrl.Called().Error(0)
}

// txFixture wires a TxManager that always hands out the same MockTx.
type txFixture struct {
	ctx      context.Context
	repo     *MockUserRepository
	tx       *MockTx
	executor *MockDBExecutor
	txm      *TxManager
	begun    int
	logger   *slog.Logger
}

func newTxFixture() *txFixture {
	f := &txFixture{
		ctx:      context.Background(),
		repo:     new(MockUserRepository),
		tx:       new(MockTx),
		executor: new(MockDBExecutor),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.txm = NewTxManager(
		nil,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			f.begun++
			return f.tx, nil
		},
		func(tx db.TxController) error {
			return tx.Commit()
		},
		func(tx db.TxController) {
			_ = tx.Rollback()
		},
	)
	return f
}

// expectCommit prepares a successful commit followed by the deferred rollback.
func (f *txFixture) expectCommit() {
	f.tx.ctrl.On("Commit").Return(nil).Once()
	f.tx.ctrl.On("Rollback").Return(sql.ErrTxDone).Once()
}

// expectRollback prepares a transaction that is rolled back without commit.
func (f *txFixture) expectRollback() {
	f.tx.ctrl.On("Rollback").Return(nil).Once()
}

func (f *txFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.tx.ctrl.AssertExpectations(t)
	f.executor.AssertExpectations(t)
}

func (f *txFixture) assertNoCommit(t *testing.T) {
	t.Helper()
	f.tx.ctrl.AssertNotCalled(t, "Commit")
}

// fakeUserRepository is an in-memory store with the same contract as the
// PostgreSQL adapter, used to run multi-step scenarios.
type fakeUserRepository struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]domain.User{}, nextID: 1}
}

func (r *fakeUserRepository) SaveUser(_ context.Context, _ repository.DBExecutor, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, util.NewStorageError("failed to save user", util.ErrDuplicateEntry)
		}
	}
	saved := *user
	saved.ID = r.nextID
	r.nextID++
	r.users[saved.ID] = saved
	return &saved, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, _ repository.DBExecutor, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, _ repository.DBExecutor, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) GetAllUsers(_ context.Context, _ repository.DBExecutor, skip, limit int) ([]domain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	page := []domain.User{}
	for i := skip; i < len(ids) && len(page) < limit; i++ {
		page = append(page, r.users[ids[i]])
	}
	return page, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, _ repository.DBExecutor, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, util.NewUserNotFound(user.ID)
	}
	r.users[user.ID] = *user
	updated := *user
	return &updated, nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, _ repository.DBExecutor, id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// noopTx satisfies db.TxController and repository.DBExecutor for the fake repository.
type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return sql.ErrTxDone }

func (noopTx) GetContext(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("noopTx: queries are not supported")
}

func (noopTx) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return errors.New("noopTx: queries are not supported")
}

func (noopTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errors.New("noopTx: queries are not supported")
}

func newNoopTxManager() *TxManager {
	return NewTxManager(
		nil,
		func(context.Context, db.DBTxBeginner) (db.TxController, error) { return noopTx{}, nil },
		db.CommitTx,
		db.RollbackTx,
	)
}

func ptr[T any](v T) *T { return &v }
