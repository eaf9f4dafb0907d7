// internal/service/tx.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"userservice/internal/repository"
	"userservice/internal/util"
	"userservice/pkg/db"
)

// TxManager runs a check-then-act sequence on a single transaction.
type TxManager struct {
	dbBeginner db.DBTxBeginner
	beginTx    db.BeginTxFunc    // Injected dependency for beginning transactions
	commitTx   db.CommitTxFunc   // Injected dependency for committing transactions
	rollbackTx db.RollbackTxFunc // Injected dependency for rolling back transactions
}

// NewTxManager creates a TxManager over the given beginner and transaction helpers.
func NewTxManager(
	dbBeginner db.DBTxBeginner,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) *TxManager {
	return &TxManager{
		dbBeginner: dbBeginner,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// WithinTx calls fn with a transactional executor and commits when fn succeeds.
// Any error from fn rolls the transaction back and is returned unchanged.
func (m *TxManager) WithinTx(ctx context.Context, op string, fn func(q repository.DBExecutor) error) error {
	txController, err := m.beginTx(ctx, m.dbBeginner)
	if err != nil {
		return util.NewStorageError(op+": failed to begin transaction", err)
	}
	defer m.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("%s: transaction controller does not implement DBExecutor", op)
	}

	if err := fn(txExecutor); err != nil {
		return err
	}

	if err := m.commitTx(txController); err != nil {
		return util.NewStorageError(op+": failed to commit transaction", err)
	}
	return nil
}

// logFailure logs rejections at Warn and unexpected failures at Error.
func logFailure(logger *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidInput), errors.Is(err, util.ErrConflict), errors.Is(err, util.ErrNotFound):
		logger.Warn(msg, "reason", err.Error())
	default:
		logger.Error(msg, "error", err)
	}
}
