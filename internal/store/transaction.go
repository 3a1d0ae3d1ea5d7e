package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/kitchen-api/internal/platform/logger"
)

// TxFn is a unit of work executed inside a database transaction.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction begins a transaction, runs fn, and commits when fn
// returns nil. Any error or panic from fn rolls the transaction back; a
// panic is re-raised after the rollback.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after panic",
				slog.String("error", rbErr.Error()),
				slog.Any("panic", p))
		} else {
			log.Error("rolled back transaction after panic", slog.Any("panic", p))
		}
		// ALLOW-PANIC: propagating the caller's panic after rollback
		panic(p)
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction", slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
