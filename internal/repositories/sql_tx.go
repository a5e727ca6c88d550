package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type unitOfWorkKey struct{}

func withUnitOfWork(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, unitOfWorkKey{}, tx)
}

func unitOfWork(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(unitOfWorkKey{}).(*sql.Tx)
	return tx, ok
}

func (r *Repository) writer(ctx context.Context) querier {
	if tx, ok := unitOfWork(ctx); ok {
		return tx
	}
	return r.dbWrite
}

// reader serves plain lookups from the replica. Inside Atomic it goes through the transaction,
// a balance check must see the rows it locked.
func (r *Repository) reader(ctx context.Context) querier {
	if tx, ok := unitOfWork(ctx); ok {
		return tx
	}
	return r.dbRead
}

// Atomic commits when steps returns nil and rolls back otherwise. A call made inside steps
// joins the running transaction instead of opening a second one.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if _, ok := unitOfWork(ctx); ok {
		return steps(ctx, r)
	}

	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return mapPostgresError(err)
	}
	log.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("unit of work panicked: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
			return
		}
		if err != nil {
			r.rollback(ctx, tx, &err)
			return
		}
		r.commit(ctx, tx, &err)
	}()

	return steps(withUnitOfWork(ctx, tx), r)
}

func (r *Repository) rollback(ctx context.Context, tx *sql.Tx, err *error) {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		*err = fmt.Errorf("%w (rollback: %v)", *err, rbErr)
	}
	log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(*err))
}

func (r *Repository) commit(ctx context.Context, tx *sql.Tx, err *error) {
	cErr := tx.Commit()
	switch {
	case cErr == nil:
		log.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
	case errors.Is(cErr, sql.ErrTxDone):
		log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_CLOSED]", log.Err(cErr))
	default:
		*err = mapPostgresError(cErr)
		log.Warn(ctx, "[DATABASE.TRANSACTION.COMMIT_FAILED]", log.Err(*err))
	}
}
