package repositories

import (
	"context"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

// CheckSequenceRepository hands out check numbers. The sequence row is locked and advanced inside
// the caller's transaction, so a rolled back check run gives its numbers back.
type CheckSequenceRepository interface {
	Create(ctx context.Context, trustAccountID string, firstCheckNumber int64) (err error)
	// Allocate reserves count consecutive numbers and returns the first one.
	Allocate(ctx context.Context, trustAccountID string, count int) (first int64, err error)
}

type checkSequenceRepository sqlRepo

var _ CheckSequenceRepository = (*checkSequenceRepository)(nil)

func (csr *checkSequenceRepository) Create(ctx context.Context, trustAccountID string, firstCheckNumber int64) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("check_sequence", "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := csr.r.writer(ctx)

	if _, err = db.ExecContext(ctx, createCheckSequenceQuery, trustAccountID, firstCheckNumber); err != nil {
		return mapPostgresError(err)
	}

	return nil
}

func (csr *checkSequenceRepository) Allocate(ctx context.Context, trustAccountID string, count int) (first int64, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore("check_sequence", "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if count <= 0 {
		return 0, fmt.Errorf("%w: check count must be positive", common.ErrValidation)
	}

	db := csr.r.writer(ctx)

	if err = db.QueryRowContext(ctx, getNextCheckNumberForUpdateQuery, trustAccountID).Scan(&first); err != nil {
		return 0, notFound(err, common.ErrCheckSequenceAbsent)
	}

	res, err := db.ExecContext(ctx, updateNextCheckNumberQuery, first+int64(count), trustAccountID)
	if err != nil {
		return 0, mapPostgresError(err)
	}

	if err = requireAffected(res, common.ErrCheckSequenceAbsent); err != nil {
		return 0, err
	}

	return first, nil
}
