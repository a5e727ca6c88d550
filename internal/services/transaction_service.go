package services

import (
	"context"
	"maps"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type TransactionService interface {
	Post(ctx context.Context, in models.PostTransactionIn) (out *models.Transaction, err error)
	GetByID(ctx context.Context, id string) (out *models.Transaction, err error)
	// List returns up to one row more than the page size; the extra row only signals another page.
	List(ctx context.Context, filter models.ListTransactionsFilter) (out []models.Transaction, err error)
	// MarkCleared is idempotent: clearing a cleared transaction returns it unchanged.
	MarkCleared(ctx context.Context, id string, clearedDate time.Time) (out *models.Transaction, err error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

func (ts *transaction) Post(ctx context.Context, in models.PostTransactionIn) (out *models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = validatePosting(in); err != nil {
		return nil, err
	}

	err = ts.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		var postErr error
		out, postErr = ts.post(actx, r, in)
		return postErr
	})
	if err != nil {
		return nil, err
	}

	ts.srv.metrics.GetLedgerPrometheus().RecordPosting(out.Kind.String(), out.Amount.Decimal)
	publishEvents(ctx, ts.srv, newEvent(ts.srv, models.EventTransactionPosted, out.TrustAccountID, out.ID, out.ToModelResponse()))

	return out, nil
}

func validatePosting(in models.PostTransactionIn) error {
	if !in.Kind.IsValid() {
		return common.ErrInvalidTransactionKind
	}
	return validateAmount(in.Amount)
}

// post applies one posting inside the caller's unit of work. The account row is locked before the
// ledger row, the same order every writer uses.
func (ts *transaction) post(ctx context.Context, r repositories.SQLRepository, in models.PostTransactionIn) (*models.Transaction, error) {
	if err := validatePosting(in); err != nil {
		return nil, err
	}

	signed, err := in.Kind.SignedAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	account, err := r.GetTrustAccountRepository().GetByIDForUpdate(ctx, in.TrustAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, common.ErrTrustAccountInactive
	}

	ledgerRepo := r.GetClientLedgerRepository()
	var ledger *models.ClientLedger
	if in.ClientLedgerID == "" {
		ledger, err = ledgerRepo.GetUnallocatedForUpdate(ctx, account.ID)
	} else {
		ledger, err = ledgerRepo.GetByIDForUpdate(ctx, in.ClientLedgerID)
	}
	if err != nil {
		return nil, err
	}
	if ledger.TrustAccountID != account.ID {
		return nil, common.ErrClientLedgerMismatch
	}

	if err = ledger.ApplySigned(signed); err != nil {
		return nil, err
	}
	account.ApplySigned(signed)

	if err = ledgerRepo.UpdateBalance(ctx, ledger); err != nil {
		return nil, err
	}
	if err = r.GetTrustAccountRepository().UpdateBalance(ctx, account); err != nil {
		return nil, err
	}

	trx := &models.Transaction{
		ID:             ts.srv.idgenerator.Generate(idgenerator.PrefixTransaction),
		TrustAccountID: account.ID,
		ClientLedgerID: ledger.ID,
		Kind:           in.Kind,
		Amount:         in.Amount,
		SignedAmount:   signed,
		Description:    in.Description,
		Reference:      in.Reference,
		Metadata:       maps.Clone(in.Metadata),
	}
	if err = r.GetTransactionRepository().Create(ctx, trx); err != nil {
		return nil, err
	}

	return trx, nil
}

func (ts *transaction) GetByID(ctx context.Context, id string) (out *models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ts.srv.sqlRepo.GetTransactionRepository().GetByID(ctx, id)
}

func (ts *transaction) List(ctx context.Context, filter models.ListTransactionsFilter) (out []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, common.ErrInvalidTransactionKind
	}

	if _, err = ts.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, filter.TrustAccountID); err != nil {
		return nil, err
	}

	return ts.srv.sqlRepo.GetTransactionRepository().List(ctx, filter)
}

func (ts *transaction) MarkCleared(ctx context.Context, id string, clearedDate time.Time) (out *models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if clearedDate.IsZero() {
		clearedDate = common.TruncateToDate(common.Now())
	}

	trxRepo := ts.srv.sqlRepo.GetTransactionRepository()

	changed, err := trxRepo.MarkCleared(ctx, id, clearedDate)
	if err != nil {
		return nil, err
	}

	out, err = trxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changed {
		publishEvents(ctx, ts.srv, newEvent(ts.srv, models.EventTransactionCleared, out.TrustAccountID, out.ID, out.ToModelResponse()))
	}

	return out, nil
}
