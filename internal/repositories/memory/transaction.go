package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type transactionRepository struct {
	r *Repository
}

var _ repositories.TransactionRepository = (*transactionRepository)(nil)

func copyTransaction(en models.Transaction) models.Transaction {
	en.Metadata = maps.Clone(en.Metadata)
	return en
}

// Create appends to the log; the sequence is the 1-based position in it.
func (tr *transactionRepository) Create(ctx context.Context, en *models.Transaction) error {
	defer tr.r.write(ctx)()

	en.Sequence = int64(len(tr.r.data.transactions)) + 1
	en.CreatedAt = tr.r.now()
	tr.r.data.transactions = append(tr.r.data.transactions, copyTransaction(*en))

	return nil
}

func (tr *transactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	defer tr.r.read(ctx)()

	for _, en := range tr.r.data.transactions {
		if en.ID == id {
			cp := copyTransaction(en)
			return &cp, nil
		}
	}

	return nil, common.ErrTransactionNotFound
}

func (tr *transactionRepository) MarkCleared(ctx context.Context, id string, clearedDate time.Time) (bool, error) {
	defer tr.r.write(ctx)()

	for i, en := range tr.r.data.transactions {
		if en.ID != id {
			continue
		}
		if en.IsCleared {
			return false, nil
		}
		tr.r.data.transactions[i].IsCleared = true
		tr.r.data.transactions[i].ClearedDate = &clearedDate
		return true, nil
	}

	return false, nil
}

func (tr *transactionRepository) List(ctx context.Context, opts models.ListTransactionsFilter) ([]models.Transaction, error) {
	defer tr.r.read(ctx)()

	cursor, limit, err := opts.BuildCursorAndLimit()
	if err != nil {
		return nil, err
	}

	var (
		seq      int64
		backward bool
	)
	if cursor != nil {
		seq, backward = cursor.Sequence, cursor.Backward
	}

	var ens []models.Transaction
	for _, en := range tr.r.data.transactions {
		if !matchTransaction(en, opts) {
			continue
		}
		if cursor != nil && ((backward && en.Sequence >= seq) || (!backward && en.Sequence <= seq)) {
			continue
		}
		ens = append(ens, copyTransaction(en))
	}

	if backward {
		slices.Reverse(ens)
	}
	if len(ens) > limit {
		ens = ens[:limit]
	}

	return ens, nil
}

func matchTransaction(en models.Transaction, opts models.ListTransactionsFilter) bool {
	switch {
	case en.TrustAccountID != opts.TrustAccountID:
		return false
	case opts.ClientLedgerID != "" && en.ClientLedgerID != opts.ClientLedgerID:
		return false
	case opts.Kind != "" && en.Kind != opts.Kind:
		return false
	case opts.IsCleared != nil && en.IsCleared != *opts.IsCleared:
		return false
	case opts.CreatedFrom != nil && en.CreatedAt.Before(*opts.CreatedFrom):
		return false
	case opts.CreatedTo != nil && !en.CreatedAt.Before(*opts.CreatedTo):
		return false
	}
	return true
}

func (tr *transactionRepository) SumUncleared(ctx context.Context, trustAccountID string, asOf time.Time) (models.Decimal, models.Decimal, error) {
	defer tr.r.read(ctx)()

	var deposits, disbursements []models.Decimal
	for _, en := range tr.r.data.transactions {
		if en.TrustAccountID != trustAccountID || en.IsCleared || !en.CreatedAt.Before(asOf) {
			continue
		}
		if en.SignedAmount.IsPositive() {
			deposits = append(deposits, en.Amount)
		} else {
			disbursements = append(disbursements, en.Amount)
		}
	}

	return models.SumDecimals(deposits...), models.SumDecimals(disbursements...), nil
}
