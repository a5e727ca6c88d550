package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type clientLedgerRepository struct {
	r *Repository
}

var _ repositories.ClientLedgerRepository = (*clientLedgerRepository)(nil)

func (clr *clientLedgerRepository) Create(ctx context.Context, en *models.ClientLedger) error {
	defer clr.r.write(ctx)()

	for _, l := range clr.r.data.clientLedgers {
		if l.TrustAccountID != en.TrustAccountID {
			continue
		}
		if l.ClientID == en.ClientID && l.MatterID == en.MatterID {
			return fmt.Errorf("%w: ledger for client %s already exists", common.ErrValidation, en.ClientID)
		}
		if l.IsUnallocated && en.IsUnallocated {
			return fmt.Errorf("%w: unallocated ledger already exists", common.ErrValidation)
		}
	}

	now := clr.r.now()
	en.CreatedAt, en.UpdatedAt = now, now
	clr.r.data.clientLedgers[en.ID] = *en

	return nil
}

func (clr *clientLedgerRepository) GetByID(ctx context.Context, id string) (*models.ClientLedger, error) {
	defer clr.r.read(ctx)()

	en, ok := clr.r.data.clientLedgers[id]
	if !ok {
		return nil, common.ErrClientLedgerNotFound
	}

	return &en, nil
}

func (clr *clientLedgerRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.ClientLedger, error) {
	return clr.GetByID(ctx, id)
}

func (clr *clientLedgerRepository) GetUnallocatedForUpdate(ctx context.Context, trustAccountID string) (*models.ClientLedger, error) {
	defer clr.r.read(ctx)()

	for _, en := range clr.r.data.clientLedgers {
		if en.TrustAccountID == trustAccountID && en.IsUnallocated {
			return &en, nil
		}
	}

	return nil, common.ErrClientLedgerNotFound
}

func (clr *clientLedgerRepository) UpdateBalance(ctx context.Context, en *models.ClientLedger) error {
	defer clr.r.write(ctx)()

	stored, ok := clr.r.data.clientLedgers[en.ID]
	if !ok {
		return common.ErrClientLedgerNotFound
	}
	stored.Balance = en.Balance
	stored.UpdatedAt = clr.r.now()
	clr.r.data.clientLedgers[en.ID] = stored

	return nil
}

func (clr *clientLedgerRepository) ListByTrustAccount(ctx context.Context, trustAccountID string) ([]models.ClientLedger, error) {
	defer clr.r.read(ctx)()

	var ens []models.ClientLedger
	for _, en := range clr.r.data.clientLedgers {
		if en.TrustAccountID == trustAccountID {
			ens = append(ens, en)
		}
	}
	sort.Slice(ens, func(i, j int) bool {
		if ens[i].IsUnallocated != ens[j].IsUnallocated {
			return ens[i].IsUnallocated
		}
		if !ens[i].CreatedAt.Equal(ens[j].CreatedAt) {
			return ens[i].CreatedAt.Before(ens[j].CreatedAt)
		}
		return ens[i].ID < ens[j].ID
	})

	return ens, nil
}

func (clr *clientLedgerRepository) SumBalances(ctx context.Context, trustAccountID string) (models.Decimal, int, error) {
	defer clr.r.read(ctx)()

	var (
		balances []models.Decimal
		count    int
	)
	for _, en := range clr.r.data.clientLedgers {
		if en.TrustAccountID == trustAccountID {
			balances = append(balances, en.Balance)
			count++
		}
	}

	return models.SumDecimals(balances...), count, nil
}
