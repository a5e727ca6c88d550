package memory

import (
	"context"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type reconciliationRepository struct {
	r *Repository
}

var _ repositories.ReconciliationRepository = (*reconciliationRepository)(nil)

func (rr *reconciliationRepository) Create(ctx context.Context, en *models.Reconciliation) error {
	defer rr.r.write(ctx)()

	if en.IsInProgress() {
		for _, stored := range rr.r.data.reconciliations {
			if stored.TrustAccountID == en.TrustAccountID && stored.IsInProgress() {
				return common.ErrReconciliationInProgress
			}
		}
	}

	now := rr.r.now()
	en.CreatedAt, en.UpdatedAt = now, now
	rr.r.data.reconciliations[en.ID] = *en

	return nil
}

func (rr *reconciliationRepository) GetByID(ctx context.Context, id string) (*models.Reconciliation, error) {
	defer rr.r.read(ctx)()

	en, ok := rr.r.data.reconciliations[id]
	if !ok {
		return nil, common.ErrReconciliationNotFound
	}

	return &en, nil
}

func (rr *reconciliationRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Reconciliation, error) {
	return rr.GetByID(ctx, id)
}

func (rr *reconciliationRepository) GetInProgress(ctx context.Context, trustAccountID string) (*models.Reconciliation, error) {
	defer rr.r.read(ctx)()

	for _, en := range rr.r.data.reconciliations {
		if en.TrustAccountID == trustAccountID && en.IsInProgress() {
			return &en, nil
		}
	}

	return nil, common.ErrReconciliationNotFound
}

func (rr *reconciliationRepository) Update(ctx context.Context, en *models.Reconciliation) error {
	defer rr.r.write(ctx)()

	stored, ok := rr.r.data.reconciliations[en.ID]
	if !ok || !stored.IsInProgress() {
		return common.ErrReconciliationClosed
	}

	en.CreatedAt = stored.CreatedAt
	en.UpdatedAt = rr.r.now()
	rr.r.data.reconciliations[en.ID] = *en

	return nil
}

func (rr *reconciliationRepository) ListByTrustAccount(ctx context.Context, trustAccountID string) ([]models.Reconciliation, error) {
	defer rr.r.read(ctx)()

	var ens []models.Reconciliation
	for _, en := range rr.r.data.reconciliations {
		if en.TrustAccountID == trustAccountID {
			ens = append(ens, en)
		}
	}
	sort.Slice(ens, func(i, j int) bool {
		if !ens[i].PeriodEnd.Equal(ens[j].PeriodEnd) {
			return ens[i].PeriodEnd.After(ens[j].PeriodEnd)
		}
		return ens[i].CreatedAt.After(ens[j].CreatedAt)
	})

	return ens, nil
}
