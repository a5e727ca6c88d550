package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type trustAccountRepository struct {
	r *Repository
}

var _ repositories.TrustAccountRepository = (*trustAccountRepository)(nil)

func (tar *trustAccountRepository) Create(ctx context.Context, en *models.TrustAccount) error {
	defer tar.r.write(ctx)()

	if _, ok := tar.r.data.trustAccounts[en.ID]; ok {
		return fmt.Errorf("%w: trust account %s already exists", common.ErrValidation, en.ID)
	}
	now := tar.r.now()
	en.CreatedAt, en.UpdatedAt = now, now
	tar.r.data.trustAccounts[en.ID] = *en

	return nil
}

func (tar *trustAccountRepository) GetByID(ctx context.Context, id string) (*models.TrustAccount, error) {
	defer tar.r.read(ctx)()

	en, ok := tar.r.data.trustAccounts[id]
	if !ok {
		return nil, common.ErrTrustAccountNotFound
	}

	return &en, nil
}

func (tar *trustAccountRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.TrustAccount, error) {
	return tar.GetByID(ctx, id)
}

func (tar *trustAccountRepository) UpdateBalance(ctx context.Context, en *models.TrustAccount) error {
	defer tar.r.write(ctx)()

	stored, ok := tar.r.data.trustAccounts[en.ID]
	if !ok || stored.Version != en.Version {
		return common.ErrConcurrentModification
	}
	stored.BookBalance = en.BookBalance
	stored.Version++
	stored.UpdatedAt = tar.r.now()
	tar.r.data.trustAccounts[en.ID] = stored
	en.Version = stored.Version

	return nil
}

func (tar *trustAccountRepository) SetLastReconciledDate(ctx context.Context, id string, date time.Time) error {
	defer tar.r.write(ctx)()

	stored, ok := tar.r.data.trustAccounts[id]
	if !ok {
		return common.ErrTrustAccountNotFound
	}
	stored.LastReconciledDate = &date
	stored.UpdatedAt = tar.r.now()
	tar.r.data.trustAccounts[id] = stored

	return nil
}

func (tar *trustAccountRepository) Deactivate(ctx context.Context, id string) error {
	defer tar.r.write(ctx)()

	stored, ok := tar.r.data.trustAccounts[id]
	if !ok {
		return common.ErrTrustAccountNotFound
	}
	stored.IsActive = false
	stored.UpdatedAt = tar.r.now()
	tar.r.data.trustAccounts[id] = stored

	return nil
}

func (tar *trustAccountRepository) ListDueForReconciliation(ctx context.Context, cutoff time.Time) ([]models.TrustAccount, error) {
	defer tar.r.read(ctx)()

	var ens []models.TrustAccount
	for _, en := range tar.r.data.trustAccounts {
		if !en.IsActive {
			continue
		}
		if en.LastReconciledDate == nil || en.LastReconciledDate.Before(cutoff) {
			ens = append(ens, en)
		}
	}
	sort.Slice(ens, func(i, j int) bool { return ens[i].ID < ens[j].ID })

	return ens, nil
}
