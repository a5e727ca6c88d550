package memory

import (
	"context"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type vendorBillRepository struct {
	r *Repository
}

var _ repositories.VendorBillRepository = (*vendorBillRepository)(nil)

func (vbr *vendorBillRepository) Create(ctx context.Context, en *models.VendorBill) error {
	defer vbr.r.write(ctx)()

	now := vbr.r.now()
	en.CreatedAt, en.UpdatedAt = now, now
	vbr.r.data.vendorBills[en.ID] = *en

	return nil
}

func (vbr *vendorBillRepository) GetByID(ctx context.Context, id string) (*models.VendorBill, error) {
	defer vbr.r.read(ctx)()

	en, ok := vbr.r.data.vendorBills[id]
	if !ok {
		return nil, common.ErrVendorBillNotFound
	}

	return &en, nil
}

func (vbr *vendorBillRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.VendorBill, error) {
	return vbr.GetByID(ctx, id)
}

func (vbr *vendorBillRepository) GetByIDsForUpdate(ctx context.Context, ids []string) ([]models.VendorBill, error) {
	defer vbr.r.read(ctx)()

	seen := make(map[string]bool, len(ids))
	var ens []models.VendorBill
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if en, ok := vbr.r.data.vendorBills[id]; ok {
			ens = append(ens, en)
		}
	}
	sort.Slice(ens, func(i, j int) bool { return ens[i].ID < ens[j].ID })

	return ens, nil
}

func (vbr *vendorBillRepository) Update(ctx context.Context, en *models.VendorBill) error {
	defer vbr.r.write(ctx)()

	stored, ok := vbr.r.data.vendorBills[en.ID]
	if !ok {
		return common.ErrVendorBillNotFound
	}
	stored.Status = en.Status
	stored.BalanceDue = en.BalanceDue
	stored.CheckRunID = en.CheckRunID
	stored.PaidAt = en.PaidAt
	stored.UpdatedAt = vbr.r.now()
	vbr.r.data.vendorBills[en.ID] = stored

	return nil
}

func (vbr *vendorBillRepository) List(ctx context.Context, trustAccountID string, status models.VendorBillStatus) ([]models.VendorBill, error) {
	defer vbr.r.read(ctx)()

	var ens []models.VendorBill
	for _, en := range vbr.r.data.vendorBills {
		if trustAccountID != "" && en.TrustAccountID != trustAccountID {
			continue
		}
		if status != "" && en.Status != status {
			continue
		}
		ens = append(ens, en)
	}
	sort.Slice(ens, func(i, j int) bool {
		if !ens[i].CreatedAt.Equal(ens[j].CreatedAt) {
			return ens[i].CreatedAt.Before(ens[j].CreatedAt)
		}
		return ens[i].ID < ens[j].ID
	})

	return ens, nil
}
