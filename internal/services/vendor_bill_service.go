package services

import (
	"context"
	"fmt"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

type VendorBillService interface {
	Create(ctx context.Context, in models.CreateVendorBillIn) (out *models.VendorBill, err error)
	GetByID(ctx context.Context, id string) (out *models.VendorBill, err error)
	List(ctx context.Context, trustAccountID string, status models.VendorBillStatus) (out []models.VendorBill, err error)
}

type vendorBill service

var _ VendorBillService = (*vendorBill)(nil)

func (vs *vendorBill) Create(ctx context.Context, in models.CreateVendorBillIn) (out *models.VendorBill, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = validateAmount(in.Amount); err != nil {
		return nil, err
	}

	account, err := vs.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, in.TrustAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, common.ErrTrustAccountInactive
	}

	if in.ClientLedgerID != "" {
		ledger, err := vs.srv.sqlRepo.GetClientLedgerRepository().GetByID(ctx, in.ClientLedgerID)
		if err != nil {
			return nil, err
		}
		if ledger.TrustAccountID != account.ID {
			return nil, common.ErrClientLedgerMismatch
		}
	}

	bill := &models.VendorBill{
		ID:             vs.srv.idgenerator.Generate(idgenerator.PrefixVendorBill),
		TrustAccountID: account.ID,
		ClientLedgerID: in.ClientLedgerID,
		VendorID:       in.VendorID,
		PayeeName:      in.PayeeName,
		Reference:      in.Reference,
		Amount:         in.Amount,
		BalanceDue:     in.Amount,
		Status:         models.VendorBillStatusDraft,
	}
	if err = vs.srv.sqlRepo.GetVendorBillRepository().Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

func (vs *vendorBill) GetByID(ctx context.Context, id string) (out *models.VendorBill, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return vs.srv.sqlRepo.GetVendorBillRepository().GetByID(ctx, id)
}

func (vs *vendorBill) List(ctx context.Context, trustAccountID string, status models.VendorBillStatus) (out []models.VendorBill, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	switch status {
	case "", models.VendorBillStatusDraft, models.VendorBillStatusPendingApproval, models.VendorBillStatusApproved,
		models.VendorBillStatusRejected, models.VendorBillStatusPaid:
	default:
		return nil, fmt.Errorf("%w: unknown vendor bill status %q", common.ErrValidation, status)
	}

	return vs.srv.sqlRepo.GetVendorBillRepository().List(ctx, trustAccountID, status)
}
