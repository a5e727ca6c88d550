package repositories

import (
	"context"
	"database/sql"

	"github.com/trustbooks/go-trust-ledger/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	tar *trustAccountRepository
	clr *clientLedgerRepository
	tr  *transactionRepository
	rr  *reconciliationRepository
	awr *approvalWorkflowRepository
	arr *approvalRequestRepository
	vbr *vendorBillRepository
	crr *checkRunRepository
	csr *checkSequenceRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.tar = (*trustAccountRepository)(&rtx.common)
	rtx.clr = (*clientLedgerRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.rr = (*reconciliationRepository)(&rtx.common)
	rtx.awr = (*approvalWorkflowRepository)(&rtx.common)
	rtx.arr = (*approvalRequestRepository)(&rtx.common)
	rtx.vbr = (*vendorBillRepository)(&rtx.common)
	rtx.crr = (*checkRunRepository)(&rtx.common)
	rtx.csr = (*checkSequenceRepository)(&rtx.common)

	return rtx
}

// SQLRepository is the store contract every engine works against.
// Atomic runs steps in one database transaction; repositories obtained from the r passed to
// steps take part in it, and row locks taken with the ForUpdate methods last until it ends.
type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetTrustAccountRepository() TrustAccountRepository
	GetClientLedgerRepository() ClientLedgerRepository
	GetTransactionRepository() TransactionRepository
	GetReconciliationRepository() ReconciliationRepository
	GetApprovalWorkflowRepository() ApprovalWorkflowRepository
	GetApprovalRequestRepository() ApprovalRequestRepository
	GetVendorBillRepository() VendorBillRepository
	GetCheckRunRepository() CheckRunRepository
	GetCheckSequenceRepository() CheckSequenceRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) GetTrustAccountRepository() TrustAccountRepository {
	return r.tar
}

func (r *Repository) GetClientLedgerRepository() ClientLedgerRepository {
	return r.clr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetReconciliationRepository() ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetApprovalWorkflowRepository() ApprovalWorkflowRepository {
	return r.awr
}

func (r *Repository) GetApprovalRequestRepository() ApprovalRequestRepository {
	return r.arr
}

func (r *Repository) GetVendorBillRepository() VendorBillRepository {
	return r.vbr
}

func (r *Repository) GetCheckRunRepository() CheckRunRepository {
	return r.crr
}

func (r *Repository) GetCheckSequenceRepository() CheckSequenceRepository {
	return r.csr
}
