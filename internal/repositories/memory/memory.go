// Package memory is an in-process implementation of repositories.SQLRepository. It honours the
// same contract as the Postgres store: Atomic is all-or-nothing, the ForUpdate methods serialize
// writers and the same sentinel errors are returned. Service tests run against it.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type lockedKey struct{}

type store struct {
	trustAccounts   map[string]models.TrustAccount
	clientLedgers   map[string]models.ClientLedger
	transactions    []models.Transaction
	reconciliations map[string]models.Reconciliation
	workflows       map[string]models.ApprovalWorkflow
	requests        map[string]models.ApprovalRequest
	vendorBills     map[string]models.VendorBill
	checkRuns       map[string]models.CheckRun
	checkSequences  map[string]int64
}

func newStore() *store {
	return &store{
		trustAccounts:   map[string]models.TrustAccount{},
		clientLedgers:   map[string]models.ClientLedger{},
		reconciliations: map[string]models.Reconciliation{},
		workflows:       map[string]models.ApprovalWorkflow{},
		requests:        map[string]models.ApprovalRequest{},
		vendorBills:     map[string]models.VendorBill{},
		checkRuns:       map[string]models.CheckRun{},
		checkSequences:  map[string]int64{},
	}
}

// clone copies everything a unit of work may change. Entities are stored by value and their
// slices are copied on the way in and out, so a shallow copy per entity is enough.
func (s *store) clone() *store {
	return &store{
		trustAccounts:   maps.Clone(s.trustAccounts),
		clientLedgers:   maps.Clone(s.clientLedgers),
		transactions:    slices.Clone(s.transactions),
		reconciliations: maps.Clone(s.reconciliations),
		workflows:       maps.Clone(s.workflows),
		requests:        maps.Clone(s.requests),
		vendorBills:     maps.Clone(s.vendorBills),
		checkRuns:       maps.Clone(s.checkRuns),
		checkSequences:  maps.Clone(s.checkSequences),
	}
}

// Repository keeps all state behind one lock. Atomic holds the write lock for the whole unit of
// work, which is stricter than per-row locking but gives the same isolation guarantees.
type Repository struct {
	mu   sync.RWMutex
	data *store
	now  func() time.Time

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

var _ repositories.SQLRepository = (*Repository)(nil)

type Option func(*Repository)

// WithClock replaces time.Now for the created_at and updated_at stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func New(opts ...Option) *Repository {
	r := &Repository{
		data: newStore(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.tar = &trustAccountRepository{r: r}
	r.clr = &clientLedgerRepository{r: r}
	r.tr = &transactionRepository{r: r}
	r.rr = &reconciliationRepository{r: r}
	r.awr = &approvalWorkflowRepository{r: r}
	r.arr = &approvalRequestRepository{r: r}
	r.vbr = &vendorBillRepository{r: r}
	r.crr = &checkRunRepository{r: r}
	r.csr = &checkSequenceRepository{r: r}

	return r
}

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) (err error) {
	if ctx.Value(lockedKey{}) != nil {
		return steps(ctx, r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.data.clone()
	defer func() {
		if p := recover(); p != nil {
			r.data = snapshot
			err = fmt.Errorf("panic happened because: %v", p)
			return
		}
		if err != nil {
			r.data = snapshot
		}
	}()

	return steps(context.WithValue(ctx, lockedKey{}, true), r)
}

// read and write take the store lock unless ctx already runs inside Atomic.
func (r *Repository) read(ctx context.Context) func() {
	if ctx.Value(lockedKey{}) != nil {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func (r *Repository) write(ctx context.Context) func() {
	if ctx.Value(lockedKey{}) != nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Repository) GetTrustAccountRepository() repositories.TrustAccountRepository {
	return r.tar
}

func (r *Repository) GetClientLedgerRepository() repositories.ClientLedgerRepository {
	return r.clr
}

func (r *Repository) GetTransactionRepository() repositories.TransactionRepository {
	return r.tr
}

func (r *Repository) GetReconciliationRepository() repositories.ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetApprovalWorkflowRepository() repositories.ApprovalWorkflowRepository {
	return r.awr
}

func (r *Repository) GetApprovalRequestRepository() repositories.ApprovalRequestRepository {
	return r.arr
}

func (r *Repository) GetVendorBillRepository() repositories.VendorBillRepository {
	return r.vbr
}

func (r *Repository) GetCheckRunRepository() repositories.CheckRunRepository {
	return r.crr
}

func (r *Repository) GetCheckSequenceRepository() repositories.CheckSequenceRepository {
	return r.csr
}
