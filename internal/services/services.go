package services

import (
	"github.com/trustbooks/go-trust-ledger/internal/common/bankstatement"
	"github.com/trustbooks/go-trust-ledger/internal/common/cache"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/common/publisher"
	"github.com/trustbooks/go-trust-ledger/internal/common/retry"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cloudStorage repositories.CloudStorageRepository

	workflowCache cache.Client[models.ApprovalWorkflow]
	eventPub      publisher.Publisher
	bankStatement bankstatement.Client
	retryer       retry.Retryer
	idgenerator   idgenerator.Generator
	metrics       metrics.Metrics

	common service

	TrustAccount   *trustAccount
	Transaction    *transaction
	Reconciliation *reconciliation
	Approval       *approval
	VendorBill     *vendorBill
	CheckRun       *checkRun
	Scheduler      *scheduler
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cloudStorage repositories.CloudStorageRepository,
	workflowCache cache.Client[models.ApprovalWorkflow],
	eventPub publisher.Publisher,
	bankStatement bankstatement.Client,
	retryer retry.Retryer,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cloudStorage:  cloudStorage,
		workflowCache: workflowCache,
		eventPub:      eventPub,
		bankStatement: bankStatement,
		retryer:       retryer,
		idgenerator:   idgenerator,
		metrics:       metrics,
	}
	srv.common.srv = srv
	srv.TrustAccount = (*trustAccount)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)
	srv.Reconciliation = (*reconciliation)(&srv.common)
	srv.Approval = (*approval)(&srv.common)
	srv.VendorBill = (*vendorBill)(&srv.common)
	srv.CheckRun = (*checkRun)(&srv.common)
	srv.Scheduler = (*scheduler)(&srv.common)

	return srv
}
