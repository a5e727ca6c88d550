package services

import (
	"context"
	"strings"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

const (
	defaultCurrency         = "USD"
	defaultFirstCheckNumber = 1001
)

type TrustAccountService interface {
	// Create opens the account together with its check number sequence and its unallocated ledger.
	Create(ctx context.Context, in models.CreateTrustAccountIn) (out *models.TrustAccount, err error)
	GetByID(ctx context.Context, id string) (out *models.TrustAccount, err error)
	GetSummary(ctx context.Context, id string) (out models.AccountSummary, err error)
	GetBalance(ctx context.Context, id string) (balance models.Decimal, err error)
	Deactivate(ctx context.Context, id string) (out *models.TrustAccount, err error)

	CreateClientLedger(ctx context.Context, in models.CreateClientLedgerIn) (out *models.ClientLedger, err error)
	GetClientLedger(ctx context.Context, id string) (out *models.ClientLedger, err error)
	ListClientLedgers(ctx context.Context, trustAccountID string) (out []models.ClientLedger, err error)
}

type trustAccount service

var _ TrustAccountService = (*trustAccount)(nil)

func (ta *trustAccount) Create(ctx context.Context, in models.CreateTrustAccountIn) (out *models.TrustAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = ta.srv.conf.Ledger.Currency
	}
	if currency == "" {
		currency = defaultCurrency
	}

	firstCheckNumber := ta.srv.conf.Ledger.FirstCheckNumber
	if firstCheckNumber <= 0 {
		firstCheckNumber = defaultFirstCheckNumber
	}

	account := &models.TrustAccount{
		ID:             ta.srv.idgenerator.Generate(idgenerator.PrefixTrustAccount),
		Name:           in.Name,
		BankAccountRef: in.BankAccountRef,
		Currency:       currency,
		Jurisdiction:   in.Jurisdiction,
		IsActive:       true,
	}

	err = ta.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		if err := r.GetTrustAccountRepository().Create(actx, account); err != nil {
			return err
		}

		if err := r.GetCheckSequenceRepository().Create(actx, account.ID, firstCheckNumber); err != nil {
			return err
		}

		return r.GetClientLedgerRepository().Create(actx, &models.ClientLedger{
			ID:             ta.srv.idgenerator.Generate(idgenerator.PrefixClientLedger),
			TrustAccountID: account.ID,
			ClientID:       models.UnallocatedClientID,
			IsUnallocated:  true,
		})
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (ta *trustAccount) GetByID(ctx context.Context, id string) (out *models.TrustAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ta.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, id)
}

func (ta *trustAccount) GetSummary(ctx context.Context, id string) (out models.AccountSummary, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	account, err := ta.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, id)
	if err != nil {
		return out, err
	}

	_, count, err := ta.srv.sqlRepo.GetClientLedgerRepository().SumBalances(ctx, id)
	if err != nil {
		return out, err
	}

	return models.AccountSummary{
		TrustAccountID:     account.ID,
		Currency:           account.Currency,
		Balance:            account.BookBalance,
		LedgerCount:        count,
		LastReconciledDate: account.LastReconciledDate,
	}, nil
}

func (ta *trustAccount) GetBalance(ctx context.Context, id string) (balance models.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	account, err := ta.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, id)
	if err != nil {
		return balance, err
	}

	return account.BookBalance, nil
}

// Deactivate stops new postings and check runs. Deactivating twice is not an error.
func (ta *trustAccount) Deactivate(ctx context.Context, id string) (out *models.TrustAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = ta.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		accRepo := r.GetTrustAccountRepository()

		account, err := accRepo.GetByIDForUpdate(actx, id)
		if err != nil {
			return err
		}
		if account.IsActive {
			if err = accRepo.Deactivate(actx, id); err != nil {
				return err
			}
			account.IsActive = false
		}

		out = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (ta *trustAccount) CreateClientLedger(ctx context.Context, in models.CreateClientLedgerIn) (out *models.ClientLedger, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if strings.EqualFold(in.ClientID, models.UnallocatedClientID) {
		return nil, common.ErrValidation
	}

	account, err := ta.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, in.TrustAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, common.ErrTrustAccountInactive
	}

	ledger := &models.ClientLedger{
		ID:             ta.srv.idgenerator.Generate(idgenerator.PrefixClientLedger),
		TrustAccountID: account.ID,
		ClientID:       in.ClientID,
		MatterID:       in.MatterID,
	}
	if err = ta.srv.sqlRepo.GetClientLedgerRepository().Create(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

func (ta *trustAccount) GetClientLedger(ctx context.Context, id string) (out *models.ClientLedger, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ta.srv.sqlRepo.GetClientLedgerRepository().GetByID(ctx, id)
}

func (ta *trustAccount) ListClientLedgers(ctx context.Context, trustAccountID string) (out []models.ClientLedger, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = ta.srv.sqlRepo.GetTrustAccountRepository().GetByID(ctx, trustAccountID); err != nil {
		return nil, err
	}

	return ta.srv.sqlRepo.GetClientLedgerRepository().ListByTrustAccount(ctx, trustAccountID)
}
