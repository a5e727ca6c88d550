package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func (h *testServiceHelper) newAccountWithBankRef(t *testing.T, bankRef, deposit string) *models.TrustAccount {
	t.Helper()

	account, err := h.services.TrustAccount.Create(context.Background(), models.CreateTrustAccountIn{
		Name:           "Account " + bankRef,
		BankAccountRef: bankRef,
	})
	require.NoError(t, err)

	if deposit != "" {
		h.post(t, account.ID, "", models.TransactionKindDeposit, deposit)
	}

	return account
}

func (h *testServiceHelper) expectClosingBalance(bankRef, balance string, err error) {
	h.mockBankStatement.EXPECT().
		GetClosingBalance(gomock.Any(), bankRef, gomock.Any()).
		Return(models.BankStatementBalance{BankAccountRef: bankRef, Balance: models.MustNewDecimal(balance)}, err)
}

func TestSchedulerService_ReconcileDueAccounts(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()
	asOf := common.Now()

	balanced := h.newAccountWithBankRef(t, "BANK-BAL", "1000.00")
	unbalanced := h.newAccountWithBankRef(t, "BANK-UNB", "1000.00")
	broken := h.newAccountWithBankRef(t, "BANK-ERR", "10.00")
	busy := h.newAccountWithBankRef(t, "BANK-BUSY", "10.00")
	recent := h.newAccountWithBankRef(t, "BANK-RECENT", "10.00")

	// an operator already has this one open
	_, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: busy.ID,
		PeriodStart:    common.TruncateToDate(asOf),
		PeriodEnd:      common.TruncateToDate(asOf),
		BankBalance:    models.MustNewDecimal("1.00"),
	})
	require.NoError(t, err)

	require.NoError(t, h.repo.GetTrustAccountRepository().SetLastReconciledDate(ctx, recent.ID, common.TruncateToDate(asOf).AddDate(0, 0, -1)))

	inactive := h.newAccountWithBankRef(t, "BANK-OFF", "")
	_, err = h.services.TrustAccount.Deactivate(ctx, inactive.ID)
	require.NoError(t, err)

	h.expectClosingBalance("BANK-BAL", "1000.00", nil)
	h.expectClosingBalance("BANK-UNB", "950.00", nil)
	h.expectClosingBalance("BANK-ERR", "0", common.ErrBankStatementUnavailable)

	res, err := h.services.Scheduler.ReconcileDueAccounts(ctx, asOf)
	assert.ErrorIs(t, err, common.ErrBankStatementUnavailable)
	assert.Equal(t, models.ReconciliationSweepResult{
		Due:        4,
		Completed:  1,
		Unbalanced: 1,
		Skipped:    1,
		Failed:     1,
	}, res)

	reconciled, err := h.services.TrustAccount.GetByID(ctx, balanced.ID)
	require.NoError(t, err)
	require.NotNil(t, reconciled.LastReconciledDate)
	assert.True(t, common.TruncateToDate(asOf).Equal(*reconciled.LastReconciledDate))

	open, err := h.repo.GetReconciliationRepository().GetInProgress(ctx, unbalanced.ID)
	require.NoError(t, err)
	assert.Equal(t, "-50.00", open.Discrepancy.StringFixed(models.MinorUnitPlaces))

	_, err = h.repo.GetReconciliationRepository().GetInProgress(ctx, broken.ID)
	assert.ErrorIs(t, err, common.ErrReconciliationNotFound)
}

func TestSchedulerService_ReconcileDueAccounts_NothingDue(t *testing.T) {
	h := serviceTestHelper(t)

	res, err := h.services.Scheduler.ReconcileDueAccounts(context.Background(), common.Now())
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationSweepResult{}, res)
}

func TestSchedulerService_ReconcileDueAccounts_Cancelled(t *testing.T) {
	h := serviceTestHelper(t)

	h.newAccountWithBankRef(t, "BANK-A", "10.00")
	h.newAccountWithBankRef(t, "BANK-B", "10.00")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := h.services.Scheduler.ReconcileDueAccounts(ctx, common.Now())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.ReconciliationSweepResult{Due: 2, Failed: 2}, res)
}

func TestSchedulerService_ReconcileAccount(t *testing.T) {
	today := common.TruncateToDate(common.Now())

	tests := []struct {
		name       string
		msg        func(accountID string) models.ReconciliationRequestMessage
		doMock     func(h *testServiceHelper)
		wantErr    error
		wantStatus models.ReconciliationStatus
	}{
		{
			name: "bank balance carried in the request",
			msg: func(accountID string) models.ReconciliationRequestMessage {
				return models.ReconciliationRequestMessage{
					TrustAccountID: accountID,
					PeriodStart:    today.AddDate(0, 0, -7).Format(common.DateFormatYYYYMMDD),
					PeriodEnd:      today.Format(common.DateFormatYYYYMMDD),
					BankBalance:    decimalPtr("250.00"),
				}
			},
			wantStatus: models.ReconciliationStatusCompleted,
		},
		{
			name: "bank balance fetched from the statement feed",
			msg: func(accountID string) models.ReconciliationRequestMessage {
				return models.ReconciliationRequestMessage{
					TrustAccountID: accountID,
					PeriodStart:    today.AddDate(0, 0, -7).Format(common.DateFormatYYYYMMDD),
					PeriodEnd:      today.Format(common.DateFormatYYYYMMDD),
				}
			},
			doMock: func(h *testServiceHelper) {
				h.expectClosingBalance("BANK-REQ", "250.00", nil)
			},
			wantStatus: models.ReconciliationStatusCompleted,
		},
		{
			name: "discrepancy leaves the reconciliation open",
			msg: func(accountID string) models.ReconciliationRequestMessage {
				return models.ReconciliationRequestMessage{
					TrustAccountID: accountID,
					PeriodStart:    today.AddDate(0, 0, -7).Format(common.DateFormatYYYYMMDD),
					PeriodEnd:      today.Format(common.DateFormatYYYYMMDD),
					BankBalance:    decimalPtr("200.00"),
				}
			},
			wantErr:    common.ErrUnbalancedReconciliation,
			wantStatus: models.ReconciliationStatusInProgress,
		},
		{
			name: "invalid date",
			msg: func(accountID string) models.ReconciliationRequestMessage {
				return models.ReconciliationRequestMessage{TrustAccountID: accountID, PeriodStart: "2024-13-01", PeriodEnd: "2024-12-31"}
			},
			wantErr: common.ErrInvalidFormatDate,
		},
		{
			name: "unknown account",
			msg: func(string) models.ReconciliationRequestMessage {
				return models.ReconciliationRequestMessage{TrustAccountID: "TA-missing", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31"}
			},
			wantErr: common.ErrTrustAccountNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			account := h.newAccountWithBankRef(t, "BANK-REQ", "250.00")
			if tc.doMock != nil {
				tc.doMock(h)
			}

			rec, err := h.services.Scheduler.ReconcileAccount(context.Background(), tc.msg(account.ID))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tc.wantStatus != "" {
				require.NotNil(t, rec)
				assert.Equal(t, tc.wantStatus, rec.Status)
			}
		})
	}
}

func TestSchedulerService_ReconcileAccount_Repeated(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()
	account := h.newAccountWithBankRef(t, "BANK-REQ", "10.00")

	msg := models.ReconciliationRequestMessage{
		TrustAccountID: account.ID,
		PeriodStart:    time.Now().UTC().AddDate(0, 0, -1).Format(common.DateFormatYYYYMMDD),
		PeriodEnd:      time.Now().UTC().Format(common.DateFormatYYYYMMDD),
		BankBalance:    decimalPtr("10.00"),
	}

	_, err := h.services.Scheduler.ReconcileAccount(ctx, msg)
	require.NoError(t, err)

	// a second request for the same account starts a fresh reconciliation
	second, err := h.services.Scheduler.ReconcileAccount(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusCompleted, second.Status)

	list, err := h.services.Reconciliation.List(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
