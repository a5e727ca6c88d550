package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func reconciliationPeriod() (time.Time, time.Time) {
	end := common.TruncateToDate(common.Now())
	return end.AddDate(0, 0, -30), end
}

func TestReconciliationService_RoundTrip(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	ledger := h.newLedger(t, account.ID, "C-1")
	h.post(t, account.ID, ledger.ID, models.TransactionKindDeposit, "1000.00")

	start, end := reconciliationPeriod()
	rec, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("1000.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusInProgress, rec.Status)
	assert.Equal(t, "1000.00", rec.BookBalance.StringFixed(models.MinorUnitPlaces))
	assert.Equal(t, "1000.00", rec.LedgerBalanceSum.StringFixed(models.MinorUnitPlaces))
	assert.Equal(t, "0.00", rec.Discrepancy.StringFixed(models.MinorUnitPlaces))
	assert.Equal(t, "1000.00", rec.OutstandingDeposits.StringFixed(models.MinorUnitPlaces))

	done, err := h.services.Reconciliation.Complete(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)

	stored, err := h.services.TrustAccount.GetByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastReconciledDate)
	assert.True(t, end.Equal(*stored.LastReconciledDate))

	_, err = h.services.Reconciliation.Complete(ctx, rec.ID)
	assert.ErrorIs(t, err, common.ErrReconciliationClosed)

	assert.Contains(t, h.eventTypes(), models.EventReconciliationStarted)
	assert.Contains(t, h.eventTypes(), models.EventReconciliationCompleted)
}

func TestReconciliationService_Discrepancy(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	ledger := h.newLedger(t, account.ID, "C-1")
	h.post(t, account.ID, ledger.ID, models.TransactionKindDeposit, "1000.00")

	start, end := reconciliationPeriod()
	rec, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("950.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "-50.00", rec.Discrepancy.StringFixed(models.MinorUnitPlaces))
	assert.False(t, rec.IsBalanced())

	_, err = h.services.Reconciliation.Complete(ctx, rec.ID)
	assert.ErrorIs(t, err, common.ErrUnbalancedReconciliation)

	stored, err := h.services.Reconciliation.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusInProgress, stored.Status)

	_, err = h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("1000.00"),
	})
	assert.ErrorIs(t, err, common.ErrReconciliationInProgress)

	updated, err := h.services.Reconciliation.UpdateBankBalance(ctx, rec.ID, models.MustNewDecimal("1000.00"))
	require.NoError(t, err)
	assert.True(t, updated.IsBalanced())

	done, err := h.services.Reconciliation.Complete(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusCompleted, done.Status)

	_, err = h.services.Reconciliation.UpdateBankBalance(ctx, rec.ID, models.MustNewDecimal("1.00"))
	assert.ErrorIs(t, err, common.ErrReconciliationClosed)
}

func TestReconciliationService_SubCentDifferenceIsBalanced(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	h.post(t, account.ID, "", models.TransactionKindDeposit, "10.00")

	start, end := reconciliationPeriod()
	rec, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("10.01"),
	})
	require.NoError(t, err)

	_, err = h.services.Reconciliation.Complete(ctx, rec.ID)
	assert.ErrorIs(t, err, common.ErrUnbalancedReconciliation, "a full cent is a discrepancy")
}

func TestReconciliationService_Corruption(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	ledger := h.newLedger(t, account.ID, "C-1")
	h.post(t, account.ID, ledger.ID, models.TransactionKindDeposit, "1000.00")

	// break the book invariant behind the service's back
	broken, err := h.repo.GetClientLedgerRepository().GetByID(ctx, ledger.ID)
	require.NoError(t, err)
	broken.Balance = models.MustNewDecimal("900.00")
	require.NoError(t, h.repo.GetClientLedgerRepository().UpdateBalance(ctx, broken))

	start, end := reconciliationPeriod()
	rec, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("1000.00"),
	})
	assert.ErrorIs(t, err, common.ErrLedgerCorruption)
	require.NotNil(t, rec)
	assert.Equal(t, models.ReconciliationStatusFailed, rec.Status)
	assert.NotEmpty(t, rec.FailureReason)

	list, err := h.services.Reconciliation.List(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ReconciliationStatusFailed, list[0].Status)

	assert.Contains(t, h.eventTypes(), models.EventLedgerCorruption)
	assert.NotContains(t, h.eventTypes(), models.EventReconciliationStarted)
}

func TestReconciliationService_CorruptionAtComplete(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	account := h.newAccount(t)
	ledger := h.newLedger(t, account.ID, "C-1")
	h.post(t, account.ID, ledger.ID, models.TransactionKindDeposit, "500.00")

	start, end := reconciliationPeriod()
	rec, err := h.services.Reconciliation.Start(ctx, models.StartReconciliationIn{
		TrustAccountID: account.ID,
		PeriodStart:    start,
		PeriodEnd:      end,
		BankBalance:    models.MustNewDecimal("500.00"),
	})
	require.NoError(t, err)

	broken, err := h.repo.GetClientLedgerRepository().GetByID(ctx, ledger.ID)
	require.NoError(t, err)
	broken.Balance = models.MustNewDecimal("499.99")
	require.NoError(t, h.repo.GetClientLedgerRepository().UpdateBalance(ctx, broken))

	failed, err := h.services.Reconciliation.Complete(ctx, rec.ID)
	assert.ErrorIs(t, err, common.ErrLedgerCorruption)
	require.NotNil(t, failed)
	assert.Equal(t, models.ReconciliationStatusFailed, failed.Status)

	stored, err := h.services.TrustAccount.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LastReconciledDate)
}

func TestReconciliationService_Start_Validation(t *testing.T) {
	start, end := reconciliationPeriod()

	tests := []struct {
		name    string
		in      func(accountID string) models.StartReconciliationIn
		wantErr error
	}{
		{
			name: "period start after end",
			in: func(accountID string) models.StartReconciliationIn {
				return models.StartReconciliationIn{TrustAccountID: accountID, PeriodStart: end, PeriodEnd: start, BankBalance: models.MustNewDecimal("0")}
			},
			wantErr: common.ErrInvalidPeriod,
		},
		{
			name: "sub cent bank balance",
			in: func(accountID string) models.StartReconciliationIn {
				return models.StartReconciliationIn{TrustAccountID: accountID, PeriodStart: start, PeriodEnd: end, BankBalance: models.MustNewDecimal("1.001")}
			},
			wantErr: common.ErrInvalidAmountPrecision,
		},
		{
			name: "unknown account",
			in: func(string) models.StartReconciliationIn {
				return models.StartReconciliationIn{TrustAccountID: "TA-missing", PeriodStart: start, PeriodEnd: end, BankBalance: models.MustNewDecimal("0")}
			},
			wantErr: common.ErrTrustAccountNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			account := h.newAccount(t)

			_, err := h.services.Reconciliation.Start(context.Background(), tc.in(account.ID))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
