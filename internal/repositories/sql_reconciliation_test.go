package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/suite"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func TestReconciliationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationRepositoryTestSuite))
}

type ReconciliationRepositoryTestSuite struct {
	sqlTestSuite
}

var (
	periodStart = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
)

func reconciliationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "trust_account_id", "period_start", "period_end", "bank_balance", "book_balance",
		"ledger_balance_sum", "discrepancy", "outstanding_deposits", "outstanding_disbursements", "status",
		"failure_reason", "completed_at", "created_at", "updated_at",
	})
}

func newReconciliation() *models.Reconciliation {
	return &models.Reconciliation{
		ID:             "RC-1",
		TrustAccountID: "TA-1",
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		BankBalance:    dec("100.00"),
		Status:         models.ReconciliationStatusInProgress,
	}
}

func (s *ReconciliationRepositoryTestSuite) TestCreate() {
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "success",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(createReconciliationQuery)).
					WithArgs("RC-1", "TA-1", periodStart, periodEnd,
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						"in_progress").
					WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testTime, testTime))
			},
		},
		{
			name: "another run in progress",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(createReconciliationQuery)).
					WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation, ConstraintName: constraintReconciliationInProgress})
			},
			wantErr: common.ErrReconciliationInProgress,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()

			err := s.repo.GetReconciliationRepository().Create(context.Background(), newReconciliation())
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ReconciliationRepositoryTestSuite) TestGetInProgress() {
	s.mock.ExpectQuery(regexp.QuoteMeta(getInProgressReconciliationQuery)).
		WithArgs("TA-1").
		WillReturnRows(reconciliationRows().AddRow(
			"RC-1", "TA-1", periodStart, periodEnd, "100.00", "99.00", "99.00", "1.00", "0", "0",
			"in_progress", "", nil, testTime, testTime))

	got, err := s.repo.GetReconciliationRepository().GetInProgress(context.Background(), "TA-1")
	s.NoError(err)
	s.True(got.IsInProgress())
	s.Equal("1.00", got.Discrepancy.StringFixed(2))
	s.Nil(got.CompletedAt)
}

func (s *ReconciliationRepositoryTestSuite) TestUpdate() {
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "success",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(updateReconciliationQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(testTime))
			},
		},
		{
			name: "already finished",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(updateReconciliationQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))
			},
			wantErr: common.ErrReconciliationClosed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()

			en := newReconciliation()
			err := s.repo.GetReconciliationRepository().Update(context.Background(), en)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
			s.Equal(testTime, en.UpdatedAt)
		})
	}
}

func (s *ReconciliationRepositoryTestSuite) TestListByTrustAccount() {
	s.mock.ExpectQuery(regexp.QuoteMeta(listReconciliationsQuery)).
		WithArgs("TA-1").
		WillReturnRows(reconciliationRows().
			AddRow("RC-2", "TA-1", periodStart, periodEnd, "100.00", "100.00", "100.00", "0", "0", "0",
				"completed", "", testTime, testTime, testTime).
			AddRow("RC-1", "TA-1", periodStart, periodEnd, "100.00", "90.00", "95.00", "10.00", "0", "0",
				"failed", "ledger corruption", testTime, testTime, testTime))

	got, err := s.repo.GetReconciliationRepository().ListByTrustAccount(context.Background(), "TA-1")
	s.NoError(err)
	s.Len(got, 2)
	s.Equal(models.ReconciliationStatusCompleted, got[0].Status)
	s.True(got[1].IsCorrupted())
}
