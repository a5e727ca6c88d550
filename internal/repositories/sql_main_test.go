package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/suite"

	"github.com/trustbooks/go-trust-ledger/internal/common"
)

func TestRepositoryAtomicTestSuite(t *testing.T) {
	suite.Run(t, new(AtomicTestSuite))
}

type AtomicTestSuite struct {
	sqlTestSuite
}

func (s *AtomicTestSuite) TestAtomic() {
	errSteps := errors.New("steps failed")

	testCases := []struct {
		name    string
		doMock  func()
		steps   func(ctx context.Context, r SQLRepository) error
		wantErr error
	}{
		{
			name: "commit when steps succeed",
			doMock: func() {
				s.mock.ExpectBegin()
				s.mock.ExpectExec(regexp.QuoteMeta(deactivateTrustAccountQuery)).
					WithArgs("TA-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				s.mock.ExpectCommit()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return r.GetTrustAccountRepository().Deactivate(ctx, "TA-1")
			},
		},
		{
			name: "rollback keeps the step error",
			doMock: func() {
				s.mock.ExpectBegin()
				s.mock.ExpectRollback()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return errSteps
			},
			wantErr: errSteps,
		},
		{
			name: "panic is recovered and rolled back",
			doMock: func() {
				s.mock.ExpectBegin()
				s.mock.ExpectRollback()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				panic("boom")
			},
		},
		{
			name: "nested atomic joins the outer transaction",
			doMock: func() {
				s.mock.ExpectBegin()
				s.mock.ExpectExec(regexp.QuoteMeta(deactivateTrustAccountQuery)).
					WithArgs("TA-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				s.mock.ExpectCommit()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return r.Atomic(ctx, func(ctx context.Context, r SQLRepository) error {
					return r.GetTrustAccountRepository().Deactivate(ctx, "TA-1")
				})
			},
		},
		{
			name: "serialization failure on commit is a concurrent modification",
			doMock: func() {
				s.mock.ExpectBegin()
				s.mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: pgCodeSerializationFailure})
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return nil
			},
			wantErr: common.ErrConcurrentModification,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()

			err := s.repo.Atomic(context.Background(), tc.steps)
			switch {
			case tc.wantErr != nil:
				s.ErrorIs(err, tc.wantErr)
			case tc.name == "panic is recovered and rolled back":
				s.ErrorContains(err, "boom")
			default:
				s.NoError(err)
			}
			s.NoError(s.mock.ExpectationsWereMet())
		})
	}
}

func Test_mapPostgresError(t *testing.T) {
	other := errors.New("other")

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "deadlock", err: &pgconn.PgError{Code: pgCodeDeadlockDetected}, wantErr: common.ErrConcurrentModification},
		{name: "lock not available", err: &pgconn.PgError{Code: pgCodeLockNotAvailable}, wantErr: common.ErrConcurrentModification},
		{name: "unique violation is kept", err: &pgconn.PgError{Code: pgCodeUniqueViolation}, wantErr: nil},
		{name: "non postgres error is kept", err: other, wantErr: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPostgresError(tt.err)
			if tt.wantErr == nil {
				if errors.Is(got, common.ErrConcurrentModification) {
					t.Errorf("mapPostgresError() = %v, want untouched", got)
				}
				return
			}
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("mapPostgresError() = %v, want %v", got, tt.wantErr)
			}
		})
	}
}
