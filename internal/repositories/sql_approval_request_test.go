package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func TestApprovalRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalRequestRepositoryTestSuite))
}

type ApprovalRequestRepositoryTestSuite struct {
	sqlTestSuite
}

func approvalRequestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "workflow_id", "entity_type", "entity_id", "amount", "current_level", "approver_role",
		"eligible_approvers", "require_all", "status", "decided_at", "created_at", "updated_at",
	})
}

func approvalDecisionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "request_id", "approver_id", "approver_role", "decision", "comment", "created_at"})
}

func (s *ApprovalRequestRepositoryTestSuite) TestCreate() {
	s.mock.ExpectQuery(regexp.QuoteMeta(createApprovalRequestQuery)).
		WithArgs("AR-1", "WF-1", "vendor_bill", "VB-1", sqlmock.AnyArg(), int64(1), "partner",
			sqlmock.AnyArg(), false, "pending", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testTime, testTime))

	err := s.repo.GetApprovalRequestRepository().Create(context.Background(), &models.ApprovalRequest{
		ID:           "AR-1",
		WorkflowID:   "WF-1",
		EntityType:   models.EntityTypeVendorBill,
		EntityID:     "VB-1",
		Amount:       dec("500.00"),
		CurrentLevel: 1,
		ApproverRole: "partner",
		Status:       models.ApprovalStatusPending,
	})
	s.NoError(err)
}

func (s *ApprovalRequestRepositoryTestSuite) TestGetByIDForUpdate() {
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "success with decisions",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(getApprovalRequestByIDForUpdateQuery)).
					WithArgs("AR-1").
					WillReturnRows(approvalRequestRows().AddRow(
						"AR-1", "WF-1", "expense", "EX-1", "2500.00", int64(1), "",
						"{alice,bob}", true, "pending", nil, testTime, testTime))
				s.mock.ExpectQuery(regexp.QuoteMeta(listApprovalDecisionsQuery)).
					WithArgs("AR-1").
					WillReturnRows(approvalDecisionRows().
						AddRow("AD-1", "AR-1", "alice", "", "approve", "ok", testTime))
			},
		},
		{
			name: "not found",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(getApprovalRequestByIDForUpdateQuery)).
					WithArgs("AR-1").
					WillReturnRows(approvalRequestRows())
			},
			wantErr: common.ErrApprovalRequestNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()

			got, err := s.repo.GetApprovalRequestRepository().GetByIDForUpdate(context.Background(), "AR-1")
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
			s.Equal([]string{"alice", "bob"}, got.EligibleApprovers)
			s.True(got.RequireAll)
			s.Len(got.Decisions, 1)
			s.Equal(models.DecisionApprove, got.Decisions[0].Decision)
		})
	}
}

func (s *ApprovalRequestRepositoryTestSuite) TestUpdateStatus() {
	testCases := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "pending request", affected: 1},
		{name: "closed request", affected: 0, wantErr: common.ErrApprovalRequestClosed},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mock.ExpectExec(regexp.QuoteMeta(updateApprovalRequestStatusQuery)).
				WithArgs("approved", sqlmock.AnyArg(), "AR-1").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := s.repo.GetApprovalRequestRepository().UpdateStatus(context.Background(), &models.ApprovalRequest{
				ID:        "AR-1",
				Status:    models.ApprovalStatusApproved,
				DecidedAt: &testTime,
			})
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ApprovalRequestRepositoryTestSuite) TestCreateDecision() {
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "success",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(createApprovalDecisionQuery)).
					WithArgs("AD-1", "AR-1", "alice", "partner", "approve", "").
					WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testTime))
			},
		},
		{
			name: "same approver twice",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(createApprovalDecisionQuery)).
					WillReturnError(&pq.Error{Code: pgCodeUniqueViolation, Constraint: constraintApprovalDecisionUnique})
			},
			wantErr: common.ErrDuplicateDecision,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()

			err := s.repo.GetApprovalRequestRepository().CreateDecision(context.Background(), &models.ApprovalDecision{
				ID:           "AD-1",
				RequestID:    "AR-1",
				ApproverID:   "alice",
				ApproverRole: "partner",
				Decision:     models.DecisionApprove,
			})
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
		})
	}
}
