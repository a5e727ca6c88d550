package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

func TestVendorBillRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VendorBillRepositoryTestSuite))
}

type VendorBillRepositoryTestSuite struct {
	sqlTestSuite
}

func vendorBillRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "trust_account_id", "client_ledger_id", "vendor_id", "payee_name", "reference",
		"amount", "balance_due", "status", "check_run_id", "paid_at", "created_at", "updated_at",
	})
}

func (s *VendorBillRepositoryTestSuite) TestCreate() {
	s.mock.ExpectQuery(regexp.QuoteMeta(createVendorBillQuery)).
		WithArgs("VB-1", "TA-1", "", "V-1", "Acme Court Reporters", "INV-9", sqlmock.AnyArg(), sqlmock.AnyArg(), "approved").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testTime, testTime))

	err := s.repo.GetVendorBillRepository().Create(context.Background(), &models.VendorBill{
		ID:             "VB-1",
		TrustAccountID: "TA-1",
		VendorID:       "V-1",
		PayeeName:      "Acme Court Reporters",
		Reference:      "INV-9",
		Amount:         dec("120.00"),
		BalanceDue:     dec("120.00"),
		Status:         models.VendorBillStatusApproved,
	})
	s.NoError(err)
}

func (s *VendorBillRepositoryTestSuite) TestGetByIDsForUpdate() {
	s.mock.ExpectQuery(regexp.QuoteMeta(getVendorBillsByIDsForUpdateQuery)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(vendorBillRows().
			AddRow("VB-1", "TA-1", "CL-1", "V-1", "Acme", "", "10.00", "10.00", "approved", "", nil, testTime, testTime).
			AddRow("VB-2", "TA-1", "", "V-2", "Bolt", "", "20.00", "0", "paid", "CR-1", testTime, testTime, testTime))

	got, err := s.repo.GetVendorBillRepository().GetByIDsForUpdate(context.Background(), []string{"VB-2", "VB-1"})
	s.NoError(err)
	s.Len(got, 2)
	s.Equal("VB-1", got[0].ID)
	s.NoError(got[0].CheckEligible("TA-1"))
	s.ErrorIs(got[1].CheckEligible("TA-1"), common.ErrAlreadyPaid)
	s.NotNil(got[1].PaidAt)
}

func (s *VendorBillRepositoryTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta(getVendorBillByIDQuery)).
		WithArgs("VB-404").
		WillReturnRows(vendorBillRows())

	_, err := s.repo.GetVendorBillRepository().GetByID(context.Background(), "VB-404")
	s.ErrorIs(err, common.ErrVendorBillNotFound)
}

func (s *VendorBillRepositoryTestSuite) TestUpdate() {
	bill := &models.VendorBill{ID: "VB-1"}
	bill.MarkPaid("CR-1", testTime)

	s.mock.ExpectExec(regexp.QuoteMeta(updateVendorBillQuery)).
		WithArgs("paid", sqlmock.AnyArg(), "CR-1", sqlmock.AnyArg(), "VB-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.repo.GetVendorBillRepository().Update(context.Background(), bill))
}

func (s *VendorBillRepositoryTestSuite) TestList() {
	query, _, err := buildListVendorBillsQuery("TA-1", models.VendorBillStatusApproved)
	s.Require().NoError(err)

	s.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("TA-1", "approved").
		WillReturnRows(vendorBillRows().
			AddRow("VB-1", "TA-1", "", "V-1", "Acme", "", "10.00", "10.00", "approved", "", nil, testTime, testTime))

	got, err := s.repo.GetVendorBillRepository().List(context.Background(), "TA-1", models.VendorBillStatusApproved)
	s.NoError(err)
	s.Len(got, 1)
}
