package reconciliation

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/flag"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services/mock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_reconciliationHandler_ReconcileDueAccounts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockScheduler := mock.NewMockSchedulerService(mockCtrl)

	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "unbalanced accounts do not fail the job",
			doMock: func() {
				mockScheduler.EXPECT().ReconcileDueAccounts(gomock.Any(), asOf).
					Return(models.ReconciliationSweepResult{Due: 3, Completed: 2, Unbalanced: 1}, nil)
			},
		},
		{
			name: "an errored account fails the job",
			doMock: func() {
				mockScheduler.EXPECT().ReconcileDueAccounts(gomock.Any(), asOf).
					Return(models.ReconciliationSweepResult{Due: 1, Failed: 1}, common.ErrBankStatementUnavailable)
			},
			wantErr: common.ErrBankStatementUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			fn := Routes(mockScheduler)["ReconcileDueAccounts"]
			err := fn(context.Background(), asOf, flag.Job{JobName: "ReconcileDueAccounts", Version: "v1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
