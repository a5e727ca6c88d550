package trustaccount

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

var createdAt = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func (h testTrustAccountHelper) serve(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

func Test_Handler_createTrustAccount(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantCode int
		wantRes  string
	}{
		{
			name: "success",
			body: `{"name":"Smith and Co IOLTA","bankAccountRef":"BANK-001","currency":"USD","jurisdiction":"NY"}`,
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().
					Create(gomock.Any(), models.CreateTrustAccountIn{
						Name:           "Smith and Co IOLTA",
						BankAccountRef: "BANK-001",
						Currency:       "USD",
						Jurisdiction:   "NY",
					}).
					Return(&models.TrustAccount{
						ID:             "TA-1",
						Name:           "Smith and Co IOLTA",
						BankAccountRef: "BANK-001",
						Currency:       "USD",
						Jurisdiction:   "NY",
						BookBalance:    models.MustNewDecimal("0"),
						IsActive:       true,
						CreatedAt:      createdAt,
					}, nil)
			},
			wantCode: http.StatusCreated,
			wantRes:  `{"kind":"trustAccount","id":"TA-1","name":"Smith and Co IOLTA","bankAccountRef":"BANK-001","currency":"USD","jurisdiction":"NY","bookBalance":"0.00","isActive":true,"lastReconciledDate":null,"createdAt":"2024-01-10T00:00:00Z"}`,
		},
		{
			name:     "validation error",
			body:     `{}`,
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"name","message":"field is missing"},{"code":"MISSING_FIELD","field":"bankAccountRef","message":"field is missing"}]}`,
		},
		{
			name:     "malformed body",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"name":"Smith and Co IOLTA","bankAccountRef":"BANK-001"}`,
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
			wantRes:  `{"status":"error","code":"INTERNAL_SERVER_ERROR","message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, "/api/v1/trust-accounts", tt.body)
			require.Equal(t, tt.wantCode, code)
			if tt.wantRes != "" {
				require.Equal(t, tt.wantRes, body)
			}
		})
	}
}

func Test_Handler_getAccountSummary(t *testing.T) {
	testHelper := trustAccountTestHelper(t)
	reconciled := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       string
		doMock   func()
		wantCode int
		wantRes  string
	}{
		{
			name: "success",
			id:   "TA-1",
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().GetSummary(gomock.Any(), "TA-1").Return(models.AccountSummary{
					TrustAccountID:     "TA-1",
					Currency:           "USD",
					Balance:            models.MustNewDecimal("1250.5"),
					LedgerCount:        3,
					LastReconciledDate: &reconciled,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantRes:  `{"kind":"trustAccountSummary","trustAccountId":"TA-1","currency":"USD","balance":"1250.50","ledgerCount":3,"lastReconciledDate":"2024-01-31"}`,
		},
		{
			name: "not found",
			id:   "TA-missing",
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().GetSummary(gomock.Any(), "TA-missing").Return(models.AccountSummary{}, common.ErrTrustAccountNotFound)
			},
			wantCode: http.StatusNotFound,
			wantRes:  `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			code, body := testHelper.serve(t, http.MethodGet, "/api/v1/trust-accounts/"+tt.id+"/summary", "")
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}

func Test_Handler_getBalance(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	testHelper.mockTrustAccountService.EXPECT().GetBalance(gomock.Any(), "TA-1").Return(models.MustNewDecimal("99.9"), nil)

	code, body := testHelper.serve(t, http.MethodGet, "/api/v1/trust-accounts/TA-1/balance", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, `{"kind":"trustAccountBalance","trustAccountId":"TA-1","balance":"99.90"}`, body)
}

func Test_Handler_deactivateTrustAccount(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	testHelper.mockTrustAccountService.EXPECT().Deactivate(gomock.Any(), "TA-1").Return(&models.TrustAccount{
		ID:          "TA-1",
		Name:        "IOLTA",
		Currency:    "USD",
		BookBalance: models.MustNewDecimal("10"),
		IsActive:    false,
		CreatedAt:   createdAt,
	}, nil)

	code, body := testHelper.serve(t, http.MethodPost, "/api/v1/trust-accounts/TA-1/deactivate", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"isActive":false`)
}

func Test_Handler_createClientLedger(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantCode int
		wantRes  string
	}{
		{
			name: "success",
			body: `{"clientId":"C-1","matterId":"M-1"}`,
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().
					CreateClientLedger(gomock.Any(), models.CreateClientLedgerIn{TrustAccountID: "TA-1", ClientID: "C-1", MatterID: "M-1"}).
					Return(&models.ClientLedger{
						ID:             "CL-1",
						TrustAccountID: "TA-1",
						ClientID:       "C-1",
						MatterID:       "M-1",
						Balance:        models.MustNewDecimal("0"),
						CreatedAt:      createdAt,
					}, nil)
			},
			wantCode: http.StatusCreated,
			wantRes:  `{"kind":"clientLedger","id":"CL-1","trustAccountId":"TA-1","clientId":"C-1","matterId":"M-1","balance":"0.00","isUnallocated":false,"createdAt":"2024-01-10T00:00:00Z"}`,
		},
		{
			name:     "missing client id",
			body:     `{"matterId":"M-1"}`,
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"clientId","message":"field is missing"}]}`,
		},
		{
			name: "inactive trust account",
			body: `{"clientId":"C-1"}`,
			doMock: func() {
				testHelper.mockTrustAccountService.EXPECT().CreateClientLedger(gomock.Any(), gomock.Any()).Return(nil, common.ErrTrustAccountInactive)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","code":"TRUST_ACCOUNT_INACTIVE","message":"trust account is inactive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, "/api/v1/trust-accounts/TA-1/client-ledgers", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}

func Test_Handler_listClientLedgers(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	testHelper.mockTrustAccountService.EXPECT().ListClientLedgers(gomock.Any(), "TA-1").Return([]models.ClientLedger{
		{
			ID:             "CL-0",
			TrustAccountID: "TA-1",
			ClientID:       models.UnallocatedClientID,
			Balance:        models.MustNewDecimal("5"),
			IsUnallocated:  true,
			CreatedAt:      createdAt,
		},
	}, nil)

	code, body := testHelper.serve(t, http.MethodGet, "/api/v1/trust-accounts/TA-1/client-ledgers", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, `{"kind":"collection","contents":[{"kind":"clientLedger","id":"CL-0","trustAccountId":"TA-1","clientId":"UNALLOCATED","balance":"5.00","isUnallocated":true,"createdAt":"2024-01-10T00:00:00Z"}]}`, body)
}

func Test_Handler_getClientLedger(t *testing.T) {
	testHelper := trustAccountTestHelper(t)

	testHelper.mockTrustAccountService.EXPECT().GetClientLedger(gomock.Any(), "CL-missing").Return(nil, common.ErrClientLedgerNotFound)

	code, body := testHelper.serve(t, http.MethodGet, "/api/v1/client-ledgers/CL-missing", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`, body)
}
