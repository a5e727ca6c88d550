package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/pagination"
	"github.com/trustbooks/go-trust-ledger/internal/models"
)

var createdAt = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func sampleTransaction(id string, sequence int64) *models.Transaction {
	return &models.Transaction{
		ID:             id,
		Sequence:       sequence,
		TrustAccountID: "TA-1",
		ClientLedgerID: "CL-1",
		Kind:           models.TransactionKindDeposit,
		Amount:         models.MustNewDecimal("100.5"),
		SignedAmount:   models.MustNewDecimal("100.5"),
		Description:    "retainer",
		CreatedAt:      createdAt,
	}
}

const sampleTransactionJSON = `{"kind":"transaction","id":"TRX-1","trustAccountId":"TA-1","clientLedgerId":"CL-1","transactionKind":"deposit","amount":"100.50","signedAmount":"100.50","description":"retainer","reference":"","isCleared":false,"clearedDate":null,"createdAt":"2024-01-10T00:00:00Z"}`

func (h testTransactionHelper) expectFreshIdempotencyKey(succeeds bool) {
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), "trust-ledger:idempotency:key-1").Return("", common.ErrDataNotFound)
	h.mockCacheRepository.EXPECT().SetIfNotExists(gomock.Any(), "trust-ledger:idempotency:key-1", gomock.Any(), models.TTLIdempotency).Return(true, nil)
	if succeeds {
		h.mockCacheRepository.EXPECT().Set(gomock.Any(), "trust-ledger:idempotency:key-1", gomock.Any(), models.TTLIdempotency).Return(nil)
	} else {
		h.mockCacheRepository.EXPECT().Del(gomock.Any(), "trust-ledger:idempotency:key-1").Return(nil)
	}
}

func Test_Handler_postTransaction(t *testing.T) {
	testHelper := transactionTestHelper(t)

	validBody := `{"trustAccountId":"TA-1","clientLedgerId":"CL-1","kind":"deposit","amount":100.5,"description":"retainer"}`

	tests := []struct {
		name           string
		idempotencyKey string
		body           string
		doMock         func()
		wantCode       int
		wantRes        string
	}{
		{
			name:           "success",
			idempotencyKey: "key-1",
			body:           validBody,
			doMock: func() {
				testHelper.expectFreshIdempotencyKey(true)
				testHelper.mockTrxService.EXPECT().
					Post(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.PostTransactionIn) (*models.Transaction, error) {
						assert.Equal(t, "TA-1", in.TrustAccountID)
						assert.Equal(t, "CL-1", in.ClientLedgerID)
						assert.Equal(t, models.TransactionKindDeposit, in.Kind)
						assert.True(t, in.Amount.Equal(models.MustNewDecimal("100.50")))
						return sampleTransaction("TRX-1", 1), nil
					})
			},
			wantCode: http.StatusCreated,
			wantRes:  sampleTransactionJSON,
		},
		{
			name:     "missing idempotency key",
			body:     validBody,
			wantCode: http.StatusBadRequest,
			wantRes:  `{"status":"error","code":"MISSING_IDEMPOTENCY_KEY","message":"header X-Idempotency-Key is required"}`,
		},
		{
			name:           "zero amount",
			idempotencyKey: "key-1",
			body:           `{"trustAccountId":"TA-1","kind":"deposit","amount":0}`,
			doMock: func() {
				testHelper.expectFreshIdempotencyKey(false)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"INVALID_AMOUNT","field":"amount","message":"amount must be greater than zero"}]}`,
		},
		{
			name:           "insufficient balance",
			idempotencyKey: "key-1",
			body:           `{"trustAccountId":"TA-1","clientLedgerId":"CL-1","kind":"disbursement","amount":150}`,
			doMock: func() {
				testHelper.expectFreshIdempotencyKey(false)
				testHelper.mockTrxService.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil, common.ErrInsufficientBalance)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","code":"INSUFFICIENT_BALANCE","message":"client ledger balance is not sufficient for this posting"}`,
		},
		{
			name:           "replayed request",
			idempotencyKey: "key-1",
			body:           validBody,
			doMock: func() {
				idm := models.NewIdempotency("key-1", "/api/v1/transactions", []byte(validBody))
				idm.Finish(http.StatusCreated, map[string]string{"Content-Type": "application/json"}, sampleTransactionJSON)
				cached, err := json.Marshal(idm)
				require.NoError(t, err)

				testHelper.mockCacheRepository.EXPECT().Get(gomock.Any(), "trust-ledger:idempotency:key-1").Return(string(cached), nil)
			},
			wantCode: http.StatusCreated,
			wantRes:  sampleTransactionJSON,
		},
		{
			name:           "same key with another body",
			idempotencyKey: "key-1",
			body:           `{"trustAccountId":"TA-1","kind":"deposit","amount":1}`,
			doMock: func() {
				idm := models.NewIdempotency("key-1", "/api/v1/transactions", []byte(validBody))
				cached, err := json.Marshal(idm)
				require.NoError(t, err)

				testHelper.mockCacheRepository.EXPECT().Get(gomock.Any(), "trust-ledger:idempotency:key-1").Return(string(cached), nil)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","code":"INVALID_FINGERPRINT","message":"idempotency key was used with a different request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, "/api/v1/transactions", tt.idempotencyKey, tt.body)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}

func Test_Handler_getTransaction(t *testing.T) {
	testHelper := transactionTestHelper(t)

	tests := []struct {
		name     string
		id       string
		doMock   func()
		wantCode int
		wantRes  string
	}{
		{
			name: "success",
			id:   "TRX-1",
			doMock: func() {
				testHelper.mockTrxService.EXPECT().GetByID(gomock.Any(), "TRX-1").Return(sampleTransaction("TRX-1", 1), nil)
			},
			wantCode: http.StatusOK,
			wantRes:  sampleTransactionJSON,
		},
		{
			name: "not found",
			id:   "TRX-missing",
			doMock: func() {
				testHelper.mockTrxService.EXPECT().GetByID(gomock.Any(), "TRX-missing").Return(nil, common.ErrTransactionNotFound)
			},
			wantCode: http.StatusNotFound,
			wantRes:  `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			code, body := testHelper.serve(t, http.MethodGet, "/api/v1/transactions/"+tt.id, "", "")
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantRes, body)
		})
	}
}

func Test_Handler_markCleared(t *testing.T) {
	testHelper := transactionTestHelper(t)
	cleared := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		doMock   func()
		wantCode int
		wantBody []string
	}{
		{
			name: "explicit cleared date",
			body: `{"clearedDate":"2024-02-01"}`,
			doMock: func() {
				trx := sampleTransaction("TRX-1", 1)
				trx.IsCleared = true
				trx.ClearedDate = &cleared
				testHelper.mockTrxService.EXPECT().MarkCleared(gomock.Any(), "TRX-1", cleared).Return(trx, nil)
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"isCleared":true`, `"clearedDate":"2024-02-01"`},
		},
		{
			name: "defaults to today",
			doMock: func() {
				trx := sampleTransaction("TRX-1", 1)
				trx.IsCleared = true
				trx.ClearedDate = &cleared
				testHelper.mockTrxService.EXPECT().MarkCleared(gomock.Any(), "TRX-1", time.Time{}).Return(trx, nil)
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"isCleared":true`},
		},
		{
			name:     "invalid date",
			body:     `{"clearedDate":"01-02-2024"}`,
			wantCode: http.StatusUnprocessableEntity,
			wantBody: []string{`"field":"clearedDate"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodPost, "/api/v1/transactions/TRX-1/clear", "", tt.body)
			require.Equal(t, tt.wantCode, code)
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}

func Test_Handler_listTransactions(t *testing.T) {
	testHelper := transactionTestHelper(t)

	tests := []struct {
		name     string
		query    string
		doMock   func()
		wantCode int
		check    func(t *testing.T, body string)
	}{
		{
			name:  "first page with more rows",
			query: "?limit=2&kind=deposit&isCleared=false&createdFrom=2024-01-01&createdTo=2024-01-31",
			doMock: func() {
				testHelper.mockTrxService.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter models.ListTransactionsFilter) ([]models.Transaction, error) {
						assert.Equal(t, "TA-1", filter.TrustAccountID)
						assert.Equal(t, models.TransactionKindDeposit, filter.Kind)
						require.NotNil(t, filter.IsCleared)
						assert.False(t, *filter.IsCleared)
						require.NotNil(t, filter.CreatedTo)
						assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *filter.CreatedTo)
						assert.Equal(t, 2, filter.Limit)

						return []models.Transaction{
							*sampleTransaction("TRX-3", 3),
							*sampleTransaction("TRX-2", 2),
							*sampleTransaction("TRX-1", 1),
						}, nil
					})
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body string) {
				var res struct {
					Contents   []models.TransactionOut `json:"contents"`
					Pagination struct {
						Prev string `json:"prev"`
						Next string `json:"next"`
					} `json:"pagination"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &res))
				require.Len(t, res.Contents, 2)
				assert.Equal(t, "TRX-3", res.Contents[0].ID)
				assert.Equal(t, pagination.EncodeSequence(2), res.Pagination.Next)
				assert.Empty(t, res.Pagination.Prev)
			},
		},
		{
			name:     "invalid kind",
			query:    "?kind=fee",
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "invalid cursor",
			query:    "?nextCursor=@@@@",
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "unknown trust account",
			query: "",
			doMock: func() {
				testHelper.mockTrxService.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, common.ErrTrustAccountNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := testHelper.serve(t, http.MethodGet, "/api/v1/trust-accounts/TA-1/transactions"+tt.query, "", "")
			require.Equal(t, tt.wantCode, code)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}
