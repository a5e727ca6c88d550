package approval

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/services/mock"
)

type testApprovalHelper struct {
	router              *echo.Echo
	mockCtrl            *gomock.Controller
	mockApprovalService *mock.MockApprovalService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func approvalTestHelper(t *testing.T) testApprovalHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockApprovalSvc := mock.NewMockApprovalService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockApprovalSvc)

	return testApprovalHelper{
		router:              app,
		mockCtrl:            mockCtrl,
		mockApprovalService: mockApprovalSvc,
	}
}

func (h testApprovalHelper) serve(t *testing.T, method, url, body string) (int, string) {
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
