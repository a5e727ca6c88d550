package bankstatement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/httpclient"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

const (
	serviceName = "bank_statement"
	logMessage  = "[BANK-STATEMENT-CLIENT]"

	balanceRoute = "/api/v1/accounts/:accountRef/balance"
)

// Client reads closing balances from the bank statement feed. Reconciliation uses the figure as
// the bank side of the comparison.
type Client interface {
	GetClosingBalance(ctx context.Context, bankAccountRef string, asOf time.Time) (res models.BankStatementBalance, err error)
}

type client struct {
	secretKey string
	wrapper   *httpclient.RequestWrapper
}

func New(cfg config.HTTPConfiguration, m metrics.Metrics) Client {
	return NewWithResty(httpclient.NewRestyClient(cfg), cfg.SecretKey, m)
}

func NewWithResty(rc *resty.Client, secretKey string, m metrics.Metrics) Client {
	return client{
		secretKey: secretKey,
		wrapper:   httpclient.NewRequestWrapper(rc, m, serviceName, logMessage),
	}
}

func (c client) GetClosingBalance(ctx context.Context, bankAccountRef string, asOf time.Time) (res models.BankStatementBalance, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	path := fmt.Sprintf("/api/v1/accounts/%s/balance", url.PathEscape(bankAccountRef))

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodGet, path, balanceRoute, func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("X-Secret-Key", c.secretKey).
			SetQueryParam("asOf", asOf.Format(common.DateFormatYYYYMMDD))
	})
	if err != nil {
		return res, fmt.Errorf("%w: %v", common.ErrBankStatementUnavailable, err)
	}

	switch {
	case httpRes.StatusCode() == http.StatusNotFound:
		return res, fmt.Errorf("%w: no statement for account %s", common.ErrBankStatementUnavailable, bankAccountRef)
	case httpRes.StatusCode() != http.StatusOK:
		return res, fmt.Errorf("%w: invalid response http code: got %d", common.ErrBankStatementUnavailable, httpRes.StatusCode())
	}

	var body models.BankStatementBalanceResponse
	if err = json.Unmarshal(httpRes.Body(), &body); err != nil {
		return res, fmt.Errorf("error unmarshal response: %w", err)
	}

	asOfDate := asOf
	if body.AsOfDate != "" {
		if asOfDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, body.AsOfDate); err != nil {
			return res, fmt.Errorf("error parse asOfDate: %w", err)
		}
	}

	return models.BankStatementBalance{
		BankAccountRef: body.AccountRef,
		AsOf:           asOfDate,
		Balance:        body.ClosingBalance,
	}, nil
}
