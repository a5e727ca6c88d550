package trustaccount

import (
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type trustAccountHandler struct {
	trustAccountSvc services.TrustAccountService
}

// New trust account handler will initialize the trust-accounts/ and client-ledgers/ resources endpoint
func New(app *echo.Group, trustAccountSvc services.TrustAccountService) {
	handler := trustAccountHandler{trustAccountSvc: trustAccountSvc}

	accounts := app.Group("/trust-accounts")
	accounts.POST("", handler.createTrustAccount)
	accounts.GET("/:id", handler.getTrustAccount)
	accounts.GET("/:id/summary", handler.getAccountSummary)
	accounts.GET("/:id/balance", handler.getBalance)
	accounts.POST("/:id/deactivate", handler.deactivateTrustAccount)
	accounts.POST("/:id/client-ledgers", handler.createClientLedger)
	accounts.GET("/:id/client-ledgers", handler.listClientLedgers)

	ledgers := app.Group("/client-ledgers")
	ledgers.GET("/:id", handler.getClientLedger)
}

// createTrustAccount API create trust account
// @Summary Create trust account
// @Description Create a trust account with its check number sequence and unallocated ledger
// @Tags TrustAccounts
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param payload body models.CreateTrustAccountRequest true "A JSON object containing create trust account payload"
// @Success 201 {object} models.TrustAccountOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts [post]
func (h *trustAccountHandler) createTrustAccount(c echo.Context) error {
	req := new(models.CreateTrustAccountRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	account, err := h.trustAccountSvc.Create(c.Request().Context(), models.CreateTrustAccountIn(*req))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, account.ToModelResponse())
}

// getTrustAccount API get trust account
// @Summary Get trust account
// @Tags TrustAccounts
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} models.TrustAccountOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id} [get]
func (h *trustAccountHandler) getTrustAccount(c echo.Context) error {
	account, err := h.trustAccountSvc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, account.ToModelResponse())
}

// getAccountSummary API get trust account summary
// @Summary Get trust account summary
// @Description Balance, client ledger count and last reconciled date of a trust account
// @Tags TrustAccounts
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} models.AccountSummaryOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/summary [get]
func (h *trustAccountHandler) getAccountSummary(c echo.Context) error {
	summary, err := h.trustAccountSvc.GetSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, summary.ToModelResponse())
}

// getBalance API get trust account balance
// @Summary Get trust account book balance
// @Tags TrustAccounts
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} models.AccountBalanceOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/balance [get]
func (h *trustAccountHandler) getBalance(c echo.Context) error {
	id := c.Param("id")
	balance, err := h.trustAccountSvc.GetBalance(c.Request().Context(), id)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.NewAccountBalanceOut(id, balance))
}

// deactivateTrustAccount API deactivate trust account
// @Summary Deactivate trust account
// @Description An inactive trust account rejects postings and check runs
// @Tags TrustAccounts
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} models.TrustAccountOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/deactivate [post]
func (h *trustAccountHandler) deactivateTrustAccount(c echo.Context) error {
	account, err := h.trustAccountSvc.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, account.ToModelResponse())
}

// createClientLedger API create client ledger
// @Summary Create client ledger
// @Tags ClientLedgers
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Param payload body models.CreateClientLedgerRequest true "A JSON object containing create client ledger payload"
// @Success 201 {object} models.ClientLedgerOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/client-ledgers [post]
func (h *trustAccountHandler) createClientLedger(c echo.Context) error {
	req := new(models.CreateClientLedgerRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ledger, err := h.trustAccountSvc.CreateClientLedger(c.Request().Context(), models.CreateClientLedgerIn{
		TrustAccountID: c.Param("id"),
		ClientID:       req.ClientID,
		MatterID:       req.MatterID,
	})
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, ledger.ToModelResponse())
}

// listClientLedgers API list client ledgers
// @Summary List the client ledgers of a trust account
// @Tags ClientLedgers
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} http.RestCollectionResponseModel[models.ClientLedgerOut]
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/client-ledgers [get]
func (h *trustAccountHandler) listClientLedgers(c echo.Context) error {
	ledgers, err := h.trustAccountSvc.ListClientLedgers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	contents := make([]models.ClientLedgerOut, 0, len(ledgers))
	for _, l := range ledgers {
		contents = append(contents, l.ToModelResponse())
	}

	return http.RestSuccessResponseCollection(c, contents)
}

// getClientLedger API get client ledger
// @Summary Get client ledger
// @Tags ClientLedgers
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "client ledger id"
// @Success 200 {object} models.ClientLedgerOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/client-ledgers/{id} [get]
func (h *trustAccountHandler) getClientLedger(c echo.Context) error {
	ledger, err := h.trustAccountSvc.GetClientLedger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, ledger.ToModelResponse())
}
