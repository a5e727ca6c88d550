package transaction

import (
	nethttp "net/http"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/http/middleware"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type transactionHandler struct {
	trxService services.TransactionService
}

// New transaction handler will initialize the transactions/ resources endpoint
func New(app *echo.Group, trxService services.TransactionService, m middleware.AppMiddleware) {
	handler := transactionHandler{trxService: trxService}

	transactions := app.Group("/transactions")
	transactions.POST("", handler.postTransaction, m.CheckIdempotentRequest())
	transactions.GET("/:id", handler.getTransaction)
	transactions.POST("/:id/clear", handler.markCleared)

	app.GET("/trust-accounts/:id/transactions", handler.listTransactions)
}

// postTransaction API post transaction
// @Summary Post a transaction to a trust account
// @Description Applies the signed amount to the trust account and the client ledger in one unit of work.
// @Description A posting without clientLedgerId goes to the unallocated ledger of the account.
// @Tags Transactions
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Param payload body models.PostTransactionRequest true "A JSON object containing post transaction payload"
// @Success 201 {object} models.TransactionOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/transactions [post]
func (h *transactionHandler) postTransaction(c echo.Context) error {
	req := new(models.PostTransactionRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToPostTransactionIn()
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	trx, err := h.trxService.Post(c.Request().Context(), in)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, trx.ToModelResponse())
}

// getTransaction API get transaction
// @Summary Get transaction
// @Tags Transactions
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "transaction id"
// @Success 200 {object} models.TransactionOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/transactions/{id} [get]
func (h *transactionHandler) getTransaction(c echo.Context) error {
	trx, err := h.trxService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, trx.ToModelResponse())
}

// markCleared API mark transaction cleared
// @Summary Mark a transaction as cleared by the bank
// @Description clearedDate defaults to today. Clearing a cleared transaction returns it unchanged.
// @Tags Transactions
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "transaction id"
// @Param payload body models.MarkClearedRequest false "A JSON object containing the cleared date"
// @Success 200 {object} models.TransactionOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/transactions/{id}/clear [post]
func (h *transactionHandler) markCleared(c echo.Context) error {
	req := new(models.MarkClearedRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	var clearedDate time.Time
	if req.ClearedDate != "" {
		d, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.ClearedDate)
		if err != nil {
			return http.RestDomainErrorResponse(c, err)
		}
		clearedDate = d
	}

	trx, err := h.trxService.MarkCleared(c.Request().Context(), c.Param("id"), clearedDate)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, trx.ToModelResponse())
}

// listTransactions API list transactions of a trust account
// @Summary List transactions of a trust account
// @Description Newest first, paginated with nextCursor / prevCursor.
// @Tags Transactions
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Param params query models.ListTransactionsRequest false "List transactions query parameters"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.TransactionOut]
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/transactions [get]
func (h *transactionHandler) listTransactions(c echo.Context) error {
	req := new(models.ListTransactionsRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	filter, err := req.ToFilter(c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	if _, _, err = filter.BuildCursorAndLimit(); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	trxs, err := h.trxService.List(c.Request().Context(), filter)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.TransactionOut](c, trxs, filter.PageSize())
}
