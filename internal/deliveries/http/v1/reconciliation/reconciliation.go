package reconciliation

import (
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconciliationSvc services.ReconciliationService
}

// New reconciliation handler will initialize the reconciliations/ resources endpoint
func New(app *echo.Group, reconciliationSvc services.ReconciliationService) {
	handler := reconciliationHandler{reconciliationSvc: reconciliationSvc}

	reconciliations := app.Group("/reconciliations")
	reconciliations.POST("", handler.startReconciliation)
	reconciliations.GET("/:id", handler.getReconciliation)
	reconciliations.PATCH("/:id/bank-balance", handler.updateBankBalance)
	reconciliations.POST("/:id/complete", handler.completeReconciliation)

	app.GET("/trust-accounts/:id/reconciliations", handler.listReconciliations)
}

// startReconciliation API start reconciliation
// @Summary Start a three-way reconciliation
// @Description Snapshots the book balance and the sum of client ledgers against the bank statement balance.
// @Description Only one reconciliation per trust account may be in progress.
// @Tags Reconciliations
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param payload body models.StartReconciliationRequest true "A JSON object containing start reconciliation payload"
// @Success 201 {object} models.ReconciliationOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error, or LEDGER_CORRUPTION when the book invariant is broken"
// @Router /v1/reconciliations [post]
func (h *reconciliationHandler) startReconciliation(c echo.Context) error {
	req := new(models.StartReconciliationRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.ToStartReconciliationIn()
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	rec, err := h.reconciliationSvc.Start(c.Request().Context(), in)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, rec.ToModelResponse())
}

// getReconciliation API get reconciliation
// @Summary Get reconciliation
// @Tags Reconciliations
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "reconciliation id"
// @Success 200 {object} models.ReconciliationOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/reconciliations/{id} [get]
func (h *reconciliationHandler) getReconciliation(c echo.Context) error {
	rec, err := h.reconciliationSvc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, rec.ToModelResponse())
}

// updateBankBalance API correct the bank balance of a reconciliation
// @Summary Correct the bank balance of a reconciliation in progress
// @Tags Reconciliations
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "reconciliation id"
// @Param payload body models.UpdateBankBalanceRequest true "A JSON object containing the bank balance"
// @Success 200 {object} models.ReconciliationOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/reconciliations/{id}/bank-balance [patch]
func (h *reconciliationHandler) updateBankBalance(c echo.Context) error {
	req := new(models.UpdateBankBalanceRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	rec, err := h.reconciliationSvc.UpdateBankBalance(c.Request().Context(), c.Param("id"), req.BankBalance)
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, rec.ToModelResponse())
}

// completeReconciliation API complete reconciliation
// @Summary Complete a balanced reconciliation
// @Description An unbalanced reconciliation stays in progress and is reported as UNBALANCED_RECONCILIATION.
// @Tags Reconciliations
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "reconciliation id"
// @Success 200 {object} models.ReconciliationOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/reconciliations/{id}/complete [post]
func (h *reconciliationHandler) completeReconciliation(c echo.Context) error {
	rec, err := h.reconciliationSvc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, rec.ToModelResponse())
}

// listReconciliations API list reconciliations of a trust account
// @Summary List reconciliations of a trust account
// @Tags Reconciliations
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "trust account id"
// @Success 200 {object} http.RestCollectionResponseModel[models.ReconciliationOut]
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/trust-accounts/{id}/reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c echo.Context) error {
	recs, err := h.reconciliationSvc.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	contents := make([]models.ReconciliationOut, 0, len(recs))
	for _, r := range recs {
		contents = append(contents, r.ToModelResponse())
	}

	return http.RestSuccessResponseCollection(c, contents)
}
