package checkrun

import (
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/http/middleware"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type checkRunHandler struct {
	checkRunSvc services.CheckRunService
}

// New check run handler will initialize the check-runs/ resources endpoint
func New(app *echo.Group, checkRunSvc services.CheckRunService, m middleware.AppMiddleware) {
	handler := checkRunHandler{checkRunSvc: checkRunSvc}

	runs := app.Group("/check-runs")
	runs.POST("", handler.createCheckRun, m.CheckIdempotentRequest())
	runs.GET("/:id", handler.getCheckRun)
}

// createCheckRun API create check run
// @Summary Pay approved payables from a trust account
// @Description Issues one check per payable, or one per payee and client ledger when consolidateByPayee is set.
// @Description Either every payable is paid or none is and no check number is consumed.
// @Tags CheckRuns
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Param payload body models.CreateCheckRunRequest true "A JSON object containing create check run payload"
// @Success 201 {object} models.CheckRunOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/check-runs [post]
func (h *checkRunHandler) createCheckRun(c echo.Context) error {
	req := new(models.CreateCheckRunRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	run, err := h.checkRunSvc.Create(c.Request().Context(), req.ToCreateCheckRunIn())
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, run.ToModelResponse())
}

// getCheckRun API get check run
// @Summary Get check run with its instruments
// @Tags CheckRuns
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "check run id"
// @Success 200 {object} models.CheckRunOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/check-runs/{id} [get]
func (h *checkRunHandler) getCheckRun(c echo.Context) error {
	run, err := h.checkRunSvc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, run.ToModelResponse())
}
