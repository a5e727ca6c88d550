package vendorbill

import (
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type vendorBillHandler struct {
	vendorBillSvc services.VendorBillService
}

// New vendor bill handler will initialize the vendor-bills/ resources endpoint
func New(app *echo.Group, vendorBillSvc services.VendorBillService) {
	handler := vendorBillHandler{vendorBillSvc: vendorBillSvc}

	bills := app.Group("/vendor-bills")
	bills.POST("", handler.createVendorBill)
	bills.GET("", handler.listVendorBills)
	bills.GET("/:id", handler.getVendorBill)
}

// createVendorBill API create vendor bill
// @Summary Create vendor bill
// @Description The bill starts as draft and becomes payable once its approval request is approved.
// @Tags VendorBills
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param payload body models.CreateVendorBillRequest true "A JSON object containing create vendor bill payload"
// @Success 201 {object} models.VendorBillOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/vendor-bills [post]
func (h *vendorBillHandler) createVendorBill(c echo.Context) error {
	req := new(models.CreateVendorBillRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	bill, err := h.vendorBillSvc.Create(c.Request().Context(), req.ToCreateVendorBillIn())
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, bill.ToModelResponse())
}

// getVendorBill API get vendor bill
// @Summary Get vendor bill
// @Tags VendorBills
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "vendor bill id"
// @Success 200 {object} models.VendorBillOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/vendor-bills/{id} [get]
func (h *vendorBillHandler) getVendorBill(c echo.Context) error {
	bill, err := h.vendorBillSvc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, bill.ToModelResponse())
}

// listVendorBills API list vendor bills
// @Summary List vendor bills
// @Tags VendorBills
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param params query models.ListVendorBillsRequest false "List vendor bills query parameters"
// @Success 200 {object} http.RestCollectionResponseModel[models.VendorBillOut]
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/vendor-bills [get]
func (h *vendorBillHandler) listVendorBills(c echo.Context) error {
	req := new(models.ListVendorBillsRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	bills, err := h.vendorBillSvc.List(c.Request().Context(), req.TrustAccountID, models.VendorBillStatus(req.Status))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	contents := make([]models.VendorBillOut, 0, len(bills))
	for _, b := range bills {
		contents = append(contents, b.ToModelResponse())
	}

	return http.RestSuccessResponseCollection(c, contents)
}
