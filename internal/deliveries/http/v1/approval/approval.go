package approval

import (
	nethttp "net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/validation"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type approvalHandler struct {
	approvalSvc services.ApprovalService
}

// New approval handler will initialize the approval-workflows/ and approval-requests/ resources endpoint
func New(app *echo.Group, approvalSvc services.ApprovalService) {
	handler := approvalHandler{approvalSvc: approvalSvc}

	workflows := app.Group("/approval-workflows")
	workflows.POST("", handler.createApprovalWorkflow)
	workflows.GET("", handler.listApprovalWorkflows)
	workflows.GET("/:id", handler.getApprovalWorkflow)

	requests := app.Group("/approval-requests")
	requests.POST("", handler.submitForApproval)
	requests.GET("/:id", handler.getApprovalRequest)
	requests.POST("/:id/decisions", handler.decideApproval)
}

// createApprovalWorkflow API create approval workflow
// @Summary Create approval workflow
// @Description Levels are numbered from 1 and matched by amount range, lowest level number first.
// @Tags Approvals
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param payload body models.CreateApprovalWorkflowRequest true "A JSON object containing create approval workflow payload"
// @Success 201 {object} models.ApprovalWorkflowOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-workflows [post]
func (h *approvalHandler) createApprovalWorkflow(c echo.Context) error {
	req := new(models.CreateApprovalWorkflowRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	wf, err := h.approvalSvc.CreateWorkflow(c.Request().Context(), req.ToCreateApprovalWorkflowIn())
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, wf.ToModelResponse())
}

// getApprovalWorkflow API get approval workflow
// @Summary Get approval workflow
// @Tags Approvals
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "approval workflow id"
// @Success 200 {object} models.ApprovalWorkflowOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-workflows/{id} [get]
func (h *approvalHandler) getApprovalWorkflow(c echo.Context) error {
	wf, err := h.approvalSvc.GetWorkflow(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, wf.ToModelResponse())
}

// listApprovalWorkflows API list approval workflows
// @Summary List approval workflows
// @Tags Approvals
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param params query models.ListApprovalWorkflowsRequest false "List approval workflows query parameters"
// @Success 200 {object} http.RestCollectionResponseModel[models.ApprovalWorkflowOut]
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-workflows [get]
func (h *approvalHandler) listApprovalWorkflows(c echo.Context) error {
	req := new(models.ListApprovalWorkflowsRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	workflows, err := h.approvalSvc.ListWorkflows(c.Request().Context(), models.EntityType(req.EntityType))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	contents := make([]models.ApprovalWorkflowOut, 0, len(workflows))
	for _, wf := range workflows {
		contents = append(contents, wf.ToModelResponse())
	}

	return http.RestSuccessResponseCollection(c, contents)
}

// submitForApproval API submit for approval
// @Summary Submit an entity for approval
// @Description The amount selects one level of the workflow; only that level decides the request.
// @Tags Approvals
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param payload body models.SubmitForApprovalRequest true "A JSON object containing submit for approval payload"
// @Success 201 {object} models.ApprovalRequestOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-requests [post]
func (h *approvalHandler) submitForApproval(c echo.Context) error {
	req := new(models.SubmitForApprovalRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ar, err := h.approvalSvc.Submit(c.Request().Context(), models.SubmitForApprovalIn(*req))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, ar.ToModelResponse())
}

// getApprovalRequest API get approval request
// @Summary Get approval request with its decisions
// @Tags Approvals
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "approval request id"
// @Success 200 {object} models.ApprovalRequestOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-requests/{id} [get]
func (h *approvalHandler) getApprovalRequest(c echo.Context) error {
	ar, err := h.approvalSvc.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, ar.ToModelResponse())
}

// decideApproval API decide approval request
// @Summary Record an approval decision
// @Description approve, reject or escalate. A closed request rejects further decisions.
// @Tags Approvals
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param id path string true "approval request id"
// @Param payload body models.DecideApprovalRequest true "A JSON object containing the decision"
// @Success 200 {object} models.ApprovalRequestOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 403 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/approval-requests/{id}/decisions [post]
func (h *approvalHandler) decideApproval(c echo.Context) error {
	req := new(models.DecideApprovalRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ar, err := h.approvalSvc.Decide(c.Request().Context(), models.DecideApprovalIn{
		RequestID:    c.Param("id"),
		ApproverID:   req.ApproverID,
		ApproverRole: req.ApproverRole,
		Decision:     models.DecisionKind(req.Decision),
		Comment:      req.Comment,
	})
	if err != nil {
		return http.RestDomainErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, ar.ToModelResponse())
}
