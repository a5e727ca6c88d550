package http

import (
	"errors"
	"net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestPaginationResponseModel[T any] struct {
		Kind       string           `json:"kind" example:"collection"`
		Contents   T                `json:"contents"`
		Pagination CursorPagination `json:"pagination"`
	}

	RestCollectionResponseModel[T any] struct {
		Kind     string `json:"kind" example:"collection"`
		Contents []T    `json:"contents"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation failed"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseCollection[T any](c echo.Context, contents []T) error {
	if contents == nil {
		contents = make([]T, 0)
	}
	return c.JSON(http.StatusOK, RestCollectionResponseModel[T]{
		Kind:     "collection",
		Contents: contents,
	})
}

// RestSuccessResponseCursorPagination renders one page of data, which was fetched with one extra row
// beyond pageSize to tell whether another page exists.
func RestSuccessResponseCursorPagination[ModelResponse any, S ~[]E, E PaginateableContent[ModelResponse]](c echo.Context, data S, pageSize int) error {
	hasMorePages := len(data) > pageSize

	if len(data) > 0 {
		if hasMorePages {
			data = data[:pageSize]
		}

		if isBackward(c) {
			for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
				data[i], data[j] = data[j], data[i]
			}
		}
	}

	contents := make([]ModelResponse, 0, len(data))
	for _, datum := range data {
		contents = append(contents, datum.ToModelResponse())
	}

	pagination := NewCursorPagination[ModelResponse](c, data, hasMorePages)

	return c.JSON(http.StatusOK, RestPaginationResponseModel[[]ModelResponse]{
		Kind:       "collection",
		Contents:   contents,
		Pagination: pagination,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errs error) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	var merr *multierror.Error
	if errors.As(errs, &merr) {
		res.Errors = merr.Errors
	} else if errs != nil {
		res.Errors = []error{errs}
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

type domainError struct {
	target error
	status int
	key    string
}

// domainErrors maps service sentinels to an HTTP status and error map key; first match wins.
var domainErrors = []domainError{
	{common.ErrLedgerCorruption, http.StatusInternalServerError, models.ErrKeyLedgerCorruption},

	{common.ErrTrustAccountNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrClientLedgerNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrTransactionNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrReconciliationNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrApprovalWorkflowNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrApprovalRequestNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrVendorBillNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrCheckRunNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrDataNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},

	{common.ErrAlreadyPaid, http.StatusConflict, models.ErrKeyAlreadyPaid},
	{common.ErrConcurrentModification, http.StatusConflict, models.ErrKeyConcurrentModification},
	{common.ErrReconciliationInProgress, http.StatusConflict, models.ErrKeyReconciliationInProgress},
	{common.ErrReconciliationClosed, http.StatusConflict, models.ErrKeyReconciliationClosed},
	{common.ErrApprovalRequestClosed, http.StatusConflict, models.ErrKeyApprovalRequestClosed},
	{common.ErrDuplicateDecision, http.StatusConflict, models.ErrKeyDuplicateDecision},
	{common.ErrRequestBeingProcessed, http.StatusConflict, models.ErrKeyRequestBeingProcessed},
	{common.ErrBillNotAwaitingApproval, http.StatusConflict, models.ErrKeyBillNotAwaitingApproval},

	{common.ErrApproverNotEligible, http.StatusForbidden, models.ErrKeyApproverNotEligible},

	{common.ErrInsufficientBalance, http.StatusUnprocessableEntity, models.ErrKeyInsufficientBalance},
	{common.ErrUnbalancedReconciliation, http.StatusUnprocessableEntity, models.ErrKeyUnbalancedReconciliation},
	{common.ErrNoMatchingApprovalLevel, http.StatusUnprocessableEntity, models.ErrKeyNoMatchingApprovalLevel},
	{common.ErrPayableNotEligible, http.StatusUnprocessableEntity, models.ErrKeyPayableNotEligible},
	{common.ErrApprovalAmountMismatch, http.StatusUnprocessableEntity, models.ErrKeyApprovalAmountMismatch},
	{common.ErrDuplicatePayable, http.StatusUnprocessableEntity, models.ErrKeyDuplicatePayable},
	{common.ErrTrustAccountInactive, http.StatusUnprocessableEntity, models.ErrKeyTrustAccountInactive},
	{common.ErrClientLedgerMismatch, http.StatusUnprocessableEntity, models.ErrKeyClientLedgerMismatch},
	{common.ErrInvalidAmount, http.StatusUnprocessableEntity, models.ErrKeyInvalidAmount},
	{common.ErrInvalidAmountPrecision, http.StatusUnprocessableEntity, models.ErrKeyInvalidAmountPrecision},
	{common.ErrInvalidTransactionKind, http.StatusUnprocessableEntity, models.ErrKeyInvalidTransactionKind},
	{common.ErrInvalidApprovalLevels, http.StatusUnprocessableEntity, models.ErrKeyInvalidApprovalLevels},
	{common.ErrInvalidDecision, http.StatusUnprocessableEntity, models.ErrKeyInvalidDecision},
	{common.ErrInvalidPeriod, http.StatusUnprocessableEntity, models.ErrKeyInvalidPeriod},
	{common.ErrInvalidFormatDate, http.StatusUnprocessableEntity, models.ErrKeyInvalidFormatDate},
	{common.ErrInvalidFingerprint, http.StatusUnprocessableEntity, models.ErrKeyInvalidFingerprint},
	{common.ErrMissingIdempotencyKey, http.StatusBadRequest, models.ErrKeyMissingIdempotencyKey},

	{common.ErrBankStatementUnavailable, http.StatusBadGateway, models.ErrKeyBankStatementUnavailable},
}

func lookupDomainError(err error) (domainError, bool) {
	for _, de := range domainErrors {
		if errors.Is(err, de.target) {
			return de, true
		}
	}
	return domainError{}, false
}

// DomainErrorStatus returns the HTTP status and error map key for err.
func DomainErrorStatus(err error) (int, string) {
	de, ok := lookupDomainError(err)
	if !ok {
		return http.StatusInternalServerError, models.ErrKeyInternalServerError
	}
	return de.status, de.key
}

// RestDomainErrorResponse renders a service error with its stable error code.
// Unknown errors are reported as internal server errors without leaking their message.
func RestDomainErrorResponse(c echo.Context, err error) error {
	de, ok := lookupDomainError(err)
	if !ok {
		return RestErrorResponse(c, http.StatusInternalServerError, models.GetErrMap(models.ErrKeyInternalServerError))
	}

	detail := models.GetErrMap(de.key)
	if err != de.target {
		// keep the context the service wrapped around the sentinel
		detail = detail.WithCause(err)
	}
	return RestErrorResponse(c, de.status, detail)
}
