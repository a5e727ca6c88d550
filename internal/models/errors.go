package models

import (
	"errors"
	"fmt"
)

var errUnknownErrorKey = errors.New("unknown error mapping")

type (
	// MapErrs is keyed by the ErrKey* constants generated from storages/errors-map.csv.
	MapErrs map[string]ErrorDetail

	// ErrorDetail is the code/message pair rendered in error responses.
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.ErrorMessage)
}

func (e ErrorDetail) Unwrap() error {
	return e.ErrorMessage
}

// WithCause keeps the code but reports cause as the message.
func (e ErrorDetail) WithCause(cause error) ErrorDetail {
	if cause != nil {
		e.ErrorMessage = cause
	}
	return e
}

// GetErrMap looks up key in MapErrors. Unknown keys still carry the key as code.
func GetErrMap(key string) ErrorDetail {
	v, ok := MapErrors[key]
	if !ok {
		return ErrorDetail{Code: key, ErrorMessage: errUnknownErrorKey}
	}
	return v
}
