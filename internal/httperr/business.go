package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===============================
// Códigos de negócio
// ===============================

const (
	CodeInvalidSchedule      = "invalid_schedule"
	CodePreconditionRequired = "precondition_required"
	CodeTimeConflict         = "time_conflict"
	CodeInvalidTransition    = "invalid_transition"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
)

type BusinessError struct {
	Code    string
	Details map[string]any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessDetails(code string, details map[string]any) error {
	return BusinessError{Code: code, Details: details}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessDetails(err error) map[string]any {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Details
	}
	return nil
}

// ===============================
// Mapeamento código → status HTTP
// ===============================

var statusByCode = map[string]int{
	CodeInvalidSchedule:      http.StatusBadRequest,
	CodePreconditionRequired: http.StatusPreconditionRequired,
	CodeTimeConflict:         http.StatusConflict,
	CodeInvalidTransition:    http.StatusUnprocessableEntity,
	CodeForbidden:            http.StatusForbidden,
	CodeNotFound:             http.StatusNotFound,
}

// WriteBusiness devolve o erro de negócio com o status adequado.
// Retorna false quando o erro não é de negócio (caller trata como interno).
func WriteBusiness(c *gin.Context, err error, message string) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Details: be.Details,
	})
	return true
}
