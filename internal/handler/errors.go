package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
	"go.uber.org/zap"
)

const (
	codeRateLimited   = "rate_limited"
	codeInternalError = "internal_error"
)

// errorStatus maps an error kind (service.Outcome) to its HTTP status.
var errorStatus = map[string]int{
	"invalid_credentials": http.StatusUnauthorized,
	"inactive_account":    http.StatusUnauthorized,
	"missing_token":       http.StatusUnauthorized,
	"invalid_token":       http.StatusUnauthorized,
	"token_expired":       http.StatusUnauthorized,
	"validation_error":    http.StatusBadRequest,
	"not_found":           http.StatusNotFound,
	"conflict":            http.StatusConflict,
	codeRateLimited:       http.StatusTooManyRequests,
	codeInternalError:     http.StatusInternalServerError,
}

// writeError aborts the request with {"error", "code"}. Unclassified errors
// are logged and reported as a generic internal error.
func writeError(c *gin.Context, err error) {
	code := service.Outcome(err)
	status, ok := errorStatus[code]
	if !ok {
		status, code = http.StatusInternalServerError, codeInternalError
	}

	var msg string
	switch code {
	case "validation_error":
		msg = detail(err, service.ErrInvalidInput, "invalid input")
	case "not_found":
		msg = "resource not found"
	case "conflict":
		msg = detail(err, service.ErrConflict, "resource already exists")
	case codeInternalError:
		zap.L().Error("request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		msg = "internal server error"
	default:
		// Authentication kinds carry fixed, client-safe messages.
		msg = authMessage(err)
	}

	c.AbortWithStatusJSON(status, model.ErrorResponse{Error: msg, Code: code})
}

func authMessage(err error) string {
	for _, sentinel := range []error{
		service.ErrInvalidCredentials,
		service.ErrInactiveAccount,
		service.ErrMissingToken,
		service.ErrInvalidToken,
		service.ErrTokenExpired,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "unauthorized"
}

// detail returns the text following the sentinel in a wrapped error message.
func detail(err, sentinel error, fallback string) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return fallback
}

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, msg)
}
