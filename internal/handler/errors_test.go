package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/service"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", service.ErrInvalidCredentials.Error()},
		{service.ErrInactiveAccount, http.StatusUnauthorized, "inactive_account", service.ErrInactiveAccount.Error()},
		{service.ErrMissingToken, http.StatusUnauthorized, "missing_token", service.ErrMissingToken.Error()},
		{service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token", service.ErrInvalidToken.Error()},
		{service.ErrTokenExpired, http.StatusUnauthorized, "token_expired", service.ErrTokenExpired.Error()},
		{badRequest("name is required"), http.StatusBadRequest, "validation_error", "name is required"},
		{fmt.Errorf("service.CreateReview: %w", service.ErrInvalidInput), http.StatusBadRequest, "validation_error", "invalid input"},
		{fmt.Errorf("service.GetUser: %w", service.ErrNotFound), http.StatusNotFound, "not_found", "resource not found"},
		{fmt.Errorf("service.CreateUser: %w", service.ErrConflict), http.StatusConflict, "conflict", "resource already exists"},
		{errors.New("pq: connection refused to 10.0.0.5"), http.StatusInternalServerError, "internal_error", "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode+"/"+tt.wantMsg, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			require.Equal(t, tt.wantCode, body.Code)
			require.Equal(t, tt.wantMsg, body.Error)
			require.True(t, c.IsAborted())
		})
	}
}
