package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"missing password", gin.H{"identifier": testUsername}, http.StatusBadRequest, "validation_error"},
		{"missing identifier", gin.H{"password": testPassword}, http.StatusBadRequest, "validation_error"},
		{"malformed body", "not-an-object", http.StatusBadRequest, "validation_error"},
		{"wrong password", gin.H{"identifier": testUsername, "password": "nope-nope"}, http.StatusUnauthorized, "invalid_credentials"},
		{"unknown user", gin.H{"username": "ghost", "password": testPassword}, http.StatusUnauthorized, "invalid_credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/v1/admin/login", tt.body, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestLogin_ByEmailIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/admin/login", gin.H{"email": "ROOT@MediLink.local", "password": testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res model.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, int64(3600), res.ExpiresIn)
	require.Equal(t, testUsername, res.Admin.Username)
	require.NotContains(t, rec.Body.String(), "password_hash")
}

func TestLogin_InactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	admin, err := env.admins.AdminByUsername(context.Background(), testUsername)
	require.NoError(t, err)
	require.NoError(t, env.admins.SetAdminStatus(context.Background(), admin.ID, model.AdminStatusInactive))

	rec := env.do(http.MethodPost, "/api/v1/admin/login", gin.H{"identifier": testUsername, "password": testPassword}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "inactive_account", decodeError(t, rec).Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/v1/admin/logout", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"logged_out"}`, rec.Body.String())
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodGet, "/api/v1/admin/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var admin model.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admin))
	require.Equal(t, testUsername, admin.Username)
	require.Equal(t, testEmail, admin.Email)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	other := &model.Admin{Username: "taken", Email: "taken@medilink.local", Status: model.AdminStatusActive}
	require.NoError(t, env.admins.CreateAdmin(context.Background(), other))

	rec := env.do(http.MethodPut, "/api/v1/admin/profile", gin.H{"username": "taken"}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "conflict", body.Code)
	require.Equal(t, "username is already taken", body.Error)

	rec = env.do(http.MethodPut, "/api/v1/admin/profile", gin.H{"username": "x"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "validation_error", decodeError(t, rec).Code)

	rec = env.do(http.MethodPut, "/api/v1/admin/profile", gin.H{"username": "renamed", "phone": "+62 811 000"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var admin model.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admin))
	require.Equal(t, "renamed", admin.Username)
	require.Equal(t, testEmail, admin.Email)

	// The token keeps working because it carries the id, not the username.
	rec = env.do(http.MethodGet, "/api/v1/admin/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"renamed"`)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodPut, "/api/v1/admin/change-password", gin.H{
		"current_password": "wrong-one",
		"new_password":     "brand-new-pass",
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "current_password is incorrect", decodeError(t, rec).Error)

	rec = env.do(http.MethodPut, "/api/v1/admin/change-password", gin.H{
		"current_password": testPassword,
		"new_password":     "brand-new-pass",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/v1/admin/login", gin.H{"identifier": testUsername, "password": testPassword}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = env.do(http.MethodPost, "/api/v1/admin/login", gin.H{"identifier": testUsername, "password": "brand-new-pass"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
}
