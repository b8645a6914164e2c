package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medilink/backend/internal/db"
	"github.com/medilink/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestResourcesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/api/v1/users",
		"/api/v1/medicines",
		"/api/v1/reviews",
		"/api/v1/search-history",
		"/api/v1/dashboard/stats",
	} {
		rec := env.do(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.Equal(t, "missing_token", decodeError(t, rec).Code, path)
	}
}

func TestUsers_List(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().
		ListUsers(gomock.Any(), model.ListParams{Page: 2, Limit: 100, Search: "ann"}).
		Return([]model.User{{ID: 1, Name: "Ann"}}, int64(101), nil)

	rec := env.do(http.MethodGet, "/api/v1/users?page=2&limit=500&search=%20ann%20", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body model.ListResponse[model.User]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, model.Pagination{Page: 2, Limit: 100, Total: 101, TotalPages: 2}, body.Pagination)
}

func TestUsers_ListEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	rec := env.do(http.MethodGet, "/api/v1/users", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":10,"total":0,"total_pages":0}}`, rec.Body.String())
}

func TestUsers_BadQueryAndPath(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodGet, "/api/v1/users?page=abc", nil, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/users/abc", nil, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "id must be a positive integer", decodeError(t, rec).Error)

	rec = env.do(http.MethodDelete, "/api/v1/users/0", nil, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_GetNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().UserByID(gomock.Any(), int64(7)).Return(nil, db.ErrNotFound)

	rec := env.do(http.MethodGet, "/api/v1/users/7", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestUsers_Create(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) error {
			require.Equal(t, "ann@example.com", u.Email)
			require.NotEmpty(t, u.PasswordHash)
			u.ID = 9
			return nil
		})

	rec := env.do(http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Ann",
		"email":    " Ann@Example.com ",
		"password": "secret1",
		"gender":   "female",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "password")

	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, int64(9), user.ID)
	require.Equal(t, model.UserStatusActive, user.Status)
}

func TestUsers_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Ann",
		"email":    "not-an-email",
		"password": "secret1",
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, "validation_error", body.Code)
	require.Contains(t, body.Error, "email")
}

func TestUsers_CreateConflict(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(db.ErrConflict)

	rec := env.do(http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "secret1",
	}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUsers_SetStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	gomock.InOrder(
		env.users.EXPECT().SetUserStatus(gomock.Any(), int64(3), model.UserStatusInactive).Return(nil),
		env.users.EXPECT().UserByID(gomock.Any(), int64(3)).Return(&model.User{ID: 3, Status: model.UserStatusInactive}, nil),
	)

	rec := env.do(http.MethodPatch, "/api/v1/users/3/status", gin.H{"status": "Inactive"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"status":"inactive"`)

	rec = env.do(http.MethodPatch, "/api/v1/users/3/status", gin.H{"status": "banned"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_DeleteStoreFailureIsHidden(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().DeleteUser(gomock.Any(), int64(4)).Return(errors.New("connection reset by peer"))

	rec := env.do(http.MethodDelete, "/api/v1/users/4", nil, token)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection reset")
}

func TestMedicines(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodGet, "/api/v1/medicines?category=analgesic", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Paracetamol")

	rec = env.do(http.MethodGet, "/api/v1/medicines/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/medicines", gin.H{"name": "Ibuprofen", "price": 12.5}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/v1/medicines", gin.H{"name": "paracetamol"}, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/medicines", gin.H{"name": "Bad", "price": -1}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviews(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodGet, "/api/v1/reviews?status=flagged", nil, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/reviews/5", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHistoryAndDashboard(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodDelete, "/api/v1/search-history/users/12", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"deleted","deleted":5}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/v1/search-history/top?limit=3", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"query":"paracetamol","count":4}]`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/v1/search-history?search_type=weird", nil, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/dashboard/stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"active_users":2`)
}

func TestChat(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/chat", gin.H{"message": "I have a fever since yesterday"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, model.ChatSourceFallback, resp.Source)
	require.Contains(t, resp.Reply, "fever")

	rec = env.do(http.MethodPost, "/api/v1/chat", gin.H{"message": "   "}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "validation_error", decodeError(t, rec).Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	rec := env.do(http.MethodGet, "/ping", nil, "")
	require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/healthz", nil, "")
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `medilink_admin_logins_total{outcome="ok"} 1`)

	rec = env.do(http.MethodGet, "/openapi.json", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, json.Valid(rec.Body.Bytes()))
	require.Contains(t, rec.Body.String(), "/api/v1/admin/login")
}

func TestHealthz_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", Healthz(fakePinger{err: errors.New("dial tcp: refused")}))

	env := &testEnv{router: router}
	rec := env.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotContains(t, rec.Body.String(), "refused")
}

func TestUsers_UpdateRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodPut, "/api/v1/users/5", gin.H{"name": ""}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "name is required", decodeError(t, rec).Error)
}

func TestUsers_CreateMultibytePasswordTooLong(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": strings.Repeat("é", 40),
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "validation_error", decodeError(t, rec).Code)
}

func TestUsers_HugePageIsClamped(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	env.users.EXPECT().
		ListUsers(gomock.Any(), model.ListParams{Page: model.MaxPage, Limit: 10}).
		Return(nil, int64(0), nil)

	rec := env.do(http.MethodGet, "/api/v1/users?page=9223372036854775807", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
