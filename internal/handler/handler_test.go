package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/db"
	"github.com/medilink/backend/internal/metrics"
	"github.com/medilink/backend/internal/mocks"
	"github.com/medilink/backend/internal/model"
	"github.com/medilink/backend/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testUsername = "root"
	testEmail    = "root@medilink.local"
	testPassword = "s3cret-pass"
)

type memAdminStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*model.Admin
}

func newMemAdminStore() *memAdminStore {
	return &memAdminStore{rows: map[int64]*model.Admin{}}
}

func (m *memAdminStore) find(match func(*model.Admin) bool) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if match(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("mem: %w", db.ErrNotFound)
}

func (m *memAdminStore) AdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	return m.find(func(a *model.Admin) bool { return a.Username == username })
}

func (m *memAdminStore) AdminByEmail(_ context.Context, email string) (*model.Admin, error) {
	return m.find(func(a *model.Admin) bool { return strings.EqualFold(a.Email, email) })
}

func (m *memAdminStore) AdminByID(_ context.Context, id int64) (*model.Admin, error) {
	return m.find(func(a *model.Admin) bool { return a.ID == id })
}

func (m *memAdminStore) CreateAdmin(_ context.Context, admin *model.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	admin.ID = m.nextID
	cp := *admin
	m.rows[admin.ID] = &cp
	return nil
}

func (m *memAdminStore) UpdateAdminProfile(_ context.Context, id int64, upd model.AdminProfileUpdate) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if upd.Username != nil {
		a.Username = *upd.Username
	}
	if upd.Email != nil {
		a.Email = *upd.Email
	}
	if upd.Phone != nil {
		a.Phone = upd.Phone
	}
	cp := *a
	return &cp, nil
}

func (m *memAdminStore) UpdateAdminPassword(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return db.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (m *memAdminStore) SetAdminStatus(_ context.Context, id int64, status model.AdminStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return db.ErrNotFound
	}
	a.Status = status
	return nil
}

type fakeMedicineStore struct {
	service.MedicineStore
	items []model.Medicine
}

func (f *fakeMedicineStore) ListMedicines(_ context.Context, params model.MedicineListParams) ([]model.Medicine, int64, error) {
	return f.items, int64(len(f.items)), nil
}

func (f *fakeMedicineStore) MedicineByID(_ context.Context, id int64) (*model.Medicine, error) {
	for _, m := range f.items {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeMedicineStore) CreateMedicine(_ context.Context, req model.MedicineRequest) (*model.Medicine, error) {
	for _, m := range f.items {
		if strings.EqualFold(m.Name, req.Name) {
			return nil, db.ErrConflict
		}
	}
	m := model.Medicine{ID: int64(len(f.items) + 1), Name: req.Name, Price: req.Price}
	f.items = append(f.items, m)
	return &m, nil
}

type fakeReviewStore struct {
	service.ReviewStore
}

func (fakeReviewStore) ReviewByID(_ context.Context, id int64) (*model.Review, error) {
	return nil, db.ErrNotFound
}

type fakeHistoryStore struct {
	service.SearchHistoryStore
	cleared int64
}

func (f *fakeHistoryStore) ClearUserSearchHistory(_ context.Context, userID int64) (int64, error) {
	return f.cleared, nil
}

func (f *fakeHistoryStore) TopSearchQueries(_ context.Context, limit int) ([]model.TopQuery, error) {
	return []model.TopQuery{{Query: "paracetamol", Count: 4}}, nil
}

func (f *fakeHistoryStore) DashboardStats(context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{Users: 3, ActiveUsers: 2}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type testEnv struct {
	router  *gin.Engine
	admins  *memAdminStore
	users   *mocks.MockUserStore
	auth    *service.AuthService
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	admins := newMemAdminStore()
	m := metrics.New()
	auth, err := service.NewAuthService(admins, config.AuthConfig{
		JWTSecret:    "test-secret",
		JWTAccessTTL: time.Hour,
		JWTIssuer:    "medilink-test",
	}, service.WithHashCost(bcrypt.MinCost), service.WithAuthObserver(m))
	require.NoError(t, err)
	require.NoError(t, auth.EnsureAdmin(context.Background(), testUsername, testEmail, testPassword))

	users := mocks.NewMockUserStore(gomock.NewController(t))
	historySvc := service.NewSearchHistoryService(&fakeHistoryStore{cleared: 5}, 0, zap.NewNop())

	router := NewRouter(RouterDeps{
		AuthService:   auth,
		Auth:          NewAuthHandler(auth),
		Users:         NewUserHandler(service.NewUserService(users, bcrypt.MinCost)),
		Medicines:     NewMedicineHandler(service.NewMedicineService(&fakeMedicineStore{items: []model.Medicine{{ID: 1, Name: "Paracetamol"}}})),
		Reviews:       NewReviewHandler(service.NewReviewService(fakeReviewStore{})),
		SearchHistory: NewSearchHistoryHandler(historySvc),
		Chat:          NewChatHandler(service.NewChatService(nil, zap.NewNop()), m),
		DB:            fakePinger{},
		Metrics:       m,
		Logger:        zap.NewNop(),
		CORS:          config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	})

	return &testEnv{router: router, admins: admins, users: users, auth: auth, metrics: m}
}

func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(http.MethodPost, "/api/v1/admin/login", gin.H{"identifier": testUsername, "password": testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
