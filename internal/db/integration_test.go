package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/model"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Integration tests run against a disposable postgres:16-alpine container:
//
//	GO_TEST_INTEGRATION=1 go test ./internal/db -v -count=1
func startPostgres(t *testing.T) *Postgres {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.PostgresConfig{
		DatabaseURL: fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port()),
	}

	var store *Postgres
	// The port can accept connections before postgres finishes its init restart.
	require.Eventually(t, func() bool {
		pool, err := NewPostgresPool(ctx, cfg)
		if err != nil {
			return false
		}
		store = New(pool)
		return true
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(store.Close)

	require.NoError(t, store.EnsureSchema(ctx))
	// Idempotent on restart.
	require.NoError(t, store.EnsureSchema(ctx))
	return store
}

func TestIntegration_Admins(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	admin := &model.Admin{Username: "admin", Email: "Admin@MediLink.io", PasswordHash: "hash"}
	require.NoError(t, store.CreateAdmin(ctx, admin))
	require.NotZero(t, admin.ID)
	require.Equal(t, model.AdminStatusActive, admin.Status)

	byName, err := store.AdminByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, admin.ID, byName.ID)

	byEmail, err := store.AdminByEmail(ctx, "admin@medilink.io")
	require.NoError(t, err)
	require.Equal(t, admin.ID, byEmail.ID)

	_, err = store.AdminByUsername(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)

	dup := &model.Admin{Username: "other", Email: "ADMIN@medilink.io", PasswordHash: "hash"}
	require.ErrorIs(t, store.CreateAdmin(ctx, dup), ErrConflict)

	phone := "+62 811"
	updated, err := store.UpdateAdminProfile(ctx, admin.ID, model.AdminProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Username)
	require.Equal(t, phone, *updated.Phone)

	empty := ""
	updated, err = store.UpdateAdminProfile(ctx, admin.ID, model.AdminProfileUpdate{Phone: &empty})
	require.NoError(t, err)
	require.Nil(t, updated.Phone)

	require.NoError(t, store.UpdateAdminPassword(ctx, admin.ID, "hash2"))
	require.NoError(t, store.SetAdminStatus(ctx, admin.ID, model.AdminStatusInactive))
	got, err := store.AdminByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "hash2", got.PasswordHash)
	require.False(t, got.IsActive())

	require.ErrorIs(t, store.SetAdminStatus(ctx, 9999, model.AdminStatusActive), ErrNotFound)
}

func TestIntegration_ResourcesAndHistory(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		u := &model.User{
			Name:         fmt.Sprintf("user %02d", i),
			Email:        fmt.Sprintf("u%02d@example.com", i),
			PasswordHash: "hash",
		}
		require.NoError(t, store.CreateUser(ctx, u))
	}
	users, total, err := store.ListUsers(ctx, model.ListParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
	require.Len(t, users, 5)

	users, total, err = store.ListUsers(ctx, model.ListParams{Page: 1, Limit: 10, Search: "u03@"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	user := users[0]

	med, err := store.CreateMedicine(ctx, model.MedicineRequest{Name: "Paracetamol", Category: "Analgesic", Price: 12.5})
	require.NoError(t, err)
	require.InDelta(t, 12.5, med.Price, 0.001)

	meds, total, err := store.ListMedicines(ctx, model.MedicineListParams{
		ListParams: model.ListParams{Page: 1, Limit: 10},
		Category:   "analgesic",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, med.ID, meds[0].ID)

	_, err = store.Pool.Exec(ctx,
		`INSERT INTO reviews (user_id, medicine_id, rating, comment) VALUES ($1, $2, 4, 'works')`,
		user.ID, med.ID)
	require.NoError(t, err)

	reviews, total, err := store.ListReviews(ctx, model.ReviewListParams{
		ListParams: model.ListParams{Page: 1, Limit: 10},
		Status:     string(model.ReviewStatusPending),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Paracetamol", reviews[0].MedicineName)
	require.NoError(t, store.SetReviewStatus(ctx, reviews[0].ID, model.ReviewStatusApproved))

	require.NoError(t, store.RecordSearch(ctx, &user.ID, "Fever", model.SearchTypeSymptom))
	require.NoError(t, store.RecordSearch(ctx, &user.ID, "fever", model.SearchTypeSymptom))
	require.NoError(t, store.RecordSearch(ctx, nil, "paracetamol", model.SearchTypeMedicine))

	top, err := store.TopSearchQueries(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, model.TopQuery{Query: "fever", Count: 2}, top[0])

	stats, err := store.DashboardStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 12, stats.Users)
	require.EqualValues(t, 1, stats.Medicines)
	require.EqualValues(t, 0, stats.PendingReviews)
	require.EqualValues(t, 3, stats.SearchesToday)

	cleared, err := store.ClearUserSearchHistory(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, cleared)

	pruned, err := store.PruneSearchHistory(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, pruned)

	require.NoError(t, store.DeleteMedicine(ctx, med.ID))
	_, err = store.ReviewByID(ctx, reviews[0].ID)
	require.ErrorIs(t, err, ErrNotFound)
}
