package service

import (
	"context"
	"testing"
	"time"

	"github.com/medilink/backend/internal/db"
	"github.com/medilink/backend/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeMedicineStore struct {
	MedicineStore
	created model.MedicineRequest
	listed  model.MedicineListParams
}

func (f *fakeMedicineStore) CreateMedicine(_ context.Context, req model.MedicineRequest) (*model.Medicine, error) {
	f.created = req
	return &model.Medicine{ID: 1, Name: req.Name, Price: req.Price}, nil
}

func (f *fakeMedicineStore) ListMedicines(_ context.Context, params model.MedicineListParams) ([]model.Medicine, int64, error) {
	f.listed = params
	return []model.Medicine{{ID: 1}}, 1, nil
}

func TestMedicineCreate(t *testing.T) {
	store := &fakeMedicineStore{}
	svc := NewMedicineService(store)

	m, err := svc.Create(context.Background(), model.MedicineRequest{Name: " Paracetamol ", Category: " Analgesic ", Price: 12.5})
	require.NoError(t, err)
	require.Equal(t, "Paracetamol", m.Name)
	require.Equal(t, "Analgesic", store.created.Category)

	_, err = svc.Create(context.Background(), model.MedicineRequest{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), model.MedicineRequest{Name: "X", Price: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMedicineList(t *testing.T) {
	store := &fakeMedicineStore{}
	svc := NewMedicineService(store)

	res, err := svc.List(context.Background(), model.MedicineListParams{Category: " vitamin "})
	require.NoError(t, err)
	require.Equal(t, "vitamin", store.listed.Category)
	require.Equal(t, 1, store.listed.Page)
	require.Equal(t, model.DefaultPageLimit, store.listed.Limit)
	require.EqualValues(t, 1, res.Pagination.TotalPages)
}

type fakeReviewStore struct {
	ReviewStore
	statuses map[int64]model.ReviewStatus
}

func (f *fakeReviewStore) SetReviewStatus(_ context.Context, id int64, status model.ReviewStatus) error {
	if _, ok := f.statuses[id]; !ok {
		return db.ErrNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeReviewStore) ReviewByID(_ context.Context, id int64) (*model.Review, error) {
	st, ok := f.statuses[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &model.Review{ID: id, Status: st}, nil
}

func TestReviewSetStatus(t *testing.T) {
	store := &fakeReviewStore{statuses: map[int64]model.ReviewStatus{1: model.ReviewStatusPending}}
	svc := NewReviewService(store)

	r, err := svc.SetStatus(context.Background(), 1, "APPROVED")
	require.NoError(t, err)
	require.Equal(t, model.ReviewStatusApproved, r.Status)

	_, err = svc.SetStatus(context.Background(), 1, "hidden")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetStatus(context.Background(), 2, "rejected")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReviewList_RejectsUnknownStatus(t *testing.T) {
	svc := NewReviewService(&fakeReviewStore{})
	_, err := svc.List(context.Background(), model.ReviewListParams{Status: "spam"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

type fakeHistoryStore struct {
	SearchHistoryStore
	cutoff   time.Time
	topLimit int
}

func (f *fakeHistoryStore) PruneSearchHistory(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return 4, nil
}

func (f *fakeHistoryStore) TopSearchQueries(_ context.Context, limit int) ([]model.TopQuery, error) {
	f.topLimit = limit
	return nil, nil
}

func TestSearchHistoryPrune(t *testing.T) {
	store := &fakeHistoryStore{}
	svc := NewSearchHistoryService(store, 90*24*time.Hour, nil)
	svc.now = func() time.Time { return testStart }

	n, err := svc.Prune(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
	require.True(t, store.cutoff.Equal(testStart.Add(-90*24*time.Hour)))

	disabled := NewSearchHistoryService(&fakeHistoryStore{}, 0, nil)
	n, err = disabled.Prune(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSearchHistoryTopQueriesClampsLimit(t *testing.T) {
	store := &fakeHistoryStore{}
	svc := NewSearchHistoryService(store, 0, nil)

	top, err := svc.TopQueries(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, top)
	require.Equal(t, defaultTopQueries, store.topLimit)

	_, err = svc.TopQueries(context.Background(), 1000)
	require.NoError(t, err)
	require.Equal(t, maxTopQueries, store.topLimit)
}

func TestSearchHistoryList_RejectsUnknownType(t *testing.T) {
	svc := NewSearchHistoryService(&fakeHistoryStore{}, 0, nil)
	_, err := svc.List(context.Background(), model.SearchHistoryListParams{SearchType: "voice"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
