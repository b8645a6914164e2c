package service

import (
	"context"
	"strings"
	"time"

	"github.com/medilink/backend/internal/model"
	"go.uber.org/zap"
)

const (
	defaultTopQueries = 10
	maxTopQueries     = 50
)

type SearchHistoryStore interface {
	ListSearchHistory(ctx context.Context, params model.SearchHistoryListParams) ([]model.SearchHistory, int64, error)
	DeleteSearchHistory(ctx context.Context, id int64) error
	ClearUserSearchHistory(ctx context.Context, userID int64) (int64, error)
	PruneSearchHistory(ctx context.Context, cutoff time.Time) (int64, error)
	TopSearchQueries(ctx context.Context, limit int) ([]model.TopQuery, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type SearchHistoryService struct {
	store     SearchHistoryStore
	retention time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewSearchHistoryService(store SearchHistoryStore, retention time.Duration, logger *zap.Logger) *SearchHistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHistoryService{
		store:     store,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *SearchHistoryService) List(ctx context.Context, params model.SearchHistoryListParams) (*model.ListResponse[model.SearchHistory], error) {
	params.ListParams = params.ListParams.Normalize()
	params.Search = strings.TrimSpace(params.Search)
	params.SearchType = strings.ToLower(strings.TrimSpace(params.SearchType))
	if params.SearchType != "" && !model.SearchType(params.SearchType).Valid() {
		return nil, invalidInput("search_type must be one of: symptom, medicine, general")
	}
	entries, total, err := s.store.ListSearchHistory(ctx, params)
	if err != nil {
		return nil, storeError("service.ListSearchHistory", err)
	}
	return newListResponse(entries, params.ListParams, total), nil
}

func (s *SearchHistoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteSearchHistory(ctx, id); err != nil {
		return storeError("service.DeleteSearchHistory", err)
	}
	return nil
}

func (s *SearchHistoryService) ClearUser(ctx context.Context, userID int64) (int64, error) {
	n, err := s.store.ClearUserSearchHistory(ctx, userID)
	if err != nil {
		return 0, storeError("service.ClearUserSearchHistory", err)
	}
	return n, nil
}

func (s *SearchHistoryService) TopQueries(ctx context.Context, limit int) ([]model.TopQuery, error) {
	if limit <= 0 {
		limit = defaultTopQueries
	}
	if limit > maxTopQueries {
		limit = maxTopQueries
	}
	top, err := s.store.TopSearchQueries(ctx, limit)
	if err != nil {
		return nil, storeError("service.TopSearchQueries", err)
	}
	if top == nil {
		top = []model.TopQuery{}
	}
	return top, nil
}

// Prune drops entries older than the retention window. A zero retention
// keeps everything.
func (s *SearchHistoryService) Prune(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.retention)
	n, err := s.store.PruneSearchHistory(ctx, cutoff)
	if err != nil {
		return 0, storeError("service.PruneSearchHistory", err)
	}
	s.logger.Info("search history pruned", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	return n, nil
}

func (s *SearchHistoryService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.store.DashboardStats(ctx)
	if err != nil {
		return nil, storeError("service.DashboardStats", err)
	}
	return stats, nil
}
