package service

import (
	"context"
	"strings"

	"github.com/medilink/backend/internal/model"
)

type ReviewStore interface {
	ListReviews(ctx context.Context, params model.ReviewListParams) ([]model.Review, int64, error)
	ReviewByID(ctx context.Context, id int64) (*model.Review, error)
	SetReviewStatus(ctx context.Context, id int64, status model.ReviewStatus) error
	DeleteReview(ctx context.Context, id int64) error
}

// ReviewService moderates reviews submitted through the mobile app.
type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) List(ctx context.Context, params model.ReviewListParams) (*model.ListResponse[model.Review], error) {
	params.ListParams = params.ListParams.Normalize()
	params.Search = strings.TrimSpace(params.Search)
	params.Status = strings.ToLower(strings.TrimSpace(params.Status))
	if params.Status != "" && !model.ReviewStatus(params.Status).Valid() {
		return nil, invalidInput("status must be one of: pending, approved, rejected")
	}
	reviews, total, err := s.store.ListReviews(ctx, params)
	if err != nil {
		return nil, storeError("service.ListReviews", err)
	}
	return newListResponse(reviews, params.ListParams, total), nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	r, err := s.store.ReviewByID(ctx, id)
	if err != nil {
		return nil, storeError("service.GetReview", err)
	}
	return r, nil
}

func (s *ReviewService) SetStatus(ctx context.Context, id int64, status string) (*model.Review, error) {
	st := model.ReviewStatus(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, invalidInput("status must be one of: pending, approved, rejected")
	}
	if err := s.store.SetReviewStatus(ctx, id, st); err != nil {
		return nil, storeError("service.SetReviewStatus", err)
	}
	return s.Get(ctx, id)
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteReview(ctx, id); err != nil {
		return storeError("service.DeleteReview", err)
	}
	return nil
}
