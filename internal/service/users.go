package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/medilink/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../mocks/user_store.go -package=mocks github.com/medilink/backend/internal/service UserStore

type UserStore interface {
	ListUsers(ctx context.Context, params model.ListParams) ([]model.User, int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	SetUserStatus(ctx context.Context, id int64, status model.UserStatus) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserService manages mobile-app accounts on behalf of an admin.
type UserService struct {
	store    UserStore
	hashCost int
}

func NewUserService(store UserStore, hashCost int) *UserService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &UserService{store: store, hashCost: hashCost}
}

func (s *UserService) List(ctx context.Context, params model.ListParams) (*model.ListResponse[model.User], error) {
	params = params.Normalize()
	params.Search = strings.TrimSpace(params.Search)
	users, total, err := s.store.ListUsers(ctx, params)
	if err != nil {
		return nil, storeError("service.ListUsers", err)
	}
	return newListResponse(users, params, total), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, storeError("service.GetUser", err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.Phone = trimPtr(req.Phone)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	// bcrypt limits input by bytes; the validator counts characters.
	if len(req.Password) > maxPasswordLength {
		return nil, invalidInput(fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}
	if req.Phone != nil && *req.Phone == "" {
		req.Phone = nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("service.CreateUser: %w", err)
	}
	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Gender:       req.Gender,
		Status:       model.UserStatusActive,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, storeError("service.CreateUser", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	req.Name = trimPtr(req.Name)
	req.Email = lowerPtr(req.Email)
	req.Phone = trimPtr(req.Phone)
	req.Gender = lowerPtr(req.Gender)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.store.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, storeError("service.UpdateUser", err)
	}
	return user, nil
}

func (s *UserService) SetStatus(ctx context.Context, id int64, status string) error {
	st := model.UserStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != model.UserStatusActive && st != model.UserStatusInactive {
		return invalidInput("status must be one of: active, inactive")
	}
	if err := s.store.SetUserStatus(ctx, id, st); err != nil {
		return storeError("service.SetUserStatus", err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return storeError("service.DeleteUser", err)
	}
	return nil
}

func newListResponse[T any](items []T, params model.ListParams, total int64) *model.ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &model.ListResponse[T]{
		Data:       items,
		Pagination: model.NewPagination(params, total),
	}
}
