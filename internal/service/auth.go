package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/db"
	"github.com/medilink/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72

	// Compared against when the identifier matches no account so both
	// failure paths spend one bcrypt comparison.
	dummyPassword = "medilink-timing-equalizer"
)

//go:generate mockgen -destination=../mocks/admin_store.go -package=mocks github.com/medilink/backend/internal/service AdminStore

// AdminStore is the credential store consumed by AuthService.
type AdminStore interface {
	AdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	AdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	AdminByID(ctx context.Context, id int64) (*model.Admin, error)
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	UpdateAdminProfile(ctx context.Context, id int64, upd model.AdminProfileUpdate) (*model.Admin, error)
	UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error
	SetAdminStatus(ctx context.Context, id int64, status model.AdminStatus) error
}

// AuthObserver receives the outcome of every login and authorization.
type AuthObserver interface {
	ObserveLogin(outcome string)
	ObserveAuthorize(outcome string)
}

type AuthService struct {
	store     AdminStore
	jwtSecret []byte
	accessTTL time.Duration
	issuer    string
	hashCost  int
	dummyHash []byte
	now       func() time.Time
	observer  AuthObserver
	logger    *zap.Logger
}

type AuthOption func(*AuthService)

// WithClock replaces time.Now for token minting and verification.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// WithHashCost sets the bcrypt cost for newly hashed passwords.
func WithHashCost(cost int) AuthOption {
	return func(s *AuthService) { s.hashCost = cost }
}

func WithAuthObserver(o AuthObserver) AuthOption {
	return func(s *AuthService) { s.observer = o }
}

func WithAuthLogger(l *zap.Logger) AuthOption {
	return func(s *AuthService) { s.logger = l }
}

func NewAuthService(store AdminStore, cfg config.AuthConfig, opts ...AuthOption) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if cfg.JWTAccessTTL <= 0 {
		return nil, fmt.Errorf("%w: JWT_ACCESS_TTL must be positive", ErrMisconfigured)
	}

	s := &AuthService{
		store:     store,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: cfg.JWTAccessTTL,
		issuer:    cfg.JWTIssuer,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("%w: bcrypt cost %d: %v", ErrMisconfigured, s.hashCost, err)
	}
	s.dummyHash = dummy
	return s, nil
}

// EnsureAdmin creates the bootstrap account when no admin with that
// username exists yet. An existing account is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || password == "" {
		return fmt.Errorf("%w: ADMIN_USERNAME/ADMIN_PASSWORD are required", ErrMisconfigured)
	}
	if email == "" {
		email = username + "@medilink.local"
	}

	_, err := s.store.AdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	admin := &model.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Status:       model.AdminStatusActive,
	}
	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		return storeError("service.EnsureAdmin", err)
	}
	s.logger.Info("bootstrap admin created", zap.Int64("admin_id", admin.ID), zap.String("username", username))
	return nil
}

// IssueToken authenticates identifier (username or email) and password and
// mints an access token for the account.
func (s *AuthService) IssueToken(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	result, err := s.issueToken(ctx, identifier, password)
	s.observeLogin(err)
	return result, err
}

func (s *AuthService) issueToken(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	admin, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.IssueToken: %w", err)
	}

	if !admin.IsActive() {
		return nil, ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.sign(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("service.IssueToken: %w", err)
	}

	return &model.LoginResult{
		Token:     token,
		ExpiresIn: int64(s.accessTTL.Seconds()),
		ExpiresAt: expiresAt,
		Admin:     admin,
	}, nil
}

func (s *AuthService) lookup(ctx context.Context, identifier string) (*model.Admin, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, db.ErrNotFound
	}
	if strings.Contains(identifier, "@") {
		return s.store.AdminByEmail(ctx, strings.ToLower(identifier))
	}
	return s.store.AdminByUsername(ctx, identifier)
}

func (s *AuthService) sign(adminID int64) (string, time.Time, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(adminID, 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Authorize verifies rawToken and re-resolves its subject against the store.
// The returned admin is always a live, active account.
func (s *AuthService) Authorize(ctx context.Context, rawToken string) (*model.Admin, error) {
	admin, err := s.authorize(ctx, rawToken)
	s.observeAuthorize(err)
	return admin, err
}

func (s *AuthService) authorize(ctx context.Context, rawToken string) (*model.Admin, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, ErrMissingToken
	}

	adminID, err := s.verify(rawToken)
	if err != nil {
		return nil, err
	}

	admin, err := s.store.AdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("service.Authorize: %w", err)
	}

	if !admin.IsActive() {
		return nil, ErrInactiveAccount
	}
	return admin, nil
}

// verify checks signature, issuer and expiry and returns the subject id.
func (s *AuthService) verify(rawToken string) (int64, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || adminID <= 0 {
		return 0, ErrInvalidToken
	}
	return adminID, nil
}

// UpdateProfile applies req to admin, rejecting usernames or emails
// already held by another account.
func (s *AuthService) UpdateProfile(ctx context.Context, admin *model.Admin, req model.UpdateProfileRequest) (*model.Admin, error) {
	req.Username = trimPtr(req.Username)
	req.Email = lowerPtr(req.Email)
	req.Phone = trimPtr(req.Phone)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != admin.Username {
		if err := s.ensureFree(ctx, admin.ID, s.store.AdminByUsername, *req.Username, "username"); err != nil {
			return nil, err
		}
	}
	if req.Email != nil && !strings.EqualFold(*req.Email, admin.Email) {
		if err := s.ensureFree(ctx, admin.ID, s.store.AdminByEmail, *req.Email, "email"); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateAdminProfile(ctx, admin.ID, model.AdminProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, storeError("service.UpdateProfile", err)
	}
	return updated, nil
}

func (s *AuthService) ensureFree(
	ctx context.Context,
	selfID int64,
	find func(context.Context, string) (*model.Admin, error),
	value, field string,
) error {
	other, err := find(ctx, value)
	switch {
	case err == nil && other.ID != selfID:
		return fmt.Errorf("%w: %s is already taken", ErrConflict, field)
	case err == nil, errors.Is(err, db.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("service.UpdateProfile: %w", err)
	}
}

// ChangePassword replaces the password of admin after checking the current one.
// Tokens already issued stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, admin *model.Admin, req model.ChangePasswordRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.CurrentPassword == req.NewPassword {
		return invalidInput("new_password must differ from current_password")
	}

	current, err := s.store.AdminByID(ctx, admin.ID)
	if err != nil {
		return storeError("service.ChangePassword", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return invalidInput("current_password is incorrect")
	}

	hash, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdateAdminPassword(ctx, admin.ID, hash); err != nil {
		return storeError("service.ChangePassword", err)
	}
	s.logger.Info("admin password changed", zap.Int64("admin_id", admin.ID))
	return nil
}

func (s *AuthService) hash(password string) (string, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return "", invalidInput(fmt.Sprintf("password must be %d-%d characters", minPasswordLength, maxPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) observeLogin(err error) {
	if s.observer != nil {
		s.observer.ObserveLogin(Outcome(err))
	}
}

func (s *AuthService) observeAuthorize(err error) {
	if s.observer != nil {
		s.observer.ObserveAuthorize(Outcome(err))
	}
}

// Outcome labels err with its stable error kind, or "ok".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrInactiveAccount):
		return "inactive_account"
	case errors.Is(err, ErrMissingToken):
		return "missing_token"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrInvalidInput):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal_error"
	}
}
