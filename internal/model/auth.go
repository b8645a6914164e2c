package model

import "time"

type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusInactive AdminStatus = "inactive"
)

func (s AdminStatus) Valid() bool {
	return s == AdminStatusActive || s == AdminStatusInactive
}

// Admin is a row of the admins table. PasswordHash never leaves the backend.
type Admin struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	Phone        *string     `json:"phone,omitempty"`
	PasswordHash string      `json:"-"`
	Status       AdminStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (a *Admin) IsActive() bool {
	return a != nil && a.Status == AdminStatusActive
}

// AdminProfileUpdate carries the normalized fields of a profile change.
// Nil fields are left untouched.
type AdminProfileUpdate struct {
	Username *string
	Email    *string
	Phone    *string
}

// LoginRequest accepts either identifier, username or email as the login name.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r LoginRequest) LoginName() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     *Admin    `json:"admin"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitnil,min=3,max=50,username"`
	Email    *string `json:"email" validate:"omitnil,min=1,email,max=255"`
	Phone    *string `json:"phone" validate:"omitnil,max=32"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}
