package model

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is an end user of the mobile app.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	Age          *int       `json:"age,omitempty"`
	Gender       string     `json:"gender"`
	Status       UserStatus `json:"status"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *string `json:"phone" validate:"omitnil,max=32"`
	Age      *int    `json:"age" validate:"omitnil,gte=0,lte=150"`
	Gender   string  `json:"gender" validate:"gender"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitnil,min=1,max=100"`
	Email  *string `json:"email" validate:"omitnil,min=1,email,max=255"`
	Phone  *string `json:"phone" validate:"omitnil,max=32"`
	Age    *int    `json:"age" validate:"omitnil,gte=0,lte=150"`
	Gender *string `json:"gender" validate:"omitnil,gender"`
}

// UpdateStatusRequest is shared by the user and review status endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
