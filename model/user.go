package model

import (
	"database/sql"
	"time"
)

// UserEntity represents the users table entity.
type UserEntity struct {
	ID           uint64         `db:"id" json:"id"`
	Firstname    string         `db:"firstname" json:"firstname"`
	Lastname     string         `db:"lastname" json:"lastname"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password" json:"-"`
	Token        sql.NullString `db:"token" json:"-"`
	Role         string         `db:"role" json:"role"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterRequest creates a users row plus its role-specific detail row.
// Field presence is checked in declaration order so the first missing field
// is the one reported, hence no validate tags here.
type RegisterRequest struct {
	Firstname     string  `json:"firstname"`
	Lastname      string  `json:"lastname"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Sex           *string `json:"sex,omitempty"`
}

type RegisterResponse struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
}
