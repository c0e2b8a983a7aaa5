package auth

import (
	"time"

	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/domain/user"
)

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         user.Role
	Phone        string
	Location     *geo.Location
	CompanyName  string
	BusinessType string
}

type RegisteredDTO struct {
	UserID string    `json:"uid"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
}

type SessionDTO struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *user.User `json:"user"`
}
