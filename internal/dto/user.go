package dto

import (
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterUserRequest defines the payload for creating a new account.
// Name and FirstName are immutable once set.
type RegisterUserRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=75"`
	Password  string `json:"password" binding:"required,min=8,max=75"`
}

// SetActiveRequest defines the payload for the admin active-flag update.
// A pointer differentiates an omitted field from an explicit false.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		FirstName: user.FirstName,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

// UserWithBalanceResponse is a user row in the admin listing, carrying the
// balance computed by the ledger aggregator at request time.
type UserWithBalanceResponse struct {
	UserResponse
	Balance decimal.Decimal `json:"balance"`
}

// ListUsersResponse wraps the admin user listing.
type ListUsersResponse struct {
	Users []UserWithBalanceResponse `json:"users"`
}
