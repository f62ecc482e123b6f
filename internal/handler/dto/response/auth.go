package response

import (
	"github.com/google/uuid"

	"salon-booking/internal/usecase"
)

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromLoginResult(result *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		User: UserResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
	}
}
