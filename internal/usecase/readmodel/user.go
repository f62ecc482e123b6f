package readmodel

import (
	"github.com/google/uuid"
)

type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}
