//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/readmodel"
)

type fakeUsers struct {
	users map[string]*readmodel.UserView
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*readmodel.UserView, error) {
	v, ok := f.users[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound)
	}
	return v, nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	userID := uuid.New()
	users := &fakeUsers{users: map[string]*readmodel.UserView{
		"admin@example.com": {ID: userID, Email: "admin@example.com", PasswordHash: hash, Role: "admin"},
	}}
	u := usecase.NewAuthUsecase(users, jwtService)

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		result, err := u.Login(ctx, "admin@example.com", "correct-horse")
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := u.Login(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		_, err := u.Login(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
