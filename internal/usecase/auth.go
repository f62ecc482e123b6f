package usecase

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/readmodel"
)

type UserReader interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.UserView, error)
}

type LoginResult struct {
	Token string
	User  *readmodel.UserView
}

type AuthUsecase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authInteractor struct {
	users      UserReader
	jwtService *jwt.Service
}

func NewAuthUsecase(users UserReader, jwtService *jwt.Service) AuthUsecase {
	return &authInteractor{users: users, jwtService: jwtService}
}

// Login never reveals whether the email or the password was wrong.
func (u *authInteractor) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if !password.Verify(view.PasswordHash, plainPassword) {
		return nil, errs.Mark(errs.New("password mismatch"), errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := u.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: view}, nil
}
