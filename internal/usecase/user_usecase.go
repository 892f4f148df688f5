package usecase

import (
	"context"

	"career-compass/internal/domain/user"
	"career-compass/internal/repository"
	ucuser "career-compass/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository, results repository.TestResultRepository) *User {
	return &User{svc: ucuser.NewService(users, results)}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	return u.svc.GetProfile(ctx, userID)
}
