package user

import (
	"context"
	"errors"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrInternal = errors.New("internal error")
)

// Profile is the signed-in user plus how far they are through onboarding.
type Profile struct {
	User       user.User
	TestsTaken int
}

type resultCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	users   user.Repository
	results resultCounter
}

func NewService(users user.Repository, results resultCounter) *Service {
	return &Service{users: users, results: results}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}
	usr.PasswordHash = ""

	p := Profile{User: usr}
	if s.results != nil {
		n, err := s.results.CountByUser(ctx, userID)
		if err != nil {
			return Profile{}, ErrInternal
		}
		p.TestsTaken = n
	}
	return p, nil
}
