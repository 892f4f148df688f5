package dto

import (
	"time"

	"career-compass/internal/domain/user"
	ucuser "career-compass/internal/usecase/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       user.Role `json:"role"`
	TestsTaken int       `json:"testsTaken"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewUserProfileResponse(p ucuser.Profile) UserProfileResponse {
	return UserProfileResponse{
		ID:         p.User.ID,
		Name:       p.User.Name,
		Email:      p.User.Email,
		Role:       p.User.Role,
		TestsTaken: p.TestsTaken,
		CreatedAt:  p.User.CreatedAt,
	}
}
