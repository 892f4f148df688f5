package usecase

import (
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller a usecase acts on behalf of.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

func (a Actor) canManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.UserID != uuid.Nil && a.UserID == ownerID)
}
