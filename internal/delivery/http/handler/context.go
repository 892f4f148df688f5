package handler

import (
	"strings"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/user"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func actorFromCtx(c fiber.Ctx) (usecase.Actor, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return usecase.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := c.Locals(middleware.CtxRoleKey).(user.Role)
	return usecase.Actor{UserID: userID, Role: role}, nil
}

func uuidParam(c fiber.Ctx, name, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+what+" id", nil, err)
	}
	return id, nil
}
