package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/for-result", h.GenerateForResult)
	r.Post("/for-user", h.GenerateForUser)
	r.Get("/my", h.ListMine)
	r.Get("/analytics/top-courses", middleware.RequireRoles(user.RoleAdmin), h.TopCourses)
	r.Get("/:id", h.Get)
	r.Delete("/:id", h.Delete)
}

func (h *RecommendationHandler) GenerateForResult(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.GenerateForResultRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	resultID, err := uuid.Parse(strings.TrimSpace(req.TestResultID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid test result id", nil, err)
	}

	rec, err := h.uc.GenerateForResult(c.Context(), actor, resultID)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Created(c, rec)
}

func (h *RecommendationHandler) GenerateForUser(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.GenerateForUser(c.Context(), actor.UserID)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Created(c, rec)
}

func (h *RecommendationHandler) ListMine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMine(c.Context(), actor.UserID)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RecommendationHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "recommendation")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.GetByID(c.Context(), actor, id)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

func (h *RecommendationHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "recommendation")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageDeleted, nil)
}

func (h *RecommendationHandler) TopCourses(c fiber.Ctx) error {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	stats, err := h.uc.TopRecommendedCourses(c.Context(), limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrTestResultNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, usecase.ErrTestResultNotFound.Error(), nil, err)
	case errors.Is(err, usecase.ErrRecommendationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, usecase.ErrRecommendationNotFound.Error(), nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
