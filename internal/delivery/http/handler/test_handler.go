package handler

import (
	"errors"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TestHandler struct {
	uc  usecase.TestAuthoringUsecase
	sub usecase.SubmissionUsecase
}

func NewTestHandler(uc usecase.TestAuthoringUsecase, sub usecase.SubmissionUsecase) *TestHandler {
	return &TestHandler{uc: uc, sub: sub}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *TestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	authors := middleware.RequireRoles(user.RoleAdmin, user.RoleCollege)

	r.Get("/", h.List)
	r.Get("/random", h.Random)
	r.Get("/:id", h.Get)
	r.Get("/:id/take", h.Take)
	r.Get("/:id/analytics", authors, h.Analytics)
	r.Post("/", authors, h.Create)
	r.Put("/:id", authors, h.Update)
	r.Delete("/:id", authors, h.Delete)
	r.Post("/:id/submit", h.Submit)
}

func (h *TestHandler) List(c fiber.Ctx) error {
	params := usecase.ListTestsParams{
		Category:   assessment.TestCategory(strings.TrimSpace(c.Query("category"))),
		ActiveOnly: strings.EqualFold(strings.TrimSpace(c.Query("active")), "true"),
	}

	items, err := h.uc.ListTests(c.Context(), params)
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTestSummaries(items))
}

func (h *TestHandler) Random(c fiber.Ctx) error {
	t, err := h.uc.RandomTest(c.Context())
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

// Get returns the full definition, answers included, to authors only.
func (h *TestHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if actor.Role == user.RoleAdmin || actor.Role == user.RoleCollege {
		t, err := h.uc.GetTest(c.Context(), id)
		if err != nil {
			return mapTestUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, t)
	}

	t, err := h.uc.TakeTest(c.Context(), id)
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

func (h *TestHandler) Take(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}

	t, err := h.uc.TakeTest(c.Context(), id)
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

func (h *TestHandler) Analytics(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}

	a, err := h.uc.TestAnalytics(c.Context(), id)
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTestAnalyticsResponse(a))
}

func (h *TestHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateTestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	t, err := h.uc.CreateTest(c.Context(), actor, usecase.CreateTestInput{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Duration:           req.Duration,
		RandomizeQuestions: req.RandomizeQuestions,
		IsActive:           req.IsActive,
		Questions:          dto.ToQuestions(req.Questions),
	})
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Created(c, t)
}

func (h *TestHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	t, err := h.uc.UpdateTest(c.Context(), actor, id, usecase.UpdateTestInput{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Duration:           req.Duration,
		RandomizeQuestions: req.RandomizeQuestions,
		IsActive:           req.IsActive,
		Questions:          dto.ToQuestions(req.Questions),
	})
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

func (h *TestHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTest(c.Context(), actor, id); err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageDeleted, nil)
}

func (h *TestHandler) Submit(c fiber.Ctx) error {
	id, err := uuidParam(c, "id", "test")
	if err != nil {
		return err
	}
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.SubmitTestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	sub, err := req.ToSubmission()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid question id", nil, err)
	}

	out, err := h.sub.Submit(c.Context(), actor.UserID, id, sub)
	if err != nil {
		return mapTestUsecaseError(err)
	}
	return response.Created(c, dto.NewSubmitTestResponse(out))
}

func mapTestUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *assessment.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrTestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, usecase.ErrTestNotFound.Error(), nil, err)
	case errors.Is(err, usecase.ErrNoActiveTests):
		return middleware.NewAppError(fiber.StatusNotFound, usecase.ErrNoActiveTests.Error(), nil, err)
	case errors.Is(err, usecase.ErrTestTitleConflict):
		return middleware.NewAppError(fiber.StatusConflict, usecase.ErrTestTitleConflict.Error(), nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
