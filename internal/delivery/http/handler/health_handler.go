package handler

import (
	"context"
	"time"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the state of the database and cache.
// A down cache does not fail the check because reads bypass it.
type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{"database": "ok", "cache": "ok"}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		data["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		data["cache"] = "unavailable"
	}

	return response.Success(c, status, "", data)
}
