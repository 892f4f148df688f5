package routes

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	v1     v1.Handlers
	authMw *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, handlers v1.Handlers, authMw *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, ws: wsHandler, v1: handlers, authMw: authMw}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

// registerWS authenticates inside the handler because browsers cannot send an
// Authorization header on the upgrade request.
func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws/recommendations", r.ws.HandleRecommendationsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1, r.authMw)
}
