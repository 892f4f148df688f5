package routes

import (
	"career-compass/internal/delivery/http/middleware"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, handlers v1.Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	v1.Register(r, handlers, authMw.Middleware())
}
