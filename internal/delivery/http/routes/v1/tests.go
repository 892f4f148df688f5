package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterTests(r fiber.Router, testHandler *handler.TestHandler) {
	if r == nil {
		return
	}
	if testHandler == nil {
		return
	}

	testHandler.RegisterRoutes(r)
}
