package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth            *handler.AuthHandler
	Users           *handler.UserHandler
	Tests           *handler.TestHandler
	Recommendations *handler.RecommendationHandler
	Onboarding      *handler.OnboardingHandler
}

func Register(r fiber.Router, h Handlers, authMw fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r.Group("", authMw)

	RegisterUsers(protected.Group("/users"), h.Users)
	RegisterTests(protected.Group("/tests"), h.Tests)
	RegisterRecommendations(protected.Group("/recommendations"), h.Recommendations)
	RegisterOnboarding(protected.Group("/onboarding"), h.Onboarding)
}
