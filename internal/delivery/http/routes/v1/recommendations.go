package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterRecommendations(r fiber.Router, recHandler *handler.RecommendationHandler) {
	if r == nil {
		return
	}
	if recHandler == nil {
		return
	}

	recHandler.RegisterRoutes(r)
}

func RegisterOnboarding(r fiber.Router, onboardingHandler *handler.OnboardingHandler) {
	if r == nil {
		return
	}
	if onboardingHandler == nil {
		return
	}

	onboardingHandler.RegisterRoutes(r)
}
