package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrTestNotFound           = errors.New("Test not found")
	ErrTestTitleConflict      = errors.New("A test with this title already exists")
	ErrNoActiveTests          = errors.New("No active tests available")
	ErrTestResultNotFound     = errors.New("Test result not found")
	ErrRecommendationNotFound = errors.New("Recommendation not found")
)
