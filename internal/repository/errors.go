package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrTestNotFound           = errors.New("test not found")
	ErrTestTitleTaken         = errors.New("test title already exists")
	ErrTestResultNotFound     = errors.New("test result not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

func marshalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}

func unmarshalJSON(b []byte, out any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return nil
}
