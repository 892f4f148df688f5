package config

import (
	"errors"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-compass")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Recommendation.CourseSimilarityWeight != 0.85 || cfg.Recommendation.CourseBoostWeight != 0.15 {
		t.Fatalf("unexpected course weights: %+v", cfg.Recommendation)
	}
	if cfg.Recommendation.JobSimilarityWeight != 0.9 || cfg.Recommendation.JobBoostWeight != 0.1 {
		t.Fatalf("unexpected job weights: %+v", cfg.Recommendation)
	}
	if cfg.Recommendation.TopK != 30 {
		t.Fatalf("expected top k 30, got %d", cfg.Recommendation.TopK)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access ttl %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("expected ssl mode default disable, got %q", cfg.Database.DBSSLMode)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("RECO_COURSE_SIMILARITY_WEIGHT", "0.7")
	t.Setenv("RECO_TOP_K", "10")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "900")
	t.Setenv("REDIS_TTL", "2m")
	t.Setenv("DB_RUN_MIGRATIONS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Recommendation.CourseSimilarityWeight != 0.7 || cfg.Recommendation.TopK != 10 {
		t.Fatalf("overrides not applied: %+v", cfg.Recommendation)
	}
	if cfg.JWT.AccessExpiresIn != 900*time.Second {
		t.Fatalf("expected seconds parsing, got %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Redis.TTL != 2*time.Minute {
		t.Fatalf("expected duration parsing, got %s", cfg.Redis.TTL)
	}
	if !cfg.Database.RunMigrations {
		t.Fatalf("expected RunMigrations=true")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	setRequired(t)
	t.Setenv("RECO_JOB_BOOST_WEIGHT", "heavy")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid env error, got %v", err)
	}
}
