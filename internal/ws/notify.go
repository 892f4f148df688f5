package ws

import (
	"encoding/json"
	"time"

	"career-compass/internal/domain/recommendation"

	"github.com/google/uuid"
)

const EventRecommendationReady = "recommendation_ready"

type RecommendationReadyEvent struct {
	Type             string    `json:"type"`
	RecommendationID uuid.UUID `json:"recommendationId"`
	TestResultID     uuid.UUID `json:"testResultId"`
	TopCompetencies  []string  `json:"topCompetencies"`
	CourseCount      int       `json:"courseCount"`
	JobCount         int       `json:"jobCount"`
	Timestamp        string    `json:"timestamp"`
}

// Notifier pushes recommendation events to the owning user's connections.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) RecommendationReady(userID uuid.UUID, rec recommendation.Recommendation) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RecommendationReadyEvent{
		Type:             EventRecommendationReady,
		RecommendationID: rec.ID,
		TestResultID:     rec.TestResultID,
		TopCompetencies:  rec.TopCompetencies,
		CourseCount:      len(rec.RecommendedCourses),
		JobCount:         len(rec.RecommendedJobs),
		Timestamp:        n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
