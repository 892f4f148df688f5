package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"career-compass/internal/domain/recommendation"
	"career-compass/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func testClient(hub *Hub, userID uuid.UUID) *Client {
	return &Client{hub: hub, userID: userID, send: make(chan []byte, 4)}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("no message received")
	}
	return nil
}

func TestHub_DeliversOnlyToTargetUser(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	alice, bob := uuid.New(), uuid.New()
	a1, a2, b := testClient(hub, alice), testClient(hub, alice), testClient(hub, bob)
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 3 })

	hub.SendToUser(alice, []byte("hello"))

	if got := string(receive(t, a1)); got != "hello" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := string(receive(t, a2)); got != "hello" {
		t.Fatalf("unexpected message %q", got)
	}
	select {
	case msg := <-b.send:
		t.Fatalf("bob must not receive alice's message, got %q", msg)
	case <-time.After(50 * time.Millisecond):
	}

	hub.Unregister(a1)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })
	if _, ok := <-a1.send; ok {
		t.Fatalf("expected send channel to be closed on unregister")
	}
}

func TestHub_RegisterAndUnregisterReturnAfterStop(t *testing.T) {
	hub := NewHub(nil)

	queued := make([]*Client, 0, cap(hub.register))
	for i := 0; i < cap(hub.register); i++ {
		c := testClient(hub, uuid.New())
		hub.Register(c)
		queued = append(queued, c)
	}

	late := testClient(hub, uuid.New())
	lateDone := make(chan struct{})
	go func() {
		hub.Register(late)
		close(lateDone)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	for name, ch := range map[string]chan struct{}{"run": stopped, "register on full queue": lateDone} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s did not return after stop", name)
		}
	}

	after := testClient(hub, uuid.New())
	finished := make(chan struct{})
	go func() {
		hub.Register(after)
		hub.Unregister(after)
		hub.Unregister(late)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("register/unregister blocked on a stopped hub")
	}

	for _, c := range append(queued, late, after) {
		if _, ok := <-c.send; ok {
			t.Fatalf("expected send channel closed for user %s", c.userID)
		}
	}
	if n := hub.ClientCount(); n != 0 {
		t.Fatalf("expected no clients after stop, got %d", n)
	}
}

func TestNotifier_RecommendationReady(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	userID := uuid.New()
	c := testClient(hub, userID)
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	n := NewNotifier(hub)
	n.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	rec := recommendation.Recommendation{
		ID:                 uuid.New(),
		TestResultID:       uuid.New(),
		TopCompetencies:    []string{"analytical", "verbal", "creative"},
		RecommendedCourses: []recommendation.CourseMatch{{CourseID: uuid.New()}},
	}
	n.RecommendationReady(userID, rec)

	var evt RecommendationReadyEvent
	if err := json.Unmarshal(receive(t, c), &evt); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if evt.Type != EventRecommendationReady || evt.RecommendationID != rec.ID || evt.CourseCount != 1 || evt.JobCount != 0 {
		t.Fatalf("unexpected event %+v", evt)
	}
	if evt.Timestamp != "2026-03-01T10:00:00Z" {
		t.Fatalf("unexpected timestamp %q", evt.Timestamp)
	}
}

func TestHandler_RejectsMissingOrRefreshToken(t *testing.T) {
	svc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	h := NewHandler(NewHub(nil), svc, nil)

	app := fiber.New()
	app.Get("/ws/recommendations", h.HandleRecommendationsWS)

	refresh, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, target := range []string{"/ws/recommendations", "/ws/recommendations?token=" + refresh, "/ws/recommendations?token=garbage"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, resp.StatusCode)
		}
	}
}
