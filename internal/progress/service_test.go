package progress_test

import (
	"context"
	"testing"

	"github.com/studypal/engine/internal/progress"
)

// fakeCache records cache traffic so tests can assert invalidation.
type fakeCache struct {
	profiles    map[string]progress.Profile
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{profiles: make(map[string]progress.Profile)}
}

func (c *fakeCache) Get(_ context.Context, userID string) (*progress.Profile, bool) {
	p, ok := c.profiles[userID]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *fakeCache) Set(_ context.Context, p progress.Profile) {
	c.profiles[p.UserID] = p
}

func (c *fakeCache) Invalidate(_ context.Context, userID string) {
	delete(c.profiles, userID)
	c.invalidated = append(c.invalidated, userID)
}

func TestService_LogResultAndStats(t *testing.T) {
	svc := progress.NewService(progress.ServiceConfig{})
	ctx := context.Background()

	for _, correct := range []bool{true, false, true} {
		if err := svc.LogResult(ctx, "u1", "recursion", "medium", correct); err != nil {
			t.Fatalf("LogResult() error = %v", err)
		}
	}

	stats, err := svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	s := stats["recursion"]
	if s.Attempts != 3 || s.Correct != 2 {
		t.Errorf("stats = %d/%d, want 2 correct of 3", s.Correct, s.Attempts)
	}
}

func TestService_LogResultValidation(t *testing.T) {
	svc := progress.NewService(progress.ServiceConfig{})
	ctx := context.Background()

	tests := []struct {
		name                      string
		userID, topic, difficulty string
	}{
		{"missing user", "", "recursion", "easy"},
		{"missing topic", "u1", "  ", "easy"},
		{"bad difficulty", "u1", "recursion", "impossible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.LogResult(ctx, tt.userID, tt.topic, tt.difficulty, true); err == nil {
				t.Error("LogResult() expected error, got nil")
			}
		})
	}
}

func TestService_RecommendUsesCache(t *testing.T) {
	cache := newFakeCache()
	svc := progress.NewService(progress.ServiceConfig{Cache: cache})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.LogResult(ctx, "u1", "recursion", "easy", false); err != nil {
			t.Fatalf("LogResult() error = %v", err)
		}
	}

	first, err := svc.Recommend(ctx, "u1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if _, ok := cache.profiles["u1"]; !ok {
		t.Fatal("profile not cached after Recommend")
	}

	second, err := svc.Recommend(ctx, "u1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(second.NextSteps) != len(first.NextSteps) {
		t.Errorf("cached profile differs: %v vs %v", second.NextSteps, first.NextSteps)
	}

	// Logging a result must drop the stale cached profile.
	if err := svc.LogResult(ctx, "u1", "recursion", "easy", true); err != nil {
		t.Fatalf("LogResult() error = %v", err)
	}
	if _, ok := cache.profiles["u1"]; ok {
		t.Error("cached profile not invalidated after LogResult")
	}
}

func TestService_RecommendRequiresUser(t *testing.T) {
	svc := progress.NewService(progress.ServiceConfig{})
	if _, err := svc.Recommend(context.Background(), "  "); err == nil {
		t.Error("Recommend() with blank user expected error, got nil")
	}
}

func TestService_UserDashboard(t *testing.T) {
	svc := progress.NewService(progress.ServiceConfig{})
	ctx := context.Background()

	results := []struct {
		topic   string
		correct bool
	}{
		{"recursion", true},
		{"recursion", false},
		{"algebra", true},
		{"algebra", true},
	}
	for _, r := range results {
		if err := svc.LogResult(ctx, "u1", r.topic, "medium", r.correct); err != nil {
			t.Fatalf("LogResult() error = %v", err)
		}
	}

	d, err := svc.UserDashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("UserDashboard() error = %v", err)
	}
	if d.TopicsStudied != 2 || d.TotalAttempts != 4 || d.Correct != 3 {
		t.Errorf("dashboard = %+v, want 2 topics, 4 attempts, 3 correct", d)
	}
	if d.AvgAccuracy != 0.75 {
		t.Errorf("AvgAccuracy = %v, want 0.75", d.AvgAccuracy)
	}
	if len(d.PerTopic) != 2 || d.PerTopic[0].Topic != "recursion" {
		t.Errorf("PerTopic = %v, want recursion first by first-seen order", d.PerTopic)
	}
}

func TestService_LogResultPublishesToHub(t *testing.T) {
	hub := progress.NewHub()
	svc := progress.NewService(progress.ServiceConfig{Hub: hub})

	events, cancel := hub.Subscribe()
	defer cancel()

	if err := svc.LogResult(context.Background(), "u1", "recursion", "easy", true); err != nil {
		t.Fatalf("LogResult() error = %v", err)
	}

	select {
	case a := <-events:
		if a.UserID != "u1" || a.Topic != "recursion" || !a.Correct {
			t.Errorf("published attempt = %+v", a)
		}
	default:
		t.Fatal("no attempt published to subscriber")
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := progress.NewHub()
	events, cancel := hub.Subscribe()

	cancel()
	cancel() // idempotent

	if _, open := <-events; open {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic on the closed channel.
	hub.Publish(progress.Attempt{UserID: "u1"})
}

func TestMemoryStore_InsertionOrderAndIsolation(t *testing.T) {
	store := progress.NewMemoryStore()
	ctx := context.Background()

	topics := []string{"a", "b", "c"}
	for _, topic := range topics {
		if err := store.LogAttempt(ctx, progress.Attempt{UserID: "u1", Topic: topic}); err != nil {
			t.Fatalf("LogAttempt() error = %v", err)
		}
	}
	if err := store.LogAttempt(ctx, progress.Attempt{UserID: "u2", Topic: "z"}); err != nil {
		t.Fatalf("LogAttempt() error = %v", err)
	}

	got, err := store.Attempts(ctx, "u1")
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d attempts, want 3", len(got))
	}
	for i, topic := range topics {
		if got[i].Topic != topic {
			t.Errorf("attempt %d topic = %q, want %q", i, got[i].Topic, topic)
		}
		if got[i].CreatedAt.IsZero() {
			t.Errorf("attempt %d CreatedAt not stamped", i)
		}
	}

	other, err := store.Attempts(ctx, "u3")
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unknown user has %d attempts, want 0", len(other))
	}
}
