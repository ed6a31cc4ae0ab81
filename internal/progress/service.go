package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/studypal/engine/internal/classify"
)

// ServiceConfig holds dependencies for the progress service.
type ServiceConfig struct {
	Store Store
	// Cache is optional; without one every Recommend recomputes.
	Cache ProfileCache
	// Hub is optional; with one, logged attempts are broadcast to live
	// subscribers.
	Hub *Hub
}

// Service is the progress store plus the learning-path recommender behind
// one API: log results, replay stats, derive recommendations.
type Service struct {
	store Store
	cache ProfileCache
	hub   *Hub
}

// NewService creates a progress service. A nil store falls back to the
// in-memory implementation.
func NewService(cfg ServiceConfig) *Service {
	store := cfg.Store
	if store == nil {
		store = NewMemoryStore()
	}
	return &Service{store: store, cache: cfg.Cache, hub: cfg.Hub}
}

// LogResult validates and appends one quiz result, invalidates the user's
// cached profile, and broadcasts the attempt.
func (s *Service) LogResult(ctx context.Context, userID, topic, difficulty string, correct bool) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("topic is required")
	}
	d, err := classify.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	a := Attempt{
		UserID:     userID,
		Topic:      topic,
		Difficulty: d,
		Correct:    correct,
	}
	if err := s.store.LogAttempt(ctx, a); err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	if s.hub != nil {
		s.hub.Publish(a)
	}

	slog.Debug("quiz result logged", "user_id", userID, "topic", topic, "difficulty", difficulty, "correct", correct)
	return nil
}

// Stats replays the user's history into per-topic aggregates.
func (s *Service) Stats(ctx context.Context, userID string) (map[string]TopicStat, error) {
	attempts, err := s.store.Attempts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	return ComputeStats(attempts), nil
}

// Recommend derives the user's learning-path profile, serving a cached copy
// when one is fresh.
func (s *Service) Recommend(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("user_id is required")
	}

	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, userID); ok {
			return *p, nil
		}
	}

	attempts, err := s.store.Attempts(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("load attempts: %w", err)
	}
	profile := BuildProfile(userID, attempts)

	if s.cache != nil {
		s.cache.Set(ctx, profile)
	}
	return profile, nil
}

// Dashboard summarizes a user's overall activity.
type Dashboard struct {
	UserID        string      `json:"user_id"`
	TopicsStudied int         `json:"topics_studied"`
	TotalAttempts int         `json:"total_attempts"`
	Correct       int         `json:"correct_answers"`
	AvgAccuracy   float64     `json:"avg_accuracy"`
	PerTopic      []TopicStat `json:"per_topic"`
}

// UserDashboard aggregates totals across all of a user's topics.
func (s *Service) UserDashboard(ctx context.Context, userID string) (Dashboard, error) {
	attempts, err := s.store.Attempts(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load attempts: %w", err)
	}

	stats := orderedStats(ComputeStats(attempts))
	d := Dashboard{
		UserID:        userID,
		TopicsStudied: len(stats),
		PerTopic:      stats,
	}
	for _, st := range stats {
		d.TotalAttempts += st.Attempts
		d.Correct += st.Correct
	}
	if d.TotalAttempts > 0 {
		d.AvgAccuracy = float64(d.Correct) / float64(d.TotalAttempts)
	}
	return d, nil
}
