// Package progress accumulates per-user quiz attempt history and derives
// weak/strong topic buckets and next-step recommendations from it. The
// attempt log is append-only; everything else is recomputed from it on
// demand.
package progress

import (
	"sort"
	"time"

	"github.com/studypal/engine/internal/classify"
)

// Attempt is one logged quiz answer. Events are never updated or deleted.
type Attempt struct {
	UserID     string              `json:"user_id"`
	Topic      string              `json:"topic"`
	Difficulty classify.Difficulty `json:"difficulty"`
	Correct    bool                `json:"correct"`
	CreatedAt  time.Time           `json:"created_at"`
}

// TopicStat aggregates a user's attempts for one topic. Accuracy is zero
// when there are no attempts. FirstSeen is the topic's position in the
// user's history, used for stable recommendation ordering.
type TopicStat struct {
	Topic         string                      `json:"topic"`
	Attempts      int                         `json:"attempts"`
	Correct       int                         `json:"correct"`
	Accuracy      float64                     `json:"accuracy"`
	PerDifficulty map[classify.Difficulty]int `json:"per_difficulty"`
	FirstSeen     int                         `json:"-"`
}

// ComputeStats replays an attempt log into per-topic aggregates. Pure
// function of its input: identical logs always produce identical stats.
func ComputeStats(attempts []Attempt) map[string]TopicStat {
	stats := make(map[string]TopicStat)
	for _, a := range attempts {
		topic := a.Topic
		if topic == "" {
			topic = "general"
		}
		s, ok := stats[topic]
		if !ok {
			s = TopicStat{
				Topic:         topic,
				PerDifficulty: make(map[classify.Difficulty]int),
				FirstSeen:     len(stats),
			}
		}
		s.Attempts++
		if a.Correct {
			s.Correct++
		}
		s.PerDifficulty[a.Difficulty]++
		stats[topic] = s
	}
	for topic, s := range stats {
		s.Accuracy = float64(s.Correct) / float64(s.Attempts)
		stats[topic] = s
	}
	return stats
}

// orderedStats returns stats sorted by first-seen order.
func orderedStats(stats map[string]TopicStat) []TopicStat {
	out := make([]TopicStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstSeen < out[j].FirstSeen })
	return out
}
