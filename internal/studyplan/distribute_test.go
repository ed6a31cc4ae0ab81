package studyplan

import (
	"fmt"
	"testing"
)

func TestDistributeTopics_EveryTopicScheduledOnce(t *testing.T) {
	tests := []struct {
		topics, days int
	}{
		{5, 5},
		{6, 6},
		{4, 3},
		{10, 7},
		{13, 7},
		{3, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d topics over %d days", tt.topics, tt.days), func(t *testing.T) {
			topics := make([]string, tt.topics)
			for i := range topics {
				topics[i] = fmt.Sprintf("topic-%d", i)
			}

			days := distributeTopics(topics, tt.days)
			if len(days) != tt.days {
				t.Fatalf("got %d days, want %d", len(days), tt.days)
			}

			var flat []string
			for _, day := range days {
				flat = append(flat, day...)
			}
			if len(flat) != tt.topics {
				t.Fatalf("scheduled %d topics, want %d", len(flat), tt.topics)
			}
			for i, topic := range flat {
				if topic != topics[i] {
					t.Errorf("flat[%d] = %q, want %q (order preserved, nothing dropped)", i, topic, topics[i])
				}
			}
		})
	}
}
