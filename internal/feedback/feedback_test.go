package feedback_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/studypal/engine/internal/feedback"
)

func TestBucket_ExactBoundaries(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     feedback.Level
	}{
		{1.0, feedback.Excellent},
		{0.8, feedback.Excellent},
		{0.79, feedback.Good},
		{0.6, feedback.Good},
		{0.59, feedback.Okay},
		{0.4, feedback.Okay},
		{0.39999, feedback.NeedsWork},
		{0.0, feedback.NeedsWork},
	}

	for _, tt := range tests {
		if got := feedback.Bucket(tt.accuracy); got != tt.want {
			t.Errorf("Bucket(%v) = %v, want %v", tt.accuracy, got, tt.want)
		}
	}
}

func TestGenerate_MatchesBucket(t *testing.T) {
	g := feedback.NewGenerator(rand.New(rand.NewSource(1)))

	msg := g.Generate(0.9, "")
	if msg == "" {
		t.Fatal("Generate() returned empty message")
	}
	// High accuracy must never produce remedial language.
	if strings.Contains(msg, "discouraged") || strings.Contains(msg, "Keep at it") {
		t.Errorf("excellent-bucket message reads remedial: %q", msg)
	}
}

func TestGenerate_AppendsSubject(t *testing.T) {
	g := feedback.NewGenerator(rand.New(rand.NewSource(1)))

	msg := g.Generate(0.9, "algebra")
	if !strings.Contains(msg, "algebra") {
		t.Errorf("message %q does not mention the subject", msg)
	}

	plain := g.Generate(0.9, "   ")
	if strings.Contains(plain, "Great work on") {
		t.Errorf("blank subject still appended: %q", plain)
	}
}

func TestGenerate_ClampsAccuracy(t *testing.T) {
	g := feedback.NewGenerator(rand.New(rand.NewSource(1)))

	// Out-of-range values must not panic and must land in the edge
	// buckets.
	if msg := g.Generate(-0.5, ""); msg == "" {
		t.Error("Generate(-0.5) returned empty message")
	}
	if msg := g.Generate(1.5, ""); msg == "" {
		t.Error("Generate(1.5) returned empty message")
	}
}

func TestStudyTips(t *testing.T) {
	tips := feedback.StudyTips("Recursion solves problems by breaking them into smaller subproblems.", "recursion", 3)

	if len(tips) == 0 || len(tips) > 3 {
		t.Fatalf("got %d tips, want 1..3: %v", len(tips), tips)
	}
	joined := strings.Join(tips, " ")
	if !strings.Contains(joined, "recursion") {
		t.Errorf("tips never mention the subject: %v", tips)
	}
}

func TestStudyTips_EmptyTextStillGeneric(t *testing.T) {
	tips := feedback.StudyTips("", "", 3)

	if len(tips) != 1 {
		t.Fatalf("got %d tips for empty text, want the single generic one: %v", len(tips), tips)
	}
	if !strings.Contains(tips[0], "this topic") {
		t.Errorf("generic tip = %q, want default subject phrasing", tips[0])
	}
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		wantLevel feedback.SkillLevel
		wantTrend feedback.Trend
	}{
		{"no scores", nil, feedback.Beginner, feedback.Stable},
		{"advanced", []float64{0.9, 0.85, 0.95}, feedback.Advanced, feedback.Stable},
		{"intermediate", []float64{0.6, 0.7, 0.65}, feedback.Intermediate, feedback.Stable},
		{"beginner", []float64{0.2, 0.3, 0.4}, feedback.Beginner, feedback.Stable},
		{"improving", []float64{0.2, 0.2, 0.2, 0.8, 0.8, 0.8}, feedback.Beginner, feedback.Improving},
		{"declining", []float64{0.9, 0.9, 0.9, 0.3, 0.3, 0.3}, feedback.Intermediate, feedback.Declining},
		{"within dead band", []float64{0.5, 0.5, 0.5, 0.55, 0.55, 0.55}, feedback.Beginner, feedback.Stable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := feedback.Metrics(tt.scores)
			if m.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", m.Level, tt.wantLevel)
			}
			if m.Trend != tt.wantTrend {
				t.Errorf("Trend = %v, want %v", m.Trend, tt.wantTrend)
			}
			if m.TotalQuizzes != len(tt.scores) {
				t.Errorf("TotalQuizzes = %d, want %d", m.TotalQuizzes, len(tt.scores))
			}
		})
	}
}
