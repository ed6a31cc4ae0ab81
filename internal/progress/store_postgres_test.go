package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/studypal/engine/internal/classify"
	"github.com/studypal/engine/internal/progress"
)

// startPostgres spins up a throwaway PostgreSQL container and returns a
// connected pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("studypal_test"),
		postgres.WithUsername("studypal"),
		postgres.WithPassword("studypal"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("connect pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	ctx := context.Background()
	pool := startPostgres(t)

	store, err := progress.NewPostgresStore(ctx, pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	attempts := []progress.Attempt{
		{UserID: "u1", Topic: "recursion", Difficulty: classify.Easy, Correct: false, CreatedAt: base},
		{UserID: "u1", Topic: "recursion", Difficulty: classify.Easy, Correct: true, CreatedAt: base.Add(time.Second)},
		{UserID: "u1", Topic: "algebra", Difficulty: classify.Hard, Correct: true, CreatedAt: base.Add(2 * time.Second)},
		{UserID: "u2", Topic: "algebra", Difficulty: classify.Medium, Correct: true, CreatedAt: base.Add(3 * time.Second)},
	}
	for _, a := range attempts {
		if err := store.LogAttempt(ctx, a); err != nil {
			t.Fatalf("LogAttempt(%+v) error = %v", a, err)
		}
	}

	got, err := store.Attempts(ctx, "u1")
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d attempts for u1, want 3", len(got))
	}
	wantTopics := []string{"recursion", "recursion", "algebra"}
	for i, a := range got {
		if a.Topic != wantTopics[i] {
			t.Errorf("attempt %d topic = %q, want %q (insertion order)", i, a.Topic, wantTopics[i])
		}
	}
	if got[1].Difficulty != classify.Easy || !got[1].Correct {
		t.Errorf("attempt 1 = %+v, want correct easy attempt", got[1])
	}

	empty, err := store.Attempts(ctx, "nobody")
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown user has %d attempts, want 0", len(empty))
	}

	// Re-running the constructor against an existing schema must be a
	// no-op, not an error.
	if _, err := progress.NewPostgresStore(ctx, pool); err != nil {
		t.Fatalf("NewPostgresStore() on existing schema error = %v", err)
	}
}

func TestPostgresStore_ValidatesInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	ctx := context.Background()
	store, err := progress.NewPostgresStore(ctx, startPostgres(t))
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}

	if err := store.LogAttempt(ctx, progress.Attempt{Topic: "recursion"}); err == nil {
		t.Error("LogAttempt() without user expected error, got nil")
	}
	if err := store.LogAttempt(ctx, progress.Attempt{UserID: "u1"}); err == nil {
		t.Error("LogAttempt() without topic expected error, got nil")
	}
}
