package classify

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
)

const datasetTrainRatio = 0.8

// ServiceConfig holds the classifier service dependencies.
type ServiceConfig struct {
	// ArtifactPath is where the trained model is persisted. Empty disables
	// persistence (train in memory every start).
	ArtifactPath string
	// DatasetPath optionally points at a CSV/XLSX labeled dataset. When
	// empty or unreadable the embedded seed set is used.
	DatasetPath string
	// Seed drives the dataset shuffle before the train/test split.
	Seed int64
}

// Service owns the difficulty model. The model pointer is swapped whole
// under the mutex on retrain; requests in flight keep reading the model they
// started with.
type Service struct {
	cfg ServiceConfig

	mu    sync.RWMutex
	model *Model
}

// NewService creates an untrained classifier service. Call EnsureTrained
// before serving traffic.
func NewService(cfg ServiceConfig) *Service {
	return &Service{cfg: cfg}
}

// EnsureTrained makes the service ready: load the persisted artifact if one
// exists and is intact, otherwise retrain synchronously. A training failure
// is not fatal (the service degrades to labeling everything easy) but it
// is reported so the operator can decide to abort startup.
func (s *Service) EnsureTrained(ctx context.Context) error {
	if s.cfg.ArtifactPath != "" {
		if m, err := LoadModel(s.cfg.ArtifactPath); err == nil {
			s.swap(m)
			slog.Info("difficulty model loaded", "path", s.cfg.ArtifactPath, "vocab", len(m.Vectorizer.Terms))
			return nil
		} else {
			slog.Warn("difficulty model artifact unusable, retraining", "path", s.cfg.ArtifactPath, "error", err)
		}
	}
	return s.Retrain(ctx)
}

// Retrain trains a fresh model from the dataset (or seed set), persists it,
// and swaps it in. The previous model keeps serving until the swap.
func (s *Service) Retrain(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	samples, fromDataset := s.trainingSamples()

	var train, test []Sample
	if fromDataset && len(samples) >= 10 {
		rng := rand.New(rand.NewSource(s.cfg.Seed))
		shuffled := append([]Sample(nil), samples...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		train, test = Split(shuffled, datasetTrainRatio)
	} else {
		train = samples
	}

	m, err := Train(train)
	if err != nil {
		slog.Error("difficulty training failed, keeping current model", "error", err)
		return fmt.Errorf("train difficulty model: %w", err)
	}

	if len(test) > 0 {
		slog.Info("difficulty model trained",
			"train_samples", len(train),
			"test_samples", len(test),
			"test_accuracy", m.Evaluate(test),
		)
	} else {
		slog.Info("difficulty model trained", "train_samples", len(train))
	}

	if s.cfg.ArtifactPath != "" {
		if err := m.Save(s.cfg.ArtifactPath); err != nil {
			slog.Warn("could not persist difficulty model", "path", s.cfg.ArtifactPath, "error", err)
		}
	}

	s.swap(m)
	return nil
}

func (s *Service) trainingSamples() (samples []Sample, fromDataset bool) {
	if s.cfg.DatasetPath != "" {
		loaded, err := LoadDataset(s.cfg.DatasetPath)
		if err != nil {
			slog.Warn("dataset unreadable, using seed set", "path", s.cfg.DatasetPath, "error", err)
		} else if len(loaded) > 0 {
			return loaded, true
		}
	}
	return SeedSamples(), false
}

// Classify labels question texts with difficulties. With no usable model it
// degrades to the constant easy label; difficulty is an enrichment, never a
// blocking dependency.
func (s *Service) Classify(texts []string) []Difficulty {
	s.mu.RLock()
	m := s.model
	s.mu.RUnlock()

	if m == nil {
		labels := make([]Difficulty, len(texts))
		for i := range labels {
			labels[i] = Easy
		}
		return labels
	}
	return m.Classify(texts)
}

// Ready reports whether a trained model is loaded.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model != nil
}

func (s *Service) swap(m *Model) {
	s.mu.Lock()
	s.model = m
	s.mu.Unlock()
}
