package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sample is one labeled training example.
type Sample struct {
	Text  string
	Label Difficulty
}

// Model is the immutable trained artifact: vectorizer and weights versioned
// as a pair through VocabHash.
type Model struct {
	Vectorizer *Vectorizer     `json:"vectorizer"`
	Weights    logisticWeights `json:"weights"`
	VocabHash  string          `json:"vocab_hash"`
}

// Train fits a vectorizer and logistic regression on the labeled samples.
func Train(samples []Sample) (*Model, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}

	texts := make([]string, len(samples))
	y := make([]int, len(samples))
	for i, s := range samples {
		idx := classIndex(s.Label)
		if idx < 0 {
			return nil, fmt.Errorf("sample %d: unknown label %q", i, s.Label)
		}
		texts[i] = s.Text
		y[i] = idx
	}

	vec := FitVectorizer(texts, 0)
	if len(vec.Terms) == 0 {
		return nil, fmt.Errorf("training texts produced an empty vocabulary")
	}

	X := vec.Transform(texts)
	weights := trainLogistic(X, y, len(Levels))
	if weights == nil {
		return nil, fmt.Errorf("training produced no weights")
	}

	return &Model{
		Vectorizer: vec,
		Weights:    weights,
		VocabHash:  vec.Hash(),
	}, nil
}

// Classify labels each question text with a difficulty.
func (m *Model) Classify(texts []string) []Difficulty {
	labels := make([]Difficulty, len(texts))
	X := m.Vectorizer.Transform(texts)
	for i, x := range X {
		labels[i] = Levels[m.Weights.predict(x)]
	}
	return labels
}

// Evaluate returns the fraction of samples the model labels correctly.
func (m *Model) Evaluate(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	texts := make([]string, len(samples))
	for i, s := range samples {
		texts[i] = s.Text
	}
	labels := m.Classify(texts)
	correct := 0
	for i, s := range samples {
		if labels[i] == s.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples))
}

// Save writes the model artifact atomically (temp file then rename).
func (m *Model) Save(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace model: %w", err)
	}
	return nil
}

// LoadModel reads a model artifact and verifies that the stored vocabulary
// hash matches the vocabulary it was saved with. A mismatch means the
// vectorizer and weights are from different training runs and the artifact
// is unusable.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Vectorizer == nil || len(m.Weights) == 0 {
		return nil, fmt.Errorf("model artifact incomplete")
	}
	if got := m.Vectorizer.Hash(); got != m.VocabHash {
		return nil, fmt.Errorf("vocabulary hash mismatch: artifact %s, recomputed %s", m.VocabHash, got)
	}
	return &m, nil
}
