package classify_test

import (
	"testing"

	"github.com/studypal/engine/internal/classify"
)

func TestFitVectorizer_FrequencyCap(t *testing.T) {
	texts := []string{
		"alpha beta alpha",
		"alpha gamma beta",
	}

	v := classify.FitVectorizer(texts, 2)

	if len(v.Terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(v.Terms))
	}
	if v.Terms[0] != "alpha" || v.Terms[1] != "beta" {
		t.Errorf("Terms = %v, want [alpha beta]", v.Terms)
	}
}

func TestVectorizer_Transform(t *testing.T) {
	v := classify.FitVectorizer([]string{"alpha beta"}, 0)

	vecs := v.Transform([]string{"alpha alpha unknown", ""})

	if len(vecs) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vecs))
	}
	if vecs[0][0] != 2 || vecs[0][1] != 0 {
		t.Errorf("vecs[0] = %v, want [2 0]", vecs[0])
	}
	for _, x := range vecs[1] {
		if x != 0 {
			t.Errorf("empty text vector = %v, want all zero", vecs[1])
			break
		}
	}
}

func TestVectorizer_HashTracksVocabulary(t *testing.T) {
	a := classify.FitVectorizer([]string{"alpha beta gamma"}, 0)
	b := classify.FitVectorizer([]string{"alpha beta gamma"}, 0)
	c := classify.FitVectorizer([]string{"alpha beta delta"}, 0)

	if a.Hash() != b.Hash() {
		t.Error("identical vocabularies produce different hashes")
	}
	if a.Hash() == c.Hash() {
		t.Error("different vocabularies produce the same hash")
	}
}
