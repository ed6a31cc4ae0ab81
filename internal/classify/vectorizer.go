package classify

import (
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/studypal/engine/internal/textproc"
)

const defaultMaxFeatures = 200

// Vectorizer maps question text to bag-of-words count vectors over a fixed
// vocabulary learned at fit time.
type Vectorizer struct {
	// Terms holds the vocabulary in feature-index order.
	Terms []string `json:"terms"`

	index map[string]int
}

// FitVectorizer learns a vocabulary from the training texts: the
// maxFeatures most frequent tokens, ties broken by first occurrence.
// maxFeatures <= 0 selects the default cap.
func FitVectorizer(texts []string, maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}

	type entry struct {
		token string
		count int
	}
	counts := make(map[string]*entry)
	var order []*entry
	for _, text := range texts {
		for _, t := range textproc.Tokenize(text) {
			if e, ok := counts[t]; ok {
				e.count++
				continue
			}
			e := &entry{token: t, count: 1}
			counts[t] = e
			order = append(order, e)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if maxFeatures > len(order) {
		maxFeatures = len(order)
	}

	terms := make([]string, 0, maxFeatures)
	for _, e := range order[:maxFeatures] {
		terms = append(terms, e.token)
	}

	v := &Vectorizer{Terms: terms}
	v.buildIndex()
	return v
}

func (v *Vectorizer) buildIndex() {
	v.index = make(map[string]int, len(v.Terms))
	for i, t := range v.Terms {
		v.index[t] = i
	}
}

// Transform converts texts to count vectors. Tokens outside the vocabulary
// are ignored.
func (v *Vectorizer) Transform(texts []string) [][]float64 {
	if v.index == nil {
		v.buildIndex()
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		vec := make([]float64, len(v.Terms))
		for _, t := range textproc.Tokenize(text) {
			if j, ok := v.index[t]; ok {
				vec[j]++
			}
		}
		out[i] = vec
	}
	return out
}

// Hash returns a BLAKE2b digest of the vocabulary. Stored alongside the
// trained weights so a model is never applied through a mismatched
// vectorizer.
func (v *Vectorizer) Hash() string {
	h, _ := blake2b.New256(nil)
	for _, t := range v.Terms {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
