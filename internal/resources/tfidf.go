package resources

import (
	"math"
	"sort"

	"github.com/studypal/engine/internal/textproc"
)

// tfidfVectorizer turns resource text into L2-normalized TF-IDF vectors.
// Fitted once at build time; queries reuse the fitted vocabulary and IDF
// weights.
type tfidfVectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
}

func fitTFIDF(corpus []string) *tfidfVectorizer {
	df := make(map[string]int)
	var order []string
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, t := range textproc.Tokenize(doc) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			if df[t] == 0 {
				order = append(order, t)
			}
			df[t]++
		}
	}
	sort.Strings(order)

	v := &tfidfVectorizer{
		terms: order,
		index: make(map[string]int, len(order)),
		idf:   make([]float64, len(order)),
	}
	n := float64(len(corpus))
	for i, t := range order {
		v.index[t] = i
		// Smoothed IDF keeps terms in every document from zeroing out.
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

func (v *tfidfVectorizer) transform(doc string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, t := range textproc.Tokenize(doc) {
		if i, ok := v.index[t]; ok {
			vec[i]++
		}
	}
	for i := range vec {
		vec[i] *= v.idf[i]
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// dot is cosine similarity for L2-normalized vectors.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
