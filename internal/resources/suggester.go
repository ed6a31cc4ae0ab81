package resources

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// DefaultClusters is the configured k when no override is given. The
// effective k is always clamped to the catalog size.
const DefaultClusters = 5

// Suggester answers free-text subject queries against the clustered catalog.
// Immutable after Build; rebuilds construct a new Suggester and the caller
// swaps the pointer.
type Suggester struct {
	vectorizer *tfidfVectorizer
	centroids  [][]float64
	catalog    []Resource
	byCluster  map[int][]int // cluster -> catalog indexes
}

// Build fits the TF-IDF vectorizer over subject+description, runs k-means
// with k clamped to the catalog size, and records per-resource cluster
// assignments. An empty catalog builds an empty (but functional) Suggester.
func Build(catalog []Resource, k int, seed int64) (*Suggester, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if k > len(catalog) {
		k = len(catalog)
	}

	s := &Suggester{
		catalog:   append([]Resource(nil), catalog...),
		byCluster: make(map[int][]int),
	}
	if len(catalog) == 0 {
		return s, nil
	}

	corpus := make([]string, len(s.catalog))
	for i, r := range s.catalog {
		corpus[i] = r.text()
	}
	s.vectorizer = fitTFIDF(corpus)

	vectors := make([][]float64, len(corpus))
	for i, doc := range corpus {
		vectors[i] = s.vectorizer.transform(doc)
	}

	assignments, centroids := kmeans(vectors, k, seed)
	s.centroids = centroids
	for i, c := range assignments {
		s.catalog[i].Cluster = c
		s.byCluster[c] = append(s.byCluster[c], i)
	}

	slog.Info("resource clusterer built", "resources", len(s.catalog), "clusters", len(centroids))
	return s, nil
}

// Suggest returns up to topN resources for a free-text subject query.
// Candidates come from the query's nearest cluster, falling back to the full
// catalog when that cluster is empty, and are ranked by cosine similarity to
// the cluster centroid. Empty or whitespace-only queries return an empty
// list without touching the model; an empty catalog yields an empty list.
func (s *Suggester) Suggest(query string, topN int) []Resource {
	if strings.TrimSpace(query) == "" || topN <= 0 {
		return nil
	}
	if len(s.catalog) == 0 || len(s.centroids) == 0 {
		return nil
	}

	qvec := s.vectorizer.transform(query)
	cluster := 0
	bestSim := dot(qvec, s.centroids[0])
	for c := 1; c < len(s.centroids); c++ {
		if sim := dot(qvec, s.centroids[c]); sim > bestSim {
			cluster, bestSim = c, sim
		}
	}

	candidates := s.byCluster[cluster]
	if len(candidates) == 0 {
		candidates = make([]int, len(s.catalog))
		for i := range s.catalog {
			candidates[i] = i
		}
	}

	center := s.centroids[cluster]
	type ranked struct {
		idx int
		sim float64
	}
	order := make([]ranked, 0, len(candidates))
	for _, i := range candidates {
		order = append(order, ranked{idx: i, sim: dot(s.vectorizer.transform(s.catalog[i].text()), center)})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].sim > order[j].sim })

	if topN > len(order) {
		topN = len(order)
	}
	out := make([]Resource, 0, topN)
	for _, r := range order[:topN] {
		out = append(out, s.catalog[r.idx])
	}
	return out
}

// Size reports the number of catalog entries the Suggester was built over.
func (s *Suggester) Size() int {
	return len(s.catalog)
}
