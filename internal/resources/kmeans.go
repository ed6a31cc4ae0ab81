package resources

import "math/rand"

const kmeansMaxIterations = 50

// kmeans clusters L2-normalized vectors by cosine similarity. k must already
// be clamped to len(vectors). Returns per-vector assignments and the (again
// normalized) centroids. Deterministic for a fixed seed.
func kmeans(vectors [][]float64, k int, seed int64) (assignments []int, centroids [][]float64) {
	n := len(vectors)
	assignments = make([]int, n)
	if n == 0 || k <= 0 {
		return assignments, nil
	}

	dim := len(vectors[0])
	rng := rand.New(rand.NewSource(seed))

	// Initialize centroids from k distinct members.
	perm := rng.Perm(n)
	centroids = make([][]float64, k)
	for c := 0; c < k; c++ {
		centroids[c] = append([]float64(nil), vectors[perm[c]]...)
	}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best, bestSim := 0, dot(vec, centroids[0])
			for c := 1; c < k; c++ {
				if sim := dot(vec, centroids[c]); sim > bestSim {
					best, bestSim = c, sim
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, vec := range vectors {
			c := assignments[i]
			counts[c]++
			for j, x := range vec {
				sums[c][j] += x
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Re-seed an empty cluster from a random member.
				centroids[c] = append([]float64(nil), vectors[rng.Intn(n)]...)
				continue
			}
			for j := range sums[c] {
				sums[c][j] /= float64(counts[c])
			}
			normalize(sums[c])
			centroids[c] = sums[c]
		}
	}
	return assignments, centroids
}
