package classify

import "math"

const (
	trainEpochs       = 300
	trainLearningRate = 0.1
)

// logisticWeights holds one weight row per class; the last column is the
// bias term. Training is full-batch gradient descent with a fixed epoch
// count, which keeps it deterministic.
type logisticWeights [][]float64

func trainLogistic(X [][]float64, y []int, numClasses int) logisticWeights {
	if len(X) == 0 {
		return nil
	}
	numFeatures := len(X[0])

	w := make(logisticWeights, numClasses)
	for c := range w {
		w[c] = make([]float64, numFeatures+1)
	}

	n := float64(len(X))
	for epoch := 0; epoch < trainEpochs; epoch++ {
		grad := make([][]float64, numClasses)
		for c := range grad {
			grad[c] = make([]float64, numFeatures+1)
		}

		for i, x := range X {
			probs := w.softmax(x)
			for c := 0; c < numClasses; c++ {
				target := 0.0
				if y[i] == c {
					target = 1.0
				}
				diff := probs[c] - target
				for j, xj := range x {
					grad[c][j] += diff * xj
				}
				grad[c][numFeatures] += diff // bias
			}
		}

		for c := 0; c < numClasses; c++ {
			for j := range w[c] {
				w[c][j] -= trainLearningRate * grad[c][j] / n
			}
		}
	}
	return w
}

// softmax returns class probabilities for one feature vector.
func (w logisticWeights) softmax(x []float64) []float64 {
	scores := make([]float64, len(w))
	maxScore := math.Inf(-1)
	for c, row := range w {
		s := row[len(row)-1] // bias
		for j, xj := range x {
			s += row[j] * xj
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for c, s := range scores {
		scores[c] = math.Exp(s - maxScore)
		sum += scores[c]
	}
	for c := range scores {
		scores[c] /= sum
	}
	return scores
}

// predict returns the most probable class index for x.
func (w logisticWeights) predict(x []float64) int {
	probs := w.softmax(x)
	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}
	return best
}
