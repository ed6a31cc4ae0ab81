// Package classify trains and serves the question difficulty classifier: a
// bag-of-words vectorizer feeding a small multinomial logistic regression.
// The trained pair is persisted as a single JSON artifact carrying a
// vocabulary hash, so a model can never be served against a vectorizer it
// was not trained with.
package classify

import (
	"fmt"
	"strings"
)

// Difficulty labels a question's difficulty. Three levels are used
// consistently across the classifier and the learning-path recommender.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Levels lists all difficulty levels in ascending order. The classifier's
// class index is the position in this slice.
var Levels = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty validates a difficulty string from an external caller.
// Matching ignores case.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q (want easy|medium|hard)", s)
}

func classIndex(d Difficulty) int {
	for i, l := range Levels {
		if l == d {
			return i
		}
	}
	return -1
}
