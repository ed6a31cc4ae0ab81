// Package quiz turns raw study text into multiple-choice questions: salient
// sentences become stems with the top local keyword blanked out, and the
// remaining keywords become distractors.
package quiz

import (
	"crypto/rand"
	"fmt"

	"github.com/studypal/engine/internal/classify"
)

// BlankMarker replaces the answer span in a question stem.
const BlankMarker = "_____"

// Question is one generated multiple-choice question. Options always holds
// exactly four pairwise-distinct entries and Options[CorrectIndex] is the
// answer span that was blanked out of the stem.
type Question struct {
	ID             string              `json:"id"`
	Stem           string              `json:"question"`
	Options        []string            `json:"options"`
	CorrectIndex   int                 `json:"correct_index"`
	Topic          string              `json:"topic"`
	Difficulty     classify.Difficulty `json:"difficulty"`
	SourceSentence string              `json:"source_sentence"`
}

func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
