package textproc

import "strings"

// ScoredSentence pairs a sentence with its salience score. Order in the
// containing slice always matches source order; the score exists for
// caller-side top-k selection, never for reordering output.
type ScoredSentence struct {
	Text  string
	Score float64
}

// SplitSentences splits text on sentence-ending punctuation. Empty or
// whitespace-only spans are discarded. The terminator is not kept.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// ScoreSentences splits text into sentences and scores each one by the sum
// of document-level term frequencies of its content tokens. A sentence made
// of frequent document terms scores high; one of stopwords scores zero.
func ScoreSentences(text string) []ScoredSentence {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	// Document-level term frequency over content tokens.
	tf := make(map[string]float64)
	for _, s := range sentences {
		for _, t := range contentTokens(Tokenize(s)) {
			tf[t]++
		}
	}

	scored := make([]ScoredSentence, 0, len(sentences))
	for _, s := range sentences {
		var score float64
		for _, t := range contentTokens(Tokenize(s)) {
			score += tf[t]
		}
		scored = append(scored, ScoredSentence{Text: s, Score: score})
	}
	return scored
}

// WordCount reports the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
