package textproc

import "sort"

// ExtractKeywords returns up to topN keywords from text, ranked by descending
// frequency with ties broken by first occurrence. Keywords are lowercase,
// alphabetic, longer than two runes, not stopwords, and never duplicated.
// It never fails: text with no surviving tokens yields an empty list.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	tokens := contentTokens(Tokenize(text))
	if len(tokens) == 0 {
		return nil
	}

	type entry struct {
		token string
		count int
	}

	counts := make(map[string]*entry, len(tokens))
	order := make([]*entry, 0, len(tokens))
	for _, t := range tokens {
		if e, ok := counts[t]; ok {
			e.count++
			continue
		}
		e := &entry{token: t, count: 1}
		counts[t] = e
		order = append(order, e)
	}

	// order is built first-seen-first, so a stable sort keeps the
	// first-occurrence tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if topN > len(order) {
		topN = len(order)
	}
	keywords := make([]string, 0, topN)
	for _, e := range order[:topN] {
		keywords = append(keywords, e.token)
	}
	return keywords
}

// SentenceKeywords is the sentence-scoped extraction the MCQ generator uses
// to pick an answer span and its distractors. Identical ranking rules to
// ExtractKeywords.
func SentenceKeywords(sentence string, topN int) []string {
	return ExtractKeywords(sentence, topN)
}
