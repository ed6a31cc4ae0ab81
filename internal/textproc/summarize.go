package textproc

import "strings"

// SummaryStats describes how much a summary compressed its source.
type SummaryStats struct {
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"` // percent of original retained
}

// Summarize produces an extractive summary: the first maxSentences sentences
// of the text. Text already at or under the limit is returned unchanged.
func Summarize(text string, maxSentences int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if maxSentences <= 0 {
		maxSentences = 2
	}

	sentences := SplitSentences(text)
	if len(sentences) <= maxSentences {
		return text
	}
	return strings.Join(sentences[:maxSentences], ". ") + "."
}

// SummaryStatsFor computes length statistics for a summary of original.
func SummaryStatsFor(original, summary string) SummaryStats {
	stats := SummaryStats{
		OriginalLength: len(original),
		SummaryLength:  len(summary),
	}
	if stats.OriginalLength > 0 {
		stats.CompressionRatio = float64(stats.SummaryLength) / float64(stats.OriginalLength) * 100
	}
	return stats
}
