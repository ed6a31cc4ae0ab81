package feedback

import (
	"fmt"
	"strings"

	"github.com/studypal/engine/internal/textproc"
)

const defaultMaxTips = 3

// StudyTips derives short study suggestions from the text's top keywords.
// Always returns at least one generic tip for non-empty input.
func StudyTips(text, subject string, maxTips int) []string {
	if maxTips <= 0 {
		maxTips = defaultMaxTips
	}
	if strings.TrimSpace(subject) == "" {
		subject = "this topic"
	}

	keywords := textproc.ExtractKeywords(text, 5)

	var tips []string
	if len(keywords) > 0 {
		tips = append(tips, fmt.Sprintf(
			"Review the core concept of %q and try to explain it in your own words.", keywords[0]))
	}
	tips = append(tips, fmt.Sprintf(
		"Practice a few problems on %s and check which steps you find hardest.", subject))
	if len(keywords) > 0 {
		n := len(keywords)
		if n > 3 {
			n = 3
		}
		tips = append(tips, fmt.Sprintf(
			"Create flashcards for key terms like: %s.", strings.Join(keywords[:n], ", ")))
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
