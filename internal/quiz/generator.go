package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/studypal/engine/internal/classify"
	"github.com/studypal/engine/internal/textproc"
)

const (
	// DefaultTopic labels questions when the caller supplies no subject.
	DefaultTopic = "general"

	minUsableSentences = 3
	minSentenceWords   = 5
	localKeywordCount  = 4
	optionCount        = 4
)

// Classifier annotates generated question stems with a difficulty.
// *classify.Service satisfies it.
type Classifier interface {
	Classify(texts []string) []classify.Difficulty
}

// GeneratorConfig holds the MCQ generator dependencies.
type GeneratorConfig struct {
	// Classifier is optional; without one every question is labeled easy.
	Classifier Classifier
	// Rand drives the option shuffle, the only randomized step. Inject a
	// seeded source in tests to assert exact option order.
	Rand *rand.Rand
}

// Generator produces fill-in-the-blank questions from raw text.
type Generator struct {
	classifier Classifier
	rng        *rand.Rand
}

// NewGenerator creates an MCQ generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{classifier: cfg.Classifier, rng: rng}
}

// Generate builds up to maxQuestions questions from text. Fewer questions
// than requested is a normal outcome for short or keyword-poor text, not an
// error; callers must not assume len(result) == maxQuestions. Empty text or
// a non-positive maxQuestions is a hard input error.
func (g *Generator) Generate(text, topic string, maxQuestions int) ([]Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text is empty")
	}
	if maxQuestions <= 0 {
		return nil, fmt.Errorf("max questions must be positive, got %d", maxQuestions)
	}
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}

	scored := textproc.ScoreSentences(text)
	candidates := make([]textproc.ScoredSentence, 0, len(scored))
	for _, s := range scored {
		if textproc.WordCount(s.Text) >= minSentenceWords {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) < minUsableSentences {
		return []Question{}, nil
	}

	// Highest salience first; stable so equal scores keep source order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	questions := make([]Question, 0, maxQuestions)
	for _, cand := range candidates {
		if len(questions) >= maxQuestions {
			break
		}
		if q, ok := g.buildQuestion(cand.Text, topic); ok {
			questions = append(questions, q)
		}
	}

	g.annotateDifficulty(questions)
	return questions, nil
}

// buildQuestion turns one sentence into a question, or reports that the
// sentence is unusable (no keywords, answer not locatable, or fewer than
// three distractors).
func (g *Generator) buildQuestion(sentence, topic string) (Question, bool) {
	keywords := textproc.SentenceKeywords(sentence, localKeywordCount)
	if len(keywords) == 0 {
		return Question{}, false
	}

	answer := keywords[0]
	stem, ok := blankAnswer(sentence, answer)
	if !ok {
		return Question{}, false
	}

	distractors := make([]string, 0, optionCount-1)
	for _, k := range keywords[1:] {
		if !strings.EqualFold(k, answer) {
			distractors = append(distractors, k)
		}
	}
	if len(distractors) < optionCount-1 {
		return Question{}, false
	}

	options := append(distractors[:optionCount-1:optionCount-1], answer)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := -1
	for i, o := range options {
		if strings.EqualFold(o, answer) {
			correct = i
			break
		}
	}
	if correct < 0 {
		return Question{}, false
	}

	return Question{
		ID:             generateID(),
		Stem:           stem,
		Options:        options,
		CorrectIndex:   correct,
		Topic:          topic,
		SourceSentence: sentence,
	}, true
}

// blankAnswer replaces the first case-insensitive occurrence of answer in
// the sentence with the blank marker. The scan fold-matches windows of the
// original sentence directly; lowering a copy first would shift byte offsets
// when case mapping changes rune length. A miss (normalization moved the
// token away from its surface form) makes the sentence unusable.
func blankAnswer(sentence, answer string) (string, bool) {
	if answer == "" {
		return "", false
	}
	for i := range sentence {
		end := i + len(answer)
		if end > len(sentence) {
			break
		}
		if strings.EqualFold(sentence[i:end], answer) {
			return sentence[:i] + BlankMarker + sentence[end:], true
		}
	}
	return "", false
}

func (g *Generator) annotateDifficulty(questions []Question) {
	if len(questions) == 0 {
		return
	}
	if g.classifier == nil {
		for i := range questions {
			questions[i].Difficulty = classify.Easy
		}
		return
	}
	stems := make([]string, len(questions))
	for i, q := range questions {
		stems[i] = q.Stem
	}
	labels := g.classifier.Classify(stems)
	for i := range questions {
		questions[i].Difficulty = labels[i]
	}
}
