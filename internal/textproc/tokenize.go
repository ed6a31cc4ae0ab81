// Package textproc implements the text-analysis primitives the quiz engine
// is built on: tokenization, keyword extraction, sentence splitting, sentence
// salience scoring, and extractive summarization.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so "café" and "cafe" count as the same
// token. NFKD decomposes, the runes filter drops combining marks, NFC
// recomposes what is left.
var foldTransformer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases text and strips diacritic marks.
func Normalize(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// Tokenize splits text into lowercased alphabetic tokens. Runs of letters
// form tokens; digits, punctuation, and symbols are separators. If boundary
// scanning produces nothing the naive whitespace fallback is tried with the
// same filtering, so callers always get a usable (possibly empty) list.
func Tokenize(text string) []string {
	normalized := Normalize(text)

	var tokens []string
	var b strings.Builder
	for _, r := range normalized {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}

	if len(tokens) == 0 {
		tokens = fallbackTokenize(normalized)
	}
	return tokens
}

// fallbackTokenize is the whitespace-split fallback. It keeps only fields
// that are purely alphabetic after trimming surrounding punctuation.
func fallbackTokenize(normalized string) []string {
	var tokens []string
	for _, f := range strings.Fields(normalized) {
		f = strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) })
		if f == "" {
			continue
		}
		alpha := true
		for _, r := range f {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if alpha {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// contentTokens filters tokens down to the ones keyword ranking considers:
// longer than two runes and not stopwords.
func contentTokens(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if len([]rune(t)) <= 2 {
			continue
		}
		if IsStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
