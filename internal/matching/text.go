package matching

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMinTokenLength drops one-character noise tokens during extraction.
const DefaultMinTokenLength = 2

// defaultStopWords are common English words that carry no skill signal.
var defaultStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "can": {}, "not": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "it": {}, "its": {},
	"we": {}, "our": {}, "they": {}, "their": {}, "you": {}, "your": {},
	"i": {}, "my": {}, "he": {}, "she": {}, "his": {}, "her": {},
}

// Matcher extracts keyword tokens from free text and scores them against an
// agent's declared skills through a keyword Index.
type Matcher struct {
	minTokenLength int
	stopWords      map[string]struct{}
}

// NewMatcher builds a Matcher with the given minimum token length and extra
// stop words on top of the default set. A zero minTokenLength means the
// default.
func NewMatcher(minTokenLength int, extraStopWords []string) *Matcher {
	if minTokenLength <= 0 {
		minTokenLength = DefaultMinTokenLength
	}
	stop := make(map[string]struct{}, len(defaultStopWords)+len(extraStopWords))
	for w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range extraStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Matcher{minTokenLength: minTokenLength, stopWords: stop}
}

// ExtractKeywords lowercases text, splits on non-alphanumeric boundaries and
// drops short tokens and stop words. Same text always yields the same set.
func (m *Matcher) ExtractKeywords(text string) map[string]struct{} {
	tokens := Tokenize(text)
	for token := range tokens {
		if len(token) < m.minTokenLength {
			delete(tokens, token)
			continue
		}
		if _, stop := m.stopWords[token]; stop {
			delete(tokens, token)
		}
	}
	return tokens
}

// SkillMatchScore scores how well ticket text matches the agent's skills,
// in [0,1]. Each skill contributes its keyword overlap fraction weighted by
// proficiency/10; the sum saturates at 1 so many strong matches cannot
// outgrow the other scoring factors.
func (m *Matcher) SkillMatchScore(text string, skills map[string]int, idx *Index) float64 {
	tokens := m.ExtractKeywords(text)
	if len(tokens) == 0 || len(skills) == 0 {
		return 0
	}

	// Accumulate in sorted skill order: float addition is not associative,
	// so map iteration order would make identical calls disagree in the
	// last bits of the sum.
	names := make([]string, 0, len(skills))
	for skill := range skills {
		names = append(names, skill)
	}
	sort.Strings(names)

	total := 0.0
	for _, skill := range names {
		level := skills[skill]
		keywords := idx.KeywordsFor(skill)
		if len(keywords) == 0 {
			continue
		}
		hits := 0
		for kw := range keywords {
			if _, ok := tokens[kw]; ok {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		overlap := float64(hits) / float64(len(keywords))
		total += overlap * clampProficiency(level)
	}

	if total > 1 {
		return 1
	}
	return total
}

// Tokenize splits text into a lowercase token set on non-alphanumeric
// boundaries. It applies no length or stop-word filtering.
func Tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// clampProficiency normalizes a 1-10 proficiency level into [0,1].
func clampProficiency(level int) float64 {
	if level <= 0 {
		return 0
	}
	if level >= 10 {
		return 1
	}
	return float64(level) / 10
}
