// Package segment splits raw text into sentences, word tokens and
// stopword-delimited candidate phrases, the input units for keyword scoring.
package segment

import (
	"strings"
	"unicode"

	"github.com/cognicore/kwex/pkg/kwex/stopwords"
)

// Token is a single word with its case-folded form and original surface form.
// Norm is the token's identity; Surface is kept for output.
type Token struct {
	Norm    string
	Surface string
}

// Phrase is an ordered run of content-word tokens occurring contiguously
// between stopword or sentence boundaries.
type Phrase []Token

// Norm returns the phrase identity: normalized words joined by spaces.
func (p Phrase) Norm() string {
	parts := make([]string, len(p))
	for i, tok := range p {
		parts[i] = tok.Norm
	}
	return strings.Join(parts, " ")
}

// Surface returns the phrase as it appeared in the source text.
func (p Phrase) Surface() string {
	parts := make([]string, len(p))
	for i, tok := range p {
		parts[i] = tok.Surface
	}
	return strings.Join(parts, " ")
}

// Segmenter is the capability contract for text segmentation. Implementations
// must split text into sentences and chunk sentences into candidate phrases;
// internal composition is an implementation detail.
type Segmenter interface {
	Sentences(text string) []string
	Phrases(text string) []Phrase
}

// RuleSegmenter is the default Segmenter, built on simple punctuation rules
// and a stopword set.
type RuleSegmenter struct {
	stops *stopwords.Set
}

// NewRuleSegmenter creates a segmenter using the given stopword set as
// phrase delimiters.
func NewRuleSegmenter(stops *stopwords.Set) *RuleSegmenter {
	return &RuleSegmenter{stops: stops}
}

// Sentences splits text at '.', '!' or '?' followed by whitespace, an
// uppercase letter, or end of input. Abbreviation handling is out of scope.
func (s *RuleSegmenter) Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) && !unicode.IsUpper(runes[i+1]) {
			continue
		}
		if sent := strings.TrimSpace(current.String()); sent != "" {
			sentences = append(sentences, sent)
		}
		current.Reset()
	}

	if sent := strings.TrimSpace(current.String()); sent != "" {
		sentences = append(sentences, sent)
	}

	return sentences
}

// Phrases produces the candidate phrases of a document. Within each sentence,
// consecutive non-stopwords accumulate into the current chunk; a stopword or
// the sentence boundary closes it. No phrase ever contains a stopword.
// An empty or whitespace-only document yields nil.
func (s *RuleSegmenter) Phrases(text string) []Phrase {
	var phrases []Phrase

	for _, sentence := range s.Sentences(text) {
		var current Phrase
		for _, tok := range Words(sentence) {
			if s.stops.Contains(tok.Norm) {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, tok)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}

	return phrases
}

// Words tokenizes text into word tokens without stopword chunking. A word is
// a maximal run of letters, digits and hyphens; pure punctuation is dropped
// and the normalized form is case-folded.
func Words(text string) []Token {
	var tokens []Token
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if tok, ok := makeToken(current.String()); ok {
			tokens = append(tokens, tok)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// makeToken strips leading/trailing hyphens and case-folds the norm.
func makeToken(raw string) (Token, bool) {
	raw = strings.Trim(raw, "-")
	if raw == "" {
		return Token{}, false
	}
	return Token{Norm: strings.ToLower(raw), Surface: raw}, true
}
