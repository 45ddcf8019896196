package strsim

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/poiesic/strsim/core"
)

const trimmedPunctuation = ".,!?;:'\"-()[]{}"

// Tokenize splits text on whitespace, lowercases each word and trims
// surrounding punctuation. Words that are only punctuation are dropped.
// The result is never nil, so empty text yields an empty document.
func Tokenize(text string) []string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, trimmedPunctuation))
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// Stemmer reduces tokens to their Snowball stems. It holds no state and is
// safe for concurrent use.
type Stemmer struct {
	language string
}

// NewStemmer returns a stemmer for a Snowball language such as "english"
// or "russian".
func NewStemmer(language string) (*Stemmer, error) {
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, fmt.Errorf("%w: stemmer language %q: %w", core.ErrInvalidValue, language, err)
	}
	return &Stemmer{language: language}, nil
}

// Stem returns a new slice holding the stem of each token. A token the
// stemmer rejects is kept as is.
func (s *Stemmer) Stem(tokens []string) []string {
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stem, err := snowball.Stem(tok, s.language, true)
		if err != nil || stem == "" {
			stem = tok
		}
		stemmed[i] = stem
	}
	return stemmed
}
