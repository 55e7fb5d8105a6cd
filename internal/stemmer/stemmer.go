package stemmer

import (
	"strings"

	"github.com/kljensen/snowball"
	porterstemmer "github.com/reiver/go-porterstemmer"

	"textcorpus/internal/domain"
)

const (
	// Porter is the default algorithm.
	Porter = "porter"
	// Snowball is the alternate algorithm (Porter2 English).
	Snowball = "snowball"
)

// PorterStemmer stems words with the original Porter algorithm.
type PorterStemmer struct{}

// NewPorter creates a Porter stemmer.
func NewPorter() *PorterStemmer { return &PorterStemmer{} }

// Name returns the identifier of this stemmer.
func (s *PorterStemmer) Name() string { return Porter }

// Stem lowercases and stems every whitespace separated word of text.
func (s *PorterStemmer) Stem(text string) string {
	return stemWords(text, porterstemmer.StemString)
}

// SnowballStemmer stems words with the Snowball English algorithm.
type SnowballStemmer struct {
	language string
}

// NewSnowball creates an English Snowball stemmer.
func NewSnowball() *SnowballStemmer { return &SnowballStemmer{language: "english"} }

// Name returns the identifier of this stemmer.
func (s *SnowballStemmer) Name() string { return Snowball }

// Stem lowercases and stems every whitespace separated word of text.
// Words the algorithm rejects are kept as they are.
func (s *SnowballStemmer) Stem(text string) string {
	return stemWords(text, func(word string) string {
		stemmed, err := snowball.Stem(word, s.language, true)
		if err != nil {
			return word
		}
		return stemmed
	})
}

// ForName returns the stemmer registered under name. Matching ignores case;
// an empty or unknown name selects Porter.
func ForName(name string) domain.Stemmer {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Snowball:
		return NewSnowball()
	default:
		return NewPorter()
	}
}

func stemWords(text string, stem func(string) string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = stem(w)
	}
	return strings.Join(words, " ")
}
