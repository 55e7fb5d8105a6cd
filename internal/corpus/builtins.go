package corpus

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"textcorpus/internal/domain"
	"textcorpus/internal/stemmer"
	"textcorpus/internal/stopwords"
	"textcorpus/internal/textclean"
)

var (
	interpunctuationRe = regexp.MustCompile(`[!?.,;-]`)
	newlineRe          = regexp.MustCompile(`\r\n|\r|\n`)
	digitRe            = regexp.MustCompile(`\d`)
)

const replacementChar = "\uFFFD"

func (c *Corpus) applyString(fn func(string) string) *Corpus {
	return c.Apply(func(text string, _ domain.Attributes, _ int) string {
		return fn(text)
	})
}

// Clean collapses whitespace runs to single spaces and trims every document.
func (c *Corpus) Clean() *Corpus { return c.applyString(textclean.Clean) }

// Trim removes leading and trailing whitespace from every document.
func (c *Corpus) Trim() *Corpus { return c.applyString(textclean.Trim) }

// ToLower lower-cases every document.
func (c *Corpus) ToLower() *Corpus { return c.applyString(textclean.Lower) }

// ToUpper upper-cases every document.
func (c *Corpus) ToUpper() *Corpus { return c.applyString(textclean.Upper) }

// NormalizeUnicode applies NFKC normalization to every document.
func (c *Corpus) NormalizeUnicode() *Corpus { return c.applyString(textclean.NFKC) }

// Stem replaces every document with its stemmed words using the named
// algorithm ("porter" or "snowball"); other names fall back to porter.
func (c *Corpus) Stem(algorithm string) *Corpus {
	return c.StemWith(stemmer.ForName(algorithm))
}

// StemWith stems every document with s.
func (c *Corpus) StemWith(s domain.Stemmer) *Corpus { return c.applyString(s.Stem) }

// RemoveInterpunctuation replaces each of ! ? . , ; - with a space.
func (c *Corpus) RemoveInterpunctuation() *Corpus {
	return c.applyString(func(s string) string {
		return interpunctuationRe.ReplaceAllString(s, " ")
	})
}

// RemoveNewlines replaces each \r\n, \r or \n with a single space.
func (c *Corpus) RemoveNewlines() *Corpus {
	return c.applyString(func(s string) string {
		return newlineRe.ReplaceAllString(s, " ")
	})
}

// RemoveDigits deletes the digits 0-9.
func (c *Corpus) RemoveDigits() *Corpus {
	return c.applyString(func(s string) string {
		return digitRe.ReplaceAllString(s, "")
	})
}

// RemoveInvalidCharacters deletes U+FFFD, the marker left by malformed input.
func (c *Corpus) RemoveInvalidCharacters() *Corpus {
	return c.applyString(func(s string) string {
		return strings.ReplaceAll(s, replacementChar, "")
	})
}

// RemoveWords deletes every whole-word occurrence of each word, then cleans
// the remaining whitespace. Words are matched literally; characters such as
// '.' or '+' carry no pattern meaning. A word edge that is a letter, digit,
// mark or '_' must not touch another such rune, so "quick" leaves "quickly"
// alone while "c++" and "#tag" are removed wherever they appear.
func (c *Corpus) RemoveWords(words []string, caseInsensitive bool) *Corpus {
	matchers := make([]wordMatcher, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		matchers = append(matchers, newWordMatcher(w, caseInsensitive))
	}
	c.applyString(func(s string) string {
		for _, m := range matchers {
			s = m.remove(s)
		}
		return s
	})
	return c.Clean()
}

type wordMatcher struct {
	re          *regexp.Regexp
	left, right bool // edge needs a word boundary
}

func newWordMatcher(w string, caseInsensitive bool) wordMatcher {
	expr := regexp.QuoteMeta(w)
	if caseInsensitive {
		expr = `(?i)` + expr
	}
	first, _ := utf8.DecodeRuneInString(w)
	last, _ := utf8.DecodeLastRuneInString(w)
	return wordMatcher{
		re:    regexp.MustCompile(expr),
		left:  isWordRune(first),
		right: isWordRune(last),
	}
}

func (m wordMatcher) remove(s string) string {
	var b strings.Builder
	kept, pos := 0, 0
	for pos < len(s) {
		loc := m.re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if m.bounded(s, start, end) {
			b.WriteString(s[kept:start])
			kept, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	if kept == 0 {
		return s
	}
	b.WriteString(s[kept:])
	return b.String()
}

func (m wordMatcher) bounded(s string, start, end int) bool {
	if m.left && start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if m.right && end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// RemoveStopwords removes the given stopwords case-insensitively. A nil list
// uses the English stopwords.
func (c *Corpus) RemoveStopwords(list []string) *Corpus {
	if list == nil {
		list = stopwords.English()
	}
	return c.RemoveWords(list, true)
}
