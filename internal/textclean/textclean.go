// Package textclean holds the stateless string primitives the corpus
// normalization steps are built from.
package textclean

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Clean collapses every run of whitespace to a single space and trims the result.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NFKC applies Unicode compatibility composition, folding ligatures,
// full-width forms and similar variants into their canonical characters.
func NFKC(s string) string {
	return norm.NFKC.String(s)
}

// Lower case-folds s using language-neutral Unicode rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper upper-cases s using language-neutral Unicode rules.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
