package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var urlRe = regexp.MustCompile(`http\S+`)

// Clean normalizes free-form user text for matching:
// NFC composition, lowercase, URL tokens removed, everything other
// than [a-z, accented Spanish vowels, ü, ñ, digits, whitespace]
// dropped, whitespace runs collapsed to single spaces.
//
// Clean is total (empty in → empty out) and idempotent.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(norm.NFC.String(s))
	s = urlRe.ReplaceAllString(s, " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func keepRune(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return true
	}
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

// Stopwords is a lookup set of terms excluded from token streams.
type Stopwords map[string]struct{}

// NewStopwords builds a stopword set from a term list.
func NewStopwords(terms []string) Stopwords {
	set := make(Stopwords, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// Contains reports whether a term is in the set.
func (s Stopwords) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Tokens cleans text and splits it into terms suitable for frequency
// counting: terms of three or more runes that are not stopwords and
// not purely numeric.
func Tokens(s string, stop Stopwords) []string {
	cleaned := Clean(s)
	if cleaned == "" {
		return nil
	}
	var out []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if isNumericOnly(w) {
			continue
		}
		if stop.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
