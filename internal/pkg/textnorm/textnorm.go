// Package textnorm canonicalizes the free text typed at the shop counter so
// that equal things are stored and matched equally.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Collapse trims s and replaces every run of whitespace with a single space.
// The result is NFC-normalized.
func Collapse(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Sentence collapses s and upper-cases its first letter, leaving the rest as
// typed: "  no   enciende " becomes "No enciende".
func Sentence(s string) string {
	s = Collapse(s)
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		size := utf8.RuneLen(r)
		return s[:i] + cases.Upper(language.Und).String(s[i:i+size]) + s[i+size:]
	}
	return s
}

// Digits keeps only the ASCII digits of s. Phones and tax ids are stored this way.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Serial upper-cases s and drops all whitespace: " sn 001 " becomes "SN001".
func Serial(s string) string {
	s = cases.Upper(language.Und).String(norm.NFC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Key is the matching form used for catalog entries: case-folded and
// whitespace-collapsed, so "Pantalla  ROTA" and "pantalla rota" share a key.
func Key(s string) string {
	return Collapse(cases.Fold().String(Collapse(s)))
}

// Label normalizes a status label: accents stripped, upper-cased and
// whitespace-collapsed. "en reparación" becomes "EN REPARACION".
func Label(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return Collapse(cases.Upper(language.Und).String(stripped))
}

// Optional returns nil for empty input, otherwise a pointer to s.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
