package cutter

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Casers and transformers are stateful, so every call creates its own.

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// fold removes diacritics, e.g. "Émile" => "Emile".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		tracer().Errorf("cannot fold %q: %v", s, err)
		return s
	}
	return folded
}

// IsLetters reports whether s is non-empty and consists of letters only.
// It is the check user interfaces apply before asking for a Cutter number.
func IsLetters(s string) bool {
	return s != "" && checkLetters(s) == nil
}

func checkLetters(s string) error {
	for i, r := range []rune(s) {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, r, i)
		}
	}
	return nil
}
