package cutter

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Source draws the random digit appended to Cutter numbers which would
// otherwise end in 0 or 1. IntN returns a value in [0,n).
//
// *rand.Rand from math/rand/v2 satisfies Source; use it with a fixed seed
// for reproducible results. Sources shared between goroutines must be safe
// for concurrent use.
type Source interface {
	IntN(n int) int
}

// globalSource uses the top-level functions of math/rand/v2, which are safe
// for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Classifier computes Cutter numbers. The zero value is not usable, create
// classifiers with New. A Classifier may be used concurrently, provided its
// Source is safe for concurrent use.
type Classifier struct {
	source     Source
	exceptions *Exceptions
	folding    bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSource sets the source for random correction digits.
func WithSource(src Source) Option {
	return func(c *Classifier) {
		if src != nil {
			c.source = src
		}
	}
}

// WithExceptions makes the classifier return the registered Cutter number
// for words contained in ex.
func WithExceptions(ex *Exceptions) Option {
	return func(c *Classifier) {
		c.exceptions = ex
	}
}

// WithFolding makes the classifier strip diacritics from letters before
// classification, e.g. "Émile" is classified as "Emile".
func WithFolding() Option {
	return func(c *Classifier) {
		c.folding = true
	}
}

// New creates a Classifier.
func New(opts ...Option) *Classifier {
	c := &Classifier{source: globalSource{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = New()

// Classify returns the Cutter number for word, using a default Classifier.
//
// Example:
//
//	"cutter" => ".C88847"
func Classify(word string) (string, error) {
	return defaultClassifier.Classify(word)
}

// Classify returns the Cutter number for word.
//
// word must consist of letters only (ErrInvalidCharacter) and contain at
// least 2 of them (ErrTooShort). Case does not matter; the result is
// upper case.
func (c *Classifier) Classify(word string) (string, error) {
	if c.folding {
		word = fold(word)
	}
	if err := checkLetters(word); err != nil {
		return "", err
	}
	w := []rune(lower(word))
	if len(w) < 2 {
		return "", fmt.Errorf("%w: %q", ErrTooShort, word)
	}
	if c.exceptions != nil {
		if code, ok := c.exceptions.Lookup(string(w)); ok {
			tracer().Debugf("cutter for %q is an exception: %s", word, code)
			return code, nil
		}
	}
	var code strings.Builder
	code.WriteByte('.')
	code.WriteRune(w[0])
	code.WriteString(initialDigits(w))
	expand(&code, w[prefixLength(w):])
	cutter := correctTerminal(code.String(), c.source)
	return upper(cutter), nil
}

// initialDigits returns the digits for the second (and sometimes third)
// letter of w, as selected by the category of its first letter.
// w has at least 2 letters.
func initialDigits(w []rune) string {
	second := w[1]
	cat := CategoryOf(w[0])
	tracer().Debugf("first letter %q is in category %s", w[0], cat)
	var d byte
	var ok bool
	switch cat {
	case Vowel:
		d, ok = vowelTable.lookup(second)
	case CommonConsonant:
		d, ok = consonantTable.lookup(second)
	case S:
		if second == 'c' && len(w) > 2 {
			d, ok = scTable.lookup(w[2])
		} else {
			d, ok = sTable.lookup(second)
		}
	case Q:
		if n, found := qOrdinals[second]; found {
			return n
		}
		if second < 'u' || second > 'z' {
			break
		}
		if len(w) < 3 {
			d, ok = qShortTable.lookup(second)
		} else {
			d, ok = qThirdTable.lookup(w[2])
		}
	}
	if !ok {
		return ""
	}
	return string(d)
}

// prefixLength is the number of letters covered by the initial digits.
// A leading "qu" consumes the third letter as well.
func prefixLength(w []rune) int {
	if w[0] == 'q' && w[1] == 'u' {
		return min(3, len(w))
	}
	return 2
}

// expand appends one symbol per letter of rest. Letters outside the table
// are skipped.
func expand(code *strings.Builder, rest []rune) {
	for _, r := range rest {
		if d, ok := expansionTable.lookup(r); ok {
			code.WriteByte(d)
		}
	}
}

// correctTerminal appends a random digit 2…8 if code ends in 0 or 1.
func correctTerminal(code string, src Source) string {
	if code == "" {
		return code
	}
	last := code[len(code)-1]
	if last != '0' && last != '1' {
		return code
	}
	d := 2 + src.IntN(7)
	tracer().Debugf("cutter %s ends in %c, appending %d", code, last, d)
	return fmt.Sprintf("%s%d", code, d)
}
