package cutter

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"unicode"

	"github.com/derekparker/trie"
)

// ExceptionReader yields exception entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, code string, err error)
}

// Exceptions is a list of words with a fixed Cutter number, e.g. names for
// which a library has established a Cutter number in its catalog.
// Exceptions are safe for concurrent use.
type Exceptions struct {
	mu    sync.RWMutex
	words *trie.Trie // word => Cutter number
	size  int
}

// NewExceptions creates an empty exception list.
func NewExceptions() *Exceptions {
	return &Exceptions{words: trie.New()}
}

// Add registers code as the Cutter number for word. word must consist of at
// least two letters. code must be of the form ".X123", i.e. a dot, a letter
// and letters or digits, not ending in 0 or 1. Both are case-insensitive.
func (ex *Exceptions) Add(word, code string) error {
	if err := checkLetters(word); err != nil {
		return err
	}
	w := lower(word)
	if len([]rune(w)) < 2 {
		return fmt.Errorf("%w: %q", ErrTooShort, word)
	}
	code = upper(code)
	if err := checkCode(code); err != nil {
		return err
	}
	ex.mu.Lock()
	defer ex.mu.Unlock()
	if _, found := ex.words.Find(w); !found {
		ex.size++
	}
	ex.words.Add(w, code) // replaces the code of a registered word
	return nil
}

// Lookup returns the Cutter number registered for word.
func (ex *Exceptions) Lookup(word string) (string, bool) {
	if ex == nil {
		return "", false
	}
	ex.mu.RLock()
	defer ex.mu.RUnlock()
	node, found := ex.words.Find(lower(word))
	if !found {
		return "", false
	}
	code, ok := node.Meta().(string)
	return code, ok
}

// WithPrefix returns all registered words starting with prefix, in
// alphabetical order.
func (ex *Exceptions) WithPrefix(prefix string) []string {
	if ex == nil {
		return nil
	}
	ex.mu.RLock()
	defer ex.mu.RUnlock()
	var words []string
	if prefix == "" {
		words = ex.words.Keys()
	} else {
		words = ex.words.PrefixSearch(lower(prefix))
	}
	sort.Strings(words)
	return words
}

// Len returns the number of registered words.
func (ex *Exceptions) Len() int {
	if ex == nil {
		return 0
	}
	ex.mu.RLock()
	defer ex.mu.RUnlock()
	return ex.size
}

// Load adds all entries of reader. It stops at the first error.
func (ex *Exceptions) Load(reader ExceptionReader) error {
	n := 0
	for {
		word, code, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err = ex.Add(word, code); err != nil {
			return fmt.Errorf("exception %q: %w", word, err)
		}
		n++
	}
	tracer().Infof("loaded %d Cutter exceptions", n)
	return nil
}

// checkCode checks an upper-case Cutter number.
func checkCode(code string) error {
	c := []rune(code)
	if len(c) < 3 || c[0] != '.' || !unicode.IsLetter(c[1]) {
		return fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}
	for _, r := range c[2:] {
		if !unicode.IsLetter(r) && (r < '0' || r > '9') {
			return fmt.Errorf("%w: %q", ErrMalformedCode, code)
		}
	}
	if last := c[len(c)-1]; last == '0' || last == '1' {
		return fmt.Errorf("%w: %q ends in %c", ErrMalformedCode, code, last)
	}
	return nil
}
