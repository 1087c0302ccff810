/*
Package lcexceptions reads lists of Cutter exceptions from plain text.

Every line holds a word and its Cutter number, separated by white space.
Empty lines and lines starting with '#' are ignored:

	# local authority file
	shakespeare  .S5
	tolkien      .T6
*/
package lcexceptions

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cutter"
)

// Reader streams Cutter exceptions from a text source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadExceptions parses exception data from reader and adds all entries to ex.
func LoadExceptions(ex *cutter.Exceptions, reader io.Reader) error {
	return ex.Load(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, code).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return "", "", fmt.Errorf("line %d: expected word and Cutter number, have %q", r.line, line)
		}
		return fields[0], fields[1], nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}
