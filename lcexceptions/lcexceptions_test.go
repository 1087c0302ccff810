package lcexceptions

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/cutter"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`# local authority file

shakespeare  .S5
  Tolkien	.t6
`)
	r := NewReader(src)
	word, code, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "shakespeare" || code != ".S5" {
		t.Fatalf("entry mismatch: got %q %q", word, code)
	}
	word, code, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "Tolkien" || code != ".t6" {
		t.Fatalf("entry mismatch: got %q %q", word, code)
	}
	_, _, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderMalformedLine(t *testing.T) {
	r := NewReader(strings.NewReader("shakespeare .S5\nshakespeare\n"))
	if _, _, err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	_, _, err := r.Next()
	if err == nil || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Fatalf("expected error for line 2, got %v", err)
	}
}

func TestLoadExceptions(t *testing.T) {
	ex := cutter.NewExceptions()
	err := LoadExceptions(ex, strings.NewReader("shakespeare .S5\ntolkien .T6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ex.Len() != 2 {
		t.Fatalf("expected 2 exceptions, have %d", ex.Len())
	}
	c := cutter.New(cutter.WithExceptions(ex))
	if code, err := c.Classify("Tolkien"); err != nil || code != ".T6" {
		t.Fatalf("Tolkien should be .T6, is %q (%v)", code, err)
	}
	if code, err := c.Classify("cutter"); err != nil || code != ".C88847" {
		t.Fatalf("cutter should be .C88847, is %q (%v)", code, err)
	}
}

func TestLoadExceptionsRejectsMalformedCode(t *testing.T) {
	ex := cutter.NewExceptions()
	err := LoadExceptions(ex, strings.NewReader("tolkien T6\n"))
	if !errors.Is(err, cutter.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}
}
