/*
Package cutter computes Library of Congress Cutter numbers for words.

A Cutter number is a short alphanumeric code, e.g. ".C88847" for "cutter",
used in LC call numbers to order works by author or title within a class.
The rules are those of the printed LC Cutter Table (as of 06/13/2017,
see TableVersion): the first letter of a word selects a category
(vowels, common consonants, "s" and "q"), the second letter (and for some
words the third one) selects a digit from the category's table, and every
remaining letter is expanded into one more digit.

	code, err := cutter.Classify("Cutter") // ".C88847"

Words have to consist of letters only and must have at least two of them.
Errors are reported as ErrInvalidCharacter and ErrTooShort, respectively;
function Message returns the text user interfaces traditionally display
for them.

A Classifier may be configured with a list of local exceptions, i.e.
words with a fixed Cutter number, and may fold accented letters to their
base letters before classification. Sub-package lcexceptions reads
exception lists from plain text files.

Further Reading

	https://www.loc.gov/aba/pcc/053/table.html   (LC Cutter Table)
	https://www.loc.gov/aba/publications/FreeSHM/G063.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package cutter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cutter'
func tracer() tracing.Trace {
	return tracing.Select("cutter")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
