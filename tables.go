package cutter

import "strconv"

// TableVersion identifies the revision of the LC Cutter Table encoded in
// this package.
const TableVersion = "2017-06-13"

// Category is the class of the first letter of a word. It selects the
// digit table for the second letter.
type Category int8

// Categories for first letters. Uncategorized is used for letters outside
// of a–z; words starting with them get no digit for their second letter.
const (
	Uncategorized Category = iota
	Vowel
	CommonConsonant
	S
	Q
)

func (c Category) String() string {
	switch c {
	case Vowel:
		return "Vowel"
	case CommonConsonant:
		return "CommonConsonant"
	case S:
		return "S"
	case Q:
		return "Q"
	}
	return "Uncategorized"
}

// vowels and commonConsonants partition a–z together with 's' and 'q'.
// The printed table lists 'u' with the consonants, too, but the vowel rule
// takes precedence.
const (
	vowels           = "aeiouy"
	commonConsonants = "bcdfghjklmnprtvwxz"
)

// CategoryOf returns the category a lower-case first letter belongs to.
func CategoryOf(r rune) Category {
	switch {
	case r == 's':
		return S
	case r == 'q':
		return Q
	case r < 'a' || r > 'z':
		return Uncategorized
	}
	for _, v := range vowels {
		if r == v {
			return Vowel
		}
	}
	for _, c := range commonConsonants {
		if r == c {
			return CommonConsonant
		}
	}
	return Uncategorized
}

// span maps the letters from..to (inclusive) to a symbol.
type span struct {
	from, to rune
	symbol   byte
}

// digitTable is a list of disjoint letter spans in alphabetical order.
type digitTable []span

func (t digitTable) lookup(r rune) (byte, bool) {
	for _, s := range t {
		if r >= s.from && r <= s.to {
			return s.symbol, true
		}
	}
	return 0, false
}

// Second letter after a vowel.
var vowelTable = digitTable{
	{'a', 'c', '2'},
	{'d', 'k', '3'},
	{'l', 'm', '4'},
	{'n', 'o', '5'},
	{'p', 'q', '6'},
	{'r', 'r', '7'},
	{'s', 't', '8'},
	{'u', 'z', '9'},
}

// Second letter after a common consonant.
var consonantTable = digitTable{
	{'a', 'd', '3'},
	{'e', 'h', '4'},
	{'i', 'n', '5'},
	{'o', 'q', '6'},
	{'r', 't', '7'},
	{'u', 'x', '8'},
	{'y', 'z', '9'},
}

// Second letter after an initial 's'. "sc" is resolved by scTable.
var sTable = digitTable{
	{'a', 'b', '2'},
	{'c', 'c', '3'},
	{'d', 'd', '3'},
	{'e', 'g', '4'},
	{'h', 'l', '5'},
	{'m', 's', '6'},
	{'t', 't', '7'},
	{'u', 'v', '8'},
	{'w', 'z', '9'},
}

// Third letter after "sc".
var scTable = digitTable{
	{'a', 'g', '2'},
	{'h', 'z', '3'},
}

// Second letter u–z after an initial 'q', for two-letter words.
var qShortTable = digitTable{
	{'u', 'x', '8'},
	{'y', 'z', '9'},
}

// Third letter after "qu" … "qz".
var qThirdTable = digitTable{
	{'a', 'd', '3'},
	{'e', 'h', '4'},
	{'i', 'n', '5'},
	{'o', 'q', '6'},
	{'r', 's', '7'},
	{'t', 'x', '8'},
	{'y', 'z', '9'},
}

// qOrdinals maps the second letters a–t after an initial 'q' to 2…21.
// Values above 9 are appended with both digits.
var qOrdinals = func() map[rune]string {
	m := make(map[rune]string, 20)
	n := 2
	for r := 'a'; r <= 't'; r++ {
		m[r] = strconv.Itoa(n)
		n++
	}
	return m
}()

// expansionTable maps every letter after the initial ones. 'u' is kept as a
// letter.
var expansionTable = digitTable{
	{'a', 'd', '3'},
	{'e', 'h', '4'},
	{'i', 'l', '5'},
	{'m', 'o', '6'},
	{'p', 's', '7'},
	{'t', 't', '8'},
	{'u', 'u', 'u'},
	{'v', 'v', '8'},
	{'w', 'z', '9'},
}

// coversAlphabet reports whether every letter a–z is mapped by t exactly once.
func (t digitTable) coversAlphabet() bool {
	for r := 'a'; r <= 'z'; r++ {
		n := 0
		for _, s := range t {
			if r >= s.from && r <= s.to {
				n++
			}
		}
		if n != 1 {
			return false
		}
	}
	return true
}

func init() {
	for _, t := range []digitTable{vowelTable, consonantTable, sTable, expansionTable} {
		assert(t.coversAlphabet(), "cutter table does not cover a-z")
	}
	assert(len(vowels)+len(commonConsonants)+2 == 26, "first-letter categories do not partition a-z")
}
