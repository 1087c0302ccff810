package cutter

import "testing"

func TestCategoriesPartitionAlphabet(t *testing.T) {
	counts := make(map[Category]int)
	for r := 'a'; r <= 'z'; r++ {
		cat := CategoryOf(r)
		if cat == Uncategorized {
			t.Fatalf("letter %q has no category", r)
		}
		counts[cat]++
	}
	want := map[Category]int{Vowel: 6, CommonConsonant: 18, S: 1, Q: 1}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("expected %d letters in category %s, have %d", n, cat, counts[cat])
		}
	}
	if CategoryOf('u') != Vowel || CategoryOf('y') != Vowel {
		t.Errorf("u and y should be vowels")
	}
	for _, r := range []rune{'A', 'é', 'ß', '1'} {
		if CategoryOf(r) != Uncategorized {
			t.Errorf("%q should not have a category", r)
		}
	}
}

func TestTablesCoverAlphabet(t *testing.T) {
	tables := map[string]digitTable{
		"vowel":     vowelTable,
		"consonant": consonantTable,
		"s":         sTable,
		"expansion": expansionTable,
	}
	for name, table := range tables {
		if !table.coversAlphabet() {
			t.Errorf("%s table does not map every letter a-z exactly once", name)
		}
	}
	if !scTable.coversAlphabet() || !qThirdTable.coversAlphabet() {
		t.Errorf("third-letter tables do not cover a-z")
	}
	for r := 'a'; r <= 'z'; r++ {
		_, ordinal := qOrdinals[r]
		_, short := qShortTable.lookup(r)
		if ordinal == short {
			t.Errorf("second letter %q after q must be either an ordinal or in u-z", r)
		}
	}
	if qOrdinals['a'] != "2" || qOrdinals['q'] != "18" || qOrdinals['t'] != "21" {
		t.Errorf("unexpected q ordinals: %v", qOrdinals)
	}
}

func TestExpansionSymbols(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		d, ok := expansionTable.lookup(r)
		if !ok {
			t.Fatalf("letter %q is not expanded", r)
		}
		if r == 'u' {
			if d != 'u' {
				t.Errorf("u should be kept as a letter, is %q", d)
			}
			continue
		}
		if d < '3' || d > '9' {
			t.Errorf("expansion of %q out of range 3..9: %q", r, d)
		}
	}
}
