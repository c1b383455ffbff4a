package mark

import "golang.org/x/text/width"

// RuneWidth reports how many terminal columns r occupies: 2 for East Asian
// wide/fullwidth runes, 1 for everything else. This is what lets
// pane.cx/cy cursor placement (spec.md §4.2) convert a mark's byte/rune
// offset into a screen column when the document contains wide characters.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// DisplayWidth sums RuneWidth across every rune of s, the on-screen column
// width a document's doc:get-attr "width" reports for the text preceding a
// mark.
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}
