package letterseg

import "slices"

// Both sets must stay sorted; membership is tested by binary search.
var (
	letterConnectors = []rune{'#', '&', '+', '-', '.', '@', '_'}
	digitConnectors  = []rune{',', '.'}
)

// IsLetterConnector reports whether r may appear inside a mixed run,
// as in "c++", "foo@bar.org" or "utf-8".
func IsLetterConnector(r rune) bool {
	_, found := slices.BinarySearch(letterConnectors, r)
	return found
}

// IsDigitConnector reports whether r may appear inside a run of digits,
// as in "12,345" or "3.1415".
func IsDigitConnector(r rune) bool {
	_, found := slices.BinarySearch(digitConnectors, r)
	return found
}
