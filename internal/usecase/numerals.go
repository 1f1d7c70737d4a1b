package usecase

// numberWords maps spelled-out quantity words to their integer values.
// Covers one through five in English, Hindi Latin transliteration, and
// Devanagari. Speech recognition of mixed Hindi/English emits all three
// scripts regardless of the chosen locale, so the table is unified rather
// than selected per language.
var numberWords = map[string]int{
	// Hindi (Latin transliteration)
	"ek":     1,
	"do":     2,
	"teen":   3,
	"char":   4,
	"paanch": 5,
	// English
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	// Hindi (Devanagari)
	"एक":   1,
	"दो":   2,
	"तीन":  3,
	"चार":  4,
	"पाँच": 5,
	"पांच": 5,
}

// resolveNumeral returns the integer value of a spelled-out number word.
// Unrecognized tokens pass through so the parser can decide whether they
// are digits, a product term, or noise.
func resolveNumeral(token string) (int, bool) {
	n, ok := numberWords[token]
	return n, ok
}
