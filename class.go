package letterseg

import "unicode"

// CharClass is the coarse character class a host scanner assigns to the
// character under its cursor.
type CharClass int8

const (
	// OtherClass is for characters owned by sibling segmenters (e.g., CJK).
	OtherClass CharClass = iota
	// LetterClass is for the Latin letters a–z and A–Z.
	LetterClass
	// DigitClass is for the Arabic digits 0–9.
	DigitClass
	// IgnorableClass is for everything else: punctuation, white space,
	// symbols. Connectors are found among these.
	IgnorableClass
)

func (c CharClass) String() string {
	switch c {
	case OtherClass:
		return "OTHER"
	case LetterClass:
		return "LETTER"
	case DigitClass:
		return "DIGIT"
	case IgnorableClass:
		return "IGNORABLE"
	}
	return "?"
}

// Classifier maps a character to its class. Implementations must be
// deterministic and free of side effects.
type Classifier interface {
	Classify(r rune) CharClass
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(rune) CharClass

// Classify calls f(r).
func (f ClassifierFunc) Classify(r rune) CharClass {
	return f(r)
}

// DefaultClassifier recognizes ASCII letters and digits, puts Han, Kana and
// Hangul into OtherClass and considers everything else ignorable.
// No normalization is applied: full-width forms are not letters.
var DefaultClassifier Classifier = ClassifierFunc(Classify)

// Classify is the classification function behind DefaultClassifier.
func Classify(r rune) CharClass {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return LetterClass
	case r >= '0' && r <= '9':
		return DigitClass
	case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul):
		return OtherClass
	}
	return IgnorableClass
}
