package letterseg

import "fmt"

// Kind tells which recognizer produced a token.
type Kind int8

const (
	// Letter tokens are mixed runs of letters, digits and letter connectors.
	Letter Kind = iota + 1
	// English tokens are runs of Latin letters only.
	English
	// Arabic tokens are runs of Arabic digits.
	Arabic
)

func (k Kind) String() string {
	switch k {
	case Letter:
		return "LETTER"
	case English:
		return "ENGLISH"
	case Arabic:
		return "ARABIC"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a candidate token. Start is an absolute offset into the scanned
// text, counted in runes. Tokens are values; a segmenter keeps no reference
// to a token once it has been handed to the sink.
type Token struct {
	Start  int
	Length int
	Kind   Kind
}

// End returns the absolute offset just behind the token.
func (t Token) End() int {
	return t.Start + t.Length
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.Kind, t.Start, t.End())
}
