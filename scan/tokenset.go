package scan

import (
	"sort"

	"github.com/npillmayer/letterseg"
)

// Lexeme is a token together with the text it spans.
type Lexeme struct {
	letterseg.Token
	Text string
}

type span struct {
	start, length int
}

// TokenSet collects candidate tokens, dropping duplicate spans.
//
// If two tokens cover the same span, an English or Arabic token is
// preferred over a mixed Letter token, as it carries more information.
// Otherwise the token added first wins.
type TokenSet struct {
	lexemes map[span]Lexeme
}

// NewTokenSet creates an empty token set.
func NewTokenSet() *TokenSet {
	return &TokenSet{lexemes: make(map[span]Lexeme)}
}

// Add inserts lx unless a token with the same span and a kind at least as
// specific is present. It returns true if lx has been stored.
func (ts *TokenSet) Add(lx Lexeme) bool {
	key := span{lx.Start, lx.Length}
	if old, found := ts.lexemes[key]; found {
		if old.Kind != letterseg.Letter || lx.Kind == letterseg.Letter {
			return false
		}
	}
	ts.lexemes[key] = lx
	return true
}

// Len returns the number of distinct spans.
func (ts *TokenSet) Len() int { return len(ts.lexemes) }

// Lexemes returns the collected lexemes ordered by start position,
// longer ones first for equal starts.
func (ts *TokenSet) Lexemes() []Lexeme {
	lexemes := make([]Lexeme, 0, len(ts.lexemes))
	for _, lx := range ts.lexemes {
		lexemes = append(lexemes, lx)
	}
	sort.Slice(lexemes, func(i, j int) bool {
		if lexemes[i].Start != lexemes[j].Start {
			return lexemes[i].Start < lexemes[j].Start
		}
		return lexemes[i].Length > lexemes[j].Length
	})
	return lexemes
}
