package dict

import (
	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trie is a mutable dictionary backed by a prefix tree. Use it where words
// are added while a session runs, e.g. user dictionaries; a WordSet is more
// compact for large static word lists.
//
// Trie is not safe for concurrent modification. Adding words while a
// segmenter session consults the trie is not allowed.
type Trie struct {
	words *trie.Trie
	lower cases.Caser
	count int
}

// NewTrie creates a trie dictionary holding words.
func NewTrie(words ...string) *Trie {
	t := &Trie{
		words: trie.New(),
		lower: cases.Lower(language.Und),
	}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts word, lower-cased. It returns false if word is empty or
// already present.
func (t *Trie) Add(word string) bool {
	word = t.lower.String(word)
	if word == "" {
		return false
	}
	if _, found := t.words.Find(word); found {
		return false
	}
	t.words.Add(word, nil)
	t.count++
	tracer().Debugf("added %q to trie dictionary", word)
	return true
}

// Matches reports whether word is in the dictionary. word is expected to
// be lower-cased already.
func (t *Trie) Matches(word string) bool {
	if t == nil || word == "" {
		return false
	}
	_, found := t.words.Find(word)
	return found
}

// HasPrefix reports whether any word in the dictionary starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	if t == nil {
		return false
	}
	return t.words.HasKeysWithPrefix(prefix)
}

// Len returns the number of words in the dictionary.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}
