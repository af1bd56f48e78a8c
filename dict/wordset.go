package dict

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordReader yields words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// WordSet is a frozen set of known words, compiled into a double-array
// trie. Words are stored lower-cased; lookups expect lower-cased input.
//
// A WordSet is read-only after loading and safe for concurrent lookups.
type WordSet struct {
	words      wordTrie
	count      int
	Identifier string // Identifies the word set
}

// LoadWords compiles words from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside this package. Use adapters
// like package wordlist to parse concrete formats and feed this API.
// Empty words and words with runes outside the BMP are skipped.
func LoadWords(name string, reader WordReader) (ws *WordSet, err error) {
	backend := newDATBackend()
	ws = &WordSet{
		words:      backend,
		Identifier: fmt.Sprintf("words: %s", name),
	}
	lower := cases.Lower(language.Und)
	skipped := 0
	var word string
	for {
		word, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading word set %q: %w", name, err)
		}
		key, ok := backend.EncodeKey(lower.String(word))
		if !ok || len(key) == 0 {
			skipped++
			continue // simply skip invalid words
		}
		if backend.Insert(key) {
			ws.count++
		}
	}
	backend.Freeze()
	backendName, used, total, maxStateID, fill := ws.TrieStats()
	tracer().Infof("word set %q: %d words, %d skipped", name, ws.count, skipped)
	tracer().Infof("word trie stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		backendName, used, total, fill, maxStateID)
	return ws, nil
}

// LoadWordList compiles words from an in-memory list.
func LoadWordList(name string, words []string) (*WordSet, error) {
	return LoadWords(name, &sliceReader{words: words})
}

// Matches reports whether word is in the set. word is expected to be
// lower-cased already.
func (ws *WordSet) Matches(word string) bool {
	if ws == nil || ws.words == nil {
		return false
	}
	key, ok := ws.words.EncodeKey(word)
	if !ok {
		return false
	}
	return ws.words.Contains(key)
}

// Len returns the number of distinct words in the set.
func (ws *WordSet) Len() int {
	if ws == nil {
		return 0
	}
	return ws.count
}

// TrieStats reports density metrics for the underlying word trie.
func (ws *WordSet) TrieStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if ws == nil || ws.words == nil {
		return "", 0, 0, 0, 0
	}
	stats := ws.words.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

type sliceReader struct {
	words []string
	index int
}

func (r *sliceReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}
