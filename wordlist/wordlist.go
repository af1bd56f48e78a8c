// Package wordlist reads plain word lists, one word per line.
//
// Blank lines and lines starting with '#' or '%' are skipped, so lists with
// comment headers (as shipped with many spell checkers) load as they are.
// Anything after the first white space on a line is ignored, which allows
// frequency columns:
//
//	# english core vocabulary
//	window   1204
//	windows   877
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/letterseg/dict"
)

// Reader streams words from a word-list source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadDictionary reads a word list and compiles it into a word set.
//
// Example usage:
//
//	f, _ := os.Open("path/to/words-en.txt")
//	defer f.Close()
//
//	words, err := wordlist.LoadDictionary("en", f)
func LoadDictionary(name string, reader io.Reader) (*dict.WordSet, error) {
	return dict.LoadWords(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
