package wordlist

import (
	"io"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`# header comment
% another comment

  window
windows 877
`)
	r := NewReader(src)
	word, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "window" {
		t.Fatalf("word mismatch: got %q", word)
	}
	word, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "windows" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if r.Line() != 5 {
		t.Fatalf("expected 5 lines consumed, got %d", r.Line())
	}
	_, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestLoadDictionary(t *testing.T) {
	words, err := LoadDictionary("test-words", strings.NewReader(`
Hello
world
world
`))
	if err != nil {
		t.Fatal(err)
	}
	if words.Len() != 2 {
		t.Fatalf("expected 2 distinct words, got %d", words.Len())
	}
	tests := []struct {
		word string
		want bool
	}{
		{word: "hello", want: true},
		{word: "world", want: true},
		{word: "hell", want: false},
		{word: "worlds", want: false},
	}
	for _, tt := range tests {
		if got := words.Matches(tt.word); got != tt.want {
			t.Fatalf("lookup mismatch for %q: got %v, want %v", tt.word, got, tt.want)
		}
	}
}
