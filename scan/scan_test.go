package scan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/letterseg"
	"github.com/npillmayer/letterseg/dict"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lexeme(start, length int, kind letterseg.Kind, text string) Lexeme {
	return Lexeme{
		Token: letterseg.Token{Start: start, Length: length, Kind: kind},
		Text:  text,
	}
}

func mustSegment(t *testing.T, text string, d letterseg.Dictionary, config Config) []Lexeme {
	t.Helper()
	lexemes, err := Segment(text, d, config)
	if err != nil {
		t.Fatal(err)
	}
	return lexemes
}

func TestSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterseg.scan")
	defer teardown()
	//
	got := mustSegment(t, "ab 12345", nil, DefaultConfig())
	want := []Lexeme{
		lexeme(0, 2, letterseg.English, "ab"),
		lexeme(3, 5, letterseg.Arabic, "12345"),
		lexeme(3, 4, letterseg.Arabic, "1234"),
		lexeme(3, 3, letterseg.Arabic, "123"),
		lexeme(4, 4, letterseg.Arabic, "2345"),
		lexeme(5, 3, letterseg.Arabic, "345"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lexemes mismatch, got\n%s", spew.Sdump(got))
	}
}

func TestSegmentWithDictionary(t *testing.T) {
	words, err := dict.LoadWordList("test", []string{"windows"})
	if err != nil {
		t.Fatal(err)
	}
	config := DefaultConfig()
	config.Flags = letterseg.Config{EnglishPrefix: true}
	got := mustSegment(t, "Windows windowz", words, config)
	want := []Lexeme{
		lexeme(0, 7, letterseg.English, "Windows"),
		lexeme(8, 7, letterseg.English, "windowz"),
		lexeme(8, 6, letterseg.English, "window"),
		lexeme(8, 5, letterseg.English, "windo"),
		lexeme(8, 4, letterseg.English, "wind"),
		lexeme(8, 3, letterseg.English, "win"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lexemes mismatch, got\n%s", spew.Sdump(got))
	}
}

func TestMixedTokensSurviveDeduplication(t *testing.T) {
	got := mustSegment(t, "foo@bar.org", nil, DefaultConfig())
	if len(got) == 0 || got[0].Kind != letterseg.Letter || got[0].Text != "foo@bar.org" {
		t.Fatalf("expected mixed token first, got\n%s", spew.Sdump(got))
	}
}

func TestEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "中文！"} {
		if got := mustSegment(t, text, nil, DefaultConfig()); len(got) != 0 {
			t.Fatalf("expected no lexemes for %q, got\n%s", text, spew.Sdump(got))
		}
	}
}

func TestSmallWindowGivesSameResult(t *testing.T) {
	text := "ab cd ef gh ij kl"
	want := mustSegment(t, text, nil, DefaultConfig())
	config := DefaultConfig()
	config.BufferSize = 4
	config.Threshold = 3
	got := mustSegment(t, text, nil, config)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("small window changed the result, got\n%s", spew.Sdump(got))
	}
}

func TestLockDefersRefill(t *testing.T) {
	text := "abcdefg hij"
	want := mustSegment(t, text, nil, DefaultConfig())
	config := DefaultConfig()
	config.BufferSize = 8
	config.Threshold = 6
	got := mustSegment(t, text, nil, config)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("refill split a locked run, got\n%s", spew.Sdump(got))
	}
}

func TestRunEndsAtFullWindow(t *testing.T) {
	config := DefaultConfig()
	config.BufferSize = 4
	config.Threshold = 1
	config.Flags = letterseg.Config{}
	got := mustSegment(t, "abcdefgh", nil, config)
	want := []Lexeme{
		lexeme(0, 4, letterseg.English, "abcd"),
		lexeme(4, 4, letterseg.English, "efgh"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lexemes mismatch, got\n%s", spew.Sdump(got))
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		size, threshold int
	}{
		{size: 0, threshold: 0},
		{size: 10, threshold: 11},
		{size: 10, threshold: -1},
	}
	for _, tt := range tests {
		config := DefaultConfig()
		config.BufferSize, config.Threshold = tt.size, tt.threshold
		if _, err := NewContext(strings.NewReader(""), config); err == nil {
			t.Fatalf("expected error for size=%d threshold=%d", tt.size, tt.threshold)
		}
	}
}

type failingReader struct {
	data string
}

var errBroken = errors.New("broken pipe")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, errBroken
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReaderError(t *testing.T) {
	scanner, err := NewScanner(&failingReader{data: "abc "}, DefaultConfig(), letterseg.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = scanner.Scan(); !errors.Is(err, errBroken) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

// stickySegmenter never releases its lock.
type stickySegmenter struct {
	resets int
}

func (s *stickySegmenter) Analyze(ctx letterseg.Context) { ctx.LockBuffer("STICKY") }
func (s *stickySegmenter) Reset()                        { s.resets++ }

func TestStaleLocksAreDroppedAtWindowEnd(t *testing.T) {
	sticky := &stickySegmenter{}
	config := DefaultConfig()
	config.BufferSize = 4
	config.Threshold = 3
	scanner, err := NewScanner(strings.NewReader("ab cd ef"), config, sticky, letterseg.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	lexemes, err := scanner.Scan()
	if err != nil {
		t.Fatal(err)
	}
	if sticky.resets != 2 {
		t.Fatalf("expected 2 windows, got %d", sticky.resets)
	}
	if scanner.ctx.IsLocked() {
		t.Fatalf("locks should be dropped after the last window")
	}
	// the sticky lock keeps the window in place, so "cd" is cut at the window end
	if len(lexemes) != 4 || lexemes[1].Text != "c" || lexemes[2].Text != "d" {
		t.Fatalf("expected 4 lexemes, got\n%s", spew.Sdump(lexemes))
	}
}

func TestTokenSetPrefersSpecificKinds(t *testing.T) {
	ts := NewTokenSet()
	if !ts.Add(lexeme(0, 3, letterseg.Letter, "abc")) {
		t.Fatalf("first token should be stored")
	}
	if !ts.Add(lexeme(0, 3, letterseg.English, "abc")) {
		t.Fatalf("English token should replace mixed token")
	}
	if ts.Add(lexeme(0, 3, letterseg.Letter, "abc")) {
		t.Fatalf("mixed token should not replace English token")
	}
	if ts.Add(lexeme(0, 3, letterseg.English, "abc")) {
		t.Fatalf("duplicate should be dropped")
	}
	if ts.Len() != 1 || ts.Lexemes()[0].Kind != letterseg.English {
		t.Fatalf("unexpected token set content\n%s", spew.Sdump(ts.Lexemes()))
	}
}
