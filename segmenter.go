package letterseg

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SegmenterName identifies the letter segmenter when it locks the buffer.
const SegmenterName = "LETTER_SEGMENTER"

// Runs longer than dealLength are cracked into affix variants.
const dealLength = 4

// Affix length ranges, inclusive.
const (
	englishAffixMin = 3
	englishAffixMax = 6
	arabicAffixMin  = 3
	arabicAffixMax  = 8
)

// Context is the view a segmenter has of the host scanner: a cursor over a
// rolling buffer, a lock registry for that buffer, a token sink and the
// affix flags.
//
// Positions (Cursor, Text) are relative to the current buffer. BufferOffset
// is the absolute offset of buffer position 0; segmenters add it to form
// absolute token offsets.
type Context interface {
	Cursor() int
	CurrentChar() rune
	CurrentClass() CharClass
	// BufferConsumed is true if the cursor sits on the last character
	// currently available in the buffer.
	BufferConsumed() bool
	BufferOffset() int
	// Text returns the buffer characters in [from, to).
	Text(from, to int) []rune
	// LockBuffer asks the host to defer sliding or refilling the buffer
	// until the same segmenter calls UnlockBuffer.
	LockBuffer(segmenter string)
	UnlockBuffer(segmenter string)
	AddToken(Token)
	Flags() Flags
}

// Dictionary answers whether a lower-cased letter sequence is a known word.
// It has to stay valid and unchanged for the duration of a session.
type Dictionary interface {
	Matches(word string) bool
}

// position is what every tracker gets to see of the cursor in one step.
type position struct {
	pos   int
	char  rune
	class CharClass
	last  bool // cursor is on the last character of the buffer
}

// Segmenter is the letter/digit sub-segmenter. It is not safe for
// concurrent use; create one per session.
type Segmenter struct {
	mixed   mixedTracker
	english englishTracker
	arabic  arabicTracker
}

// New creates a segmenter. dict is used to decide whether long letter runs
// are real words, for which no prefix variants are generated. dict may be
// nil, in which case no run is considered a known word.
func New(dict Dictionary) *Segmenter {
	return &Segmenter{
		english: englishTracker{
			dict:  dict,
			lower: cases.Lower(language.Und),
		},
	}
}

// Name returns SegmenterName.
func (seg *Segmenter) Name() string {
	return SegmenterName
}

// Step advances all three recognizers by the character under the cursor
// and returns true if at least one of them is in the middle of a run, i.e.,
// if the buffer must not be moved.
func (seg *Segmenter) Step(ctx Context) (needLock bool) {
	at := position{
		pos:   ctx.Cursor(),
		char:  ctx.CurrentChar(),
		class: ctx.CurrentClass(),
		last:  ctx.BufferConsumed(),
	}
	needLock = seg.mixed.proceed(at, ctx) || needLock
	needLock = seg.english.proceed(at, ctx) || needLock
	needLock = seg.arabic.proceed(at, ctx) || needLock
	return needLock
}

// Analyze performs a Step and locks or unlocks the host's buffer
// accordingly.
func (seg *Segmenter) Analyze(ctx Context) {
	if seg.Step(ctx) {
		ctx.LockBuffer(SegmenterName)
	} else {
		ctx.UnlockBuffer(SegmenterName)
	}
}

// Reset puts all recognizers back to idle, dropping unfinished runs.
// Call it when starting a new session or after a buffer discontinuity.
func (seg *Segmenter) Reset() {
	seg.mixed.clear()
	seg.english.clear()
	seg.arabic.clear()
}

// --- Helpers ---------------------------------------------------------------

func emit(ctx Context, tok Token) {
	assert(tok.Length > 0, "token with non-positive length")
	assert(tok.Start >= ctx.BufferOffset(), "token starts before buffer")
	tracer().Debugf("emit %s", tok)
	ctx.AddToken(tok)
}

func flagsOf(ctx Context) Flags {
	if f := ctx.Flags(); f != nil {
		return f
	}
	return Config{}
}

// emitSuffixes emits variants of length lo…min(hi,len(r)), all ending
// where r ends.
func emitSuffixes(ctx Context, r run, kind Kind, lo, hi int) {
	base := ctx.BufferOffset()
	for l := lo; l <= min(hi, r.length()); l++ {
		emit(ctx, Token{Start: base + r.end + 1 - l, Length: l, Kind: kind})
	}
}

// emitPrefixes emits variants of length lo…min(hi,len(r)), all starting
// where r starts.
func emitPrefixes(ctx Context, r run, kind Kind, lo, hi int) {
	base := ctx.BufferOffset()
	for l := lo; l <= min(hi, r.length()); l++ {
		emit(ctx, Token{Start: base + r.start, Length: l, Kind: kind})
	}
}
