package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/letterseg"
)

// Config configures a Scanner.
type Config struct {
	// BufferSize is the capacity of the rune window.
	BufferSize int `json:"buffer_size"`

	// Threshold is the distance from the end of a full window below which
	// the scanner refills, provided no segmenter holds a lock.
	Threshold int `json:"threshold"`

	// Classifier assigns character classes. If nil, letterseg.DefaultClassifier is used.
	Classifier letterseg.Classifier `json:"-"`

	// Flags is handed to segmenters on demand. If nil, letterseg.DefaultConfig() is used.
	Flags letterseg.Flags `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize: 4096,
		Threshold:  100,
		Classifier: letterseg.DefaultClassifier,
		Flags:      letterseg.DefaultConfig(),
	}
}

func (c Config) validate() (Config, error) {
	if c.BufferSize <= 0 {
		return c, fmt.Errorf("buffer size must be positive, is %d", c.BufferSize)
	}
	if c.Threshold < 0 || c.Threshold > c.BufferSize {
		return c, fmt.Errorf("threshold must be in 0…%d, is %d", c.BufferSize, c.Threshold)
	}
	if c.Classifier == nil {
		c.Classifier = letterseg.DefaultClassifier
	}
	if c.Flags == nil {
		c.Flags = letterseg.DefaultConfig()
	}
	return c, nil
}

// Context is a rolling rune window over a reader, with a cursor, a lock
// registry and a token sink. It implements letterseg.Context.
type Context struct {
	config    Config
	reader    *bufio.Reader
	buf       []rune
	available int                 // number of valid runes in buf
	cursor    int                 // position within buf
	done      int                 // runes of buf already handed to segmenters
	offset    int                 // absolute offset of buf[0]
	class     letterseg.CharClass // class of buf[cursor]
	eof       bool
	locks     map[string]struct{}
	tokens    *TokenSet
}

var _ letterseg.Context = (*Context)(nil)

// NewContext creates a context reading from r.
func NewContext(r io.Reader, config Config) (*Context, error) {
	config, err := config.validate()
	if err != nil {
		return nil, err
	}
	return &Context{
		config: config,
		reader: bufio.NewReader(r),
		buf:    make([]rune, config.BufferSize),
		locks:  make(map[string]struct{}),
		tokens: NewTokenSet(),
	}, nil
}

// fill discards the runes already handed to segmenters, moves the rest to
// the front of the window and tops it up from the reader. It returns the
// number of runes available.
func (ctx *Context) fill() (int, error) {
	carry := ctx.available - ctx.done
	copy(ctx.buf, ctx.buf[ctx.done:ctx.available])
	ctx.offset += ctx.done
	ctx.available, ctx.done = carry, 0
	for ctx.available < len(ctx.buf) && !ctx.eof {
		r, _, err := ctx.reader.ReadRune()
		if errors.Is(err, io.EOF) {
			ctx.eof = true
			break
		}
		if err != nil {
			return ctx.available, fmt.Errorf("reading input at offset %d: %w",
				ctx.offset+ctx.available, err)
		}
		ctx.buf[ctx.available] = r
		ctx.available++
	}
	ctx.cursor = 0
	tracer().Debugf("filled window: offset=%d, available=%d (%d carried)", ctx.offset, ctx.available, carry)
	return ctx.available, nil
}

func (ctx *Context) initCursor() {
	ctx.cursor = 0
	ctx.classify()
}

// moveCursor advances the cursor by one rune. It returns false if the
// cursor already is on the last available rune.
func (ctx *Context) moveCursor() bool {
	if ctx.cursor >= ctx.available-1 {
		return false
	}
	ctx.cursor++
	ctx.classify()
	return true
}

func (ctx *Context) classify() {
	ctx.class = ctx.config.Classifier.Classify(ctx.buf[ctx.cursor])
}

// markDone records that every rune up to and including the cursor has
// been handed to the segmenters.
func (ctx *Context) markDone() {
	ctx.done = ctx.cursor + 1
}

// needRefill is true if the window is full, the cursor has entered the
// last Threshold runes without reaching the last one, and nobody holds a
// lock.
func (ctx *Context) needRefill() bool {
	return ctx.available == len(ctx.buf) &&
		ctx.cursor < ctx.available-1 &&
		ctx.cursor > ctx.available-ctx.config.Threshold &&
		!ctx.IsLocked()
}

// --- letterseg.Context -----------------------------------------------------

// Cursor returns the cursor position within the window.
func (ctx *Context) Cursor() int { return ctx.cursor }

// CurrentChar returns the rune under the cursor.
func (ctx *Context) CurrentChar() rune { return ctx.buf[ctx.cursor] }

// CurrentClass returns the character class of the rune under the cursor.
func (ctx *Context) CurrentClass() letterseg.CharClass { return ctx.class }

// BufferConsumed is true if the cursor is on the last available rune.
func (ctx *Context) BufferConsumed() bool { return ctx.cursor == ctx.available-1 }

// BufferOffset returns the absolute offset of window position 0.
func (ctx *Context) BufferOffset() int { return ctx.offset }

// Text returns the runes of the window in [from, to). The result aliases
// the window and is valid until the next refill.
func (ctx *Context) Text(from, to int) []rune {
	assert(from >= 0 && from <= to && to <= ctx.available, "text range outside window")
	return ctx.buf[from:to]
}

// LockBuffer registers a lock held by segmenter.
func (ctx *Context) LockBuffer(segmenter string) {
	if _, held := ctx.locks[segmenter]; !held {
		tracer().Debugf("%s locks buffer at %d", segmenter, ctx.offset+ctx.cursor)
		ctx.locks[segmenter] = struct{}{}
	}
}

// UnlockBuffer releases a lock held by segmenter, if any.
func (ctx *Context) UnlockBuffer(segmenter string) {
	if _, held := ctx.locks[segmenter]; held {
		tracer().Debugf("%s unlocks buffer at %d", segmenter, ctx.offset+ctx.cursor)
		delete(ctx.locks, segmenter)
	}
}

// releaseLocks drops all locks. Segmenters are reset at the same time.
func (ctx *Context) releaseLocks() {
	if len(ctx.locks) > 0 {
		tracer().Infof("dropping %d stale buffer lock(s) at end of window", len(ctx.locks))
		clear(ctx.locks)
	}
}

// IsLocked is true if any segmenter holds a lock.
func (ctx *Context) IsLocked() bool { return len(ctx.locks) > 0 }

// AddToken records tok together with its text.
func (ctx *Context) AddToken(tok letterseg.Token) {
	from := tok.Start - ctx.offset
	assert(from >= 0 && from+tok.Length <= ctx.available, "token outside window")
	ctx.tokens.Add(Lexeme{
		Token: tok,
		Text:  string(ctx.buf[from : from+tok.Length]),
	})
}

// Flags returns the affix flags of the configuration.
func (ctx *Context) Flags() letterseg.Flags { return ctx.config.Flags }

// Tokens returns the token sink.
func (ctx *Context) Tokens() *TokenSet { return ctx.tokens }

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
