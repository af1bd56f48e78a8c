package scan

import (
	"io"
	"strings"

	"github.com/npillmayer/letterseg"
)

// Segmenter is a sub-segmenter driven by a Scanner.
type Segmenter interface {
	// Analyze consumes the character under the cursor of ctx.
	Analyze(ctx letterseg.Context)
	// Reset drops all unfinished state.
	Reset()
}

// Scanner drives segmenters over a text stream.
type Scanner struct {
	ctx        *Context
	segmenters []Segmenter
}

// NewScanner creates a scanner reading from r.
func NewScanner(r io.Reader, config Config, segmenters ...Segmenter) (*Scanner, error) {
	ctx, err := NewContext(r, config)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		ctx:        ctx,
		segmenters: segmenters,
	}, nil
}

// Scan runs the segmenters over the complete input and returns all
// candidate tokens, ordered by position.
func (s *Scanner) Scan() ([]Lexeme, error) {
	ctx := s.ctx
	for {
		available, err := ctx.fill()
		if err != nil {
			return nil, err
		}
		if available == 0 {
			break
		}
		ctx.initCursor()
		for {
			for _, seg := range s.segmenters {
				seg.Analyze(ctx)
			}
			if ctx.needRefill() {
				break
			}
			if !ctx.moveCursor() {
				break
			}
		}
		ctx.markDone()
		for _, seg := range s.segmenters {
			seg.Reset()
		}
		ctx.releaseLocks()
	}
	tracer().Infof("scanned %d runes, %d candidate tokens", ctx.offset, ctx.tokens.Len())
	return ctx.tokens.Lexemes(), nil
}

// Segment runs a letter segmenter over text.
func Segment(text string, dict letterseg.Dictionary, config Config) ([]Lexeme, error) {
	scanner, err := NewScanner(strings.NewReader(text), config, letterseg.New(dict))
	if err != nil {
		return nil, err
	}
	return scanner.Scan()
}
