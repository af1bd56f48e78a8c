package letterseg

// mixedTracker recognizes runs of letters and digits, possibly joined by
// letter connectors: "windows2000", "linliangyi2005@gmail.com".
//
// A connector moves the end of the run, so a trailing connector is part of
// the emitted token ("c++" is one token, and so is "abc." before a blank).
type mixedTracker struct {
	run
}

func (t *mixedTracker) proceed(at position, ctx Context) bool {
	alnum := at.class == LetterClass || at.class == DigitClass
	switch {
	case !t.active:
		if alnum {
			t.begin(at.pos)
		}
	case alnum:
		t.extend(at.pos)
	case at.class == IgnorableClass && IsLetterConnector(at.char):
		t.extend(at.pos)
	default:
		t.finish(ctx)
	}
	if at.last && t.active {
		t.finish(ctx)
	}
	return t.active
}

func (t *mixedTracker) finish(ctx Context) {
	emit(ctx, t.token(ctx.BufferOffset(), Letter))
	t.clear()
}
