package letterseg

// arabicTracker recognizes runs of Arabic digits.
//
// Digit connectors keep a run open without moving its end: "12,345" is a
// single run, whereas the comma in "12, " is not part of the run "12".
// Runs longer than dealLength consisting of digits only are offered in
// prefix and suffix variants of 3…8 digits. Runs with an embedded connector
// get no variants.
type arabicTracker struct {
	run
}

func (t *arabicTracker) proceed(at position, ctx Context) bool {
	switch {
	case !t.active:
		if at.class == DigitClass {
			t.begin(at.pos)
		}
	case at.class == DigitClass:
		t.extend(at.pos)
	case at.class == IgnorableClass && IsDigitConnector(at.char):
		// run stays open, end stays on the last digit
	default:
		t.finish(ctx)
	}
	if at.last && t.active {
		t.finish(ctx)
	}
	return t.active
}

func (t *arabicTracker) finish(ctx Context) {
	emit(ctx, t.token(ctx.BufferOffset(), Arabic))
	if t.length() > dealLength && isNumeric(ctx.Text(t.start, t.end+1)) {
		flags := flagsOf(ctx)
		if flags.AllowArabicSuffix() {
			emitSuffixes(ctx, t.run, Arabic, arabicAffixMin, arabicAffixMax)
		}
		if flags.AllowArabicPrefix() {
			emitPrefixes(ctx, t.run, Arabic, arabicAffixMin, arabicAffixMax)
		}
	}
	t.clear()
}

func isNumeric(text []rune) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(text) > 0
}
