package letterseg

import "golang.org/x/text/cases"

// englishTracker recognizes runs of Latin letters.
//
// Runs longer than dealLength are offered in shorter variants as well:
// suffixes of 3…6 letters and, for runs the dictionary does not know,
// prefixes of 3…6 letters. An identifier like "getusername" thus yields
// candidates such as "get" and "name", which a ranking pass may validate
// against the dictionary.
type englishTracker struct {
	run
	dict  Dictionary
	lower cases.Caser
}

func (t *englishTracker) proceed(at position, ctx Context) bool {
	switch {
	case !t.active:
		if at.class == LetterClass {
			t.begin(at.pos)
		}
	case at.class == LetterClass:
		t.extend(at.pos)
	default:
		t.finish(ctx)
	}
	if at.last && t.active {
		t.finish(ctx)
	}
	return t.active
}

func (t *englishTracker) finish(ctx Context) {
	emit(ctx, t.token(ctx.BufferOffset(), English))
	if t.length() > dealLength {
		flags := flagsOf(ctx)
		if flags.AllowEnglishSuffix() {
			emitSuffixes(ctx, t.run, English, englishAffixMin, englishAffixMax)
		}
		if flags.AllowEnglishPrefix() && !t.isWord(ctx) {
			emitPrefixes(ctx, t.run, English, englishAffixMin, englishAffixMax)
		}
	}
	t.clear()
}

// isWord looks up the lower-cased run in the dictionary.
func (t *englishTracker) isWord(ctx Context) bool {
	if t.dict == nil {
		return false
	}
	word := t.lower.String(string(ctx.Text(t.start, t.end+1)))
	hit := t.dict.Matches(word)
	tracer().Debugf("dictionary lookup %q: %v", word, hit)
	return hit
}
