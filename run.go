package letterseg

// run is the state every tracker carries: either idle, or active with a
// start and an end position relative to the current buffer.
// start and end are meaningless while the run is idle.
type run struct {
	active bool
	start  int
	end    int
}

func (r *run) begin(pos int) {
	r.active, r.start, r.end = true, pos, pos
}

func (r *run) extend(pos int) {
	assert(r.active, "extend on idle run")
	assert(pos >= r.end, "run may not shrink")
	r.end = pos
}

func (r *run) clear() {
	*r = run{}
}

func (r run) length() int {
	return r.end - r.start + 1
}

// token converts an active run to a token with absolute offsets.
func (r run) token(base int, kind Kind) Token {
	assert(r.active, "token from idle run")
	assert(r.start >= 0 && r.start <= r.end, "inconsistent run boundaries")
	return Token{Start: base + r.start, Length: r.length(), Kind: kind}
}
