/*
Package dict provides dictionaries of known words for the letter segmenter.

A WordSet is compiled once from a stream of words into a frozen
double-array trie. A Trie is a mutable alternative for small, growing word
lists. Both answer exact-match lookups of lower-cased words and satisfy
letterseg.Dictionary.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letterseg.dict'
func tracer() tracing.Trace {
	return tracing.Select("letterseg.dict")
}
