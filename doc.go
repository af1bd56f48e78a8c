/*
Package letterseg implements the letter and digit branch of a multi-strategy
tokenizer.

A host scanner moves a single cursor over a rolling character buffer and
hands every position to a set of sub-segmenters, one per character family.
The segmenter in this package recognizes runs of Latin letters, runs of
Arabic digits and mixed letter/digit sequences such as

	windows2000 | linliangyi2005@gmail.com | 1.2.3-rc1

and emits candidate tokens for them. Long letter and digit runs are
additionally cracked into short prefix and suffix variants, so that a later
ranking pass may pick the best segmentation with the help of a dictionary.

Three recognizers run side by side on the same cursor:

	mixed    letters, digits and letter connectors (# & + - . @ _)
	english  letters only
	arabic   digits, tolerating digit connectors (, .)

While any of them is in the middle of a run, the segmenter asks the host to
keep the buffer in place. This is a cooperative signal, not a mutex: a
segmenter session is always processed by exactly one goroutine.

Reference implementations of the collaborators live in sub-packages:
package dict provides dictionaries, package wordlist reads word lists, and
package scan implements a host scanner with a rolling buffer.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package letterseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letterseg'
func tracer() tracing.Trace {
	return tracing.Select("letterseg")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
