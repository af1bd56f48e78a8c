/*
Package scan is a host scanner for segmenters like the one in package
letterseg.

A Scanner reads text into a fixed-size window of runes and moves a single
cursor over it, handing every position to all of its segmenters. Segmenters
which are in the middle of a token lock the window; as long as any lock is
held, the window is neither slid nor refilled. When the cursor comes close
to the end of a full window and no lock is held, the runes behind the cursor
are discarded and the window is refilled from the reader.

Tokens emitted by the segmenters are collected in a TokenSet, which
drops duplicate spans and returns the candidates ordered by position.

Typical usage:

	lexemes, err := scan.Segment("windows2000 rocks", words, scan.DefaultConfig())

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letterseg.scan'
func tracer() tracing.Trace {
	return tracing.Select("letterseg.scan")
}
