package httpwire

import (
	"math/rand"

	"github.com/intuitivelabs/bytescase"
)

// randCase returns s with each byte's case randomly flipped, used to
// exercise the case-insensitive header/Connection-value matching paths.
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			r[i] = bytescase.ByteToLower(b)
		case 1:
			r[i] = bytescase.ByteToUpper(b)
		default:
			r[i] = b
		}
	}
	return string(r)
}

// feedFragmented drives p.Parse with buf split at a number of random
// points (up to n pieces). If a prefix shorter than the full buffer
// yields anything other than Pending, that verdict is returned at once;
// otherwise it returns the final Verdict. Either way the caller
// checks against the non-fragmented expectation (spec.md §8 property 1).
func feedFragmented(p *Parser, buf []byte, n int) Verdict {
	pieces := rand.Intn(n)
	end := 0
	for i := 0; i < pieces; i++ {
		grow := rand.Intn(len(buf)+1-end) + end
		if grow >= len(buf) {
			break
		}
		end = grow
		if v := p.Parse(buf, end); v != Pending {
			return v
		}
	}
	return p.Parse(buf, len(buf))
}
