package httpwire

import (
	"github.com/intuitivelabs/bytescase"
)

// offT is the type used for offsets and lengths inside Field. uint32 is
// ample for any buffer size a single connection is expected to grow to.
type offT = uint32

// Field is a zero-copy view into a caller-owned buffer: an offset and a
// length, never the bytes themselves.
type Field struct {
	Offs offT
	Len  offT
}

// Set points f at buf[start:end). end marks the first byte past the field.
func (f *Field) Set(start, end int) {
	f.Offs = offT(start)
	f.Len = offT(end - start)
	if end < start {
		panic("httpwire: invalid field range")
	}
}

// Reset clears f back to the empty field.
func (f *Field) Reset() {
	f.Offs = 0
	f.Len = 0
}

// Extend grows f so it ends at newEnd, keeping its current start.
func (f *Field) Extend(newEnd int) {
	f.Len = offT(newEnd) - f.Offs
	if newEnd < int(f.Offs) {
		panic("httpwire: invalid field end")
	}
}

// Empty reports whether f has zero length.
func (f Field) Empty() bool {
	return f.Len == 0
}

// EndOffs returns the offset one past the last byte of f.
func (f Field) EndOffs() int {
	return int(f.Offs) + int(f.Len)
}

// Get returns the bytes of f inside buf.
func (f Field) Get(buf []byte) []byte {
	return buf[f.Offs : f.Offs+f.Len]
}

// reverseIndexByte scans b from the end for c and returns its index, or
// -1 if not found. Used to locate the last ':' in a Host header value
// (the port separator may not be the first colon in an IPv6 literal).
func reverseIndexByte(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// equalFold reports whether b equals lower, case-insensitively. Thin
// wrapper over bytescase.CmpEq, the same ASCII case-fold compare the
// teacher uses for its header/token matching (parse_headers.go,
// parse_tr_enc.go).
func equalFold(b []byte, lower []byte) bool {
	return bytescase.CmpEq(b, lower)
}

// parseUint parses a non-negative decimal integer from b. It rejects an
// empty slice, any non-digit byte, and overflow of a uint64 accumulator.
func parseUint(b []byte) (val uint64, overflow bool, ok bool) {
	if len(b) == 0 {
		return 0, false, false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false, false
		}
		d := uint64(c - '0')
		if val > (^uint64(0)-d)/10 {
			return 0, true, false
		}
		val = val*10 + d
	}
	return val, false, true
}
