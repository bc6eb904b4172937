package httpwire

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method is the numeric code for a recognized HTTP request method.
type Method uint8

// Recognized methods, in the order spec'd: GET, POST, HEAD, PUT, DELETE,
// OPTIONS. MethodUnknown is the sentinel for anything else.
const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
	MethodHead
	MethodPut
	MethodDelete
	MethodOptions
	methodCount // must be last
)

var method2Name = [methodCount][]byte{
	MethodUnknown: []byte(""),
	MethodGet:     []byte("GET"),
	MethodPost:    []byte("POST"),
	MethodHead:    []byte("HEAD"),
	MethodPut:     []byte("PUT"),
	MethodDelete:  []byte("DELETE"),
	MethodOptions: []byte("OPTIONS"),
}

// Name returns the ASCII spelling of m, or "" for MethodUnknown.
func (m Method) Name() []byte {
	if m >= methodCount {
		return method2Name[MethodUnknown]
	}
	return method2Name[m]
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m.Name())
}

type methodEntry struct {
	n []byte
	m Method
}

// first-byte+length hash bucketing, same shape as the teacher's
// hashMthName/mthNameLookup: keeps the per-method comparison to a single
// bucket instead of a 6-way linear scan.
const (
	methodBitsLen   uint = 2
	methodBitsFChar uint = 3
)

var methodLookup [1 << (methodBitsLen + methodBitsFChar)][]methodEntry

func hashMethodName(n []byte) int {
	const (
		mC = (1 << methodBitsFChar) - 1
		mL = (1 << methodBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << methodBitsFChar)
}

func init() {
	for m := MethodGet; m < methodCount; m++ {
		h := hashMethodName(method2Name[m])
		methodLookup[h] = append(methodLookup[h], methodEntry{method2Name[m], m})
	}
}

// lookupMethod resolves the ASCII method token b to its numeric code.
// b must be exactly the method bytes (no surrounding whitespace).
func lookupMethod(b []byte) Method {
	if len(b) == 0 {
		return MethodUnknown
	}
	i := hashMethodName(b)
	for _, e := range methodLookup[i] {
		if bytes.Equal(b, e.n) {
			return e.m
		}
	}
	return MethodUnknown
}
