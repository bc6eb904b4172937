// Package httpwire implements an incremental, zero-copy parser for
// HTTP/1.x request messages.
//
// A Parser is bound to a single in-flight request. The caller feeds it
// a buffer and the number of valid bytes in that buffer; the parser
// resumes scanning where it left off and reports Complete, Pending (more
// bytes needed) or Error. Every parsed field is an offset+length Field
// into the caller's buffer — the parser never copies or retains bytes
// of its own, and it never rescans bytes already consumed.
//
// This package parses only: socket I/O, TLS, routing, response
// generation and the event loop are the caller's job.
package httpwire
