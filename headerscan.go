package httpwire

import "github.com/intuitivelabs/bytescase"

// Header-block sub-states (spec.md §4.5). Shares Parser.status with the
// request-line sub-states in reqline.go.
const (
	stHeaderKey subState = iota + stBlockEnd + 1
	stHeaderValue
	stHeaderValStarts
	stHeaderEnd
)

// scanBetween is entered once per request at level BETWEEN, right after
// the request line. A CR means the header block is empty (a pipelined
// request whose next message opens with a blank line); anything else
// starts the first header row. Per spec.md §9's open question, the empty
// case is handled by handing off to BLOCK_END in the request-line level
// rather than inventing a BETWEEN-local terminal state.
func scanBetween(p *Parser, data []byte) scanResult {
	if p.i >= len(data) {
		return scanPending
	}
	if data[p.i] == '\r' {
		p.i++
		p.level = lvlRequestLine
		p.status = stBlockEnd
		return scanContinue
	}
	p.level = lvlHeaders
	p.status = stHeaderKey
	p.chars = -1
	return scanContinue
}

// scanHeaders runs the per-row header sub-machine until it either
// transitions to END_OF_HEADERS or exhausts the buffer.
func scanHeaders(p *Parser, data []byte) scanResult {
	n := len(data)
	for p.i < n {
		switch p.status {
		case stHeaderKey:
			p.chars++
			c := data[p.i]
			if c == '\r' {
				if p.chars == 0 {
					p.i++
					p.level = lvlEndOfHeaders
					return scanContinue
				}
				return p.fail(StatusBadRequest)
			}
			if p.chars == 0 {
				p.headerKey = p.i
				if min, max, ok := headerWindow(bytescase.ByteToLower(c)); ok {
					p.headerMin, p.headerMax = min, max
					p.headerHasWindow = true
				} else {
					p.headerHasWindow = false
				}
			}
			if c == ':' {
				p.headerSep = p.i
				if p.headerSep-p.headerKey < 1 {
					return p.fail(StatusBadRequest)
				}
				p.status = stHeaderValue
			}
			p.i++

		case stHeaderValue:
			c := data[p.i]
			if c == '\r' || c == '\n' {
				return p.fail(StatusBadRequest)
			}
			if c != ' ' {
				p.status = stHeaderValStarts
				p.headerVal = p.i
			}
			p.i++

		case stHeaderValStarts:
			c := data[p.i]
			switch c {
			case '\r':
				p.end = p.i
				if p.end-p.headerVal <= 0 {
					return p.fail(StatusBadRequest)
				}
				if st := classify(p, data); st != 0 {
					return p.fail(st)
				}
				p.status = stHeaderEnd
				p.i++
			case '\n':
				// bare LF: CR was never seen, so this is always malformed here
				return p.fail(StatusBadRequest)
			default:
				p.i++
			}

		case stHeaderEnd:
			if data[p.i] != '\n' {
				return p.fail(StatusBadRequest)
			}
			p.i++
			p.status = stHeaderKey
			p.chars = -1
		}
	}
	return scanPending
}

// scanEndOfHeaders expects the LF that completes the header-block
// terminator (the CR was consumed transitioning out of stHeaderKey).
func scanEndOfHeaders(p *Parser, data []byte) scanResult {
	if p.i >= len(data) {
		return scanPending
	}
	if data[p.i] != '\n' {
		return p.fail(StatusBadRequest)
	}
	p.i++
	p.level = lvlBody
	p.chars = -1
	return scanContinue
}

// scanBody accounts for Content-Length-delimited body bytes. It never
// decodes chunked transfer-encoding (spec.md §1 Non-goal): the caller is
// responsible for body framing once Complete is returned.
func scanBody(p *Parser, data []byte) scanResult {
	if p.contentLength == 0 {
		// No declared body: remaining bytes, if any, belong to the next
		// pipelined request and are left untouched.
		return scanDone
	}
	consumed := uint64(len(data) - p.i)
	p.bodyReceived += consumed
	p.i = len(data)
	if p.bodyReceived == p.contentLength {
		return scanDone
	}
	return scanPending
}
