package httpwire

import "bytes"

// Request-line sub-states (spec.md §4.4). Shares the Parser.status field
// with the header-block scanner's sub-states (headerscan.go); the two
// never overlap because level picks which set applies.
const (
	stMethod subState = iota
	stTarget
	stQuery
	stVersion
	stFirstFinalize
	stBlockEnd
)

var httpVersionPrefix = []byte("HTTP/1.")

// scanRequestLine advances through METHOD, TARGET, optional QUERY and
// VERSION, resuming from p.i/p.status. It mutates p in place and reports
// what the session driver (parser.go) should do next.
func scanRequestLine(p *Parser, data []byte) scanResult {
	i := p.i
	n := len(data)
	for i < n {
		switch p.status {
		case stMethod:
			if data[i] != ' ' {
				i++
				continue
			}
			p.end = i
			if p.end-p.start < 2 {
				return p.fail(StatusBadRequest)
			}
			p.methodField.Set(p.start, p.end)
			p.method = lookupMethod(p.methodField.Get(data))
			p.status = stTarget
			p.start = i + 1
			i = p.start

		case stTarget:
			switch data[i] {
			case ' ':
				p.end = i
				if p.end-p.start < 1 {
					return p.fail(StatusBadRequest)
				}
				p.uriField.Set(p.start, p.end)
				p.status = stVersion
				p.start = i + 1
				i = p.start
			case '?':
				p.end = i
				if p.end-p.start < 1 {
					return p.fail(StatusBadRequest)
				}
				p.uriField.Set(p.start, p.end)
				p.status = stQuery
				p.start = i + 1
				i = p.start
			case '\r', '\n':
				return p.fail(StatusBadRequest)
			default:
				i++
			}

		case stQuery:
			switch data[i] {
			case ' ':
				p.end = i
				p.queryField.Set(p.start, p.end)
				p.hasQuery = true
				p.status = stVersion
				p.start = i + 1
				i = p.start
			case '\r', '\n':
				return p.fail(StatusBadRequest)
			default:
				i++
			}

		case stVersion:
			if data[i] != '\r' {
				i++
				continue
			}
			p.end = i
			if p.end-p.start != 8 {
				return p.fail(StatusHTTPVersionNotSupported)
			}
			p.versionField.Set(p.start, p.end)
			v := p.versionField.Get(data)
			if !bytes.HasPrefix(v, httpVersionPrefix) {
				return p.fail(StatusHTTPVersionNotSupported)
			}
			switch v[7] {
			case '1':
				p.protocol = ProtocolHTTP11
			case '0':
				p.protocol = ProtocolHTTP10
			default:
				// unknown minor digit: deferred to finalization (spec.md §4.4/§9)
				p.protocol = ProtocolUnknown
			}
			p.status = stFirstFinalize
			p.start = i + 1
			i = p.start

		case stFirstFinalize:
			if data[i] != '\n' {
				return p.fail(StatusBadRequest)
			}
			p.i = i + 1
			p.level = lvlBetween
			return scanContinue

		case stBlockEnd:
			if data[i] != '\n' {
				return p.fail(StatusBadRequest)
			}
			p.i = i + 1
			return scanDone
		}
	}
	p.i = i
	if p.status == stMethod && p.i > 10 {
		// unrealistic method length: promote pending to error (spec.md §4.6)
		return p.fail(StatusBadRequest)
	}
	return scanPending
}
