package httpwire

// classify runs once a header row's value has been fully scanned
// (p.headerKey:p.headerSep is the name, p.headerVal:p.end is the value).
// It resolves the header name against the candidate window picked by its
// first byte, stores the value in the matching recognized slot, runs any
// header-specific semantic extraction, and otherwise files the row into
// the bounded extras array. Returns a non-zero Status only when a
// recognized header's value is malformed badly enough to fail the whole
// request (spec.md §4.1/§4.6).
func classify(p *Parser, data []byte) Status {
	name := data[p.headerKey:p.headerSep]
	value := data[p.headerVal:p.end]

	if p.headerHasWindow {
		for id := p.headerMin; id <= p.headerMax; id++ {
			if equalFold(name, headerTable[id].name) {
				p.slots[id].Key.Set(p.headerKey, p.headerSep)
				p.slots[id].Value.Set(p.headerVal, p.end)
				return classifySemantic(p, id, value)
			}
		}
	}

	if p.extrasLen < len(p.extras) {
		var slot HeaderSlot
		slot.Key.Set(p.headerKey, p.headerSep)
		slot.Value.Set(p.headerVal, p.end)
		p.extras[p.extrasLen] = slot
		p.extrasLen++
	}
	// extras array full: the header is silently dropped (spec.md §4.2).
	return 0
}

// classifySemantic extracts the per-header derived values the rest of
// the package exposes through Parser accessors.
func classifySemantic(p *Parser, id HeaderID, value []byte) Status {
	switch id {
	case HeaderHost:
		return classifyHost(p, value)
	case HeaderContentLength:
		return classifyContentLength(p, value)
	case HeaderConnection:
		classifyConnection(p, value)
	}
	return 0
}

// classifyHost splits "host[:port]" by scanning from the right, since an
// IPv6 literal host may itself contain colons (only the last one can be
// the port separator).
func classifyHost(p *Parser, value []byte) Status {
	p.hostField.Set(p.headerVal, p.end)
	p.hostPort = 0
	p.hostHasPort = false

	c := reverseIndexByte(value, ':')
	if c < 0 {
		return 0
	}
	portBytes := value[c+1:]
	if len(portBytes) == 0 {
		return 0
	}
	if len(portBytes) > 5 {
		return StatusBadRequest
	}
	port, overflow, ok := parseUint(portBytes)
	if !ok || overflow || port > 65535 {
		return StatusBadRequest
	}
	p.hostField.Set(p.headerVal, p.headerVal+c)
	p.hostPort = int(port)
	p.hostHasPort = true
	return 0
}

// classifyContentLength decodes a decimal byte count. A value that
// overflows is rejected outright with 413, matching the teacher's
// treatment of an unparsable Content-Length as "body too large to
// reason about" rather than a generic bad request.
func classifyContentLength(p *Parser, value []byte) Status {
	n, overflow, ok := parseUint(value)
	if overflow {
		return StatusPayloadTooLarge
	}
	if !ok {
		return StatusBadRequest
	}
	p.contentLength = n
	p.hasCL = true
	return 0
}

var (
	connKeepAlive = []byte("keep-alive")
	connClose     = []byte("close")
)

// classifyConnection matches the two values spec.md defines exact
// case-insensitive semantics for; anything else is ConnectionUnknown,
// not an error (spec.md §4.1 Non-goal: no generic case-insensitive
// matching beyond this header).
func classifyConnection(p *Parser, value []byte) {
	switch {
	case equalFold(value, connKeepAlive):
		p.connection = ConnectionKeepAlive
	case equalFold(value, connClose):
		p.connection = ConnectionClose
	default:
		p.connection = ConnectionUnknown
	}
}
