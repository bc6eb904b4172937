package httpwire

// HeaderID is the numeric code for a recognized header, used as an index
// into Parser's fixed headers array.
type HeaderID uint8

// Recognized headers, in the canonical table order (spec.md §4.1): the
// order a contiguous first-letter window is built against.
const (
	HeaderAccept HeaderID = iota
	HeaderAcceptCharset
	HeaderAcceptEncoding
	HeaderAcceptLanguage
	HeaderAuthorization
	HeaderCookie
	HeaderConnection
	HeaderContentLength
	HeaderContentRange
	HeaderContentType
	HeaderIfModifiedSince
	HeaderHost
	HeaderLastModified
	HeaderLastModifiedSince
	HeaderReferer
	HeaderRange
	HeaderUserAgent
	headerCount // must be last
)

type headerEntry struct {
	name []byte // lowercase spelling, including first byte
}

// headerTable is the 17-entry recognized-header table, grouped by first
// letter so [headerMin,headerMax] below selects a contiguous window.
var headerTable = [headerCount]headerEntry{
	HeaderAccept:            {[]byte("accept")},
	HeaderAcceptCharset:     {[]byte("accept-charset")},
	HeaderAcceptEncoding:    {[]byte("accept-encoding")},
	HeaderAcceptLanguage:    {[]byte("accept-language")},
	HeaderAuthorization:     {[]byte("authorization")},
	HeaderCookie:            {[]byte("cookie")},
	HeaderConnection:        {[]byte("connection")},
	HeaderContentLength:     {[]byte("content-length")},
	HeaderContentRange:      {[]byte("content-range")},
	HeaderContentType:       {[]byte("content-type")},
	HeaderIfModifiedSince:   {[]byte("if-modified-since")},
	HeaderHost:              {[]byte("host")},
	HeaderLastModified:      {[]byte("last-modified")},
	HeaderLastModifiedSince: {[]byte("last-modified-since")},
	HeaderReferer:           {[]byte("referer")},
	HeaderRange:             {[]byte("range")},
	HeaderUserAgent:         {[]byte("user-agent")},
}

// headerWindow returns the inclusive [min,max] candidate range in
// headerTable for a header name starting with the (already lower-cased)
// byte c, or ok=false if no recognized header starts with that letter.
func headerWindow(c byte) (min, max HeaderID, ok bool) {
	switch c {
	case 'a':
		return HeaderAccept, HeaderAuthorization, true
	case 'c':
		return HeaderCookie, HeaderContentType, true
	case 'h':
		return HeaderHost, HeaderHost, true
	case 'i':
		return HeaderIfModifiedSince, HeaderIfModifiedSince, true
	case 'l':
		return HeaderLastModified, HeaderLastModifiedSince, true
	case 'r':
		return HeaderReferer, HeaderRange, true
	case 'u':
		return HeaderUserAgent, HeaderUserAgent, true
	}
	return 0, 0, false
}
