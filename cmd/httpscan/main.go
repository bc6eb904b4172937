// Command httpscan is a minimal example of driving a httpwire.Parser from
// a live connection: grow a buffer as bytes arrive, feed it to the
// parser, and shift consumed bytes off the front once a request
// completes so the buffer doesn't grow unbounded across a pipelined
// connection. It does not route, respond, or otherwise act on the
// parsed request — that's the caller's job per the parser's scope.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"net"

	"github.com/arcbyte/httpwire"
)

const initialBufSize = 4096

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "address to listen on")
	flag.Parse()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Printf("httpscan listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("accept: %v", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, initialBufSize)
	n := 0 // valid bytes in buf[0:n]
	var p httpwire.Parser
	p.Init(func(status httpwire.Status) {
		log.Printf("%s: parse failed, responding %d", conn.RemoteAddr(), status)
	})

	for {
		if n > 0 {
			switch p.Parse(buf, n) {
			case httpwire.Pending:
				// fall through to read more bytes
			case httpwire.Complete:
				logRequest(conn, &p, buf)
				consumed := p.Consumed()
				n = copy(buf, buf[consumed:n])
				p.Reset()
				continue // buf[0:n] may hold the next pipelined request already
			case httpwire.Error:
				// StatusSink already logged the status; nothing left to do
				// but close (response formatting is the caller's job).
				return
			}
		}

		if n == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf[:n])
			buf = grown
		}

		read, err := conn.Read(buf[n:])
		n += read
		if err != nil {
			if read > 0 {
				continue // give the parser a last look at what arrived with the error
			}
			if errors.Is(err, io.EOF) {
				return
			}
			log.Printf("%s: read: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

func logRequest(conn net.Conn, p *httpwire.Parser, buf []byte) {
	host, port, hasPort := p.Host()
	if hasPort {
		log.Printf("%s: %s %s (host=%s:%d)", conn.RemoteAddr(),
			p.Method(), p.URI().Get(buf), host.Get(buf), port)
	} else {
		log.Printf("%s: %s %s (host=%s)", conn.RemoteAddr(),
			p.Method(), p.URI().Get(buf), host.Get(buf))
	}
}
