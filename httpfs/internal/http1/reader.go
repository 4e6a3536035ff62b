package http1

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// ParsedRequest is the request line parsed from the wire. Header lines
// past the first are consumed into the buffer but never interpreted.
type ParsedRequest struct {
	Method     string
	RequestURI string
	Proto      string
}

var (
	ErrMalformedRequest = errors.New("http1: malformed request line")
	ErrHeaderTooLarge   = errors.New("http1: header block too large")
)

type Reader struct {
	BR             *bufio.Reader
	MaxHeaderBytes int
}

var headerEnd = []byte("\r\n\r\n")

// ReadRequest accumulates bytes until the header terminator or peer
// EOF, then parses the first line. io.EOF is returned when the peer
// closed without sending anything; ErrMalformedRequest when the first
// line does not split into exactly three tokens.
func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	raw, err := r.readHeaderBlock()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, io.EOF
	}
	line := string(raw)
	if i := strings.Index(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, ErrMalformedRequest
	}
	return &ParsedRequest{Method: parts[0], RequestURI: parts[1], Proto: parts[2]}, nil
}

func (r *Reader) readHeaderBlock() ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 1024)
	for {
		n, err := r.BR.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if bytes.Contains(buf, headerEnd) {
			return buf, nil
		}
		if r.MaxHeaderBytes > 0 && len(buf) > r.MaxHeaderBytes {
			return nil, ErrHeaderTooLarge
		}
		if err != nil {
			if err == io.EOF {
				// Whatever arrived before the close still gets parsed.
				return buf, nil
			}
			return nil, err
		}
	}
}
