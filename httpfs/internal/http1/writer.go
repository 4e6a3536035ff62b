package http1

import (
	"bufio"
	"fmt"
	"time"
)

// httpDate is RFC 1123 with a literal GMT zone, as HTTP requires.
const httpDate = "Mon, 02 Jan 2006 15:04:05 GMT"

// Response carries everything needed to frame one HTTP/1.1 response.
// A zero Date means time.Now; an empty Reason selects the default
// reason phrase for the status code.
type Response struct {
	StatusCode  int
	Reason      string
	ContentType string
	Server      string
	Date        time.Time
	Body        []byte
}

// WriteResponse frames r onto bw: status line, then Date, Server,
// Content-Type, Content-Length and Connection: close in that order,
// a blank line, then the body bytes unmodified. Content-Length is
// always the exact byte length of Body.
func WriteResponse(bw *bufio.Writer, r *Response) error {
	reason := r.Reason
	if reason == "" {
		reason = defaultReason(r.StatusCode)
	}
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}
	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", r.StatusCode, reason); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Date: %s\r\n", date.UTC().Format(httpDate)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Server: %s\r\n", r.Server); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Content-Type: %s\r\n", r.ContentType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Content-Length: %d\r\n", len(r.Body)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(bw, "Connection: close\r\n\r\n"); err != nil {
		return err
	}
	if len(r.Body) > 0 {
		if _, err := bw.Write(r.Body); err != nil {
			return err
		}
	}
	return nil
}

func defaultReason(code int) string {
	switch code {
	case 200:
		return "OK"
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	default:
		return ""
	}
}
