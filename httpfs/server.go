package httpfs

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"dqx0.com/go/webserve/httpfs/internal/http1"
	"dqx0.com/go/webserve/internal/obs"
)

// DefaultServerID is the Server response header value unless
// Server.ServerID overrides it.
const DefaultServerID = "httpfs/1.0"

// Server serves files from Root over HTTP/1.1: one GET request per
// connection, one response, then Connection: close. Root must be set;
// it is read-only after startup and safely shared by all handlers.
type Server struct {
	Addr string
	Root string

	// ServerID overrides the Server response header value.
	ServerID string

	// ReadHeaderTimeout bounds reading the request header block and
	// WriteTimeout bounds writing the response. Zero means no deadline,
	// which matches the historical behavior of serving without
	// timeouts.
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration

	// MaxHeaderBytes caps the accumulated header block. Values <= 0
	// select the 8 KiB default.
	MaxHeaderBytes int

	// Logger and Meter are optional observability hooks; nil means
	// no-op.
	Logger obs.Logger
	Meter  obs.Meter

	mu         sync.Mutex
	ln         net.Listener
	inShutdown atomic.Bool
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l and dispatches each to its own
// goroutine; the loop never blocks on handler work. Accept errors
// other than listener closure are logged and the loop keeps
// accepting. Serve returns nil after Shutdown closes the listener.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.ln = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			if s.inShutdown.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logf(obs.Warn, "accept: %v", err)
			continue
		}
		s.logf(obs.Debug, "accepted connection from %s", c.RemoteAddr())
		go s.serveConn(c)
	}
}

// Shutdown stops accepting new connections and closes the listener.
// Handlers already dispatched run to completion and are not waited on.
// The context is accepted for call-site symmetry and not consulted.
func (s *Server) Shutdown(context.Context) error {
	s.inShutdown.Store(true)
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	return ln.Close()
}

// serveConn owns one accepted connection: read the header block, parse
// the request line, build and write exactly one response, close. The
// socket closes on every exit path via the deferred Close.
func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	start := time.Now()
	if s.ReadHeaderTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadHeaderTimeout))
	}
	rr := &http1.Reader{BR: bufio.NewReader(c), MaxHeaderBytes: s.headerLimit()}
	req, err := rr.ReadRequest()
	if err != nil {
		// Unreadable and malformed requests get no response at all;
		// the connection just closes.
		if err != io.EOF {
			s.logf(obs.Debug, "read %s: %v", c.RemoteAddr(), err)
			s.meter().Counter("httpfs.requests.dropped", 1, obs.Label{Key: "reason", Value: "unreadable"})
		}
		return
	}
	if req.Method != "GET" {
		s.logf(obs.Debug, "drop %s: method %q", c.RemoteAddr(), req.Method)
		s.meter().Counter("httpfs.requests.dropped", 1, obs.Label{Key: "reason", Value: "method"})
		return
	}

	resp := s.buildResponse(req.RequestURI)
	resp.Server = s.serverID()

	if s.WriteTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
	}
	bw := bufio.NewWriter(c)
	if err := http1.WriteResponse(bw, resp); err == nil {
		err = bw.Flush()
	}
	if err != nil {
		s.logf(obs.Warn, "write %s: %v", c.RemoteAddr(), err)
		return
	}
	s.meter().Counter("httpfs.responses", 1, obs.Label{Key: "status", Value: strconv.Itoa(resp.StatusCode)})
	s.meter().Histogram("httpfs.request_ms", float64(time.Since(start).Milliseconds()))
}

var (
	bodyBadRequest = []byte("<h1>400 Bad Request</h1>")
	bodyNotFound   = []byte("<h1>404 Not Found</h1>")
	bodyForbidden  = []byte("<h1>404 Not Found (Security Violation)</h1>")
)

// buildResponse runs resolve -> load -> mime for one request path.
// Forbidden paths surface as 404, not 403, so probes cannot tell a
// blocked path from a missing one.
func (s *Server) buildResponse(rawURI string) *http1.Response {
	target, err := ResolvePath(rawURI, s.Root)
	switch {
	case errors.Is(err, ErrBadPath):
		return errorResponse(400, bodyBadRequest)
	case errors.Is(err, ErrForbidden):
		s.logf(obs.Warn, "forbidden path %q", rawURI)
		return errorResponse(404, bodyForbidden)
	case err != nil:
		s.logf(obs.Warn, "resolve %q: %v", rawURI, err)
		return errorResponse(404, bodyNotFound)
	}
	body, err := LoadFile(target)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logf(obs.Warn, "load %s: %v", target, err)
		}
		return errorResponse(404, bodyNotFound)
	}
	return &http1.Response{StatusCode: 200, ContentType: ContentTypeFor(target), Body: body}
}

func errorResponse(status int, body []byte) *http1.Response {
	return &http1.Response{StatusCode: status, ContentType: "text/html", Body: body}
}

func (s *Server) headerLimit() int {
	if s.MaxHeaderBytes <= 0 {
		return 8 << 10
	}
	return s.MaxHeaderBytes
}

func (s *Server) serverID() string {
	if s.ServerID != "" {
		return s.ServerID
	}
	return DefaultServerID
}

func (s *Server) logf(lv obs.Level, format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Logf(lv, format, args...)
	}
}

func (s *Server) meter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}
