// Package httpfs provides a small, security-minded HTTP/1.1 static
// file server built directly on net, aimed at learning, control, and
// embeddability in tools.
//
// Highlights
//   - One GET request per connection, one response, Connection: close;
//     byte-exact framing with Date, Server, Content-Type and an exact
//     Content-Length.
//   - Traversal-safe path resolution: percent-decoding, index.html
//     default document, and segment-aware document-root containment.
//     Blocked paths answer 404 so existence is never disclosed.
//   - Goroutine per connection, header size limit, optional read/write
//     deadlines, graceful listener shutdown, logging/metrics hooks.
//
// Quick start:
//
//	s := &httpfs.Server{Addr: ":8080", Root: "./public"}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpfs
