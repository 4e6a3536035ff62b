package httpfs

import "strings"

// DefaultContentType is served when a file's extension is missing or
// not in the table.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"html": "text/html",
	"htm":  "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"json": "application/json",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"txt":  "text/plain",
}

// ContentTypeFor maps the extension of the path's final segment to a
// content type. The lookup is case-insensitive.
func ContentTypeFor(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return DefaultContentType
	}
	if t, ok := contentTypes[strings.ToLower(base[i+1:])]; ok {
		return t
	}
	return DefaultContentType
}
