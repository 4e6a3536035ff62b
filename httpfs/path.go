package httpfs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath maps a raw request path onto an absolute file path under
// root. It percent-decodes the path, substitutes index.html for
// trailing slashes, joins relative to root, canonicalizes, and rejects
// anything that lands outside the root subtree.
//
// Errors: ErrBadPath for undecodable percent-encoding, ErrForbidden
// when the canonical path escapes root.
func ResolvePath(rawPath, root string) (string, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", ErrBadPath
	}
	if strings.HasSuffix(decoded, "/") {
		decoded += "index.html"
	}
	// Always joined as a relative segment, even when the request names
	// an absolute path or a drive letter.
	rel := strings.TrimLeft(decoded, "/")
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(absRoot, rel))
	if err != nil {
		return "", err
	}
	if !containedIn(abs, absRoot) {
		return "", ErrForbidden
	}
	return abs, nil
}

// containedIn reports whether abs is root itself or lies under it. The
// check is segment-aware so a sibling like /srv/www-secret does not
// pass for root /srv/www.
func containedIn(abs, root string) bool {
	if abs == root {
		return true
	}
	sep := string(os.PathSeparator)
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return strings.HasPrefix(abs, root)
}
