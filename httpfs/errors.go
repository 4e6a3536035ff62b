package httpfs

import "errors"

var (
	ErrBadPath   = errors.New("httpfs: malformed percent-encoding in path")
	ErrForbidden = errors.New("httpfs: path escapes document root")
	ErrNotFound  = errors.New("httpfs: file not found")
)
