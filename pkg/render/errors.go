package render

import "errors"

var (
	ErrDecodeFailure     = errors.New("decode failure")
	ErrToolUnavailable   = errors.New("external tool unavailable")
	ErrUnreadable        = errors.New("unreadable file")
	ErrRasterUnavailable = errors.New("rasterizer unavailable")
)
