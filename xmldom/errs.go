package xmldom

import "errors"

var (
	ErrParse    = errors.New("xml parse error")
	ErrEncoding = errors.New("unsupported encoding")
	ErrAttached = errors.New("element already attached")
	ErrDetached = errors.New("element not attached")
	ErrNoChild  = errors.New("no such child")
)
