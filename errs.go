package sbml

import "errors"

var (
	ErrLoad             = errors.New("load error")
	ErrAbsentChild      = errors.New("absent child")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrBadAttribute     = errors.New("malformed attribute value")

	ErrInvalidSId      = errors.New("invalid SId")
	ErrInvalidMetaId   = errors.New("invalid metaid")
	ErrInvalidSboTerm  = errors.New("invalid sboTerm")
	ErrInvalidUnitKind = errors.New("invalid unit kind")
)
