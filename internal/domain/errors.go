package domain

import "errors"

var (
	ErrMalformedRecord    = errors.New("malformed site record")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidSiteKind    = errors.New("invalid site kind")
	ErrSystemNotFound     = errors.New("system not found")
	ErrQueryTooShort      = errors.New("search query too short")
)
