package service

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	ErrUnknownNeighborhood = errors.New("service: unknown neighborhood")
	ErrUnknownPark         = errors.New("service: unknown park")
	ErrInvalidRange        = errors.New("service: min diameter exceeds max diameter")
)
