package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServerUnreachable indicates the community API could not be reached
	ErrServerUnreachable = errors.New("community server is unreachable")

	// ErrUnauthorized indicates the session is missing or lacks permission
	ErrUnauthorized = errors.New("session is not authorized")

	// ErrMalformedPayload indicates a response body could not be mapped
	ErrMalformedPayload = errors.New("malformed response payload")

	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("invalid page")

	// ErrUnknownOption indicates a filter or order value outside its fixed set
	ErrUnknownOption = errors.New("unknown option")
)
