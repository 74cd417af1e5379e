// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

var (
	// ErrUnavailable indicates the upstream table could not be fetched.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrBadPayload indicates the upstream response was not a record array.
	ErrBadPayload = errors.New("malformed upstream payload")
	// ErrBadFacet indicates a facet value outside the accepted vocabulary.
	ErrBadFacet = errors.New("invalid facet")
)
