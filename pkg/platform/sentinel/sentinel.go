package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and services translate them into domain errors:
//   - ErrNotFound: entity does not exist in the store
//   - ErrConflict: a uniqueness constraint was hit (e.g. second resident membership)
//   - ErrInvalidState: conditional update found the row in another state
//   - ErrUnavailable: backing service temporarily unavailable
//
// Validation failures never use these; see pkg/domain-errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
