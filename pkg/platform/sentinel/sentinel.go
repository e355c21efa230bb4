package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The store and its collaborators
// return coded errors from pkg/domain-errors that also match these via errors.Is,
// so callers that only care about the fact can stay code-agnostic.
//
// - ErrNotFound: no entity with the requested id
// - ErrConflict: id already taken, or a stale expected version
// - ErrInvalidState: entity in wrong state for the requested transition
// - ErrUnsupported: action kind the reducer does not handle
// - ErrUnavailable: downstream sink temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnsupported  = errors.New("unsupported")
	ErrUnavailable  = errors.New("unavailable")
)
