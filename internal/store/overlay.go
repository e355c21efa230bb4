package store

import (
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

// UserDetails resolves the detail bundle for a user. Runtime entries win over
// the seed bundle; the first runtime write copies the seed bundle, so later
// lookups see seed and runtime entries together. Unknown ids resolve to an
// empty bundle.
func UserDetails(s State, userID id.UserID) models.UserDetails {
	if d, ok := s.details[userID]; ok {
		return d.Clone()
	}
	if d, ok := s.detailSeeds[userID]; ok {
		return d.Clone()
	}
	return models.EmptyUserDetails()
}

// HasRuntimeDetails reports whether anything was written to the user's bundle
// during this session.
func HasRuntimeDetails(s State, userID id.UserID) bool {
	_, ok := s.details[userID]
	return ok
}

// editDetails materializes the user's runtime bundle, applies edit to a
// private copy and stores the result.
func (r *Reducer) editDetails(s State, userID id.UserID, edit func(*models.UserDetails) error) (State, error) {
	if !s.Users.Has(userID) {
		return s, dangling("user", userID)
	}
	d := UserDetails(s, userID)
	if err := edit(&d); err != nil {
		return s, err
	}
	return s.withDetails(userID, d), nil
}
