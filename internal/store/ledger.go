package store

import (
	"slices"

	"tradedesk/internal/store/models"
)

// LedgerForEntity returns the verification entries recorded against
// entityID, across every entity type and kind, most recent first. Entries
// with the same timestamp come back in reverse append order. limit <= 0
// returns everything.
func LedgerForEntity(s State, entityID string, limit int) []models.VerificationLogEntry {
	var out []models.VerificationLogEntry
	// walking backwards gives reverse append order; the stable sort keeps it
	// for equal timestamps
	for i := len(s.ledger) - 1; i >= 0; i-- {
		if s.ledger[i].EntityID == entityID {
			out = append(out, s.ledger[i].Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b models.VerificationLogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		return []models.VerificationLogEntry{}
	}
	return out
}

// LatestVerification returns the most recent entry of the given kind for
// entityID.
func LatestVerification(s State, entityID string, kind models.VerificationKind) (models.VerificationLogEntry, bool) {
	for _, e := range LedgerForEntity(s, entityID, 0) {
		if e.Kind == kind {
			return e, true
		}
	}
	return models.VerificationLogEntry{}, false
}
