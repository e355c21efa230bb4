package domain

import dErrors "tradedesk/pkg/domain-errors"

// EntityType tags what a verification ledger entry points at. Ledger
// references are weak: the type is informational and never checked against
// the registry.
type EntityType string

const (
	EntityUser          EntityType = "user"
	EntityOrder         EntityType = "order"
	EntityTransaction   EntityType = "transaction"
	EntityFacility      EntityType = "facility"
	EntityDocument      EntityType = "document"
	EntityPartnerEntry  EntityType = "partner_entry"
	EntityAccessRequest EntityType = "access_request"
)

var validEntityTypes = map[EntityType]bool{
	EntityUser:          true,
	EntityOrder:         true,
	EntityTransaction:   true,
	EntityFacility:      true,
	EntityDocument:      true,
	EntityPartnerEntry:  true,
	EntityAccessRequest: true,
}

// ParseEntityType constructs an EntityType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseEntityType(s string) (EntityType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "entity type cannot be empty")
	}
	t := EntityType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid entity type")
	}
	return t, nil
}

func (t EntityType) IsValid() bool {
	return validEntityTypes[t]
}

func (t EntityType) String() string {
	return string(t)
}
