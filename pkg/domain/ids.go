// Package domain holds the identifier and value primitives shared by every
// layer of the dashboard. Identifiers are opaque strings; each entity kind gets
// its own named type so a user id cannot be passed where an order id is expected.
package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	dErrors "tradedesk/pkg/domain-errors"
)

const maxIDLength = 128

type (
	UserID          string
	OrderID         string
	TransactionID   string
	FacilityID      string
	PaymentMethodID string
	EnquiryID       string
	PartnerEntryID  string
	AccessRequestID string
	VerificationID  string
	// RequestID identifies an item inside a per-user detail bundle
	// (video call, document request, incident, ...).
	RequestID string
)

func (id UserID) String() string          { return string(id) }
func (id OrderID) String() string         { return string(id) }
func (id TransactionID) String() string   { return string(id) }
func (id FacilityID) String() string      { return string(id) }
func (id PaymentMethodID) String() string { return string(id) }
func (id EnquiryID) String() string       { return string(id) }
func (id PartnerEntryID) String() string  { return string(id) }
func (id AccessRequestID) String() string { return string(id) }
func (id VerificationID) String() string  { return string(id) }
func (id RequestID) String() string       { return string(id) }

func (id UserID) IsZero() bool          { return id == "" }
func (id OrderID) IsZero() bool         { return id == "" }
func (id TransactionID) IsZero() bool   { return id == "" }
func (id FacilityID) IsZero() bool      { return id == "" }
func (id PaymentMethodID) IsZero() bool { return id == "" }
func (id EnquiryID) IsZero() bool       { return id == "" }
func (id PartnerEntryID) IsZero() bool  { return id == "" }
func (id AccessRequestID) IsZero() bool { return id == "" }
func (id VerificationID) IsZero() bool  { return id == "" }
func (id RequestID) IsZero() bool       { return id == "" }

// parseID enforces the shared identifier rules: non-empty after trimming,
// valid UTF-8, no control or invisible format characters, bounded length.
func parseID(kind, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(s) > maxIDLength {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s exceeds %d bytes", kind, maxIDLength)
	}
	if !utf8.ValidString(s) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s is not valid UTF-8", kind)
	}
	for _, r := range s {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) || unicode.IsSpace(r) {
			return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s contains invalid characters", kind)
		}
	}
	return s, nil
}

func ParseUserID(s string) (UserID, error) {
	v, err := parseID("user id", s)
	return UserID(v), err
}

func ParseOrderID(s string) (OrderID, error) {
	v, err := parseID("order id", s)
	return OrderID(v), err
}

func ParseTransactionID(s string) (TransactionID, error) {
	v, err := parseID("transaction id", s)
	return TransactionID(v), err
}

func ParseFacilityID(s string) (FacilityID, error) {
	v, err := parseID("facility id", s)
	return FacilityID(v), err
}

func ParsePaymentMethodID(s string) (PaymentMethodID, error) {
	v, err := parseID("payment method id", s)
	return PaymentMethodID(v), err
}

func ParseEnquiryID(s string) (EnquiryID, error) {
	v, err := parseID("enquiry id", s)
	return EnquiryID(v), err
}

func ParsePartnerEntryID(s string) (PartnerEntryID, error) {
	v, err := parseID("partner entry id", s)
	return PartnerEntryID(v), err
}

func ParseAccessRequestID(s string) (AccessRequestID, error) {
	v, err := parseID("access request id", s)
	return AccessRequestID(v), err
}

func ParseRequestID(s string) (RequestID, error) {
	v, err := parseID("request id", s)
	return RequestID(v), err
}
