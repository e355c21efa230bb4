package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tradedesk/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be non-empty, printable and bounded"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := ParseOrderID("   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts opaque dashboard ids", func(t *testing.T) {
		for _, in := range []string{"U1", "ORD-1024", "550e8400-e29b-41d4-a716-446655440000"} {
			got, err := ParseUserID(in)
			require.NoError(t, err)
			assert.Equal(t, UserID(in), got)
		}
	})
}

func TestParseID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Null byte injection", "U1\x00suffix", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "U\u200b1", true},
		{"Embedded newline", "U1\nU2", true},
		{"Non-UTF8", string([]byte{0xff, 0xfe}), true},
		{"Max length", strings.Repeat("a", maxIDLength), false},
		{"Valid", "TX-2024-0001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTransactionID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types share one rule set.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	parsers := map[string]func(string) error{
		"user":           func(s string) error { _, err := ParseUserID(s); return err },
		"order":          func(s string) error { _, err := ParseOrderID(s); return err },
		"transaction":    func(s string) error { _, err := ParseTransactionID(s); return err },
		"facility":       func(s string) error { _, err := ParseFacilityID(s); return err },
		"payment method": func(s string) error { _, err := ParsePaymentMethodID(s); return err },
		"enquiry":        func(s string) error { _, err := ParseEnquiryID(s); return err },
		"partner entry":  func(s string) error { _, err := ParsePartnerEntryID(s); return err },
		"access request": func(s string) error { _, err := ParseAccessRequestID(s); return err },
		"request":        func(s string) error { _, err := ParseRequestID(s); return err },
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, parse("ID-1"))
			require.Error(t, parse(""))
			require.Error(t, parse("bad id"))
		})
	}
}

func TestParseEntityType(t *testing.T) {
	got, err := ParseEntityType("order")
	require.NoError(t, err)
	assert.Equal(t, EntityOrder, got)

	_, err = ParseEntityType("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = ParseEntityType("spaceship")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
