package models

import (
	"fmt"
	"maps"
	"time"

	id "tradedesk/pkg/domain"
)

type VerificationSource string

const (
	SourceManual VerificationSource = "manual"
	SourceAI     VerificationSource = "ai"
	SourceAPI    VerificationSource = "api"
)

func (s VerificationSource) IsValid() bool {
	return s == SourceManual || s == SourceAI || s == SourceAPI
}

// VerificationKind tags what was verified.
type VerificationKind string

const (
	KindKycApproval       VerificationKind = "kyc_approval"
	KindFaceMatch         VerificationKind = "face_match"
	KindDocApproval       VerificationKind = "doc_approval"
	KindBiometricOverride VerificationKind = "biometric_override"
	KindDetailsVerified   VerificationKind = "details_verified"
	KindAccessApproved    VerificationKind = "access_approved"
	KindAccessRejected    VerificationKind = "access_rejected"
	KindKycResultSet      VerificationKind = "kyc_result_set"
)

// VerificationLogEntry is one immutable "who did what, when" record.
// EntityID is a weak reference: it is never checked against the registry.
type VerificationLogEntry struct {
	ID         id.VerificationID  `json:"id" yaml:"id"`
	Timestamp  time.Time          `json:"timestamp" yaml:"timestamp"`
	Source     VerificationSource `json:"source" yaml:"source"`
	Kind       VerificationKind   `json:"kind" yaml:"kind"`
	EntityID   string             `json:"entity_id" yaml:"entity_id"`
	EntityType id.EntityType      `json:"entity_type" yaml:"entity_type"`
	Result     string             `json:"result" yaml:"result"`
	Label      string             `json:"label" yaml:"label"`
	Actor      string             `json:"actor" yaml:"actor"`
	Metadata   map[string]string  `json:"metadata,omitempty" yaml:"metadata"`
}

// Clone copies the metadata map so the ledger never shares it with callers.
func (e VerificationLogEntry) Clone() VerificationLogEntry {
	e.Metadata = maps.Clone(e.Metadata)
	return e
}

type BiometricSource string

const (
	BiometricAI       BiometricSource = "ai"
	BiometricManual   BiometricSource = "manual"
	BiometricOverride BiometricSource = "override"
)

func (b BiometricSource) IsValid() bool {
	return b == BiometricAI || b == BiometricManual || b == BiometricOverride
}

// KycVerificationResult is the per-user KYC overlay. A set replaces it
// wholesale; Version advances when the content changes.
type KycVerificationResult struct {
	Source          VerificationSource `json:"source" yaml:"source"`
	Score           *float64           `json:"score,omitempty" yaml:"score"`
	LastVerifiedAt  time.Time          `json:"last_verified_at" yaml:"last_verified_at"`
	BiometricSource BiometricSource    `json:"biometric_source" yaml:"biometric_source"`
	Version         uint64             `json:"version" yaml:"version"`
}

// SameContent compares everything except Version.
func (k KycVerificationResult) SameContent(o KycVerificationResult) bool {
	if (k.Score == nil) != (o.Score == nil) {
		return false
	}
	if k.Score != nil && *k.Score != *o.Score {
		return false
	}
	return k.Source == o.Source &&
		k.LastVerifiedAt.Equal(o.LastVerifiedAt) &&
		k.BiometricSource == o.BiometricSource
}

// Label renders the result the way the dashboard shows it, e.g.
// "AI verified (98%)" or "Manual override".
func (k KycVerificationResult) Label() string {
	if k.BiometricSource == BiometricOverride {
		return "Manual override"
	}
	switch k.Source {
	case SourceAI:
		if k.Score != nil {
			return fmt.Sprintf("AI verified (%.0f%%)", *k.Score*100)
		}
		return "AI verified"
	case SourceAPI:
		return "API verified"
	default:
		return "Manual review"
	}
}
