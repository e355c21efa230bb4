package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "tradedesk/pkg/domain"
)

// Role is the platform role a registry user trades under.
type Role string

const (
	RoleBuyer          Role = "buyer"
	RoleSeller         Role = "seller"
	RoleArtisanalMiner Role = "artisanal_miner"
	RoleLabPartner     Role = "lab_partner"
	RoleAdmin          Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleArtisanalMiner, RoleLabPartner, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the stored (base) status of a registry user. The status shown
// on screen also depends on the restriction and suspension sets, see
// store.EffectiveUserStatus.
type UserStatus string

const (
	UserStatusVerified    UserStatus = "Verified"
	UserStatusUnderReview UserStatus = "Under Review"
	UserStatusSuspended   UserStatus = "Suspended"
	UserStatusLimited     UserStatus = "Limited"
	UserStatusRestricted  UserStatus = "Restricted"
	UserStatusRejected    UserStatus = "Rejected"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusVerified, UserStatusUnderReview, UserStatusSuspended,
		UserStatusLimited, UserStatusRestricted, UserStatusRejected:
		return true
	}
	return false
}

type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

func (r Risk) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// PreEntrySubmission is what the applicant submitted before being admitted
// through an access request.
type PreEntrySubmission struct {
	AccessRequestID id.AccessRequestID `json:"access_request_id" yaml:"access_request_id"`
	Company         string             `json:"company,omitempty" yaml:"company"`
	MineralInterest string             `json:"mineral_interest,omitempty" yaml:"mineral_interest"`
	SubmittedAt     time.Time          `json:"submitted_at" yaml:"submitted_at"`
}

// RegistryUser is a platform participant. Users are never hard-deleted;
// their status changes instead.
type RegistryUser struct {
	ID                id.UserID           `json:"id" yaml:"id"`
	Name              string              `json:"name" yaml:"name"`
	Email             string              `json:"email" yaml:"email"`
	Phone             string              `json:"phone,omitempty" yaml:"phone"`
	Role              Role                `json:"role" yaml:"role"`
	Country           string              `json:"country,omitempty" yaml:"country"`
	Status            UserStatus          `json:"status" yaml:"status"`
	Risk              Risk                `json:"risk" yaml:"risk"`
	LifetimeValue     decimal.Decimal     `json:"lifetime_value" yaml:"lifetime_value"`
	DetailsVerifiedAt *time.Time          `json:"details_verified_at,omitempty" yaml:"details_verified_at"`
	PreEntry          *PreEntrySubmission `json:"pre_entry,omitempty" yaml:"pre_entry"`
	CreatedAt         time.Time           `json:"created_at" yaml:"created_at"`
}

func (u RegistryUser) Key() id.UserID { return u.ID }
