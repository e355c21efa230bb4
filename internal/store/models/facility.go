package models

import (
	"time"

	id "tradedesk/pkg/domain"
)

type Address struct {
	Line1      string `json:"line1" yaml:"line1"`
	Line2      string `json:"line2,omitempty" yaml:"line2"`
	City       string `json:"city" yaml:"city"`
	Region     string `json:"region,omitempty" yaml:"region"`
	Country    string `json:"country" yaml:"country"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code"`
}

type FacilityUsage struct {
	OrderID id.OrderID `json:"order_id" yaml:"order_id"`
	UsedAt  time.Time  `json:"used_at" yaml:"used_at"`
}

// Facility is a pickup/delivery site owned by a user. Each owner has at
// most one primary facility.
type Facility struct {
	ID           id.FacilityID   `json:"id" yaml:"id"`
	OwnerID      id.UserID       `json:"owner_id" yaml:"owner_id"`
	Label        string          `json:"label" yaml:"label"`
	Address      Address         `json:"address" yaml:"address"`
	IsPrimary    bool            `json:"is_primary" yaml:"is_primary"`
	UsageCount   int             `json:"usage_count" yaml:"usage_count"`
	LastUsedAt   *time.Time      `json:"last_used_at,omitempty" yaml:"last_used_at"`
	UsageHistory []FacilityUsage `json:"usage_history" yaml:"usage_history"`
}

func (f Facility) Key() id.FacilityID { return f.ID }

type PaymentMethodKind string

const (
	PaymentMethodBank        PaymentMethodKind = "bank"
	PaymentMethodMobileMoney PaymentMethodKind = "mobile_money"
	PaymentMethodCard        PaymentMethodKind = "card"
)

type PaymentMethod struct {
	ID        id.PaymentMethodID `json:"id" yaml:"id"`
	OwnerID   id.UserID          `json:"owner_id" yaml:"owner_id"`
	Kind      PaymentMethodKind  `json:"kind" yaml:"kind"`
	Label     string             `json:"label" yaml:"label"`
	Last4     string             `json:"last4,omitempty" yaml:"last4"`
	IsDefault bool               `json:"is_default" yaml:"is_default"`
}

func (p PaymentMethod) Key() id.PaymentMethodID { return p.ID }
