package models

import (
	"slices"

	"github.com/shopspring/decimal"

	id "tradedesk/pkg/domain"
)

type PartnerStatus string

const (
	PartnerPending        PartnerStatus = "Pending"
	PartnerInTransit      PartnerStatus = "In transit"
	PartnerDelivered      PartnerStatus = "Delivered"
	PartnerSampleReceived PartnerStatus = "Sample received at lab"
)

func (s PartnerStatus) IsValid() bool {
	switch s {
	case PartnerPending, PartnerInTransit, PartnerDelivered, PartnerSampleReceived:
		return true
	}
	return false
}

// PartnerThirdPartyEntry tracks a shipment of samples to a testing partner
// for an order. Documents is a set of uploaded file names. Version advances
// whenever the content changes.
type PartnerThirdPartyEntry struct {
	ID               id.PartnerEntryID `json:"id" yaml:"id"`
	OrderID          id.OrderID        `json:"order_id" yaml:"order_id"`
	Status           PartnerStatus     `json:"status" yaml:"status"`
	Documents        []string          `json:"documents" yaml:"documents"`
	ShippingAmount   decimal.Decimal   `json:"shipping_amount" yaml:"shipping_amount"`
	ShippingCurrency string            `json:"shipping_currency" yaml:"shipping_currency"`
	TestingPartner   string            `json:"testing_partner" yaml:"testing_partner"`
	Version          uint64            `json:"version" yaml:"version"`
}

func (p PartnerThirdPartyEntry) Key() id.PartnerEntryID { return p.ID }

// SameContent compares everything except Version.
func (p PartnerThirdPartyEntry) SameContent(o PartnerThirdPartyEntry) bool {
	return p.ID == o.ID &&
		p.OrderID == o.OrderID &&
		p.Status == o.Status &&
		slices.Equal(p.Documents, o.Documents) &&
		p.ShippingAmount.Equal(o.ShippingAmount) &&
		p.ShippingCurrency == o.ShippingCurrency &&
		p.TestingPartner == o.TestingPartner
}

// ActiveTestingOrder holds the lab-side view of an order. Its three statuses
// move independently of each other and of the partner entry.
type ActiveTestingOrder struct {
	OrderID             id.OrderID `json:"order_id" yaml:"order_id"`
	TestingStatus       string     `json:"testing_status" yaml:"testing_status"`
	CertificationStatus string     `json:"certification_status" yaml:"certification_status"`
	PaymentStatus       string     `json:"payment_status" yaml:"payment_status"`
}

func (t ActiveTestingOrder) Key() id.OrderID { return t.OrderID }
