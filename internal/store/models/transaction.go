package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	id "tradedesk/pkg/domain"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusEstimated TransactionStatus = "Estimated"
	TransactionStatusSettled   TransactionStatus = "Settled"
	TransactionStatusFailed    TransactionStatus = "Failed"
)

type PaymentDetail struct {
	MethodID  id.PaymentMethodID `json:"method_id,omitempty" yaml:"method_id"`
	Reference string             `json:"reference,omitempty" yaml:"reference"`
	PaidAt    *time.Time         `json:"paid_at,omitempty" yaml:"paid_at"`
}

// Transaction is the money side of an order. Net is never stored; it is
// always Final minus Fee.
type Transaction struct {
	ID       id.TransactionID  `json:"id" yaml:"id"`
	OrderID  id.OrderID        `json:"order_id" yaml:"order_id"`
	Estimate decimal.Decimal   `json:"estimate" yaml:"estimate"`
	Final    decimal.Decimal   `json:"final" yaml:"final"`
	Fee      decimal.Decimal   `json:"fee" yaml:"fee"`
	Currency string            `json:"currency" yaml:"currency"`
	Status   TransactionStatus `json:"status" yaml:"status"`
	Payment  *PaymentDetail    `json:"payment,omitempty" yaml:"payment"`
}

func (t Transaction) Key() id.TransactionID { return t.ID }

// Net is the amount paid out after fees.
func (t Transaction) Net() decimal.Decimal {
	return t.Final.Sub(t.Fee)
}

// MarshalJSON adds the computed net so readers never derive it themselves.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		plain
		Net decimal.Decimal `json:"net"`
	}{plain: plain(t), Net: t.Net()})
}
