package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// FlowStep is one stage of an order's fulfilment flow.
type FlowStep struct {
	Name      string `json:"name" yaml:"name"`
	Completed bool   `json:"completed" yaml:"completed"`
	Active    bool   `json:"active" yaml:"active"`
}

// SentItem records a document or artefact sent to the order's user
// (QR code, invoice, assay certificate, ...).
type SentItem struct {
	Item    string    `json:"item" yaml:"item"`
	Channel string    `json:"channel" yaml:"channel"`
	SentAt  time.Time `json:"sent_at" yaml:"sent_at"`
	Actor   string    `json:"actor,omitempty" yaml:"actor"`
}

type CommunicationEntry struct {
	Author  string    `json:"author" yaml:"author"`
	Message string    `json:"message" yaml:"message"`
	At      time.Time `json:"at" yaml:"at"`
}

type Order struct {
	ID             id.OrderID           `json:"id" yaml:"id"`
	UserID         id.UserID            `json:"user_id" yaml:"user_id"`
	Side           OrderSide            `json:"side" yaml:"side"`
	Mineral        string               `json:"mineral" yaml:"mineral"`
	Quantity       decimal.Decimal      `json:"quantity" yaml:"quantity"`
	Unit           string               `json:"unit" yaml:"unit"`
	Status         OrderStatus          `json:"status" yaml:"status"`
	Flow           []FlowStep           `json:"flow" yaml:"flow"`
	FacilityID     id.FacilityID        `json:"facility_id,omitempty" yaml:"facility_id"`
	SentToUser     []SentItem           `json:"sent_to_user" yaml:"sent_to_user"`
	Communications []CommunicationEntry `json:"communications" yaml:"communications"`
	CreatedAt      time.Time            `json:"created_at" yaml:"created_at"`
}

func (o Order) Key() id.OrderID { return o.ID }

// ValidateFlow checks the flow-step invariant: completed steps form a prefix
// and at most one step is active, and the active step (if any) is the first
// step that is not completed.
func ValidateFlow(steps []FlowStep) error {
	firstOpen := len(steps)
	active := -1
	for i, step := range steps {
		if step.Completed {
			if i > firstOpen {
				return dErrors.Newf(dErrors.CodeInvariantViolation, "flow step %q completed after an open step", step.Name)
			}
			if step.Active {
				return dErrors.Newf(dErrors.CodeInvariantViolation, "flow step %q is both completed and active", step.Name)
			}
			continue
		}
		if firstOpen == len(steps) {
			firstOpen = i
		}
		if step.Active {
			if active >= 0 {
				return dErrors.New(dErrors.CodeInvariantViolation, "more than one active flow step")
			}
			active = i
		}
	}
	if active >= 0 && active != firstOpen {
		return dErrors.New(dErrors.CodeInvariantViolation, "active flow step must follow the completed prefix")
	}
	return nil
}

// ActiveStep returns the index of the active step.
func (o Order) ActiveStep() (int, bool) {
	for i, step := range o.Flow {
		if step.Active {
			return i, true
		}
	}
	return -1, false
}

// AdvanceFlow completes the active step and activates the next one. With no
// active step the first open step is activated. A fully completed flow cannot
// advance.
func AdvanceFlow(steps []FlowStep) ([]FlowStep, error) {
	if err := ValidateFlow(steps); err != nil {
		return nil, err
	}
	next := slices.Clone(steps)
	for i := range next {
		if next[i].Completed {
			continue
		}
		if next[i].Active {
			next[i].Active = false
			next[i].Completed = true
			if i+1 < len(next) {
				next[i+1].Active = true
			}
		} else {
			next[i].Active = true
		}
		return next, nil
	}
	return nil, dErrors.New(dErrors.CodeInvalidState, "order flow is already complete")
}

// FlowComplete reports whether every step has been completed.
func FlowComplete(steps []FlowStep) bool {
	for _, step := range steps {
		if !step.Completed {
			return false
		}
	}
	return len(steps) > 0
}
