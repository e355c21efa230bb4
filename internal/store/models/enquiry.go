package models

import (
	"time"

	id "tradedesk/pkg/domain"
)

type EnquiryStatus string

const (
	EnquiryOpen       EnquiryStatus = "Open"
	EnquiryInProgress EnquiryStatus = "In Progress"
	EnquiryResolved   EnquiryStatus = "Resolved"
)

func (s EnquiryStatus) IsValid() bool {
	return s == EnquiryOpen || s == EnquiryInProgress || s == EnquiryResolved
}

// IsTerminal reports whether the enquiry accepts no further replies or moves.
func (s EnquiryStatus) IsTerminal() bool {
	return s == EnquiryResolved
}

// CanTransitionTo allows any move out of a non-terminal status and the
// identity move everywhere.
func (s EnquiryStatus) CanTransitionTo(next EnquiryStatus) bool {
	if !next.IsValid() {
		return false
	}
	return s == next || !s.IsTerminal()
}

type EnquiryReply struct {
	Author string    `json:"author" yaml:"author"`
	Body   string    `json:"body" yaml:"body"`
	At     time.Time `json:"at" yaml:"at"`
}

// Enquiry is a support thread opened by a user. Replies are append-only.
type Enquiry struct {
	ID        id.EnquiryID   `json:"id" yaml:"id"`
	UserID    id.UserID      `json:"user_id" yaml:"user_id"`
	Subject   string         `json:"subject" yaml:"subject"`
	Type      string         `json:"type" yaml:"type"`
	Status    EnquiryStatus  `json:"status" yaml:"status"`
	Replies   []EnquiryReply `json:"replies" yaml:"replies"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

func (e Enquiry) Key() id.EnquiryID { return e.ID }
