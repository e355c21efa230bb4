package models

import (
	"time"

	id "tradedesk/pkg/domain"
)

type AccessStatus string

const (
	AccessPending  AccessStatus = "pending"
	AccessApproved AccessStatus = "approved"
	AccessRejected AccessStatus = "rejected"
)

func (s AccessStatus) IsValid() bool {
	return s == AccessPending || s == AccessApproved || s == AccessRejected
}

// CanTransitionTo allows pending -> approved|rejected only.
func (s AccessStatus) CanTransitionTo(next AccessStatus) bool {
	return s == AccessPending && (next == AccessApproved || next == AccessRejected)
}

// AccessRequest is an application to join the platform. Once it leaves
// pending it is terminal.
type AccessRequest struct {
	ID              id.AccessRequestID `json:"id" yaml:"id"`
	Name            string             `json:"name" yaml:"name"`
	Email           string             `json:"email" yaml:"email"`
	Phone           string             `json:"phone,omitempty" yaml:"phone"`
	Country         string             `json:"country,omitempty" yaml:"country"`
	Company         string             `json:"company,omitempty" yaml:"company"`
	RequestedRole   Role               `json:"requested_role" yaml:"requested_role"`
	MineralInterest string             `json:"mineral_interest,omitempty" yaml:"mineral_interest"`
	Status          AccessStatus       `json:"status" yaml:"status"`
	SubmittedAt     time.Time          `json:"submitted_at" yaml:"submitted_at"`
	DecidedAt       *time.Time         `json:"decided_at,omitempty" yaml:"decided_at"`
	DecidedBy       string             `json:"decided_by,omitempty" yaml:"decided_by"`
	UserID          id.UserID          `json:"user_id,omitempty" yaml:"user_id"`
}

func (a AccessRequest) Key() id.AccessRequestID { return a.ID }
