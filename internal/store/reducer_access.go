package store

import (
	"strings"
	"time"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/email"
)

func (r *Reducer) addAccessRequest(s State, a AddAccessRequest) (State, error) {
	req := a.Request
	if req.ID.IsZero() {
		req.ID = id.AccessRequestID(r.newID())
	}
	if s.AccessRequests.Has(req.ID) {
		return s, conflict("access request", req.ID)
	}
	if req.Status == "" {
		req.Status = models.AccessPending
	}
	if req.Status != models.AccessPending {
		return s, dErrors.Newf(dErrors.CodeValidation, "new access request must be pending, got %q", req.Status)
	}
	req.SubmittedAt = r.stamp(req.SubmittedAt)
	s.AccessRequests = s.AccessRequests.Append(req)
	return s, nil
}

// updateAccessRequest decides a pending request. Sending the status a request
// already has is a no-op; any other move out of a terminal status is
// rejected. Approval admits the applicant as an Under Review user, unless a
// user with the same email is already registered, and records the decision
// in the ledger either way.
func (r *Reducer) updateAccessRequest(s State, a UpdateAccessRequest) (State, error) {
	if !a.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid access request status %q", a.Status)
	}
	req, ok := s.AccessRequests.Get(a.RequestID)
	if !ok {
		return s, notFound("access request", a.RequestID)
	}
	if req.Status == a.Status {
		return s, nil
	}
	if !req.Status.CanTransitionTo(a.Status) {
		return s, dErrors.Newf(dErrors.CodeInvalidState, "access request %s cannot move from %s to %s", req.ID, req.Status, a.Status)
	}

	decidedAt := r.stamp(a.DecidedAt)
	req.Status = a.Status
	req.DecidedAt = &decidedAt
	req.DecidedBy = a.DecidedBy

	entry := models.VerificationLogEntry{
		ID:         id.VerificationID(r.newID()),
		Timestamp:  decidedAt,
		Source:     models.SourceManual,
		EntityID:   req.ID.String(),
		EntityType: id.EntityAccessRequest,
		Actor:      a.DecidedBy,
		Metadata:   map[string]string{"email": req.Email},
	}

	switch a.Status {
	case models.AccessApproved:
		userID := r.admitApplicant(&s, req, decidedAt)
		req.UserID = userID
		entry.Kind = models.KindAccessApproved
		entry.Result = "approved"
		entry.Label = "Access approved"
		entry.Metadata["user_id"] = userID.String()
	case models.AccessRejected:
		entry.Kind = models.KindAccessRejected
		entry.Result = "rejected"
		entry.Label = "Access rejected"
	}

	s.AccessRequests, _ = s.AccessRequests.Replace(req)
	return s.withLedgerEntry(entry), nil
}

func (r *Reducer) admitApplicant(s *State, req models.AccessRequest, at time.Time) id.UserID {
	existing := s.Users.Filter(func(u models.RegistryUser) bool {
		return req.Email != "" && strings.EqualFold(u.Email, req.Email)
	})
	if len(existing) > 0 {
		return existing[0].ID
	}
	role := req.RequestedRole
	if !role.IsValid() {
		role = models.RoleBuyer
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = email.DeriveName(req.Email)
	}
	u := models.RegistryUser{
		ID:      id.UserID(r.newID()),
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Role:    role,
		Country: req.Country,
		Status:  models.UserStatusUnderReview,
		Risk:    models.RiskLow,
		PreEntry: &models.PreEntrySubmission{
			AccessRequestID: req.ID,
			Company:         req.Company,
			MineralInterest: req.MineralInterest,
			SubmittedAt:     req.SubmittedAt,
		},
		CreatedAt: at,
	}
	s.Users = s.Users.Append(u)
	return u.ID
}
