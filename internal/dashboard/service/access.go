package service

import (
	"context"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	"tradedesk/pkg/requestcontext"
)

func (s *Service) SubmitAccessRequest(ctx context.Context, req *models.SubmitAccessRequest) (*storemodels.AccessRequest, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ar := storemodels.AccessRequest{
		ID:              id.AccessRequestID(s.newID()),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		Company:         req.Company,
		RequestedRole:   req.RequestedRole,
		MineralInterest: req.MineralInterest,
		Status:          storemodels.AccessPending,
		SubmittedAt:     requestcontext.Now(ctx),
	}
	state, err := s.store.Dispatch(ctx, store.AddAccessRequest{Request: ar})
	if err != nil {
		return nil, err
	}
	created, _ := state.AccessRequests.Get(ar.ID)
	s.logAudit(ctx, "access_requested", "access_request_id", ar.ID.String())
	return &created, nil
}

// ListAccessRequests returns requests in submission order, optionally only
// those with the given status.
func (s *Service) ListAccessRequests(ctx context.Context, status storemodels.AccessStatus) []storemodels.AccessRequest {
	return s.store.State().AccessRequests.Filter(func(r storemodels.AccessRequest) bool {
		return status == "" || r.Status == status
	})
}

// ApproveAccessRequest admits the applicant as an Under Review user.
func (s *Service) ApproveAccessRequest(ctx context.Context, requestID id.AccessRequestID) (*models.AccessDecision, error) {
	return s.decideAccessRequest(ctx, requestID, storemodels.AccessApproved)
}

func (s *Service) RejectAccessRequest(ctx context.Context, requestID id.AccessRequestID) (*models.AccessDecision, error) {
	return s.decideAccessRequest(ctx, requestID, storemodels.AccessRejected)
}

func (s *Service) decideAccessRequest(ctx context.Context, requestID id.AccessRequestID, status storemodels.AccessStatus) (*models.AccessDecision, error) {
	state, err := s.store.Dispatch(ctx, store.UpdateAccessRequest{
		RequestID: requestID,
		Status:    status,
		DecidedBy: requestcontext.Actor(ctx),
		DecidedAt: requestcontext.Now(ctx),
	})
	if err != nil {
		return nil, err
	}
	req, _ := state.AccessRequests.Get(requestID)
	decision := &models.AccessDecision{Request: req}
	if !req.UserID.IsZero() {
		if u, ok := state.Users.Get(req.UserID); ok {
			decision.User = &u
		}
	}
	s.logAudit(ctx, "access_"+string(status), "access_request_id", requestID.String(), "user_id", req.UserID.String())
	return decision, nil
}
