package service

import (
	"context"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/requestcontext"
)

// ReplyToEnquiry appends an admin reply. Replying to an Open enquiry moves it
// to In Progress.
func (s *Service) ReplyToEnquiry(ctx context.Context, enquiryID id.EnquiryID, req *models.EnquiryReplyRequest) (*storemodels.Enquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	state, err := s.store.Dispatch(ctx, store.AddEnquiryReply{
		EnquiryID: enquiryID,
		Reply: storemodels.EnquiryReply{
			Author: requestcontext.Actor(ctx),
			Body:   req.Body,
			At:     requestcontext.Now(ctx),
		},
	})
	if err != nil {
		return nil, err
	}
	e, _ := state.Enquiries.Get(enquiryID)
	return &e, nil
}

func (s *Service) UpdateEnquiryStatus(ctx context.Context, enquiryID id.EnquiryID, req *models.EnquiryStatusRequest) (*storemodels.Enquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	e, ok := s.store.State().Enquiries.Get(enquiryID)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "enquiry %s not found", enquiryID)
	}
	e.Status = req.Status
	state, err := s.store.Dispatch(ctx, store.UpdateEnquiry{Enquiry: e})
	if err != nil {
		return nil, err
	}
	updated, _ := state.Enquiries.Get(enquiryID)
	s.logAudit(ctx, "enquiry_status_changed", "enquiry_id", enquiryID.String(), "status", string(req.Status))
	return &updated, nil
}
