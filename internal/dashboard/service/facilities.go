package service

import (
	"context"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

func (s *Service) AddFacility(ctx context.Context, req *models.AddFacilityRequest) (*storemodels.Facility, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f := storemodels.Facility{
		ID:           id.FacilityID(s.newID()),
		OwnerID:      id.UserID(req.OwnerID),
		Label:        req.Label,
		Address:      req.Address,
		IsPrimary:    req.IsPrimary,
		UsageHistory: []storemodels.FacilityUsage{},
	}
	state, err := s.store.Dispatch(ctx, store.AddFacility{Facility: f})
	if err != nil {
		return nil, err
	}
	created, _ := state.Facilities.Get(f.ID)
	s.logAudit(ctx, "facility_added", "facility_id", f.ID.String(), "user_id", req.OwnerID)
	return &created, nil
}

func (s *Service) RemoveFacility(ctx context.Context, facilityID id.FacilityID) error {
	if _, err := s.store.Dispatch(ctx, store.RemoveFacility{FacilityID: facilityID}); err != nil {
		return err
	}
	s.logAudit(ctx, "facility_removed", "facility_id", facilityID.String())
	return nil
}

func (s *Service) RemovePaymentMethod(ctx context.Context, methodID id.PaymentMethodID) error {
	if _, err := s.store.Dispatch(ctx, store.RemovePaymentMethod{PaymentMethodID: methodID}); err != nil {
		return err
	}
	s.logAudit(ctx, "payment_method_removed", "payment_method_id", methodID.String())
	return nil
}
