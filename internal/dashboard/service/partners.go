package service

import (
	"context"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

func (s *Service) AddPartnerEntry(ctx context.Context, req *models.PartnerEntryRequest) (*storemodels.PartnerThirdPartyEntry, error) {
	entry, err := req.ToEntry()
	if err != nil {
		return nil, err
	}
	entry.ID = id.PartnerEntryID(s.newID())
	state, err := s.store.Dispatch(ctx, store.AddPartnerThirdParty{Entry: entry})
	if err != nil {
		return nil, err
	}
	created, _ := state.PartnerEntries.Get(entry.ID)
	s.logAudit(ctx, "partner_entry_added", "partner_entry_id", entry.ID.String(), "order_id", entry.OrderID.String())
	return &created, nil
}

// UpdatePartnerEntry replaces every field of the entry. A non-zero
// ExpectedVersion guards against overwriting a concurrent edit.
func (s *Service) UpdatePartnerEntry(ctx context.Context, entryID id.PartnerEntryID, req *models.PartnerEntryRequest) (*storemodels.PartnerThirdPartyEntry, error) {
	entry, err := req.ToEntry()
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	state, err := s.store.Dispatch(ctx, store.UpdatePartnerThirdParty{Entry: entry, ExpectedVersion: req.ExpectedVersion})
	if err != nil {
		return nil, err
	}
	updated, _ := state.PartnerEntries.Get(entryID)
	s.logAudit(ctx, "partner_entry_updated", "partner_entry_id", entryID.String(), "status", string(updated.Status))
	return &updated, nil
}
