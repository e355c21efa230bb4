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

// ListOrders returns every order with its user's display name.
func (s *Service) ListOrders(ctx context.Context) []models.OrderSummary {
	state := s.store.State()
	out := make([]models.OrderSummary, 0, state.Orders.Len())
	for o := range state.Orders.All() {
		out = append(out, models.OrderSummary{Order: o, UserName: store.DisplayName(state.Users, o.UserID)})
	}
	return out
}

func (s *Service) OrderDetail(ctx context.Context, orderID id.OrderID, ledgerLimit int) (*models.OrderDetail, error) {
	state := s.store.State()
	o, ok := state.Orders.Get(orderID)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "order %s not found", orderID)
	}
	detail := &models.OrderDetail{
		Order:          o,
		UserName:       store.DisplayName(state.Users, o.UserID),
		Transactions:   store.OrderTransactions(state, orderID),
		PartnerEntries: store.OrderPartnerEntries(state, orderID),
		Verifications:  store.LedgerForEntity(state, orderID.String(), ledgerLimit),
	}
	if t, ok := store.TestingOrder(state, orderID); ok {
		detail.TestingOrder = &t
	}
	return detail, nil
}

// AdvanceOrderFlow completes the active flow step and activates the next.
// A Pending order moves to In Progress; finishing the last step completes it.
//
// The order is read and written in two steps. A concurrent update between
// them is overwritten.
func (s *Service) AdvanceOrderFlow(ctx context.Context, orderID id.OrderID) (*storemodels.Order, error) {
	o, ok := s.store.State().Orders.Get(orderID)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "order %s not found", orderID)
	}
	flow, err := storemodels.AdvanceFlow(o.Flow)
	if err != nil {
		return nil, err
	}
	o.Flow = flow
	switch {
	case storemodels.FlowComplete(flow):
		o.Status = storemodels.OrderStatusCompleted
	case o.Status == storemodels.OrderStatusPending:
		o.Status = storemodels.OrderStatusInProgress
	}
	state, err := s.store.Dispatch(ctx, store.UpdateOrder{Order: o})
	if err != nil {
		return nil, err
	}
	updated, _ := state.Orders.Get(orderID)
	s.logAudit(ctx, "order_flow_advanced", "order_id", orderID.String(), "status", string(updated.Status))
	return &updated, nil
}

// MarkOrderItemSent records that an export or notification (QR code, invoice,
// certificate) was delivered to the order's user.
func (s *Service) MarkOrderItemSent(ctx context.Context, orderID id.OrderID, req *models.MarkItemSentRequest) (*storemodels.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	state, err := s.store.Dispatch(ctx, store.RecordOrderItemSent{
		OrderID: orderID,
		Item: storemodels.SentItem{
			Item:    req.Item,
			Channel: req.Channel,
			SentAt:  requestcontext.Now(ctx),
			Actor:   requestcontext.Actor(ctx),
		},
	})
	if err != nil {
		return nil, err
	}
	o, _ := state.Orders.Get(orderID)
	return &o, nil
}
