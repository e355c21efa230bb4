package store

import (
	"slices"
	"strings"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

func (r *Reducer) checkOrderRefs(s State, o models.Order) error {
	if !s.Users.Has(o.UserID) {
		return dangling("user", o.UserID)
	}
	if !o.FacilityID.IsZero() && !s.Facilities.Has(o.FacilityID) {
		return dangling("facility", o.FacilityID)
	}
	return models.ValidateFlow(o.Flow)
}

func (r *Reducer) addOrder(s State, a AddOrder) (State, error) {
	o := a.Order
	if o.ID.IsZero() {
		o.ID = id.OrderID(r.newID())
	}
	if s.Orders.Has(o.ID) {
		return s, conflict("order", o.ID)
	}
	if err := r.checkOrderRefs(s, o); err != nil {
		return s, err
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	o.CreatedAt = r.stamp(o.CreatedAt)
	o.Flow = slices.Clone(o.Flow)

	if !o.FacilityID.IsZero() {
		f, _ := s.Facilities.Get(o.FacilityID)
		usedAt := o.CreatedAt
		f.UsageCount++
		f.LastUsedAt = &usedAt
		f.UsageHistory = append(slices.Clip(f.UsageHistory), models.FacilityUsage{OrderID: o.ID, UsedAt: usedAt})
		s.Facilities, _ = s.Facilities.Replace(f)
	}
	s.Orders = s.Orders.Append(o)
	return s, nil
}

// updateOrder replaces the whole record. Facility usage is only counted when
// an order is created.
func (r *Reducer) updateOrder(s State, a UpdateOrder) (State, error) {
	o := a.Order
	if !s.Orders.Has(o.ID) {
		return s, notFound("order", o.ID)
	}
	if err := r.checkOrderRefs(s, o); err != nil {
		return s, err
	}
	o.Flow = slices.Clone(o.Flow)
	s.Orders, _ = s.Orders.Replace(o)
	return s, nil
}

func (r *Reducer) recordOrderItemSent(s State, a RecordOrderItemSent) (State, error) {
	if strings.TrimSpace(a.Item.Item) == "" {
		return s, dErrors.New(dErrors.CodeValidation, "sent item name is required")
	}
	o, ok := s.Orders.Get(a.OrderID)
	if !ok {
		return s, notFound("order", a.OrderID)
	}
	item := a.Item
	item.SentAt = r.stamp(item.SentAt)
	o.SentToUser = append(slices.Clip(o.SentToUser), item)
	s.Orders, _ = s.Orders.Replace(o)
	return s, nil
}

func (r *Reducer) checkTransactionRefs(s State, tx models.Transaction) error {
	if !s.Orders.Has(tx.OrderID) {
		return dangling("order", tx.OrderID)
	}
	if tx.Payment != nil && !tx.Payment.MethodID.IsZero() && !s.PaymentMethods.Has(tx.Payment.MethodID) {
		return dangling("payment method", tx.Payment.MethodID)
	}
	return nil
}

func (r *Reducer) addTransaction(s State, a AddTransaction) (State, error) {
	tx := a.Transaction
	if tx.ID.IsZero() {
		tx.ID = id.TransactionID(r.newID())
	}
	if s.Transactions.Has(tx.ID) {
		return s, conflict("transaction", tx.ID)
	}
	if err := r.checkTransactionRefs(s, tx); err != nil {
		return s, err
	}
	if tx.Status == "" {
		tx.Status = models.TransactionStatusPending
	}
	s.Transactions = s.Transactions.Append(tx)
	return s, nil
}

func (r *Reducer) updateTransaction(s State, a UpdateTransaction) (State, error) {
	tx := a.Transaction
	if !s.Transactions.Has(tx.ID) {
		return s, notFound("transaction", tx.ID)
	}
	if err := r.checkTransactionRefs(s, tx); err != nil {
		return s, err
	}
	s.Transactions, _ = s.Transactions.Replace(tx)
	return s, nil
}

func (r *Reducer) addEnquiry(s State, a AddEnquiry) (State, error) {
	e := a.Enquiry
	if e.ID.IsZero() {
		e.ID = id.EnquiryID(r.newID())
	}
	if s.Enquiries.Has(e.ID) {
		return s, conflict("enquiry", e.ID)
	}
	if !s.Users.Has(e.UserID) {
		return s, dangling("user", e.UserID)
	}
	if e.Status == "" {
		e.Status = models.EnquiryOpen
	}
	if !e.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid enquiry status %q", e.Status)
	}
	e.CreatedAt = r.stamp(e.CreatedAt)
	e.Replies = slices.Clone(e.Replies)
	s.Enquiries = s.Enquiries.Append(e)
	return s, nil
}

// updateEnquiry replaces the enquiry. A Resolved enquiry stays Resolved and
// replies already recorded must be kept, in order, as a prefix.
func (r *Reducer) updateEnquiry(s State, a UpdateEnquiry) (State, error) {
	e := a.Enquiry
	cur, ok := s.Enquiries.Get(e.ID)
	if !ok {
		return s, notFound("enquiry", e.ID)
	}
	if !s.Users.Has(e.UserID) {
		return s, dangling("user", e.UserID)
	}
	if !cur.Status.CanTransitionTo(e.Status) {
		return s, dErrors.Newf(dErrors.CodeInvalidState, "enquiry cannot move from %q to %q", cur.Status, e.Status)
	}
	if len(e.Replies) < len(cur.Replies) || !slices.EqualFunc(cur.Replies, e.Replies[:len(cur.Replies)], sameReply) {
		return s, dErrors.New(dErrors.CodeInvariantViolation, "enquiry replies are append-only")
	}
	e.Replies = slices.Clone(e.Replies)
	s.Enquiries, _ = s.Enquiries.Replace(e)
	return s, nil
}

func sameReply(a, b models.EnquiryReply) bool {
	return a.Author == b.Author && a.Body == b.Body && a.At.Equal(b.At)
}

func (r *Reducer) addEnquiryReply(s State, a AddEnquiryReply) (State, error) {
	if strings.TrimSpace(a.Reply.Body) == "" {
		return s, dErrors.New(dErrors.CodeValidation, "reply body is required")
	}
	e, ok := s.Enquiries.Get(a.EnquiryID)
	if !ok {
		return s, notFound("enquiry", a.EnquiryID)
	}
	if e.Status.IsTerminal() {
		return s, dErrors.Newf(dErrors.CodeInvalidState, "enquiry %s is %s", e.ID, e.Status)
	}
	reply := a.Reply
	reply.At = r.stamp(reply.At)
	e.Replies = append(slices.Clip(e.Replies), reply)
	if e.Status == models.EnquiryOpen {
		e.Status = models.EnquiryInProgress
	}
	s.Enquiries, _ = s.Enquiries.Replace(e)
	return s, nil
}
