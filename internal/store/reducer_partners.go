package store

import (
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/platform/strings"
)

func (r *Reducer) addPartnerThirdParty(s State, a AddPartnerThirdParty) (State, error) {
	p := a.Entry
	if p.ID.IsZero() {
		p.ID = id.PartnerEntryID(r.newID())
	}
	if s.PartnerEntries.Has(p.ID) {
		return s, conflict("partner entry", p.ID)
	}
	if !s.Orders.Has(p.OrderID) {
		return s, dangling("order", p.OrderID)
	}
	if p.Status == "" {
		p.Status = models.PartnerPending
	}
	if !p.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid partner status %q", p.Status)
	}
	p.Documents = strings.NormalizeSet(p.Documents)
	p.Version = 1
	s.PartnerEntries = s.PartnerEntries.Append(p)
	return s, nil
}

// updatePartnerThirdParty replaces every field of the stored entry. The
// version advances only when the content actually changes.
func (r *Reducer) updatePartnerThirdParty(s State, a UpdatePartnerThirdParty) (State, error) {
	p := a.Entry
	cur, ok := s.PartnerEntries.Get(p.ID)
	if !ok {
		return s, notFound("partner entry", p.ID)
	}
	if a.ExpectedVersion != 0 && a.ExpectedVersion != cur.Version {
		return s, dErrors.Newf(dErrors.CodeConflict, "partner entry %s is at version %d, expected %d", p.ID, cur.Version, a.ExpectedVersion)
	}
	if !s.Orders.Has(p.OrderID) {
		return s, dangling("order", p.OrderID)
	}
	if !p.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid partner status %q", p.Status)
	}
	p.Documents = strings.NormalizeSet(p.Documents)
	if p.SameContent(cur) {
		return s, nil
	}
	p.Version = cur.Version + 1
	s.PartnerEntries, _ = s.PartnerEntries.Replace(p)
	return s, nil
}

func (r *Reducer) addTestingOrder(s State, a AddTestingOrder) (State, error) {
	t := a.TestingOrder
	if !s.Orders.Has(t.OrderID) {
		return s, dangling("order", t.OrderID)
	}
	if s.TestingOrders.Has(t.OrderID) {
		return s, conflict("testing order", t.OrderID)
	}
	s.TestingOrders = s.TestingOrders.Append(t)
	return s, nil
}

func (r *Reducer) updateTestingOrder(s State, a UpdateTestingOrder) (State, error) {
	next, ok := s.TestingOrders.Replace(a.TestingOrder)
	if !ok {
		return s, notFound("testing order", a.TestingOrder.OrderID)
	}
	s.TestingOrders = next
	return s, nil
}

// recordVerification appends to the ledger. The entity reference is not
// checked: ledger entries may outlive or precede what they point at.
func (r *Reducer) recordVerification(s State, a RecordVerification) (State, error) {
	e := a.Entry
	if e.Kind == "" {
		return s, dErrors.New(dErrors.CodeValidation, "verification kind is required")
	}
	if e.EntityID == "" {
		return s, dErrors.New(dErrors.CodeValidation, "verification entity id is required")
	}
	if e.Source == "" {
		e.Source = models.SourceManual
	}
	if !e.Source.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid verification source %q", e.Source)
	}
	if e.ID.IsZero() {
		e.ID = id.VerificationID(r.newID())
	}
	e.Timestamp = r.stamp(e.Timestamp)
	return s.withLedgerEntry(e), nil
}

func (r *Reducer) setKycVerification(s State, a SetKycVerification) (State, error) {
	if !s.Users.Has(a.UserID) {
		return s, dangling("user", a.UserID)
	}
	res := a.Result
	if !res.Source.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid kyc source %q", res.Source)
	}
	if res.BiometricSource != "" && !res.BiometricSource.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid biometric source %q", res.BiometricSource)
	}
	if res.Score != nil {
		score := *res.Score
		res.Score = &score
	}
	res.LastVerifiedAt = r.stamp(res.LastVerifiedAt)

	cur, exists := s.kyc[a.UserID]
	if a.ExpectedVersion != 0 && a.ExpectedVersion != cur.Version {
		return s, dErrors.Newf(dErrors.CodeConflict, "kyc result for %s is at version %d, expected %d", a.UserID, cur.Version, a.ExpectedVersion)
	}
	if exists && res.SameContent(cur) {
		return s, nil
	}
	res.Version = cur.Version + 1
	return s.withKyc(a.UserID, res), nil
}
