package store

import (
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

func (r *Reducer) addRegistryUser(s State, a AddRegistryUser) (State, error) {
	u := a.User
	if u.ID.IsZero() {
		u.ID = id.UserID(r.newID())
	}
	if s.Users.Has(u.ID) {
		return s, conflict("user", u.ID)
	}
	if u.Status == "" {
		u.Status = models.UserStatusUnderReview
	}
	if !u.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid user status %q", u.Status)
	}
	if u.Risk == "" {
		u.Risk = models.RiskLow
	}
	if !u.Risk.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid risk %q", u.Risk)
	}
	if u.Role != "" && !u.Role.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid role %q", u.Role)
	}
	u.CreatedAt = r.stamp(u.CreatedAt)
	s.Users = s.Users.Append(u)
	return s, nil
}

func (r *Reducer) updateUserStatus(s State, a UpdateUserStatus) (State, error) {
	if !a.Status.IsValid() {
		return s, dErrors.Newf(dErrors.CodeValidation, "invalid user status %q", a.Status)
	}
	u, ok := s.Users.Get(a.UserID)
	if !ok {
		return s, notFound("user", a.UserID)
	}
	if u.Status == a.Status {
		return s, nil
	}
	u.Status = a.Status
	s.Users, _ = s.Users.Replace(u)
	return s, nil
}

func (r *Reducer) setUserRestriction(s State, a SetUserRestriction) (State, error) {
	if !s.Users.Has(a.UserID) {
		return s, notFound("user", a.UserID)
	}
	s.restricted = withMember(s.restricted, a.UserID, a.Restricted)
	return s, nil
}

func (r *Reducer) setUserSuspension(s State, a SetUserSuspension) (State, error) {
	if !s.Users.Has(a.UserID) {
		return s, notFound("user", a.UserID)
	}
	s.suspended = withMember(s.suspended, a.UserID, a.Suspended)
	return s, nil
}

func (r *Reducer) verifyUserDetails(s State, a VerifyUserDetails) (State, error) {
	u, ok := s.Users.Get(a.UserID)
	if !ok {
		return s, notFound("user", a.UserID)
	}
	at := r.stamp(a.VerifiedAt)
	u.DetailsVerifiedAt = &at
	s.Users, _ = s.Users.Replace(u)
	return s.withLedgerEntry(models.VerificationLogEntry{
		ID:         id.VerificationID(r.newID()),
		Timestamp:  at,
		Source:     models.SourceManual,
		Kind:       models.KindDetailsVerified,
		EntityID:   u.ID.String(),
		EntityType: id.EntityUser,
		Result:     "verified",
		Label:      "Details verified",
		Actor:      a.Actor,
	}), nil
}

func (r *Reducer) addFacility(s State, a AddFacility) (State, error) {
	f := a.Facility
	if f.ID.IsZero() {
		f.ID = id.FacilityID(r.newID())
	}
	if s.Facilities.Has(f.ID) {
		return s, conflict("facility", f.ID)
	}
	if !s.Users.Has(f.OwnerID) {
		return s, dangling("user", f.OwnerID)
	}
	owned := s.Facilities.Filter(func(x models.Facility) bool { return x.OwnerID == f.OwnerID })
	if len(owned) == 0 {
		f.IsPrimary = true
	}
	facilities := s.Facilities
	if f.IsPrimary {
		for _, other := range owned {
			if other.IsPrimary {
				other.IsPrimary = false
				facilities, _ = facilities.Replace(other)
			}
		}
	}
	s.Facilities = facilities.Append(f)
	return s, nil
}

func (r *Reducer) removeFacility(s State, a RemoveFacility) (State, error) {
	f, ok := s.Facilities.Get(a.FacilityID)
	if !ok {
		return s, notFound("facility", a.FacilityID)
	}
	s.Facilities, _ = s.Facilities.Remove(f.ID)
	if f.IsPrimary {
		rest := s.Facilities.Filter(func(x models.Facility) bool { return x.OwnerID == f.OwnerID })
		if len(rest) > 0 {
			promoted := rest[0]
			promoted.IsPrimary = true
			s.Facilities, _ = s.Facilities.Replace(promoted)
		}
	}
	return s, nil
}

func (r *Reducer) addPaymentMethod(s State, a AddPaymentMethod) (State, error) {
	pm := a.PaymentMethod
	if pm.ID.IsZero() {
		pm.ID = id.PaymentMethodID(r.newID())
	}
	if s.PaymentMethods.Has(pm.ID) {
		return s, conflict("payment method", pm.ID)
	}
	if !s.Users.Has(pm.OwnerID) {
		return s, dangling("user", pm.OwnerID)
	}
	owned := s.PaymentMethods.Filter(func(x models.PaymentMethod) bool { return x.OwnerID == pm.OwnerID })
	if len(owned) == 0 {
		pm.IsDefault = true
	}
	methods := s.PaymentMethods
	if pm.IsDefault {
		for _, other := range owned {
			if other.IsDefault {
				other.IsDefault = false
				methods, _ = methods.Replace(other)
			}
		}
	}
	s.PaymentMethods = methods.Append(pm)
	return s, nil
}

func (r *Reducer) removePaymentMethod(s State, a RemovePaymentMethod) (State, error) {
	pm, ok := s.PaymentMethods.Get(a.PaymentMethodID)
	if !ok {
		return s, notFound("payment method", a.PaymentMethodID)
	}
	s.PaymentMethods, _ = s.PaymentMethods.Remove(pm.ID)
	if pm.IsDefault {
		rest := s.PaymentMethods.Filter(func(x models.PaymentMethod) bool { return x.OwnerID == pm.OwnerID })
		if len(rest) > 0 {
			promoted := rest[0]
			promoted.IsDefault = true
			s.PaymentMethods, _ = s.PaymentMethods.Replace(promoted)
		}
	}
	return s, nil
}
