package store

import (
	"maps"
	"slices"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

type (
	Users          = Collection[id.UserID, models.RegistryUser]
	Orders         = Collection[id.OrderID, models.Order]
	Transactions   = Collection[id.TransactionID, models.Transaction]
	Facilities     = Collection[id.FacilityID, models.Facility]
	PaymentMethods = Collection[id.PaymentMethodID, models.PaymentMethod]
	Enquiries      = Collection[id.EnquiryID, models.Enquiry]
	PartnerEntries = Collection[id.PartnerEntryID, models.PartnerThirdPartyEntry]
	TestingOrders  = Collection[id.OrderID, models.ActiveTestingOrder]
	AccessRequests = Collection[id.AccessRequestID, models.AccessRequest]
)

// State is one immutable snapshot of the dashboard data: the entity
// registry, the verification ledger and the per-user overlays.
//
// The registry collections are exported for reading. Ledger and overlays are
// only reachable through the resolver functions so that the ledger stays
// append-only and overlay lookups stay total.
type State struct {
	Users          Users
	Orders         Orders
	Transactions   Transactions
	Facilities     Facilities
	PaymentMethods PaymentMethods
	Enquiries      Enquiries
	PartnerEntries PartnerEntries
	TestingOrders  TestingOrders
	AccessRequests AccessRequests

	ledger      []models.VerificationLogEntry
	details     map[id.UserID]models.UserDetails
	detailSeeds map[id.UserID]models.UserDetails
	kyc         map[id.UserID]models.KycVerificationResult
	restricted  map[id.UserID]struct{}
	suspended   map[id.UserID]struct{}
}

// Seed is the initial data a session starts from.
type Seed struct {
	Users             []models.RegistryUser
	Orders            []models.Order
	Transactions      []models.Transaction
	Facilities        []models.Facility
	PaymentMethods    []models.PaymentMethod
	Enquiries         []models.Enquiry
	PartnerEntries    []models.PartnerThirdPartyEntry
	TestingOrders     []models.ActiveTestingOrder
	AccessRequests    []models.AccessRequest
	Ledger            []models.VerificationLogEntry
	DetailBundles     map[id.UserID]models.UserDetails
	Kyc               map[id.UserID]models.KycVerificationResult
	RestrictedUserIDs []id.UserID
	SuspendedUserIDs  []id.UserID
}

// NewState builds the first state of a session. Seed detail bundles become
// the defaults that runtime overlay entries are layered onto.
func NewState(seed Seed) State {
	s := State{
		Users:          NewCollection[id.UserID](seed.Users...),
		Orders:         NewCollection[id.OrderID](seed.Orders...),
		Transactions:   NewCollection[id.TransactionID](seed.Transactions...),
		Facilities:     NewCollection[id.FacilityID](seed.Facilities...),
		PaymentMethods: NewCollection[id.PaymentMethodID](seed.PaymentMethods...),
		Enquiries:      NewCollection[id.EnquiryID](seed.Enquiries...),
		PartnerEntries: NewCollection[id.PartnerEntryID](seed.PartnerEntries...),
		TestingOrders:  NewCollection[id.OrderID](seed.TestingOrders...),
		AccessRequests: NewCollection[id.AccessRequestID](seed.AccessRequests...),
		ledger:         make([]models.VerificationLogEntry, 0, len(seed.Ledger)),
		details:        map[id.UserID]models.UserDetails{},
		detailSeeds:    make(map[id.UserID]models.UserDetails, len(seed.DetailBundles)),
		kyc:            maps.Clone(seed.Kyc),
		restricted:     toSet(seed.RestrictedUserIDs),
		suspended:      toSet(seed.SuspendedUserIDs),
	}
	for _, e := range seed.Ledger {
		s.ledger = append(s.ledger, e.Clone())
	}
	for uid, bundle := range seed.DetailBundles {
		s.detailSeeds[uid] = bundle.Clone()
	}
	if s.kyc == nil {
		s.kyc = map[id.UserID]models.KycVerificationResult{}
	}
	return s
}

// EmptyState is a state with no seed data.
func EmptyState() State {
	return NewState(Seed{})
}

// LedgerLen is the number of verification entries recorded so far.
func (s State) LedgerLen() int { return len(s.ledger) }

// Ledger returns a copy of the whole verification ledger in append order.
func (s State) Ledger() []models.VerificationLogEntry {
	out := make([]models.VerificationLogEntry, len(s.ledger))
	for i, e := range s.ledger {
		out[i] = e.Clone()
	}
	return out
}

// LedgerSince returns the entries appended after the first n.
func (s State) LedgerSince(n int) []models.VerificationLogEntry {
	if n >= len(s.ledger) {
		return nil
	}
	n = max(n, 0)
	out := make([]models.VerificationLogEntry, 0, len(s.ledger)-n)
	for _, e := range s.ledger[n:] {
		out = append(out, e.Clone())
	}
	return out
}

// RestrictedUserIDs lists the restricted set, sorted.
func (s State) RestrictedUserIDs() []id.UserID { return sortedKeys(s.restricted) }

// SuspendedUserIDs lists the suspended set, sorted.
func (s State) SuspendedUserIDs() []id.UserID { return sortedKeys(s.suspended) }

func (s State) withLedgerEntry(e models.VerificationLogEntry) State {
	s.ledger = append(slices.Clip(s.ledger), e.Clone())
	return s
}

func (s State) withDetails(uid id.UserID, d models.UserDetails) State {
	next := maps.Clone(s.details)
	if next == nil {
		next = map[id.UserID]models.UserDetails{}
	}
	next[uid] = d
	s.details = next
	return s
}

func (s State) withKyc(uid id.UserID, r models.KycVerificationResult) State {
	next := maps.Clone(s.kyc)
	if next == nil {
		next = map[id.UserID]models.KycVerificationResult{}
	}
	next[uid] = r
	s.kyc = next
	return s
}

func toSet(ids []id.UserID) map[id.UserID]struct{} {
	set := make(map[id.UserID]struct{}, len(ids))
	for _, uid := range ids {
		set[uid] = struct{}{}
	}
	return set
}

func withMember(set map[id.UserID]struct{}, uid id.UserID, member bool) map[id.UserID]struct{} {
	next := maps.Clone(set)
	if next == nil {
		next = map[id.UserID]struct{}{}
	}
	if member {
		next[uid] = struct{}{}
	} else {
		delete(next, uid)
	}
	return next
}

func sortedKeys(set map[id.UserID]struct{}) []id.UserID {
	return slices.Sorted(maps.Keys(set))
}
