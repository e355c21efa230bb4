package store

import (
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

// Placeholder is shown wherever a reference points at nothing.
const Placeholder = "—"

// RegistryUserName returns the user's name, or "" when the id is unknown.
func RegistryUserName(users Users, userID id.UserID) string {
	if u, ok := users.Get(userID); ok {
		return u.Name
	}
	return ""
}

// DisplayName is RegistryUserName with the placeholder for dangling ids.
func DisplayName(users Users, userID id.UserID) string {
	if name := RegistryUserName(users, userID); name != "" {
		return name
	}
	return Placeholder
}

// KycVerification returns the last KYC result set for the user.
func KycVerification(s State, userID id.UserID) (models.KycVerificationResult, bool) {
	res, ok := s.kyc[userID]
	if ok && res.Score != nil {
		score := *res.Score
		res.Score = &score
	}
	return res, ok
}

// KycLabel is the display label for the user's KYC result, or the
// placeholder when none was set.
func KycLabel(s State, userID id.UserID) string {
	if res, ok := KycVerification(s, userID); ok {
		return res.Label()
	}
	return Placeholder
}

// EffectiveUserStatus is the status shown for a user: suspension beats
// restriction, which beats the stored status. Unknown users resolve to "".
func EffectiveUserStatus(s State, userID id.UserID) models.UserStatus {
	if _, ok := s.suspended[userID]; ok {
		return models.UserStatusSuspended
	}
	if _, ok := s.restricted[userID]; ok {
		return models.UserStatusRestricted
	}
	if u, ok := s.Users.Get(userID); ok {
		return u.Status
	}
	return ""
}

func OrderTransactions(s State, orderID id.OrderID) []models.Transaction {
	return s.Transactions.Filter(func(tx models.Transaction) bool { return tx.OrderID == orderID })
}

func OrderPartnerEntries(s State, orderID id.OrderID) []models.PartnerThirdPartyEntry {
	return s.PartnerEntries.Filter(func(p models.PartnerThirdPartyEntry) bool { return p.OrderID == orderID })
}

func TestingOrder(s State, orderID id.OrderID) (models.ActiveTestingOrder, bool) {
	return s.TestingOrders.Get(orderID)
}

func UserOrders(s State, userID id.UserID) []models.Order {
	return s.Orders.Filter(func(o models.Order) bool { return o.UserID == userID })
}

func UserEnquiries(s State, userID id.UserID) []models.Enquiry {
	return s.Enquiries.Filter(func(e models.Enquiry) bool { return e.UserID == userID })
}

func UserFacilities(s State, userID id.UserID) []models.Facility {
	return s.Facilities.Filter(func(f models.Facility) bool { return f.OwnerID == userID })
}

func UserPaymentMethods(s State, userID id.UserID) []models.PaymentMethod {
	return s.PaymentMethods.Filter(func(p models.PaymentMethod) bool { return p.OwnerID == userID })
}

func PrimaryFacility(s State, userID id.UserID) (models.Facility, bool) {
	for f := range s.Facilities.All() {
		if f.OwnerID == userID && f.IsPrimary {
			return f, true
		}
	}
	return models.Facility{}, false
}

// UserProfile is everything the user screen shows, joined in one pass.
type UserProfile struct {
	User            models.RegistryUser           `json:"user"`
	EffectiveStatus models.UserStatus             `json:"effective_status"`
	Restricted      bool                          `json:"restricted"`
	Suspended       bool                          `json:"suspended"`
	Kyc             *models.KycVerificationResult `json:"kyc,omitempty"`
	KycLabel        string                        `json:"kyc_label"`
	Details         models.UserDetails            `json:"details"`
	Facilities      []models.Facility             `json:"facilities"`
	PaymentMethods  []models.PaymentMethod        `json:"payment_methods"`
	Orders          []models.Order                `json:"orders"`
	Enquiries       []models.Enquiry              `json:"enquiries"`
	Verifications   []models.VerificationLogEntry `json:"verifications"`
}

// ResolveUserProfile joins the registry, overlays and ledger for one user.
// ok is false when the user is not in the registry.
func ResolveUserProfile(s State, userID id.UserID, ledgerLimit int) (UserProfile, bool) {
	u, ok := s.Users.Get(userID)
	if !ok {
		return UserProfile{}, false
	}
	_, suspended := s.suspended[userID]
	_, restricted := s.restricted[userID]
	p := UserProfile{
		User:            u,
		EffectiveStatus: EffectiveUserStatus(s, userID),
		Restricted:      restricted,
		Suspended:       suspended,
		KycLabel:        KycLabel(s, userID),
		Details:         UserDetails(s, userID),
		Facilities:      UserFacilities(s, userID),
		PaymentMethods:  UserPaymentMethods(s, userID),
		Orders:          UserOrders(s, userID),
		Enquiries:       UserEnquiries(s, userID),
		Verifications:   LedgerForEntity(s, userID.String(), ledgerLimit),
	}
	if res, ok := KycVerification(s, userID); ok {
		p.Kyc = &res
	}
	return p, true
}
