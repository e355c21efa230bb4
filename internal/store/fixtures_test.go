package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestReducer() *Reducer {
	return NewReducer(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs("gen")),
	)
}

func fixtureSeed() Seed {
	return Seed{
		Users: []models.RegistryUser{
			{ID: "U1", Name: "Amara Okafor", Email: "amara@example.com", Role: models.RoleSeller, Status: models.UserStatusVerified, Risk: models.RiskLow, LifetimeValue: decimal.RequireFromString("125000.50")},
			{ID: "U2", Name: "Kwame Mensah", Email: "kwame@example.com", Role: models.RoleBuyer, Status: models.UserStatusUnderReview, Risk: models.RiskMedium},
		},
		Orders: []models.Order{
			{
				ID: "O1", UserID: "U1", Side: models.OrderSideSell, Mineral: "Gold", Quantity: decimal.RequireFromString("2.5"), Unit: "kg",
				Status: models.OrderStatusInProgress, FacilityID: "F1",
				Flow: []models.FlowStep{{Name: "Submitted", Completed: true}, {Name: "Testing", Active: true}, {Name: "Settlement"}},
			},
			{ID: "O2", UserID: "U2", Side: models.OrderSideBuy, Mineral: "Copper", Quantity: decimal.RequireFromString("12"), Unit: "t", Status: models.OrderStatusPending},
		},
		Transactions: []models.Transaction{
			{ID: "T1", OrderID: "O1", Estimate: decimal.RequireFromString("150000"), Final: decimal.RequireFromString("148000"), Fee: decimal.RequireFromString("2960"), Currency: "USD", Status: models.TransactionStatusEstimated},
		},
		Facilities: []models.Facility{
			{ID: "F1", OwnerID: "U1", Label: "Accra warehouse", IsPrimary: true},
		},
		PaymentMethods: []models.PaymentMethod{
			{ID: "PM1", OwnerID: "U1", Kind: models.PaymentMethodBank, Label: "GCB", Last4: "4321", IsDefault: true},
		},
		Enquiries: []models.Enquiry{
			{ID: "E1", UserID: "U2", Subject: "Assay turnaround", Type: "testing", Status: models.EnquiryOpen},
		},
		PartnerEntries: []models.PartnerThirdPartyEntry{
			{ID: "P1", OrderID: "O1", Status: models.PartnerInTransit, Documents: []string{"waybill.pdf"}, ShippingAmount: decimal.RequireFromString("320"), ShippingCurrency: "USD", TestingPartner: "SGS Accra", Version: 1},
		},
		TestingOrders: []models.ActiveTestingOrder{
			{OrderID: "O1", TestingStatus: "Awaiting sample", CertificationStatus: "Not started", PaymentStatus: "Unpaid"},
		},
		AccessRequests: []models.AccessRequest{
			{ID: "A1", Name: "Jane Doe", Email: "jane@x.com", Company: "Doe Metals", RequestedRole: models.RoleBuyer, MineralInterest: "Copper", Status: models.AccessPending, SubmittedAt: fixedNow.Add(-48 * time.Hour)},
		},
		DetailBundles: map[id.UserID]models.UserDetails{
			"U1": {
				VideoCalls:        []models.VideoCall{{ID: "VC1", Host: "ops", Status: "completed", ScheduledAt: fixedNow.Add(-72 * time.Hour)}},
				ArtisanalRequests: []models.ArtisanalRequest{{ID: "AR1", Kind: models.ArtisanalAsset, Title: "Site photos", Status: "requested"}},
				Incidents:         []models.Incident{},
				LoginAttempts:     []models.LoginAttempt{},
				Devices:           []models.DeviceSession{},
				SecurityNotes:     []models.SecurityNote{},
				Activity:          []models.ActivityEvent{},
			},
		},
	}
}

func fixtureState() State {
	return NewState(fixtureSeed())
}

// sampleActions returns one well-formed action per tag, valid against
// fixtureState.
func sampleActions() []Action {
	score := 0.98
	return []Action{
		AddRegistryUser{User: models.RegistryUser{Name: "Jane Doe", Email: "jane@x.com"}},
		UpdateUserStatus{UserID: "U2", Status: models.UserStatusVerified},
		SetUserRestriction{UserID: "U2", Restricted: true},
		SetUserSuspension{UserID: "U2", Suspended: true},
		VerifyUserDetails{UserID: "U1", Actor: "ops@tradedesk"},
		AddFacility{Facility: models.Facility{OwnerID: "U2", Label: "Kumasi depot"}},
		RemoveFacility{FacilityID: "F1"},
		AddPaymentMethod{PaymentMethod: models.PaymentMethod{OwnerID: "U2", Kind: models.PaymentMethodMobileMoney, Label: "MTN"}},
		RemovePaymentMethod{PaymentMethodID: "PM1"},
		AddOrder{Order: models.Order{UserID: "U2", Side: models.OrderSideBuy, Mineral: "Copper"}},
		UpdateOrder{Order: models.Order{ID: "O1", UserID: "U1", Status: models.OrderStatusCompleted}},
		RecordOrderItemSent{OrderID: "O1", Item: models.SentItem{Item: "qr_code", Channel: "email"}},
		AddTransaction{Transaction: models.Transaction{OrderID: "O1", Currency: "USD"}},
		UpdateTransaction{Transaction: models.Transaction{ID: "T1", OrderID: "O1", Status: models.TransactionStatusSettled}},
		AddEnquiry{Enquiry: models.Enquiry{UserID: "U1", Subject: "Payout date"}},
		UpdateEnquiry{Enquiry: models.Enquiry{ID: "E1", UserID: "U2", Status: models.EnquiryInProgress}},
		AddEnquiryReply{EnquiryID: "E1", Reply: models.EnquiryReply{Author: "ops", Body: "Looking into it"}},
		AddAppActivity{UserID: "U1", Event: models.ActivityEvent{Kind: "login", Description: "Signed in"}},
		RecordVerification{Entry: models.VerificationLogEntry{Kind: models.KindKycApproval, EntityID: "U1", EntityType: id.EntityUser}},
		SetKycVerification{UserID: "U1", Result: models.KycVerificationResult{Source: models.SourceAI, Score: &score, BiometricSource: models.BiometricAI}},
		AddPartnerThirdParty{Entry: models.PartnerThirdPartyEntry{OrderID: "O1", TestingPartner: "Intertek"}},
		UpdatePartnerThirdParty{Entry: models.PartnerThirdPartyEntry{ID: "P1", OrderID: "O1", Status: models.PartnerDelivered, TestingPartner: "SGS Accra"}},
		AddTestingOrder{TestingOrder: models.ActiveTestingOrder{OrderID: "O2", TestingStatus: "Awaiting sample"}},
		UpdateTestingOrder{TestingOrder: models.ActiveTestingOrder{OrderID: "O1", TestingStatus: "In lab"}},
		AddVideoCall{UserID: "U1", Call: models.VideoCall{Host: "ops"}},
		AddArtisanalDocumentRequest{UserID: "U1", Request: models.ArtisanalRequest{Title: "Mining licence"}},
		UpdateArtisanalProfileStatus{UserID: "U1", Status: "Documents pending"},
		UpdateArtisanalAssetRequest{UserID: "U1", Request: models.ArtisanalRequest{ID: "AR1", Title: "Site photos", Status: "received"}},
		AddIncident{UserID: "U1", Incident: models.Incident{Severity: "low", Summary: "Late shipment"}},
		AddLoginActivity{UserID: "U1", Attempt: models.LoginAttempt{IP: "10.0.0.1", Device: "Chrome on Windows", Success: true}},
		AddDeviceSession{UserID: "U1", Session: models.DeviceSession{Device: "Chrome on Windows", IP: "10.0.0.1"}},
		AddSecurityNote{UserID: "U1", Note: models.SecurityNote{Body: "Verified by phone", Author: "ops"}},
		AddAccessRequest{Request: models.AccessRequest{Name: "Li Wei", Email: "li@example.com"}},
		UpdateAccessRequest{RequestID: "A1", Status: models.AccessApproved, DecidedBy: "ops"},
	}
}
