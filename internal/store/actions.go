package store

import (
	"time"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
)

// Tag names an action kind. Tags are stable strings used in logs and metrics.
type Tag string

const (
	TagAddRegistryUser              Tag = "ADD_REGISTRY_USER"
	TagUpdateUserStatus             Tag = "UPDATE_USER_STATUS"
	TagSetUserRestriction           Tag = "SET_USER_RESTRICTION"
	TagSetUserSuspension            Tag = "SET_USER_SUSPENSION"
	TagVerifyUserDetails            Tag = "VERIFY_USER_DETAILS"
	TagAddFacility                  Tag = "ADD_FACILITY"
	TagRemoveFacility               Tag = "REMOVE_FACILITY"
	TagAddPaymentMethod             Tag = "ADD_PAYMENT_METHOD"
	TagRemovePaymentMethod          Tag = "REMOVE_PAYMENT_METHOD"
	TagAddOrder                     Tag = "ADD_ORDER"
	TagUpdateOrder                  Tag = "UPDATE_ORDER"
	TagRecordOrderItemSent          Tag = "RECORD_ORDER_ITEM_SENT"
	TagAddTransaction               Tag = "ADD_TRANSACTION"
	TagUpdateTransaction            Tag = "UPDATE_TRANSACTION"
	TagAddEnquiry                   Tag = "ADD_ENQUIRY"
	TagUpdateEnquiry                Tag = "UPDATE_ENQUIRY"
	TagAddEnquiryReply              Tag = "ADD_ENQUIRY_REPLY"
	TagAddAppActivity               Tag = "ADD_APP_ACTIVITY"
	TagRecordVerification           Tag = "RECORD_VERIFICATION"
	TagSetKycVerification           Tag = "SET_KYC_VERIFICATION"
	TagAddPartnerThirdParty         Tag = "ADD_PARTNER_THIRD_PARTY"
	TagUpdatePartnerThirdParty      Tag = "UPDATE_PARTNER_THIRD_PARTY"
	TagAddTestingOrder              Tag = "ADD_TESTING_ORDER"
	TagUpdateTestingOrder           Tag = "UPDATE_TESTING_ORDER"
	TagAddVideoCall                 Tag = "ADD_VIDEO_CALL"
	TagAddArtisanalDocumentRequest  Tag = "ADD_ARTISANAL_DOCUMENT_REQUEST"
	TagUpdateArtisanalProfileStatus Tag = "UPDATE_ARTISANAL_PROFILE_STATUS"
	TagUpdateArtisanalAssetRequest  Tag = "UPDATE_ARTISANAL_ASSET_REQUEST"
	TagAddIncident                  Tag = "ADD_INCIDENT"
	TagAddLoginActivity             Tag = "ADD_LOGIN_ACTIVITY"
	TagAddDeviceSession             Tag = "ADD_DEVICE_SESSION"
	TagAddSecurityNote              Tag = "ADD_SECURITY_NOTE"
	TagAddAccessRequest             Tag = "ADD_ACCESS_REQUEST"
	TagUpdateAccessRequest          Tag = "UPDATE_ACCESS_REQUEST"
)

// AllTags lists every action kind the reducer handles.
func AllTags() []Tag {
	return []Tag{
		TagAddRegistryUser, TagUpdateUserStatus, TagSetUserRestriction, TagSetUserSuspension,
		TagVerifyUserDetails, TagAddFacility, TagRemoveFacility, TagAddPaymentMethod,
		TagRemovePaymentMethod, TagAddOrder, TagUpdateOrder, TagRecordOrderItemSent,
		TagAddTransaction, TagUpdateTransaction, TagAddEnquiry, TagUpdateEnquiry,
		TagAddEnquiryReply, TagAddAppActivity, TagRecordVerification, TagSetKycVerification,
		TagAddPartnerThirdParty, TagUpdatePartnerThirdParty, TagAddTestingOrder, TagUpdateTestingOrder,
		TagAddVideoCall, TagAddArtisanalDocumentRequest, TagUpdateArtisanalProfileStatus,
		TagUpdateArtisanalAssetRequest, TagAddIncident, TagAddLoginActivity, TagAddDeviceSession,
		TagAddSecurityNote, TagAddAccessRequest, TagUpdateAccessRequest,
	}
}

// Action is the closed set of mutations. Only types in this package can
// implement it.
type Action interface {
	Tag() Tag
	isAction()
}

type sealed struct{}

func (sealed) isAction() {}

// Registry users

// AddRegistryUser appends a user. Empty ID is generated, empty Status becomes
// "Under Review", empty Risk becomes "Low".
type AddRegistryUser struct {
	sealed
	User models.RegistryUser
}

type UpdateUserStatus struct {
	sealed
	UserID id.UserID
	Status models.UserStatus
}

// SetUserRestriction adds the user to, or removes it from, the restricted set.
type SetUserRestriction struct {
	sealed
	UserID     id.UserID
	Restricted bool
}

// SetUserSuspension adds the user to, or removes it from, the suspended set.
type SetUserSuspension struct {
	sealed
	UserID    id.UserID
	Suspended bool
}

// VerifyUserDetails stamps DetailsVerifiedAt and records a ledger entry.
type VerifyUserDetails struct {
	sealed
	UserID     id.UserID
	VerifiedAt time.Time
	Actor      string
}

// Facilities and payment methods

type AddFacility struct {
	sealed
	Facility models.Facility
}

type RemoveFacility struct {
	sealed
	FacilityID id.FacilityID
}

type AddPaymentMethod struct {
	sealed
	PaymentMethod models.PaymentMethod
}

type RemovePaymentMethod struct {
	sealed
	PaymentMethodID id.PaymentMethodID
}

// Orders and transactions

type AddOrder struct {
	sealed
	Order models.Order
}

// UpdateOrder replaces the order with the same id.
type UpdateOrder struct {
	sealed
	Order models.Order
}

// RecordOrderItemSent is the write-back from export/notification senders.
type RecordOrderItemSent struct {
	sealed
	OrderID id.OrderID
	Item    models.SentItem
}

type AddTransaction struct {
	sealed
	Transaction models.Transaction
}

type UpdateTransaction struct {
	sealed
	Transaction models.Transaction
}

// Enquiries

type AddEnquiry struct {
	sealed
	Enquiry models.Enquiry
}

// UpdateEnquiry replaces the enquiry. Existing replies must be kept as a prefix.
type UpdateEnquiry struct {
	sealed
	Enquiry models.Enquiry
}

// AddEnquiryReply appends a reply. A reply on an Open enquiry moves it to
// In Progress in the same dispatch.
type AddEnquiryReply struct {
	sealed
	EnquiryID id.EnquiryID
	Reply     models.EnquiryReply
}

// Verification ledger and KYC overlay

type RecordVerification struct {
	sealed
	Entry models.VerificationLogEntry
}

// SetKycVerification overwrites the user's KYC result. ExpectedVersion zero
// means last write wins; otherwise it must equal the current version.
type SetKycVerification struct {
	sealed
	UserID          id.UserID
	Result          models.KycVerificationResult
	ExpectedVersion uint64
}

// Partners and labs

type AddPartnerThirdParty struct {
	sealed
	Entry models.PartnerThirdPartyEntry
}

// UpdatePartnerThirdParty merges every field of Entry into the stored entry.
// ExpectedVersion works as in SetKycVerification.
type UpdatePartnerThirdParty struct {
	sealed
	Entry           models.PartnerThirdPartyEntry
	ExpectedVersion uint64
}

type AddTestingOrder struct {
	sealed
	TestingOrder models.ActiveTestingOrder
}

type UpdateTestingOrder struct {
	sealed
	TestingOrder models.ActiveTestingOrder
}

// Per-user detail overlay

type AddAppActivity struct {
	sealed
	UserID id.UserID
	Event  models.ActivityEvent
}

type AddVideoCall struct {
	sealed
	UserID id.UserID
	Call   models.VideoCall
}

type AddArtisanalDocumentRequest struct {
	sealed
	UserID  id.UserID
	Request models.ArtisanalRequest
}

type UpdateArtisanalProfileStatus struct {
	sealed
	UserID id.UserID
	Status string
}

// UpdateArtisanalAssetRequest replaces the request with the same id in the
// user's bundle.
type UpdateArtisanalAssetRequest struct {
	sealed
	UserID  id.UserID
	Request models.ArtisanalRequest
}

type AddIncident struct {
	sealed
	UserID   id.UserID
	Incident models.Incident
}

type AddLoginActivity struct {
	sealed
	UserID  id.UserID
	Attempt models.LoginAttempt
}

// AddDeviceSession inserts a session, or refreshes the one with the same id.
type AddDeviceSession struct {
	sealed
	UserID  id.UserID
	Session models.DeviceSession
}

type AddSecurityNote struct {
	sealed
	UserID id.UserID
	Note   models.SecurityNote
}

// Access requests

type AddAccessRequest struct {
	sealed
	Request models.AccessRequest
}

// UpdateAccessRequest decides a pending request. Approval also admits the
// applicant into the registry.
type UpdateAccessRequest struct {
	sealed
	RequestID id.AccessRequestID
	Status    models.AccessStatus
	DecidedBy string
	DecidedAt time.Time
}

func (AddRegistryUser) Tag() Tag              { return TagAddRegistryUser }
func (UpdateUserStatus) Tag() Tag             { return TagUpdateUserStatus }
func (SetUserRestriction) Tag() Tag           { return TagSetUserRestriction }
func (SetUserSuspension) Tag() Tag            { return TagSetUserSuspension }
func (VerifyUserDetails) Tag() Tag            { return TagVerifyUserDetails }
func (AddFacility) Tag() Tag                  { return TagAddFacility }
func (RemoveFacility) Tag() Tag               { return TagRemoveFacility }
func (AddPaymentMethod) Tag() Tag             { return TagAddPaymentMethod }
func (RemovePaymentMethod) Tag() Tag          { return TagRemovePaymentMethod }
func (AddOrder) Tag() Tag                     { return TagAddOrder }
func (UpdateOrder) Tag() Tag                  { return TagUpdateOrder }
func (RecordOrderItemSent) Tag() Tag          { return TagRecordOrderItemSent }
func (AddTransaction) Tag() Tag               { return TagAddTransaction }
func (UpdateTransaction) Tag() Tag            { return TagUpdateTransaction }
func (AddEnquiry) Tag() Tag                   { return TagAddEnquiry }
func (UpdateEnquiry) Tag() Tag                { return TagUpdateEnquiry }
func (AddEnquiryReply) Tag() Tag              { return TagAddEnquiryReply }
func (AddAppActivity) Tag() Tag               { return TagAddAppActivity }
func (RecordVerification) Tag() Tag           { return TagRecordVerification }
func (SetKycVerification) Tag() Tag           { return TagSetKycVerification }
func (AddPartnerThirdParty) Tag() Tag         { return TagAddPartnerThirdParty }
func (UpdatePartnerThirdParty) Tag() Tag      { return TagUpdatePartnerThirdParty }
func (AddTestingOrder) Tag() Tag              { return TagAddTestingOrder }
func (UpdateTestingOrder) Tag() Tag           { return TagUpdateTestingOrder }
func (AddVideoCall) Tag() Tag                 { return TagAddVideoCall }
func (AddArtisanalDocumentRequest) Tag() Tag  { return TagAddArtisanalDocumentRequest }
func (UpdateArtisanalProfileStatus) Tag() Tag { return TagUpdateArtisanalProfileStatus }
func (UpdateArtisanalAssetRequest) Tag() Tag  { return TagUpdateArtisanalAssetRequest }
func (AddIncident) Tag() Tag                  { return TagAddIncident }
func (AddLoginActivity) Tag() Tag             { return TagAddLoginActivity }
func (AddDeviceSession) Tag() Tag             { return TagAddDeviceSession }
func (AddSecurityNote) Tag() Tag              { return TagAddSecurityNote }
func (AddAccessRequest) Tag() Tag             { return TagAddAccessRequest }
func (UpdateAccessRequest) Tag() Tag          { return TagUpdateAccessRequest }
