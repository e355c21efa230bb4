package models

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	tdstrings "tradedesk/pkg/platform/strings"
)

type RegisterUserRequest struct {
	Name    string                 `json:"name"`
	Email   string                 `json:"email"`
	Phone   string                 `json:"phone,omitempty"`
	Role    storemodels.Role       `json:"role"`
	Country string                 `json:"country,omitempty"`
	Risk    storemodels.Risk       `json:"risk,omitempty"`
	Status  storemodels.UserStatus `json:"status,omitempty"`
}

func (r *RegisterUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	if r.Role == "" {
		r.Role = storemodels.RoleBuyer
	}
}

func (r *RegisterUserRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if !r.Role.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid role %q", r.Role)
	}
	if r.Risk != "" && !r.Risk.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid risk %q", r.Risk)
	}
	if r.Status != "" && !r.Status.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid status %q", r.Status)
	}
	return nil
}

type SubmitAccessRequest struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Country         string           `json:"country,omitempty"`
	Company         string           `json:"company,omitempty"`
	RequestedRole   storemodels.Role `json:"requested_role"`
	MineralInterest string           `json:"mineral_interest,omitempty"`
}

func (r *SubmitAccessRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Company = strings.TrimSpace(r.Company)
	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	r.MineralInterest = strings.TrimSpace(r.MineralInterest)
	if r.RequestedRole == "" {
		r.RequestedRole = storemodels.RoleBuyer
	}
}

func (r *SubmitAccessRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if !r.RequestedRole.IsValid() || r.RequestedRole == storemodels.RoleAdmin {
		return dErrors.Newf(dErrors.CodeValidation, "role %q cannot be requested", r.RequestedRole)
	}
	return nil
}

type SetUserStatusRequest struct {
	Status storemodels.UserStatus `json:"status"`
}

func (r *SetUserStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid status %q", r.Status)
	}
	return nil
}

// ToggleRequest switches a restriction or suspension on or off.
type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

type SetKycRequest struct {
	Source          storemodels.VerificationSource `json:"source"`
	Score           *float64                       `json:"score,omitempty"`
	BiometricSource storemodels.BiometricSource    `json:"biometric_source"`
	ExpectedVersion uint64                         `json:"expected_version,omitempty"`
}

func (r *SetKycRequest) Validate() error {
	if !r.Source.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid source %q", r.Source)
	}
	if r.BiometricSource == "" {
		r.BiometricSource = storemodels.BiometricSource(r.Source)
		if !r.BiometricSource.IsValid() {
			r.BiometricSource = storemodels.BiometricManual
		}
	}
	if !r.BiometricSource.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid biometric source %q", r.BiometricSource)
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 1) {
		return dErrors.New(dErrors.CodeValidation, "score must be between 0 and 1")
	}
	return nil
}

type AddFacilityRequest struct {
	OwnerID   string              `json:"owner_id"`
	Label     string              `json:"label"`
	Address   storemodels.Address `json:"address"`
	IsPrimary bool                `json:"is_primary"`
}

func (r *AddFacilityRequest) Normalize() {
	r.Label = strings.TrimSpace(r.Label)
	r.Address.Line1 = strings.TrimSpace(r.Address.Line1)
	r.Address.City = strings.TrimSpace(r.Address.City)
	r.Address.Country = strings.ToUpper(strings.TrimSpace(r.Address.Country))
}

func (r *AddFacilityRequest) Validate() error {
	if _, err := id.ParseUserID(r.OwnerID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "owner_id")
	}
	if r.Label == "" {
		return dErrors.New(dErrors.CodeValidation, "label is required")
	}
	if r.Address.Line1 == "" || r.Address.City == "" || r.Address.Country == "" {
		return dErrors.New(dErrors.CodeValidation, "address line1, city and country are required")
	}
	return nil
}

type MarkItemSentRequest struct {
	Item    string `json:"item"`
	Channel string `json:"channel"`
}

func (r *MarkItemSentRequest) Validate() error {
	r.Item = strings.TrimSpace(r.Item)
	r.Channel = strings.TrimSpace(r.Channel)
	if r.Item == "" {
		return dErrors.New(dErrors.CodeValidation, "item is required")
	}
	if r.Channel == "" {
		r.Channel = "email"
	}
	return nil
}

type EnquiryReplyRequest struct {
	Body string `json:"body"`
}

func (r *EnquiryReplyRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return dErrors.New(dErrors.CodeValidation, "body is required")
	}
	return nil
}

type EnquiryStatusRequest struct {
	Status storemodels.EnquiryStatus `json:"status"`
}

func (r *EnquiryStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid enquiry status %q", r.Status)
	}
	return nil
}

// PartnerEntryRequest creates or fully replaces a partner entry.
// ShippingAmount is a decimal string.
type PartnerEntryRequest struct {
	OrderID          string                    `json:"order_id"`
	Status           storemodels.PartnerStatus `json:"status"`
	Documents        []string                  `json:"documents"`
	ShippingAmount   string                    `json:"shipping_amount"`
	ShippingCurrency string                    `json:"shipping_currency"`
	TestingPartner   string                    `json:"testing_partner"`
	ExpectedVersion  uint64                    `json:"expected_version,omitempty"`
}

// ToEntry validates the request and converts it.
func (r *PartnerEntryRequest) ToEntry() (storemodels.PartnerThirdPartyEntry, error) {
	orderID, err := id.ParseOrderID(r.OrderID)
	if err != nil {
		return storemodels.PartnerThirdPartyEntry{}, dErrors.Wrap(err, dErrors.CodeValidation, "order_id")
	}
	status := r.Status
	if status == "" {
		status = storemodels.PartnerPending
	}
	if !status.IsValid() {
		return storemodels.PartnerThirdPartyEntry{}, dErrors.Newf(dErrors.CodeValidation, "invalid partner status %q", r.Status)
	}
	amount := decimal.Zero
	if s := strings.TrimSpace(r.ShippingAmount); s != "" {
		amount, err = decimal.NewFromString(s)
		if err != nil {
			return storemodels.PartnerThirdPartyEntry{}, dErrors.Wrap(err, dErrors.CodeValidation, "shipping_amount must be a decimal")
		}
		if amount.IsNegative() {
			return storemodels.PartnerThirdPartyEntry{}, dErrors.New(dErrors.CodeValidation, "shipping_amount must not be negative")
		}
	}
	return storemodels.PartnerThirdPartyEntry{
		OrderID:          orderID,
		Status:           status,
		Documents:        tdstrings.NormalizeSet(r.Documents),
		ShippingAmount:   amount,
		ShippingCurrency: strings.ToUpper(strings.TrimSpace(r.ShippingCurrency)),
		TestingPartner:   strings.TrimSpace(r.TestingPartner),
	}, nil
}

type RecordLoginRequest struct {
	Success bool `json:"success"`
}

func validateEmail(email string) error {
	if email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return dErrors.Newf(dErrors.CodeValidation, "invalid email %q", email)
	}
	return nil
}
