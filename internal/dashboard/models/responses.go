package models

import (
	storemodels "tradedesk/internal/store/models"
)

// UserSummary is one row of the user table.
type UserSummary struct {
	storemodels.RegistryUser
	EffectiveStatus storemodels.UserStatus `json:"effective_status"`
	KycLabel        string                 `json:"kyc_label"`
}

// AccessDecision is returned when an access request is approved or rejected.
type AccessDecision struct {
	Request storemodels.AccessRequest `json:"request"`
	// User is set when the request was approved.
	User *storemodels.RegistryUser `json:"user,omitempty"`
}

// OrderSummary is one row of the order table.
type OrderSummary struct {
	storemodels.Order
	UserName string `json:"user_name"`
}

// OrderDetail joins an order with its transactions, partner entries, testing
// progress and ledger.
type OrderDetail struct {
	Order          storemodels.Order                    `json:"order"`
	UserName       string                               `json:"user_name"`
	Transactions   []storemodels.Transaction            `json:"transactions"`
	PartnerEntries []storemodels.PartnerThirdPartyEntry `json:"partner_entries"`
	TestingOrder   *storemodels.ActiveTestingOrder      `json:"testing_order,omitempty"`
	Verifications  []storemodels.VerificationLogEntry   `json:"verifications"`
}
