// Package seed loads the fixture data a dashboard session starts from.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"tradedesk/internal/store"
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

//go:embed seed.yaml
var defaultSeed []byte

type document struct {
	Users             []models.RegistryUser                      `yaml:"users"`
	Orders            []models.Order                             `yaml:"orders"`
	Transactions      []models.Transaction                       `yaml:"transactions"`
	Facilities        []models.Facility                          `yaml:"facilities"`
	PaymentMethods    []models.PaymentMethod                     `yaml:"payment_methods"`
	Enquiries         []models.Enquiry                           `yaml:"enquiries"`
	PartnerEntries    []models.PartnerThirdPartyEntry            `yaml:"partner_entries"`
	TestingOrders     []models.ActiveTestingOrder                `yaml:"testing_orders"`
	AccessRequests    []models.AccessRequest                     `yaml:"access_requests"`
	Ledger            []models.VerificationLogEntry              `yaml:"ledger"`
	Kyc               map[id.UserID]models.KycVerificationResult `yaml:"kyc"`
	DetailBundles     map[id.UserID]models.UserDetails           `yaml:"detail_bundles"`
	RestrictedUserIDs []id.UserID                                `yaml:"restricted_user_ids"`
	SuspendedUserIDs  []id.UserID                                `yaml:"suspended_user_ids"`
}

// Default returns the embedded fixture data.
func Default() (store.Seed, error) {
	return Parse(defaultSeed)
}

// Parse decodes a YAML seed and checks that every reference in it resolves.
// Unknown keys are rejected.
func Parse(data []byte) (store.Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return store.Seed{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "failed to decode seed")
	}
	seed := store.Seed{
		Users:             doc.Users,
		Orders:            doc.Orders,
		Transactions:      doc.Transactions,
		Facilities:        doc.Facilities,
		PaymentMethods:    doc.PaymentMethods,
		Enquiries:         doc.Enquiries,
		PartnerEntries:    doc.PartnerEntries,
		TestingOrders:     doc.TestingOrders,
		AccessRequests:    doc.AccessRequests,
		Ledger:            doc.Ledger,
		Kyc:               doc.Kyc,
		DetailBundles:     doc.DetailBundles,
		RestrictedUserIDs: doc.RestrictedUserIDs,
		SuspendedUserIDs:  doc.SuspendedUserIDs,
	}
	if err := validate(seed); err != nil {
		return store.Seed{}, err
	}
	return seed, nil
}

func validate(seed store.Seed) error {
	users := ids(seed.Users, models.RegistryUser.Key)
	orders := ids(seed.Orders, models.Order.Key)
	facilities := ids(seed.Facilities, models.Facility.Key)
	methods := ids(seed.PaymentMethods, models.PaymentMethod.Key)

	if len(users) != len(seed.Users) {
		return invalid("duplicate user id")
	}
	if len(orders) != len(seed.Orders) {
		return invalid("duplicate order id")
	}
	for _, o := range seed.Orders {
		if !users[o.UserID] {
			return invalidf("order %s references unknown user %s", o.ID, o.UserID)
		}
		if !o.FacilityID.IsZero() && !facilities[o.FacilityID] {
			return invalidf("order %s references unknown facility %s", o.ID, o.FacilityID)
		}
		if err := models.ValidateFlow(o.Flow); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInvalidInput, "order "+o.ID.String())
		}
	}
	for _, tx := range seed.Transactions {
		if !orders[tx.OrderID] {
			return invalidf("transaction %s references unknown order %s", tx.ID, tx.OrderID)
		}
		if tx.Payment != nil && !tx.Payment.MethodID.IsZero() && !methods[tx.Payment.MethodID] {
			return invalidf("transaction %s references unknown payment method %s", tx.ID, tx.Payment.MethodID)
		}
	}
	primaries := map[id.UserID]int{}
	for _, f := range seed.Facilities {
		if !users[f.OwnerID] {
			return invalidf("facility %s references unknown user %s", f.ID, f.OwnerID)
		}
		if f.IsPrimary {
			primaries[f.OwnerID]++
		}
	}
	for owner, n := range primaries {
		if n > 1 {
			return invalidf("user %s has %d primary facilities", owner, n)
		}
	}
	for _, pm := range seed.PaymentMethods {
		if !users[pm.OwnerID] {
			return invalidf("payment method %s references unknown user %s", pm.ID, pm.OwnerID)
		}
	}
	for _, e := range seed.Enquiries {
		if !users[e.UserID] {
			return invalidf("enquiry %s references unknown user %s", e.ID, e.UserID)
		}
	}
	for _, p := range seed.PartnerEntries {
		if !orders[p.OrderID] {
			return invalidf("partner entry %s references unknown order %s", p.ID, p.OrderID)
		}
	}
	for _, t := range seed.TestingOrders {
		if !orders[t.OrderID] {
			return invalidf("testing order references unknown order %s", t.OrderID)
		}
	}
	return nil
}

func ids[K comparable, T any](items []T, key func(T) K) map[K]bool {
	out := make(map[K]bool, len(items))
	for _, item := range items {
		out[key(item)] = true
	}
	return out
}

func invalid(msg string) error {
	return dErrors.New(dErrors.CodeInvalidInput, "invalid seed: "+msg)
}

func invalidf(format string, args ...any) error {
	return dErrors.Newf(dErrors.CodeInvalidInput, "invalid seed: "+format, args...)
}
