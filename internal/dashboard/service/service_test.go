package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/dashboard/service/mocks"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	"tradedesk/internal/store/seed"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/requestcontext"
)

var requestTime = time.Date(2025, 2, 12, 9, 30, 0, 0, time.UTC)

func testContext() context.Context {
	ctx := requestcontext.WithTime(context.Background(), requestTime)
	ctx = requestcontext.WithActor(ctx, "ops@tradedesk")
	return requestcontext.WithRequestID(ctx, "req-1")
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// ServiceValidationSuite checks that bad input never reaches the store and
// that store errors come back unchanged.
type ServiceValidationSuite struct {
	suite.Suite
	ctx       context.Context
	mockStore *mocks.MockStore
	service   *Service
}

func (s *ServiceValidationSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(ctrl)
	s.service = New(s.mockStore, WithIDGenerator(sequentialIDs("id")))
	s.ctx = testContext()
}

func TestServiceValidationSuite(t *testing.T) {
	suite.Run(t, new(ServiceValidationSuite))
}

func (s *ServiceValidationSuite) TestRejectsBeforeDispatch() {
	score := 1.5
	cases := map[string]func() error{
		"register without name": func() error {
			_, err := s.service.RegisterUser(s.ctx, &models.RegisterUserRequest{Email: "a@b.com"})
			return err
		},
		"register with bad email": func() error {
			_, err := s.service.RegisterUser(s.ctx, &models.RegisterUserRequest{Name: "A", Email: "not-an-email"})
			return err
		},
		"access request for admin role": func() error {
			_, err := s.service.SubmitAccessRequest(s.ctx, &models.SubmitAccessRequest{Name: "A", Email: "a@b.com", RequestedRole: storemodels.RoleAdmin})
			return err
		},
		"unknown user status": func() error {
			return s.service.SetUserStatus(s.ctx, "U1", &models.SetUserStatusRequest{Status: "Frozen"})
		},
		"kyc score out of range": func() error {
			_, err := s.service.SetKyc(s.ctx, "U1", &models.SetKycRequest{Source: storemodels.SourceAI, Score: &score})
			return err
		},
		"facility without address": func() error {
			_, err := s.service.AddFacility(s.ctx, &models.AddFacilityRequest{OwnerID: "U1", Label: "Depot"})
			return err
		},
		"empty reply": func() error {
			_, err := s.service.ReplyToEnquiry(s.ctx, "E1", &models.EnquiryReplyRequest{Body: "  "})
			return err
		},
		"partner entry with bad amount": func() error {
			_, err := s.service.AddPartnerEntry(s.ctx, &models.PartnerEntryRequest{OrderID: "O1", ShippingAmount: "ten"})
			return err
		},
		"sent item without name": func() error {
			_, err := s.service.MarkOrderItemSent(s.ctx, "O1", &models.MarkItemSentRequest{})
			return err
		},
	}
	for name, call := range cases {
		s.Run(name, func() {
			err := call()
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation), err.Error())
		})
	}
}

func (s *ServiceValidationSuite) TestRegisterUserDispatchesNormalizedUser() {
	var dispatched store.Action
	s.mockStore.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a store.Action) (store.State, error) {
			dispatched = a
			return store.NewReducer().Reduce(store.EmptyState(), a)
		})

	u, err := s.service.RegisterUser(s.ctx, &models.RegisterUserRequest{Name: " Jane Doe ", Email: "Jane@X.com", Country: "gb"})
	s.Require().NoError(err)

	add, ok := dispatched.(store.AddRegistryUser)
	s.Require().True(ok)
	s.Equal(id.UserID("id-1"), add.User.ID)
	s.Equal("Jane Doe", add.User.Name)
	s.Equal("jane@x.com", add.User.Email)
	s.Equal("GB", add.User.Country)
	s.Equal(storemodels.RoleBuyer, add.User.Role)
	s.Equal(requestTime, add.User.CreatedAt)

	s.Equal(storemodels.UserStatusUnderReview, u.Status)
}

func (s *ServiceValidationSuite) TestStoreErrorsPropagate() {
	notFound := dErrors.New(dErrors.CodeNotFound, "user U9 not found")
	s.mockStore.EXPECT().Dispatch(gomock.Any(), store.UpdateUserStatus{UserID: "U9", Status: storemodels.UserStatusVerified}).
		Return(store.EmptyState(), notFound)

	err := s.service.SetUserStatus(s.ctx, "U9", &models.SetUserStatusRequest{Status: storemodels.UserStatusVerified})
	s.ErrorIs(err, notFound)
}

func (s *ServiceValidationSuite) TestUnknownOrderIsNotFound() {
	s.mockStore.EXPECT().State().Return(store.EmptyState())
	_, err := s.service.AdvanceOrderFlow(s.ctx, "nope")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// ServiceWorkflowSuite runs the service against a real store seeded with the
// default fixtures.
type ServiceWorkflowSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.Store
	service *Service
}

func (s *ServiceWorkflowSuite) SetupTest() {
	data, err := seed.Default()
	s.Require().NoError(err)
	s.store = store.New(store.NewState(data), store.WithReducer(store.NewReducer(
		store.WithClock(func() time.Time { return requestTime }),
		store.WithIDGenerator(sequentialIDs("gen")),
	)))
	s.service = New(s.store, WithIDGenerator(sequentialIDs("id")))
	s.ctx = testContext()
}

func (s *ServiceWorkflowSuite) SetupSubTest() {
	s.SetupTest()
}

func TestServiceWorkflowSuite(t *testing.T) {
	suite.Run(t, new(ServiceWorkflowSuite))
}

func (s *ServiceWorkflowSuite) TestAccessRequestApproval() {
	s.Run("approval registers the applicant", func() {
		decision, err := s.service.ApproveAccessRequest(s.ctx, "acc-9001")
		s.Require().NoError(err)
		s.Equal(storemodels.AccessApproved, decision.Request.Status)
		s.Equal("ops@tradedesk", decision.Request.DecidedBy)
		s.Require().NotNil(decision.User)
		s.Equal("Jane Doe", decision.User.Name)
		s.Equal(storemodels.UserStatusUnderReview, decision.User.Status)

		log := s.service.VerificationLog(s.ctx, "acc-9001", 0)
		s.Require().Len(log, 1)
		s.Equal(storemodels.KindAccessApproved, log[0].Kind)
	})

	s.Run("decided request cannot be decided again", func() {
		_, err := s.service.RejectAccessRequest(s.ctx, "acc-9001")
		s.Require().NoError(err)
		_, err = s.service.ApproveAccessRequest(s.ctx, "acc-9001")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("submitted request is pending", func() {
		ar, err := s.service.SubmitAccessRequest(s.ctx, &models.SubmitAccessRequest{Name: "Li Wei", Email: "li@example.com", RequestedRole: storemodels.RoleSeller})
		s.Require().NoError(err)
		s.Equal(storemodels.AccessPending, ar.Status)
		s.Equal(requestTime, ar.SubmittedAt)
	})
}

func (s *ServiceWorkflowSuite) TestSetKycRecordsDecision() {
	score := 0.91
	res, err := s.service.SetKyc(s.ctx, "usr-kwame", &models.SetKycRequest{Source: storemodels.SourceAI, Score: &score})
	s.Require().NoError(err)
	s.Equal("AI verified (91%)", res.Label())
	s.Equal(uint64(1), res.Version)

	_, err = s.service.SetKyc(s.ctx, "usr-kwame", &models.SetKycRequest{Source: storemodels.SourceManual, BiometricSource: storemodels.BiometricOverride})
	s.Require().NoError(err)

	log := s.service.VerificationLog(s.ctx, "usr-kwame", 10)
	s.Require().Len(log, 2)
	s.Equal(storemodels.KindBiometricOverride, log[0].Kind)
	s.Equal("Manual override", log[0].Label)
	s.Equal(storemodels.KindKycResultSet, log[1].Kind)
	s.Equal("0.91", log[1].Metadata["score"])

	_, err = s.service.SetKyc(s.ctx, "usr-kwame", &models.SetKycRequest{Source: storemodels.SourceAPI, ExpectedVersion: 1})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceWorkflowSuite) TestAdvanceOrderFlow() {
	o, err := s.service.AdvanceOrderFlow(s.ctx, "ord-1001")
	s.Require().NoError(err)
	s.Equal("Certification", o.Flow[3].Name)
	s.True(o.Flow[3].Active)
	s.True(o.Flow[2].Completed)

	_, err = s.service.AdvanceOrderFlow(s.ctx, "ord-1001")
	s.Require().NoError(err)
	o, err = s.service.AdvanceOrderFlow(s.ctx, "ord-1001")
	s.Require().NoError(err)
	s.Equal(storemodels.OrderStatusCompleted, o.Status)

	_, err = s.service.AdvanceOrderFlow(s.ctx, "ord-1001")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	o, err = s.service.AdvanceOrderFlow(s.ctx, "ord-1002")
	s.Require().NoError(err)
	s.Equal(storemodels.OrderStatusInProgress, o.Status)
}

func (s *ServiceWorkflowSuite) TestMarkOrderItemSent() {
	o, err := s.service.MarkOrderItemSent(s.ctx, "ord-1001", &models.MarkItemSentRequest{Item: "invoice"})
	s.Require().NoError(err)
	last := o.SentToUser[len(o.SentToUser)-1]
	s.Equal("invoice", last.Item)
	s.Equal("email", last.Channel)
	s.Equal("ops@tradedesk", last.Actor)
}

func (s *ServiceWorkflowSuite) TestEnquiries() {
	s.Run("reply moves an open enquiry to in progress", func() {
		e, err := s.service.ReplyToEnquiry(s.ctx, "enq-301", &models.EnquiryReplyRequest{Body: "Review is scheduled for Friday."})
		s.Require().NoError(err)
		s.Equal(storemodels.EnquiryInProgress, e.Status)
		s.Require().Len(e.Replies, 1)
		s.Equal("ops@tradedesk", e.Replies[0].Author)
	})

	s.Run("resolved enquiries take no replies", func() {
		_, err := s.service.UpdateEnquiryStatus(s.ctx, "enq-302", &models.EnquiryStatusRequest{Status: storemodels.EnquiryResolved})
		s.Require().NoError(err)
		_, err = s.service.ReplyToEnquiry(s.ctx, "enq-302", &models.EnquiryReplyRequest{Body: "One more thing"})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func (s *ServiceWorkflowSuite) TestFacilities() {
	f, err := s.service.AddFacility(s.ctx, &models.AddFacilityRequest{
		OwnerID: "usr-kwame",
		Label:   "Tema port",
		Address: storemodels.Address{Line1: "Harbour Rd", City: "Tema", Country: "gh"},
	})
	s.Require().NoError(err)
	s.True(f.IsPrimary)
	s.Equal("GH", f.Address.Country)

	s.Require().NoError(s.service.RemoveFacility(s.ctx, f.ID))
	s.True(dErrors.HasCode(s.service.RemoveFacility(s.ctx, f.ID), dErrors.CodeNotFound))

	_, err = s.service.AddFacility(s.ctx, &models.AddFacilityRequest{
		OwnerID: "ghost",
		Label:   "Nowhere",
		Address: storemodels.Address{Line1: "x", City: "y", Country: "z"},
	})
	s.True(dErrors.HasCode(err, dErrors.CodeDanglingReference))
}

func (s *ServiceWorkflowSuite) TestPartnerEntries() {
	p, err := s.service.AddPartnerEntry(s.ctx, &models.PartnerEntryRequest{
		OrderID:          "ord-1002",
		Documents:        []string{"waybill.pdf", " waybill.pdf"},
		ShippingAmount:   "125.50",
		ShippingCurrency: "usd",
		TestingPartner:   "Intertek",
	})
	s.Require().NoError(err)
	s.Equal([]string{"waybill.pdf"}, p.Documents)
	s.True(decimal.RequireFromString("125.5").Equal(p.ShippingAmount))
	s.Equal("USD", p.ShippingCurrency)

	updated, err := s.service.UpdatePartnerEntry(s.ctx, p.ID, &models.PartnerEntryRequest{
		OrderID:         "ord-1002",
		Status:          storemodels.PartnerInTransit,
		TestingPartner:  "Intertek",
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)
	s.Equal(uint64(2), updated.Version)

	_, err = s.service.UpdatePartnerEntry(s.ctx, p.ID, &models.PartnerEntryRequest{OrderID: "ord-1002", ExpectedVersion: 1})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceWorkflowSuite) TestRecordLogin() {
	const chrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	ctx := requestcontext.WithClientMetadata(s.ctx, "41.66.12.9", chrome)

	s.Require().NoError(s.service.RecordLogin(ctx, "usr-kwame", true))
	s.Require().NoError(s.service.RecordLogin(ctx, "usr-kwame", false))
	s.Require().NoError(s.service.RecordLogin(ctx, "usr-kwame", true))

	d := store.UserDetails(s.store.State(), "usr-kwame")
	s.Len(d.LoginAttempts, 3)
	s.False(d.LoginAttempts[1].Success)
	s.Contains(d.LoginAttempts[0].Device, "Chrome")
	s.Require().Len(d.Devices, 1)
	s.True(d.Devices[0].Trusted)
	s.Equal("41.66.12.9", d.Devices[0].IP)
}

func (s *ServiceWorkflowSuite) TestUserProfile() {
	s.Require().NoError(s.service.SuspendUser(s.ctx, "usr-fatou", true))

	p, err := s.service.UserProfile(s.ctx, "usr-fatou", 5)
	s.Require().NoError(err)
	s.Equal(storemodels.UserStatusSuspended, p.EffectiveStatus)
	s.True(p.Restricted)
	s.Equal("Manual override", p.KycLabel)

	_, err = s.service.UserProfile(s.ctx, "ghost", 5)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	users := s.service.ListUsers(s.ctx)
	s.Len(users, 5)
	s.Equal("Amara Okafor", users[0].Name)
}
