package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tradedesk/internal/dashboard/handler/mocks"
	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/dashboard/service"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	"tradedesk/internal/store/seed"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/platform/middleware/actor"
	"tradedesk/pkg/platform/middleware/metadata"
	"tradedesk/pkg/platform/middleware/requesttime"
	"tradedesk/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router      chi.Router
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.mockService, logger).Register(s.router)
}

func (s *HandlerSuite) SetupSubTest() {
	s.SetupTest()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, req)
}

func (s *HandlerSuite) TestRegisterUser() {
	s.Run("created user is returned", func() {
		s.mockService.EXPECT().
			RegisterUser(gomock.Any(), &models.RegisterUserRequest{Name: "Jane Doe", Email: "jane@x.com"}).
			Return(&storemodels.RegistryUser{ID: "U9", Name: "Jane Doe", Status: storemodels.UserStatusUnderReview}, nil)

		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/users", map[string]string{"name": "Jane Doe", "email": "jane@x.com"}))

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		u := testutil.UnmarshalResponse[storemodels.RegistryUser](s.T(), rr)
		s.Equal(id.UserID("U9"), u.ID)
		s.Equal(storemodels.UserStatusUnderReview, u.Status)
	})

	s.Run("unknown fields are rejected before the service", func() {
		rr := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/users", `{"name":"Jane","admin":true}`))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("validation errors map to 400", func() {
		s.mockService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "email is required"))

		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/users", map[string]string{"name": "Jane"}))

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal(string(dErrors.CodeValidation), body["error"])
		s.Equal("email is required", body["error_description"])
	})
}

func (s *HandlerSuite) TestErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", dErrors.New(dErrors.CodeNotFound, "user U1 not found"), http.StatusNotFound},
		{"dangling reference", dErrors.New(dErrors.CodeDanglingReference, "user U1 does not exist"), http.StatusUnprocessableEntity},
		{"conflict", dErrors.New(dErrors.CodeConflict, "stale version"), http.StatusConflict},
		{"invalid state", dErrors.New(dErrors.CodeInvalidState, "order flow is already complete"), http.StatusConflict},
		{"uncoded", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().AdvanceOrderFlow(gomock.Any(), id.OrderID("O1")).Return(nil, tc.err)

			rr := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/orders/O1/advance"))

			testutil.AssertStatus(s.T(), rr, tc.status)
			if tc.status == http.StatusInternalServerError {
				s.Empty(testutil.UnmarshalErrorResponse(s.T(), rr)["error_description"])
			}
		})
	}
}

func (s *HandlerSuite) TestLedgerLimit() {
	s.Run("default limit", func() {
		s.mockService.EXPECT().VerificationLog(gomock.Any(), "ord-1001", defaultLedgerLimit).
			Return([]storemodels.VerificationLogEntry{{ID: "v1", EntityID: "ord-1001"}})

		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/entities/ord-1001/verifications"))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		entries := testutil.UnmarshalResponse[[]storemodels.VerificationLogEntry](s.T(), rr)
		s.Len(*entries, 1)
	})

	s.Run("explicit limit", func() {
		s.mockService.EXPECT().UserProfile(gomock.Any(), id.UserID("U1"), 5).
			Return(&store.UserProfile{User: storemodels.RegistryUser{ID: "U1"}}, nil)

		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/users/U1?limit=5"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	for _, raw := range []string{"-1", "0", "ten"} {
		s.Run("rejects limit "+raw, func() {
			rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/entities/U1/verifications?limit="+raw))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
		})
	}
}

func (s *HandlerSuite) TestToggles() {
	s.Run("restriction", func() {
		s.mockService.EXPECT().RestrictUser(gomock.Any(), id.UserID("U1"), true).Return(nil)
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/users/U1/restriction", models.ToggleRequest{Enabled: true}))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})

	s.Run("suspension", func() {
		s.mockService.EXPECT().SuspendUser(gomock.Any(), id.UserID("U1"), false).Return(nil)
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/users/U1/suspension", models.ToggleRequest{}))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})
}

func (s *HandlerSuite) TestAccessRequests() {
	s.Run("status filter", func() {
		s.mockService.EXPECT().ListAccessRequests(gomock.Any(), storemodels.AccessPending).
			Return([]storemodels.AccessRequest{{ID: "A1", Status: storemodels.AccessPending}})

		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/access-requests?status=pending"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("unknown status filter", func() {
		rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/access-requests?status=maybe"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("approve", func() {
		s.mockService.EXPECT().ApproveAccessRequest(gomock.Any(), id.AccessRequestID("A1")).
			Return(&models.AccessDecision{
				Request: storemodels.AccessRequest{ID: "A1", Status: storemodels.AccessApproved, UserID: "U7"},
				User:    &storemodels.RegistryUser{ID: "U7"},
			}, nil)

		rr := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/access-requests/A1/approve"))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		decision := testutil.UnmarshalResponse[models.AccessDecision](s.T(), rr)
		s.Require().NotNil(decision.User)
		s.Equal(id.UserID("U7"), decision.User.ID)
	})
}

func (s *HandlerSuite) TestRemovals() {
	s.mockService.EXPECT().RemoveFacility(gomock.Any(), id.FacilityID("F1")).Return(nil)
	s.mockService.EXPECT().RemovePaymentMethod(gomock.Any(), id.PaymentMethodID("PM1")).
		Return(dErrors.New(dErrors.CodeNotFound, "payment method PM1 not found"))

	testutil.AssertStatus(s.T(), s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/facilities/F1")), http.StatusNoContent)
	testutil.AssertStatus(s.T(), s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/payment-methods/PM1")), http.StatusNotFound)
}

// TestDashboardFlow drives the real service and store through the router,
// with the same context middleware the server installs.
func TestDashboardFlow(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)
	st := store.New(store.NewState(data))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(requesttime.Middleware, metadata.ClientMetadata, actor.Middleware)
	New(service.New(st), logger).Register(r)

	send := func(req *http.Request) *httptest.ResponseRecorder {
		return testutil.DoRequest(r, testutil.AsActor(req, "ops@tradedesk"))
	}

	testutil.Given(t, "a pending access request from Jane Doe", func(t *testing.T) {
		testutil.When(t, "an admin approves it", func(t *testing.T) {
			rr := send(testutil.NewRequest(t, http.MethodPost, "/access-requests/acc-9001/approve"))
			testutil.AssertStatus(t, rr, http.StatusOK)
			decision := testutil.UnmarshalResponse[models.AccessDecision](t, rr)

			testutil.Then(t, "Jane is registered under review", func(t *testing.T) {
				require.NotNil(t, decision.User)
				assert.Equal(t, "Jane Doe", decision.User.Name)
				assert.Equal(t, storemodels.UserStatusUnderReview, decision.User.Status)
				assert.Equal(t, "ops@tradedesk", decision.Request.DecidedBy)
			})

			testutil.Then(t, "the approval is in the verification log", func(t *testing.T) {
				rr := send(testutil.NewRequest(t, http.MethodGet, "/entities/acc-9001/verifications"))
				entries := testutil.UnmarshalResponse[[]storemodels.VerificationLogEntry](t, rr)
				require.Len(t, *entries, 1)
				assert.Equal(t, storemodels.KindAccessApproved, (*entries)[0].Kind)
				assert.Equal(t, "ops@tradedesk", (*entries)[0].Actor)
			})

			testutil.Then(t, "a second decision conflicts", func(t *testing.T) {
				rr := send(testutil.NewRequest(t, http.MethodPost, "/access-requests/acc-9001/reject"))
				testutil.AssertStatusAndError(t, rr, http.StatusConflict, string(dErrors.CodeInvalidState))
			})
		})
	})

	testutil.Given(t, "a user signing in from a browser", func(t *testing.T) {
		const ua = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
		login := func() {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/users/usr-jonas/logins", models.RecordLoginRequest{Success: true})
			testutil.AssertStatus(t, send(testutil.FromClient(req, ua, "85.226.1.9")), http.StatusNoContent)
		}

		testutil.When(t, "they sign in twice", func(t *testing.T) {
			login()
			login()

			testutil.Then(t, "the profile shows one trusted device", func(t *testing.T) {
				rr := send(testutil.NewRequest(t, http.MethodGet, "/users/usr-jonas"))
				testutil.AssertStatus(t, rr, http.StatusOK)
				p := testutil.UnmarshalResponse[store.UserProfile](t, rr)
				assert.Len(t, p.Details.LoginAttempts, 2)
				require.Len(t, p.Details.Devices, 1)
				assert.True(t, p.Details.Devices[0].Trusted)
				assert.Equal(t, "85.226.1.9", p.Details.Devices[0].IP)
			})
		})
	})

	testutil.Given(t, "an order in testing", func(t *testing.T) {
		testutil.When(t, "the flow is advanced", func(t *testing.T) {
			rr := send(testutil.NewRequest(t, http.MethodPost, "/orders/ord-1001/advance"))
			testutil.AssertStatus(t, rr, http.StatusOK)

			testutil.Then(t, "the order detail shows certification active", func(t *testing.T) {
				rr := send(testutil.NewRequest(t, http.MethodGet, "/orders/ord-1001"))
				detail := testutil.UnmarshalResponse[models.OrderDetail](t, rr)
				assert.Equal(t, "Amara Okafor", detail.UserName)
				assert.True(t, detail.Order.Flow[3].Active)
				assert.Len(t, detail.Transactions, 1)
				require.NotNil(t, detail.TestingOrder)
			})

			testutil.Then(t, "each transaction carries its net amount", func(t *testing.T) {
				rr := send(testutil.NewRequest(t, http.MethodGet, "/orders/ord-1001"))
				raw := testutil.UnmarshalResponse[struct {
					Transactions []map[string]any `json:"transactions"`
				}](t, rr)
				require.Len(t, raw.Transactions, 1)
				assert.Equal(t, "145040", raw.Transactions[0]["net"])
				assert.Equal(t, "148000", raw.Transactions[0]["final"])
			})
		})
	})
}
