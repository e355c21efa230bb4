package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/platform/httputil"
	"tradedesk/pkg/requestcontext"
)

// defaultLedgerLimit bounds ledger slices when the caller sends no limit.
const defaultLedgerLimit = 50

// Service defines the dashboard operations the handler exposes.
type Service interface {
	ListUsers(ctx context.Context) []models.UserSummary
	UserProfile(ctx context.Context, userID id.UserID, ledgerLimit int) (*store.UserProfile, error)
	VerificationLog(ctx context.Context, entityID string, limit int) []storemodels.VerificationLogEntry
	RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*storemodels.RegistryUser, error)
	SetUserStatus(ctx context.Context, userID id.UserID, req *models.SetUserStatusRequest) error
	RestrictUser(ctx context.Context, userID id.UserID, restricted bool) error
	SuspendUser(ctx context.Context, userID id.UserID, suspended bool) error
	VerifyUserDetails(ctx context.Context, userID id.UserID) (*storemodels.RegistryUser, error)
	SetKyc(ctx context.Context, userID id.UserID, req *models.SetKycRequest) (*storemodels.KycVerificationResult, error)
	RecordLogin(ctx context.Context, userID id.UserID, success bool) error

	ListAccessRequests(ctx context.Context, status storemodels.AccessStatus) []storemodels.AccessRequest
	SubmitAccessRequest(ctx context.Context, req *models.SubmitAccessRequest) (*storemodels.AccessRequest, error)
	ApproveAccessRequest(ctx context.Context, requestID id.AccessRequestID) (*models.AccessDecision, error)
	RejectAccessRequest(ctx context.Context, requestID id.AccessRequestID) (*models.AccessDecision, error)

	ListOrders(ctx context.Context) []models.OrderSummary
	OrderDetail(ctx context.Context, orderID id.OrderID, ledgerLimit int) (*models.OrderDetail, error)
	AdvanceOrderFlow(ctx context.Context, orderID id.OrderID) (*storemodels.Order, error)
	MarkOrderItemSent(ctx context.Context, orderID id.OrderID, req *models.MarkItemSentRequest) (*storemodels.Order, error)

	ReplyToEnquiry(ctx context.Context, enquiryID id.EnquiryID, req *models.EnquiryReplyRequest) (*storemodels.Enquiry, error)
	UpdateEnquiryStatus(ctx context.Context, enquiryID id.EnquiryID, req *models.EnquiryStatusRequest) (*storemodels.Enquiry, error)

	AddFacility(ctx context.Context, req *models.AddFacilityRequest) (*storemodels.Facility, error)
	RemoveFacility(ctx context.Context, facilityID id.FacilityID) error
	RemovePaymentMethod(ctx context.Context, methodID id.PaymentMethodID) error

	AddPartnerEntry(ctx context.Context, req *models.PartnerEntryRequest) (*storemodels.PartnerThirdPartyEntry, error)
	UpdatePartnerEntry(ctx context.Context, entryID id.PartnerEntryID, req *models.PartnerEntryRequest) (*storemodels.PartnerThirdPartyEntry, error)
}

// Handler wires the dashboard endpoints to the dashboard service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a dashboard handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the dashboard endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.HandleListUsers)
		r.Post("/", h.HandleRegisterUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetUser)
			r.Post("/status", h.HandleSetUserStatus)
			r.Post("/restriction", h.HandleSetRestriction)
			r.Post("/suspension", h.HandleSetSuspension)
			r.Post("/verify-details", h.HandleVerifyDetails)
			r.Post("/kyc", h.HandleSetKyc)
			r.Post("/logins", h.HandleRecordLogin)
		})
	})
	r.Get("/entities/{id}/verifications", h.HandleVerificationLog)

	r.Route("/access-requests", func(r chi.Router) {
		r.Get("/", h.HandleListAccessRequests)
		r.Post("/", h.HandleSubmitAccessRequest)
		r.Post("/{id}/approve", h.HandleApproveAccessRequest)
		r.Post("/{id}/reject", h.HandleRejectAccessRequest)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.HandleListOrders)
		r.Get("/{id}", h.HandleGetOrder)
		r.Post("/{id}/advance", h.HandleAdvanceOrder)
		r.Post("/{id}/sent", h.HandleMarkItemSent)
	})

	r.Post("/enquiries/{id}/replies", h.HandleReplyToEnquiry)
	r.Post("/enquiries/{id}/status", h.HandleEnquiryStatus)

	r.Post("/facilities", h.HandleAddFacility)
	r.Delete("/facilities/{id}", h.HandleRemoveFacility)
	r.Delete("/payment-methods/{id}", h.HandleRemovePaymentMethod)

	r.Post("/partner-entries", h.HandleAddPartnerEntry)
	r.Put("/partner-entries/{id}", h.HandleUpdatePartnerEntry)
}

func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListUsers(r.Context()))
}

func (h *Handler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	u, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "register user failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}
	p, err := h.service.UserProfile(r.Context(), userID, limit)
	if err != nil {
		h.fail(w, r, "user profile failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req models.SetUserStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.service.SetUserStatus(r.Context(), userID, &req); err != nil {
		h.fail(w, r, "set user status failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSetRestriction(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.RestrictUser)
}

func (h *Handler) HandleSetSuspension(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.SuspendUser)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, set func(context.Context, id.UserID, bool) error) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req models.ToggleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := set(r.Context(), userID, req.Enabled); err != nil {
		h.fail(w, r, "toggle user flag failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleVerifyDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	u, err := h.service.VerifyUserDetails(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "verify details failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) HandleSetKyc(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req models.SetKycRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.service.SetKyc(r.Context(), userID, &req)
	if err != nil {
		h.fail(w, r, "set kyc failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) HandleRecordLogin(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req models.RecordLoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.service.RecordLogin(r.Context(), userID, req.Success); err != nil {
		h.fail(w, r, "record login failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVerificationLog serves the ledger slice for any entity id.
// Unknown ids yield an empty list.
func (h *Handler) HandleVerificationLog(w http.ResponseWriter, r *http.Request) {
	entityID := chi.URLParam(r, "id")
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.VerificationLog(r.Context(), entityID, limit))
}

func (h *Handler) HandleListAccessRequests(w http.ResponseWriter, r *http.Request) {
	status := storemodels.AccessStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeBadRequest, "invalid status %q", status))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.ListAccessRequests(r.Context(), status))
}

func (h *Handler) HandleSubmitAccessRequest(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAccessRequest
	if !h.decode(w, r, &req) {
		return
	}
	ar, err := h.service.SubmitAccessRequest(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "submit access request failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ar)
}

func (h *Handler) HandleApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	h.decideAccess(w, r, h.service.ApproveAccessRequest)
}

func (h *Handler) HandleRejectAccessRequest(w http.ResponseWriter, r *http.Request) {
	h.decideAccess(w, r, h.service.RejectAccessRequest)
}

func (h *Handler) decideAccess(w http.ResponseWriter, r *http.Request, decide func(context.Context, id.AccessRequestID) (*models.AccessDecision, error)) {
	requestID, err := id.ParseAccessRequestID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	decision, err := decide(r.Context(), requestID)
	if err != nil {
		h.fail(w, r, "access decision failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, decision)
}

func (h *Handler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListOrders(r.Context()))
}

func (h *Handler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}
	detail, err := h.service.OrderDetail(r.Context(), orderID, limit)
	if err != nil {
		h.fail(w, r, "order detail failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) HandleAdvanceOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	o, err := h.service.AdvanceOrderFlow(r.Context(), orderID)
	if err != nil {
		h.fail(w, r, "advance order failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) HandleMarkItemSent(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req models.MarkItemSentRequest
	if !h.decode(w, r, &req) {
		return
	}
	o, err := h.service.MarkOrderItemSent(r.Context(), orderID, &req)
	if err != nil {
		h.fail(w, r, "mark item sent failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) HandleReplyToEnquiry(w http.ResponseWriter, r *http.Request) {
	enquiryID, err := id.ParseEnquiryID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.EnquiryReplyRequest
	if !h.decode(w, r, &req) {
		return
	}
	e, err := h.service.ReplyToEnquiry(r.Context(), enquiryID, &req)
	if err != nil {
		h.fail(w, r, "enquiry reply failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) HandleEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	enquiryID, err := id.ParseEnquiryID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.EnquiryStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	e, err := h.service.UpdateEnquiryStatus(r.Context(), enquiryID, &req)
	if err != nil {
		h.fail(w, r, "enquiry status failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) HandleAddFacility(w http.ResponseWriter, r *http.Request) {
	var req models.AddFacilityRequest
	if !h.decode(w, r, &req) {
		return
	}
	f, err := h.service.AddFacility(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "add facility failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, f)
}

func (h *Handler) HandleRemoveFacility(w http.ResponseWriter, r *http.Request) {
	facilityID, err := id.ParseFacilityID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.RemoveFacility(r.Context(), facilityID); err != nil {
		h.fail(w, r, "remove facility failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleRemovePaymentMethod(w http.ResponseWriter, r *http.Request) {
	methodID, err := id.ParsePaymentMethodID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.RemovePaymentMethod(r.Context(), methodID); err != nil {
		h.fail(w, r, "remove payment method failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddPartnerEntry(w http.ResponseWriter, r *http.Request) {
	var req models.PartnerEntryRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.AddPartnerEntry(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "add partner entry failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) HandleUpdatePartnerEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := id.ParsePartnerEntryID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.PartnerEntryRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.UpdatePartnerEntry(r.Context(), entryID, &req)
	if err != nil {
		h.fail(w, r, "update partner entry failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", requestcontext.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		httputil.WriteError(w, err)
		return false
	}
	return true
}

// fail logs at warn for client errors and at error for everything else.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if httputil.StatusFor(err) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"actor", requestcontext.Actor(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return userID, true
}

func (h *Handler) orderID(w http.ResponseWriter, r *http.Request) (id.OrderID, bool) {
	orderID, err := id.ParseOrderID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return orderID, true
}

// limit reads ?limit= for ledger slices. Absent means the default; it must
// otherwise be a positive integer.
func (h *Handler) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLedgerLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeBadRequest, "invalid limit %q", raw))
		return 0, false
	}
	return n, true
}
