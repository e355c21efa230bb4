package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"tradedesk/internal/dashboard/models"
	"tradedesk/internal/device"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
	"tradedesk/pkg/requestcontext"
)

// Store is the session store the dashboard dispatches to.
type Store interface {
	Dispatch(ctx context.Context, a store.Action) (store.State, error)
	State() store.State
}

// Service turns dashboard operations into validated store dispatches and
// reads the results back through the view resolvers. Validation happens here,
// before anything is dispatched.
type Service struct {
	store   Store
	devices *device.Service
	logger  *slog.Logger
	newID   func() string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithDeviceService(devices *device.Service) Option {
	return func(s *Service) {
		s.devices = devices
	}
}

// WithIDGenerator overrides the generator used for new record ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

func New(st Store, opts ...Option) *Service {
	s := &Service{
		store:   st,
		devices: device.NewService(true),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUsers returns every registry user in insertion order.
func (s *Service) ListUsers(ctx context.Context) []models.UserSummary {
	state := s.store.State()
	out := make([]models.UserSummary, 0, state.Users.Len())
	for u := range state.Users.All() {
		out = append(out, models.UserSummary{
			RegistryUser:    u,
			EffectiveStatus: store.EffectiveUserStatus(state, u.ID),
			KycLabel:        store.KycLabel(state, u.ID),
		})
	}
	return out
}

// UserProfile joins everything shown on the user screen.
func (s *Service) UserProfile(ctx context.Context, userID id.UserID, ledgerLimit int) (*store.UserProfile, error) {
	p, ok := store.ResolveUserProfile(s.store.State(), userID, ledgerLimit)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "user %s not found", userID)
	}
	return &p, nil
}

// VerificationLog returns the ledger slice for any entity id, newest first.
func (s *Service) VerificationLog(ctx context.Context, entityID string, limit int) []storemodels.VerificationLogEntry {
	return store.LedgerForEntity(s.store.State(), entityID, limit)
}

func (s *Service) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*storemodels.RegistryUser, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u := storemodels.RegistryUser{
		ID:        id.UserID(s.newID()),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Country:   req.Country,
		Status:    req.Status,
		Risk:      req.Risk,
		CreatedAt: requestcontext.Now(ctx),
	}
	state, err := s.store.Dispatch(ctx, store.AddRegistryUser{User: u})
	if err != nil {
		return nil, err
	}
	created, _ := state.Users.Get(u.ID)
	s.logAudit(ctx, "user_registered", "user_id", u.ID.String(), "role", string(u.Role))
	return &created, nil
}

func (s *Service) SetUserStatus(ctx context.Context, userID id.UserID, req *models.SetUserStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.store.Dispatch(ctx, store.UpdateUserStatus{UserID: userID, Status: req.Status}); err != nil {
		return err
	}
	s.logAudit(ctx, "user_status_changed", "user_id", userID.String(), "status", string(req.Status))
	return nil
}

func (s *Service) RestrictUser(ctx context.Context, userID id.UserID, restricted bool) error {
	if _, err := s.store.Dispatch(ctx, store.SetUserRestriction{UserID: userID, Restricted: restricted}); err != nil {
		return err
	}
	s.logAudit(ctx, "user_restriction_changed", "user_id", userID.String(), "restricted", restricted)
	return nil
}

func (s *Service) SuspendUser(ctx context.Context, userID id.UserID, suspended bool) error {
	if _, err := s.store.Dispatch(ctx, store.SetUserSuspension{UserID: userID, Suspended: suspended}); err != nil {
		return err
	}
	s.logAudit(ctx, "user_suspension_changed", "user_id", userID.String(), "suspended", suspended)
	return nil
}

func (s *Service) VerifyUserDetails(ctx context.Context, userID id.UserID) (*storemodels.RegistryUser, error) {
	state, err := s.store.Dispatch(ctx, store.VerifyUserDetails{
		UserID:     userID,
		VerifiedAt: requestcontext.Now(ctx),
		Actor:      requestcontext.Actor(ctx),
	})
	if err != nil {
		return nil, err
	}
	u, _ := state.Users.Get(userID)
	return &u, nil
}

// SetKyc overwrites the user's KYC result and records the decision in the
// verification ledger.
func (s *Service) SetKyc(ctx context.Context, userID id.UserID, req *models.SetKycRequest) (*storemodels.KycVerificationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	result := storemodels.KycVerificationResult{
		Source:          req.Source,
		Score:           req.Score,
		LastVerifiedAt:  now,
		BiometricSource: req.BiometricSource,
	}
	state, err := s.store.Dispatch(ctx, store.SetKycVerification{
		UserID:          userID,
		Result:          result,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return nil, err
	}
	current, _ := store.KycVerification(state, userID)

	kind := storemodels.KindKycResultSet
	if req.BiometricSource == storemodels.BiometricOverride {
		kind = storemodels.KindBiometricOverride
	}
	metadata := map[string]string{"version": strconv.FormatUint(current.Version, 10)}
	if req.Score != nil {
		metadata["score"] = strconv.FormatFloat(*req.Score, 'f', -1, 64)
	}
	if _, err := s.store.Dispatch(ctx, store.RecordVerification{Entry: storemodels.VerificationLogEntry{
		Timestamp:  now,
		Source:     req.Source,
		Kind:       kind,
		EntityID:   userID.String(),
		EntityType: id.EntityUser,
		Result:     string(req.BiometricSource),
		Label:      current.Label(),
		Actor:      requestcontext.Actor(ctx),
		Metadata:   metadata,
	}}); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record kyc decision")
	}
	return &current, nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "actor", requestcontext.Actor(ctx), "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}
