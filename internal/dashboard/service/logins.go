package service

import (
	"context"

	"tradedesk/internal/device"
	"tradedesk/internal/store"
	storemodels "tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	"tradedesk/pkg/requestcontext"
)

// RecordLogin appends a login attempt to the user's overlay, taking the
// client IP and user agent from the request. A successful login also
// refreshes the device session for that browser; a device the user has
// signed in from before is marked trusted.
func (s *Service) RecordLogin(ctx context.Context, userID id.UserID, success bool) error {
	ua := requestcontext.UserAgent(ctx)
	ip := requestcontext.ClientIP(ctx)
	now := requestcontext.Now(ctx)
	name := device.ParseUserAgent(ua)

	if _, err := s.store.Dispatch(ctx, store.AddLoginActivity{
		UserID:  userID,
		Attempt: storemodels.LoginAttempt{At: now, IP: ip, Device: name, Success: success},
	}); err != nil {
		return err
	}
	if !success {
		s.logAudit(ctx, "login_failed", "user_id", userID.String(), "device", name)
		return nil
	}

	fingerprint := s.devices.ComputeFingerprint(ua)
	session := storemodels.DeviceSession{Device: name, IP: ip, LastSeenAt: now}
	if fingerprint != "" {
		session.ID = id.RequestID(fingerprint)
		for _, known := range store.UserDetails(s.store.State(), userID).Devices {
			if matched, _ := s.devices.CompareFingerprints(known.ID.String(), fingerprint); matched {
				session.Trusted = true
				break
			}
		}
	}
	if _, err := s.store.Dispatch(ctx, store.AddDeviceSession{UserID: userID, Session: session}); err != nil {
		return err
	}
	s.logAudit(ctx, "login_recorded", "user_id", userID.String(), "device", name, "trusted", session.Trusted)
	return nil
}
