package device

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

const unknownDevice = "Unknown Device"

// Service derives device display names and stable device fingerprints from
// user-agent strings. The fingerprint doubles as the device session id in the
// per-user overlay, so a returning browser refreshes its existing session.
type Service struct {
	enabled bool
}

func NewService(enabled bool) *Service {
	return &Service{enabled: enabled}
}

// ParseUserAgent renders a user agent as "<browser> on <os>".
func ParseUserAgent(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return unknownDevice
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}
	os := ua.OS()
	if os == "" {
		os = ua.Platform()
	}
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(fmt.Sprintf("%s on %s", browser, os))
}

// ComputeFingerprint hashes the browser family, its major version and the
// platform. Minor browser updates keep the same fingerprint. Returns "" when
// fingerprinting is disabled.
func (s *Service) ComputeFingerprint(userAgent string) string {
	if !s.enabled {
		return ""
	}
	ua := useragent.New(userAgent)
	browser, version := ua.Browser()
	major, _, _ := strings.Cut(version, ".")
	sum := sha256.Sum256([]byte(strings.Join([]string{browser, major, ua.OS(), ua.Platform()}, "|")))
	return hex.EncodeToString(sum[:])
}

// CompareFingerprints reports whether a login matches the stored device.
// Drift is only reported when both sides are known.
func (s *Service) CompareFingerprints(stored, current string) (matched bool, drift bool) {
	if stored == "" || current == "" {
		return false, false
	}
	if stored == current {
		return true, false
	}
	return false, true
}
