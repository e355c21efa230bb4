package models

import (
	"slices"
	"time"

	id "tradedesk/pkg/domain"
)

type VideoCall struct {
	ID          id.RequestID `json:"id" yaml:"id"`
	ScheduledAt time.Time    `json:"scheduled_at" yaml:"scheduled_at"`
	Host        string       `json:"host" yaml:"host"`
	Status      string       `json:"status" yaml:"status"`
	Notes       string       `json:"notes,omitempty" yaml:"notes"`
}

type ArtisanalRequestKind string

const (
	ArtisanalDocument ArtisanalRequestKind = "document"
	ArtisanalAsset    ArtisanalRequestKind = "asset"
)

// ArtisanalRequest asks an artisanal miner for a document (licence, permit)
// or an asset (site photo, sample video).
type ArtisanalRequest struct {
	ID          id.RequestID         `json:"id" yaml:"id"`
	Kind        ArtisanalRequestKind `json:"kind" yaml:"kind"`
	Title       string               `json:"title" yaml:"title"`
	Status      string               `json:"status" yaml:"status"`
	RequestedAt time.Time            `json:"requested_at" yaml:"requested_at"`
	UpdatedAt   *time.Time           `json:"updated_at,omitempty" yaml:"updated_at"`
	Notes       string               `json:"notes,omitempty" yaml:"notes"`
}

type Incident struct {
	ID       id.RequestID `json:"id" yaml:"id"`
	Severity string       `json:"severity" yaml:"severity"`
	Summary  string       `json:"summary" yaml:"summary"`
	At       time.Time    `json:"at" yaml:"at"`
	Actor    string       `json:"actor" yaml:"actor"`
}

type LoginAttempt struct {
	At      time.Time `json:"at" yaml:"at"`
	IP      string    `json:"ip" yaml:"ip"`
	Device  string    `json:"device" yaml:"device"`
	Success bool      `json:"success" yaml:"success"`
}

type DeviceSession struct {
	ID         id.RequestID `json:"id" yaml:"id"`
	Device     string       `json:"device" yaml:"device"`
	IP         string       `json:"ip" yaml:"ip"`
	LastSeenAt time.Time    `json:"last_seen_at" yaml:"last_seen_at"`
	Trusted    bool         `json:"trusted" yaml:"trusted"`
}

type SecurityNote struct {
	ID     id.RequestID `json:"id" yaml:"id"`
	Body   string       `json:"body" yaml:"body"`
	Author string       `json:"author" yaml:"author"`
	At     time.Time    `json:"at" yaml:"at"`
}

type ActivityEvent struct {
	ID          id.RequestID `json:"id" yaml:"id"`
	Kind        string       `json:"kind" yaml:"kind"`
	Description string       `json:"description" yaml:"description"`
	At          time.Time    `json:"at" yaml:"at"`
}

// UserDetails is the per-user detail bundle shown on the user screen.
// Collections are never nil in a bundle produced by the store.
type UserDetails struct {
	VideoCalls             []VideoCall        `json:"video_calls" yaml:"video_calls"`
	ArtisanalRequests      []ArtisanalRequest `json:"artisanal_requests" yaml:"artisanal_requests"`
	ArtisanalProfileStatus string             `json:"artisanal_profile_status,omitempty" yaml:"artisanal_profile_status"`
	Incidents              []Incident         `json:"incidents" yaml:"incidents"`
	LoginAttempts          []LoginAttempt     `json:"login_attempts" yaml:"login_attempts"`
	Devices                []DeviceSession    `json:"devices" yaml:"devices"`
	SecurityNotes          []SecurityNote     `json:"security_notes" yaml:"security_notes"`
	Activity               []ActivityEvent    `json:"activity" yaml:"activity"`
}

// EmptyUserDetails returns a well-formed bundle with no entries.
func EmptyUserDetails() UserDetails {
	return UserDetails{
		VideoCalls:        []VideoCall{},
		ArtisanalRequests: []ArtisanalRequest{},
		Incidents:         []Incident{},
		LoginAttempts:     []LoginAttempt{},
		Devices:           []DeviceSession{},
		SecurityNotes:     []SecurityNote{},
		Activity:          []ActivityEvent{},
	}
}

// Clone deep-copies the bundle, turning nil collections into empty ones.
func (d UserDetails) Clone() UserDetails {
	return UserDetails{
		VideoCalls:             cloneOrEmpty(d.VideoCalls),
		ArtisanalRequests:      cloneOrEmpty(d.ArtisanalRequests),
		ArtisanalProfileStatus: d.ArtisanalProfileStatus,
		Incidents:              cloneOrEmpty(d.Incidents),
		LoginAttempts:          cloneOrEmpty(d.LoginAttempts),
		Devices:                cloneOrEmpty(d.Devices),
		SecurityNotes:          cloneOrEmpty(d.SecurityNotes),
		Activity:               cloneOrEmpty(d.Activity),
	}
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
