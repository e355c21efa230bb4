package store

import (
	"slices"

	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

func (r *Reducer) overlayID(v id.RequestID) id.RequestID {
	if v.IsZero() {
		return id.RequestID(r.newID())
	}
	return v
}

func (r *Reducer) addAppActivity(s State, a AddAppActivity) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		ev := a.Event
		ev.ID = r.overlayID(ev.ID)
		ev.At = r.stamp(ev.At)
		d.Activity = append(d.Activity, ev)
		return nil
	})
}

func (r *Reducer) addVideoCall(s State, a AddVideoCall) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		call := a.Call
		call.ID = r.overlayID(call.ID)
		if call.Status == "" {
			call.Status = "scheduled"
		}
		d.VideoCalls = append(d.VideoCalls, call)
		return nil
	})
}

func (r *Reducer) addArtisanalDocumentRequest(s State, a AddArtisanalDocumentRequest) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		req := a.Request
		req.ID = r.overlayID(req.ID)
		if slices.ContainsFunc(d.ArtisanalRequests, func(x models.ArtisanalRequest) bool { return x.ID == req.ID }) {
			return conflict("artisanal request", req.ID)
		}
		if req.Kind == "" {
			req.Kind = models.ArtisanalDocument
		}
		if req.Status == "" {
			req.Status = "requested"
		}
		req.RequestedAt = r.stamp(req.RequestedAt)
		d.ArtisanalRequests = append(d.ArtisanalRequests, req)
		return nil
	})
}

func (r *Reducer) updateArtisanalProfileStatus(s State, a UpdateArtisanalProfileStatus) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		d.ArtisanalProfileStatus = a.Status
		return nil
	})
}

func (r *Reducer) updateArtisanalAssetRequest(s State, a UpdateArtisanalAssetRequest) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		i := slices.IndexFunc(d.ArtisanalRequests, func(x models.ArtisanalRequest) bool { return x.ID == a.Request.ID })
		if i < 0 {
			return notFound("artisanal request", a.Request.ID)
		}
		req := a.Request
		if req.Kind == "" {
			req.Kind = d.ArtisanalRequests[i].Kind
		}
		d.ArtisanalRequests[i] = req
		return nil
	})
}

func (r *Reducer) addIncident(s State, a AddIncident) (State, error) {
	if a.Incident.Summary == "" {
		return s, dErrors.New(dErrors.CodeValidation, "incident summary is required")
	}
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		inc := a.Incident
		inc.ID = r.overlayID(inc.ID)
		inc.At = r.stamp(inc.At)
		d.Incidents = append(d.Incidents, inc)
		return nil
	})
}

func (r *Reducer) addLoginActivity(s State, a AddLoginActivity) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		attempt := a.Attempt
		attempt.At = r.stamp(attempt.At)
		d.LoginAttempts = append(d.LoginAttempts, attempt)
		return nil
	})
}

// addDeviceSession refreshes an existing session in place, otherwise appends.
func (r *Reducer) addDeviceSession(s State, a AddDeviceSession) (State, error) {
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		sess := a.Session
		sess.ID = r.overlayID(sess.ID)
		sess.LastSeenAt = r.stamp(sess.LastSeenAt)
		if i := slices.IndexFunc(d.Devices, func(x models.DeviceSession) bool { return x.ID == sess.ID }); i >= 0 {
			d.Devices[i] = sess
			return nil
		}
		d.Devices = append(d.Devices, sess)
		return nil
	})
}

func (r *Reducer) addSecurityNote(s State, a AddSecurityNote) (State, error) {
	if a.Note.Body == "" {
		return s, dErrors.New(dErrors.CodeValidation, "security note body is required")
	}
	return r.editDetails(s, a.UserID, func(d *models.UserDetails) error {
		note := a.Note
		note.ID = r.overlayID(note.ID)
		note.At = r.stamp(note.At)
		d.SecurityNotes = append(d.SecurityNotes, note)
		return nil
	})
}
