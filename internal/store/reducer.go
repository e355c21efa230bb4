package store

import (
	"time"

	"github.com/google/uuid"

	dErrors "tradedesk/pkg/domain-errors"
)

// Reducer maps (state, action) to the next state. It performs no I/O; time
// and id generation are injected so results are reproducible in tests.
type Reducer struct {
	now   func() time.Time
	newID func() string
}

type ReducerOption func(*Reducer)

// WithClock overrides the clock used to stamp records that arrive without a
// timestamp.
func WithClock(now func() time.Time) ReducerOption {
	return func(r *Reducer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides the generator used for records that arrive
// without an id.
func WithIDGenerator(gen func() string) ReducerOption {
	return func(r *Reducer) {
		if gen != nil {
			r.newID = gen
		}
	}
}

func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce applies a to s. On error the returned state is s itself: a failed
// dispatch never changes anything.
func (r *Reducer) Reduce(s State, a Action) (State, error) {
	next, err := r.reduce(s, a)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (r *Reducer) reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case AddRegistryUser:
		return r.addRegistryUser(s, a)
	case UpdateUserStatus:
		return r.updateUserStatus(s, a)
	case SetUserRestriction:
		return r.setUserRestriction(s, a)
	case SetUserSuspension:
		return r.setUserSuspension(s, a)
	case VerifyUserDetails:
		return r.verifyUserDetails(s, a)
	case AddFacility:
		return r.addFacility(s, a)
	case RemoveFacility:
		return r.removeFacility(s, a)
	case AddPaymentMethod:
		return r.addPaymentMethod(s, a)
	case RemovePaymentMethod:
		return r.removePaymentMethod(s, a)
	case AddOrder:
		return r.addOrder(s, a)
	case UpdateOrder:
		return r.updateOrder(s, a)
	case RecordOrderItemSent:
		return r.recordOrderItemSent(s, a)
	case AddTransaction:
		return r.addTransaction(s, a)
	case UpdateTransaction:
		return r.updateTransaction(s, a)
	case AddEnquiry:
		return r.addEnquiry(s, a)
	case UpdateEnquiry:
		return r.updateEnquiry(s, a)
	case AddEnquiryReply:
		return r.addEnquiryReply(s, a)
	case RecordVerification:
		return r.recordVerification(s, a)
	case SetKycVerification:
		return r.setKycVerification(s, a)
	case AddPartnerThirdParty:
		return r.addPartnerThirdParty(s, a)
	case UpdatePartnerThirdParty:
		return r.updatePartnerThirdParty(s, a)
	case AddTestingOrder:
		return r.addTestingOrder(s, a)
	case UpdateTestingOrder:
		return r.updateTestingOrder(s, a)
	case AddAppActivity:
		return r.addAppActivity(s, a)
	case AddVideoCall:
		return r.addVideoCall(s, a)
	case AddArtisanalDocumentRequest:
		return r.addArtisanalDocumentRequest(s, a)
	case UpdateArtisanalProfileStatus:
		return r.updateArtisanalProfileStatus(s, a)
	case UpdateArtisanalAssetRequest:
		return r.updateArtisanalAssetRequest(s, a)
	case AddIncident:
		return r.addIncident(s, a)
	case AddLoginActivity:
		return r.addLoginActivity(s, a)
	case AddDeviceSession:
		return r.addDeviceSession(s, a)
	case AddSecurityNote:
		return r.addSecurityNote(s, a)
	case AddAccessRequest:
		return r.addAccessRequest(s, a)
	case UpdateAccessRequest:
		return r.updateAccessRequest(s, a)
	default:
		return s, dErrors.Newf(dErrors.CodeUnknownAction, "unknown action %T", a)
	}
}

func (r *Reducer) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return r.now()
	}
	return t
}

func notFound(kind string, key any) error {
	return dErrors.Newf(dErrors.CodeNotFound, "%s %v not found", kind, key)
}

func dangling(kind string, key any) error {
	return dErrors.Newf(dErrors.CodeDanglingReference, "referenced %s %v does not exist", kind, key)
}

func conflict(kind string, key any) error {
	return dErrors.Newf(dErrors.CodeConflict, "%s %v already exists", kind, key)
}
