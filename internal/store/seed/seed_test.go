package seed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradedesk/internal/store"
	"tradedesk/internal/store/models"
	id "tradedesk/pkg/domain"
	dErrors "tradedesk/pkg/domain-errors"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := Default()
	require.NoError(t, err)

	state := store.NewState(seed)
	assert.Equal(t, 5, state.Users.Len())
	assert.Equal(t, 3, state.Orders.Len())
	assert.Equal(t, 2, state.LedgerLen())

	t.Run("decimals decode exactly", func(t *testing.T) {
		tx, ok := state.Transactions.Get("txn-5001")
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("145040").Equal(tx.Net()))
	})

	t.Run("overlays resolve", func(t *testing.T) {
		assert.Equal(t, "AI verified (98%)", store.KycLabel(state, "usr-amara"))
		assert.Equal(t, models.UserStatusRestricted, store.EffectiveUserStatus(state, "usr-fatou"))
		d := store.UserDetails(state, "usr-fatou")
		assert.Len(t, d.ArtisanalRequests, 2)
		assert.Equal(t, "Documents pending", d.ArtisanalProfileStatus)
		assert.NotNil(t, d.VideoCalls)
	})

	t.Run("ledger is readable per entity", func(t *testing.T) {
		entries := store.LedgerForEntity(state, "usr-amara", 10)
		require.Len(t, entries, 2)
		assert.Equal(t, models.KindKycApproval, entries[0].Kind)
	})

	t.Run("primary facility present", func(t *testing.T) {
		f, ok := store.PrimaryFacility(state, id.UserID("usr-amara"))
		require.True(t, ok)
		assert.Equal(t, id.FacilityID("fac-accra"), f.ID)
	})
}

func TestParseRejectsBadSeeds(t *testing.T) {
	cases := map[string]string{
		"unknown field": `
users:
  - id: u1
    nickname: x
`,
		"dangling order user": `
users:
  - {id: u1, name: A}
orders:
  - {id: o1, user_id: ghost}
`,
		"dangling transaction order": `
transactions:
  - {id: t1, order_id: ghost}
`,
		"two primaries": `
users:
  - {id: u1, name: A}
facilities:
  - {id: f1, owner_id: u1, is_primary: true}
  - {id: f2, owner_id: u1, is_primary: true}
`,
		"broken flow": `
users:
  - {id: u1, name: A}
orders:
  - id: o1
    user_id: u1
    flow:
      - {name: a, active: true}
      - {name: b, active: true}
`,
		"bad decimal": `
users:
  - {id: u1, name: A, lifetime_value: lots}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), err.Error())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	seed, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, store.NewState(seed).Users.Len())
}
