package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignedPicking(t *testing.T) *Picking {
	t.Helper()
	p, err := NewPicking("WH/OUT/00042", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	partnerID := uuid.New()
	p.AssignCarrier(uuid.New(), &partnerID)
	require.NoError(t, p.MarkAssigned())
	return p
}

func TestNewPicking(t *testing.T) {
	t.Run("starts as unconfirmed draft", func(t *testing.T) {
		p, err := NewPicking("WH/OUT/00001", time.Time{})

		require.NoError(t, err)
		assert.Equal(t, PickingStateDraft, p.State)
		assert.False(t, p.PickupConfirmed)
		assert.Nil(t, p.PickupConfirmedAt)
		assert.Nil(t, p.PickupConfirmedBy)
		assert.False(t, p.ScheduledDate.IsZero())
	})

	t.Run("fails with empty reference", func(t *testing.T) {
		_, err := NewPicking(" ", time.Now())
		assert.Error(t, err)
	})
}

func TestPickingState_CanTransitionTo(t *testing.T) {
	assert.True(t, PickingStateDraft.CanTransitionTo(PickingStateAssigned))
	assert.True(t, PickingStateAssigned.CanTransitionTo(PickingStateDone))
	assert.True(t, PickingStateAssigned.CanTransitionTo(PickingStateCancel))
	assert.False(t, PickingStateDone.CanTransitionTo(PickingStateCancel))
	assert.False(t, PickingStateCancel.CanTransitionTo(PickingStateAssigned))
	assert.False(t, PickingStateDraft.CanTransitionTo(PickingStateDone))
}

func TestPicking_AssignCarrier(t *testing.T) {
	p, err := NewPicking("WH/OUT/00002", time.Now())
	require.NoError(t, err)

	partnerID := uuid.New()
	p.AssignCarrier(uuid.New(), &partnerID)
	require.NotNil(t, p.PickupPartnerID)
	assert.Equal(t, partnerID, *p.PickupPartnerID)

	partnerID = uuid.New()
	assert.NotEqual(t, partnerID, *p.PickupPartnerID, "mirror must not alias the caller's value")

	p.AssignCarrier(uuid.New(), nil)
	assert.Nil(t, p.PickupPartnerID)
}

func TestPicking_IsOwnedBy(t *testing.T) {
	p := newAssignedPicking(t)

	assert.True(t, p.IsOwnedBy(*p.PickupPartnerID))
	assert.False(t, p.IsOwnedBy(uuid.New()))
	assert.False(t, p.IsOwnedBy(uuid.Nil))

	p.SyncPickupPartner(nil)
	assert.False(t, p.IsOwnedBy(uuid.Nil))
}

func TestPicking_ConfirmPickup(t *testing.T) {
	t.Run("first confirmation stamps date and user", func(t *testing.T) {
		p := newAssignedPicking(t)
		userID := uuid.New()
		at := time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC)

		changed, err := p.ConfirmPickup(userID, at)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, p.PickupConfirmed)
		assert.Equal(t, at, *p.PickupConfirmedAt)
		assert.Equal(t, userID, *p.PickupConfirmedBy)

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		confirmed, ok := events[0].(*PickupConfirmedEvent)
		require.True(t, ok)
		assert.Equal(t, userID, confirmed.ConfirmedBy)
		assert.Equal(t, *p.PickupPartnerID, confirmed.PickupPartnerID)
	})

	t.Run("second confirmation keeps the first values", func(t *testing.T) {
		p := newAssignedPicking(t)
		first, second := uuid.New(), uuid.New()
		firstAt := time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC)

		_, err := p.ConfirmPickup(first, firstAt)
		require.NoError(t, err)
		changed, err := p.ConfirmPickup(second, firstAt.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, firstAt, *p.PickupConfirmedAt)
		assert.Equal(t, first, *p.PickupConfirmedBy)
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("rejects nil user", func(t *testing.T) {
		p := newAssignedPicking(t)
		_, err := p.ConfirmPickup(uuid.Nil, time.Now())
		assert.Error(t, err)
		assert.False(t, p.PickupConfirmed)
	})
}

func TestPicking_Validate(t *testing.T) {
	p := newAssignedPicking(t)

	require.NoError(t, p.Validate())
	assert.Equal(t, PickingStateDone, p.State)
	assert.NotNil(t, p.DoneAt)

	err := p.Cancel()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot transition from done to cancel")
}

func TestPicking_Copy(t *testing.T) {
	p := newAssignedPicking(t)
	_, err := p.ConfirmPickup(uuid.New(), time.Now())
	require.NoError(t, err)

	dup, err := p.Copy("WH/OUT/00043")

	require.NoError(t, err)
	assert.Equal(t, PickingStateDraft, dup.State)
	assert.Equal(t, *p.PickupPartnerID, *dup.PickupPartnerID)
	assert.False(t, dup.PickupConfirmed)
	assert.Nil(t, dup.PickupConfirmedAt)
	assert.Nil(t, dup.PickupConfirmedBy)
}
