package delivery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	t.Run("creates carrier that is not a pickup point", func(t *testing.T) {
		c, err := NewCarrier("Retiro en sucursal")

		require.NoError(t, err)
		assert.True(t, c.Active)
		assert.False(t, c.IsPickupPoint())
		assert.Empty(t, c.GetDomainEvents())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCarrier("")
		assert.Error(t, err)
	})
}

func TestCarrier_IsPickupPointFollowsPartner(t *testing.T) {
	c, err := NewCarrier("Punto de retiro Centro")
	require.NoError(t, err)

	partnerID := uuid.New()
	require.NoError(t, c.AssignPickupPartner(partnerID))
	assert.True(t, c.IsPickupPoint())
	assert.Equal(t, partnerID, *c.PickupPartnerID)

	c.ClearPickupPartner()
	assert.False(t, c.IsPickupPoint())
	assert.Nil(t, c.PickupPartnerID)
}

func TestCarrier_AssignPickupPartner(t *testing.T) {
	t.Run("emits change event with previous partner", func(t *testing.T) {
		c, _ := NewCarrier("Punto A")
		first, second := uuid.New(), uuid.New()

		require.NoError(t, c.AssignPickupPartner(first))
		require.NoError(t, c.AssignPickupPartner(second))

		events := c.GetDomainEvents()
		require.Len(t, events, 2)
		changed, ok := events[1].(*CarrierPickupPartnerChangedEvent)
		require.True(t, ok)
		assert.Equal(t, first, *changed.PreviousPartnerID)
		assert.Equal(t, second, *changed.PickupPartnerID)
	})

	t.Run("same partner is a no-op", func(t *testing.T) {
		c, _ := NewCarrier("Punto B")
		id := uuid.New()
		require.NoError(t, c.AssignPickupPartner(id))
		version := c.Version

		require.NoError(t, c.AssignPickupPartner(id))
		assert.Equal(t, version, c.Version)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("rejects nil id", func(t *testing.T) {
		c, _ := NewCarrier("Punto C")
		assert.Error(t, c.AssignPickupPartner(uuid.Nil))
		assert.False(t, c.IsPickupPoint())
	})

	t.Run("clearing an unlinked carrier emits nothing", func(t *testing.T) {
		c, _ := NewCarrier("Punto D")
		c.ClearPickupPartner()
		assert.Empty(t, c.GetDomainEvents())
	})
}

func TestCarrier_SetPickupHours(t *testing.T) {
	c, _ := NewCarrier("Punto E")
	require.NoError(t, c.SetPickupHours("  Lunes a Viernes: 8:00 - 18:00\nSábados: 9:00 - 13:00 "))
	assert.Equal(t, "Lunes a Viernes: 8:00 - 18:00\nSábados: 9:00 - 13:00", c.PickupHours)
}
