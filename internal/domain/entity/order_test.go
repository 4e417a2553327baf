package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "bcdef0", entity.ShortID("a1b2c3d4-0000-0000-0000-00000abcdef0"))
	assert.Equal(t, "abc", entity.ShortID("abc"))
	assert.Equal(t, "", entity.ShortID(""))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, entity.ValidOrderStatus(s), s)
	}
	assert.False(t, entity.ValidOrderStatus("teleported"))
	assert.False(t, entity.ValidOrderStatus("Pending"))
	assert.False(t, entity.ValidOrderStatus(""))
}

func TestShippingInfoComplete(t *testing.T) {
	s := entity.ShippingInfo{
		FirstName: "Ada", LastName: "Lovelace",
		Address: "12 Analytical St", City: "London", ZipCode: "SW1A",
		Email: "ada@example.com", Phone: "5551234",
	}
	assert.True(t, s.Complete())

	s.Phone = "   "
	assert.False(t, s.Complete())
}
