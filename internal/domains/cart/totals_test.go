package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	pricing := DefaultPricing()

	t.Run("empty cart has no shipping", func(t *testing.T) {
		v := pricing.Price(NewDocument())

		assert.Empty(t, v.Items)
		assert.Equal(t, 0, v.Count)
		assert.True(t, v.Subtotal.IsZero())
		assert.True(t, v.Shipping.IsZero())
		assert.True(t, v.Total.IsZero())
	})

	t.Run("under the threshold pays flat fee", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 2) // 2 x 29.99 = 59.98

		v := pricing.Price(d)

		require.Len(t, v.Items, 1)
		assert.True(t, v.Subtotal.Equal(decimal.RequireFromString("59.98")), "subtotal %s", v.Subtotal)
		assert.True(t, v.Shipping.Equal(decimal.RequireFromString("9.99")))
		assert.True(t, v.Total.Equal(decimal.RequireFromString("69.97")))
	})

	t.Run("exactly at the threshold still pays shipping", func(t *testing.T) {
		// Free shipping is strictly over 100, not at 100.
		v := Pricing{
			FreeShippingOver: decimal.RequireFromString("59.98"),
			FlatShippingFee:  decimal.RequireFromString("9.99"),
		}.Price(func() *Document {
			d := NewDocument()
			d.Add("classic-tee", 2) // subtotal 59.98 == threshold
			return d
		}())

		assert.True(t, v.Shipping.Equal(decimal.RequireFromString("9.99")))
	})

	t.Run("over the threshold ships free", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 2) // 59.98
		d.Add("tour-hoodie", 1) // 49.99 -> 109.97

		v := pricing.Price(d)

		assert.True(t, v.Subtotal.Equal(decimal.RequireFromString("109.97")), "subtotal %s", v.Subtotal)
		assert.True(t, v.Shipping.IsZero())
		assert.True(t, v.Total.Equal(v.Subtotal))
	})

	t.Run("unknown product ids are skipped", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 1)
		d.Add("discontinued-cassette", 4)

		v := pricing.Price(d)

		require.Len(t, v.Items, 1)
		assert.Equal(t, "classic-tee", v.Items[0].Product.ID)
		assert.Equal(t, 1, v.Count)
		assert.True(t, v.Subtotal.Equal(decimal.RequireFromString("29.99")))
	})

	t.Run("count sums quantities", func(t *testing.T) {
		d := NewDocument()
		d.Add("sticker-pack", 3)
		d.Add("tote-bag", 2)

		v := pricing.Price(d)
		assert.Equal(t, 5, v.Count)
	})
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct("signed-vinyl")
	require.True(t, ok)
	assert.Equal(t, "signed-vinyl", p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("59.99")))

	_, ok = FindProduct("nope")
	assert.False(t, ok)
}
