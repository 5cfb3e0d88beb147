package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentAdd(t *testing.T) {
	t.Run("new line", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 2)

		assert.Equal(t, []Item{{ProductID: "classic-tee", Quantity: 2}}, d.Items)
	})

	t.Run("merges into existing line", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 2)
		d.Add("classic-tee", 3)

		assert.Len(t, d.Items, 1)
		assert.Equal(t, 5, d.Items[0].Quantity)
	})

	t.Run("quantity below one counts as one", func(t *testing.T) {
		d := NewDocument()
		d.Add("tote-bag", 0)
		d.Add("tote-bag", -5)

		assert.Equal(t, 2, d.Items[0].Quantity)
	})

	t.Run("clamps at max", func(t *testing.T) {
		d := NewDocument()
		d.Add("tour-hoodie", 60)
		d.Add("tour-hoodie", 60)

		assert.Equal(t, MaxQuantity, d.Items[0].Quantity)
	})
}

func TestDocumentSetQuantity(t *testing.T) {
	t.Run("overwrites instead of merging", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 5)
		d.SetQuantity("classic-tee", 2)

		assert.Equal(t, 2, d.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		d := NewDocument()
		d.Add("classic-tee", 5)
		d.SetQuantity("classic-tee", 0)

		assert.Empty(t, d.Items)
	})

	t.Run("creates line when absent", func(t *testing.T) {
		d := NewDocument()
		d.SetQuantity("snapback-cap", 3)

		assert.Equal(t, []Item{{ProductID: "snapback-cap", Quantity: 3}}, d.Items)
	})
}

func TestDocumentRemove(t *testing.T) {
	d := NewDocument()
	d.Add("classic-tee", 1)
	d.Add("tour-hoodie", 1)

	d.Remove("classic-tee")
	assert.Equal(t, []Item{{ProductID: "tour-hoodie", Quantity: 1}}, d.Items)

	// unknown id is a no-op
	d.Remove("does-not-exist")
	assert.Len(t, d.Items, 1)
}

func TestDocumentClearAndCount(t *testing.T) {
	d := NewDocument()
	d.Add("classic-tee", 2)
	d.Add("sticker-pack", 3)
	assert.Equal(t, 5, d.Count())

	d.Clear()
	assert.Equal(t, 0, d.Count())
	assert.Empty(t, d.Items)
}
