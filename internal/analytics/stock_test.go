package analytics

import (
	"testing"

	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestClassifyStockMultiLocation(t *testing.T) {
	// one variant linked to two inventory items at two locations:
	// (10-2) + (5-5) = 8 available, inside the low-stock band
	products := []entity.Product{{ID: "p1"}}
	variants := []entity.ProductVariant{{ID: "v1", ProductID: "p1"}}
	links := []entity.VariantInventoryLink{
		{VariantID: "v1", InventoryItemID: "i1"},
		{VariantID: "v1", InventoryItemID: "i2"},
	}
	levels := []entity.InventoryLevel{
		{InventoryItemID: "i1", StockedQuantity: 10, ReservedQuantity: 2},
		{InventoryItemID: "i2", StockedQuantity: 5, ReservedQuantity: 5},
	}

	out, low := classifyStock(products, variants, links, levels)
	assert.Equal(t, 0, out)
	assert.Equal(t, 1, low)
}

func TestClassifyStockBuckets(t *testing.T) {
	products := []entity.Product{
		{ID: "none"},      // zero variants -> out of stock
		{ID: "unmanaged"}, // sole variant opts out -> neither bucket
		{ID: "empty"},     // managed variant with nothing available
		{ID: "healthy"},   // plenty in stock -> neither bucket
	}
	variants := []entity.ProductVariant{
		{ID: "vu", ProductID: "unmanaged", ManageInventory: boolPtr(false)},
		{ID: "ve", ProductID: "empty"},
		{ID: "vh", ProductID: "healthy"},
	}
	links := []entity.VariantInventoryLink{
		{VariantID: "ve", InventoryItemID: "ie"},
		{VariantID: "vh", InventoryItemID: "ih"},
	}
	levels := []entity.InventoryLevel{
		{InventoryItemID: "ie", StockedQuantity: 3, ReservedQuantity: 3},
		{InventoryItemID: "ih", StockedQuantity: 100, ReservedQuantity: 1},
	}

	out, low := classifyStock(products, variants, links, levels)
	assert.Equal(t, 2, out) // "none" and "empty"
	assert.Equal(t, 0, low)
}

func TestClassifyStockMixedVariants(t *testing.T) {
	// one managed variant out of stock, another low: the product lands in
	// low_stock because not every managed variant is empty
	products := []entity.Product{{ID: "p"}}
	variants := []entity.ProductVariant{
		{ID: "v1", ProductID: "p"},
		{ID: "v2", ProductID: "p"},
	}
	links := []entity.VariantInventoryLink{
		{VariantID: "v1", InventoryItemID: "i1"},
		{VariantID: "v2", InventoryItemID: "i2"},
	}
	levels := []entity.InventoryLevel{
		{InventoryItemID: "i1", StockedQuantity: 0, ReservedQuantity: 0},
		{InventoryItemID: "i2", StockedQuantity: 4, ReservedQuantity: 0},
	}

	out, low := classifyStock(products, variants, links, levels)
	assert.Equal(t, 0, out)
	assert.Equal(t, 1, low)
}

func TestClassifyStockUnlinkedVariant(t *testing.T) {
	// managed variant with no inventory links has zero available
	products := []entity.Product{{ID: "p"}}
	variants := []entity.ProductVariant{{ID: "v", ProductID: "p"}}

	out, low := classifyStock(products, variants, nil, nil)
	assert.Equal(t, 1, out)
	assert.Equal(t, 0, low)
}
