package analytics

import "github.com/sellora/storefront-manager/internal/entity"

// lowStockThreshold is the fixed available-quantity ceiling below which a
// managed variant counts as low stock.
const lowStockThreshold = 10

// classifyStock joins variants to their inventory items and levels and
// classifies each product's stock health. A product lands in at most one
// bucket: out_of_stock when it has no variants at all or every managed
// variant has nothing available, low_stock when any managed variant sits in
// (0, lowStockThreshold]. Products whose variants all opt out of inventory
// management are skipped entirely.
func classifyStock(
	products []entity.Product,
	variants []entity.ProductVariant,
	links []entity.VariantInventoryLink,
	levels []entity.InventoryLevel,
) (outOfStock, lowStock int) {
	// Available per inventory item, summed across locations.
	itemAvailable := make(map[string]float64, len(levels))
	for i := range levels {
		itemAvailable[levels[i].InventoryItemID] += levels[i].Available()
	}

	variantItems := make(map[string][]string, len(links))
	for i := range links {
		l := &links[i]
		if l.VariantID == "" || l.InventoryItemID == "" {
			continue
		}
		variantItems[l.VariantID] = append(variantItems[l.VariantID], l.InventoryItemID)
	}

	variantAvailable := make(map[string]float64, len(variants))
	byProduct := make(map[string][]*entity.ProductVariant)
	for i := range variants {
		v := &variants[i]
		var available float64
		for _, itemID := range variantItems[v.ID] {
			available += itemAvailable[itemID]
		}
		variantAvailable[v.ID] = available
		if v.ProductID != "" {
			byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
		}
	}

	for i := range products {
		productVariants := byProduct[products[i].ID]
		if len(productVariants) == 0 {
			outOfStock++
			continue
		}

		var managed []*entity.ProductVariant
		for _, v := range productVariants {
			if v.Managed() {
				managed = append(managed, v)
			}
		}
		if len(managed) == 0 {
			continue
		}

		allOut := true
		anyLow := false
		for _, v := range managed {
			available := variantAvailable[v.ID]
			if available > 0 {
				allOut = false
			}
			if available > 0 && available <= lowStockThreshold {
				anyLow = true
			}
		}
		switch {
		case allOut:
			outOfStock++
		case anyLow:
			lowStock++
		}
	}
	return outOfStock, lowStock
}
