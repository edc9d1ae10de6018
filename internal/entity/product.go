package entity

// Product lifecycle statuses the rollups count by equality; anything else is
// neither published nor draft.
const (
	ProductStatusPublished = "published"
	ProductStatusDraft     = "draft"
)

type Product struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Status     string   `json:"status"`
	VariantIDs []string `json:"variant_ids"`
}

// ProductVariant links a sellable variant to its owning product.
// ManageInventory nil means unset and is treated as managed.
type ProductVariant struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	ManageInventory *bool  `json:"manage_inventory"`
}

// Managed reports whether the variant participates in stock tracking.
func (v *ProductVariant) Managed() bool {
	return v.ManageInventory == nil || *v.ManageInventory
}

// VariantInventoryLink is a many-to-many join row; one variant may map to
// several inventory items (multi-location stock).
type VariantInventoryLink struct {
	VariantID       string `json:"variant_id"`
	InventoryItemID string `json:"inventory_item_id"`
}

// InventoryLevel is the stock of one inventory item at one location.
type InventoryLevel struct {
	InventoryItemID  string  `json:"inventory_item_id"`
	StockedQuantity  float64 `json:"stocked_quantity"`
	ReservedQuantity float64 `json:"reserved_quantity"`
}

// Available is stocked minus reserved at this location.
func (l *InventoryLevel) Available() float64 {
	return l.StockedQuantity - l.ReservedQuantity
}

// Snapshot is the full read-only input of one aggregation run. It is built
// fresh per invocation and discarded with the report.
type Snapshot struct {
	Orders          []Order                `json:"orders"`
	Customers       []Customer             `json:"customers"`
	Products        []Product              `json:"products"`
	Variants        []ProductVariant       `json:"variants"`
	InventoryLinks  []VariantInventoryLink `json:"inventory_links"`
	InventoryLevels []InventoryLevel       `json:"inventory_levels"`
}
