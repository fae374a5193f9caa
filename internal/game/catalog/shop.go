package catalog

// ShopDef defines a storefront selling a fixed set of catalog items.
type ShopDef struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Type        string   `yaml:"type" json:"type"`
	Items       []string `yaml:"items" json:"items"`
}

// ItemDef defines a purchasable item and its stat effects. Effects map
// stat or skill identifiers to additive deltas applied while the item is
// owned (consumables) or equipped (equipment).
type ItemDef struct {
	ID          string             `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Price       int                `yaml:"price" json:"price"`
	Type        ItemType           `yaml:"type" json:"type"`
	Effects     map[string]float64 `yaml:"effects" json:"effects"`
}
