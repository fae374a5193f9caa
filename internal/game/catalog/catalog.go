// Package catalog holds the immutable content definitions for Shadow City:
// locations, jobs, shops, items, skills, and NPCs. Definitions are loaded
// once from YAML content files at startup and are read-only afterwards.
package catalog

// Requirements is a set of numeric preconditions. A zero value for any
// field means "no constraint on that dimension".
type Requirements struct {
	Level      int                `yaml:"level" json:"level,omitempty"`
	Reputation int                `yaml:"reputation" json:"reputation,omitempty"`
	Money      int                `yaml:"money" json:"money,omitempty"`
	Skills     map[string]float64 `yaml:"skills" json:"skills,omitempty"`
}

// IsZero reports whether no constraint is present on any dimension.
func (r Requirements) IsZero() bool {
	return r.Level == 0 && r.Reputation == 0 && r.Money == 0 && len(r.Skills) == 0
}

// RiskLevel classifies how likely a job is to go sideways.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is a recognised risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ItemType classifies catalog items.
type ItemType string

const (
	ItemEquipment  ItemType = "equipment"
	ItemConsumable ItemType = "consumable"
	ItemTool       ItemType = "tool"
	ItemClothing   ItemType = "clothing"
)

// Valid reports whether t is a recognised item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemEquipment, ItemConsumable, ItemTool, ItemClothing:
		return true
	}
	return false
}
