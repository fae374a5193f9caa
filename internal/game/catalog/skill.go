package catalog

// SkillDef describes one of the four trainable skills.
type SkillDef struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	// MaxLevel caps discrete point-spending upgrades. The organic stamina
	// drift is not bounded by this cap.
	MaxLevel int `yaml:"max_level" json:"max_level"`
	// Effect is a display template for the per-level effect, with %d
	// substituted by the effect magnitude at a given level.
	Effect string `yaml:"effect" json:"effect"`
	// EffectPerLevel is the magnitude multiplied by the level for Effect.
	EffectPerLevel int `yaml:"effect_per_level" json:"effect_per_level"`
}

// NPCDef describes a non-player character stationed at a location.
// NPCs are presentational only: they expose fixed dialogue lines.
type NPCDef struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Type     string   `yaml:"type" json:"type"`
	Location string   `yaml:"location" json:"location"`
	Dialogue []string `yaml:"dialogue" json:"dialogue"`
}
