package catalog

// MoneyRange is an inclusive payout range.
type MoneyRange struct {
	Lo int `yaml:"lo" json:"lo"`
	Hi int `yaml:"hi" json:"hi"`
}

// RewardSpec describes the pre-risk yield of a job.
type RewardSpec struct {
	Money       MoneyRange `yaml:"money" json:"money"`
	XP          int        `yaml:"xp" json:"xp"`
	Reputation  int        `yaml:"reputation" json:"reputation"`
	ShadowCoins int        `yaml:"shadow_coins" json:"shadow_coins,omitempty"`
}

// JobDef defines a timed, stochastic income-producing action.
//
// Precondition: ID, Name, Risk, and Reward.Money must be non-zero after
// loading; Reward.Money.Lo <= Reward.Money.Hi.
type JobDef struct {
	ID              string             `yaml:"id" json:"id"`
	Name            string             `yaml:"name" json:"name"`
	Description     string             `yaml:"description" json:"description"`
	Requirements    Requirements       `yaml:"requirements" json:"requirements"`
	Reward          RewardSpec         `yaml:"reward" json:"reward"`
	DurationMinutes int                `yaml:"duration_minutes" json:"duration_minutes"`
	EnergyCost      int                `yaml:"energy_cost" json:"energy_cost"`
	Skills          []string           `yaml:"skills" json:"skills"`
	Risk            RiskLevel          `yaml:"risk" json:"risk"`
	TimeBonus       map[string]float64 `yaml:"time_bonus" json:"time_bonus"`
}

// RequiresSkill reports whether skillID is one of the job's involved skills.
func (j *JobDef) RequiresSkill(skillID string) bool {
	for _, s := range j.Skills {
		if s == skillID {
			return true
		}
	}
	return false
}

// TimeMultiplier returns the payout multiplier for the given time-of-day
// period name.
//
// Postcondition: Returns 1.0 when no bonus is configured for the period.
func (j *JobDef) TimeMultiplier(period string) float64 {
	if m, ok := j.TimeBonus[period]; ok {
		return m
	}
	return 1.0
}
