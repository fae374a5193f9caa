package catalog

// LocationDef defines a city district. Districts list the jobs and shops
// they offer and may be gated behind an unlock requirement.
type LocationDef struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Description  string       `yaml:"description" json:"description"`
	Jobs         []string     `yaml:"jobs" json:"jobs"`
	Shops        []string     `yaml:"shops" json:"shops"`
	Unlocked     bool         `yaml:"unlocked" json:"unlocked"`
	Requirements Requirements `yaml:"requirements" json:"requirements"`
}

// OffersJob reports whether the location offers the given job.
func (l *LocationDef) OffersJob(jobID string) bool {
	for _, id := range l.Jobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// OffersShop reports whether the location offers the given shop.
func (l *LocationDef) OffersShop(shopID string) bool {
	for _, id := range l.Shops {
		if id == shopID {
			return true
		}
	}
	return false
}
