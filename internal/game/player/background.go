package player

// Background is the character origin chosen at creation. It determines
// starting money and a single boosted skill.
type Background string

const (
	BackgroundStudent Background = "student"
	BackgroundWorker  Background = "worker"
	BackgroundStreet  Background = "street"
)

// backgroundStart maps each background to its starting money and the
// skill that begins at level 2 instead of 1.
var backgroundStart = map[Background]struct {
	money int
	skill string
}{
	BackgroundStudent: {money: 500, skill: "persuasion"},
	BackgroundWorker:  {money: 300, skill: "stamina"},
	BackgroundStreet:  {money: 200, skill: "charisma"},
}

// Valid reports whether b is a recognised background.
func (b Background) Valid() bool {
	_, ok := backgroundStart[b]
	return ok
}

// StartingMoney returns the background's starting cash.
//
// Precondition: b must be valid.
func (b Background) StartingMoney() int {
	return backgroundStart[b].money
}

// BoostedSkill returns the skill identifier that starts at level 2.
//
// Precondition: b must be valid.
func (b Background) BoostedSkill() string {
	return backgroundStart[b].skill
}

// Backgrounds returns all valid backgrounds in a fixed order.
func Backgrounds() []Background {
	return []Background{BackgroundStudent, BackgroundWorker, BackgroundStreet}
}
