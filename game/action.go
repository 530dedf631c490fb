// game/action.go - The closed action set driving the reducer
package game

// Action is the closed set of inputs the reducer understands. Every UI,
// scheduler or test harness drives the game purely through these values
// plus the periodic Tick the engine supplies.
type Action interface {
	ActionName() string
}

// Click is one unit of player input.
type Click struct{}

func (Click) ActionName() string { return "CLICK" }

// AddStardust grants a raw (possibly fractional) amount, used for passive
// ticks and one-shot offline catch-up.
type AddStardust struct {
	Amount float64
}

func (AddStardust) ActionName() string { return "ADD_STARDUST" }

// BuyUpgrade buys up to Bulk successive levels of one upgrade, greedily
// capped by affordability and the upgrade's level cap. Bulk <= 0 means 1.
type BuyUpgrade struct {
	UpgradeID string
	Bulk      int
}

func (BuyUpgrade) ActionName() string { return "BUY_UPGRADE" }

// Tick integrates passive income since the last tick and prunes expired
// events.
type Tick struct{}

func (Tick) ActionName() string { return "TICK" }

// LoadGame merges a saved (possibly partial) state over catalog defaults.
type LoadGame struct {
	Saved State
}

func (LoadGame) ActionName() string { return "LOAD_GAME" }

// StartEvent appends a freshly stamped rush event instance.
type StartEvent struct {
	Event ActiveEvent
}

func (StartEvent) ActionName() string { return "START_EVENT" }

// EndEvent removes exactly the instance matching both id and startedAt.
type EndEvent struct {
	EventID   string
	StartedAt int64
}

func (EndEvent) ActionName() string { return "END_EVENT" }

// AchievementProgress sets progress and/or unlocks an achievement.
// Unlocked is monotonic and never cleared.
type AchievementProgress struct {
	ID       string
	Progress *int
	Unlock   bool
}

func (AchievementProgress) ActionName() string { return "ACHIEVEMENT_PROGRESS" }

// Prestige resets progress for permanent prestige currency when the gain
// formula yields at least 1, otherwise it is a no-op.
type Prestige struct{}

func (Prestige) ActionName() string { return "PRESTIGE" }

// SetUsername sets the cosmetic username field.
type SetUsername struct {
	Name string
}

func (SetUsername) ActionName() string { return "SET_USERNAME" }
