// game/achievement.go - Achievement catalog and per-player unlock state
package game

// Achievement IDs referenced by the reducer.
const (
	AchFirstClick    = "first-click"
	AchHundredClicks = "hundred-clicks"
	AchMeteorEvent   = "meteor-event"
	AchBlackHole     = "blackhole-event"
)

// HundredClicksGoal is the click count that unlocks AchHundredClicks.
const HundredClicksGoal = 100

// AchievementState tracks unlock status for one catalog entry.
// Unlocked is monotonic: once true it never reverts, and it survives
// prestige resets.
type AchievementState struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
	Progress int    `json:"progress,omitempty"`
}

// AchievementDef is the static, display-facing half of an achievement.
type AchievementDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Goal        int    `json:"goal,omitempty"`
}

// AchievementCatalog lists every achievement the game can unlock.
var AchievementCatalog = []AchievementDef{
	{ID: AchFirstClick, Name: "First Light", Description: "Click the galaxy for the first time", Icon: "sparkle"},
	{ID: AchHundredClicks, Name: "Star Chaser", Description: "Reach 100 total clicks", Icon: "star", Goal: HundredClicksGoal},
	{ID: AchMeteorEvent, Name: "Meteor Rider", Description: "Experience a Meteor Shower rush event", Icon: "meteor"},
	{ID: AchBlackHole, Name: "Event Horizon", Description: "Experience a Black Hole Rift rush event", Icon: "blackhole"},
}

// DefaultAchievements returns a fresh copy of the achievement state map,
// all locked.
func DefaultAchievements() map[string]AchievementState {
	achievements := make(map[string]AchievementState, len(AchievementCatalog))
	for _, def := range AchievementCatalog {
		achievements[def.ID] = AchievementState{ID: def.ID}
	}
	return achievements
}
