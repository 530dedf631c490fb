// game/event.go - Rush event catalog, active instances and selection
package game

import "math/rand"

// RushEvent is a static catalog entry describing a timed production
// multiplier. BaseChance is a relative weight, normalized over the catalog
// sum at selection time.
type RushEvent struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseChance  float64 `json:"baseChance"`
	Duration    int     `json:"duration"` // seconds
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Achievement string  `json:"-"` // unlocked the first time this event fires
}

// RushEvents is the static rush event catalog.
var RushEvents = []RushEvent{
	{
		ID:          "meteorShower",
		Name:        "Meteor Shower",
		BaseChance:  0.7,
		Duration:    30,
		Multiplier:  2,
		Description: "A flurry of meteors increases all production!",
		Icon:        "meteor",
		Achievement: AchMeteorEvent,
	},
	{
		ID:          "blackHoleRift",
		Name:        "Black Hole Rift",
		BaseChance:  0.3,
		Duration:    30,
		Multiplier:  4,
		Description: "A black hole rift supercharges your stardust gain!",
		Icon:        "blackhole",
		Achievement: AchBlackHole,
	},
}

// FindRushEvent looks up a catalog entry by id.
func FindRushEvent(id string) (RushEvent, bool) {
	for _, e := range RushEvents {
		if e.ID == id {
			return e, true
		}
	}
	return RushEvent{}, false
}

// ActiveEvent is a running instance of a rush event. Two instances with
// the same ID but different StartedAt are distinct.
type ActiveEvent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`  // seconds
	StartedAt int64  `json:"startedAt"` // unix milliseconds
}

// Expired reports whether the instance has lapsed at the given time.
// The same predicate is used by the reducer's tick pruning and by the
// scheduler's dedicated expiry check.
func (e ActiveEvent) Expired(nowMillis int64) bool {
	return nowMillis >= e.StartedAt+int64(e.Duration)*1000
}

// ActiveEventMultiplier returns the product of the catalog multipliers of
// all active instances. Unknown ids contribute 1. Simultaneous events
// multiply, not add.
func ActiveEventMultiplier(events []ActiveEvent) float64 {
	multiplier := 1.0
	for _, instance := range events {
		if def, ok := FindRushEvent(instance.ID); ok {
			multiplier *= def.Multiplier
		}
	}
	return multiplier
}

// PickRushEvent draws one catalog entry, weighted by BaseChance normalized
// over the catalog sum.
func PickRushEvent(rng *rand.Rand) RushEvent {
	total := 0.0
	for _, e := range RushEvents {
		total += e.BaseChance
	}
	r := rng.Float64() * total
	for _, e := range RushEvents {
		if r < e.BaseChance {
			return e
		}
		r -= e.BaseChance
	}
	return RushEvents[0]
}
