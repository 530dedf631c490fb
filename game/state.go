// game/state.go - The aggregate game state, sole unit of persistence
package game

import "time"

// State is the full game snapshot. It is owned exclusively by the reducer;
// the engine only reads it to schedule further actions and to serialize it.
// Timestamps are unix milliseconds so persisted saves round-trip as plain
// JSON numbers. ClickPower, PassiveIncome and EventChance are derived from
// the upgrade levels and recomputed on purchase and load, never trusted
// from a save.
type State struct {
	Stardust             float64                     `json:"stardust"`
	ClickPower           float64                     `json:"clickPower"`
	PassiveIncome        float64                     `json:"passiveIncome"`
	LastSaved            int64                       `json:"lastSaved"`
	LastTick             int64                       `json:"lastTick"`
	Upgrades             map[string]Upgrade          `json:"upgrades"`
	ActiveEvents         []ActiveEvent               `json:"activeEvents"`
	EventChance          float64                     `json:"eventChance"`
	Achievements         map[string]AchievementState `json:"achievements"`
	TotalClicks          int64                       `json:"totalClicks"`
	TotalUpgradesBought  int64                       `json:"totalUpgradesBought"`
	TotalEventsTriggered int64                       `json:"totalEventsTriggered"`
	TotalStardustEarned  float64                     `json:"totalStardustEarned"`
	PrestigeCount        int                         `json:"prestigeCount"`
	PrestigeCurrency     int64                       `json:"prestigeCurrency"`
	Username             string                      `json:"username,omitempty"`
}

// NewState returns the initial game state at the given time: full upgrade
// and achievement catalogs at their defaults, derived fields computed.
func NewState(now time.Time) State {
	upgrades := DefaultUpgrades()
	nowMillis := now.UnixMilli()
	return State{
		Stardust:      0,
		ClickPower:    ClickPower(upgrades),
		PassiveIncome: PassiveIncome(upgrades),
		LastSaved:     nowMillis,
		LastTick:      nowMillis,
		Upgrades:      upgrades,
		ActiveEvents:  []ActiveEvent{},
		EventChance:   EventChance(upgrades),
		Achievements:  DefaultAchievements(),
	}
}

// Clone returns a deep copy. Reduce clones before mutating so callers can
// treat snapshots as immutable.
func (s State) Clone() State {
	next := s

	next.Upgrades = make(map[string]Upgrade, len(s.Upgrades))
	for id, u := range s.Upgrades {
		next.Upgrades[id] = u
	}

	next.Achievements = make(map[string]AchievementState, len(s.Achievements))
	for id, a := range s.Achievements {
		next.Achievements[id] = a
	}

	next.ActiveEvents = make([]ActiveEvent, len(s.ActiveEvents))
	copy(next.ActiveEvents, s.ActiveEvents)

	return next
}

// mergeSaved overlays a saved (possibly partial, possibly older-schema)
// state onto the current catalog defaults. Catalog entries missing from the
// save keep their defaults; saved entries unknown to the catalog are
// dropped. Derived fields and the tick/save timestamps are refreshed, and
// the hundred-clicks progress is rebuilt from the saved click counter.
func mergeSaved(saved State, now time.Time) State {
	next := NewState(now)

	next.Stardust = saved.Stardust
	if next.Stardust < 0 {
		next.Stardust = 0
	}
	next.TotalClicks = saved.TotalClicks
	next.TotalUpgradesBought = saved.TotalUpgradesBought
	next.TotalEventsTriggered = saved.TotalEventsTriggered
	next.TotalStardustEarned = saved.TotalStardustEarned
	next.PrestigeCount = saved.PrestigeCount
	next.PrestigeCurrency = saved.PrestigeCurrency
	next.Username = saved.Username

	for id, savedUpgrade := range saved.Upgrades {
		current, ok := next.Upgrades[id]
		if !ok {
			continue
		}
		level := savedUpgrade.Level
		if level < 0 {
			level = 0
		}
		if current.MaxLevel > 0 && level > current.MaxLevel {
			level = current.MaxLevel
		}
		current.Level = level
		next.Upgrades[id] = current
	}

	for id, savedAch := range saved.Achievements {
		current, ok := next.Achievements[id]
		if !ok {
			continue
		}
		if savedAch.Unlocked {
			current.Unlocked = true
		}
		if savedAch.Progress > current.Progress {
			current.Progress = savedAch.Progress
		}
		next.Achievements[id] = current
	}

	if hundred, ok := next.Achievements[AchHundredClicks]; ok && !hundred.Unlocked {
		hundred.Progress = int(next.TotalClicks)
		if next.TotalClicks >= HundredClicksGoal {
			hundred.Unlocked = true
			hundred.Progress = HundredClicksGoal
		}
		next.Achievements[AchHundredClicks] = hundred
	}

	next.ActiveEvents = make([]ActiveEvent, len(saved.ActiveEvents))
	copy(next.ActiveEvents, saved.ActiveEvents)

	next.ClickPower = ClickPower(next.Upgrades)
	next.PassiveIncome = PassiveIncome(next.Upgrades)
	next.EventChance = EventChance(next.Upgrades)

	return next
}
