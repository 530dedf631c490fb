// game/reducer.go - The pure state transition function
package game

import (
	"math"
	"time"
)

// PrestigeThreshold is the lifetime earnings backing one unit of prestige
// gain.
const PrestigeThreshold = 1_000_000

// PrestigeGain returns the prestige currency earned by resetting now:
// floor(sqrt(totalStardustEarned / 1,000,000)).
func PrestigeGain(totalStardustEarned float64) int64 {
	if totalStardustEarned <= 0 {
		return 0
	}
	return int64(math.Floor(math.Sqrt(totalStardustEarned / PrestigeThreshold)))
}

// Reduce maps (state, action) to the next state. It is pure and total:
// it never fails, invalid targets and unaffordable purchases are no-ops,
// and unrecognized actions return the state unchanged. The caller supplies
// the wall clock so replays stay deterministic.
func Reduce(s State, action Action, now time.Time) State {
	switch a := action.(type) {
	case Click:
		return reduceClick(s)
	case AddStardust:
		return reduceAddStardust(s, a)
	case BuyUpgrade:
		return reduceBuyUpgrade(s, a)
	case Tick:
		return reduceTick(s, now)
	case LoadGame:
		return mergeSaved(a.Saved, now)
	case StartEvent:
		return reduceStartEvent(s, a)
	case EndEvent:
		return reduceEndEvent(s, a)
	case AchievementProgress:
		return reduceAchievementProgress(s, a)
	case Prestige:
		return reducePrestige(s, now)
	case SetUsername:
		next := s.Clone()
		next.Username = a.Name
		return next
	default:
		return s
	}
}

func reduceClick(s State) State {
	next := s.Clone()

	gain := next.ClickPower * ActiveEventMultiplier(next.ActiveEvents)
	next.Stardust += gain
	next.TotalStardustEarned += gain
	next.TotalClicks++

	if first, ok := next.Achievements[AchFirstClick]; ok && !first.Unlocked {
		first.Unlocked = true
		next.Achievements[AchFirstClick] = first
	}
	if hundred, ok := next.Achievements[AchHundredClicks]; ok && !hundred.Unlocked {
		hundred.Progress = int(next.TotalClicks)
		if next.TotalClicks >= HundredClicksGoal {
			hundred.Unlocked = true
			hundred.Progress = HundredClicksGoal
		}
		next.Achievements[AchHundredClicks] = hundred
	}

	return next
}

func reduceAddStardust(s State, a AddStardust) State {
	next := s.Clone()
	next.Stardust += a.Amount
	next.TotalStardustEarned += a.Amount
	return next
}

func reduceBuyUpgrade(s State, a BuyUpgrade) State {
	upgrade, ok := s.Upgrades[a.UpgradeID]
	if !ok {
		return s
	}

	requested := a.Bulk
	if requested <= 0 {
		requested = 1
	}

	// Greedily buy the most levels the player can afford, stopping at the
	// first unaffordable level or at the level cap.
	totalCost := 0.0
	bought := 0
	level := upgrade.Level
	for i := 0; i < requested; i++ {
		if upgrade.MaxLevel > 0 && level >= upgrade.MaxLevel {
			break
		}
		step := upgrade
		step.Level = level
		price := Cost(step)
		if s.Stardust-totalCost < price {
			break
		}
		totalCost += price
		level++
		bought++
	}
	if bought == 0 {
		return s
	}

	next := s.Clone()
	upgrade.Level += bought
	next.Upgrades[a.UpgradeID] = upgrade
	next.Stardust -= totalCost
	next.ClickPower = ClickPower(next.Upgrades)
	next.PassiveIncome = PassiveIncome(next.Upgrades)
	next.EventChance = EventChance(next.Upgrades)
	next.TotalUpgradesBought += int64(bought)
	return next
}

func reduceTick(s State, now time.Time) State {
	next := s.Clone()
	nowMillis := now.UnixMilli()

	// Delta comes from the wall clock, not a fixed step, so suspended or
	// throttled timers still integrate the full elapsed interval.
	delta := float64(nowMillis-next.LastTick) / 1000
	if delta > 0 {
		gain := next.PassiveIncome * ActiveEventMultiplier(next.ActiveEvents) * delta
		next.Stardust += gain
		next.TotalStardustEarned += gain
	}
	next.LastTick = nowMillis

	remaining := next.ActiveEvents[:0]
	for _, instance := range next.ActiveEvents {
		if !instance.Expired(nowMillis) {
			remaining = append(remaining, instance)
		}
	}
	next.ActiveEvents = remaining

	return next
}

func reduceStartEvent(s State, a StartEvent) State {
	next := s.Clone()
	next.ActiveEvents = append(next.ActiveEvents, a.Event)
	next.TotalEventsTriggered++

	if def, ok := FindRushEvent(a.Event.ID); ok && def.Achievement != "" {
		if ach, ok := next.Achievements[def.Achievement]; ok && !ach.Unlocked {
			ach.Unlocked = true
			next.Achievements[def.Achievement] = ach
		}
	}

	return next
}

func reduceEndEvent(s State, a EndEvent) State {
	next := s.Clone()
	remaining := next.ActiveEvents[:0]
	for _, instance := range next.ActiveEvents {
		if instance.ID == a.EventID && instance.StartedAt == a.StartedAt {
			continue
		}
		remaining = append(remaining, instance)
	}
	next.ActiveEvents = remaining
	return next
}

func reduceAchievementProgress(s State, a AchievementProgress) State {
	ach, ok := s.Achievements[a.ID]
	if !ok {
		return s
	}
	next := s.Clone()
	if a.Unlock {
		ach.Unlocked = true
	}
	if a.Progress != nil {
		ach.Progress = *a.Progress
	}
	next.Achievements[a.ID] = ach
	return next
}

func reducePrestige(s State, now time.Time) State {
	gain := PrestigeGain(s.TotalStardustEarned)
	if gain < 1 {
		return s
	}

	next := NewState(now)
	// Achievements, prestige standing, the identity and the lifetime
	// counters survive the reset; spendable progress does not.
	next.Achievements = make(map[string]AchievementState, len(s.Achievements))
	for id, ach := range s.Achievements {
		next.Achievements[id] = ach
	}
	next.PrestigeCount = s.PrestigeCount + 1
	next.PrestigeCurrency = s.PrestigeCurrency + gain
	next.TotalClicks = s.TotalClicks
	next.TotalUpgradesBought = s.TotalUpgradesBought
	next.TotalEventsTriggered = s.TotalEventsTriggered
	next.Username = s.Username
	return next
}
