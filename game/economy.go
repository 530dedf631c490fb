// game/economy.go - Pure cost and effect calculators for the upgrade economy
package game

import "math"

// Cost returns the price of the next level of an upgrade:
// floor(baseCost * costMultiplier^level). Monotonic increasing in level
// whenever costMultiplier > 1.
func Cost(u Upgrade) float64 {
	return math.Floor(u.BaseCost * math.Pow(u.CostMultiplier, float64(u.Level)))
}

// BulkCost returns the cumulative price of buying n successive levels
// starting at the upgrade's current level.
func BulkCost(u Upgrade, n int) float64 {
	total := 0.0
	for i := 0; i < n; i++ {
		step := u
		step.Level = u.Level + i
		total += Cost(step)
	}
	return total
}

// PerLevelEffect returns the total effect an upgrade contributes at its
// current level: 0 at level 0, otherwise
// effect * effectMultiplier^(level-1) * level. Each level contributes a
// compounding increment, so the displayed effect grows super-linearly.
func PerLevelEffect(u Upgrade) float64 {
	if u.Level == 0 {
		return 0
	}
	return u.Effect * math.Pow(u.EffectMultiplier, float64(u.Level-1)) * float64(u.Level)
}

// EffectDelta returns the effect gained by buying n more levels of an
// upgrade. Used by clients to preview a purchase.
func EffectDelta(u Upgrade, n int) float64 {
	next := u
	next.Level = u.Level + n
	return PerLevelEffect(next) - PerLevelEffect(u)
}

// ClickPower returns the stardust granted per click: a base of 1 plus the
// effect of every leveled click upgrade.
func ClickPower(upgrades map[string]Upgrade) float64 {
	total := 1.0
	for _, u := range upgrades {
		if u.Type == UpgradeClick && u.Level > 0 {
			total += PerLevelEffect(u)
		}
	}
	return total
}

// PassiveIncome returns the stardust granted per second while idle.
func PassiveIncome(upgrades map[string]Upgrade) float64 {
	total := 0.0
	for _, u := range upgrades {
		if u.Type == UpgradePassive && u.Level > 0 {
			total += PerLevelEffect(u)
		}
	}
	return total
}

// EventChance returns the probability of a rush event firing per scheduler
// check: a simple additive effect*level over event upgrades, not
// compounding.
func EventChance(upgrades map[string]Upgrade) float64 {
	total := 0.0
	for _, u := range upgrades {
		if u.Type == UpgradeEvent {
			total += u.Effect * float64(u.Level)
		}
	}
	return total
}
