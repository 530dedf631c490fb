package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUpgrade(level int) Upgrade {
	return Upgrade{
		ID:               "testBooster",
		Level:            level,
		BaseCost:         15,
		CostMultiplier:   1.15,
		Effect:           2,
		EffectMultiplier: 1.15,
		Type:             UpgradeClick,
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"level 0", 0, 15},
		{"level 1", 1, 17},
		{"level 2", 2, 19},
		{"level 3", 3, 22},
		{"level 4", 4, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cost(testUpgrade(tt.level)))
		})
	}
}

func TestCostMonotonic(t *testing.T) {
	for _, u := range DefaultUpgrades() {
		require.Greater(t, u.CostMultiplier, 1.0, "catalog upgrade %s", u.ID)
		for level := 0; level < 25; level++ {
			u.Level = level
			lower := Cost(u)
			u.Level = level + 1
			assert.Greater(t, Cost(u), lower, "%s at level %d", u.ID, level)
		}
	}
}

func TestBulkCost(t *testing.T) {
	u := testUpgrade(0)
	assert.Equal(t, 0.0, BulkCost(u, 0))
	assert.Equal(t, 15.0, BulkCost(u, 1))
	// 15 + 17 + 19 + 22 + 26
	assert.Equal(t, 99.0, BulkCost(u, 5))

	u.Level = 2
	// 19 + 22
	assert.Equal(t, 41.0, BulkCost(u, 2))
}

func TestPerLevelEffect(t *testing.T) {
	u := testUpgrade(0)
	assert.Equal(t, 0.0, PerLevelEffect(u))

	u.Level = 1
	assert.InDelta(t, 2, PerLevelEffect(u), 1e-9)

	// effect * effectMultiplier^(level-1) * level = 2 * 1.15^2 * 3
	u.Level = 3
	assert.InDelta(t, 7.935, PerLevelEffect(u), 1e-9)
}

func TestEffectDelta(t *testing.T) {
	u := testUpgrade(0)
	assert.InDelta(t, 2, EffectDelta(u, 1), 1e-9)

	u.Level = 2
	next := PerLevelEffect(Upgrade{Effect: 2, EffectMultiplier: 1.15, Level: 3})
	cur := PerLevelEffect(u)
	assert.InDelta(t, next-cur, EffectDelta(u, 1), 1e-9)
}

func TestClickPower(t *testing.T) {
	upgrades := DefaultUpgrades()
	assert.Equal(t, 1.0, ClickPower(upgrades), "base click power with no levels is 1")

	u := upgrades["stellarEnhancement"]
	u.Level = 1
	upgrades["stellarEnhancement"] = u
	assert.InDelta(t, 3, ClickPower(upgrades), 1e-9)

	// passive levels do not contribute to click power
	p := upgrades["starClusters"]
	p.Level = 5
	upgrades["starClusters"] = p
	assert.InDelta(t, 3, ClickPower(upgrades), 1e-9)
}

func TestPassiveIncome(t *testing.T) {
	upgrades := DefaultUpgrades()
	assert.Equal(t, 0.0, PassiveIncome(upgrades), "base passive income is 0")

	u := upgrades["starClusters"]
	u.Level = 2
	upgrades["starClusters"] = u
	// 1 * 1.12^1 * 2
	assert.InDelta(t, 2.24, PassiveIncome(upgrades), 1e-9)
}

func TestEventChance(t *testing.T) {
	upgrades := DefaultUpgrades()
	assert.Equal(t, 0.0, EventChance(upgrades))

	booster := upgrades["eventBooster"]
	booster.Level = 3
	upgrades["eventBooster"] = booster
	magnet := upgrades["meteorMagnet"]
	magnet.Level = 2
	upgrades["meteorMagnet"] = magnet

	// additive: 0.02*3 + 0.03*2, no compounding
	assert.InDelta(t, 0.12, EventChance(upgrades), 1e-9)
}

func TestCapped(t *testing.T) {
	u := Upgrade{MaxLevel: 5, Level: 4}
	assert.False(t, u.Capped())
	u.Level = 5
	assert.True(t, u.Capped())

	uncapped := Upgrade{Level: 10_000}
	assert.False(t, uncapped.Capped())
}
