// handlers/game.go - Game action dispatch and state reads
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cosmicclicker/game"
)

type BuyUpgradeRequest struct {
	Bulk int `json:"bulk"`
}

type UsernameRequest struct {
	Username string `json:"username"`
}

// GetState returns the caller's full game snapshot.
func GetState(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	return c.JSON(fiber.Map{
		"success": true,
		"state":   engine.Snapshot(),
	})
}

// Click applies one unit of player input and returns the new snapshot.
func Click(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	state := engine.Do(game.Click{})
	return c.JSON(fiber.Map{
		"success": true,
		"state":   state,
	})
}

// BuyUpgrade buys up to `bulk` levels of one upgrade. Insufficient
// stardust is not an error: the purchase simply buys fewer levels, or
// none.
func BuyUpgrade(c *fiber.Ctx) error {
	upgradeID := c.Params("id")

	var req BuyUpgradeRequest
	_ = c.BodyParser(&req)

	engine := resolveEngine(c)
	before := engine.Snapshot()
	upgrade, ok := before.Upgrades[upgradeID]
	if !ok {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown upgrade",
		})
	}

	state := engine.Do(game.BuyUpgrade{UpgradeID: upgradeID, Bulk: req.Bulk})
	bought := state.Upgrades[upgradeID].Level - upgrade.Level

	return c.JSON(fiber.Map{
		"success": true,
		"bought":  bought,
		"state":   state,
	})
}

// PrestigeInfo reports the currency a reset would grant right now.
func PrestigeInfo(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	snap := engine.Snapshot()
	return c.JSON(fiber.Map{
		"success":        true,
		"gain":           game.PrestigeGain(snap.TotalStardustEarned),
		"prestige_count": snap.PrestigeCount,
		"currency":       snap.PrestigeCurrency,
	})
}

// DoPrestige resets progress for permanent prestige currency. Below the
// threshold it is a no-op, reported as gained=0.
func DoPrestige(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	gain := game.PrestigeGain(engine.Snapshot().TotalStardustEarned)
	state := engine.Do(game.Prestige{})
	return c.JSON(fiber.Map{
		"success": true,
		"gained":  gain,
		"state":   state,
	})
}

// SetUsername sets the cosmetic username shown on the leaderboard.
func SetUsername(c *fiber.Ctx) error {
	var req UsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if !usernameRegex.MatchString(req.Username) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Username must be 3-20 characters, alphanumeric or underscore",
		})
	}

	engine := resolveEngine(c)
	state := engine.Do(game.SetUsername{Name: req.Username})
	return c.JSON(fiber.Map{
		"success": true,
		"state":   state,
	})
}

// GetStats returns the lifetime statistics panel data.
func GetStats(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	snap := engine.Snapshot()
	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"total_clicks":           snap.TotalClicks,
			"total_upgrades_bought":  snap.TotalUpgradesBought,
			"total_events_triggered": snap.TotalEventsTriggered,
			"total_stardust_earned":  snap.TotalStardustEarned,
			"prestige_count":         snap.PrestigeCount,
			"prestige_currency":      snap.PrestigeCurrency,
		},
	})
}

// upgradeView decorates a catalog entry with its current price and the
// effect preview clients render next to the buy button.
type upgradeView struct {
	game.Upgrade
	Cost        float64 `json:"cost"`
	EffectDelta float64 `json:"effectDelta"`
}

// GetCatalog returns the upgrade list (with live costs), achievement
// definitions merged with unlock state, and the rush event catalog.
func GetCatalog(c *fiber.Ctx) error {
	engine := resolveEngine(c)
	snap := engine.Snapshot()

	upgrades := make(map[string]upgradeView, len(snap.Upgrades))
	for id, u := range snap.Upgrades {
		upgrades[id] = upgradeView{
			Upgrade:     u,
			Cost:        game.Cost(u),
			EffectDelta: game.EffectDelta(u, 1),
		}
	}

	type achievementView struct {
		game.AchievementDef
		Unlocked bool `json:"unlocked"`
		Progress int  `json:"progress,omitempty"`
	}
	achievements := make([]achievementView, 0, len(game.AchievementCatalog))
	for _, def := range game.AchievementCatalog {
		view := achievementView{AchievementDef: def}
		if st, ok := snap.Achievements[def.ID]; ok {
			view.Unlocked = st.Unlocked
			view.Progress = st.Progress
		}
		achievements = append(achievements, view)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"upgrades":     upgrades,
		"achievements": achievements,
		"rush_events":  game.RushEvents,
	})
}
