// handlers/leaderboard.go - Global ranking by lifetime stardust
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cosmicclicker/database"
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Username            string  `json:"username"`
	TotalStardustEarned float64 `json:"totalStardustEarned"`
	PrestigeCount       int     `json:"prestigeCount"`
}

// GetLeaderboard returns up to `limit` entries sorted descending by
// lifetime stardust earned. Read-only, independent of any running engine.
// GET /api/leaderboard?limit=20
func GetLeaderboard(c *fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	if !database.Initialized() {
		return c.Status(503).JSON(fiber.Map{
			"success": false,
			"error":   "Leaderboard requires a configured database",
		})
	}
	db := database.GetDB()

	var entries []LeaderboardEntry
	if err := db.Table("game_saves").
		Select("username, total_stardust_earned, prestige_count").
		Where("username <> ''").
		Order("total_stardust_earned DESC").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch leaderboard",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
		"limit":   limit,
	})
}
