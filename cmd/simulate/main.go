// cmd/simulate - Headless economy simulator for balancing upgrade curves
//
// Runs the reducer against a synthetic player (fixed clicks per second,
// greedy cheapest-first purchases) on a fake clock and prints one row per
// simulated minute.
//
// Usage:
//
//	go run ./cmd/simulate -minutes 60 -cps 4
package main

import (
	"flag"
	"fmt"
	"sort"
	"time"

	"cosmicclicker/game"
)

func main() {
	minutes := flag.Int("minutes", 30, "simulated play time in minutes")
	cps := flag.Int("cps", 4, "player clicks per second")
	flag.Parse()

	now := time.Unix(0, 0)
	state := game.NewState(now)

	fmt.Printf("%6s  %12s  %12s  %12s  %8s\n", "min", "stardust", "click", "passive", "bought")

	for second := 0; second < *minutes*60; second++ {
		now = now.Add(time.Second)
		for i := 0; i < *cps; i++ {
			state = game.Reduce(state, game.Click{}, now)
		}
		state = game.Reduce(state, game.Tick{}, now)
		state = buyCheapest(state, now)

		if second%60 == 59 {
			fmt.Printf("%6d  %12s  %12s  %12s  %8d\n",
				(second+1)/60,
				game.FormatNumber(state.Stardust),
				game.FormatNumber(state.ClickPower),
				game.FormatNumber(state.PassiveIncome),
				state.TotalUpgradesBought,
			)
		}
	}

	fmt.Printf("\nlifetime earned: %s, prestige gain if reset now: %d\n",
		game.FormatNumber(state.TotalStardustEarned),
		game.PrestigeGain(state.TotalStardustEarned),
	)
}

// buyCheapest buys the single cheapest affordable upgrade level, if any.
// Iteration is sorted so runs are reproducible.
func buyCheapest(state game.State, now time.Time) game.State {
	ids := make([]string, 0, len(state.Upgrades))
	for id := range state.Upgrades {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bestID := ""
	bestCost := 0.0
	for _, id := range ids {
		u := state.Upgrades[id]
		if u.Capped() {
			continue
		}
		price := game.Cost(u)
		if price <= state.Stardust && (bestID == "" || price < bestCost) {
			bestID = id
			bestCost = price
		}
	}
	if bestID == "" {
		return state
	}
	return game.Reduce(state, game.BuyUpgrade{UpgradeID: bestID}, now)
}
