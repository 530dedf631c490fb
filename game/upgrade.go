// game/upgrade.go - Upgrade definitions and the fixed purchase catalog
package game

// UpgradeType classifies what an upgrade improves.
type UpgradeType string

const (
	UpgradeClick   UpgradeType = "click"
	UpgradePassive UpgradeType = "passive"
	UpgradeEvent   UpgradeType = "event"
)

// Upgrade is one purchasable modifier. Cost and effect are never stored;
// they are recomputed from the base values and the current level.
type Upgrade struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Level            int         `json:"level"`
	MaxLevel         int         `json:"maxLevel,omitempty"` // 0 means uncapped
	BaseCost         float64     `json:"baseCost"`
	CostMultiplier   float64     `json:"costMultiplier"`
	Effect           float64     `json:"effect"`
	EffectMultiplier float64     `json:"effectMultiplier"`
	Type             UpgradeType `json:"type"`
	Icon             string      `json:"icon"`
}

// Capped reports whether the upgrade has reached its level cap.
func (u Upgrade) Capped() bool {
	return u.MaxLevel > 0 && u.Level >= u.MaxLevel
}

// DefaultUpgrades returns a fresh copy of the upgrade catalog at level 0.
func DefaultUpgrades() map[string]Upgrade {
	catalog := []Upgrade{
		{
			ID:               "stellarEnhancement",
			Name:             "Stellar Enhancement",
			Description:      "Harness stellar energy to enhance your clicking power",
			BaseCost:         15,
			CostMultiplier:   1.12,
			Effect:           2,
			EffectMultiplier: 1.15,
			Type:             UpgradeClick,
			Icon:             "star",
		},
		{
			ID:               "gravitationalAmplifier",
			Name:             "Gravitational Amplifier",
			Description:      "Amplify your clicks with gravitational force",
			BaseCost:         100,
			CostMultiplier:   1.15,
			Effect:           5,
			EffectMultiplier: 1.2,
			Type:             UpgradeClick,
			Icon:             "orbit",
		},
		{
			ID:               "supernovaBoost",
			Name:             "Supernova Boost",
			Description:      "Channel the power of supernovas into your clicks",
			BaseCost:         500,
			CostMultiplier:   1.18,
			Effect:           15,
			EffectMultiplier: 1.25,
			Type:             UpgradeClick,
			Icon:             "star",
		},
		{
			ID:               "cosmicResonance",
			Name:             "Cosmic Resonance",
			Description:      "Harmonize with the universe for enhanced clicking power",
			BaseCost:         2500,
			CostMultiplier:   1.2,
			Effect:           50,
			EffectMultiplier: 1.3,
			Type:             UpgradeClick,
			Icon:             "star",
		},
		{
			ID:               "quantumAlignment",
			Name:             "Quantum Alignment",
			Description:      "Align quantum particles for maximum click efficiency",
			BaseCost:         10000,
			CostMultiplier:   1.25,
			Effect:           200,
			EffectMultiplier: 1.35,
			Type:             UpgradeClick,
			Icon:             "star",
		},
		{
			ID:               "starClusters",
			Name:             "Star Clusters",
			Description:      "Generate stardust automatically from star clusters",
			BaseCost:         25,
			CostMultiplier:   1.1,
			Effect:           1,
			EffectMultiplier: 1.12,
			Type:             UpgradePassive,
			Icon:             "star",
		},
		{
			ID:               "nebulaHarvesters",
			Name:             "Nebula Harvesters",
			Description:      "Collect stardust from space nebulae",
			BaseCost:         250,
			CostMultiplier:   1.12,
			Effect:           5,
			EffectMultiplier: 1.15,
			Type:             UpgradePassive,
			Icon:             "cloud",
		},
		{
			ID:               "blackHoleExtractors",
			Name:             "Black Hole Extractors",
			Description:      "Extract massive amounts of stardust from black holes",
			BaseCost:         1000,
			CostMultiplier:   1.15,
			Effect:           25,
			EffectMultiplier: 1.18,
			Type:             UpgradePassive,
			Icon:             "orbit",
		},
		{
			ID:               "galacticCondensers",
			Name:             "Galactic Condensers",
			Description:      "Condense galactic matter into pure stardust",
			BaseCost:         5000,
			CostMultiplier:   1.18,
			Effect:           100,
			EffectMultiplier: 1.2,
			Type:             UpgradePassive,
			Icon:             "star",
		},
		{
			ID:               "cosmicVortexes",
			Name:             "Cosmic Vortexes",
			Description:      "Create space-time vortexes that generate stardust",
			BaseCost:         25000,
			CostMultiplier:   1.2,
			Effect:           500,
			EffectMultiplier: 1.25,
			Type:             UpgradePassive,
			Icon:             "star",
		},
		{
			ID:               "eventBooster",
			Name:             "Event Booster",
			Description:      "Increases the chance of rush events by 2% per level.",
			BaseCost:         1000,
			CostMultiplier:   2.5,
			Effect:           0.02,
			EffectMultiplier: 1,
			Type:             UpgradeEvent,
			Icon:             "rocket",
			MaxLevel:         10,
		},
		{
			ID:               "meteorMagnet",
			Name:             "Meteor Magnet",
			Description:      "Further increases rush event chance by 3% per level.",
			BaseCost:         5000,
			CostMultiplier:   3,
			Effect:           0.03,
			EffectMultiplier: 1,
			Type:             UpgradeEvent,
			Icon:             "rocket",
			MaxLevel:         5,
		},
	}

	upgrades := make(map[string]Upgrade, len(catalog))
	for _, u := range catalog {
		upgrades[u.ID] = u
	}
	return upgrades
}
