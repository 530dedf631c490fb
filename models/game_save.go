// models/game_save.go - Cloud save row: one full game snapshot per user
package models

import (
	"encoding/json"
	"time"

	"cosmicclicker/game"
)

// GameSave persists the complete serialized game state for one user.
// The snapshot lives in a JSON blob; the leaderboard columns are
// denormalized copies kept in sync on every save so ranking queries never
// have to parse the blob.
type GameSave struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	// Full state snapshot (stored as JSON)
	StateJSON string `json:"state_json" gorm:"type:text"`

	// Denormalized leaderboard fields
	Username            string  `json:"username" gorm:"size:100;index"`
	TotalStardustEarned float64 `json:"total_stardust_earned" gorm:"index"`
	PrestigeCount       int     `json:"prestige_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GameSave
func (GameSave) TableName() string {
	return "game_saves"
}

// GetState unmarshals the stored snapshot. Callers treat a parse failure
// as "no save found".
func (gs *GameSave) GetState() (*game.State, error) {
	if gs.StateJSON == "" {
		return nil, nil
	}
	var state game.State
	if err := json.Unmarshal([]byte(gs.StateJSON), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SetState marshals the snapshot and refreshes the denormalized
// leaderboard columns.
func (gs *GameSave) SetState(state *game.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	gs.StateJSON = string(data)
	gs.Username = state.Username
	gs.TotalStardustEarned = state.TotalStardustEarned
	gs.PrestigeCount = state.PrestigeCount
	return nil
}
