// services/cloud_store.go - GORM-backed cloud save storage
package services

import (
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"

	"cosmicclicker/game"
	"cosmicclicker/models"
)

// CloudStore persists snapshots in the game_saves table, one row per user.
// The scope is the decimal user id.
type CloudStore struct {
	db *gorm.DB
}

func NewCloudStore(db *gorm.DB) *CloudStore {
	return &CloudStore{db: db}
}

// Load fetches the user's save row and unmarshals its snapshot. A missing
// row or an unreadable blob both read as "no save found".
func (s *CloudStore) Load(scope string) (*game.State, error) {
	userID, err := parseScope(scope)
	if err != nil {
		return nil, err
	}

	var save models.GameSave
	if err := s.db.Where("user_id = ?", userID).First(&save).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	state, err := save.GetState()
	if err != nil {
		log.Printf("Discarding unreadable cloud save for user %d: %v", userID, err)
		return nil, nil
	}
	return state, nil
}

// Save upserts the user's save row and refreshes the denormalized
// leaderboard columns.
func (s *CloudStore) Save(scope string, state *game.State) error {
	userID, err := parseScope(scope)
	if err != nil {
		return err
	}

	var save models.GameSave
	err = s.db.Where("user_id = ?", userID).First(&save).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		save = models.GameSave{UserID: userID}
		if err := save.SetState(state); err != nil {
			return err
		}
		return s.db.Create(&save).Error
	case err != nil:
		return err
	default:
		if err := save.SetState(state); err != nil {
			return err
		}
		return s.db.Save(&save).Error
	}
}

func parseScope(scope string) (uint, error) {
	id, err := strconv.ParseUint(scope, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
