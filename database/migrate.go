// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"cosmicclicker/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.GameSave{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the leaderboard and lookup queries rely on
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_saves_user ON game_saves(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_saves_earned ON game_saves(total_stardust_earned DESC)")
}
