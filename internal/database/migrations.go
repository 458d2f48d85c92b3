package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Post indexes for the list endpoints and status filter
		{"posts", "idx_posts_user_id", "user_id"},
		{"posts", "idx_posts_status", "status"},
		{"posts", "idx_posts_scheduled_at", "scheduled_at"},
		{"posts", "idx_posts_created_at", "created_at"},

		// Social account lookups by owner and platform
		{"social_accounts", "idx_social_accounts_user_id", "user_id"},
		{"social_accounts", "idx_social_accounts_platform", "platform"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
