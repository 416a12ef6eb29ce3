package database

import (
	"fmt"

	"gorm.io/gorm"
)

// EnsureIndexes creates the lookup indexes the list and ownership queries
// depend on. AutoMigrate already builds the unique indexes declared on the
// models; these cover the plain owner scans.
func EnsureIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"tasks", "idx_tasks_user_id", "user_id"},
		{"subtasks", "idx_subtasks_user_id", "user_id"},
		{"subtasks", "idx_subtasks_task_id", "task_id"},
	}

	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
