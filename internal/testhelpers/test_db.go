package testhelpers

import (
	"fmt"
	"testing"

	"prepmate/server/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Interview{}, &models.Question{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
