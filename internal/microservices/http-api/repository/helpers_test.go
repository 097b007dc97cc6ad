package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"novelhub/database"
	"novelhub/internal/microservices/http-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func stringPtr(s string) *string { return &s }

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t testing.TB, db *gorm.DB, username string, tickets int64) *models.User {
	t.Helper()
	u := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		Password:       "hash",
		MonthlyTickets: tickets,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedNovel(t testing.TB, db *gorm.DB, title string, author *string, tickets int64, featured bool) *models.Novel {
	t.Helper()
	n := &models.Novel{Title: title, Author: author, IsFeatured: featured}
	require.NoError(t, db.Create(n).Error)
	if tickets != 0 {
		require.NoError(t, db.Model(n).Update("monthly_tickets", tickets).Error)
		n.MonthlyTickets = tickets
	}
	return n
}

func ticketsOf(t *testing.T, db *gorm.DB, model any, id int64) int64 {
	t.Helper()
	var v int64
	require.NoError(t, db.WithContext(context.Background()).Model(model).
		Where("id = ?", id).Select("monthly_tickets").Scan(&v).Error)
	return v
}
