// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/lshigami/Coursegate/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory sqlite database private to the test.
// A single connection serialises concurrent transactions the way row locks would.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_busy_timeout=5000", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Module{},
		&model.QuizAttempt{},
		&model.SubmittedAnswer{},
		&model.ModuleProgress{},
	))
	return db
}

// SeedQuiz creates quiz with its questions and answers and returns it with ids filled in.
func SeedQuiz(t *testing.T, db *gorm.DB, quiz model.Quiz) model.Quiz {
	t.Helper()
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}
