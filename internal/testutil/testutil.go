// Package testutil provides shared utilities for testing.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
)

// SetupTestDB creates an in-memory SQLite database with migrations applied.
// Returns the DB wrapper and Repository. Automatically cleans up on test completion.
func SetupTestDB(t *testing.T) (*database.DB, *database.Repository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	db := database.NewDBFromGorm(gormDB)
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := database.NewRepository(db)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, repo
}

// SetupTestGin creates a test Gin engine with test mode enabled.
func SetupTestGin() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// GormDB returns the underlying GORM database from a database.DB wrapper.
// This is useful for direct database manipulation in tests.
func GormDB(db *database.DB) *gorm.DB {
	return db.DB
}

// SeedTestDict fills the repository with a small dictionary covering
// characters, phrases and surnames, including heteronyms and a
// traditional-script phrase.
func SeedTestDict(t *testing.T, repo *database.Repository) {
	t.Helper()

	chars := []*database.Character{
		testChar(t, '中', 100, []string{"zhōng", "zhòng"}, []string{"zhong", "zhong"}),
		testChar(t, '国', 90, []string{"guó"}, []string{"guo"}),
		testChar(t, '行', 80, []string{"xíng", "háng"}, []string{"xing", "hang"}),
		testChar(t, '好', 70, []string{"hǎo", "hào"}, []string{"hao", "hao"}),
		testChar(t, '航', 60, []string{"háng"}, []string{"hang"}),
		testChar(t, '杭', 50, []string{"háng"}, []string{"hang"}),
		testChar(t, '银', 40, []string{"yín"}, []string{"yin"}),
		testChar(t, '单', 30, []string{"dān", "chán", "shàn"}, []string{"dan", "chan", "shan"}),
	}
	require.NoError(t, repo.BatchInsertCharacters(chars, len(chars)))

	phrases := []*database.Phrase{
		{Text: "银行", Pinyin: "yín háng", Plain: "yin hang", Script: "zh-Hans"},
		{Text: "中国", Pinyin: "zhōng guó", Plain: "zhong guo", Script: "zh-Hans"},
		{Text: "銀行", Pinyin: "yín háng", Plain: "yin hang", Script: "zh-Hant"},
	}
	require.NoError(t, repo.BatchInsertPhrases(phrases, len(phrases)))

	surnames := []*database.Surname{
		{Text: "单", Pinyin: "shàn", Plain: "shan"},
		{Text: "欧阳", Pinyin: "ōu yáng", Plain: "ou yang", Compound: true},
	}
	require.NoError(t, repo.BatchInsertSurnames(surnames, len(surnames)))
}

func testChar(t *testing.T, ch rune, weight int, readings, plain []string) *database.Character {
	t.Helper()

	readingsJSON, err := json.Marshal(readings)
	require.NoError(t, err)
	plainJSON, err := json.Marshal(plain)
	require.NoError(t, err)

	return &database.Character{
		Codepoint: int64(ch),
		Char:      string(ch),
		Readings:  datatypes.JSON(readingsJSON),
		Plain:     datatypes.JSON(plainJSON),
		Weight:    weight,
	}
}
