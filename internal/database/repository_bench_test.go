package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupBenchDB(b *testing.B) *DB {
	b.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(b, err)

	db := NewDBFromGorm(gormDB)
	require.NoError(b, db.Migrate())

	b.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func benchCharacters(b *testing.B, n int) []*Character {
	b.Helper()

	chars := make([]*Character, 0, n)
	for i := range n {
		ch := rune(0x4E00 + i)
		chars = append(chars, newCharacter(b, ch, i, []string{"yī", "yí"}, []string{"yi", "yi"}))
	}
	return chars
}

// BenchmarkGetCharacter compares direct lookups with the cached repository
func BenchmarkGetCharacter(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewRepository(db)
	require.NoError(b, repo.BatchInsertCharacters(benchCharacters(b, 1000), 500))

	b.Run("direct", func(b *testing.B) {
		b.ResetTimer()
		for b.Loop() {
			_, _ = repo.GetCharacter(0x4E00)
		}
	})

	b.Run("cached", func(b *testing.B) {
		cached := NewCachedRepository(repo)
		b.ResetTimer()
		for b.Loop() {
			_, _ = cached.GetCharacter(0x4E00)
		}
	})
}

// BenchmarkSearchByPlain measures reverse lookup through json_each
func BenchmarkSearchByPlain(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewRepository(db)
	require.NoError(b, repo.BatchInsertCharacters(benchCharacters(b, 5000), 500))

	b.ResetTimer()
	for b.Loop() {
		_, _ = repo.SearchByPlain("yi", 10)
	}
}

// BenchmarkBatchInsertCharacters measures bulk loading at several sizes
func BenchmarkBatchInsertCharacters(b *testing.B) {
	for _, size := range []int{100, 1000} {
		b.Run(fmt.Sprintf("rows_%d", size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				db := setupBenchDB(b)
				repo := NewRepository(db)
				rows := benchCharacters(b, size)
				b.StartTimer()

				if err := repo.BatchInsertCharacters(rows, 500); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
