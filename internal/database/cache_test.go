package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedRepositoryGetCharacter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCachedRepository(NewRepository(db))
	seedTestDict(t, repo.Repository)

	ch, err := repo.GetCharacter('中')
	require.NoError(t, err)
	assert.Equal(t, "中", ch.Char)

	// delete the row underneath the cache; the cached copy still serves
	require.NoError(t, db.Delete(&Character{}, "codepoint = ?", int64('中')).Error)

	cached, err := repo.GetCharacter('中')
	require.NoError(t, err)
	assert.Equal(t, "中", cached.Char)

	assert.Equal(t, 1, repo.GetCacheStats()["characters"])

	repo.ClearCache()
	_, err = repo.GetCharacter('中')
	assert.Error(t, err)
}

func TestCachedRepositoryUpsertInvalidates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCachedRepository(NewRepository(db))
	seedTestDict(t, repo.Repository)

	before, err := repo.GetCharacter('行')
	require.NoError(t, err)
	assert.Equal(t, 80, before.Weight)

	require.NoError(t, repo.UpsertCharacter(
		newCharacter(t, '行', 99, []string{"xíng", "háng"}, []string{"xing", "hang"}),
	))

	after, err := repo.GetCharacter('行')
	require.NoError(t, err)
	assert.Equal(t, 99, after.Weight)
}

func TestCachedRepositoryGetSurname(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCachedRepository(NewRepository(db))
	seedTestDict(t, repo.Repository)

	s, err := repo.GetSurname("欧阳")
	require.NoError(t, err)
	assert.True(t, s.Compound)
	assert.Equal(t, "ōu yáng", s.Pinyin)

	_, err = repo.GetSurname("不存在")
	assert.Error(t, err)

	assert.Equal(t, 1, repo.GetCacheStats()["surnames"])
}
