package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCharacter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	ch := newCharacter(t, '绿', 10, []string{"lǜ"}, []string{"lv"})
	require.NoError(t, repo.UpsertCharacter(ch))

	count, _ := repo.CountCharacters()
	assert.Equal(t, 1, count)

	// second upsert replaces the readings
	updated := newCharacter(t, '绿', 20, []string{"lǜ", "lù"}, []string{"lv", "lu"})
	require.NoError(t, repo.UpsertCharacter(updated))

	count, _ = repo.CountCharacters()
	assert.Equal(t, 1, count)

	got, err := repo.GetCharacter('绿')
	require.NoError(t, err)
	assert.Equal(t, 20, got.Weight)

	readings, err := got.ReadingList()
	require.NoError(t, err)
	assert.Equal(t, []string{"lǜ", "lù"}, readings)
}

func TestBatchInsertCharacters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.BatchInsertCharacters(nil, 0))
	})

	chars := []*Character{
		newCharacter(t, '一', 100, []string{"yī"}, []string{"yi"}),
		newCharacter(t, '二', 90, []string{"èr"}, []string{"er"}),
		newCharacter(t, '三', 80, []string{"sān"}, []string{"san"}),
	}
	require.NoError(t, repo.BatchInsertCharacters(chars, 2))

	count, _ := repo.CountCharacters()
	assert.Equal(t, 3, count)

	// duplicates are skipped, first write wins
	again := []*Character{
		newCharacter(t, '一', 1, []string{"yāo"}, []string{"yao"}),
		newCharacter(t, '四', 70, []string{"sì"}, []string{"si"}),
	}
	require.NoError(t, repo.BatchInsertCharacters(again, 0))

	count, _ = repo.CountCharacters()
	assert.Equal(t, 4, count)

	got, err := repo.GetCharacter('一')
	require.NoError(t, err)
	assert.Equal(t, 100, got.Weight)
}

func TestBatchInsertCharactersWithTransaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	chars := make([]*Character, 0, 250)
	for i := range 250 {
		ch := rune(0x4E00 + i)
		chars = append(chars, newCharacter(t, ch, i, []string{"yī"}, []string{"yi"}))
	}

	// small transaction and batch sizes to exercise the chunking
	require.NoError(t, repo.BatchInsertCharactersWithTransaction(chars, 100, 30, nil))

	count, _ := repo.CountCharacters()
	assert.Equal(t, 250, count)

	// re-running skips every existing row
	require.NoError(t, repo.BatchInsertCharactersWithTransaction(chars, 100, 30, nil))
	count, _ = repo.CountCharacters()
	assert.Equal(t, 250, count)
}

func TestBatchInsertPhrases(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	phrases := []*Phrase{
		{Text: "银行", Pinyin: "yín xíng", Plain: "yin xing", Script: "zh-Hans"},
	}
	require.NoError(t, repo.BatchInsertPhrases(phrases, 0))

	// conflicting text updates the reading in place
	fixed := []*Phrase{
		{Text: "银行", Pinyin: "yín háng", Plain: "yin hang", Script: "zh-Hans"},
	}
	require.NoError(t, repo.BatchInsertPhrases(fixed, 0))

	count, _ := repo.CountPhrases()
	assert.Equal(t, 1, count)

	got, _, err := repo.ListPhrases(1, 0, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "yín háng", got[0].Pinyin)
	assert.Equal(t, "yin hang", got[0].Plain)
}

func TestBatchInsertSurnames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	surnames := []*Surname{
		{Text: "单", Pinyin: "shàn"},
		{Text: "欧阳", Pinyin: "ōu yáng", Compound: true},
	}
	require.NoError(t, repo.BatchInsertSurnames(surnames, 0))

	again := []*Surname{
		{Text: "单", Pinyin: "shàn"},
	}
	require.NoError(t, repo.BatchInsertSurnames(again, 0))

	count, _ := repo.CountSurnames()
	assert.Equal(t, 2, count)
}
