package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/chinese-pinyin-api/internal/testutil"
)

// setupTestEngine creates a test search engine with sample dictionary data
func setupTestEngine(t *testing.T) *Engine {
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedTestDict(t, repo)
	return NewEngine(db)
}

func TestSearch(t *testing.T) {
	engine := setupTestEngine(t)

	t.Run("search all with Chinese query", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "银行",
			SearchType: SearchTypeAll,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		require.Len(t, result.Phrases, 1)
		assert.Equal(t, "银行", result.Phrases[0].Text)
		require.Len(t, result.Characters, 2)
		assert.Equal(t, "行", result.Characters[0].Char, "行 outweighs 银")
		assert.False(t, result.HasMore)
	})

	t.Run("search all with toneless pinyin", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "hang",
			SearchType: SearchTypeAll,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		require.Len(t, result.Characters, 3)
		assert.Equal(t, "行", result.Characters[0].Char)
		assert.Equal(t, "航", result.Characters[1].Char)
		assert.Equal(t, "杭", result.Characters[2].Char)
		// "hang" is a substring of both scripts' plain reading
		assert.Len(t, result.Phrases, 2)
	})

	t.Run("search chars with toned pinyin", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "háng",
			SearchType: SearchTypeChars,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
		require.Len(t, result.Characters, 3)
		assert.Equal(t, "行", result.Characters[0].Char)
	})

	t.Run("tone distinguishes readings", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "hàng",
			SearchType: SearchTypeChars,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalCount, "no seeded character reads hàng")
	})

	t.Run("search phrases with script filter", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "yin hang",
			SearchType: SearchTypePhrases,
			Script:     "zh-Hant",
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
		require.Len(t, result.Phrases, 1)
		assert.Equal(t, "銀行", result.Phrases[0].Text)
	})

	t.Run("search surnames", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "ou yang",
			SearchType: SearchTypeSurnames,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		require.Len(t, result.Surnames, 1)
		assert.Equal(t, "欧阳", result.Surnames[0].Text)
		assert.True(t, result.Surnames[0].Compound)
	})

	t.Run("pagination", func(t *testing.T) {
		first, err := engine.Search(SearchParams{
			Query:      "hang",
			SearchType: SearchTypeChars,
			Page:       1,
			PageSize:   2,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, first.TotalCount)
		assert.Len(t, first.Characters, 2)
		assert.True(t, first.HasMore)

		second, err := engine.Search(SearchParams{
			Query:      "hang",
			SearchType: SearchTypeChars,
			Page:       2,
			PageSize:   2,
		})

		require.NoError(t, err)
		require.Len(t, second.Characters, 1)
		assert.Equal(t, "杭", second.Characters[0].Char)
		assert.False(t, second.HasMore)
	})

	t.Run("default page and page size", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "zhong",
			SearchType: SearchTypeChars,
			Page:       0,
			PageSize:   0,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
	})

	t.Run("no results", func(t *testing.T) {
		result, err := engine.Search(SearchParams{
			Query:      "xyz",
			SearchType: SearchTypeAll,
			Page:       1,
			PageSize:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalCount)
		assert.Len(t, result.Characters, 0)
		assert.False(t, result.HasMore)
	})
}

func TestSearchCharsByReading(t *testing.T) {
	engine := setupTestEngine(t)

	t.Run("toneless matches plain column", func(t *testing.T) {
		chars, count := engine.searchCharsByReading("hang", 10, 0)
		assert.Equal(t, int64(3), count)
		require.Len(t, chars, 3)
		assert.Equal(t, "行", chars[0].Char, "ordered by weight")
	})

	t.Run("heteronym found under every reading", func(t *testing.T) {
		_, byDan := engine.searchCharsByReading("dan", 10, 0)
		_, byShan := engine.searchCharsByReading("shàn", 10, 0)
		assert.Equal(t, int64(1), byDan)
		assert.Equal(t, int64(1), byShan)
	})

	t.Run("offset pages through", func(t *testing.T) {
		chars, count := engine.searchCharsByReading("hang", 2, 2)
		assert.Equal(t, int64(3), count)
		require.Len(t, chars, 1)
		assert.Equal(t, "杭", chars[0].Char)
	})

	t.Run("no match", func(t *testing.T) {
		_, count := engine.searchCharsByReading("blarg", 10, 0)
		assert.Equal(t, int64(0), count)
	})
}

func TestSearchCharsByText(t *testing.T) {
	engine := setupTestEngine(t)

	t.Run("each rune looked up", func(t *testing.T) {
		chars, count := engine.searchCharsByText("银行", 10, 0)
		assert.Equal(t, int64(2), count)
		assert.Len(t, chars, 2)
	})

	t.Run("duplicate runes collapse", func(t *testing.T) {
		_, count := engine.searchCharsByText("行行行", 10, 0)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown rune", func(t *testing.T) {
		_, count := engine.searchCharsByText("魑", 10, 0)
		assert.Equal(t, int64(0), count)
	})

	t.Run("empty query", func(t *testing.T) {
		chars, count := engine.searchCharsByText("", 10, 0)
		assert.Nil(t, chars)
		assert.Equal(t, int64(0), count)
	})
}

func TestSearchPhrases(t *testing.T) {
	engine := setupTestEngine(t)

	t.Run("by Chinese text", func(t *testing.T) {
		phrases, count := engine.searchPhrases("银", false, "", 10, 0)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, "银行", phrases[0].Text, "simplified 银 does not match 銀行")
	})

	t.Run("by toned reading", func(t *testing.T) {
		_, count := engine.searchPhrases("yín", true, "", 10, 0)
		assert.Equal(t, int64(2), count)
	})

	t.Run("by plain reading", func(t *testing.T) {
		_, count := engine.searchPhrases("zhong guo", true, "", 10, 0)
		assert.Equal(t, int64(1), count)
	})
}

func TestSearchSurnames(t *testing.T) {
	engine := setupTestEngine(t)

	t.Run("by text", func(t *testing.T) {
		surnames, count := engine.searchSurnames("单", false, 10, 0)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, "shàn", surnames[0].Pinyin)
	})

	t.Run("by reading", func(t *testing.T) {
		_, count := engine.searchSurnames("shan", true, 10, 0)
		assert.Equal(t, int64(1), count)
	})
}

func TestIsPinyinQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"hang", true},
		{"jing ye si", true},
		{"háng", true},
		{"lǜ", true},
		{"UPPERCASE", true},
		{"银行", false},
		{"中", false},
		{"", false},
		{"123", false},
		{"a1", false},
		{"ab1", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, isPinyinQuery(tt.query))
		})
	}
}

func TestDistinctChars(t *testing.T) {
	assert.Equal(t, []string{"银", "行"}, distinctChars("银行"))
	assert.Equal(t, []string{"行"}, distinctChars("行 行"))
	assert.Nil(t, distinctChars("  "))
}
