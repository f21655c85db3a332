package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/chinese-pinyin-api/internal/config"
	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/search"
	"github.com/palemoky/chinese-pinyin-api/internal/testutil"
)

// setupDictRouter creates a dictionary handler over a seeded database
func setupDictRouter(t *testing.T) (*gin.Engine, *database.Repository) {
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedTestDict(t, repo)

	router := testutil.SetupTestGin()
	h := NewDictHandler(repo, search.NewEngine(db), config.SearchConfig{
		MaxResults:      1000,
		DefaultPageSize: 20,
	})
	router.GET("/dict/chars", h.ListChars)
	router.GET("/dict/chars/:char", h.GetChar)
	router.GET("/dict/phrases", h.ListPhrases)
	router.GET("/dict/surnames", h.ListSurnames)
	router.GET("/dict/random", h.RandomChar)
	router.GET("/dict/search", h.Search)

	return router, repo
}

func TestListChars(t *testing.T) {
	router, _ := setupDictRouter(t)

	t.Run("default pagination", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].([]any)
		assert.Len(t, data, 8)

		pagination := resp["pagination"].(map[string]any)
		assert.Equal(t, float64(8), pagination["total"])
		assert.Equal(t, float64(1), pagination["total_pages"])
	})

	t.Run("custom page size", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars?page=2&page_size=3")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].([]any)
		assert.Len(t, data, 3)

		pagination := resp["pagination"].(map[string]any)
		assert.Equal(t, float64(2), pagination["page"])
		assert.Equal(t, float64(3), pagination["total_pages"])
	})

	t.Run("ordered by code point", func(t *testing.T) {
		_, resp := getJSON(t, router, "/dict/chars?page_size=1")
		data := resp["data"].([]any)
		first := data[0].(map[string]any)
		// 中 U+4E2D is the lowest seeded code point
		assert.Equal(t, "中", first["char"])
		assert.Equal(t, "U+4E2D", first["unicode"])
	})
}

func TestGetChar(t *testing.T) {
	router, _ := setupDictRouter(t)

	t.Run("by character", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars/"+"行")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].(map[string]any)
		assert.Equal(t, "行", data["char"])
		assert.Equal(t, []any{"xíng", "háng"}, data["readings"])
		assert.Equal(t, []any{"xing", "hang"}, data["plain"])
		assert.Equal(t, float64(80), data["weight"])
	})

	t.Run("by code point", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars/20013") // 中
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].(map[string]any)
		assert.Equal(t, "中", data["char"])
	})

	t.Run("not found", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars/"+"魑")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, resp["error"], "not found")
		assert.Equal(t, "NOT_FOUND", resp["code"])
	})

	t.Run("invalid parameter", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/chars/xyz")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, resp["error"], "Invalid")
	})
}

func TestListPhrases(t *testing.T) {
	router, _ := setupDictRouter(t)

	t.Run("all scripts", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/phrases")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].([]any)
		assert.Len(t, data, 3)
	})

	t.Run("traditional only", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/phrases?script=zh-Hant")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].([]any)
		require.Len(t, data, 1)
		phrase := data[0].(map[string]any)
		assert.Equal(t, "銀行", phrase["text"])
		assert.Equal(t, "yín háng", phrase["pinyin"])
	})
}

func TestListSurnames(t *testing.T) {
	router, _ := setupDictRouter(t)

	code, resp := getJSON(t, router, "/dict/surnames")
	assert.Equal(t, http.StatusOK, code)

	data := resp["data"].([]any)
	require.Len(t, data, 2)

	pagination := resp["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["total"])
}

func TestRandomChar(t *testing.T) {
	router, _ := setupDictRouter(t)

	t.Run("any character", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/random")
		assert.Equal(t, http.StatusOK, code)

		data := resp["data"].(map[string]any)
		assert.NotEmpty(t, data["char"])
	})

	t.Run("heteronyms only", func(t *testing.T) {
		heteronyms := map[string]bool{"中": true, "行": true, "好": true, "单": true}
		for i := 0; i < 10; i++ {
			code, resp := getJSON(t, router, "/dict/random?heteronym=true")
			require.Equal(t, http.StatusOK, code)

			data := resp["data"].(map[string]any)
			assert.True(t, heteronyms[data["char"].(string)],
				"unexpected single-reading char %v", data["char"])
		}
	})
}

func TestDictSearch(t *testing.T) {
	router, _ := setupDictRouter(t)

	t.Run("pinyin query", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/search?q=hang")
		assert.Equal(t, http.StatusOK, code)

		chars := resp["characters"].([]any)
		require.Len(t, chars, 3)
		first := chars[0].(map[string]any)
		assert.Equal(t, "行", first["char"])

		phrases := resp["phrases"].([]any)
		assert.Len(t, phrases, 2)

		pagination := resp["pagination"].(map[string]any)
		assert.Equal(t, float64(5), pagination["total"])
	})

	t.Run("chars only", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/search?q=hang&type=chars")
		assert.Equal(t, http.StatusOK, code)

		assert.Len(t, resp["characters"].([]any), 3)
		assert.Empty(t, resp["phrases"])
	})

	t.Run("script filter", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/search?q=yin+hang&type=phrases&script=zh-Hans")
		assert.Equal(t, http.StatusOK, code)

		phrases := resp["phrases"].([]any)
		require.Len(t, phrases, 1)
		assert.Equal(t, "银行", phrases[0].(map[string]any)["text"])
	})

	t.Run("missing query", func(t *testing.T) {
		code, resp := getJSON(t, router, "/dict/search")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, resp["error"], "'q' is required")
	})
}
