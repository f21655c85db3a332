package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/chinese-pinyin-api/internal/api/rest"
	"github.com/palemoky/chinese-pinyin-api/internal/config"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
	"github.com/palemoky/chinese-pinyin-api/internal/search"
	"github.com/palemoky/chinese-pinyin-api/internal/testutil"
)

// setupTestEnv builds the full REST stack plus direct handles on the
// registry and search engine, so tests can compare the HTTP surface
// against library calls over the same data
func setupTestEnv(t *testing.T) (*gin.Engine, *dict.Registry, *search.Engine) {
	db, repo := testutil.SetupTestDB(t)
	testutil.SeedTestDict(t, repo)

	// Layer the database rows over the embedded tables the way the
	// server does at startup
	reg := dict.NewRegistry()
	snap, err := repo.LoadSnapshot()
	require.NoError(t, err)
	reg.Merge(snap)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Search: config.SearchConfig{MaxResults: 1000, DefaultPageSize: 20},
	}
	router := rest.SetupRouter(cfg, db, repo, reg)

	return router, reg, search.NewEngine(db)
}

// TestConvertConsistency verifies the REST endpoint and a direct
// converter call produce identical output for the same options
func TestConvertConsistency(t *testing.T) {
	router, reg, _ := setupTestEnv(t)
	conv := pinyin.New(reg)

	tests := []struct {
		name string
		text string
		opts pinyin.Options
	}{
		{"default", "你好", pinyin.Options{}},
		{"phrase reading", "银行", pinyin.Options{}},
		{"surname mode", "单", pinyin.Options{Mode: pinyin.ModeSurname}},
		{"numeric tones", "汉语拼音", pinyin.Options{ToneType: pinyin.ToneNum}},
		{"initial pattern", "你好", pinyin.Options{Pattern: pinyin.PatternInitial}},
		{"umlaut as v", "绿", pinyin.Options{ToneType: pinyin.ToneNone, V: true}},
		{"mixed text", "hello你好", pinyin.Options{}},
		{"removed non-chinese", "hello你好", pinyin.Options{NonZh: pinyin.NonZhRemoved}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Build the query from the same options the direct call
			// uses, so both paths are configured identically
			query := "/api/v1/convert?text=" + tt.text +
				"&pattern=" + tt.opts.Pattern.String() +
				"&tone_type=" + tt.opts.ToneType.String() +
				"&mode=" + tt.opts.Mode.String() +
				"&non_zh=" + tt.opts.NonZh.String()
			if tt.opts.V {
				query += "&v=true"
			}

			req := httptest.NewRequest(http.MethodGet, query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp struct {
				Result string `json:"result"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, conv.Convert(tt.text, tt.opts), resp.Result,
				"REST and direct conversion should agree")
		})
	}
}

// TestHeteronymsConsistency verifies the REST endpoint returns the
// registry's readings unchanged, in the same order
func TestHeteronymsConsistency(t *testing.T) {
	router, reg, _ := setupTestEnv(t)

	for _, char := range []string{"单", "行", "中"} {
		t.Run(char, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/heteronyms/"+char, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Data struct {
					Readings []string `json:"readings"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, reg.Heteronyms([]rune(char)[0]), resp.Data.Readings)
		})
	}
}

// TestSearchConsistency verifies REST search and the engine return the
// same totals and the same rows in the same order
func TestSearchConsistency(t *testing.T) {
	router, _, engine := setupTestEnv(t)

	tests := []struct {
		name       string
		query      string
		searchType string
	}{
		{"toneless pinyin", "hang", "chars"},
		{"toned pinyin", "háng", "chars"},
		{"phrase reading", "yin hang", "phrases"},
		{"chinese text", "银行", "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/dict/search?q="+url.QueryEscape(tt.query)+"&type="+tt.searchType, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var restResult struct {
				Characters []struct {
					Char string `json:"char"`
				} `json:"characters"`
				Phrases []struct {
					Text string `json:"text"`
				} `json:"phrases"`
				Pagination struct {
					Total   int  `json:"total"`
					HasMore bool `json:"has_more"`
				} `json:"pagination"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restResult))

			direct, err := engine.Search(search.SearchParams{
				Query:      tt.query,
				SearchType: search.SearchType(tt.searchType),
				Page:       1,
				PageSize:   20,
			})
			require.NoError(t, err)

			assert.Equal(t, direct.TotalCount, restResult.Pagination.Total,
				"total should match between REST and direct search")
			assert.Equal(t, direct.HasMore, restResult.Pagination.HasMore)

			require.Equal(t, len(direct.Characters), len(restResult.Characters))
			for i := range direct.Characters {
				assert.Equal(t, direct.Characters[i].Char, restResult.Characters[i].Char,
					"character should match at position %d", i)
			}

			require.Equal(t, len(direct.Phrases), len(restResult.Phrases))
			for i := range direct.Phrases {
				assert.Equal(t, direct.Phrases[i].Text, restResult.Phrases[i].Text,
					"phrase should match at position %d", i)
			}
		})
	}
}

// TestCustomConsistency verifies custom entries installed over REST
// take effect for both access paths
func TestCustomConsistency(t *testing.T) {
	router, reg, _ := setupTestEnv(t)
	conv := pinyin.New(reg)

	body := `{"entries": {"银行": "yín xíng"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dict/custom",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The REST handler and the direct converter share the registry
	assert.Equal(t, "yín xíng", conv.Convert("银行", pinyin.Options{}))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/convert?text=银行", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Result string `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "yín xíng", resp.Result)
}
