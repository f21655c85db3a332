package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/testutil"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Create in-memory database
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := database.NewDBFromGorm(gormDB)

	router := gin.New()
	router.GET("/health", HealthHandler(db))

	tests := []struct {
		name           string
		expectedStatus int
		checkResponse  func(*testing.T, map[string]any)
	}{
		{
			name:           "healthy database",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "healthy", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkResponse != nil {
				var response map[string]any
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestStatsHandler(t *testing.T) {
	_, repo := testutil.SetupTestDB(t)
	testutil.SeedTestDict(t, repo)

	reg := dict.NewRegistry()

	router := testutil.SetupTestGin()
	router.GET("/stats", StatsHandler(repo, reg))

	tests := []struct {
		name           string
		expectedStatus int
		checkResponse  func(*testing.T, map[string]any)
	}{
		{
			name:           "get statistics",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]any) {
				dbStats, ok := resp["database"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, float64(8), dbStats["total_characters"])
				assert.Equal(t, float64(3), dbStats["total_phrases"])
				assert.Equal(t, float64(2), dbStats["total_surnames"])
				assert.Equal(t, float64(4), dbStats["heteronyms"])

				regStats, ok := resp["registry"].(map[string]any)
				require.True(t, ok)
				assert.Greater(t, regStats["chars"], float64(0))
				assert.Equal(t, float64(0), regStats["custom"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkResponse != nil {
				var response map[string]any
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				tt.checkResponse(t, response)
			}
		})
	}
}
