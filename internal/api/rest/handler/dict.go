package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/chinese-pinyin-api/internal/config"
	"github.com/palemoky/chinese-pinyin-api/internal/database"
	apierr "github.com/palemoky/chinese-pinyin-api/internal/errors"
	"github.com/palemoky/chinese-pinyin-api/internal/search"
)

// DictHandler handles dictionary browsing and reverse lookup requests
type DictHandler struct {
	repo      *database.Repository
	search    *search.Engine
	searchCfg config.SearchConfig
}

// NewDictHandler creates a new dictionary handler
func NewDictHandler(repo *database.Repository, searchEngine *search.Engine, searchCfg config.SearchConfig) *DictHandler {
	return &DictHandler{
		repo:      repo,
		search:    searchEngine,
		searchCfg: searchCfg,
	}
}

// ListChars retrieves a paginated list of characters ordered by code point
// GET /dict/chars
func (h *DictHandler) ListChars(c *gin.Context) {
	pagination := ParsePagination(c)

	chars, total, err := h.repo.ListCharacters(pagination.PageSize, pagination.Offset())
	if err != nil {
		respondAPIError(c, apierr.Internal("Failed to fetch characters"))
		return
	}

	data := make([]map[string]any, len(chars))
	for i, ch := range chars {
		data[i] = formatCharacter(&ch)
	}

	c.JSON(http.StatusOK, NewPaginationResponse(data, pagination, int64(total)))
}

// GetChar returns one character with its readings
// GET /dict/chars/:char
func (h *DictHandler) GetChar(c *gin.Context) {
	ch, ok := parseChar(c, "char")
	if !ok {
		return
	}

	row, err := h.repo.GetCharacter(ch)
	if err != nil {
		respondAPIError(c, apierr.NotFound("Character"))
		return
	}

	respondOK(c, formatCharacter(row))
}

// ListPhrases retrieves a paginated list of phrases
// Supports ?script=zh-Hans or ?script=zh-Hant
func (h *DictHandler) ListPhrases(c *gin.Context) {
	pagination := ParsePagination(c)
	script := c.Query("script")

	phrases, total, err := h.repo.ListPhrases(pagination.PageSize, pagination.Offset(), script)
	if err != nil {
		respondAPIError(c, apierr.Internal("Failed to fetch phrases"))
		return
	}

	c.JSON(http.StatusOK, NewPaginationResponse(phrases, pagination, int64(total)))
}

// ListSurnames retrieves a paginated list of surnames
// GET /dict/surnames
func (h *DictHandler) ListSurnames(c *gin.Context) {
	pagination := ParsePagination(c)

	surnames, total, err := h.repo.ListSurnames(pagination.PageSize, pagination.Offset())
	if err != nil {
		respondAPIError(c, apierr.Internal("Failed to fetch surnames"))
		return
	}

	c.JSON(http.StatusOK, NewPaginationResponse(surnames, pagination, int64(total)))
}

// RandomChar returns a random character
// Supports ?heteronym=true to only pick characters with several readings
func (h *DictHandler) RandomChar(c *gin.Context) {
	heteronymOnly := c.Query("heteronym") == "true"

	row, err := h.repo.GetRandomCharacter(heteronymOnly)
	if err != nil {
		respondAPIError(c, apierr.NotFound("Character"))
		return
	}

	respondOK(c, formatCharacter(row))
}

// Search performs a reverse lookup: a pinyin query finds the entries
// carrying that reading, a Chinese query finds the entries containing
// the text
// GET /dict/search?q=hang&type=all
func (h *DictHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondAPIError(c, apierr.InvalidRequest("query parameter 'q' is required"))
		return
	}

	searchType := search.SearchType(c.DefaultQuery("type", "all"))
	pagination := ParsePaginationLimited(c, h.searchCfg.DefaultPageSize, h.searchCfg.MaxResults)

	result, err := h.search.Search(search.SearchParams{
		Query:      query,
		SearchType: searchType,
		Script:     c.Query("script"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		respondAPIError(c, apierr.Internal("search failed"))
		return
	}

	chars := make([]map[string]any, len(result.Characters))
	for i, ch := range result.Characters {
		chars[i] = formatCharacter(&ch)
	}

	c.JSON(http.StatusOK, gin.H{
		"characters": chars,
		"phrases":    result.Phrases,
		"surnames":   result.Surnames,
		"pagination": gin.H{
			"page":      pagination.Page,
			"page_size": pagination.PageSize,
			"total":     result.TotalCount,
			"has_more":  result.HasMore,
		},
	})
}
