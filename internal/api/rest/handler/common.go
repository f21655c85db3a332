package handler

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apierr "github.com/palemoky/chinese-pinyin-api/internal/errors"
)

// parseChar extracts a single character from a URL parameter. Both the
// character itself (/dict/chars/中) and its decimal code point
// (/dict/chars/20013) are accepted.
// Returns the rune and true if successful, or sends an error response and returns false.
func parseChar(c *gin.Context, param string) (rune, bool) {
	raw := c.Param(param)

	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		return r, true
	}

	if cp, err := strconv.Atoi(raw); err == nil && cp > 0 && cp <= utf8.MaxRune && utf8.ValidRune(rune(cp)) {
		return rune(cp), true
	}

	respondAPIError(c, apierr.InvalidRequest("Invalid character"))
	return 0, false
}

// respondAPIError sends a structured error response. The message stays
// under the "error" key; "code" carries the machine-readable kind.
func respondAPIError(c *gin.Context, err *apierr.APIError) {
	c.JSON(err.HTTPStatus, gin.H{"error": err.Message, "code": err.Code})
}

// respondOK sends a JSON success response with the given data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
