package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	apierr "github.com/palemoky/chinese-pinyin-api/internal/errors"
)

// CustomHandler manages user-defined readings in the live registry
type CustomHandler struct {
	reg *dict.Registry
}

// NewCustomHandler creates a new custom dictionary handler
func NewCustomHandler(reg *dict.Registry) *CustomHandler {
	return &CustomHandler{reg: reg}
}

// AddCustom installs user-defined readings. Custom entries outrank
// every built-in table, so they take effect on the next conversion.
// POST /dict/custom {"entries": {"银行": "yín xíng"}}
func (h *CustomHandler) AddCustom(c *gin.Context) {
	var req struct {
		Entries map[string]string `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAPIError(c, apierr.InvalidRequest("field 'entries' is required"))
		return
	}

	if err := h.reg.AddCustom(req.Entries); err != nil {
		respondAPIError(c, apierr.InvalidRequest(err.Error()))
		return
	}

	respondOK(c, gin.H{"installed": len(req.Entries)})
}

// ClearCustom removes every user-defined reading
// DELETE /dict/custom
func (h *CustomHandler) ClearCustom(c *gin.Context) {
	h.reg.ClearCustom()
	c.Status(http.StatusNoContent)
}
