package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	apierr "github.com/palemoky/chinese-pinyin-api/internal/errors"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
	"github.com/palemoky/chinese-pinyin-api/internal/variant"
)

// maxBatchTexts caps one batch conversion request
const maxBatchTexts = 100

// ConvertHandler handles conversion requests
type ConvertHandler struct {
	conv *pinyin.Converter
	// tradConv resolves traditional input through its simplified twin
	tradConv *pinyin.Converter
	reg      *dict.Registry
}

// NewConvertHandler creates a new conversion handler backed by reg
func NewConvertHandler(reg *dict.Registry) *ConvertHandler {
	return &ConvertHandler{
		conv:     pinyin.New(reg),
		tradConv: pinyin.New(variant.Simplifying(reg)),
		reg:      reg,
	}
}

// converter picks the conversion path for the requested input script
func (h *ConvertHandler) converter(script string) *pinyin.Converter {
	if variant.ParseLang(script) == variant.LangHant {
		return h.tradConv
	}
	return h.conv
}

// ConvertRequest carries one text and its conversion options. The
// zero value of every option is the default conversion: full pinyin
// with tone symbols, normal mode, spaced non-Chinese handling.
type ConvertRequest struct {
	Text     string `json:"text" binding:"required"`
	Pattern  string `json:"pattern"`
	ToneType string `json:"tone_type"`
	Mode     string `json:"mode"`
	NonZh    string `json:"non_zh"`
	Multiple bool   `json:"multiple"`
	V        bool   `json:"v"`
	Type     string `json:"type"`    // string (default), array or all
	Variant  string `json:"variant"` // zh-Hant resolves through the simplified twin
}

// parseOptions validates the wire options of a request
func parseOptions(req ConvertRequest) (pinyin.Options, string, error) {
	var opts pinyin.Options
	var err error

	if opts.Pattern, err = pinyin.ParsePattern(req.Pattern); err != nil {
		return opts, "", err
	}
	if opts.ToneType, err = pinyin.ParseToneType(req.ToneType); err != nil {
		return opts, "", err
	}
	if opts.Mode, err = pinyin.ParseMode(req.Mode); err != nil {
		return opts, "", err
	}
	if opts.NonZh, err = pinyin.ParseNonZh(req.NonZh); err != nil {
		return opts, "", err
	}
	opts.Multiple = req.Multiple
	opts.V = req.V

	switch req.Type {
	case "", "string", "array", "all":
		return opts, req.Type, nil
	}
	return opts, "", fmt.Errorf("unknown type: %q", req.Type)
}

// result renders one conversion in the requested output shape
func (h *ConvertHandler) result(conv *pinyin.Converter, text string, opts pinyin.Options, outType string) any {
	switch outType {
	case "array":
		return conv.ConvertSlice(text, opts)
	case "all":
		return conv.ConvertAll(text, opts)
	default:
		return conv.Convert(text, opts)
	}
}

// requestFromQuery builds a ConvertRequest from URL query parameters
func requestFromQuery(c *gin.Context) ConvertRequest {
	return ConvertRequest{
		Text:     c.Query("text"),
		Pattern:  c.Query("pattern"),
		ToneType: c.Query("tone_type"),
		Mode:     c.Query("mode"),
		NonZh:    c.Query("non_zh"),
		Multiple: c.Query("multiple") == "true",
		V:        c.Query("v") == "true",
		Type:     c.Query("type"),
		Variant:  c.Query("variant"),
	}
}

// Convert converts a text passed in query parameters
// GET /convert?text=汉语拼音&pattern=pinyin&tone_type=symbol&type=string
func (h *ConvertHandler) Convert(c *gin.Context) {
	req := requestFromQuery(c)
	if req.Text == "" {
		respondAPIError(c, apierr.InvalidRequest("query parameter 'text' is required"))
		return
	}

	h.respond(c, req)
}

// ConvertBody converts a text passed as a JSON body, for texts too
// long or too awkward to carry in a URL
// POST /convert
func (h *ConvertHandler) ConvertBody(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAPIError(c, apierr.InvalidRequest("field 'text' is required"))
		return
	}

	h.respond(c, req)
}

func (h *ConvertHandler) respond(c *gin.Context, req ConvertRequest) {
	opts, outType, err := parseOptions(req)
	if err != nil {
		respondAPIError(c, apierr.InvalidOption(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":   req.Text,
		"result": h.result(h.converter(req.Variant), req.Text, opts, outType),
	})
}

// BatchConvertRequest carries several texts sharing one set of options
type BatchConvertRequest struct {
	Texts    []string `json:"texts" binding:"required"`
	Pattern  string   `json:"pattern"`
	ToneType string   `json:"tone_type"`
	Mode     string   `json:"mode"`
	NonZh    string   `json:"non_zh"`
	Multiple bool     `json:"multiple"`
	V        bool     `json:"v"`
	Type     string   `json:"type"`
	Variant  string   `json:"variant"`
}

// ConvertBatch converts several texts in one request
// POST /convert/batch
func (h *ConvertHandler) ConvertBatch(c *gin.Context) {
	var req BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAPIError(c, apierr.InvalidRequest("field 'texts' is required"))
		return
	}
	if len(req.Texts) == 0 {
		respondAPIError(c, apierr.InvalidRequest("field 'texts' must not be empty"))
		return
	}
	if len(req.Texts) > maxBatchTexts {
		respondAPIError(c, apierr.InvalidRequest(fmt.Sprintf("at most %d texts per batch", maxBatchTexts)))
		return
	}

	opts, outType, err := parseOptions(ConvertRequest{
		Text:     "-",
		Pattern:  req.Pattern,
		ToneType: req.ToneType,
		Mode:     req.Mode,
		NonZh:    req.NonZh,
		Multiple: req.Multiple,
		V:        req.V,
		Type:     req.Type,
	})
	if err != nil {
		respondAPIError(c, apierr.InvalidOption(err))
		return
	}

	conv := h.converter(req.Variant)
	results := make([]gin.H, len(req.Texts))
	for i, text := range req.Texts {
		results[i] = gin.H{
			"text":   text,
			"result": h.result(conv, text, opts, outType),
		}
	}

	respondOK(c, results)
}

// Heteronyms lists every known reading of one character
// GET /heteronyms/:char
func (h *ConvertHandler) Heteronyms(c *gin.Context) {
	ch, ok := parseChar(c, "char")
	if !ok {
		return
	}

	readings := h.reg.Heteronyms(ch)
	if len(readings) == 0 {
		respondAPIError(c, apierr.NotFound("Character"))
		return
	}

	respondOK(c, gin.H{
		"char":     string(ch),
		"readings": readings,
	})
}
