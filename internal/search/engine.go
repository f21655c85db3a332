package search

import (
	"strings"
	"unicode"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
)

// Engine handles dictionary lookups in both directions: Chinese text to
// entries and pinyin back to the characters, phrases and surnames that
// carry the reading
type Engine struct {
	db *database.DB
}

// NewEngine creates a new search engine
func NewEngine(db *database.DB) *Engine {
	return &Engine{db: db}
}

// SearchType defines the type of search
type SearchType string

const (
	SearchTypeAll      SearchType = "all"
	SearchTypeChars    SearchType = "chars"
	SearchTypePhrases  SearchType = "phrases"
	SearchTypeSurnames SearchType = "surnames"
)

// SearchParams contains search parameters
type SearchParams struct {
	Query      string
	SearchType SearchType
	Script     string // optional zh-Hans / zh-Hant filter, phrases only
	Page       int
	PageSize   int
}

// SearchResult contains search results. With SearchTypeAll each kind is
// paged independently and TotalCount is the sum over all kinds.
type SearchResult struct {
	Characters []database.Character
	Phrases    []database.Phrase
	Surnames   []database.Surname
	TotalCount int
	HasMore    bool
}

// Search performs a search based on the given parameters. Pinyin
// queries are detected automatically: "háng" and "hang" both find 行
// and 银行, Chinese text finds the entries containing it.
func (e *Engine) Search(params SearchParams) (*SearchResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}

	offset := (params.Page - 1) * params.PageSize
	query := strings.TrimSpace(params.Query)
	isPinyin := isPinyinQuery(query)

	result := &SearchResult{}

	switch params.SearchType {
	case SearchTypeChars:
		chars, count := e.searchChars(query, isPinyin, params.PageSize, offset)
		result.Characters = chars
		result.TotalCount = int(count)
		result.HasMore = offset+len(chars) < int(count)

	case SearchTypePhrases:
		phrases, count := e.searchPhrases(query, isPinyin, params.Script, params.PageSize, offset)
		result.Phrases = phrases
		result.TotalCount = int(count)
		result.HasMore = offset+len(phrases) < int(count)

	case SearchTypeSurnames:
		surnames, count := e.searchSurnames(query, isPinyin, params.PageSize, offset)
		result.Surnames = surnames
		result.TotalCount = int(count)
		result.HasMore = offset+len(surnames) < int(count)

	default: // SearchTypeAll
		chars, charCount := e.searchChars(query, isPinyin, params.PageSize, offset)
		phrases, phraseCount := e.searchPhrases(query, isPinyin, params.Script, params.PageSize, offset)
		surnames, surnameCount := e.searchSurnames(query, isPinyin, params.PageSize, offset)

		result.Characters = chars
		result.Phrases = phrases
		result.Surnames = surnames
		result.TotalCount = int(charCount + phraseCount + surnameCount)
		result.HasMore = offset+len(chars) < int(charCount) ||
			offset+len(phrases) < int(phraseCount) ||
			offset+len(surnames) < int(surnameCount)
	}

	return result, nil
}

// searchChars dispatches a character search on the query type
func (e *Engine) searchChars(query string, isPinyin bool, limit, offset int) ([]database.Character, int64) {
	if isPinyin {
		return e.searchCharsByReading(query, limit, offset)
	}
	return e.searchCharsByText(query, limit, offset)
}

// searchCharsByReading matches one exact syllable against every
// character's readings. A toned query goes against the readings column,
// a toneless one against plain, so both notations work.
func (e *Engine) searchCharsByReading(query string, limit, offset int) ([]database.Character, int64) {
	column := "plain"
	syllable := normalizeSyllable(query)
	if pinyin.SyllableTone(query) > 0 {
		column = "readings"
		syllable = strings.ToLower(query)
	}
	from := "characters, json_each(characters." + column + ") AS reading"

	var count int64
	e.db.Table(from).
		Where("reading.value = ?", syllable).
		Distinct("characters.codepoint").
		Count(&count)

	var chars []database.Character
	e.db.Table(from).
		Select("characters.*").
		Where("reading.value = ?", syllable).
		Group("characters.codepoint").
		Order("characters.weight DESC, characters.codepoint").
		Limit(limit).Offset(offset).
		Find(&chars)

	return chars, count
}

// searchCharsByText looks up every distinct rune of a Chinese query
func (e *Engine) searchCharsByText(query string, limit, offset int) ([]database.Character, int64) {
	runes := distinctChars(query)
	if len(runes) == 0 {
		return nil, 0
	}

	var chars []database.Character
	var count int64

	db := e.db.Model(&database.Character{}).Where("char IN ?", runes)
	db.Count(&count)
	db.Order("weight DESC, codepoint").Limit(limit).Offset(offset).Find(&chars)

	return chars, count
}

// searchPhrases searches phrases by text or reading substring
func (e *Engine) searchPhrases(query string, isPinyin bool, script string, limit, offset int) ([]database.Phrase, int64) {
	var phrases []database.Phrase
	var count int64

	db := e.db.Model(&database.Phrase{})
	if script != "" {
		db = db.Where("script = ?", script)
	}
	db = db.Where(readingCondition(query, isPinyin))

	db.Count(&count)
	db.Order("text").Limit(limit).Offset(offset).Find(&phrases)

	return phrases, count
}

// searchSurnames searches surnames by text or reading substring
func (e *Engine) searchSurnames(query string, isPinyin bool, limit, offset int) ([]database.Surname, int64) {
	var surnames []database.Surname
	var count int64

	db := e.db.Model(&database.Surname{}).Where(readingCondition(query, isPinyin))
	db.Count(&count)
	db.Order("text").Limit(limit).Offset(offset).Find(&surnames)

	return surnames, count
}

// readingCondition builds the LIKE condition shared by phrase and
// surname search: toned pinyin against the pinyin column, toneless
// against plain, Chinese text against text
func readingCondition(query string, isPinyin bool) (string, string) {
	if !isPinyin {
		return "text LIKE ?", "%" + query + "%"
	}
	if pinyin.SyllableTone(query) > 0 {
		return "pinyin LIKE ?", "%" + strings.ToLower(query) + "%"
	}
	return "plain LIKE ?", "%" + normalizeSyllable(query) + "%"
}

// normalizeSyllable lowers a query and strips tone marks the same way
// plain readings are built, including the ü to v spelling
func normalizeSyllable(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return pinyin.SubstituteV(pinyin.StripTones(s))
}

// distinctChars returns the unique runes of a query in first-seen order
func distinctChars(s string) []string {
	seen := make(map[rune]bool)
	var out []string
	for _, r := range s {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}

// isPinyinQuery checks if a query string is pinyin rather than Chinese
// text. Tone marks are stripped first so a short toned query like "lǜ"
// still counts as letters.
func isPinyinQuery(s string) bool {
	if s == "" {
		return false
	}

	plain := pinyin.SubstituteV(pinyin.StripTones(strings.ToLower(s)))
	letterCount := 0
	totalCount := 0

	for _, r := range plain {
		if unicode.IsSpace(r) {
			continue
		}
		totalCount++
		if r >= 'a' && r <= 'z' {
			letterCount++
		}
	}

	// If more than 50% are ASCII letters, consider it pinyin
	return totalCount > 0 && float64(letterCount)/float64(totalCount) > 0.5
}
