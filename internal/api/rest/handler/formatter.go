package handler

import (
	"encoding/json"
	"fmt"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
)

// formatCharacter formats a character row for API response, decoding
// the JSON reading columns and adding the U+ notation.
func formatCharacter(ch *database.Character) map[string]any {
	readings, err := ch.ReadingList()
	if err != nil {
		readings = nil
	}

	var plain []string
	if err := json.Unmarshal(ch.Plain, &plain); err != nil {
		plain = nil
	}

	return map[string]any{
		"codepoint": ch.Codepoint,
		"unicode":   fmt.Sprintf("U+%04X", ch.Codepoint),
		"char":      ch.Char,
		"readings":  readings,
		"plain":     plain,
		"weight":    ch.Weight,
	}
}
