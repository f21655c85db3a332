package database

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Character is one dictionary character row. Readings and Plain are
// JSON arrays of syllables, primary reading first; Plain mirrors
// Readings with tone marks stripped and feeds reverse lookup.
type Character struct {
	Codepoint int64          `gorm:"primaryKey"         json:"codepoint"` // Unicode code point
	Char      string         `gorm:"size:8;not null"    json:"char"`
	Readings  datatypes.JSON `gorm:"type:json;not null" json:"readings"`
	Plain     datatypes.JSON `gorm:"type:json;not null" json:"plain"`
	Weight    int            `gorm:"not null;default:0" json:"weight"` // corpus frequency rank, higher is more common
	CreatedAt time.Time      `gorm:"autoCreateTime"     json:"created_at"`
}

// TableName specifies the table name for Character
func (Character) TableName() string {
	return "characters"
}

// ReadingList decodes the Readings column.
func (c *Character) ReadingList() ([]string, error) {
	var readings []string
	if err := json.Unmarshal(c.Readings, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// Phrase is a multi-character entry that pins down heteronym readings.
// Pinyin holds space-joined toned syllables, one per character; Plain is
// the same reading with tone marks stripped for toneless search.
type Phrase struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"not null;uniqueIndex"     json:"text"`
	Pinyin    string    `gorm:"not null"                 json:"pinyin"`
	Plain     string    `gorm:"not null;index"           json:"plain"`
	Script    string    `gorm:"size:16;not null;index"   json:"script"` // zh-Hans or zh-Hant
	CreatedAt time.Time `gorm:"autoCreateTime"           json:"created_at"`
}

// TableName specifies the table name for Phrase
func (Phrase) TableName() string {
	return "phrases"
}

// Surname is a family-name entry consulted in surname mode.
type Surname struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"not null;uniqueIndex"     json:"text"`
	Pinyin    string    `gorm:"not null"                 json:"pinyin"`
	Plain     string    `gorm:"not null;index"           json:"plain"`
	Compound  bool      `gorm:"not null;default:false"   json:"compound"`
	CreatedAt time.Time `gorm:"autoCreateTime"           json:"created_at"`
}

// TableName specifies the table name for Surname
func (Surname) TableName() string {
	return "surnames"
}

// Metadata stores build information as key/value pairs
type Metadata struct {
	Key       string    `gorm:"primaryKey"     json:"key"`
	Value     string    `gorm:"not null"       json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Metadata
func (Metadata) TableName() string {
	return "metadata"
}

// ScriptStats counts phrases per script variant
type ScriptStats struct {
	Script      string `json:"script"`
	PhraseCount int    `json:"phrase_count"`
}

// Statistics holds overall dictionary statistics
type Statistics struct {
	TotalCharacters int           `json:"total_characters"`
	TotalPhrases    int           `json:"total_phrases"`
	TotalSurnames   int           `json:"total_surnames"`
	Heteronyms      int           `json:"heteronyms"`
	PhrasesByScript []ScriptStats `json:"phrases_by_script"`
	SchemaVersion   int           `json:"schema_version"`
}
