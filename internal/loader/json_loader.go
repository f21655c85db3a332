package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
	"go.uber.org/zap"

	"github.com/palemoky/chinese-pinyin-api/internal/logger"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
)

// Dataset kinds understood by the processor
const (
	KindChars    = "chars"
	KindPhrases  = "phrases"
	KindSurnames = "surnames"
)

// DataConfig represents the structure of dicts.json
type DataConfig struct {
	DictPath string                 `json:"dict_path"`
	Datasets map[string]DatasetInfo `json:"datasets"`
}

// DatasetInfo contains information about a dictionary dataset
type DatasetInfo struct {
	Name     string   `json:"name"`
	ID       int      `json:"id"`
	Path     string   `json:"path"`
	Kind     string   `json:"kind"`
	Script   string   `json:"script,omitempty"` // zh-Hans when empty
	Excludes []string `json:"excludes"`
	Comments string   `json:"comments,omitempty"`
}

// EntryData represents a dictionary entry from JSON
type EntryData struct {
	Text     string   `json:"text"`
	Pinyin   string   `json:"pinyin,omitempty"`   // space-joined toned syllables
	Readings []string `json:"readings,omitempty"` // per-character alternatives, primary first
	Weight   int      `json:"weight,omitempty"`
}

// EntryWithMeta includes metadata about the entry's source
type EntryWithMeta struct {
	EntryData
	Kind        string
	Script      string
	DatasetName string
	DatasetKey  string
}

// JSONLoader loads dictionary data from JSON files
type JSONLoader struct {
	config   *DataConfig
	basePath string
}

// NewJSONLoader creates a new JSON loader
func NewJSONLoader(configPath string) (*JSONLoader, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config DataConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Determine base path
	configDir := filepath.Dir(configPath)
	basePath := configDir

	// If dict_path is specified and not current directory, join it
	if config.DictPath != "" && config.DictPath != "./" && config.DictPath != "." {
		basePath = filepath.Join(configDir, config.DictPath)
	}

	for key, dataset := range config.Datasets {
		switch dataset.Kind {
		case KindChars, KindPhrases, KindSurnames:
		default:
			return nil, fmt.Errorf("dataset %s has unknown kind %q", key, dataset.Kind)
		}
	}

	return &JSONLoader{
		config:   &config,
		basePath: basePath,
	}, nil
}

// LoadAll loads every entry from every dataset
func (l *JSONLoader) LoadAll() ([]EntryWithMeta, error) {
	var allEntries []EntryWithMeta

	for key, dataset := range l.config.Datasets {
		entries, err := l.loadDataset(key, dataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset %s: %w", key, err)
		}
		allEntries = append(allEntries, entries...)
	}

	return allEntries, nil
}

func (l *JSONLoader) loadDataset(key string, dataset DatasetInfo) ([]EntryWithMeta, error) {
	fullPath := filepath.Join(l.basePath, dataset.Path)
	script := dataset.Script
	if script == "" {
		script = "zh-Hans"
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", fullPath, err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(fullPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			// Check if file should be excluded
			if contains(dataset.Excludes, entry.Name()) {
				continue
			}

			if filepath.Ext(entry.Name()) != ".json" {
				continue
			}

			files = append(files, filepath.Join(fullPath, entry.Name()))
		}
	} else {
		files = append(files, fullPath)
	}

	var entries []EntryWithMeta
	for _, filePath := range files {
		fileEntries, err := l.loadJSONFile(filePath)
		if err != nil {
			if info.IsDir() {
				logger.Warn("Skipping unreadable dictionary file",
					zap.String("path", filePath), zap.Error(err))
				continue
			}
			return nil, err
		}

		for _, entry := range fileEntries {
			entries = append(entries, EntryWithMeta{
				EntryData:   entry,
				Kind:        dataset.Kind,
				Script:      script,
				DatasetName: dataset.Name,
				DatasetKey:  key,
			})
		}
	}

	return entries, nil
}

func (l *JSONLoader) loadJSONFile(path string) ([]EntryData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var rawEntries []map[string]interface{}
	if err := json.Unmarshal(data, &rawEntries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var entries []EntryData
	for _, raw := range rawEntries {
		entry := EntryData{
			Pinyin: getString(raw, "pinyin"),
			Weight: getInt(raw, "weight"),
		}

		// Accept the field names used across upstream dictionaries
		for _, field := range []string{"text", "char", "word"} {
			if v := getString(raw, field); v != "" {
				entry.Text = v
				break
			}
		}

		entry.Readings = getStringArray(raw, "readings")
		if len(entry.Readings) == 0 && entry.Pinyin != "" {
			// Single-character sources often pack alternatives into the
			// pinyin field separated by commas
			if !strings.Contains(entry.Pinyin, " ") && strings.Contains(entry.Pinyin, ",") {
				entry.Readings = strings.Split(entry.Pinyin, ",")
				entry.Pinyin = entry.Readings[0]
			}
		}

		if entry.Text != "" && (entry.Pinyin != "" || len(entry.Readings) > 0) {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// LoadSeed builds character entries from the bundled go-pinyin table,
// roughly 41k code points with heteronym readings. Characters in the
// frequent set get a positive weight so reverse lookups list everyday
// characters first.
func LoadSeed(frequent map[rune]bool) []EntryWithMeta {
	entries := make([]EntryWithMeta, 0, len(gopinyin.PinyinDict))

	for codepoint, readings := range gopinyin.PinyinDict {
		text := string(rune(codepoint))
		alternatives := strings.Split(readings, ",")

		weight := 0
		if frequent[rune(codepoint)] {
			weight = 100
		}

		entries = append(entries, EntryWithMeta{
			EntryData: EntryData{
				Text:     text,
				Pinyin:   alternatives[0],
				Readings: alternatives,
				Weight:   weight,
			},
			Kind:        KindChars,
			Script:      "zh-Hans",
			DatasetName: "go-pinyin seed",
			DatasetKey:  "seed",
		})
	}

	return entries
}

// PlainReadings strips tone marks from readings for the reverse lookup
// column, writing ü as v the way users type it.
func PlainReadings(readings []string) []string {
	plain := make([]string, len(readings))
	for i, reading := range readings {
		plain[i] = pinyin.SubstituteV(pinyin.StripTones(reading))
	}
	return plain
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getInt(m map[string]interface{}, key string) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}

func getStringArray(m map[string]interface{}, key string) []string {
	if arr, ok := m[key].([]interface{}); ok {
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
