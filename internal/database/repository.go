package database

import (
	"strings"

	"github.com/vbauerster/mpb/v8"
	"gorm.io/gorm"

	"github.com/palemoky/chinese-pinyin-api/internal/dict"
)

// RepositoryInterface defines the interface for repository operations
type RepositoryInterface interface {
	UpsertCharacter(ch *Character) error
	BatchInsertCharacters(chars []*Character, batchSize int) error
	BatchInsertCharactersWithTransaction(chars []*Character, transactionSize, batchSize int, progress *mpb.Progress) error
	BatchInsertPhrases(phrases []*Phrase, batchSize int) error
	BatchInsertSurnames(surnames []*Surname, batchSize int) error
	GetCharacter(codepoint rune) (*Character, error)
	GetRandomCharacter(heteronymOnly bool) (*Character, error)
	CountCharacters() (int, error)
	CountPhrases() (int, error)
	CountSurnames() (int, error)
	GetStatistics() (*Statistics, error)
	ListCharacters(limit, offset int) ([]Character, int, error)
	ListPhrases(limit, offset int, script string) ([]Phrase, int, error)
	ListSurnames(limit, offset int) ([]Surname, int, error)
	SearchByReading(syllable string, limit int) ([]Character, error)
	SearchByPlain(syllable string, limit int) ([]Character, error)
	LoadSnapshot() (dict.Snapshot, error)
}

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// GetCharacter retrieves a character row by code point
func (r *Repository) GetCharacter(codepoint rune) (*Character, error) {
	var ch Character
	err := r.db.First(&ch, "codepoint = ?", int64(codepoint)).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetRandomCharacter returns a random character row, optionally
// restricted to heteronyms. Uses SQLite's ORDER BY RANDOM() LIMIT 1,
// which stays cheap at dictionary scale.
func (r *Repository) GetRandomCharacter(heteronymOnly bool) (*Character, error) {
	query := r.db.Model(&Character{})
	if heteronymOnly {
		query = query.Where("json_array_length(readings) > 1")
	}

	var ch Character
	if err := query.Order("RANDOM()").Take(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// CountCharacters returns the total number of character rows
func (r *Repository) CountCharacters() (int, error) {
	var count int64
	err := r.db.Model(&Character{}).Count(&count).Error
	return int(count), err
}

// CountPhrases returns the total number of phrase rows
func (r *Repository) CountPhrases() (int, error) {
	var count int64
	err := r.db.Model(&Phrase{}).Count(&count).Error
	return int(count), err
}

// CountSurnames returns the total number of surname rows
func (r *Repository) CountSurnames() (int, error) {
	var count int64
	err := r.db.Model(&Surname{}).Count(&count).Error
	return int(count), err
}

// ListCharacters returns a page of character rows ordered by code point
func (r *Repository) ListCharacters(limit, offset int) ([]Character, int, error) {
	var totalCount int64
	if err := r.db.Model(&Character{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var chars []Character
	err := r.db.Order("codepoint").
		Limit(limit).Offset(offset).
		Find(&chars).Error

	return chars, int(totalCount), err
}

// ListPhrases returns a page of phrase rows with an optional script filter
func (r *Repository) ListPhrases(limit, offset int, script string) ([]Phrase, int, error) {
	query := r.db.Model(&Phrase{})
	if script != "" {
		query = query.Where("script = ?", script)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var phrases []Phrase
	err := query.Order("text").
		Limit(limit).Offset(offset).
		Find(&phrases).Error

	return phrases, int(totalCount), err
}

// ListSurnames returns a page of surname rows
func (r *Repository) ListSurnames(limit, offset int) ([]Surname, int, error) {
	var totalCount int64
	if err := r.db.Model(&Surname{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var surnames []Surname
	err := r.db.Order("text").
		Limit(limit).Offset(offset).
		Find(&surnames).Error

	return surnames, int(totalCount), err
}

// SearchByReading finds characters whose toned readings include the
// given syllable, most frequent characters first. Uses the SQLite JSON1
// extension to unnest the readings array.
func (r *Repository) SearchByReading(syllable string, limit int) ([]Character, error) {
	return r.searchReadingColumn("readings", syllable, limit)
}

// SearchByPlain finds characters by toneless syllable
func (r *Repository) SearchByPlain(syllable string, limit int) ([]Character, error) {
	return r.searchReadingColumn("plain", syllable, limit)
}

func (r *Repository) searchReadingColumn(column, syllable string, limit int) ([]Character, error) {
	var chars []Character
	err := r.db.Raw(`
		SELECT characters.* FROM characters, json_each(characters.`+column+`) AS reading
		WHERE reading.value = ?
		GROUP BY characters.codepoint
		ORDER BY characters.weight DESC, characters.codepoint
		LIMIT ?
	`, syllable, limit).Scan(&chars).Error
	if err != nil {
		return nil, err
	}
	return chars, nil
}

// LoadSnapshot reads the full dictionary into a registry snapshot.
// Characters stream in batches since the seeded table is large.
func (r *Repository) LoadSnapshot() (dict.Snapshot, error) {
	snap := dict.Snapshot{
		Chars:    make(map[rune][]string),
		Phrases:  make(map[string][]string),
		Surnames: make(map[string][]string),
	}

	var batch []Character
	err := r.db.Model(&Character{}).FindInBatches(&batch, 2000, func(tx *gorm.DB, _ int) error {
		for i := range batch {
			readings, err := batch[i].ReadingList()
			if err != nil {
				return err
			}
			snap.Chars[rune(batch[i].Codepoint)] = readings
		}
		return nil
	}).Error
	if err != nil {
		return dict.Snapshot{}, err
	}

	var phrases []Phrase
	if err := r.db.Find(&phrases).Error; err != nil {
		return dict.Snapshot{}, err
	}
	for _, p := range phrases {
		snap.Phrases[p.Text] = strings.Fields(p.Pinyin)
	}

	var surnames []Surname
	if err := r.db.Find(&surnames).Error; err != nil {
		return dict.Snapshot{}, err
	}
	for _, s := range surnames {
		snap.Surnames[s.Text] = strings.Fields(s.Pinyin)
	}

	return snap, nil
}
