package processor

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/datatypes"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/loader"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
	"github.com/palemoky/chinese-pinyin-api/internal/variant"
)

// processEntry validates one source entry and expands it into database
// rows. Phrases and surnames additionally get a traditional-script twin
// when augmentation is on; single characters do not, because the
// simplified-to-traditional mapping is one-to-many at the character
// level and would attach wrong readings (发 carries fā and fà, but 發
// only ever reads fā). Traditional character readings come from curated
// datasets instead.
func (p *Processor) processEntry(entry loader.EntryWithMeta) (rows, error) {
	switch entry.Kind {
	case loader.KindChars:
		ch, err := buildCharacter(entry)
		if err != nil {
			return rows{}, err
		}
		return rows{chars: []*database.Character{ch}}, nil

	case loader.KindPhrases:
		phrases, err := p.buildPhrases(entry)
		if err != nil {
			return rows{}, err
		}
		return rows{phrases: phrases}, nil

	case loader.KindSurnames:
		surnames, err := p.buildSurnames(entry)
		if err != nil {
			return rows{}, err
		}
		return rows{surnames: surnames}, nil

	default:
		return rows{}, fmt.Errorf("unknown entry kind %q", entry.Kind)
	}
}

func buildCharacter(entry loader.EntryWithMeta) (*database.Character, error) {
	runes := []rune(entry.Text)
	if len(runes) != 1 {
		return nil, fmt.Errorf("character entry must be a single rune, got %d", len(runes))
	}

	readings := entry.Readings
	if len(readings) == 0 {
		readings = []string{entry.Pinyin}
	}
	for _, syllable := range readings {
		if err := validateReading(syllable); err != nil {
			return nil, err
		}
	}

	readingsJSON, err := json.Marshal(readings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal readings: %w", err)
	}
	plainJSON, err := json.Marshal(loader.PlainReadings(readings))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plain readings: %w", err)
	}

	return &database.Character{
		Codepoint: int64(runes[0]),
		Char:      entry.Text,
		Readings:  datatypes.JSON(readingsJSON),
		Plain:     datatypes.JSON(plainJSON),
		Weight:    entry.Weight,
	}, nil
}

func (p *Processor) buildPhrases(entry loader.EntryWithMeta) ([]*database.Phrase, error) {
	syllables, err := wordSyllables(entry.Text, entry.Pinyin, 2)
	if err != nil {
		return nil, err
	}
	reading := strings.Join(syllables, " ")
	plain := strings.Join(loader.PlainReadings(syllables), " ")

	result := []*database.Phrase{{
		Text:   entry.Text,
		Pinyin: reading,
		Plain:  plain,
		Script: entry.Script,
	}}

	if p.augmentTraditional && variant.Lang(entry.Script) == variant.LangHans {
		trad, err := variant.ToTraditional(entry.Text)
		if err != nil {
			return nil, fmt.Errorf("traditional conversion failed: %w", err)
		}
		if trad != entry.Text {
			result = append(result, &database.Phrase{
				Text:   trad,
				Pinyin: reading,
				Plain:  plain,
				Script: string(variant.LangHant),
			})
		}
	}
	return result, nil
}

func (p *Processor) buildSurnames(entry loader.EntryWithMeta) ([]*database.Surname, error) {
	syllables, err := wordSyllables(entry.Text, entry.Pinyin, 1)
	if err != nil {
		return nil, err
	}
	reading := strings.Join(syllables, " ")
	plain := strings.Join(loader.PlainReadings(syllables), " ")

	result := []*database.Surname{{
		Text:     entry.Text,
		Pinyin:   reading,
		Plain:    plain,
		Compound: len(syllables) > 1,
	}}

	if p.augmentTraditional && variant.Lang(entry.Script) == variant.LangHans {
		trad, err := variant.ToTraditional(entry.Text)
		if err != nil {
			return nil, fmt.Errorf("traditional conversion failed: %w", err)
		}
		if trad != entry.Text {
			result = append(result, &database.Surname{
				Text:     trad,
				Pinyin:   reading,
				Plain:    plain,
				Compound: len(syllables) > 1,
			})
		}
	}
	return result, nil
}

// wordSyllables splits a space-separated reading and checks it lines up
// with the text, one syllable per rune
func wordSyllables(text, reading string, minRunes int) ([]string, error) {
	count := utf8.RuneCountInString(text)
	if count < minRunes {
		return nil, fmt.Errorf("%q needs at least %d characters", text, minRunes)
	}

	syllables := strings.Fields(reading)
	if len(syllables) != count {
		return nil, fmt.Errorf("%q has %d characters but %d syllables", text, count, len(syllables))
	}
	for _, syllable := range syllables {
		if err := validateReading(syllable); err != nil {
			return nil, err
		}
	}
	return syllables, nil
}

// validateReading checks that a toned syllable strips down to plain
// letters. Combining marks are allowed so decomposed spellings, like u
// plus a separate diaeresis, still pass.
func validateReading(syllable string) error {
	if syllable == "" {
		return fmt.Errorf("empty syllable")
	}
	plain := pinyin.SubstituteV(pinyin.StripTones(syllable))
	for _, r := range plain {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			return fmt.Errorf("malformed syllable %q", syllable)
		}
	}
	return nil
}
