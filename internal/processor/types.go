package processor

import "github.com/palemoky/chinese-pinyin-api/internal/database"

// rows holds the database rows expanded from a single source entry.
// One entry usually yields one row, plus a traditional-script twin
// when augmentation is enabled.
type rows struct {
	chars    []*database.Character
	phrases  []*database.Phrase
	surnames []*database.Surname
}
