package database

import (
	"fmt"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/palemoky/chinese-pinyin-api/internal/logger"
)

// Write operations for dictionary building

// UpsertCharacter inserts or updates a character row. Later sources
// override earlier ones, so the readings columns are replaced on
// conflict.
func (r *Repository) UpsertCharacter(ch *Character) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "codepoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"char", "readings", "plain", "weight"}),
	}).Create(ch).Error
}

// BatchInsertCharacters inserts character rows in batches, skipping
// code points that are already present. Used for the initial seed where
// the first source wins.
func (r *Repository) BatchInsertCharacters(chars []*Character, batchSize int) error {
	if len(chars) == 0 {
		return nil
	}

	if batchSize <= 0 {
		batchSize = 500 // Default batch size
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "codepoint"}},
		DoNothing: true, // Skip duplicates
	}).CreateInBatches(chars, batchSize).Error
}

// BatchInsertCharactersWithTransaction inserts characters in large transactions for maximum performance
// This reduces fsync overhead by grouping multiple batches into one transaction
// transactionSize: number of rows per transaction (e.g., 10000)
// batchSize: number of rows per insert statement (e.g., 1000)
// progress: progress container for displaying insertion progress
func (r *Repository) BatchInsertCharactersWithTransaction(chars []*Character, transactionSize, batchSize int, progress *mpb.Progress) error {
	if len(chars) == 0 {
		return nil
	}

	if transactionSize <= 0 {
		transactionSize = 20000 // Default: 20k rows per transaction
	}
	if batchSize <= 0 {
		batchSize = 1000 // Default: 1000 rows per insert
	}

	totalTransactions := (len(chars) + transactionSize - 1) / transactionSize

	// Create progress bar for rows (not transactions) for smoother updates
	var charBar *mpb.Bar
	if progress != nil {
		charBar = progress.AddBar(int64(len(chars)),
			mpb.PrependDecorators(
				decor.Name("Inserting Characters: ", decor.WC{W: 22, C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Name(" | "),
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}),
			),
		)
	}

	logger.Info("Starting batch insertion",
		zap.Int("characters", len(chars)),
		zap.Int("transactions", totalTransactions),
		zap.Int("batch_size", batchSize),
	)

	// Process rows in large transaction chunks
	for i := 0; i < len(chars); i += transactionSize {
		end := min(i+transactionSize, len(chars))
		transactionChunk := chars[i:end]

		// Execute one large transaction with manual batching for progress updates
		err := r.db.Transaction(func(tx *gorm.DB) error {
			// Manually batch insert within transaction to update progress bar
			for j := 0; j < len(transactionChunk); j += batchSize {
				batchEnd := min(j+batchSize, len(transactionChunk))
				batch := transactionChunk[j:batchEnd]

				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "codepoint"}},
					DoNothing: true,
				}).Create(&batch).Error
				if err != nil {
					return err
				}

				// Update progress bar after each batch
				if charBar != nil {
					charBar.IncrBy(len(batch))
				}
			}
			return nil
		})
		if err != nil {
			txNum := i/transactionSize + 1
			return fmt.Errorf("failed to insert transaction %d/%d (rows %d-%d): %w",
				txNum, totalTransactions, i, end, err)
		}
	}

	return nil
}

// BatchInsertPhrases inserts phrase rows in batches. Re-running the
// processor refreshes existing entries, so conflicts update in place.
func (r *Repository) BatchInsertPhrases(phrases []*Phrase, batchSize int) error {
	if len(phrases) == 0 {
		return nil
	}

	if batchSize <= 0 {
		batchSize = 500 // Default batch size
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "text"}},
		DoUpdates: clause.AssignmentColumns([]string{"pinyin", "plain", "script"}),
	}).CreateInBatches(phrases, batchSize).Error
}

// BatchInsertSurnames inserts surname rows in batches, updating on
// conflict like BatchInsertPhrases.
func (r *Repository) BatchInsertSurnames(surnames []*Surname, batchSize int) error {
	if len(surnames) == 0 {
		return nil
	}

	if batchSize <= 0 {
		batchSize = 500 // Default batch size
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "text"}},
		DoUpdates: clause.AssignmentColumns([]string{"pinyin", "plain", "compound"}),
	}).CreateInBatches(surnames, batchSize).Error
}
