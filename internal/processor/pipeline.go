package processor

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/loader"
	"github.com/palemoky/chinese-pinyin-api/internal/logger"
)

const (
	// Dynamic batch sizing thresholds (percentage of channel capacity)
	channelPressureHigh   = 0.8 // 80% full - reduce batch size
	channelPressureMedium = 0.5 // 50% full - normal batch size
	channelPressureLow    = 0.2 // 20% full - increase batch size

	// Error reporting limits
	MaxErrorsToCollect = 100 // Maximum number of errors to collect

	// Sample error display limit
	SampleErrorCount = 5 // Number of sample errors to show
)

// getOptimalConfig returns optimal configuration based on system resources
func getOptimalConfig() (workBuffer, resultBuffer, errorBuffer, defaultBatch, minBatch, maxBatch int) {
	cpuCount := runtime.NumCPU()

	// Adaptive configuration based on CPU count
	// Low-end (CI): 2 cores  → conservative settings
	// Mid-range:    4-8 cores → balanced settings
	// High-end:     10+ cores → aggressive settings

	switch {
	case cpuCount <= 2:
		// GitHub Actions, low-end CI
		return 50, 1000, 50, 200, 50, 300

	case cpuCount <= 4:
		// Entry-level machines
		return 75, 2000, 75, 300, 100, 500

	case cpuCount <= 8:
		// Mid-range machines
		return 100, 3000, 100, 400, 150, 700

	default:
		// High-end machines
		return 300, 5000, 300, 500, 200, 1000
	}
}

// Processor turns dictionary source entries into database rows with
// concurrent workers
type Processor struct {
	repo               database.RepositoryInterface
	workers            int
	augmentTraditional bool
	batchSize          int // Base batch size for database insertion
	minBatchSize       int // Minimum batch size (for high pressure)
	maxBatchSize       int // Maximum batch size (for low pressure)
}

// NewProcessor creates a new processor with caching support
func NewProcessor(repo *database.Repository, workers int, augmentTraditional bool) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Get optimal configuration based on system resources
	_, _, _, defaultBatch, minBatch, maxBatch := getOptimalConfig()

	// Wrap repository with caching for better performance
	cachedRepo := database.NewCachedRepository(repo)

	return &Processor{
		repo:               cachedRepo,
		workers:            workers,
		augmentTraditional: augmentTraditional,
		batchSize:          defaultBatch,
		minBatchSize:       minBatch,
		maxBatchSize:       maxBatch,
	}
}

// SetBatchSize sets the batch size for database insertion
func (p *Processor) SetBatchSize(size int) {
	if size > 0 {
		p.batchSize = size
	}
}

// Process validates and inserts all entries with concurrent workers and
// batch insertion
func (p *Processor) Process(entries []loader.EntryWithMeta) error {
	total := len(entries)
	logger.Info("Processing dictionary entries",
		zap.Int("entries", total),
		zap.Int("workers", p.workers),
		zap.Int("batch_size", p.batchSize),
	)

	// Create progress container
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	// Create progress bar
	bar := progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Processing: ", decor.WC{W: 12, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" | "),
			decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}),
			decor.Name(" | "),
			decor.AverageSpeed(0, "%.0f entries/s", decor.WC{W: 14}),
		),
	)

	// Channels for work distribution
	// Buffer sizes are adaptive based on system resources
	workBuffer, resultBuffer, errorBuffer, _, _, _ := getOptimalConfig()

	workCh := make(chan loader.EntryWithMeta, workBuffer)
	resultCh := make(chan rows, resultBuffer)
	errorCh := make(chan error, errorBuffer)
	var wg sync.WaitGroup

	// Progress counter
	var processed atomic.Int64
	var errorCount atomic.Int64

	// Start workers to validate and expand entries (CPU-intensive work)
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for entry := range workCh {
				result, err := p.processEntry(entry)
				if err != nil {
					errorCount.Add(1)
					// Non-blocking error recording
					select {
					case errorCh <- fmt.Errorf("worker %d: %s - %w", workerID, entry.Text, err):
					default:
						// Discard error to avoid blocking
					}
					processed.Add(1)
					bar.Increment()
					continue
				}

				// Send expanded rows to the batch inserter
				resultCh <- result
				processed.Add(1)
				bar.Increment()
			}
		}(i)
	}

	// Start batch inserter goroutine
	insertDone := make(chan error, 1)
	go func() {
		insertDone <- p.batchInserter(resultCh)
	}()

	// Send work to workers
	go func() {
		for _, entry := range entries {
			workCh <- entry
		}
		close(workCh)
	}()

	// Wait for all workers to finish processing
	wg.Wait()
	close(resultCh) // Signal batch inserter to finish

	// Wait for batch inserter to complete
	if err := <-insertDone; err != nil {
		return fmt.Errorf("batch insertion failed: %w", err)
	}

	close(errorCh)

	// Wait for progress bar to finish rendering
	progress.Wait()

	// Collect errors (non-blocking)
	var errors []error
	for err := range errorCh {
		errors = append(errors, err)
		if len(errors) >= MaxErrorsToCollect {
			break
		}
	}

	// Print summary
	successCount := processed.Load()
	failCount := errorCount.Load()

	if failCount > 0 {
		logger.Warn("Processing finished with failures",
			zap.Int64("succeeded", successCount-failCount),
			zap.Int64("failed", failCount),
			zap.Int("total", total),
		)
		for i := 0; i < min(len(errors), SampleErrorCount); i++ {
			logger.Warn("Sample error", zap.Int("index", i+1), zap.Error(errors[i]))
		}
		return fmt.Errorf("processing completed with %d errors", failCount)
	}

	logger.Info("Successfully processed all entries", zap.Int("total", total))
	return nil
}

// batchInserter collects rows and inserts them in batches with dynamic
// sizing. Character rows dominate the volume, so channel pressure is
// tracked against them; phrase and surname batches flush on the same
// threshold.
func (p *Processor) batchInserter(resultCh <-chan rows) error {
	chars := make([]*database.Character, 0, p.maxBatchSize)
	phrases := make([]*database.Phrase, 0, p.maxBatchSize)
	surnames := make([]*database.Surname, 0, p.maxBatchSize)
	currentBatchSize := p.batchSize // Start with configured batch size

	flushChars := func() error {
		if len(chars) == 0 {
			return nil
		}
		if err := p.repo.BatchInsertCharacters(chars, len(chars)); err != nil {
			return fmt.Errorf("failed to insert batch of %d characters: %w", len(chars), err)
		}
		chars = chars[:0]
		return nil
	}
	flushPhrases := func() error {
		if len(phrases) == 0 {
			return nil
		}
		if err := p.repo.BatchInsertPhrases(phrases, len(phrases)); err != nil {
			return fmt.Errorf("failed to insert batch of %d phrases: %w", len(phrases), err)
		}
		phrases = phrases[:0]
		return nil
	}
	flushSurnames := func() error {
		if len(surnames) == 0 {
			return nil
		}
		if err := p.repo.BatchInsertSurnames(surnames, len(surnames)); err != nil {
			return fmt.Errorf("failed to insert batch of %d surnames: %w", len(surnames), err)
		}
		surnames = surnames[:0]
		return nil
	}

	var insertErr error
	for result := range resultCh {
		if insertErr != nil {
			continue // Keep draining so workers never block on a failed inserter
		}

		chars = append(chars, result.chars...)
		phrases = append(phrases, result.phrases...)
		surnames = append(surnames, result.surnames...)

		// Calculate channel utilization (pressure)
		channelLen := len(resultCh)
		channelCap := cap(resultCh)
		utilization := float64(channelLen) / float64(channelCap)

		// Dynamically adjust batch size based on channel pressure
		newBatchSize := p.calculateBatchSize(utilization, currentBatchSize)
		if newBatchSize != currentBatchSize {
			logger.Debug("Adjusting batch size",
				zap.Float64("utilization", utilization),
				zap.Int("from", currentBatchSize),
				zap.Int("to", newBatchSize),
			)
		}
		currentBatchSize = newBatchSize

		// Insert when a batch reaches current size
		if len(chars) >= currentBatchSize {
			insertErr = flushChars()
		}
		if insertErr == nil && len(phrases) >= currentBatchSize {
			insertErr = flushPhrases()
		}
		if insertErr == nil && len(surnames) >= currentBatchSize {
			insertErr = flushSurnames()
		}
	}
	if insertErr != nil {
		return insertErr
	}

	// Insert remaining rows
	if err := flushChars(); err != nil {
		return err
	}
	if err := flushPhrases(); err != nil {
		return err
	}
	return flushSurnames()
}

// calculateBatchSize determines the optimal batch size based on channel utilization
// Returns the adjusted batch size, or keeps current size for smooth transitions
func (p *Processor) calculateBatchSize(utilization float64, currentSize int) int {
	switch {
	case utilization >= channelPressureHigh:
		// High pressure (≥80% full): reduce batch size for faster consumption
		return p.minBatchSize

	case utilization >= channelPressureMedium:
		// Medium pressure (≥50% full): use base batch size
		return p.batchSize

	case utilization <= channelPressureLow:
		// Low pressure (≤20% full): increase batch size for efficiency
		return p.maxBatchSize

	default:
		// Between 20-50%: keep current batch size for smooth transition
		return currentSize
	}
}
