package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/loader"
	"github.com/palemoky/chinese-pinyin-api/internal/logger"
	"github.com/palemoky/chinese-pinyin-api/internal/processor"
)

var (
	inputDir   string
	outputDB   string
	workers    int
	configPath string
	withSeed   bool
	augment    bool
)

func main() {
	// Initialize logger (always debug mode for processor)
	logger.Init(true)
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "processor",
		Short: "Chinese Pinyin Dictionary Processor",
		Long:  "Process dictionary JSON data and generate a SQLite database of character, phrase and surname readings with reverse lookup columns",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "dict-data", "Input directory containing dictionary JSON files")
	rootCmd.Flags().StringVarP(&outputDB, "output", "o", "pinyin.db", "Output SQLite database")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent workers (0 = number of CPUs)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to dicts.json config file (default: <input>/dicts.json)")
	rootCmd.Flags().BoolVar(&withSeed, "seed", true, "Include the bundled go-pinyin character table")
	rootCmd.Flags().BoolVar(&augment, "traditional", true, "Derive traditional script twins for phrases and surnames")

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command execution failed", zap.Error(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Determine config path
	if configPath == "" {
		configPath = filepath.Join(inputDir, "dicts.json")
	}

	var entries []loader.EntryWithMeta

	// The seed goes first; dedupeChars keeps the last entry per
	// character, so curated datasets replace its readings
	if withSeed {
		frequent := make(map[rune]bool)
		for _, entry := range dict.Default().CharEntries() {
			for _, ch := range entry.Char {
				frequent[ch] = true
			}
		}
		seed := loader.LoadSeed(frequent)
		logger.Info("Loaded seed character table", zap.Int("count", len(seed)))
		entries = append(entries, seed...)
	}

	logger.Info("Loading dictionary data", zap.String("config", configPath))

	jsonLoader, err := loader.NewJSONLoader(configPath)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	loaded, err := jsonLoader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	logger.Info("Loaded entries from JSON files", zap.Int("count", len(loaded)))
	entries = append(entries, loaded...)
	entries = dedupeChars(entries)

	if err := buildDatabase(outputDB, entries, workers); err != nil {
		return fmt.Errorf("failed to build database: %w", err)
	}

	logger.Info("Processing complete", zap.String("database", outputDB))

	// Print statistics
	if err := printStatistics(outputDB); err != nil {
		logger.Warn("Failed to print statistics", zap.Error(err))
	}

	return nil
}

// dedupeChars collapses duplicate character entries to the last one
// seen. The insert path skips conflicting character rows, and worker
// order is not deterministic, so precedence has to be settled here
// before entries reach the pipeline.
func dedupeChars(entries []loader.EntryWithMeta) []loader.EntryWithMeta {
	last := make(map[string]int)
	for i, entry := range entries {
		if entry.Kind == loader.KindChars {
			last[entry.Text] = i
		}
	}

	kept := entries[:0]
	for i, entry := range entries {
		if entry.Kind == loader.KindChars && last[entry.Text] != i {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func buildDatabase(dbPath string, entries []loader.EntryWithMeta, workers int) error {
	// Remove existing database
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Creating database schema")
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := database.NewRepository(db)
	proc := processor.NewProcessor(repo, workers, augment)
	if err := proc.Process(entries); err != nil {
		return fmt.Errorf("failed to process entries: %w", err)
	}

	// Optimize database
	logger.Info("Optimizing database")
	if err := db.Exec("VACUUM").Error; err != nil {
		logger.Warn("Failed to vacuum database", zap.Error(err))
	}

	if err := db.Exec("ANALYZE").Error; err != nil {
		logger.Warn("Failed to analyze database", zap.Error(err))
	}

	return nil
}

func printStatistics(dbPath string) error {
	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	stats, err := database.NewRepository(db).GetStatistics()
	if err != nil {
		return err
	}

	fmt.Println("\n=== Database Statistics ===")

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Kind", "Rows")
	table.Append("Characters", fmt.Sprintf("%d", stats.TotalCharacters))
	table.Append("  heteronyms", fmt.Sprintf("%d", stats.Heteronyms))
	table.Append("Phrases", fmt.Sprintf("%d", stats.TotalPhrases))
	for _, script := range stats.PhrasesByScript {
		table.Append("  "+script.Script, fmt.Sprintf("%d", script.PhraseCount))
	}
	table.Append("Surnames", fmt.Sprintf("%d", stats.TotalSurnames))
	if err := table.Render(); err != nil {
		return err
	}

	return nil
}
