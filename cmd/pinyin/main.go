package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/pinyin"
	"github.com/palemoky/chinese-pinyin-api/internal/variant"
)

var (
	patternName  string
	toneTypeName string
	modeName     string
	nonZhName    string
	multiple     bool
	vForUmlaut   bool
	outputType   string
	asJSON       bool
	dbPath       string
	variantName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pinyin [text...]",
		Short: "Convert Chinese text to pinyin",
		Long:  "Convert Chinese text to pinyin with configurable tone style, output pattern, surname mode and non-Chinese handling. Reads one text per line from stdin when no arguments are given.",
		Args:  cobra.ArbitraryArgs,
		RunE:  runConvert,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&patternName, "pattern", "p", "", "Output pattern: pinyin, initial, final, num, first, finalHead, finalBody, finalTail")
	flags.StringVarP(&toneTypeName, "tone-type", "t", "", "Tone style: symbol, num, none")
	flags.StringVarP(&modeName, "mode", "m", "", "Resolution mode: normal, surname")
	flags.StringVar(&nonZhName, "non-zh", "", "Non-Chinese handling: spaced, consecutive, removed")
	flags.BoolVar(&multiple, "multiple", false, "List every reading of a single character")
	flags.BoolVar(&vForUmlaut, "v", false, "Write ü as v")
	flags.StringVarP(&outputType, "type", "o", "", "Output type: string, array, all")
	flags.BoolVar(&asJSON, "json", false, "Emit JSON instead of plain text")
	flags.StringVar(&dbPath, "db", "", "Merge readings from a dictionary database before converting")
	flags.StringVar(&variantName, "variant", "", "Input script (zh-Hant resolves through the simplified twin)")

	heteronymsCmd := &cobra.Command{
		Use:   "heteronyms <char>",
		Short: "List every reading of a character",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeteronyms,
	}
	rootCmd.AddCommand(heteronymsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRegistry builds the conversion registry, merging database rows on
// top of the embedded tables when --db is given
func newRegistry() (*dict.Registry, error) {
	reg := dict.NewRegistry()

	if dbPath != "" {
		db, err := database.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = db.Close() }()

		snap, err := database.NewRepository(db).LoadSnapshot()
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary: %w", err)
		}
		reg.Merge(snap)
	}

	return reg, nil
}

func parseOptions() (pinyin.Options, error) {
	var opts pinyin.Options
	var err error

	if opts.Pattern, err = pinyin.ParsePattern(patternName); err != nil {
		return opts, err
	}
	if opts.ToneType, err = pinyin.ParseToneType(toneTypeName); err != nil {
		return opts, err
	}
	if opts.Mode, err = pinyin.ParseMode(modeName); err != nil {
		return opts, err
	}
	if opts.NonZh, err = pinyin.ParseNonZh(nonZhName); err != nil {
		return opts, err
	}
	opts.Multiple = multiple
	opts.V = vForUmlaut

	return opts, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}

	texts, err := inputTexts(args)
	if err != nil {
		return err
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	var res pinyin.Resolver = reg
	if variant.ParseLang(variantName) == variant.LangHant {
		res = variant.Simplifying(reg)
	}
	conv := pinyin.New(res)

	for _, text := range texts {
		var result any
		switch outputType {
		case "", "string":
			result = conv.Convert(text, opts)
		case "array":
			result = conv.ConvertSlice(text, opts)
		case "all":
			result = conv.ConvertAll(text, opts)
		default:
			return fmt.Errorf("unknown type: %q", outputType)
		}

		if asJSON {
			if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
				return err
			}
			continue
		}

		switch v := result.(type) {
		case string:
			fmt.Println(v)
		case []string:
			for _, syllable := range v {
				fmt.Println(syllable)
			}
		case []pinyin.Record:
			printRecords(v)
		}
	}

	return nil
}

// inputTexts returns the positional arguments, or one text per
// non-empty stdin line when none are given.
func inputTexts(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var texts []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return texts, nil
}

func printRecords(records []pinyin.Record) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Origin", "Pinyin", "Initial", "Final", "Head", "Body", "Tail", "Tone")

	for _, r := range records {
		tone := ""
		if r.IsZh {
			tone = strconv.Itoa(r.Num)
		}
		table.Append(r.Origin, r.Pinyin, r.Initial, r.Final,
			r.FinalHead, r.FinalBody, r.FinalTail, tone)
	}

	_ = table.Render()
}

func runHeteronyms(cmd *cobra.Command, args []string) error {
	runes := []rune(args[0])
	if len(runes) != 1 {
		return fmt.Errorf("expected a single character, got %q", args[0])
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	readings := reg.Heteronyms(runes[0])
	if len(readings) == 0 {
		return fmt.Errorf("no readings for %q", args[0])
	}

	fmt.Println(strings.Join(readings, " "))
	return nil
}
