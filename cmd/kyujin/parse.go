package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hayasui/kyujin"
	"github.com/hayasui/kyujin/model"
)

var (
	fromHTML  bool
	fromImage bool
	ocrLang   string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a job posting from a file or stdin and print JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := buildParser(args)
		if err != nil {
			return err
		}

		if tablesFile != "" {
			tables, err := loadTables(tablesFile)
			if err != nil {
				return err
			}
			parser.WithTables(tables)
		}
		if ocrLang != "" {
			parser.Language(ocrLang)
		}

		rec, err := parser.Parse()
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&fromHTML, "html", false, "treat input as an HTML page")
	parseCmd.Flags().BoolVar(&fromImage, "image", false, "treat input as an image and run OCR (requires -tags ocr build)")
	parseCmd.Flags().StringVar(&ocrLang, "lang", "", "OCR language hint, e.g. jpn or jpn+eng")
}

// buildParser selects the input source. With no file argument the
// posting is read from stdin.
func buildParser(args []string) (*kyujin.Parser, error) {
	switch {
	case fromImage:
		data, err := readInput(args)
		if err != nil {
			return nil, err
		}
		return kyujin.FromImage(data), nil

	case fromHTML:
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return nil, err
			}
			// Parse consumes the reader before returning; the descriptor
			// lives until process exit either way.
			return kyujin.FromHTML(f), nil
		}
		return kyujin.FromHTML(os.Stdin), nil

	default:
		data, err := readInput(args)
		if err != nil {
			return nil, err
		}
		return kyujin.FromString(string(data)), nil
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// loadTables reads a YAML table bundle and lays it over the defaults.
// Only the keys present in the file are overridden:
//
//	fallback_title: 本文
//	markers: "◆■●"
//	salary_keywords: [給与, 年収]
//	company_suffixes: [株式会社]
//	default_sections: [勤務地, 給与詳細]
//	synonyms:
//	  job_title: [職種, ポジション]
//	  company: [会社名]
//	  salary: [給与, 月給]
func loadTables(path string) (model.Tables, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return model.Tables{}, fmt.Errorf("reading tables file: %w", err)
	}

	tables := model.DefaultTables()
	if v.IsSet("fallback_title") {
		tables.FallbackTitle = v.GetString("fallback_title")
	}
	if v.IsSet("markers") {
		tables.Markers = v.GetString("markers")
	}
	if v.IsSet("salary_keywords") {
		tables.SalaryKeywords = v.GetStringSlice("salary_keywords")
	}
	if v.IsSet("company_suffixes") {
		tables.CompanySuffixes = v.GetStringSlice("company_suffixes")
	}
	if v.IsSet("default_sections") {
		tables.DefaultSections = v.GetStringSlice("default_sections")
	}
	for i, fs := range tables.Synonyms {
		key := "synonyms." + fs.Field.String()
		if v.IsSet(key) {
			tables.Synonyms[i].Synonyms = v.GetStringSlice(key)
		}
	}
	return tables, nil
}
