package main

import (
	"github.com/spf13/cobra"
)

var tablesFile string

var rootCmd = &cobra.Command{
	Use:   "kyujin",
	Short: "Parse loosely formatted job postings into structured records",
	Long: `Kyujin converts unstructured job-posting text into a structured record:
job title, company, and salary, plus the posting's sections grouped under
their detected headers.

Detection is heuristic: bracketed headers (【給与】), marker-prefixed lines
(◆仕事内容), inline label-value pairs (勤務地：東京都), and trailing-colon
headings are all recognized.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&tablesFile, "tables", "", "YAML file overriding the built-in heuristic tables",
	)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}
