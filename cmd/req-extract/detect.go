package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/req-extract/internal/detect"
	"github.com/pdiddy/req-extract/internal/extract"
	"github.com/pdiddy/req-extract/internal/normalize"
)

var detectCmd = &cobra.Command{
	Use:   "detect <document>",
	Short: "Identify the language of a document",
	Long: `Detect normalizes the leading pages of a document and reports the
identified language with its confidence. Low-confidence results fall back
to the configured default language. With --all, every known language is
listed with its score and signal breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().Bool("all", false, "list the scores of every known language")
	detectCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	pages, err := extract.LoadDocument(args[0])
	if err != nil {
		return err
	}
	cleaned := normalize.RemoveRunningHeaders(pages)
	for i := range cleaned {
		cleaned[i] = normalize.Normalize(cleaned[i])
	}
	text := strings.Join(cleaned, "\n")

	id := detect.New(reg, cfg.Language)
	result := id.DetectWithFallback(text, "")
	if !all {
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Fprintf(os.Stdout, "%s %.2f\n", result.Language, result.Confidence)
		return nil
	}

	scores := id.DetectAll(text, 0)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}
	if len(scores) == 0 {
		fmt.Println("Text too short to score.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-6s  %-5s  %-7s  %-6s  %-7s  %s\n",
		"Rank", "Lang", "Conf", "Special", "Common", "Keyword", "Trigram")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 56))
	for i, s := range scores {
		fmt.Fprintf(os.Stdout, "%-4d  %-6s  %.2f   %.2f     %.2f    %.2f     %.2f\n",
			i+1, s.Language, s.Confidence, s.Signals.Special, s.Signals.Common,
			s.Signals.Keyword, s.Signals.Trigram)
	}
	fmt.Fprintf(os.Stdout, "\ndetected %s (%.2f)\n", result.Language, result.Confidence)
	return nil
}
