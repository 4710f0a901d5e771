package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/req-extract/internal/extract"
	"github.com/pdiddy/req-extract/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [documents...]",
	Short: "Extract requirement candidates from documents",
	Long: `Extract splits each document into pages (form feeds or <!-- page N -->
markers), detects the document language, and prints the requirement
candidates found on every page.

With --batch, every .txt and .md document in the input directory is
processed and one <doc>-requirements.yaml result is written per document
to the output directory. Documents whose result is newer are skipped.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.Float64("threshold", 0.5, "minimum candidate confidence in [0, 1]")
	f.String("language", types.LanguageAuto, `language code to force, or "auto"`)
	f.StringSlice("keywords", nil, "requirement keywords overriding the language profile")
	f.Int("min-words", 5, "minimum sentence length in words")
	f.Int("max-words", 100, "maximum sentence length in words")
	f.Bool("quality-filter", false, "drop sentences that fail the quality check")
	f.String("input-dir", "documents", "directory of documents for --batch")
	f.String("output-dir", "requirements", "directory for --batch results")
	f.Bool("batch", false, "process all changed documents in input-dir")
	f.Bool("json", false, "output as JSON")

	for flag, key := range map[string]string{
		"threshold":      "extraction.confidence_threshold",
		"language":       "extraction.language_mode",
		"keywords":       "extraction.keywords",
		"min-words":      "extraction.min_words",
		"max-words":      "extraction.max_words",
		"quality-filter": "extraction.quality_filter",
		"input-dir":      "extraction.input_dir",
		"output-dir":     "extraction.output_dir",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !batch && len(args) == 0 {
		return fmt.Errorf("specify documents or use --batch")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	p := extract.New(reg, cfg.Language, nil)
	ctx := cmd.Context()

	if batch {
		summary, err := extract.ExtractAll(ctx, p, cfg.Extraction, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\n%d extracted, %d skipped, %d failed, %d candidates\n",
			summary.Extracted, summary.Skipped, summary.Failed, summary.Candidates)
		if summary.HasFailures() {
			return fmt.Errorf("%d documents failed", summary.Failed)
		}
		return nil
	}

	results := make([]*types.ExtractionResult, 0, len(args))
	for _, path := range args {
		res, err := p.ExtractFile(ctx, path, cfg.Extraction)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	return formatExtractOutput(results, jsonOutput)
}

func formatExtractOutput(results []*types.ExtractionResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	total := 0
	for _, res := range results {
		fmt.Fprintf(os.Stdout, "%s: %d pages, language %s (%.2f)\n\n",
			res.Document, res.Pages, res.Detection.Language, res.Detection.Confidence)

		if len(res.Candidates) == 0 {
			fmt.Println("No requirements found.")
			fmt.Println()
			continue
		}

		fmt.Fprintf(os.Stdout, "%-20s  %-4s  %-8s  %-13s  %-5s  %s\n",
			"Label", "Page", "Priority", "Category", "Conf", "Description")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

		for _, c := range res.Candidates {
			label := truncate(c.Label, 20)
			desc := truncate(c.Description(), 50)
			fmt.Fprintf(os.Stdout, "%-20s  %-4d  %-8s  %-13s  %.2f   %s\n",
				label, c.Page, c.Priority, c.Category, c.Confidence, desc)
		}
		fmt.Println()
		total += len(res.Candidates)
	}

	fmt.Fprintf(os.Stdout, "%d candidates\n", total)
	return nil
}

// truncate shortens s to n runes, ending with "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
