// Package extract runs the requirement extraction pipeline over documents.
//
// A Pipeline composes language identification, normalization, sentence
// segmentation, scoring, and classification for the pages of one document.
// ExtractAll applies it to every document in a directory and writes one YAML
// result per document.
package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/req-extract/pkg/types"
)

// resultSuffix is appended to the document name to form the result file name.
const resultSuffix = "-requirements.yaml"

// documentExts are the file extensions ExtractAll picks up.
var documentExts = map[string]bool{".txt": true, ".md": true}

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted  int
	Skipped    int
	Failed     int
	Candidates int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any documents failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractAll processes every .txt and .md document in cfg.InputDir and writes
// "<doc>-requirements.yaml" results to cfg.OutputDir. Documents whose result
// is newer than the document are skipped. Cancellation stops the batch
// between documents and returns ctx.Err().
func ExtractAll(ctx context.Context, p *Pipeline, cfg types.ExtractionConfig, w io.Writer) (BatchSummary, error) {
	if _, err := withDefaults(cfg); err != nil {
		return BatchSummary{}, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	var summary BatchSummary

	for _, entry := range entries {
		if entry.IsDir() || !documentExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		docPath := filepath.Join(cfg.InputDir, entry.Name())
		name := DocumentName(docPath)
		outPath := filepath.Join(cfg.OutputDir, name+resultSuffix)

		changed, err := hasChanged(docPath, outPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		fmt.Fprintf(w, "extracting %s\n", name)

		result, err := p.ExtractFile(ctx, docPath, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			continue
		}

		if err := writeResult(outPath, result); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", name, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "extracted %s (%d candidates, %s %.2f)\n",
			name, len(result.Candidates), result.Detection.Language, result.Detection.Confidence)
		summary.Extracted++
		summary.Candidates += len(result.Candidates)
	}

	return summary, nil
}

// ExtractFile loads the document at path and runs the pipeline over its pages.
// The document name used in labels is the file name without extension.
func (p *Pipeline) ExtractFile(ctx context.Context, path string, cfg types.ExtractionConfig) (*types.ExtractionResult, error) {
	pages, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, DocumentName(path), pages, cfg)
}

// hasChanged reports whether the document is newer than the result file.
// Returns true if the result does not exist or the document is more recent.
func hasChanged(docPath, outPath string) (bool, error) {
	docInfo, err := os.Stat(docPath)
	if err != nil {
		return false, fmt.Errorf("stat document %s: %w", docPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat result %s: %w", outPath, err)
	}

	return docInfo.ModTime().After(outInfo.ModTime()), nil
}

// writeResult marshals the ExtractionResult to a YAML file.
func writeResult(path string, result *types.ExtractionResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResult loads a result file written by ExtractAll.
func ReadResult(path string) (*types.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result %s: %w", path, err)
	}
	var result types.ExtractionResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result %s: %w", path, err)
	}
	return &result, nil
}
