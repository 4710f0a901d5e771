// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the req-extract CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the req-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "req-extract",
	Short: "Extract requirement candidates from multilingual specification documents",
	Long: `req-extract reads specification documents page by page, identifies
their language, and pulls out sentences that read as requirements. Each
candidate is scored, given a priority tier and a functional category, and
labeled "<document>-Req#<page>-<n>".

English, French, German, Spanish, and Italian are built in. Language
profiles live in a YAML file that can be edited to tune keywords or add
languages.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./req-extract.yaml or ~/.config/req-extract/req-extract.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log rejected sentences and detection details")
	rootCmd.PersistentFlags().String("profiles", "", "language profile file (default: config/languages.yaml)")

	_ = viper.BindPFlag("profiles.path", rootCmd.PersistentFlags().Lookup("profiles"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("req-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "req-extract"))
		}
	}

	setDefaults(types.DefaultPipelineConfig())

	// REQ_EXTRACT_EXTRACTION_MIN_WORDS sets extraction.min_words.
	viper.SetEnvPrefix("REQ_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key so that AutomaticEnv and
// Unmarshal see it even when no config file sets it.
func setDefaults(d types.PipelineConfig) {
	viper.SetDefault("profiles.path", d.Profiles.Path)
	viper.SetDefault("language.default", d.Language.Default)
	viper.SetDefault("language.min_confidence", d.Language.MinConfidence)
	viper.SetDefault("language.sample_size", d.Language.SampleSize)
	viper.SetDefault("extraction.min_words", d.Extraction.MinWords)
	viper.SetDefault("extraction.max_words", d.Extraction.MaxWords)
	viper.SetDefault("extraction.confidence_threshold", d.Extraction.ConfidenceThreshold)
	viper.SetDefault("extraction.quality_filter", d.Extraction.QualityFilter)
	viper.SetDefault("extraction.keywords", d.Extraction.Keywords)
	viper.SetDefault("extraction.language_mode", d.Extraction.LanguageMode)
	viper.SetDefault("extraction.input_dir", d.Extraction.InputDir)
	viper.SetDefault("extraction.output_dir", d.Extraction.OutputDir)
}

// loadConfig returns the merged configuration from defaults, config file,
// environment, and bound flags.
func loadConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

// newRegistry opens the profile store named in cfg and applies the
// configured default language.
func newRegistry(cfg types.PipelineConfig) (*profile.Registry, error) {
	reg := profile.NewRegistry(cfg.Profiles.Path)
	if cfg.Language.Default != "" {
		if err := reg.SetDefault(cfg.Language.Default); err != nil {
			return nil, fmt.Errorf("language.default: %w", err)
		}
	}
	return reg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
