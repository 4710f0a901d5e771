package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage language profiles",
	Long: `Profiles controls the YAML language profile store. Each profile holds
the keyword sets, priority tiers, category keywords, and patterns used for
one language.`,
}

var profilesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in language profiles to the profile file",
	RunE:  runProfilesInit,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known languages",
	RunE:  runProfilesList,
}

func init() {
	profilesInitCmd.Flags().Bool("force", false, "overwrite an existing profile file")
	profilesListCmd.Flags().Bool("json", false, "output full profiles as JSON")

	profilesCmd.AddCommand(profilesInitCmd)
	profilesCmd.AddCommand(profilesListCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Profiles.Path

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := profile.WriteDefaults(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	return nil
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	codes := reg.Codes()
	profiles := make([]types.LanguageProfile, 0, len(codes))
	for _, code := range codes {
		p, err := reg.Get(code)
		if err != nil {
			continue
		}
		profiles = append(profiles, p)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-8s  %s\n", "Code", "Name", "Keywords", "Model")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for _, p := range profiles {
		code := p.Code
		if code == reg.Default() {
			code += "*"
		}
		fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-8d  %s\n",
			code, p.Name, len(p.RequirementKeywords), p.SegmentationModel)
	}
	fmt.Fprintf(os.Stdout, "\n%d languages (* default)\n", len(profiles))
	return nil
}
