package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/skills"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show or validate the skill taxonomy",
	Long:  "Print the skill taxonomy by category, or look up one skill with --skill. With --file the document is validated and merged over the built-in taxonomy first.",
	RunE:  runTaxonomy,
}

var (
	taxonomyFile     string
	taxonomyCategory string
	taxonomySkill    string
)

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyFile, "file", "f", "", "Custom taxonomy JSON to validate and merge")
	taxonomyCmd.Flags().StringVarP(&taxonomyCategory, "category", "c", "", "Only list skills in this category")
	taxonomyCmd.Flags().StringVarP(&taxonomySkill, "skill", "s", "", "Show the canonical name, category and aliases of one skill")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	if taxonomyFile != "" {
		cfg.TaxonomyFile = taxonomyFile
	}
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.TaxonomyFile != "" {
		_, _ = fmt.Fprintf(out, "Taxonomy valid: %s\n", cfg.TaxonomyFile)
	}

	if taxonomySkill != "" {
		name, ok := tax.Canonical(taxonomySkill)
		if !ok {
			return fmt.Errorf("unknown skill %q", taxonomySkill)
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", name, tax.Category(name), strings.Join(aliases(tax, name), ", "))
		return nil
	}

	categories := tax.Categories()
	if taxonomyCategory != "" {
		names := tax.InCategory(taxonomyCategory)
		if len(names) == 0 {
			return fmt.Errorf("unknown category %q (have: %s)", taxonomyCategory, strings.Join(categories, ", "))
		}
		for _, name := range names {
			_, _ = fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(aliases(tax, name), ", "))
		}
		return nil
	}

	_, _ = fmt.Fprintf(out, "Version: %s\n", tax.Version())
	_, _ = fmt.Fprintf(out, "Skills: %d, soft skills: %d\n", len(tax.Entries()), len(tax.SoftEntries()))
	for _, c := range categories {
		_, _ = fmt.Fprintf(out, "%-20s %d\n", c, len(tax.InCategory(c)))
	}
	return nil
}

// aliases returns the variants of name other than the name itself.
func aliases(tax *skills.Taxonomy, name string) []string {
	var out []string
	for _, v := range tax.Variants(name) {
		if !strings.EqualFold(v, name) {
			out = append(out, v)
		}
	}
	return out
}
