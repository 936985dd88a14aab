package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logger"
)

var (
	// Used for flags.
	cfgFile string

	// v holds flag bindings for the current invocation.
	v = viper.New()

	// cfg and log are set by loadConfig before a subcommand runs.
	cfg *config.Config
	log = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:               "resume_matcher",
		Short:             "Extract résumé profiles and rank job postings against them",
		Long:              "resume_matcher turns plain-text résumés into structured profiles and scores them against job postings with explainable, weighted match results.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	mustBind("debug", rootCmd.PersistentFlags().Lookup("debug"))
	mustBind("json", rootCmd.PersistentFlags().Lookup("json"))
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	l, err := logger.New(v.GetBool("json"), v.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	log = l.With(zap.String("command", cmd.Name()))

	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug("configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("ner_provider", cfg.NER.Provider),
		zap.Int("workers", cfg.Workers))
	return nil
}
