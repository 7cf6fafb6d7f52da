// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deck-outline CLI.
// It reads one JSON or Markdown file and prints the presentation outline
// built by internal/outline.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr so stdout carries only the outline.
var logger = logrus.New()

// rootCmd is the base command for the deck-outline CLI.
var rootCmd = &cobra.Command{
	Use:   "deck-outline",
	Short: "Turn uploaded JSON or Markdown into a presentation outline",
	Long: `deck-outline converts the content of an uploaded file into a heading-structured
outline that drives presentation generation.

JSON transcripts (a "segments" array), structured documents (a "title" field),
and arbitrary JSON are each mapped to a fixed outline template. Markdown that
already has headings is used as-is.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deck-outline.yaml or ~/.config/deck-outline/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
}

func initLogging() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deck-outline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deck-outline"))
		}
	}

	viper.SetEnvPrefix("DECK_OUTLINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	} else if cfgFile != "" {
		logger.WithError(err).Warn("could not read config file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
