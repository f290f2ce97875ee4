// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the moment-search CLI: a web page and a
// terminal front end for a video moment search backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/moment-search/internal/config"
	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig is the effective configuration, loaded before any subcommand runs.
var appConfig types.AppConfig

// configUsed and configErr record the outcome of initConfig.
var (
	configUsed string
	configErr  error
)

// rootCmd is the base command for the moment-search CLI.
var rootCmd = &cobra.Command{
	Use:   "moment-search",
	Short: "Find the moments in videos that answer a question",
	Long: `moment-search sends a natural-language question to a video moment search
backend and shows the matching moments: each one with an embedded player
cued to the moment, a confidence score, an explanation of why it matches,
and the transcript snippet.

Run "moment-search serve" for the web page, or "moment-search search" to
query from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		if configUsed != "" {
			logger.Debug("using config file %s", configUsed)
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./moment-search.yaml or ~/.config/moment-search/moment-search.yaml)")
	rootCmd.PersistentFlags().String("log", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("backend", "", "search endpoint URL (default http://localhost:8080/search)")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log"))
	viper.BindPFlag("backend.url", rootCmd.PersistentFlags().Lookup("backend"))
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	config.Defaults(viper.GetViper(), version)
	config.Setup(viper.GetViper(), cfgFile)

	configUsed, configErr = config.Read(viper.GetViper())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
