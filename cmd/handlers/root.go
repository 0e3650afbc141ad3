/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reelcraft/internal/config"
	"reelcraft/internal/logger"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reelcraft",
		Short: "ReelCraft generates short-form video marketing content with AI.",
		Long: `ReelCraft is a content generation toolkit for affiliate video creators.

It generates product review scripts, hooks, review angles, hashtags,
content plans, and market research through the Gemini API, and can turn
finished scripts into storyboards and short videos. Generated scripts are
kept in a local history so feedback and performance numbers can shape
future generations.

Without a Gemini API key the text commands run in offline mode and print
placeholder output.`,
	}

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.reelcraft.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewScriptCmd())
	rootCmd.AddCommand(NewLinkScriptCmd())
	rootCmd.AddCommand(NewHooksCmd())
	rootCmd.AddCommand(NewAnglesCmd())
	rootCmd.AddCommand(NewHashtagsCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewResearchCmd())
	rootCmd.AddCommand(NewVideoCmd())
	rootCmd.AddCommand(NewStoryboardCmd())
	rootCmd.AddCommand(NewEditImageCmd())
	rootCmd.AddCommand(NewBrandCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewInsightsCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load configuration using the centralized config module
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging := config.GetLogging()
	logger.Configure(logging.Level, logging.Format)

	// Show which config file is being used (if any)
	if config.Get().App.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", config.Get().App.ConfigFile)
	}
}
