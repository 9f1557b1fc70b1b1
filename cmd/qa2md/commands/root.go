// Package commands implements the CLI commands for qa2md.
package commands

import (
	"os"

	"github.com/irahardianto/qa2md/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagJSON    bool
	flagVerbose bool
	flagNoColor bool
	flagConfig  string
)

// rootCmd is the base command for the qa2md CLI.
var rootCmd = &cobra.Command{
	Use:   "qa2md",
	Short: "Extract Q&A pairs from office documents into Markdown",
	Long: `qa2md turns folders of Q&A spreadsheets into a single Markdown knowledge file.

An LLM picks the question and answer columns of each sheet and translates
non-Japanese text into Japanese. Every record keeps the workbook and sheet it
came from, ready for ingestion by a retrieval pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l := logger.New(os.Stderr, flagVerbose, flagJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output the run summary as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default ~/.config/qa2md/config.yaml)")
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return rootCmd.Execute()
}
