package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/layerstack"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool

	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for layerstack.
var rootCmd = &cobra.Command{
	Use:     "layerstack",
	Version: "dev",
	Short:   "Inspect and replay layer stacking orders",
	Long: `layerstack builds a layer tree from a TOML layout on the reference
Ebitengine surface and reports the resulting paint order.

Scripts replay manager calls (add, remove, move, sort, restyle) against a
layout so a stacking problem can be reproduced outside the application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			layerstack.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		} else {
			layerstack.SetLogger(nil)
		}
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log restacks and misaddressed calls to stderr")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "stacking",
		Title: sectionTitleColor.Sprint("Stacking:"),
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the layerstack CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	orderCmd.GroupID = "stacking"
	runCmd.GroupID = "stacking"
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(runCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

