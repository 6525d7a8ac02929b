package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/layerstack"
)

var runCmd = &cobra.Command{
	Use:   "run <layout.toml> <script.toml>",
	Short: "Replay a script against a layout",
	Long: `Build the layout on the reference surface, run every script step in
order and print the final tree and paint order. The first construction
error stops the run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, err := buildLayout(args[0])
		if err != nil {
			return err
		}
		script, err := layerstack.LoadScript(args[1])
		if err != nil {
			return err
		}
		if err := script.Run(m, resolveSpec); err != nil {
			return err
		}
		r := newReport(m, s)
		r.Steps = script.Len()
		return printReport(cmd.OutOrStdout(), r)
	},
}
