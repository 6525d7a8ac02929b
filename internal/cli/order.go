package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/layerstack"
	"github.com/phanxgames/layerstack/ebitensurface"
)

var orderCmd = &cobra.Command{
	Use:   "order <layout.toml>",
	Short: "Print a layout's tree and paint order",
	Long: `Build the layout on the reference surface and print the layer tree and
the resulting paint order of its pane, bottom first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, err := buildLayout(args[0])
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), newReport(m, s))
	},
}

// buildLayout loads a layout file and builds it on a fresh reference surface.
func buildLayout(path string) (*layerstack.Manager, *ebitensurface.Surface, error) {
	l, err := layerstack.LoadLayout(path)
	if err != nil {
		return nil, nil, err
	}
	s := ebitensurface.New()
	m, err := l.Build(s, resolveSpec)
	if err != nil {
		return nil, nil, err
	}
	return m, s, nil
}
