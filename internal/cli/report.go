package cli

import (
	"fmt"

	"github.com/phanxgames/layerstack"
	"github.com/phanxgames/layerstack/ebitensurface"
)

// layerReport is one node of the printed tree.
type layerReport struct {
	Name    string        `json:"name"`
	Path    string        `json:"path"`
	Type    string        `json:"type"`
	Opacity float64       `json:"opacity"`
	Hidden  bool          `json:"hidden,omitempty"`
	Layers  []layerReport `json:"layers,omitempty"`
}

// report is the result of building (and optionally scripting) a layout.
type report struct {
	Pane         string        `json:"pane"`
	Strategy     string        `json:"strategy"`
	Steps        int           `json:"steps,omitempty"`
	Bases        []layerReport `json:"bases,omitempty"`
	SelectedBase string        `json:"selected_base,omitempty"`
	Layers       []layerReport `json:"layers"`
	PaintOrder   []string      `json:"paint_order"`
	Attributions []string      `json:"attributions,omitempty"`
}

func newReport(m *layerstack.Manager, s *ebitensurface.Surface) report {
	r := report{
		Pane:         m.Pane().Name(),
		Strategy:     fmt.Sprint(m.Strategy()),
		Bases:        nodeReports(m.Bases()),
		Layers:       nodeReports(m.Root().Children()),
		PaintOrder:   []string{},
		Attributions: m.Attributions(),
	}
	if sel := m.SelectedBase(); sel != nil {
		r.SelectedBase = sel.Name()
	}
	if p := s.Lookup(m.Pane().Name()); p != nil {
		r.PaintOrder = p.Labels()
	}
	return r
}

func nodeReports(nodes []*layerstack.Node) []layerReport {
	out := make([]layerReport, 0, len(nodes))
	for _, n := range nodes {
		lr := layerReport{
			Name:    n.Name(),
			Path:    n.Path(),
			Type:    n.Type().String(),
			Opacity: n.Opacity(),
			Hidden:  n.Hidden(),
		}
		if n.IsGroup() {
			lr.Layers = nodeReports(n.Children())
		}
		out = append(out, lr)
	}
	return out
}
