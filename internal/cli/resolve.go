package cli

import (
	"fmt"

	"github.com/phanxgames/layerstack"
	"github.com/phanxgames/layerstack/ebitensurface"
)

// resolveSpec builds a reference-surface primitive for a leaf spec. Images
// carry no bitmap; the CLI only reports order.
//
//	kind = "image" (default) | "tile"   raster image
//	kind = "circle"                     vector circle; properties x, y, radius
func resolveSpec(path string, spec layerstack.LayerSpec) (layerstack.Renderable, error) {
	switch spec.Kind {
	case "", "image", "tile":
		return ebitensurface.NewImage(spec.Name, nil).WithAttribution(spec.Attribution), nil
	case "circle":
		x, err := number(spec.Properties, "x", 0)
		if err != nil {
			return nil, err
		}
		y, err := number(spec.Properties, "y", 0)
		if err != nil {
			return nil, err
		}
		r, err := number(spec.Properties, "radius", 10)
		if err != nil {
			return nil, err
		}
		return ebitensurface.NewCircle(spec.Name, x, y, r), nil
	default:
		return nil, fmt.Errorf("unknown layer kind %q", spec.Kind)
	}
}

// number reads a numeric property, accepting TOML integers and floats.
func number(props map[string]any, key string, def float64) (float64, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("property %q: want a number, got %T", key, v)
	}
}
