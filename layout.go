package layerstack

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Layout is a declarative layer tree, usually loaded from a TOML file:
//
//	pane = "overlayPane"
//	strategy = "raster"
//
//	selected_base = "streets"
//
//	[[base]]
//	name = "streets"
//	source = "https://tiles.example/{z}/{x}/{y}.png"
//	attribution = "Example Tiles"
//
//	[[layer]]
//	name = "overlays"
//
//	  [[layer.layer]]
//	  name = "png1"
//	  kind = "image"
//	  [layer.layer.properties]
//	  date = 2005-02-01
//
// Base layers need the raster strategy.
type Layout struct {
	Pane         string      `toml:"pane"`
	Strategy     string      `toml:"strategy"`
	SelectedBase string      `toml:"selected_base"`
	Bases        []LayerSpec `toml:"base"`
	Layers       []LayerSpec `toml:"layer"`
}

// LayerSpec is one node of a [Layout]. A spec with nested layers, or with
// kind "group", is a group; anything else is a leaf whose renderable is
// produced by a [SpecResolver].
type LayerSpec struct {
	Name        string         `toml:"name"`
	Kind        string         `toml:"kind"`
	Source      string         `toml:"source"`
	Attribution string         `toml:"attribution"`
	Properties  map[string]any `toml:"properties"`
	Layers      []LayerSpec    `toml:"layer"`
}

// IsGroup reports whether the spec describes a group.
func (s LayerSpec) IsGroup() bool {
	return len(s.Layers) > 0 || s.Kind == "group"
}

// SpecResolver builds the renderable for a leaf spec. path is the spec's
// dotted path in the layout.
type SpecResolver func(path string, spec LayerSpec) (Renderable, error)

// ErrUnknownStrategy is returned for a layout strategy other than "raster"
// or "vector".
var ErrUnknownStrategy = errors.New("unknown stacking strategy")

// ParseLayout decodes a TOML layout. Unknown keys are an error.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return finishLayout(&l, md)
}

// LoadLayout reads and decodes a TOML layout file.
func LoadLayout(path string) (*Layout, error) {
	var l Layout
	md, err := toml.DecodeFile(path, &l)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return finishLayout(&l, md)
}

func finishLayout(l *Layout, md toml.MetaData) (*Layout, error) {
	if err := checkUndecoded("parse layout", md); err != nil {
		return nil, err
	}
	strategy, err := l.StackingStrategy()
	if err != nil {
		return nil, err
	}
	if len(l.Bases) > 0 {
		if _, ok := strategy.(RasterStrategy); !ok {
			return nil, fmt.Errorf("parse layout: base layers need the raster strategy")
		}
	}
	if l.SelectedBase != "" && !slices.ContainsFunc(l.Bases, func(s LayerSpec) bool {
		return s.Name == l.SelectedBase
	}) {
		return nil, fmt.Errorf("parse layout: selected base %q is not a base layer", l.SelectedBase)
	}
	return l, nil
}

// checkUndecoded rejects keys the decoder did not map onto a field.
func checkUndecoded(op string, md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	return fmt.Errorf("%s: unknown keys: %s", op, strings.Join(keys, ", "))
}

// StackingStrategy returns the strategy named by the layout. An empty name
// selects raster.
func (l *Layout) StackingStrategy() (StackingStrategy, error) {
	switch l.Strategy {
	case "", "raster":
		return RasterStrategy{}, nil
	case "vector":
		return VectorStrategy{}, nil
	default:
		return nil, fmt.Errorf("parse layout: strategy %q: %w", l.Strategy, ErrUnknownStrategy)
	}
}

// Descriptors converts the layout into validated descriptors, calling
// resolve for every leaf.
func (l *Layout) Descriptors(resolve SpecResolver) ([]Descriptor, error) {
	ds, err := specDescriptors(l.Layers, "", resolve)
	if err != nil {
		return nil, err
	}
	if err := validateList(ds, ""); err != nil {
		return nil, err
	}
	return ds, nil
}

func specDescriptors(specs []LayerSpec, parent string, resolve SpecResolver) ([]Descriptor, error) {
	ds := make([]Descriptor, 0, len(specs))
	for _, s := range specs {
		path := joinPath(parent, s.Name)
		d := Descriptor{Name: s.Name}
		if s.Properties != nil {
			d.Properties = s.Properties
		}
		if s.IsGroup() {
			children, err := specDescriptors(s.Layers, path, resolve)
			if err != nil {
				return nil, err
			}
			d.Layers = children
		} else {
			r, err := resolve(path, s)
			if err != nil {
				return nil, fmt.Errorf("resolve layer %q: %w", path, err)
			}
			d.Renderable = r
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// BaseDescriptors converts the layout's base layers into validated
// descriptors, calling resolve for every leaf.
func (l *Layout) BaseDescriptors(resolve SpecResolver) ([]Descriptor, error) {
	ds, err := specDescriptors(l.Bases, "", resolve)
	if err != nil {
		return nil, err
	}
	if err := validateList(ds, ""); err != nil {
		return nil, err
	}
	return ds, nil
}

// Build creates a manager on surface for the layout and installs its base
// layers and layers.
func (l *Layout) Build(surface Surface, resolve SpecResolver) (*Manager, error) {
	strategy, err := l.StackingStrategy()
	if err != nil {
		return nil, err
	}
	bases, err := l.BaseDescriptors(resolve)
	if err != nil {
		return nil, err
	}
	ds, err := l.Descriptors(resolve)
	if err != nil {
		return nil, err
	}
	m := NewManager(surface, strategy, l.Pane)
	for _, d := range bases {
		if err := m.addBase(d, d.Name == l.SelectedBase); err != nil {
			return nil, err
		}
	}
	if err := m.SetLayers(ds); err != nil {
		return nil, err
	}
	return m, nil
}
