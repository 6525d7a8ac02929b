package layerstack

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// scriptStep is a single action in an operation script.
type scriptStep struct {
	Action      string      `toml:"action"`
	Name        string      `toml:"name"`
	Parent      string      `toml:"parent"`
	Index       *int        `toml:"index"`
	From        int         `toml:"from"`
	To          int         `toml:"to"`
	Value       *float64    `toml:"value"`
	Opacity     *float64    `toml:"opacity"`
	FillOpacity *float64    `toml:"fill_opacity"`
	Weight      float64     `toml:"weight"`
	Deep        bool        `toml:"deep"`
	Reuse       *bool       `toml:"reuse"`
	Selected    *bool       `toml:"selected"`
	Layer       *LayerSpec  `toml:"layer"`
	Layers      []LayerSpec `toml:"layers"`
}

// scriptFile is the top-level TOML structure for a script.
type scriptFile struct {
	Steps []scriptStep `toml:"step"`
}

// Script replays a fixed sequence of manager calls, for reproducing a
// layer arrangement or driving a demo:
//
//	[[step]]
//	action = "move"
//	parent = "raster3"
//	from = 0
//	to = 2
//
//	[[step]]
//	action = "add"
//	[step.layer]
//	name = "png4"
//	kind = "image"
type Script struct {
	steps []scriptStep
}

var (
	// ErrUnknownAction is returned for a script step with an unsupported action.
	ErrUnknownAction = errors.New("unknown script action")
	// ErrWrongFamily is returned when a step's action does not apply to the
	// manager's stacking strategy, such as style on a raster manager.
	ErrWrongFamily = errors.New("action not supported by the manager's stacking strategy")
)

type actionFamily uint8

const (
	familyAny actionFamily = iota
	familyRaster
	familyVector
)

var scriptActions = map[string]actionFamily{
	"add": familyAny, "remove": familyAny, "reset": familyAny, "replace": familyAny,
	"set-layers": familyAny, "move": familyAny, "front": familyAny, "back": familyAny,
	"sort": familyAny,
	"opacity": familyRaster, "hide": familyRaster, "show": familyRaster,
	"add-base": familyRaster, "select-base": familyRaster, "remove-base": familyRaster,
	"style": familyVector,
}

// supports reports whether a manager with strategy s can run actions of f.
func (f actionFamily) supports(s StackingStrategy) bool {
	switch f {
	case familyRaster:
		_, ok := s.(RasterStrategy)
		return ok
	case familyVector:
		_, ok := s.(VectorStrategy)
		return ok
	default:
		return true
	}
}

// ParseScript decodes a TOML operation script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := checkUndecoded("parse script", md); err != nil {
		return nil, err
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse script: step %d: %q: %w", i+1, st.Action, ErrUnknownAction)
		}
		switch st.Action {
		case "add", "replace", "add-base":
			if st.Layer == nil {
				return nil, fmt.Errorf("parse script: step %d: %s needs a layer", i+1, st.Action)
			}
		case "opacity":
			if st.Value == nil {
				return nil, fmt.Errorf("parse script: step %d: opacity needs a value", i+1)
			}
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and decodes a TOML operation script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes every step against m in order. resolve builds renderables for
// layers introduced by add, replace, set-layers and add-base steps. Opacity,
// visibility and base steps need a raster manager and style steps a vector
// manager; a step for the other family fails with [ErrWrongFamily]. The
// first error stops the run.
func (s *Script) Run(m *Manager, resolve SpecResolver) error {
	for i, st := range s.steps {
		if err := s.step(m, st, resolve); err != nil {
			return fmt.Errorf("script step %d (%s): %w", i+1, st.Action, err)
		}
	}
	return nil
}

func (s *Script) step(m *Manager, st scriptStep, resolve SpecResolver) error {
	if !scriptActions[st.Action].supports(m.Strategy()) {
		return fmt.Errorf("%s on %v manager: %w", st.Action, m.Strategy(), ErrWrongFamily)
	}
	opts := []Option{InGroup(st.Parent)}
	switch st.Action {
	case "add":
		d, err := specDescriptor(*st.Layer, st.Parent, resolve)
		if err != nil {
			return err
		}
		if st.Index != nil {
			opts = append(opts, AtIndex(*st.Index))
		}
		return m.Add(d, opts...)
	case "replace":
		d, err := specDescriptor(*st.Layer, st.Parent, resolve)
		if err != nil {
			return err
		}
		return m.ReplaceLayer(d, opts...)
	case "set-layers":
		ds, err := specDescriptors(st.Layers, st.Parent, resolve)
		if err != nil {
			return err
		}
		if st.Reuse != nil && !*st.Reuse {
			opts = append(opts, NoReuse())
		}
		return m.SetLayers(ds, opts...)
	case "remove":
		m.Remove(st.Name, opts...)
	case "reset":
		m.Reset(opts...)
	case "move":
		m.Move(st.From, st.To, opts...)
	case "front":
		m.BringToFront(st.Name, opts...)
	case "back":
		m.BringToBack(st.Name, opts...)
	case "sort":
		if st.Deep {
			opts = append(opts, Deep())
		}
		m.Sort(SortByName, opts...)
	case "opacity":
		m.setOpacity(st.Name, *st.Value, opts)
	case "hide":
		m.setHidden(st.Name, true, opts)
	case "show":
		m.setHidden(st.Name, false, opts)
	case "add-base":
		d, err := specDescriptor(*st.Layer, "", resolve)
		if err != nil {
			return err
		}
		return m.addBase(d, st.Selected == nil || *st.Selected)
	case "select-base":
		m.selectBase(st.Name)
	case "remove-base":
		m.removeBase(st.Name)
	case "style":
		m.setStyle(st.Name, Style{Weight: st.Weight, Opacity: st.Opacity, FillOpacity: st.FillOpacity}, opts)
	}
	return nil
}

func specDescriptor(spec LayerSpec, parent string, resolve SpecResolver) (Descriptor, error) {
	ds, err := specDescriptors([]LayerSpec{spec}, parent, resolve)
	if err != nil {
		return Descriptor{}, err
	}
	return ds[0], nil
}
