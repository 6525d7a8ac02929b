// Package ebitensurface is a reference [layerstack.Surface] backed by
// Ebitengine. It keeps one paint list per pane and draws raster images by
// z-index and vector circles in native paint order.
package ebitensurface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/layerstack"
)

// Surface owns an ordered set of panes. Panes are drawn in creation order.
type Surface struct {
	panes  []*Pane
	byName map[string]*Pane
}

// New returns an empty surface.
func New() *Surface {
	return &Surface{byName: make(map[string]*Pane)}
}

// Pane implements [layerstack.Surface]. It returns nil for unknown names.
func (s *Surface) Pane(name string) layerstack.Pane {
	if p, ok := s.byName[name]; ok {
		return p
	}
	// Return an untyped nil so callers' nil checks hold.
	return nil
}

// CreatePane implements [layerstack.Surface]. Creating an existing name
// returns the existing pane.
func (s *Surface) CreatePane(name string) layerstack.Pane {
	if p, ok := s.byName[name]; ok {
		return p
	}
	p := &Pane{name: name, surface: s}
	s.panes = append(s.panes, p)
	s.byName[name] = p
	return p
}

// Lookup returns the concrete pane with the given name, or nil.
func (s *Surface) Lookup(name string) *Pane {
	return s.byName[name]
}

// Panes returns the panes in creation order. The returned slice MUST NOT be
// mutated by the caller.
func (s *Surface) Panes() []*Pane {
	return s.panes
}

// AddLayer implements [layerstack.Surface]. Composites are expanded; each
// primitive moves to pane if it was attached elsewhere. Renderables this
// surface cannot draw are skipped with a warning. Panics if pane was not
// created by this surface.
func (s *Surface) AddLayer(r layerstack.Renderable, pane layerstack.Pane) {
	p, ok := pane.(*Pane)
	if !ok || p.surface != s {
		panic("ebitensurface: pane does not belong to this surface")
	}
	layerstack.Walk(r, func(prim layerstack.Renderable) {
		switch v := prim.(type) {
		case *Image:
			if v.pane != nil {
				v.pane.removeRaster(v)
			}
			v.pane = p
			p.rasters = append(p.rasters, v)
		case *Circle:
			if v.pane != nil {
				v.pane.removeVector(v)
			}
			v.pane = p
			p.vectors = append(p.vectors, v)
		default:
			layerstack.Logger().Warn("ebitensurface: unsupported renderable",
				"type", fmt.Sprintf("%T", prim), "pane", p.name)
		}
	})
}

// RemoveLayer implements [layerstack.Surface]. Primitives that are not
// attached are ignored.
func (s *Surface) RemoveLayer(r layerstack.Renderable) {
	layerstack.Walk(r, func(prim layerstack.Renderable) {
		switch v := prim.(type) {
		case *Image:
			if v.pane != nil {
				v.pane.removeRaster(v)
				v.pane = nil
			}
		case *Circle:
			if v.pane != nil {
				v.pane.removeVector(v)
				v.pane = nil
			}
		}
	})
}

// Draw renders every pane onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	for _, p := range s.panes {
		p.Draw(dst)
	}
}
