package ebitensurface

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Primitive is anything a pane can draw.
type Primitive interface {
	Label() string
	Attached() bool
	draw(dst *ebiten.Image)
}

// Pane is one named paint list. Images are ordered by z-index; circles keep
// their native list order and share a single depth set by PinVectors.
type Pane struct {
	name    string
	surface *Surface

	rasters []*Image  // attach order, the tiebreak for equal z
	vectors []*Circle // paint order, bottom first

	vectorZ int
	pinned  bool
}

// Name implements [layerstack.Pane].
func (p *Pane) Name() string { return p.name }

// PinVectors implements [layerstack.VectorPinner]. Circles are drawn above
// every image whose z-index is below z.
func (p *Pane) PinVectors(z int) {
	p.vectorZ = z
	p.pinned = true
}

// PaintOrder returns the pane's primitives bottom first.
func (p *Pane) PaintOrder() []Primitive {
	rasters := slices.Clone(p.rasters)
	slices.SortStableFunc(rasters, func(a, b *Image) int { return a.z - b.z })

	out := make([]Primitive, 0, len(rasters)+len(p.vectors))
	i := 0
	if p.pinned {
		for ; i < len(rasters) && rasters[i].z < p.vectorZ; i++ {
			out = append(out, rasters[i])
		}
	} else {
		for ; i < len(rasters); i++ {
			out = append(out, rasters[i])
		}
	}
	for _, v := range p.vectors {
		out = append(out, v)
	}
	for ; i < len(rasters); i++ {
		out = append(out, rasters[i])
	}
	return out
}

// Labels returns the labels of PaintOrder.
func (p *Pane) Labels() []string {
	order := p.PaintOrder()
	out := make([]string, len(order))
	for i, prim := range order {
		out[i] = prim.Label()
	}
	return out
}

// Len returns the number of attached primitives.
func (p *Pane) Len() int { return len(p.rasters) + len(p.vectors) }

// Draw renders the pane's primitives onto dst in paint order.
func (p *Pane) Draw(dst *ebiten.Image) {
	for _, prim := range p.PaintOrder() {
		prim.draw(dst)
	}
}

func (p *Pane) bringToFront(c *Circle) {
	if i := slices.Index(p.vectors, c); i >= 0 {
		p.vectors = append(slices.Delete(p.vectors, i, i+1), c)
	}
}

func (p *Pane) removeRaster(img *Image) {
	if i := slices.Index(p.rasters, img); i >= 0 {
		p.rasters = slices.Delete(p.rasters, i, i+1)
	}
}

func (p *Pane) removeVector(c *Circle) {
	if i := slices.Index(p.vectors, c); i >= 0 {
		p.vectors = slices.Delete(p.vectors, i, i+1)
	}
}
