package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/layerstack"
)

// --- Image ---

// Image is a raster primitive: a bitmap drawn at a fixed screen offset,
// ordered by z-index.
type Image struct {
	Img    *ebiten.Image // nil draws nothing
	X, Y   float64
	label  string
	credit string

	z       int
	opacity float64
	pane    *Pane
}

// NewImage returns an opaque image primitive. img may be nil.
func NewImage(label string, img *ebiten.Image) *Image {
	return &Image{Img: img, label: label, opacity: 1}
}

// WithAttribution sets the image's credit line and returns it.
func (i *Image) WithAttribution(credit string) *Image {
	i.credit = credit
	return i
}

// Label returns the image's label.
func (i *Image) Label() string { return i.label }

// Attached reports whether the image is in a pane.
func (i *Image) Attached() bool { return i.pane != nil }

// SetZIndex implements [layerstack.ZIndexer].
func (i *Image) SetZIndex(z int) { i.z = z }

// ZIndex returns the last z-index assigned.
func (i *Image) ZIndex() int { return i.z }

// SetOpacity implements [layerstack.OpacitySetter].
func (i *Image) SetOpacity(opacity float64) { i.opacity = opacity }

// Opacity returns the current opacity.
func (i *Image) Opacity() float64 { return i.opacity }

// Attribution implements [layerstack.Attributor].
func (i *Image) Attribution() string { return i.credit }

func (i *Image) draw(dst *ebiten.Image) {
	if i.Img == nil || i.opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(i.X, i.Y)
	op.ColorScale.ScaleAlpha(float32(i.opacity))
	dst.DrawImage(i.Img, op)
}

// --- Circle ---

// DefaultCircleStyle is the style a new circle starts with.
var DefaultCircleStyle = layerstack.Style{
	Color:       color.RGBA{R: 0x33, G: 0x88, B: 0xff, A: 0xff},
	FillColor:   color.RGBA{R: 0x33, G: 0x88, B: 0xff, A: 0xff},
	Weight:      3,
	Opacity:     layerstack.Alpha(1),
	FillOpacity: layerstack.Alpha(0.2),
}

// Circle is a vector primitive: a stroked and filled circle in screen
// space. It has no depth of its own; BringToFront moves it to the top of
// its pane's vector paint list.
type Circle struct {
	X, Y, Radius float64
	label        string

	style layerstack.Style
	pane  *Pane
}

// NewCircle returns a circle with [DefaultCircleStyle].
func NewCircle(label string, x, y, radius float64) *Circle {
	return &Circle{X: x, Y: y, Radius: radius, label: label, style: DefaultCircleStyle}
}

// Label returns the circle's label.
func (c *Circle) Label() string { return c.label }

// Attached reports whether the circle is in a pane.
func (c *Circle) Attached() bool { return c.pane != nil }

// BringToFront implements [layerstack.FrontBringer]. Detached circles
// ignore it.
func (c *Circle) BringToFront() {
	if c.pane != nil {
		c.pane.bringToFront(c)
	}
}

// SetStyle implements [layerstack.Styler].
func (c *Circle) SetStyle(s layerstack.Style) { c.style = c.style.Merge(s) }

// Style returns the current style.
func (c *Circle) Style() layerstack.Style { return c.style }

func (c *Circle) draw(dst *ebiten.Image) {
	cx, cy, r := float32(c.X), float32(c.Y), float32(c.Radius)
	if fill := scaleAlpha(c.style.FillColor, c.style.FillOpacity); fill != nil {
		vector.DrawFilledCircle(dst, cx, cy, r, fill, true)
	}
	if c.style.Weight > 0 {
		if stroke := scaleAlpha(c.style.Color, c.style.Opacity); stroke != nil {
			vector.StrokeCircle(dst, cx, cy, r, float32(c.style.Weight), stroke, true)
		}
	}
}

// scaleAlpha multiplies c by the optional alpha. It returns nil when there
// is nothing to draw.
func scaleAlpha(c color.Color, alpha *float64) color.Color {
	if c == nil {
		return nil
	}
	a := 1.0
	if alpha != nil {
		a = *alpha
	}
	if a <= 0 {
		return nil
	}
	if a > 1 {
		a = 1
	}
	r, g, b, al := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}
