package layerstack

import (
	"slices"
	"testing"
)

// --- Recording surface ---

type fakePane struct {
	name     string
	pinned   int
	pinCalls int
}

func (p *fakePane) Name() string     { return p.name }
func (p *fakePane) PinVectors(z int) { p.pinned = z; p.pinCalls++ }

// fakeSurface records attach/detach calls and keeps a paint list that
// vector primitives reorder through BringToFront.
type fakeSurface struct {
	panes    map[string]*fakePane
	created  int
	attached map[Renderable]Pane
	paint    []Renderable
	adds     int
	removes  int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		panes:    make(map[string]*fakePane),
		attached: make(map[Renderable]Pane),
	}
}

func (s *fakeSurface) Pane(name string) Pane {
	if p, ok := s.panes[name]; ok {
		return p
	}
	return nil
}

func (s *fakeSurface) CreatePane(name string) Pane {
	if p, ok := s.panes[name]; ok {
		return p
	}
	p := &fakePane{name: name}
	s.panes[name] = p
	s.created++
	return p
}

func (s *fakeSurface) AddLayer(r Renderable, pane Pane) {
	s.adds++
	Walk(r, func(p Renderable) {
		if v, ok := p.(*fakeVector); ok {
			v.surface = s
		}
		s.attached[p] = pane
		s.paint = append(s.paint, p)
	})
}

func (s *fakeSurface) RemoveLayer(r Renderable) {
	s.removes++
	Walk(r, func(p Renderable) {
		delete(s.attached, p)
		if i := slices.Index(s.paint, p); i >= 0 {
			s.paint = slices.Delete(s.paint, i, i+1)
		}
	})
}

func (s *fakeSurface) isAttached(r Renderable) bool {
	_, ok := s.attached[r]
	return ok
}

func (s *fakeSurface) toFront(r Renderable) {
	if i := slices.Index(s.paint, r); i >= 0 {
		s.paint = append(slices.Delete(s.paint, i, i+1), r)
	}
}

// vectorOrder returns the labels of attached vector primitives in paint order.
func (s *fakeSurface) vectorOrder() []string {
	var out []string
	for _, r := range s.paint {
		if v, ok := r.(*fakeVector); ok {
			out = append(out, v.label)
		}
	}
	return out
}

// --- Fake primitives ---

// fakeRaster orders by z-index and has opacity.
type fakeRaster struct {
	label       string
	z           int
	zCalls      int
	opacity     float64
	attribution string
}

func newRaster(label string) *fakeRaster {
	return &fakeRaster{label: label, z: -1, opacity: 1}
}

func (r *fakeRaster) SetZIndex(z int)      { r.z = z; r.zCalls++ }
func (r *fakeRaster) SetOpacity(o float64) { r.opacity = o }
func (r *fakeRaster) Attribution() string  { return r.attribution }

// fakeVector orders by bring-to-front and has a style.
type fakeVector struct {
	label   string
	surface *fakeSurface
	style   Style
	fronts  int
}

func newVector(label string) *fakeVector {
	return &fakeVector{label: label}
}

func (v *fakeVector) BringToFront() {
	v.fronts++
	if v.surface != nil {
		v.surface.toFront(v)
	}
}

func (v *fakeVector) SetStyle(s Style) { v.style = v.style.Merge(s) }

// fakePlain supports no capability at all.
type fakePlain struct {
	label string
}

// --- Recording event sink ---

type recordingSink struct {
	events []LayerEvent
}

func (s *recordingSink) EmitEvent(e LayerEvent) {
	s.events = append(s.events, e)
}

// --- Assertions ---

// assertNames checks the child names of the addressed group.
func assertNames(t *testing.T, m *Manager, want []string, opts ...Option) {
	t.Helper()
	var got []string
	for _, n := range m.Layers(opts...) {
		got = append(got, n.Name())
	}
	if !slices.Equal(got, want) {
		t.Errorf("layers = %v, want %v", got, want)
	}
}

// assertIncreasingZ checks that rasters have strictly increasing z-indices
// in the given order.
func assertIncreasingZ(t *testing.T, rs ...*fakeRaster) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		if rs[i].z <= rs[i-1].z {
			t.Errorf("z(%s) = %d, not above z(%s) = %d", rs[i].label, rs[i].z, rs[i-1].label, rs[i-1].z)
		}
	}
}

// rasterScenario builds the nested raster tree used across tests:
//
//	raster1, raster2 (composite of two tiles), raster3 {OpenStratMap, png1, group {png2, png3}}
type rasterScenario struct {
	surface *fakeSurface
	m       *RasterManager
	r       map[string]*fakeRaster
	raster2 *Collection
}

func newRasterScenario(t *testing.T) *rasterScenario {
	t.Helper()
	sc := &rasterScenario{surface: newFakeSurface(), r: make(map[string]*fakeRaster)}
	for _, name := range []string{"raster1", "relief", "photo", "OpenStratMap", "png1", "png2", "png3"} {
		sc.r[name] = newRaster(name)
	}
	sc.raster2 = NewCollection(sc.r["relief"], sc.r["photo"])
	sc.m = NewRasterManager(sc.surface, "")
	err := sc.m.SetLayers([]Descriptor{
		Leaf("raster1", sc.r["raster1"]).WithProperties(2020),
		Leaf("raster2", sc.raster2).WithProperties(2010),
		Group("raster3",
			Leaf("OpenStratMap", sc.r["OpenStratMap"]).WithProperties(2015),
			Leaf("png1", sc.r["png1"]).WithProperties(2005),
			Group("group",
				Leaf("png2", sc.r["png2"]),
				Leaf("png3", sc.r["png3"]),
			),
		).WithProperties(2000),
	})
	if err != nil {
		t.Fatalf("SetLayers: %v", err)
	}
	return sc
}

// vectorScenario builds:
//
//	line, circle, circles {circle1, circle2, circle3 {circle4, circle5}}
type vectorScenario struct {
	surface *fakeSurface
	m       *VectorManager
	v       map[string]*fakeVector
}

func newVectorScenario(t *testing.T) *vectorScenario {
	t.Helper()
	sc := &vectorScenario{surface: newFakeSurface(), v: make(map[string]*fakeVector)}
	for _, name := range []string{"line", "circle", "circle1", "circle2", "circle4", "circle5"} {
		sc.v[name] = newVector(name)
	}
	sc.m = NewVectorManager(sc.surface, "")
	err := sc.m.SetLayers([]Descriptor{
		Leaf("line", sc.v["line"]),
		Leaf("circle", sc.v["circle"]),
		Group("circles",
			Leaf("circle1", sc.v["circle1"]),
			Leaf("circle2", sc.v["circle2"]),
			Group("circle3",
				Leaf("circle4", sc.v["circle4"]),
				Leaf("circle5", sc.v["circle5"]),
			),
		),
	})
	if err != nil {
		t.Fatalf("SetLayers: %v", err)
	}
	return sc
}
