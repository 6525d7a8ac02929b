package layerstack

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates the opacity of one node. Create one with
// [RasterManager.FadeTo] and call Update(dt) each frame. If the node leaves
// the tree (removed, replaced, reset) the fade stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type Fade struct {
	tween *gween.Tween
	node  *Node
	root  *Node
	Done  bool
}

// FadeTo returns a fade that takes the named node from its current opacity
// to the target over duration seconds. It returns nil if the node does not
// exist.
func (m *RasterManager) FadeTo(name string, to float64, duration float32, fn ease.TweenFunc, opts ...Option) *Fade {
	n := m.FindByName(name, opts...)
	if n == nil {
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	return &Fade{
		tween: gween.New(float32(n.opacity), float32(to), duration, fn),
		node:  n,
		root:  m.root,
	}
}

// Update advances the fade by dt seconds and applies the new opacity.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}
	if !f.inTree() {
		f.Done = true
		return
	}
	val, finished := f.tween.Update(dt)
	f.node.setOpacity(float64(val))
	f.Done = finished
}

// inTree reports whether the faded node is still reachable from the root.
func (f *Fade) inTree() bool {
	p := f.node
	for p.parent != nil {
		p = p.parent
	}
	return p == f.root
}
