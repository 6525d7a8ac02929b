// Package layerstack keeps a named, hierarchical stacking order for overlays
// drawn onto a shared 2D surface such as a map canvas.
//
// The surface only knows per-element operations: attach, detach, set a
// depth or bring to front, and restyle. layerstack adds a tree of named
// layers on top, addressed by dotted path, and keeps the surface's paint
// order equal to the tree's declared order after every edit.
//
// # Quick start
//
//	m := layerstack.NewRasterManager(surface, "") // pane "overlayPane"
//	_ = m.SetLayers([]layerstack.Descriptor{
//		layerstack.Leaf("base", baseTiles),
//		layerstack.Group("overlays",
//			layerstack.Leaf("png1", img1),
//			layerstack.Leaf("png2", img2),
//		),
//	})
//	m.BringToFront("png1", layerstack.InGroup("overlays"))
//	m.SetOpacity("overlays", 0.5)
//
// # Layers
//
// Every layer is a [Node]: a leaf wrapping one opaque [Renderable] (which may
// itself be a [Composite] of primitives), or a group of child nodes. Sibling
// names are unique and never contain [Separator]. Child order is stacking
// order, bottom first.
//
// # Stacking
//
// Surfaces order renderables in one of two incompatible ways, so a manager
// is built with a [StackingStrategy]:
//
//   - [RasterStrategy] hands out increasing z-indices to every [ZIndexer]
//     primitive in tree order.
//   - [VectorStrategy] calls [FrontBringer.BringToFront] on every primitive in
//     tree order, rebuilding the native paint list.
//
// [NewRasterManager] and [NewVectorManager] pick the strategy and expose the
// restyle calls the family supports (opacity, or style).
//
// # Errors
//
// Only malformed descriptors are errors. A path that names no group, an
// unknown layer name, an out-of-range index or a duplicate name on Add all
// turn the call into a no-op, so a misaddressed UI action degrades quietly.
//
// # Layouts and scripts
//
// Layer trees can be declared in TOML ([ParseLayout]) and edits replayed
// from TOML scripts ([ParseScript]). The ebitensurface sub-package provides
// an Ebitengine-backed reference [Surface].
package layerstack
