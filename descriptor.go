package layerstack

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors. Every other failure (unknown path, unknown name,
// out-of-range index, duplicate add) is a silent no-op.
var (
	ErrEmptyName           = errors.New("empty layer name")
	ErrInvalidName         = errors.New("layer name contains the path separator")
	ErrNoRenderable        = errors.New("leaf layer has no renderable")
	ErrAmbiguousDescriptor = errors.New("descriptor has both a renderable and child layers")
	ErrDuplicateName       = errors.New("duplicate layer name")
)

// Descriptor specifies a node to construct. A descriptor with a non-nil
// Layers slice describes a group; otherwise it describes a leaf wrapping
// Renderable.
type Descriptor struct {
	Name       string
	Renderable Renderable
	Layers     []Descriptor
	Properties any
}

// Leaf returns a descriptor for a leaf node.
func Leaf(name string, r Renderable) Descriptor {
	return Descriptor{Name: name, Renderable: r}
}

// Group returns a descriptor for a group node. An empty group is allowed.
func Group(name string, layers ...Descriptor) Descriptor {
	if layers == nil {
		layers = []Descriptor{}
	}
	return Descriptor{Name: name, Layers: layers}
}

// WithProperties returns a copy of d carrying props.
func (d Descriptor) WithProperties(props any) Descriptor {
	d.Properties = props
	return d
}

// IsGroup reports whether d describes a group.
func (d Descriptor) IsGroup() bool {
	return d.Layers != nil
}

// ValidateName reports whether name can be used as a node name.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.Contains(name, Separator) {
		return ErrInvalidName
	}
	return nil
}

// Validate checks d and, for groups, every nested descriptor.
func (d Descriptor) Validate() error {
	return d.validate("")
}

func (d Descriptor) validate(parent string) error {
	path := joinPath(parent, d.Name)
	if err := ValidateName(d.Name); err != nil {
		return fmt.Errorf("layerstack: layer %q: %w", path, err)
	}
	if !d.IsGroup() {
		if d.Renderable == nil {
			return fmt.Errorf("layerstack: layer %q: %w", path, ErrNoRenderable)
		}
		return nil
	}
	if d.Renderable != nil {
		return fmt.Errorf("layerstack: layer %q: %w", path, ErrAmbiguousDescriptor)
	}
	return validateList(d.Layers, path)
}

// validateList validates every descriptor and checks sibling name uniqueness.
func validateList(ds []Descriptor, parent string) error {
	seen := make(map[string]struct{}, len(ds))
	for _, d := range ds {
		if err := d.validate(parent); err != nil {
			return err
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("layerstack: layer %q: %w", joinPath(parent, d.Name), ErrDuplicateName)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}
