package layerstack

import (
	"errors"
	"image/color"
	"slices"
	"testing"
)

// --- Walk ---

func TestWalkExpandsNestedComposites(t *testing.T) {
	a, b, c := newRaster("a"), newRaster("b"), newRaster("c")
	r := NewCollection(a, NewCollection(b, nil), c)
	var got []string
	Walk(r, func(p Renderable) { got = append(got, p.(*fakeRaster).label) })
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Walk order = %v, want [a b c]", got)
	}
}

func TestWalkNil(t *testing.T) {
	calls := 0
	Walk(nil, func(Renderable) { calls++ })
	if calls != 0 {
		t.Errorf("Walk(nil) called fn %d times", calls)
	}
}

func TestCollectionAdd(t *testing.T) {
	c := NewCollection()
	c.Add(newRaster("a"))
	if len(c.Members()) != 1 {
		t.Errorf("Members = %d, want 1", len(c.Members()))
	}
}

// --- Style ---

func TestStyleMerge(t *testing.T) {
	base := Style{Color: color.Black, Weight: 2, Opacity: Alpha(1)}
	got := base.Merge(Style{FillColor: color.White, FillOpacity: Alpha(0.2)})
	if got.Color != color.Black || got.Weight != 2 || *got.Opacity != 1 {
		t.Error("unset fields should be kept")
	}
	if got.FillColor != color.White || *got.FillOpacity != 0.2 {
		t.Error("set fields should be replaced")
	}
	got = got.Merge(Style{Weight: 5, Opacity: Alpha(0.5)})
	if got.Weight != 5 || *got.Opacity != 0.5 || *base.Opacity != 1 {
		t.Error("merge should copy pointers, not alias them")
	}
}

// --- Descriptors ---

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"png1", nil},
		{"OpenStratMap", nil},
		{"", ErrEmptyName},
		{"a.b", ErrInvalidName},
		{".", ErrInvalidName},
	}
	for _, tt := range tests {
		if err := ValidateName(tt.name); !errors.Is(err, tt.want) {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestDescriptorKind(t *testing.T) {
	if Leaf("a", newRaster("a")).IsGroup() {
		t.Error("Leaf should not be a group")
	}
	if !Group("g").IsGroup() {
		t.Error("empty Group should be a group")
	}
	if err := Group("g").Validate(); err != nil {
		t.Errorf("empty group should validate, got %v", err)
	}
}

func TestValidateErrorNamesPath(t *testing.T) {
	d := Group("raster3", Group("group", Leaf("png2", nil)))
	err := d.Validate()
	if !errors.Is(err, ErrNoRenderable) {
		t.Fatalf("error = %v, want ErrNoRenderable", err)
	}
	if want := `layerstack: layer "raster3.group.png2": leaf layer has no renderable`; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestValidateListDuplicate(t *testing.T) {
	ds := []Descriptor{Leaf("a", newRaster("a")), Group("a")}
	if err := validateList(ds, "p"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("error = %v, want ErrDuplicateName", err)
	}
}

// --- Paths ---

func TestResolveGroup(t *testing.T) {
	sc := newRasterScenario(t)
	root := sc.m.Root()
	tests := []struct {
		path string
		want string // "" means nil, "<root>" the root
	}{
		{"", "<root>"},
		{"raster3", "raster3"},
		{"raster3.group", "group"},
		{"raster1", ""},
		{"raster3.png1", ""},
		{"raster3.nope", ""},
		{"raster3.group.png2", ""},
		{"raster3.", ""},
		{".raster3", ""},
	}
	for _, tt := range tests {
		g := resolveGroup(root, tt.path)
		switch {
		case tt.want == "" && g != nil:
			t.Errorf("resolveGroup(%q) = %s, want nil", tt.path, g.Name())
		case tt.want == "<root>" && g != root:
			t.Errorf("resolveGroup(%q) should be the root", tt.path)
		case tt.want != "" && tt.want != "<root>" && (g == nil || g.Name() != tt.want):
			t.Errorf("resolveGroup(%q) = %v, want %s", tt.path, g, tt.want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	if joinPath("", "a") != "a" || joinPath("a.b", "c") != "a.b.c" {
		t.Error("joinPath mismatch")
	}
}
