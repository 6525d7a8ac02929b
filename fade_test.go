package layerstack

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeReachesTarget(t *testing.T) {
	sc := newRasterScenario(t)
	f := sc.m.FadeTo("group", 0, 1.0, ease.Linear, InGroup("raster3"))
	if f == nil {
		t.Fatal("FadeTo returned nil for an existing node")
	}

	f.Update(0.5)
	if math.Abs(sc.r["png2"].opacity-0.5) > 0.01 {
		t.Errorf("midway opacity = %f, want ~0.5", sc.r["png2"].opacity)
	}
	f.Update(0.5)

	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(sc.r["png3"].opacity) > 0.01 {
		t.Errorf("opacity = %f, want ~0", sc.r["png3"].opacity)
	}
	if sc.r["png1"].opacity != 1 {
		t.Error("fade should only touch the faded subtree")
	}
}

func TestFadeStartsFromCurrentOpacity(t *testing.T) {
	sc := newRasterScenario(t)
	sc.m.SetOpacity("raster1", 0.2)
	f := sc.m.FadeTo("raster1", 1, 1.0, nil)
	f.Update(0.5)
	if math.Abs(sc.r["raster1"].opacity-0.6) > 0.01 {
		t.Errorf("opacity = %f, want ~0.6", sc.r["raster1"].opacity)
	}
}

func TestFadeMissingNode(t *testing.T) {
	sc := newRasterScenario(t)
	if sc.m.FadeTo("nope", 0, 1, ease.Linear) != nil {
		t.Error("FadeTo should return nil for a missing node")
	}
}

func TestFadeStopsWhenNodeRemoved(t *testing.T) {
	sc := newRasterScenario(t)
	f := sc.m.FadeTo("png2", 0, 1.0, ease.Linear, InGroup("raster3.group"))
	f.Update(0.25)
	got := sc.r["png2"].opacity

	sc.m.Remove("raster3")
	f.Update(0.25)
	if !f.Done {
		t.Error("fade should finish once its node leaves the tree")
	}
	if sc.r["png2"].opacity != got {
		t.Error("removed node should not be restyled")
	}
}

func TestFadeUpdateAfterDone(t *testing.T) {
	sc := newRasterScenario(t)
	f := sc.m.FadeTo("raster1", 0.5, 0.1, ease.Linear)
	f.Update(0.1)
	if !f.Done {
		t.Fatal("expected Done")
	}
	sc.m.SetOpacity("raster1", 0.9)
	f.Update(0.1)
	if sc.r["raster1"].opacity != 0.9 {
		t.Error("Update after Done should be a no-op")
	}
}
