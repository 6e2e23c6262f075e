package palette

import (
	"testing"

	"github.com/oriumgames/isomap/internal/applog"
)

func TestBlendNoOp(t *testing.T) {
	// Property 5: blend(dst, (c,0)) == dst for all c.
	dst := NewColor([]int{10, 20, 30, 255})
	before := dst
	src := NewColor([]int{200, 5, 9, 0})
	Blend(&dst, src)
	if dst != before {
		t.Fatalf("blend with alpha 0 changed dst: %+v != %+v", dst, before)
	}
}

func TestBlendFullOverwrite(t *testing.T) {
	// Property 5: blend(dst, (c,255)) == (c,255) for all dst.
	dst := NewColor([]int{10, 20, 30, 128})
	src := NewColor([]int{1, 2, 3, 255})
	Blend(&dst, src)
	if dst.R != src.R || dst.G != src.G || dst.B != src.B || dst.A != 255 {
		t.Fatalf("blend with alpha 255 did not overwrite: %+v", dst)
	}
}

func TestBlendEmptyDstOverwrite(t *testing.T) {
	var dst Color
	src := NewColor([]int{5, 6, 7, 80})
	Blend(&dst, src)
	if dst != src {
		t.Fatalf("blend onto empty dst should overwrite: got %+v want %+v", dst, src)
	}
}

func TestDerivedShades(t *testing.T) {
	b := NewBlock(Full, NewColor([]int{100, 100, 100, 255}))
	if b.Light.R != 100-17 {
		t.Fatalf("light shade wrong: %d", b.Light.R)
	}
	if b.Dark.R != 100-27 {
		t.Fatalf("dark shade wrong: %d", b.Dark.R)
	}
}

func TestDerivedShadesSaturate(t *testing.T) {
	b := NewBlock(Full, NewColor([]int{10, 10, 10, 255}))
	if b.Dark.R != 0 {
		t.Fatalf("dark shade should saturate at 0, got %d", b.Dark.R)
	}
}

func TestLoadBuiltinAndOverlay(t *testing.T) {
	p, err := Load(nil, applog.Noop)
	if err != nil {
		t.Fatalf("load built-in palette: %v", err)
	}
	if _, ok := p["minecraft:stone"]; !ok {
		t.Fatal("expected built-in stone entry")
	}
	if _, ok := p[BeaconBeam]; !ok {
		t.Fatal("expected built-in beacon beam entry")
	}

	overlay := []byte(`{"minecraft:stone": [1,2,3,4]}`)
	p2, err := Load(overlay, applog.Noop)
	if err != nil {
		t.Fatalf("load with overlay: %v", err)
	}
	got := p2["minecraft:stone"].Primary
	if got.R != 1 || got.G != 2 || got.B != 3 || got.A != 4 {
		t.Fatalf("overlay did not replace stone color: %+v", got)
	}
	if _, ok := p2["minecraft:dirt"]; !ok {
		t.Fatal("overlay should not remove untouched built-in entries")
	}
}

func TestUnknownNameResolvesEmpty(t *testing.T) {
	p, _ := Load(nil, applog.Noop)
	if !p.Get("minecraft:does_not_exist").IsEmpty() {
		t.Fatal("unknown block name should resolve to empty recipe")
	}
}

func TestFilterIncludesBuiltinSentinels(t *testing.T) {
	full, _ := Load(nil, applog.Noop)
	seen := map[string]struct{}{"minecraft:stone": {}}
	filtered := Filter(full, seen, applog.Noop)
	if _, ok := filtered["minecraft:stone"]; !ok {
		t.Fatal("filtered palette missing seen block")
	}
	if _, ok := filtered[BeaconBeam]; !ok {
		t.Fatal("filtered palette missing built-in beacon beam sentinel")
	}
	if len(filtered) != 2 {
		t.Fatalf("expected exactly 2 filtered entries, got %d", len(filtered))
	}
}

func TestDitheredIsDeterministicPerPosition(t *testing.T) {
	c := NewColor([]int{100, 100, 100, 255})
	c.Noise = 10
	a := c.Dithered(5, 64, 9)
	b := c.Dithered(5, 64, 9)
	if a != b {
		t.Fatalf("dithering the same position twice gave different results: %+v != %+v", a, b)
	}
	other := c.Dithered(5, 64, 10)
	if a == other {
		t.Fatal("dithering distinct positions should not always agree (got identical jitter)")
	}
}

func TestDitheredNoopWhenNoiseZero(t *testing.T) {
	c := NewColor([]int{100, 100, 100, 255})
	if d := c.Dithered(1, 2, 3); d != c {
		t.Fatalf("zero-noise color should be unchanged by Dithered: %+v", d)
	}
}

func TestLoadNoiseField(t *testing.T) {
	overlay := []byte(`{"minecraft:stone": {"type": "Full", "color": [1,2,3,4], "noise": 20}}`)
	p, err := Load(overlay, applog.Noop)
	if err != nil {
		t.Fatalf("load with noise field: %v", err)
	}
	if got := p["minecraft:stone"].Primary.Noise; got != 20 {
		t.Fatalf("noise field not wired through palette load: got %d", got)
	}
}

func TestWithoutWater(t *testing.T) {
	full, _ := Load(nil, applog.Noop)
	filtered := WithoutWater(full)
	if !filtered["minecraft:water"].IsEmpty() {
		t.Fatal("-nowater should replace water with empty recipe")
	}
	if filtered["minecraft:stone"].IsEmpty() {
		t.Fatal("-nowater should not touch other entries")
	}
}
