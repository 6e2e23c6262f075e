package palette

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/applog"
)

// BeaconBeam is the built-in sentinel block name drawn above beacons/
// markers, per spec.md §3 ("built-in names (e.g. mcmap:beacon_beam)") and
// §6's "Built-in sentinel names".
const BeaconBeam = "mcmap:beacon_beam"

// Palette maps a fully-qualified block name to its rendering recipe.
type Palette map[string]Block

// jsonBlock mirrors the on-disk shape of spec.md §6's color file entries: a
// bare 4-element array, or an object with type/color/accent.
type jsonBlock struct {
	raw       json.RawMessage
	isArray   bool
	arrayVals []int
	Type      string `json:"type"`
	Color     []int  `json:"color"`
	Accent    []int  `json:"accent"`
	Noise     int    `json:"noise"`
}

func (b *jsonBlock) UnmarshalJSON(data []byte) error {
	b.raw = data
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		b.isArray = true
		b.arrayVals = arr
		return nil
	}
	type alias jsonBlock
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = jsonBlock(a)
	b.raw = data
	return nil
}

func (b jsonBlock) toBlock(name string, log applog.Logger, warnedTypes map[string]bool) Block {
	if b.isArray {
		return NewBlock(Full, NewColor(b.arrayVals))
	}
	if len(b.Color) == 0 {
		log.Warnf("block %q has no color attribute, rendering empty", name)
		return Empty
	}
	primary := NewColor(b.Color)
	primary.Noise = clampChannel(b.Noise)
	if b.Type == "" {
		return NewBlock(Full, primary)
	}
	t, ok := ParseSpriteType(b.Type)
	if !ok {
		if !warnedTypes[b.Type] {
			warnedTypes[b.Type] = true
			log.Warnf("unknown sprite type %q, rendering as Full", b.Type)
		}
		t = Full
	}
	if len(b.Accent) > 0 {
		return NewBlockWithAccent(t, primary, NewColor(b.Accent))
	}
	return NewBlock(t, primary)
}

// Load decodes the built-in default palette, then overlays colorFileJSON
// (if non-empty) entry-wise on top of it, per spec.md §6: "The file, when
// present, overlays it entry-wise."
func Load(colorFileJSON []byte, log applog.Logger) (Palette, error) {
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(defaultPaletteJSON, &merged); err != nil {
		return nil, errors.Wrap(err, "parse built-in default palette")
	}
	if len(colorFileJSON) > 0 {
		overlay := map[string]json.RawMessage{}
		if err := json.Unmarshal(colorFileJSON, &overlay); err != nil {
			return nil, errors.Wrap(err, "parse color file")
		}
		for name, raw := range overlay {
			merged[name] = raw
		}
	}

	warnedTypes := map[string]bool{}
	p := make(Palette, len(merged))
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var jb jsonBlock
		if err := json.Unmarshal(merged[name], &jb); err != nil {
			log.Warnf("block %q: malformed entry (%v), rendering empty", name, err)
			p[name] = Empty
			continue
		}
		p[name] = jb.toBlock(name, log, warnedTypes)
	}
	return p, nil
}

// Get resolves name against the palette, returning the empty recipe for
// unknown names (spec.md §3).
func (p Palette) Get(name string) Block {
	if b, ok := p[name]; ok {
		return b
	}
	return Empty
}

// Filter returns the subset of p observed in a world's "seen" block-name
// set, plus the built-in sentinel names, per spec.md §3's "filtered
// palette" and §4.1 step 4. Unknown names encountered in seen are recorded
// as empty recipes with a once-per-name warning (spec.md §7).
func Filter(full Palette, seen map[string]struct{}, log applog.Logger) Palette {
	filtered := make(Palette, len(seen)+1)
	add := func(name string) {
		if b, ok := full[name]; ok {
			filtered[name] = b
			return
		}
		log.WarnOnce("unknown-block:"+name, "no color for block %q", name)
		filtered[name] = Empty
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		add(name)
	}
	add(BeaconBeam)
	return filtered
}

// WithoutWater returns a copy of p with minecraft:water replaced by the
// empty recipe, implementing the CLI's "-nowater" flag (spec.md §6, S2).
func WithoutWater(p Palette) Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	out["minecraft:water"] = Empty
	return out
}
