package palette

// SpriteType is the closed set of 4x4-pixel block sprite kinds described in
// spec.md §5 (C5). It is a flat enum by design (spec.md §9: "Do not use deep
// class hierarchies — the set is closed and flat") dispatched through a
// table indexed by this type (see the sprite package).
type SpriteType uint8

const (
	Full SpriteType = iota
	Slab
	Log
	Torch
	Plant
	UnderwaterPlant
	Fire
	Ore
	Grown
	Rod
	Beam
	Thin
	Head
	Wire
	Hidden
	Transparent
)

// spriteNames mirrors original_source's stringToType/typeToString tables:
// the JSON "type" field uses these names; unknown names fall back to Full
// with a once-per-type warning (spec.md §7).
var spriteNames = map[string]SpriteType{
	"Full":            Full,
	"Slab":            Slab,
	"Log":             Log,
	"Torch":           Torch,
	"Plant":           Plant,
	"UnderwaterPlant": UnderwaterPlant,
	"Fire":            Fire,
	"Ore":             Ore,
	"Grown":           Grown,
	"Rod":             Rod,
	"Beam":            Beam,
	"Thin":            Thin,
	"Head":            Head,
	"Wire":            Wire,
	"Hidden":          Hidden,
	"Transparent":     Transparent,
}

// ParseSpriteType resolves a JSON "type" string to a SpriteType. The second
// return value is false for unknown names, in which case the caller must
// apply spec.md §7's "render as Full, warn once per type" policy.
func ParseSpriteType(name string) (SpriteType, bool) {
	t, ok := spriteNames[name]
	return t, ok
}

// Block is a named sprite recipe: a sprite type, a primary color, an
// optional secondary/accent color, and the two derived shades computed once
// at palette load (spec.md §3, "Ownership: recipes are created once at
// palette load and read-only during rendering").
type Block struct {
	Type      SpriteType
	Primary   Color
	Secondary Color
	Light     Color
	Dark      Color
}

// NewBlock builds a Block recipe, deriving Light (-17) and Dark (-27) from
// the primary color per spec.md §3.
func NewBlock(t SpriteType, primary Color) Block {
	return Block{
		Type:    t,
		Primary: primary,
		Light:   primary.ModChannel(-17),
		Dark:    primary.ModChannel(-27),
	}
}

// NewBlockWithAccent is NewBlock plus a secondary/accent color (ore veins,
// grown-crop tops, etc).
func NewBlockWithAccent(t SpriteType, primary, secondary Color) Block {
	b := NewBlock(t, primary)
	b.Secondary = secondary
	return b
}

// Empty is the transparent no-op recipe used for unknown block names
// (spec.md §3: "Unknown names resolve to an empty recipe").
var Empty = Block{Type: Hidden}

// IsEmpty reports whether this recipe renders nothing.
func (b Block) IsEmpty() bool {
	return b.Type == Hidden && b.Primary.Empty()
}

// Shaded returns a copy of b with the shading delta applied channel-wise to
// primary/light/dark/secondary, per spec.md §4.3's shading formula consumer
// contract (the delta itself is computed by the canvas/sprite package using
// the brightness lookup table).
func (b Block) Shaded(delta int) Block {
	b.Primary = b.Primary.ModChannel(delta)
	b.Light = b.Light.ModChannel(delta)
	b.Dark = b.Dark.ModChannel(delta)
	if !b.Secondary.Empty() {
		b.Secondary = b.Secondary.ModChannel(delta)
	}
	return b
}
