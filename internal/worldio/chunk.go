package worldio

import "github.com/oriumgames/isomap/internal/nbtadapter"

// ChunkPos is a chunk-space (x,z) coordinate, one per 16x16 block column.
type ChunkPos struct{ X, Z int }

// PaletteEntry is one block name plus its raw NBT compound, carried through
// so sprite rendering can read block-specific Properties (axis, type, ...)
// without the decoder needing to know about every block's shape.
type PaletteEntry struct {
	Name string
	Node nbtadapter.Node
}

// Section is a normalized 16x16x16 block volume: a palette of block names
// and the bit-packed index array referencing it (spec.md §3, "Section").
type Section struct {
	Palette     []PaletteEntry
	BlockStates []int64
	bits        int
	pre116      bool
}

// Empty reports whether this section carries no Palette (spec.md's
// normalized "hole" sentinel).
func (s Section) Empty() bool { return len(s.Palette) == 0 }

// BlockAt returns the palette entry at local block coordinate (x,y,z)
// within the section, laid out x + 16*z + 256*y (spec.md §3, "Section").
// An out-of-range or corrupt index yields the zero PaletteEntry.
func (s Section) BlockAt(x, y, z int) PaletteEntry {
	if s.Empty() {
		return PaletteEntry{}
	}
	if len(s.BlockStates) == 0 {
		// A single-entry palette may be stored with no BlockStates array at
		// all; every block in the section is then palette[0] (spec.md §9,
		// Open Questions).
		return s.Palette[0]
	}
	index := x + 16*z + 256*y
	var paletteIndex int
	if s.pre116 {
		paletteIndex = blockIndexPre116(s.bits, s.BlockStates, index)
	} else {
		paletteIndex = blockIndexPost116(s.bits, s.BlockStates, index)
	}
	if paletteIndex < 0 || paletteIndex >= len(s.Palette) {
		return PaletteEntry{}
	}
	return s.Palette[paletteIndex]
}

// NewSection builds a Section directly from a palette and block-state
// words, for callers that assemble sections without going through NBT
// (tests; any future in-memory terrain builder).
func NewSection(palette []PaletteEntry, blockStates []int64, pre116 bool) Section {
	return Section{
		Palette:     palette,
		BlockStates: blockStates,
		bits:        bitsPerIndex(len(palette)),
		pre116:      pre116,
	}
}

func buildSection(node nbtadapter.Node, dataVersion int32) Section {
	paletteNodes, _ := node.ListOfNode("Palette")
	palette := make([]PaletteEntry, len(paletteNodes))
	for i, p := range paletteNodes {
		name, _ := p.String("Name")
		palette[i] = PaletteEntry{Name: name, Node: p}
	}
	blockStates, _ := node.LongArray("BlockStates")
	return Section{
		Palette:     palette,
		BlockStates: blockStates,
		bits:        bitsPerIndex(len(palette)),
		pre116:      dataVersion < post116DataVersion,
	}
}

// Chunk is a normalized chunk: a DataVersion and a Sections slice indexed
// directly by section Y (spec.md §4.1, "Chunk normalization", step 5).
type Chunk struct {
	Pos         ChunkPos
	DataVersion int32
	Sections    []Section
}

// Empty reports a chunk with no non-empty sections at all (spec.md's
// "fully empty top of world" case, heightMap entry 0).
func (c Chunk) Empty() bool { return len(c.Sections) == 0 }

// SectionAt returns the section at absolute Y index y, or the zero Section
// and false if y is out of the chunk's normalized range.
func (c Chunk) SectionAt(y int) (Section, bool) {
	if y < 0 || y >= len(c.Sections) {
		return Section{}, false
	}
	return c.Sections[y], true
}

type rawSection struct {
	y    int8
	node nbtadapter.Node
}

// normalizeChunk applies spec.md §4.1's "Chunk normalization" steps 1-5 to
// a chunk's Level.Sections list: strip the legacy -1 sentinel and trailing
// paletteless sections, collect seen block names, and lay out the
// remaining sections directly by Y index (an array already satisfies the
// "inflate holes" postcondition, since unfilled indices keep their zero
// Section value).
//
// It returns the normalized sections, the packed height byte (low nibble
// = first non-empty section Y, high nibble = last section Y + 1), the raw
// top-of-world nibble used to update the world's heightBounds, and whether
// the chunk had any sections left after stripping.
func normalizeChunk(level nbtadapter.Node, dataVersion int32, seen map[string]struct{}) (sections []Section, height, topNibble uint8, ok bool) {
	sectionNodes, _ := level.ListOfNode("Sections")
	raw := make([]rawSection, 0, len(sectionNodes))
	for _, n := range sectionNodes {
		y, _ := n.Int8("Y")
		raw = append(raw, rawSection{y: y, node: n})
	}

	if len(raw) > 0 && raw[0].y == -1 {
		raw = raw[1:]
	}
	for len(raw) > 0 && !raw[len(raw)-1].node.Contains("Palette") {
		raw = raw[:len(raw)-1]
	}
	if len(raw) == 0 {
		return nil, 0, 0, false
	}

	for _, r := range raw {
		if !r.node.Contains("Palette") {
			continue
		}
		paletteNodes, _ := r.node.ListOfNode("Palette")
		for _, p := range paletteNodes {
			if name, ok := p.String("Name"); ok {
				seen[name] = struct{}{}
			}
		}
	}

	lowY := raw[0].y
	highY := raw[len(raw)-1].y
	sections = make([]Section, int(highY)+1)
	for _, r := range raw {
		sections[int(r.y)] = buildSection(r.node, dataVersion)
	}

	topNibble = uint8(highY+1) << 4
	height = uint8(lowY) | topNibble
	return sections, height, topNibble, true
}
