// Package worldio implements spec.md §4.1's World Decoder: it scans an
// Anvil region directory, decompresses and parses chunk NBT, and normalizes
// the result into an in-memory Terrain the isometric renderer can walk
// without ever touching a region file or a compression stream itself.
package worldio

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/nbtadapter"
)

// World is the decoded Terrain: chunks keyed by chunk coordinate, the
// per-chunk height byte, and the "seen" block-name set used to filter the
// color palette before rendering (spec.md §3, "Terrain / Chunk").
type World struct {
	Box          geometry.Coordinates
	Seen         map[string]struct{}
	HeightBounds uint8

	chunks  map[ChunkPos]Chunk
	heights map[ChunkPos]uint8
}

// Load reads every region file overlapping box's chunk rectangle and
// returns the decoded Terrain. Missing region files are a warning, not a
// fatal error; a corrupt chunk is skipped so the rest of the world still
// renders (spec.md §4.1, "Failure semantics").
func Load(regionDir string, box geometry.Coordinates, log applog.Logger) (*World, error) {
	w := &World{
		Box:     box,
		Seen:    map[string]struct{}{},
		chunks:  map[ChunkPos]Chunk{},
		heights: map[ChunkPos]uint8{},
	}

	minCX, minCZ, maxCX, maxCZ := box.ChunkBox()
	minRX, minRZ := regionFloorDiv(minCX), regionFloorDiv(minCZ)
	maxRX, maxRZ := regionFloorDiv(maxCX), regionFloorDiv(maxCZ)

	for rx := minRX; rx <= maxRX; rx++ {
		for rz := minRZ; rz <= maxRZ; rz++ {
			if err := w.loadRegion(regionDir, rx, rz, minCX, minCZ, maxCX, maxCZ, log); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func (w *World) loadRegion(dir string, rx, rz, minCX, minCZ, maxCX, maxCZ int, log applog.Logger) error {
	name := regionFileName(rx, rz)
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("region file %s does not exist, skipping", name)
			return nil
		}
		return errors.Wrapf(err, "open region file %s", name)
	}
	defer f.Close()

	var header [regionHeaderSize]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		log.Errorf("header too short in %s: %v", name, err)
		return nil
	}

	for it := 0; it < regionSize*regionSize; it++ {
		cx := rx*regionSize + (it & (regionSize - 1))
		cz := rz*regionSize + (it >> 5)
		if cx < minCX || cx > maxCX || cz < minCZ || cz > maxCZ {
			continue
		}
		entry := binary.BigEndian.Uint32(header[it*4 : it*4+4])
		if entry == 0 {
			continue
		}
		offset := (entry >> 8) * sectorSize
		w.loadChunk(f, offset, cx, cz, log)
	}
	return nil
}

func (w *World) loadChunk(f *os.File, offset uint32, cx, cz int, log applog.Logger) {
	raw, err := readChunkPayload(f, offset)
	if err != nil {
		log.Errorf("chunk %d,%d: %v", cx, cz, err)
		return
	}
	root, err := nbtadapter.Decode(raw)
	if err != nil {
		log.Errorf("chunk %d,%d: %v", cx, cz, err)
		return
	}

	level := root.Index("Level")
	if level.IsEnd() || !level.Contains("Sections") {
		log.Warnf("chunk %d,%d is in an unsupported format, skipping", cx, cz)
		return
	}
	dataVersion, _ := root.Int32("DataVersion")

	pos := ChunkPos{X: cx, Z: cz}
	sections, height, topNibble, ok := normalizeChunk(level, dataVersion, w.Seen)
	if !ok {
		w.chunks[pos] = Chunk{Pos: pos, DataVersion: dataVersion}
		w.heights[pos] = 0
		return
	}

	w.chunks[pos] = Chunk{Pos: pos, DataVersion: dataVersion, Sections: sections}
	w.heights[pos] = height
	if topNibble > (w.HeightBounds & 0xF0) {
		w.HeightBounds = topNibble | (w.HeightBounds & 0x0F)
	}
}

// NewWorld returns an empty decoded Terrain over box, for callers that
// assemble chunks directly (tests; a future shard runner composing decoded
// chunks it owns) rather than reading them from a region directory.
func NewWorld(box geometry.Coordinates) *World {
	return &World{
		Box:     box,
		Seen:    map[string]struct{}{},
		chunks:  map[ChunkPos]Chunk{},
		heights: map[ChunkPos]uint8{},
	}
}

// PutChunk records a decoded chunk and its packed height byte directly,
// bypassing region-file decoding.
func (w *World) PutChunk(pos ChunkPos, chunk Chunk, height uint8) {
	w.chunks[pos] = chunk
	w.heights[pos] = height
	if topNibble := height & 0xF0; topNibble > (w.HeightBounds & 0xF0) {
		w.HeightBounds = topNibble | (w.HeightBounds & 0x0F)
	}
}

// ChunkAt returns the decoded chunk at world chunk coordinate (cx,cz).
func (w *World) ChunkAt(cx, cz int) (Chunk, bool) {
	c, ok := w.chunks[ChunkPos{X: cx, Z: cz}]
	return c, ok
}

// HeightAt returns the packed height byte for a chunk, or 0 for a chunk
// that was never loaded or had no non-empty sections.
func (w *World) HeightAt(cx, cz int) uint8 {
	return w.heights[ChunkPos{X: cx, Z: cz}]
}
