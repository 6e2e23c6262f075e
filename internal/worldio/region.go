package worldio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/geometry"
)

// Anvil region files hold a REGIONSIZE x REGIONSIZE grid of chunks, indexed
// by a 4 KiB header of big-endian sector offsets (spec.md §4.1, "Region
// scan").
const (
	regionSize       = 32
	regionHeaderSize = regionSize * regionSize * 4
	sectorSize       = 4096
)

// ScanBounds walks every r.<rx>.<rz>.mca file under regionDir and derives
// the world's bounding chunk rectangle from the set of present chunks,
// without decompressing or parsing any of them.
func ScanBounds(regionDir string, log applog.Logger) (geometry.Coordinates, error) {
	entries, err := os.ReadDir(regionDir)
	if err != nil {
		return geometry.Coordinates{}, errors.Wrap(err, "read region directory")
	}

	box := geometry.Undefined(geometry.NW)
	found := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rx, rz, ok := parseRegionFilename(e.Name())
		if !ok {
			continue
		}
		if err := scanRegionHeader(filepath.Join(regionDir, e.Name()), rx, rz, &box); err != nil {
			log.Warnf("scan region %s: %v", e.Name(), err)
			continue
		}
		found = true
	}
	if !found {
		return geometry.Coordinates{}, errors.Errorf("no region files found in %s", regionDir)
	}
	box.Y[0], box.Y[1] = 0, 255
	return box, nil
}

func parseRegionFilename(name string) (rx, rz int, ok bool) {
	if !strings.HasPrefix(name, "r.") || !strings.HasSuffix(name, ".mca") {
		return 0, 0, false
	}
	mid := strings.TrimSuffix(strings.TrimPrefix(name, "r."), ".mca")
	parts := strings.Split(mid, ".")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, err1 := strconv.Atoi(parts[0])
	z, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, z, true
}

func scanRegionHeader(path string, rx, rz int, box *geometry.Coordinates) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open region file")
	}
	defer f.Close()

	var header [regionHeaderSize]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return errors.Wrap(err, "read region header")
	}
	for it := 0; it < regionSize*regionSize; it++ {
		if binary.BigEndian.Uint32(header[it*4:it*4+4]) == 0 {
			continue
		}
		cx := rx*regionSize + (it & (regionSize - 1))
		cz := rz*regionSize + (it >> 5)
		box.ExpandToChunk(cx, cz)
	}
	return nil
}

// regionFloorDiv floors division toward negative infinity, needed to map a
// chunk coordinate to the region file that contains it (region files exist
// on both sides of the origin).
func regionFloorDiv(v int) int {
	if v >= 0 {
		return v / regionSize
	}
	return -((-v + regionSize - 1) / regionSize)
}

func readChunkPayload(f *os.File, offset uint32) ([]byte, error) {
	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "seek to chunk")
	}
	var prelude [5]byte
	if _, err := io.ReadFull(f, prelude[:]); err != nil {
		return nil, errors.Wrap(err, "read chunk prelude")
	}
	length := binary.BigEndian.Uint32(prelude[:4])
	if length == 0 {
		return nil, errors.New("zero-length chunk prelude")
	}
	compressed := make([]byte, length-1)
	if _, err := io.ReadFull(f, compressed); err != nil {
		return nil, errors.Wrap(err, "read compressed chunk")
	}
	return inflate(compressed)
}

func regionFileName(rx, rz int) string {
	return fmt.Sprintf("r.%d.%d.mca", rx, rz)
}
