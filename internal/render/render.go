// Package render orchestrates spec.md §5's two-stage concurrency model:
// parallel shard rendering followed by a serialized, fixed-order merge. It
// is the only component that touches worldio, canvas, shard, and pngio
// together, tying C1-C8 into a single render job.
package render

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/canvas"
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/palette"
	"github.com/oriumgames/isomap/internal/pngio"
	"github.com/oriumgames/isomap/internal/shard"
	"github.com/oriumgames/isomap/internal/worldio"
)

// Options configures a single render job: everything a resolved CLI
// invocation (§6) needs to decide before any I/O happens.
type Options struct {
	RegionDir string
	Box       geometry.Coordinates
	Shards    int
	Palette   palette.Palette
	Markers   []palette.Marker
	Shading   bool
	Output    string
	Log       applog.Logger
}

type loader func(regionDir string, box geometry.Coordinates, log applog.Logger) (*worldio.World, error)

// Run executes the job: it shards opts.Box, renders every shard
// concurrently (each worker loading only the chunks intersecting its own
// sub-box and filtering its own palette, per spec.md §5's "workers do not
// share mutable state"), then merges the results into the final canvas in
// the fixed shard order and writes the output PNG. A fatal error from any
// worker aborts before anything is written, so a failed render never
// leaves a partial or corrupt output file (§5: "a fatal error in any
// worker terminates the job; partial output is discarded").
func Run(opts Options) error {
	return run(opts, worldio.Load)
}

func run(opts Options, load loader) error {
	boxes := opts.Box.Shard(opts.Shards)
	canvases := make([]*canvas.Canvas, len(boxes))
	errs := make([]error, len(boxes))

	var wg sync.WaitGroup
	for i, box := range boxes {
		wg.Add(1)
		go func(i int, box geometry.Coordinates) {
			defer wg.Done()
			c, err := renderShard(opts, box, load)
			if err != nil {
				errs[i] = err
				return
			}
			canvases[i] = c
		}(i, box)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "render shard %d of %d", i+1, len(boxes))
		}
	}

	main := canvas.New(opts.Box, opts.Palette, opts.Markers, opts.Shading, opts.Log)
	if err := shard.MergeAll(main, canvases); err != nil {
		return errors.Wrap(err, "merge shards")
	}

	if err := pngio.Write(opts.Output, main); err != nil {
		return errors.Wrap(err, "write output PNG")
	}
	return nil
}

// renderShard loads only the world data a single sub-box needs, derives
// its own filtered palette from what it actually saw, and renders its own
// sub-canvas — the per-worker independence spec.md §5 requires.
func renderShard(opts Options, box geometry.Coordinates, load loader) (*canvas.Canvas, error) {
	world, err := load(opts.RegionDir, box, opts.Log)
	if err != nil {
		return nil, err
	}
	filtered := palette.Filter(opts.Palette, world.Seen, opts.Log)
	c := canvas.New(box, filtered, opts.Markers, opts.Shading, opts.Log)
	c.DrawTerrain(world)
	return c, nil
}
