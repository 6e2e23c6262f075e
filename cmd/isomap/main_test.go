package main

import (
	"testing"

	"github.com/oriumgames/isomap/internal/geometry"
)

func TestParseArgsHappyPath(t *testing.T) {
	a, err := parseArgs([]string{"-from", "0", "0", "-to", "15", "15", "-min", "0", "-max", "63", "-nw", "-nowater", "myworld"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if a.worldPath != "myworld" {
		t.Fatalf("worldPath = %q", a.worldPath)
	}
	if !a.haveFrom || a.fromX != 0 || a.fromZ != 0 || a.toX != 15 || a.toZ != 15 {
		t.Fatalf("from/to not parsed: %+v", a)
	}
	if a.minY != 0 || a.maxY != 63 {
		t.Fatalf("min/max not parsed: %+v", a)
	}
	if a.orientation != geometry.NW || !a.nowater {
		t.Fatalf("orientation/nowater not parsed: %+v", a)
	}
	if a.output != "output.png" {
		t.Fatalf("default output should be output.png, got %q", a.output)
	}
}

func TestParseArgsRequiresWorldPath(t *testing.T) {
	if _, err := parseArgs([]string{"-nw"}); err == nil {
		t.Fatal("expected an error with no world-path positional argument")
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-bogus", "world"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestParseArgsRejectsNetherAndEndTogether(t *testing.T) {
	if _, err := parseArgs([]string{"-nether", "-end", "world"}); err == nil {
		t.Fatal("expected -nether and -end to be mutually exclusive")
	}
}

func TestParseArgsRejectsFromWithoutTo(t *testing.T) {
	if _, err := parseArgs([]string{"-from", "0", "0", "world"}); err == nil {
		t.Fatal("expected an error when -from is given without -to")
	}
}

func TestParseArgsRejectsBadYRange(t *testing.T) {
	if _, err := parseArgs([]string{"-min", "100", "-max", "10", "world"}); err == nil {
		t.Fatal("expected an error when min > max")
	}
}

func TestRegionDirForDimensions(t *testing.T) {
	cases := []struct {
		a    args
		want string
	}{
		{args{worldPath: "w"}, "w/region"},
		{args{worldPath: "w", nether: true}, "w/DIM-1/region"},
		{args{worldPath: "w", end: true}, "w/DIM1/region"},
	}
	for _, c := range cases {
		got, err := regionDirFor(c.a)
		if err != nil {
			t.Fatalf("regionDirFor: %v", err)
		}
		if got != c.want {
			t.Fatalf("regionDirFor(%+v) = %q, want %q", c.a, got, c.want)
		}
	}
}

func TestResolveBoxFromFlags(t *testing.T) {
	a := args{haveFrom: true, fromX: 15, fromZ: 0, toX: 0, toZ: 15, minY: 0, maxY: 255, orientation: geometry.SE}
	box, err := resolveBox(a, "", nil)
	if err != nil {
		t.Fatalf("resolveBox: %v", err)
	}
	if box.MinX != 0 || box.MaxX != 15 || box.MinZ != 0 || box.MaxZ != 15 {
		t.Fatalf("resolveBox should normalize swapped from/to bounds: %+v", box)
	}
	if box.Orientation != geometry.SE {
		t.Fatalf("orientation not carried through: %+v", box)
	}
}

func TestShardCountCapsAtChunkCount(t *testing.T) {
	box := geometry.Coordinates{MinX: 0, MaxX: 15, MinZ: 0, MaxZ: 15}
	if got := shardCount(box); got != 1 {
		t.Fatalf("a single-chunk box should never shard past 1, got %d", got)
	}
}
