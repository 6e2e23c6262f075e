package palette

import _ "embed"

// defaultPaletteJSON is the built-in block-name-to-color table described in
// spec.md §6 ("A built-in BSON-encoded palette is embedded as a default").
// original_source embeds colors.bson via a generated C++ header
// (src/colors.cpp: "#include \"colors.bson\""); no BSON library appears
// anywhere in the retrieved example pack, and the on-disk overlay format is
// already JSON (spec.md §6), so the built-in default is embedded as JSON
// too — see DESIGN.md for the stdlib-vs-BSON tradeoff.
//
//go:embed default_palette.json
var defaultPaletteJSON []byte
