// github.com/go-msdf/msdf/cmd/msdfgen - a command-line MSDF atlas generator
// Copyright (C) 2026  The go-msdf Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command msdfgen renders a multi-channel signed distance field atlas for
// a set of codepoints from a TrueType font.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/go-msdf/msdf"
	"github.com/go-msdf/msdf/truetypesrc"
)

var (
	fontPath = flag.String("font", "", "path to a TrueType (.ttf) font file")
	chars    = flag.String("chars", "", "codepoints to render, given as a literal string")
	size     = flag.Uint("size", 32, "MSDF bitmap size in pixels (square)")
	padding  = flag.Uint("padding", 4, "padding in pixels around the glyph within its cell")
	rnge     = flag.Float64("range", 4, "distance field transition width, in shape units")
	out      = flag.String("out", "atlas.png", "output atlas PNG path")
)

func main() {
	flag.Parse()
	if *fontPath == "" || *chars == "" {
		log.Fatal("msdfgen: -font and -chars are required")
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("msdfgen: reading font: %v", err)
	}

	source, err := truetypesrc.Parse(data)
	if err != nil {
		log.Fatalf("msdfgen: parsing font: %v", err)
	}

	opts := msdf.GenerateOptionsPublic{
		Size:    uint32(*size),
		Padding: uint32(*padding),
		Range:   *rnge,
	}

	result, err := msdf.GenerateAtlas(source, []rune(*chars), opts)
	if err != nil {
		log.Fatalf("msdfgen: generating atlas: %v", err)
	}

	if err := writeAtlasPNG(*out, result); err != nil {
		log.Fatalf("msdfgen: writing atlas: %v", err)
	}

	if err := writeAtlasJSON(*out+".json", result); err != nil {
		log.Fatalf("msdfgen: writing metrics sidecar: %v", err)
	}

	log.Printf("msdfgen: wrote %s (%dx%d, %d glyphs)", *out, result.Width, result.Height, len(result.Glyphs))
}

func writeAtlasPNG(path string, result *msdf.AtlasResult) error {
	img := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	copy(img.Pix, result.Pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// glyphMetrics is the JSON sidecar shape for one packed glyph: its atlas
// placement, UV rectangle, and font metrics normalized to em units.
type glyphMetrics struct {
	Codepoint    rune    `json:"codepoint"`
	X            int     `json:"x"`
	Y            int     `json:"y"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	U0           float64 `json:"u0"`
	V0           float64 `json:"v0"`
	U1           float64 `json:"u1"`
	V1           float64 `json:"v1"`
	AdvanceWidth float64 `json:"advanceWidth"`
}

func writeAtlasJSON(path string, result *msdf.AtlasResult) error {
	glyphs := make([]glyphMetrics, 0, len(result.Glyphs))
	for r, g := range result.Glyphs {
		glyphs = append(glyphs, glyphMetrics{
			Codepoint: r,
			X:         g.X, Y: g.Y, Width: g.Width, Height: g.Height,
			U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			AdvanceWidth: g.Metrics.AdvanceWidth,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Width  int            `json:"width"`
		Height int            `json:"height"`
		Glyphs []glyphMetrics `json:"glyphs"`
	}{result.Width, result.Height, glyphs})
}
