// github.com/go-msdf/msdf - a multi-channel signed distance field bitmap generator
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

package msdf

import (
	"errors"
	"fmt"

	"github.com/go-msdf/msdf/atlas"
)

// GlyphMetrics carries advance width and bounds normalized to the font's
// em unit (divided by unitsPerEm), so callers can scale independent of
// the rendered bitmap size (spec.md 6).
type GlyphMetrics struct {
	AdvanceWidth float64
	Bounds       Bounds
}

// FontSource is the interface the kernel consumes from an external
// collaborator (truetypesrc.Source implements it; cffsrc only decodes a
// single charstring and does not): it treats a Shape as opaque input
// and does not look inside segments until distance computation
// (spec.md 6 / 1).
type FontSource interface {
	// LoadShape returns a closed Shape in font-unit coordinates (Y up) for
	// r, plus its metrics. Returns ErrGlyphNotFound if r has no glyph.
	LoadShape(r rune) (*Shape, GlyphMetrics, error)
	UnitsPerEm() float64
}

// GenerateOptionsPublic configures glyph and atlas generation.
type GenerateOptionsPublic struct {
	Size    uint32
	Padding uint32
	Range   float64
}

// MsdfResult is the output of GenerateGlyph: a tightly packed RGB bitmap
// (spec.md 6's bit-exact format) plus the glyph's em-normalized metrics.
type MsdfResult struct {
	Pixels  []byte
	Width   int
	Height  int
	Metrics GlyphMetrics
}

// GenerateGlyph runs the full pipeline (parse via font, normalize, color,
// generate, correct) for one codepoint, fitting the glyph's bounds into
// size-2*padding pixels.
func GenerateGlyph(font FontSource, r rune, opts GenerateOptionsPublic) (*MsdfResult, error) {
	sh, metrics, err := font.LoadShape(r)
	if err != nil {
		return nil, err
	}

	transform := runPipeline(sh, opts)

	bitmap := NewMsdfBitmap(int(opts.Size), int(opts.Size))
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: opts.Range})
	CorrectErrors(sh, bitmap, transform)

	unitsPerEm := font.UnitsPerEm()
	if unitsPerEm == 0 {
		unitsPerEm = 1
	}
	normalized := GlyphMetrics{
		AdvanceWidth: metrics.AdvanceWidth / unitsPerEm,
		Bounds: Bounds{
			Min: Vec2{X: metrics.Bounds.Min.X / unitsPerEm, Y: metrics.Bounds.Min.Y / unitsPerEm},
			Max: Vec2{X: metrics.Bounds.Max.X / unitsPerEm, Y: metrics.Bounds.Max.Y / unitsPerEm},
		},
	}

	return &MsdfResult{
		Pixels:  bitmap.Pixels,
		Width:   bitmap.Width,
		Height:  bitmap.Height,
		Metrics: normalized,
	}, nil
}

// runPipeline runs normalize->color on an already-loaded shape (the caller
// then generates/corrects) and returns the fitted transform, per spec.md
// 5's strict phase ordering.
func runPipeline(sh *Shape, opts GenerateOptionsPublic) Transform {
	sh.Normalize()
	ColorEdges(sh, nil)
	return FitTransform(sh.Bounds(), opts.Size, opts.Padding)
}

// AtlasGlyph records one packed glyph's placement and metrics within an
// AtlasResult's sheet.
type AtlasGlyph struct {
	Metrics        GlyphMetrics
	X, Y           int
	Width, Height  int
	U0, V0, U1, V1 float64
}

// AtlasResult is the output of GenerateAtlas: one RGBA sheet (alpha
// always 255, spec.md 6) packing every requested glyph, plus each
// glyph's placement.
type AtlasResult struct {
	Pixels []byte
	Width  int
	Height int
	Glyphs map[rune]AtlasGlyph
}

// GenerateAtlas packs one MSDF per codepoint in codepoints into a single
// RGBA sheet, delegating placement to the atlas package's shelf packer
// (cols ~= ceil(sqrt(n))+1 cells per row, each cell opts.Size square). A
// glyph missing from font is skipped (ErrGlyphNotFound); any other error
// aborts and is returned wrapped with the offending codepoint.
func GenerateAtlas(font FontSource, codepoints []rune, opts GenerateOptionsPublic) (*AtlasResult, error) {
	metricsByRune := make(map[rune]GlyphMetrics)
	var tiles []atlas.Tile

	for _, r := range codepoints {
		res, err := GenerateGlyph(font, r, opts)
		if err != nil {
			if errors.Is(err, ErrGlyphNotFound) {
				continue
			}
			return nil, fmt.Errorf("msdf: generating glyph for codepoint %d (%q): %w", r, r, err)
		}
		metricsByRune[r] = res.Metrics
		tiles = append(tiles, atlas.Tile{ID: r, Pixels: res.Pixels, Width: res.Width, Height: res.Height})
	}

	sheet, placements, err := atlas.Pack(tiles, int(opts.Size), int(opts.Padding))
	if err != nil {
		return nil, err
	}

	out := &AtlasResult{
		Pixels: sheet.Pixels,
		Width:  sheet.Width,
		Height: sheet.Height,
		Glyphs: make(map[rune]AtlasGlyph, len(tiles)),
	}
	for r, p := range placements {
		out.Glyphs[r] = AtlasGlyph{
			Metrics: metricsByRune[r],
			X:       p.X, Y: p.Y,
			Width: p.Width, Height: p.Height,
			U0: p.U0, V0: p.V0, U1: p.U1, V1: p.V1,
		}
	}

	return out, nil
}
