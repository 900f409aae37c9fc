// github.com/go-msdf/msdf/truetypesrc - a TrueType glyf outline adapter
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

// Package truetypesrc adapts github.com/goki/freetype/truetype's directly
// parsed TrueType glyf outlines into msdf.Shape values. It is a reference
// external collaborator and the module's only msdf.FontSource
// implementation; cffsrc decodes single CFF charstrings into Shapes but
// does not implement FontSource.
package truetypesrc

import (
	"fmt"

	"github.com/goki/freetype/truetype"

	"github.com/go-msdf/msdf"
)

// Source loads glyphs from one parsed TrueType font.
type Source struct {
	font *truetype.Font
	buf  truetype.GlyphBuf // reused across LoadShape calls, teacher-style
}

// Parse parses a TrueType font from its raw bytes.
func Parse(data []byte) (*Source, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", msdf.ErrInvalidFontData, err)
	}
	return &Source{font: f}, nil
}

// UnitsPerEm implements msdf.FontSource.
func (s *Source) UnitsPerEm() float64 {
	return float64(s.font.UnitsPerEm())
}

// LoadShape implements msdf.FontSource: decodes the glyf outline for r into
// linear and quadratic segments in font-unit (Y-up) coordinates.
func (s *Source) LoadShape(r rune) (*msdf.Shape, msdf.GlyphMetrics, error) {
	idx := s.font.Index(r)
	if idx == 0 {
		return nil, msdf.GlyphMetrics{}, msdf.ErrGlyphNotFound
	}

	// Load at a scale of unitsPerEm<<6: freetype.Load reports points in
	// 26.6 fixed point, scale/unitsPerEm==64 so dividing by 64 recovers
	// exact font units without any resampling.
	scale := int32(s.font.UnitsPerEm()) << 6
	if err := s.buf.Load(s.font, scale, idx, nil); err != nil {
		return nil, msdf.GlyphMetrics{}, fmt.Errorf("%w: %v", msdf.ErrInvalidGlyph, err)
	}

	sh := glyphBufToShape(&s.buf)

	hm := s.font.HMetric(idx)
	bounds := s.font.Bounds()
	metrics := msdf.GlyphMetrics{
		AdvanceWidth: float64(hm.AdvanceWidth),
		Bounds: msdf.Bounds{
			Min: msdf.Vec2{X: float64(bounds.XMin), Y: float64(bounds.YMin)},
			Max: msdf.Vec2{X: float64(bounds.XMax), Y: float64(bounds.YMax)},
		},
	}

	return sh, metrics, nil
}

// pointScale converts a 26.6-fixed glyf coordinate (scaled by unitsPerEm<<6
// at Load time) back to font units.
func pointScale(v int32) float64 {
	return float64(v) / 64
}

// glyphBufToShape walks buf's flattened point list contour by contour,
// decoding the on/off-curve point flags into Linear and Quadratic
// segments. Grounded on the implied-on-curve-midpoint / onbits3 bit-trick
// pattern used by reference TrueType-to-curve decoders.
func glyphBufToShape(buf *truetype.GlyphBuf) *msdf.Shape {
	sh := &msdf.Shape{}
	start := 0
	for _, end := range buf.End {
		pts := buf.Point[start:end]
		start = end
		if len(pts) == 0 {
			continue
		}
		sh.Contours = append(sh.Contours, contourFromPoints(pts))
	}
	return sh
}

const onCurveFlag = 1

func onCurve(p truetype.Point) bool {
	return p.Flags&onCurveFlag != 0
}

func vecAt(pts []truetype.Point, i int) msdf.Vec2 {
	n := len(pts)
	p := pts[((i%n)+n)%n]
	return msdf.Vec2{X: pointScale(p.X), Y: pointScale(p.Y)}
}

func onCurveAt(pts []truetype.Point, i int) bool {
	n := len(pts)
	return onCurve(pts[((i%n)+n)%n])
}

// contourFromPoints decodes one glyf contour. TrueType contours omit
// on-curve points between two consecutive off-curve points; such a point
// is implied at the midpoint of its neighbors.
func contourFromPoints(pts []truetype.Point) msdf.Contour {
	n := len(pts)

	// Rotate the start to an on-curve point if one exists, so the contour
	// begins and ends on a real point rather than an implied midpoint.
	startIdx := 0
	for i := 0; i < n; i++ {
		if onCurve(pts[i]) {
			startIdx = i
			break
		}
	}
	firstOn := vecAt(pts, startIdx)
	loopBase := startIdx
	if !onCurveAt(pts, startIdx) {
		// Every point is off-curve: synthesize the start as the implied
		// midpoint between the last and first points, and shift the loop's
		// base back by one so the first control point consumed is
		// pts[startIdx] itself rather than skipping it.
		firstOn = vecAt(pts, startIdx-1).Add(vecAt(pts, startIdx)).Mul(0.5)
		loopBase = startIdx - 1
	}

	cur := firstOn
	var edges []msdf.Segment
	for i := 0; i < n; {
		k := loopBase + i
		if onCurveAt(pts, k+1) {
			next := vecAt(pts, k+1)
			edges = append(edges, msdf.NewLinear(cur, next, msdf.Black))
			cur = next
			i++
			continue
		}

		ctrl := vecAt(pts, k+1)
		var end msdf.Vec2
		if onCurveAt(pts, k+2) {
			end = vecAt(pts, k+2)
			i += 2
		} else {
			end = ctrl.Add(vecAt(pts, k+2)).Mul(0.5)
			i++
		}
		edges = append(edges, msdf.NewQuadratic(cur, ctrl, end, msdf.Black))
		cur = end
	}

	if cur != firstOn {
		edges = append(edges, msdf.NewLinear(cur, firstOn, msdf.Black))
	}

	return msdf.Contour{Edges: edges}
}
