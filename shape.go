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

import "sort"

// Shape is an ordered list of Contours: the outer boundaries and holes
// that make up one glyph. The Shape owns its contours exclusively; there
// are no back-references from a Contour to its Shape.
type Shape struct {
	Contours []Contour
}

// Bounds returns the union of all contour bounds.
func (sh Shape) Bounds() Bounds {
	b := EmptyBounds()
	for _, c := range sh.Contours {
		b = b.Union(c.Bounds())
	}
	return b
}

// WindingAt returns whether p is inside the shape under the non-zero fill
// rule: for every edge of every contour, count scanline crossings strictly
// to the right of p, summing signed directions across all contours.
func (sh Shape) WindingAt(p Vec2) bool {
	total := 0
	for _, c := range sh.Contours {
		for _, e := range c.Edges {
			for _, crossing := range e.ScanlineIntersections(p.Y) {
				if crossing.X > p.X {
					total += crossing.Sign
				}
			}
		}
	}
	return total != 0
}

// goldenRatioConjugate offsets the orientation-detection scanline within a
// contour's y-span, chosen to avoid rational coincidences with control
// points (spec.md 4.3).
const goldenRatioConjugate = 0.381966011250105

// taggedCrossing is one scanline crossing tagged with the index of the
// contour that produced it, used by Normalize's orientation vote.
type taggedCrossing struct {
	x          float64
	sign       int
	contourIdx int
}

// Normalize reorients every contour so that, afterward, each outer
// contour is CCW (positive winding) and each hole is CW. It implements
// the scanline-vote policy from spec.md 4.3 (chosen over the simpler
// largest-area heuristic per the Open Questions resolution in
// SPEC_FULL.md): for each contour, a golden-ratio scanline collects
// crossings from all contours, sorted by x with corner-hit ties zeroed
// out, and a left-to-right parity walk casts a ±1 orientation vote per
// contour; a contour whose votes net negative is reversed. Contours whose
// vote nets to zero fall back to a containment
// count: even containment depth expects CCW, odd expects CW.
func (sh *Shape) Normalize() {
	n := len(sh.Contours)
	if n == 0 {
		return
	}

	votes := make([]int, n)
	resolved := make([]bool, n)

	for i := range sh.Contours {
		bounds := sh.Contours[i].Bounds()
		if bounds.Min.Y > bounds.Max.Y {
			continue // empty contour
		}
		y := bounds.Min.Y + goldenRatioConjugate*(bounds.Max.Y-bounds.Min.Y)

		var crossings []taggedCrossing
		for ci, c := range sh.Contours {
			for _, e := range c.Edges {
				for _, cr := range e.ScanlineIntersections(y) {
					crossings = append(crossings, taggedCrossing{x: cr.X, sign: cr.Sign, contourIdx: ci})
				}
			}
		}
		sort.Slice(crossings, func(a, b int) bool { return crossings[a].x < crossings[b].x })

		// Zero out the direction of ambiguous corner-hit pairs sharing x.
		for k := 0; k < len(crossings)-1; k++ {
			if crossings[k].x == crossings[k+1].x {
				crossings[k].sign = 0
				crossings[k+1].sign = 0
			}
		}

		// A positive vote means the crossing already has the canonical
		// direction for its depth: at even parity (entering filled area)
		// a CCW outer boundary runs downward (sign -1); at odd parity the
		// expected direction flips.
		parity := 0
		for _, cr := range crossings {
			if cr.sign == 0 {
				continue
			}
			vote := -cr.sign
			if parity%2 == 1 {
				vote = -vote
			}
			votes[cr.contourIdx] += vote
			parity++
		}
	}

	for i, c := range sh.Contours {
		if votes[i] < 0 {
			resolved[i] = true
			sh.Contours[i] = c.Reverse()
		} else if votes[i] > 0 {
			resolved[i] = true
		}
	}

	// Fallback: containment depth for contours whose vote was exactly zero.
	for i, c := range sh.Contours {
		if resolved[i] || len(c.Edges) == 0 {
			continue
		}
		sample := interiorSamplePoint(c)
		depth := 0
		for j, other := range sh.Contours {
			if j == i {
				continue
			}
			if other.ContainsPoint(sample) {
				depth++
			}
		}
		wantCCW := depth%2 == 0
		winding := c.Winding()
		if (wantCCW && winding < 0) || (!wantCCW && winding > 0) {
			sh.Contours[i] = c.Reverse()
		}
	}
}

// interiorSamplePoint returns an approximate interior point of a contour,
// used only to test containment against other contours during Normalize's
// fallback path. The centroid of the edge start points, nudged a quarter
// of the way toward the first edge's midpoint, is used: Normalize only needs a point that is
// unambiguously inside this contour and not exactly on any edge.
func interiorSamplePoint(c Contour) Vec2 {
	if len(c.Edges) == 0 {
		return Vec2{}
	}
	var sum Vec2
	count := 0
	for _, e := range c.Edges {
		sum = sum.Add(e.Start())
		count++
	}
	centroid := sum.Mul(1 / float64(count))
	// Blend slightly toward the first edge's midpoint to avoid landing
	// exactly on a symmetric contour's own boundary or center void.
	mid := c.Edges[0].Point(0.5)
	return centroid.Lerp(mid, 0.25)
}

// SplitAtInflections replaces every cubic segment in every contour with
// the 1-3 cubics produced by splitting it at its interior inflection
// points (spec.md 4.3). Not used by default coloring (see SPEC_FULL.md's
// Open Question resolution) but exposed for callers that want it.
func (sh *Shape) SplitAtInflections() {
	for ci, c := range sh.Contours {
		var out []Segment
		for _, e := range c.Edges {
			out = append(out, e.SplitAtInflections()...)
		}
		sh.Contours[ci] = Contour{Edges: out}
	}
}
