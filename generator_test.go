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
	"math"
	"testing"
)

func TestDistanceToPixelRoundTrip(t *testing.T) {
	const rnge = 4.0

	if got := distanceToPixel(0, rnge); got != 128 {
		t.Errorf("distanceToPixel(0) = %d, want 128", got)
	}
	if got := distanceToPixel(-rnge/2, rnge); got != 255 {
		t.Errorf("distanceToPixel(-range/2) = %d, want 255", got)
	}
	if got := distanceToPixel(rnge/2, rnge); got != 0 {
		t.Errorf("distanceToPixel(+range/2) = %d, want 0", got)
	}

	for _, d := range []float64{-1.8, -0.7, 0, 0.3, 1.9} {
		px := distanceToPixel(d, rnge)
		back := pixelToDistance(px, rnge)
		if math.Abs(back-d) > 0.05*rnge {
			t.Errorf("round trip d=%v -> px=%d -> %v, off by more than 0.05*range", d, px, back)
		}
	}
}

func TestDistanceToPixelInfinite(t *testing.T) {
	if got := distanceToPixel(math.Inf(1), 4); got != 0 {
		t.Errorf("distanceToPixel(+Inf) = %d, want 0", got)
	}
	if got := distanceToPixel(math.Inf(-1), 4); got != 255 {
		t.Errorf("distanceToPixel(-Inf) = %d, want 255", got)
	}
}

func TestMedianOf3IsTrueMedian(t *testing.T) {
	perms := [][3]float64{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, p := range perms {
		if got := medianOf3(p[0], p[1], p[2]); got != 2 {
			t.Errorf("medianOf3(%v) = %v, want 2", p, got)
		}
	}
	if medianOf3(5, 5, 1) != 5 {
		t.Error("median of 5,5,1 should be 5")
	}
	if medianOf3(1, 1, 1) != 1 {
		t.Error("median of 1,1,1 should be 1")
	}
}

// unitSquareShape returns a single CCW unit-ish square contour, colored
// with distinct per-edge channels, ready for Generate.
func unitSquareShape() *Shape {
	c := squareContour(true)
	sh := &Shape{Contours: []Contour{c}}
	ColorEdges(sh, nil)
	return sh
}

// TestGenerateUnitSquare exercises scenario 1: a convex CCW square should
// render bright (high channel values) at its center and dark at pixels
// well outside it.
func TestGenerateUnitSquare(t *testing.T) {
	sh := unitSquareShape()
	const size = 32
	bitmap := NewMsdfBitmap(size, size)
	transform := FitTransform(sh.Bounds(), size, 4)
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: 4})

	cx, cy := size/2, size/2
	r, g, b := bitmap.At(cx, cy)
	if r < 200 || g < 200 || b < 200 {
		t.Errorf("center pixel (%d,%d,%d) should be bright (>=200) inside the square", r, g, b)
	}

	r, g, b = bitmap.At(0, 0)
	if r > 40 || g > 40 || b > 40 {
		t.Errorf("corner pixel (%d,%d,%d) should be dark (<=40) outside the square", r, g, b)
	}
	r, g, b = bitmap.At(size-1, size-1)
	if r > 40 || g > 40 || b > 40 {
		t.Errorf("opposite corner pixel (%d,%d,%d) should be dark (<=40) outside the square", r, g, b)
	}
}

// TestGenerateRingWithHole exercises scenario 2: an outer CCW ring with an
// inner CW hole should render bright in the ring body and dark in the
// hole, matching the non-zero fill rule.
func TestGenerateRingWithHole(t *testing.T) {
	sh := donutShape(true, false) // outer CCW, hole CW: already correctly oriented
	ColorEdges(sh, nil)

	const size = 64
	bitmap := NewMsdfBitmap(size, size)
	transform := FitTransform(sh.Bounds(), size, 2)
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: 4})

	if !sh.WindingAt(Vec2{X: 2, Y: 2}) {
		t.Fatal("sanity: ring body should be filled under the winding rule")
	}
	if sh.WindingAt(Vec2{X: 10, Y: 10}) {
		t.Fatal("sanity: hole should not be filled under the winding rule")
	}

	ringPixel := shapeToPixel(transform, size, Vec2{X: 2, Y: 2})
	holePixel := shapeToPixel(transform, size, Vec2{X: 10, Y: 10})

	rr, rg, rb := bitmap.At(ringPixel.x, ringPixel.y)
	ringMedian := medianOf3(float64(rr), float64(rg), float64(rb))
	if ringMedian < 200 {
		t.Errorf("ring body median = %v, want >= 200", ringMedian)
	}

	hr, hg, hb := bitmap.At(holePixel.x, holePixel.y)
	holeMedian := medianOf3(float64(hr), float64(hg), float64(hb))
	if holeMedian > 40 {
		t.Errorf("hole median = %v, want <= 40", holeMedian)
	}
}

type pixelCoord struct{ x, y int }

// shapeToPixel inverts FitTransform.PixelToShape's Y-flip to find the
// bitmap pixel a shape-space point lands in under Generate's output.
func shapeToPixel(transform Transform, size int, p Vec2) pixelCoord {
	px := int((p.X+transform.Translate.X)*transform.Scale - 0.5)
	py := int((p.Y+transform.Translate.Y)*transform.Scale - 0.5)
	py = size - 1 - py
	if px < 0 {
		px = 0
	}
	if px >= size {
		px = size - 1
	}
	if py < 0 {
		py = 0
	}
	if py >= size {
		py = size - 1
	}
	return pixelCoord{px, py}
}

// TestGenerateSharpCornerChannelDisagreement exercises scenario 3: at a
// sharp 90 degree corner, the three channels should not all agree, while a
// few pixels along each adjoining edge the channels should be close to
// each other again (within 20).
func TestGenerateSharpCornerChannelDisagreement(t *testing.T) {
	sh := unitSquareShape()
	const size = 32
	bitmap := NewMsdfBitmap(size, size)
	transform := FitTransform(sh.Bounds(), size, 2)
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: 4})

	corner := shapeToPixel(transform, size, Vec2{X: 10, Y: 0})
	r, g, b := bitmap.At(corner.x, corner.y)
	maxDiff := math.Max(math.Abs(float64(r)-float64(g)), math.Max(math.Abs(float64(g)-float64(b)), math.Abs(float64(r)-float64(b))))
	if maxDiff == 0 {
		t.Error("channels at a sharp corner should not all be exactly equal")
	}

	edgePoint := shapeToPixel(transform, size, Vec2{X: 5, Y: 0})
	er, eg, eb := bitmap.At(edgePoint.x, edgePoint.y)
	edgeDiff := math.Max(math.Abs(float64(er)-float64(eg)), math.Max(math.Abs(float64(eg)-float64(eb)), math.Abs(float64(er)-float64(eb))))
	if edgeDiff > 20 {
		t.Errorf("channels 5 units along an edge from the corner differ by %v, want <= 20", edgeDiff)
	}
}
