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

import "testing"

func TestNormalizeRepairsOrientation(t *testing.T) {
	sh := &Shape{Contours: []Contour{squareContour(false)}} // given CW
	sh.Normalize()

	if sh.Contours[0].Winding() <= 0 {
		t.Fatalf("normalized single contour winding = %d, want > 0", sh.Contours[0].Winding())
	}
	if !sh.WindingAt(Vec2{X: 5, Y: 5}) {
		t.Error("interior point should be filled after normalize")
	}
	if sh.WindingAt(Vec2{X: 20, Y: 20}) {
		t.Error("exterior point should not be filled")
	}
}

// donutShape builds a ring: an outer square contour and a smaller inner
// square hole, with the given orientations (outerCCW/innerCCW as given,
// before any normalization).
func donutShape(outerCCW, innerCCW bool) *Shape {
	outerPts := []Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}
	innerPts := []Vec2{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}
	mk := func(pts []Vec2, ccw bool) Contour {
		if !ccw {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}
		var edges []Segment
		for i := range pts {
			edges = append(edges, NewLinear(pts[i], pts[(i+1)%len(pts)], Black))
		}
		return Contour{Edges: edges}
	}
	return &Shape{Contours: []Contour{mk(outerPts, outerCCW), mk(innerPts, innerCCW)}}
}

func TestNormalizeDonutBothGivenCCW(t *testing.T) {
	sh := donutShape(true, true) // hole given with wrong (same) orientation
	sh.Normalize()

	if !sh.WindingAt(Vec2{X: 2, Y: 2}) {
		t.Error("point in the ring body should be filled")
	}
	if sh.WindingAt(Vec2{X: 10, Y: 10}) {
		t.Error("point in the hole should not be filled")
	}
	if sh.WindingAt(Vec2{X: 25, Y: 25}) {
		t.Error("point outside everything should not be filled")
	}
}

func TestNormalizeDonutAlreadyCorrect(t *testing.T) {
	sh := donutShape(true, false) // outer CCW, hole CW: already correct
	sh.Normalize()

	if !sh.WindingAt(Vec2{X: 2, Y: 2}) {
		t.Error("point in the ring body should be filled")
	}
	if sh.WindingAt(Vec2{X: 10, Y: 10}) {
		t.Error("point in the hole should not be filled")
	}
}

func TestShapeBoundsUnion(t *testing.T) {
	sh := &Shape{Contours: []Contour{squareContour(true), {
		Edges: []Segment{NewLinear(Vec2{X: -5, Y: -5}, Vec2{X: -1, Y: -1}, Black)},
	}}}
	b := sh.Bounds()
	if b.Min.X != -5 || b.Min.Y != -5 || b.Max.X != 10 || b.Max.Y != 10 {
		t.Errorf("got bounds %+v", b)
	}
}
