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

import "math"

// cornerAngleThreshold (radians) sets how sharp a junction must be to
// count as a corner: isCorner compares |sin| of the turn between the edges
// against sin(cornerAngleThreshold), so ~3.0 rad (~172°) means any
// deflection greater than ~8° (pi - 3.0) is treated as a corner (spec.md 4.4).
const cornerAngleThreshold = 3.0

var sinCornerThreshold = math.Sin(cornerAngleThreshold)

// isCorner reports whether the junction between the incoming direction a
// and the outgoing direction b is a corner: either the directions point
// 90° or more apart, or |sin| of the turn angle exceeds
// sin(cornerAngleThreshold), i.e. the turn is more than about 8°.
func isCorner(a, b Vec2) bool {
	if a.Dot(b) <= 0 {
		return true
	}
	return math.Abs(a.Cross(b)) > sinCornerThreshold
}

// ColorEdges assigns a channel-mask EdgeColor to every edge of every
// contour in the shape so that at each detected corner, the two meeting
// edges carry different colors. Color state persists across contours
// (seed is threaded through) so disjoint contours land on different
// starting colors, improving channel diversity across the whole shape.
func ColorEdges(sh *Shape, seed *uint64) {
	current := Cyan
	for ci := range sh.Contours {
		current = colorContour(&sh.Contours[ci], current, seed)
	}
}

// colorContour colors one contour in place and returns the color state to
// carry into the next contour.
func colorContour(c *Contour, startColor EdgeColor, seed *uint64) EdgeColor {
	n := len(c.Edges)
	switch n {
	case 0:
		return startColor
	case 1:
		c.Edges[0].Color = White
		return startColor
	}

	corners := cornerIndices(c)

	switch {
	case len(corners) == 0 && n >= 3:
		// Smooth loop: switch once, paint every edge that one color.
		col := nextColor(startColor, seed)
		for i := range c.Edges {
			c.Edges[i].Color = col
		}
		return col

	case n == 2:
		c1 := nextColor(startColor, seed)
		c2 := nextColor(c1, seed)
		c.Edges[0].Color = c1
		c.Edges[1].Color = c2
		return c2

	case len(corners) == 1:
		return colorTeardrop(c, corners[0], startColor, seed)

	default:
		return colorMultiCorner(c, corners, startColor, seed)
	}
}

// cornerIndices returns, for each edge index i, whether the junction
// between edge i-1 and edge i (wrapping) is a corner. Returned as the list
// of edge indices that begin a new spline (i.e. are corners).
func cornerIndices(c *Contour) []int {
	n := len(c.Edges)
	var corners []int
	for i := 0; i < n; i++ {
		prev := c.Edges[(i-1+n)%n]
		cur := c.Edges[i]
		a := prev.endTangent().Normalize()
		b := cur.startTangent().Normalize()
		if isCorner(a, b) {
			corners = append(corners, i)
		}
	}
	return corners
}

func nextColor(c EdgeColor, seed *uint64) EdgeColor {
	if seed != nil {
		return switchColorSeeded(c, seed)
	}
	return switchColor(c)
}

// trichotomy implements spec.md 4.4's three-way split function: for
// position i in [0,m), returns -1, 0, or 1 identifying which third of the
// contour i falls in, with the exact boundary given by the documented
// formula (chosen for parity with reference MSDF implementations rather
// than a naive i*3/m, which rounds differently at the thirds' edges).
func trichotomy(i, m int) int {
	v := 3.0 + 2.875*float64(i)/float64(m-1) - 1.4375 + 0.5
	return int(math.Floor(v)) - 3
}

// colorTeardrop handles the single-corner case: colors (c1, White, c2) are
// distributed symmetrically around the contour starting at the corner,
// using trichotomy to assign the first third c1, the middle third White,
// and the last third c2.
func colorTeardrop(c *Contour, corner int, startColor EdgeColor, seed *uint64) EdgeColor {
	n := len(c.Edges)
	c1 := nextColor(startColor, seed)
	c2 := switchColor(switchColor(c1))

	for i := 0; i < n; i++ {
		idx := (corner + i) % n
		switch trichotomy(i, n) {
		case -1:
			c.Edges[idx].Color = c1
		case 0:
			c.Edges[idx].Color = White
		default:
			c.Edges[idx].Color = c2
		}
	}
	return c2
}

// colorMultiCorner handles contours with two or more corners: one switch
// before the first corner, every edge within a spline (the run between
// consecutive corners) painted the same color, and a switch at each
// subsequent corner. At the final corner, if the color about to be used
// for the last spline would equal the first spline's color, it is switched
// onward to the one color that differs from both the first and the
// previous spline, so the last spline collides with neither neighbor.
func colorMultiCorner(c *Contour, corners []int, startColor EdgeColor, seed *uint64) EdgeColor {
	n := len(c.Edges)
	numSplines := len(corners)

	col := nextColor(startColor, seed)
	var firstSplineColor, prevSplineColor EdgeColor

	for s := 0; s < numSplines; s++ {
		start := corners[s]
		end := n
		if s+1 < numSplines {
			end = corners[s+1]
		} else {
			end = corners[0] + n
		}

		if s == numSplines-1 {
			// About to color the last spline: avoid collision with the
			// first spline's color across the closing corner, without
			// falling back onto the previous spline's color.
			for col == firstSplineColor || col == prevSplineColor {
				col = switchColor(col)
			}
		}

		for i := start; i < end; i++ {
			c.Edges[i%n].Color = col
		}

		if s == 0 {
			firstSplineColor = col
		}
		prevSplineColor = col
		if s < numSplines-1 {
			col = nextColor(col, seed)
		}
	}
	return col
}
