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

func TestSolveQuadratic(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c    float64
		wantCount  int
	}{
		{"two roots", 1, -3, 2, 2},     // (x-1)(x-2)
		{"no real roots", 1, 0, 1, 0},  // x^2+1
		{"degenerate to linear", 0, 2, -4, 1},
		{"repeated root", 1, -2, 1, 1}, // (x-1)^2
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			roots := solveQuadratic(c.a, c.b, c.c)
			if len(roots) != c.wantCount {
				t.Fatalf("got %d roots %v, want %d", len(roots), roots, c.wantCount)
			}
			for i := 1; i < len(roots); i++ {
				if roots[i-1] > roots[i] {
					t.Fatalf("roots not sorted ascending: %v", roots)
				}
			}
			for _, r := range roots {
				residual := c.a*r*r + c.b*r + c.c
				if math.Abs(residual) > 1e-9 {
					t.Errorf("root %v has residual %v", r, residual)
				}
			}
		})
	}
}

func TestSolveCubicResidualAndSorted(t *testing.T) {
	cases := []struct {
		name          string
		a, b, c, d    float64
	}{
		{"three real roots", 1, -6, 11, -6},  // (x-1)(x-2)(x-3)
		{"one real root", 1, 0, 0, -8},       // x^3 = 8
		{"triple root", 1, -3, 3, -1},        // (x-1)^3
		{"degenerate to quadratic", 0, 1, -3, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			roots := solveCubic(c.a, c.b, c.c, c.d)
			if len(roots) == 0 {
				t.Fatalf("expected at least one root")
			}
			for i := 1; i < len(roots); i++ {
				if roots[i-1] > roots[i] {
					t.Fatalf("roots not sorted ascending: %v", roots)
				}
			}
			for _, r := range roots {
				residual := c.a*r*r*r + c.b*r*r + c.c*r + c.d
				if math.Abs(residual) > 1e-6 {
					t.Errorf("root %v has residual %v", r, residual)
				}
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero vector should normalize to itself, got %v", got)
	}
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
}

func TestVec2Cross(t *testing.T) {
	if got := (Vec2{X: 1, Y: 0}).Cross(Vec2{X: 0, Y: 1}); got != 1 {
		t.Errorf("Cross((1,0),(0,1)) = %v, want 1", got)
	}
}

func TestBoundsUnion(t *testing.T) {
	b := EmptyBounds().Extend(Vec2{X: 1, Y: 2}).Union(EmptyBounds().Extend(Vec2{X: -1, Y: 5}))
	want := Bounds{Min: Vec2{X: -1, Y: 2}, Max: Vec2{X: 1, Y: 5}}
	if b != want {
		t.Errorf("got %v, want %v", b, want)
	}
}
