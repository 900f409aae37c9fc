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

func newStencil(w, h int) []stencilFlag { return make([]stencilFlag, w*h) }

func TestMarkSquareClampsToBitmapBounds(t *testing.T) {
	const w, h = 10, 10
	stencil := newStencil(w, h)
	markSquare(stencil, w, h, 0, 0, 3, flagProtected)

	count := 0
	for _, s := range stencil {
		if s&flagProtected != 0 {
			count++
		}
	}
	// A 7x7 square centered at (0,0) clipped to the bitmap keeps only the
	// bottom-right quadrant: rows/cols 0..3, i.e. 4x4 = 16 pixels.
	if count != 16 {
		t.Errorf("got %d protected pixels, want 16 (clipped corner quadrant)", count)
	}
}

func TestChannelsAgreeOnSide(t *testing.T) {
	if !channelsAgreeOnSide(200, 210, 220) {
		t.Error("three high values should agree on the high side")
	}
	if !channelsAgreeOnSide(10, 20, 30) {
		t.Error("three low values should agree on the low side")
	}
	if channelsAgreeOnSide(10, 200, 30) {
		t.Error("a mixed triple should not agree")
	}
}

func TestInteriorGapArtifact(t *testing.T) {
	if !interiorGapArtifact(200, 210, 20) {
		t.Error("two high agreeing channels with one low outlier should be an interior-gap artifact")
	}
	if interiorGapArtifact(200, 210, 220) {
		t.Error("three agreeing channels should not be an interior-gap artifact")
	}
	if interiorGapArtifact(100, 110, 120) {
		t.Error("three mid-band agreeing channels should not be an interior-gap artifact")
	}
}

// TestCorrectErrorsProtectsSquareCorners exercises the corner-protection
// step directly: every detected color-junction corner of a colored square
// should land inside a Protected stencil region.
func TestCorrectErrorsProtectsSquareCorners(t *testing.T) {
	sh := unitSquareShape()
	const size = 32
	bitmap := NewMsdfBitmap(size, size)
	transform := FitTransform(sh.Bounds(), size, 2)
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: 4})

	stencil := newStencil(size, size)
	protectCorners(sh, bitmap, transform, stencil)

	protectedCount := 0
	for _, s := range stencil {
		if s&flagProtected != 0 {
			protectedCount++
		}
	}
	if protectedCount == 0 {
		t.Fatal("expected at least one protected pixel around a square's corners")
	}
	for _, corner := range []Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}} {
		p := shapeToPixel(transform, size, corner)
		if stencil[p.y*size+p.x]&flagProtected == 0 {
			t.Errorf("corner %v (pixel %d,%d) is not protected", corner, p.x, p.y)
		}
	}
}

// TestCorrectErrorsRunsEndToEnd checks that CorrectErrors does not crash
// and that it leaves the bitmap's overall brightness pattern intact: the
// center of a filled square should still be bright, and the exterior
// should still be dark, after correction.
func TestCorrectErrorsRunsEndToEnd(t *testing.T) {
	sh := unitSquareShape()
	const size = 32
	bitmap := NewMsdfBitmap(size, size)
	transform := FitTransform(sh.Bounds(), size, 4)
	Generate(sh, bitmap, GenerateOptions{Transform: transform, Range: 4})
	CorrectErrors(sh, bitmap, transform)

	cx, cy := size/2, size/2
	r, g, b := bitmap.At(cx, cy)
	if r < 150 || g < 150 || b < 150 {
		t.Errorf("center pixel (%d,%d,%d) should remain bright after correction", r, g, b)
	}

	r, g, b = bitmap.At(0, 0)
	if r > 80 || g > 80 || b > 80 {
		t.Errorf("corner pixel (%d,%d,%d) should remain dark after correction", r, g, b)
	}
}

func TestApplyCorrectionFlattensErrorPixelToGray(t *testing.T) {
	const w, h = 3, 3
	bitmap := NewMsdfBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bitmap.Set(x, y, 200, 200, 200)
		}
	}
	bitmap.Set(1, 1, 255, 0, 128) // the pixel to be corrected

	stencil := newStencil(w, h)
	stencil[1*w+1] |= flagError
	applyCorrection(bitmap, stencil)

	r, g, b := bitmap.At(1, 1)
	if r != g || g != b {
		t.Errorf("corrected pixel should be flattened to gray, got (%d,%d,%d)", r, g, b)
	}
}
