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

// Transform maps device pixel coordinates to shape (font-unit) coordinates.
type Transform struct {
	Scale     float64
	Translate Vec2
}

// PixelToShape maps a pixel's integer coordinates to the shape-space point
// sampled at that pixel's center (the "+0.5" in spec.md 3).
func (t Transform) PixelToShape(px, py int) Vec2 {
	return Vec2{
		X: (float64(px)+0.5)/t.Scale - t.Translate.X,
		Y: (float64(py)+0.5)/t.Scale - t.Translate.Y,
	}
}

// FitTransform computes the Transform that fits bounds into a
// (size-2*padding) square of pixels, preserving aspect ratio and centering
// the remainder, as required by generate_glyph (spec.md 6).
func FitTransform(bounds Bounds, size, padding uint32) Transform {
	avail := float64(size) - 2*float64(padding)
	if avail <= 0 {
		avail = 1
	}

	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y

	scale := avail
	if width > 0 || height > 0 {
		scale = avail / max(width, height)
		if width == 0 || height == 0 {
			// A zero-extent glyph on one axis (e.g. "space") still needs a
			// finite scale; fall back to fitting the other axis alone.
			if width > 0 {
				scale = avail / width
			} else if height > 0 {
				scale = avail / height
			} else {
				scale = 1
			}
		}
	}

	// Center the glyph within the full size x size frame: translate maps
	// the shape's bounds midpoint to the frame's midpoint, in shape units.
	frameCenter := float64(size) / 2 / scale
	shapeCenterX := (bounds.Min.X + bounds.Max.X) / 2
	shapeCenterY := (bounds.Min.Y + bounds.Max.Y) / 2

	return Transform{
		Scale:     scale,
		Translate: Vec2{X: frameCenter - shapeCenterX, Y: frameCenter - shapeCenterY},
	}
}
