// github.com/go-msdf/msdf/atlas - shelf packing for glyph bitmap atlases
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

// Package atlas packs multiple glyph bitmaps into one RGBA sheet using
// shelf packing, adapted from a GPU text atlas's rectangle allocator:
// rectangles are placed left-to-right on horizontal shelves of growing
// height, a new shelf starting whenever the current one runs out of
// width.
package atlas

// shelf is one horizontal strip of the sheet.
type shelf struct {
	y      int
	height int
	x      int
}

// shelfAllocator packs same- or mixed-size rectangles into a fixed-size
// sheet. Cells generated by this kernel are all the same size (one
// MSDF per codepoint, rendered at the same options.Size), so in
// practice every shelf ends up holding exactly `cols` cells, but the
// allocator itself does not assume uniform sizes.
type shelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf
}

func newShelfAllocator(width, height, padding int) *shelfAllocator {
	return &shelfAllocator{width: width, height: height, padding: padding}
}

// allocate finds space for a w x h rectangle, trying existing shelves
// before starting a new one below the last.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		sh := &a.shelves[i]
		if sh.x+paddedW > a.width {
			continue
		}
		if h > sh.height {
			if i == len(a.shelves)-1 && sh.y+paddedH <= a.height {
				sh.height = h
				x, y = sh.x, sh.y
				sh.x += paddedW
				return x, y, true
			}
			continue
		}
		x, y = sh.x, sh.y
		sh.x += paddedW
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}
	if newY+paddedH > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	return 0, newY, true
}
