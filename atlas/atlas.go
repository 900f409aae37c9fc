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

package atlas

import (
	"fmt"
	"math"
)

// Tile is one glyph's already-rendered RGB bitmap, ready to be packed.
type Tile struct {
	ID     rune
	Pixels []byte // row-major RGB, len == 3*Width*Height
	Width  int
	Height int
}

// Placement records where one Tile landed in a packed Sheet.
type Placement struct {
	X, Y, Width, Height int
	U0, V0, U1, V1      float64
}

// Sheet is a packed RGBA bitmap: one pass produces this plus the
// per-tile Placement map.
type Sheet struct {
	Pixels []byte // row-major RGBA, alpha always 255
	Width  int
	Height int
}

// ErrSheetTooSmall is returned when the computed sheet cannot fit every
// tile even with the shelf allocator's best effort.
var ErrSheetTooSmall = fmt.Errorf("atlas: sheet too small to fit all tiles")

// Pack lays out tiles (each assumed cellSize x cellSize, per spec.md 6's
// generate_atlas contract) using shelf packing with cols ~= ceil(sqrt(n))+1
// columns, each separated by padding pixels, and returns the composited
// RGBA sheet plus each tile's placement (pixel rect and UV rect).
func Pack(tiles []Tile, cellSize, padding int) (*Sheet, map[rune]Placement, error) {
	n := len(tiles)
	if n == 0 {
		return &Sheet{Width: 1, Height: 1, Pixels: []byte{0, 0, 0, 255}}, map[rune]Placement{}, nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(n)))) + 1
	rows := (n + cols - 1) / cols

	cellWithPad := cellSize + padding
	sheetW := cols*cellWithPad - padding
	sheetH := rows*cellWithPad - padding

	alloc := newShelfAllocator(sheetW+padding, sheetH+padding, padding)

	pixels := make([]byte, 4*sheetW*sheetH)
	for i := 3; i < len(pixels); i += 4 {
		pixels[i] = 255
	}
	sheet := &Sheet{Pixels: pixels, Width: sheetW, Height: sheetH}
	placements := make(map[rune]Placement, n)

	for _, t := range tiles {
		x, y, ok := alloc.allocate(t.Width, t.Height)
		if !ok {
			return nil, nil, ErrSheetTooSmall
		}
		blit(sheet, t, x, y)
		placements[t.ID] = Placement{
			X: x, Y: y, Width: t.Width, Height: t.Height,
			U0: float64(x) / float64(sheetW),
			V0: float64(y) / float64(sheetH),
			U1: float64(x+t.Width) / float64(sheetW),
			V1: float64(y+t.Height) / float64(sheetH),
		}
	}

	return sheet, placements, nil
}

// blit copies t's RGB pixels into sheet at (ox,oy), filling alpha=255.
func blit(sheet *Sheet, t Tile, ox, oy int) {
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			si := 3 * (y*t.Width + x)
			di := 4 * ((oy+y)*sheet.Width + (ox + x))
			sheet.Pixels[di] = t.Pixels[si]
			sheet.Pixels[di+1] = t.Pixels[si+1]
			sheet.Pixels[di+2] = t.Pixels[si+2]
			sheet.Pixels[di+3] = 255
		}
	}
}
