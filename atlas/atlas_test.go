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

import "testing"

func solidTile(id rune, w, h int, r, g, b byte) Tile {
	px := make([]byte, 3*w*h)
	for i := 0; i < w*h; i++ {
		px[3*i], px[3*i+1], px[3*i+2] = r, g, b
	}
	return Tile{ID: id, Pixels: px, Width: w, Height: h}
}

func TestPackNonOverlappingPlacements(t *testing.T) {
	tiles := []Tile{
		solidTile('a', 16, 16, 255, 0, 0),
		solidTile('b', 16, 16, 0, 255, 0),
		solidTile('c', 16, 16, 0, 0, 255),
		solidTile('d', 16, 16, 255, 255, 0),
		solidTile('e', 16, 16, 0, 255, 255),
	}

	sheet, placements, err := Pack(tiles, 16, 2)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(placements) != len(tiles) {
		t.Fatalf("got %d placements, want %d", len(placements), len(tiles))
	}

	type rect struct{ x0, y0, x1, y1 int }
	var rects []rect
	for _, p := range placements {
		rects = append(rects, rect{p.X, p.Y, p.X + p.Width, p.Y + p.Height})
		if p.U0 < 0 || p.U0 > 1 || p.U1 < 0 || p.U1 > 1 || p.V0 < 0 || p.V0 > 1 || p.V1 < 0 || p.V1 > 1 {
			t.Errorf("UV rect out of [0,1]: %+v", p)
		}
		if p.X+p.Width > sheet.Width || p.Y+p.Height > sheet.Height {
			t.Errorf("placement %+v exceeds sheet %dx%d", p, sheet.Width, sheet.Height)
		}
	}
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			overlap := a.x0 < b.x1 && b.x0 < a.x1 && a.y0 < b.y1 && b.y0 < a.y1
			if overlap {
				t.Errorf("tiles %d and %d overlap: %+v vs %+v", i, j, a, b)
			}
		}
	}

	if len(sheet.Pixels) != 4*sheet.Width*sheet.Height {
		t.Errorf("sheet pixel buffer length = %d, want %d", len(sheet.Pixels), 4*sheet.Width*sheet.Height)
	}
	for i := 3; i < len(sheet.Pixels); i += 4 {
		if sheet.Pixels[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, sheet.Pixels[i])
		}
	}
}

func TestPackBlitsPixelData(t *testing.T) {
	tiles := []Tile{solidTile('x', 4, 4, 10, 20, 30)}
	sheet, placements, err := Pack(tiles, 4, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	p := placements['x']
	i := 4 * (p.Y*sheet.Width + p.X)
	if sheet.Pixels[i] != 10 || sheet.Pixels[i+1] != 20 || sheet.Pixels[i+2] != 30 || sheet.Pixels[i+3] != 255 {
		t.Errorf("blitted pixel = %v, want (10,20,30,255)", sheet.Pixels[i:i+4])
	}
}

func TestPackEmptyTileList(t *testing.T) {
	sheet, placements, err := Pack(nil, 16, 2)
	if err != nil {
		t.Fatalf("Pack(nil): %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("got %d placements for empty input, want 0", len(placements))
	}
	if sheet.Width == 0 || sheet.Height == 0 {
		t.Error("empty-input sheet should still have nonzero dimensions")
	}
}
