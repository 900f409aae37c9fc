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

// MsdfBitmap is a row-major RGB bitmap: 3 bytes per pixel, no stride
// padding, len(Pixels) == 3*Width*Height. Row 0 is the top of the image,
// as delivered to callers (the generator flips the shape's Y-up axis).
type MsdfBitmap struct {
	Pixels []byte
	Width  int
	Height int
}

// NewMsdfBitmap allocates a zeroed bitmap of the given size.
func NewMsdfBitmap(width, height int) *MsdfBitmap {
	return &MsdfBitmap{
		Pixels: make([]byte, 3*width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the RGB triple at (x,y).
func (b *MsdfBitmap) At(x, y int) (r, g, bl byte) {
	i := 3 * (y*b.Width + x)
	return b.Pixels[i], b.Pixels[i+1], b.Pixels[i+2]
}

// Set writes the RGB triple at (x,y).
func (b *MsdfBitmap) Set(x, y int, r, g, bl byte) {
	i := 3 * (y*b.Width + x)
	b.Pixels[i] = r
	b.Pixels[i+1] = g
	b.Pixels[i+2] = bl
}
