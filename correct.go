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

// stencilFlag marks per-pixel state during error correction.
type stencilFlag uint8

const (
	flagProtected stencilFlag = 1 << iota
	flagError
)

// cornerProtectionRadius is the half-width of the square neighborhood
// marked Protected around a detected corner junction. The reference paper
// documents 3x3; empirically 7x7 gives fewer false-positive corrections
// (spec.md 9's Open Question, resolved in favor of the larger radius).
const cornerProtectionRadius = 3 // 7x7 = 2*3+1

const (
	bodyAgreementLow  = 127
	bodyAgreementHigh = 127
	edgeBandLow       = 90
	edgeBandHigh      = 166
	junctionArtifactNeighborCount = 5

	interiorGapAgreeWithin = 50
	interiorGapOutlierOver = 40

	isolatedMedianNeighborCount = 6
	isolatedMedianDiffOver      = 30
)

// CorrectErrors runs the stencil-based error-correction pass described in
// spec.md 4.5/9 over bitmap in place, using sh's colored, normalized edges
// to locate corner junctions under transform.
func CorrectErrors(sh *Shape, bitmap *MsdfBitmap, transform Transform) {
	w, h := bitmap.Width, bitmap.Height
	stencil := make([]stencilFlag, w*h)

	protectCorners(sh, bitmap, transform, stencil)
	protectBody(bitmap, stencil)
	detectErrors(bitmap, stencil)
	applyCorrection(bitmap, stencil)
}

// protectCorners marks a (2*cornerProtectionRadius+1) square around every
// corner junction (an edge boundary where the adjacent colors differ).
func protectCorners(sh *Shape, bitmap *MsdfBitmap, transform Transform, stencil []stencilFlag) {
	for _, c := range sh.Contours {
		n := len(c.Edges)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			prev := c.Edges[(i-1+n)%n]
			cur := c.Edges[i]
			if prev.Color == cur.Color {
				continue
			}
			corner := cur.Start()
			// Invert Transform.PixelToShape: shape = (px+0.5)/scale - translate.
			px := int((corner.X+transform.Translate.X)*transform.Scale)
			py := int((corner.Y+transform.Translate.Y)*transform.Scale)
			// Bitmap rows are Y-flipped relative to shape space (Generate
			// writes row height-1-y), so mirror here too.
			py = bitmap.Height - 1 - py

			markSquare(stencil, bitmap.Width, bitmap.Height, px, py, cornerProtectionRadius, flagProtected)
		}
	}
}

func markSquare(stencil []stencilFlag, w, h, cx, cy, radius int, flag stencilFlag) {
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= w {
				continue
			}
			stencil[y*w+x] |= flag
		}
	}
}

// protectBody marks pixels whose three channels agree on side and whose
// median sits in the edge band, unless the pixel is a junction artifact
// (its side disagrees with at least junctionArtifactNeighborCount of its 8
// neighbors).
func protectBody(bitmap *MsdfBitmap, stencil []stencilFlag) {
	w, h := bitmap.Width, bitmap.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := bitmap.At(x, y)
			if !channelsAgreeOnSide(r, g, b) {
				continue
			}
			med := medianOf3(float64(r), float64(g), float64(b))
			if med < edgeBandLow || med > edgeBandHigh {
				continue
			}
			if isJunctionArtifact(bitmap, x, y) {
				continue
			}
			stencil[y*w+x] |= flagProtected
		}
	}
}

func channelsAgreeOnSide(r, g, b byte) bool {
	allHigh := r > bodyAgreementHigh && g > bodyAgreementHigh && b > bodyAgreementHigh
	allLow := r <= bodyAgreementLow && g <= bodyAgreementLow && b <= bodyAgreementLow
	return allHigh || allLow
}

func pixelSideHigh(bitmap *MsdfBitmap, x, y int) bool {
	r, g, b := bitmap.At(x, y)
	return medianOf3(float64(r), float64(g), float64(b)) > bodyAgreementHigh
}

func isJunctionArtifact(bitmap *MsdfBitmap, x, y int) bool {
	side := pixelSideHigh(bitmap, x, y)
	disagree := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= bitmap.Width || ny < 0 || ny >= bitmap.Height {
				continue
			}
			if pixelSideHigh(bitmap, nx, ny) != side {
				disagree++
			}
		}
	}
	return disagree >= junctionArtifactNeighborCount
}

// detectErrors marks Error on pixels with channel disagreement (outside
// Protected), interior-gap artifacts, and isolated-median artifacts (which
// override Protected).
func detectErrors(bitmap *MsdfBitmap, stencil []stencilFlag) {
	w, h := bitmap.Width, bitmap.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := bitmap.At(x, y)
			idx := y*w + x
			protected := stencil[idx]&flagProtected != 0

			if isolatedMedianArtifact(bitmap, x, y) {
				stencil[idx] |= flagError
				continue
			}

			if protected {
				continue
			}

			if !channelsAgreeOnSide(r, g, b) {
				stencil[idx] |= flagError
				continue
			}

			if interiorGapArtifact(r, g, b) {
				stencil[idx] |= flagError
			}
		}
	}
}

// interiorGapArtifact reports whether two of the three channels agree
// within interiorGapAgreeWithin while the third is an outlier by more than
// interiorGapOutlierOver.
func interiorGapArtifact(r, g, b byte) bool {
	vals := [3]float64{float64(r), float64(g), float64(b)}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		if abs64(vals[i]-vals[j]) <= interiorGapAgreeWithin &&
			abs64(vals[k]-vals[i]) > interiorGapOutlierOver &&
			abs64(vals[k]-vals[j]) > interiorGapOutlierOver {
			return true
		}
	}
	return false
}

func isolatedMedianArtifact(bitmap *MsdfBitmap, x, y int) bool {
	r, g, b := bitmap.At(x, y)
	med := medianOf3(float64(r), float64(g), float64(b))
	side := med > bodyAgreementHigh
	disagree := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= bitmap.Width || ny < 0 || ny >= bitmap.Height {
				continue
			}
			nr, ng, nb := bitmap.At(nx, ny)
			nmed := medianOf3(float64(nr), float64(ng), float64(nb))
			nside := nmed > bodyAgreementHigh
			if nside != side && abs64(nmed-med) > isolatedMedianDiffOver {
				disagree++
			}
		}
	}
	return disagree >= isolatedMedianNeighborCount
}

// applyCorrection replaces each Error pixel's channels with a weighted
// average of its own median and its 4-neighborhood medians (non-error
// neighbors weight 2, error neighbors weight 1), flattening the pixel to
// an equalized grayscale value.
func applyCorrection(bitmap *MsdfBitmap, stencil []stencilFlag) {
	w, h := bitmap.Width, bitmap.Height
	type offset struct{ dx, dy int }
	neighbors := [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	medians := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := bitmap.At(x, y)
			medians[y*w+x] = medianOf3(float64(r), float64(g), float64(b))
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if stencil[idx]&flagError == 0 {
				continue
			}
			sum := medians[idx] * 2
			weight := 2.0
			for _, o := range neighbors {
				nx, ny := x+o.dx, y+o.dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nidx := ny*w + nx
				nw := 2.0
				if stencil[nidx]&flagError != 0 {
					nw = 1.0
				}
				sum += medians[nidx] * nw
				weight += nw
			}
			v := sum / weight
			bitmap.Set(x, y, clampByte(v), clampByte(v), clampByte(v))
		}
	}
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
