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

// GenerateOptions configures per-pixel MSDF synthesis.
type GenerateOptions struct {
	Transform Transform
	Range     float64 // full-transition width in shape units (spec.md's Open Question: "range", not "2*range")
}

// channelEdge is the edge (and its minimizing result) that produced a
// channel's raw signed distance at one pixel, kept so pseudo-distance
// conversion can re-derive the tangent-line distance when needed.
type channelEdge struct {
	seg    Segment
	result DistanceResult
	found  bool
}

// Generate fills bitmap with the MSDF of sh under opts. bitmap must already
// be sized; sh should have been Normalize()d and colored via ColorEdges
// before calling Generate.
func Generate(sh *Shape, bitmap *MsdfBitmap, opts GenerateOptions) {
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			p := opts.Transform.PixelToShape(x, y)

			red := bestChannel(sh, p, EdgeColor.HasRed)
			green := bestChannel(sh, p, EdgeColor.HasGreen)
			blue := bestChannel(sh, p, EdgeColor.HasBlue)

			rd := channelDistance(red, p)
			gd := channelDistance(green, p)
			bd := channelDistance(blue, p)

			// The raw segment distance contract is already negative for
			// interior points along a CCW contour, matching the MSDF
			// convention (inside negative/bright, outside positive/dark)
			// directly -- no sign flip needed here.
			rb := distanceToPixel(rd, opts.Range)
			gb := distanceToPixel(gd, opts.Range)
			bb := distanceToPixel(bd, opts.Range)

			bitmap.Set(x, bitmap.Height-1-y, rb, gb, bb)
		}
	}
}

func bestChannel(sh *Shape, p Vec2, has func(EdgeColor) bool) channelEdge {
	best := channelEdge{result: infiniteDistanceResult}
	for _, c := range sh.Contours {
		for _, e := range c.Edges {
			if !has(e.Color) {
				continue
			}
			r := e.SignedDistanceWithParam(p)
			if r.Distance.Less(best.result.Distance) {
				best = channelEdge{seg: e, result: r, found: true}
			}
		}
	}
	return best
}

// channelDistance applies pseudo-distance conversion to a channel's raw
// minimum and returns the resulting signed distance value.
func channelDistance(ce channelEdge, origin Vec2) float64 {
	if !ce.found {
		return math.Inf(1)
	}
	sd := pseudoDistance(ce.seg, origin, ce.result.Param, ce.result.Distance)
	return sd.Distance
}

// pseudoDistance implements spec.md 4.5's pseudo-distance conversion: for
// a minimum achieved outside [0,1], the distance is optionally replaced by
// the signed perpendicular distance to the segment's extended tangent
// line at the nearer endpoint, but only when doing so does not increase
// the magnitude and the query point actually lies beyond that endpoint
// along the tangent.
func pseudoDistance(e Segment, origin Vec2, param float64, sd SignedDistance) SignedDistance {
	switch {
	case param >= 0 && param <= 1:
		return sd

	case param < 0:
		start := e.Start()
		tangent := e.startTangent().Normalize()
		pointMinusOrigin := start.Sub(origin)
		if pointMinusOrigin.Dot(tangent) > 0 {
			// origin lies behind the start along the tangent
			return applyTangentLine(start, tangent, origin, sd)
		}
		return sd

	default: // param > 1
		end := e.End()
		tangent := e.endTangent().Normalize()
		pointMinusOrigin := origin.Sub(end)
		if pointMinusOrigin.Dot(tangent) > 0 {
			return applyTangentLine(end, tangent, origin, sd)
		}
		return sd
	}
}

func applyTangentLine(anchor, tangent, origin Vec2, sd SignedDistance) SignedDistance {
	pointMinusOrigin := anchor.Sub(origin)
	newDist := tangent.Cross(pointMinusOrigin)
	if math.Abs(newDist) <= math.Abs(sd.Distance) {
		return SignedDistance{Distance: newDist, Orthogonality: 0}
	}
	return sd
}

// distanceToPixel maps a channel distance (negative inside) to a byte:
// 0.5 - d/range, clamped to [0,1] and scaled to [0,255].
func distanceToPixel(d, rnge float64) byte {
	if math.IsInf(d, 0) {
		if d > 0 {
			return 0
		}
		return 255
	}
	v := 0.5 - d/rnge
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(math.Round(v * 255))
}

// pixelToDistance inverts distanceToPixel, for testing the round trip.
func pixelToDistance(px byte, rnge float64) float64 {
	v := float64(px) / 255
	return (0.5 - v) * rnge
}
