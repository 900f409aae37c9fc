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

// SegmentKind discriminates the Segment variants. Segment is modeled as a
// tagged union (kind + fixed-size point array) rather than an interface
// with three implementations, so the hot distance-computation path never
// allocates or goes through a vtable — every segment lives inline in a
// Contour's edge slice.
type SegmentKind uint8

const (
	KindLinear SegmentKind = iota
	KindQuadratic
	KindCubic
)

// Segment is one bezier piece of a Contour: a Linear, Quadratic, or Cubic
// arc carrying a color channel mask. Points[0] is always the start, the
// last in-use point is always the end; points between are control handles.
type Segment struct {
	Kind   SegmentKind
	Points [4]Vec2 // only Points[:PointCount()] are meaningful
	Color  EdgeColor
}

// PointCount returns how many entries of Points are meaningful for the
// segment's Kind.
func (s Segment) PointCount() int {
	switch s.Kind {
	case KindLinear:
		return 2
	case KindQuadratic:
		return 3
	default:
		return 4
	}
}

func NewLinear(p0, p1 Vec2, color EdgeColor) Segment {
	return Segment{Kind: KindLinear, Points: [4]Vec2{p0, p1}, Color: color}
}

func NewQuadratic(p0, p1, p2 Vec2, color EdgeColor) Segment {
	return Segment{Kind: KindQuadratic, Points: [4]Vec2{p0, p1, p2}, Color: color}
}

func NewCubic(p0, p1, p2, p3 Vec2, color EdgeColor) Segment {
	return Segment{Kind: KindCubic, Points: [4]Vec2{p0, p1, p2, p3}, Color: color}
}

// Start returns the segment's first point.
func (s Segment) Start() Vec2 { return s.Points[0] }

// End returns the segment's last point.
func (s Segment) End() Vec2 { return s.Points[s.PointCount()-1] }

// Point evaluates the segment's position at parameter t (not clamped to
// [0,1]; callers that need the bounded position should clamp first).
func (s Segment) Point(t float64) Vec2 {
	switch s.Kind {
	case KindLinear:
		return s.Points[0].Lerp(s.Points[1], t)
	case KindQuadratic:
		p0, p1, p2 := s.Points[0], s.Points[1], s.Points[2]
		omt := 1 - t
		return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
	default:
		p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]
		omt := 1 - t
		omt2, t2 := omt*omt, t*t
		return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
	}
}

// Direction returns the first derivative (unnormalized tangent) at t.
func (s Segment) Direction(t float64) Vec2 {
	switch s.Kind {
	case KindLinear:
		return s.Points[1].Sub(s.Points[0])
	case KindQuadratic:
		p0, p1, p2 := s.Points[0], s.Points[1], s.Points[2]
		return p1.Sub(p0).Mul(2 * (1 - t)).Add(p2.Sub(p1).Mul(2 * t))
	default:
		p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]
		omt := 1 - t
		a := p1.Sub(p0).Mul(3 * omt * omt)
		b := p2.Sub(p1).Mul(6 * omt * t)
		c := p3.Sub(p2).Mul(3 * t * t)
		return a.Add(b).Add(c)
	}
}

// startTangent and endTangent return the chord used for sign computation
// exactly at t=0 / t=1, which for degenerate control configurations is
// better conditioned than the (possibly zero) derivative.
func (s Segment) startTangent() Vec2 {
	for i := 1; i < s.PointCount(); i++ {
		d := s.Points[i].Sub(s.Points[0])
		if d.Length() > 0 {
			return d
		}
	}
	return Vec2{}
}

func (s Segment) endTangent() Vec2 {
	n := s.PointCount()
	for i := n - 2; i >= 0; i-- {
		d := s.Points[n-1].Sub(s.Points[i])
		if d.Length() > 0 {
			return d
		}
	}
	return Vec2{}
}

// Bounds returns a bounding box for the segment, widened conservatively
// for curves by also including the control points (cheap and always
// valid, if not tight).
func (s Segment) Bounds() Bounds {
	b := EmptyBounds()
	for i := 0; i < s.PointCount(); i++ {
		b = b.Extend(s.Points[i])
	}
	return b
}

// Reverse returns a segment tracing the same geometry from end to start,
// preserving color. Cubic control points swap pairwise so the handle
// nearest the (new) start stays nearest the start.
func (s Segment) Reverse() Segment {
	switch s.Kind {
	case KindLinear:
		return NewLinear(s.Points[1], s.Points[0], s.Color)
	case KindQuadratic:
		return NewQuadratic(s.Points[2], s.Points[1], s.Points[0], s.Color)
	default:
		return NewCubic(s.Points[3], s.Points[2], s.Points[1], s.Points[0], s.Color)
	}
}

// signAt computes sign(cross(tangent, pointAtClosest - origin)) with the
// zero-cross tie going to +1, per the segment distance contract's sign
// rule (spec.md 4.2 item 2).
func signAt(tangent, pointMinusOrigin Vec2) float64 {
	cr := tangent.Cross(pointMinusOrigin)
	if cr >= 0 {
		return 1
	}
	return -1
}

// SignedDistanceWithParam computes the signed distance contract for origin
// against this segment: magnitude from the minimizing (possibly unclamped)
// t, sign from the tangent-cross rule using the chord at endpoints and the
// true tangent in the interior, and orthogonality as |cos theta| between
// the normalized tangent and the normalized approach vector.
func (s Segment) SignedDistanceWithParam(origin Vec2) DistanceResult {
	switch s.Kind {
	case KindLinear:
		return s.linearDistance(origin)
	case KindQuadratic:
		return s.quadraticDistance(origin)
	default:
		return s.cubicDistance(origin)
	}
}

func (s Segment) finishAt(origin Vec2, t float64) DistanceResult {
	p := s.Point(t)
	toOrigin := origin.Sub(p)
	dist := toOrigin.Length()

	var tangent Vec2
	switch {
	case t <= 0:
		tangent = s.startTangent()
	case t >= 1:
		tangent = s.endTangent()
	default:
		tangent = s.Direction(t)
	}

	sign := signAt(tangent, p.Sub(origin))
	nt := tangent.Normalize()
	no := toOrigin.Normalize()
	orth := math.Abs(nt.Dot(no))

	return DistanceResult{
		Distance: SignedDistance{Distance: sign * dist, Orthogonality: orth},
		Param:    t,
	}
}

func (s Segment) linearDistance(origin Vec2) DistanceResult {
	p0, p1 := s.Points[0], s.Points[1]
	d := p1.Sub(p0)
	length2 := d.Dot(d)
	if length2 == 0 {
		return infiniteDistanceResult
	}
	t := origin.Sub(p0).Dot(d) / length2
	return s.finishAt(origin, t)
}

// quadraticDistance solves the cubic "derivative of squared distance = 0"
// equation directly, per spec.md 4.2, and evaluates the candidates.
func (s Segment) quadraticDistance(origin Vec2) DistanceResult {
	p0, p1, p2 := s.Points[0], s.Points[1], s.Points[2]
	qa := p0.Sub(origin)
	qb := p1.Sub(p0).Mul(2)
	qc := p0.Sub(p1.Mul(2)).Add(p2)

	a := 2 * qc.Dot(qc)
	b := 3 * qb.Dot(qc)
	c := qb.Dot(qb) + 2*qa.Dot(qc)
	d := qa.Dot(qb)

	if a == 0 {
		// qc == 0: the quadratic degenerates to a straight line p0->p2,
		// traversed uniformly, so the line's parameter is the curve's too.
		return NewLinear(p0, p2, s.Color).linearDistance(origin)
	}

	roots := solveCubic(a, b, c, d)
	best := s.finishAt(origin, 0)
	for _, cand := range []float64{1} {
		r := s.finishAt(origin, cand)
		if r.Distance.Less(best.Distance) {
			best = r
		}
	}
	for _, t := range roots {
		if t > 0 && t < 1 {
			r := s.finishAt(origin, t)
			if r.Distance.Less(best.Distance) {
				best = r
			}
		}
	}
	return best
}

// cubicDistance has no closed-form critical-point solution (quintic), so
// it seeds Newton's method at N+1 evenly spaced parameters and keeps the
// best converged result, plus both endpoints, per spec.md 4.2.
func (s Segment) cubicDistance(origin Vec2) DistanceResult {
	const newtonSeeds = 4
	const newtonSteps = 4

	best := s.finishAt(origin, 0)
	if r := s.finishAt(origin, 1); r.Distance.Less(best.Distance) {
		best = r
	}

	for i := 0; i <= newtonSeeds; i++ {
		t := float64(i) / float64(newtonSeeds)
		for step := 0; step < newtonSteps; step++ {
			p := s.Point(t)
			d1 := s.Direction(t)
			d2 := s.secondDerivative(t)
			qe := p.Sub(origin)

			denom := d1.Dot(d1) + qe.Dot(d2)
			if math.Abs(denom) < 1e-12 {
				break
			}
			delta := qe.Dot(d1) / denom
			t -= delta
			if t <= 0 || t >= 1 {
				break
			}
		}
		if t > 0 && t < 1 {
			r := s.finishAt(origin, t)
			if r.Distance.Less(best.Distance) {
				best = r
			}
		}
	}
	return best
}

func (s Segment) secondDerivative(t float64) Vec2 {
	p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// FindInflectionPoints returns the cubic's interior inflection parameters
// (roots of the scalar cross B'(t) x B''(t), restricted to (0.01, 0.99))
// used by SplitAtInflections. Linear and quadratic segments have no
// inflections.
func (s Segment) FindInflectionPoints() []float64 {
	if s.Kind != KindCubic {
		return nil
	}
	// B'(t) x B''(t) is quadratic in t. Rather than expanding the symbolic
	// coefficients, sample its sign densely and bisect sign changes: same
	// contract (roots of B' x B'', restricted to the open interval), fewer
	// places for an algebra slip to hide.
	const samples = 64
	var roots []float64
	prevT := 0.0
	prevVal := s.Direction(prevT).Cross(s.secondDerivative(prevT))
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		val := s.Direction(t).Cross(s.secondDerivative(t))
		if (prevVal < 0) != (val < 0) && prevVal != val {
			root := bisectSignChange(func(x float64) float64 {
				return s.Direction(x).Cross(s.secondDerivative(x))
			}, prevT, t)
			if root > 0.01 && root < 0.99 {
				roots = append(roots, root)
			}
		}
		prevT, prevVal = t, val
	}
	return roots
}

func bisectSignChange(f func(float64) float64, lo, hi float64) float64 {
	flo := f(lo)
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// SplitAtInflections splits a cubic at its interior inflection points,
// yielding 1-3 cubics that concatenate to reproduce the original curve.
// Non-cubic segments are returned unchanged as a single-element slice.
func (s Segment) SplitAtInflections() []Segment {
	if s.Kind != KindCubic {
		return []Segment{s}
	}
	roots := s.FindInflectionPoints()
	if len(roots) == 0 {
		return []Segment{s}
	}
	sortFloats(roots)

	bounds := append([]float64{0}, roots...)
	bounds = append(bounds, 1)

	segs := make([]Segment, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		segs = append(segs, s.splitRange(bounds[i], bounds[i+1]))
	}
	return segs
}

// splitRange returns the cubic segment covering t in [t0,t1] of s, via
// two De Casteljau splits.
func (s Segment) splitRange(t0, t1 float64) Segment {
	_, right := s.deCasteljauSplit(t0)
	if t1 >= 1 {
		return right
	}
	// rescale t1 into right's parameterization
	t1r := (t1 - t0) / (1 - t0)
	left, _ := right.deCasteljauSplit(t1r)
	return left
}

// deCasteljauSplit splits a cubic at parameter t into two cubics that
// together retrace the original curve.
func (s Segment) deCasteljauSplit(t float64) (left, right Segment) {
	p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]

	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)

	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)

	p0123 := p012.Lerp(p123, t)

	left = NewCubic(p0, p01, p012, p0123, s.Color)
	right = NewCubic(p0123, p123, p23, p3, s.Color)
	return left, right
}

// ScanlineCrossing is one x-crossing of a horizontal line with this
// segment, together with the sign of dy/dt there (+1 where y increases
// with t, -1 where it decreases), used by the winding-number scanline test.
type ScanlineCrossing struct {
	X    float64
	Sign int
}

// ScanlineIntersections returns up to 3 crossings of the horizontal line
// y=Y with this segment. Roots at exactly t=0 or t=1 are excluded so
// shared endpoints between adjacent segments are not double-counted.
func (s Segment) ScanlineIntersections(y float64) []ScanlineCrossing {
	switch s.Kind {
	case KindLinear:
		return s.scanlineLinear(y)
	case KindQuadratic:
		return s.scanlineQuadratic(y)
	default:
		return s.scanlineCubic(y)
	}
}

func (s Segment) scanlineLinear(y float64) []ScanlineCrossing {
	p0, p1 := s.Points[0], s.Points[1]
	if (p0.Y-y)*(p1.Y-y) > 0 {
		return nil
	}
	if p0.Y == p1.Y {
		return nil
	}
	t := (y - p0.Y) / (p1.Y - p0.Y)
	if t <= 0 || t >= 1 {
		return nil
	}
	x := p0.X + t*(p1.X-p0.X)
	sign := 1
	if p1.Y < p0.Y {
		sign = -1
	}
	return []ScanlineCrossing{{X: x, Sign: sign}}
}

func (s Segment) scanlineQuadratic(y float64) []ScanlineCrossing {
	p0, p1, p2 := s.Points[0], s.Points[1], s.Points[2]
	a := p0.Y - 2*p1.Y + p2.Y
	b := 2 * (p1.Y - p0.Y)
	c := p0.Y - y

	roots := solveQuadratic(a, b, c)
	var out []ScanlineCrossing
	for _, t := range roots {
		if t <= 0 || t >= 1 {
			continue
		}
		p := s.Point(t)
		dy := s.Direction(t).Y
		if dy == 0 {
			continue
		}
		sign := 1
		if dy < 0 {
			sign = -1
		}
		out = append(out, ScanlineCrossing{X: p.X, Sign: sign})
	}
	return out
}

func (s Segment) scanlineCubic(y float64) []ScanlineCrossing {
	p0, p1, p2, p3 := s.Points[0], s.Points[1], s.Points[2], s.Points[3]
	a := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	b := 3*p0.Y - 6*p1.Y + 3*p2.Y
	c := -3*p0.Y + 3*p1.Y
	d := p0.Y - y

	roots := solveCubic(a, b, c, d)
	var out []ScanlineCrossing
	for _, t := range roots {
		if t <= 0 || t >= 1 {
			continue
		}
		p := s.Point(t)
		dy := s.Direction(t).Y
		if dy == 0 {
			continue
		}
		sign := 1
		if dy < 0 {
			sign = -1
		}
		out = append(out, ScanlineCrossing{X: p.X, Sign: sign})
	}
	return out
}
