// github.com/go-msdf/msdf/cffsrc - a Type 2 charstring interpreter
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

// Package cffsrc is a minimal Type 2 charstring interpreter: a small
// stack machine (spec.md 9's "iteration over stacks") that decodes the
// move/line/curve subset of the CharString operator set into an
// msdf.Shape of Linear and Cubic segments. It is deliberately narrow:
// hint operators are parsed and skipped, subroutine calls fail with
// ErrInvalidSubroutineIndex, and the escape operators and any other
// unsupported operator surface ErrInvalidOperator (spec.md 1's
// reference-collaborator scope).
package cffsrc

import (
	"github.com/go-msdf/msdf"
)

const (
	maxOperandStack = 48
	maxCallDepth     = 10
)

// Type 2 CharString operators this interpreter understands.
const (
	opHStem     = 1
	opVStem     = 3
	opVMoveTo   = 4
	opRLineTo   = 5
	opHLineTo   = 6
	opVLineTo   = 7
	opRRCurveTo = 8
	opCallSubr  = 10
	opReturn    = 11
	opEscape    = 12
	opEndChar   = 14
	opHStemHM   = 18
	opHintMask  = 19
	opCntrMask  = 20
	opRMoveTo   = 21
	opHMoveTo   = 22
	opVStemHM   = 23
	opRCurveLine = 24
	opRLineCurve = 25
	opVVCurveTo = 26
	opHHCurveTo = 27
	opCallGSubr = 29
	opVHCurveTo = 30
	opHVCurveTo = 31
)

// interpreter holds the Type 2 stack machine's state for one CharString.
type interpreter struct {
	stack     []float64
	x, y      float64
	nStems    int
	haveWidth bool

	shape        *msdf.Shape
	contour      []msdf.Segment
	contourOpen  bool
	contourStart msdf.Vec2
}

// Decode interprets a single (top-level, subroutine-free) Type 2
// CharString and returns the resulting Shape.
func Decode(charstring []byte) (*msdf.Shape, error) {
	ip := &interpreter{shape: &msdf.Shape{}}
	if err := ip.run(charstring); err != nil {
		return nil, err
	}
	ip.closeContour()
	return ip.shape, nil
}

func (ip *interpreter) push(v float64) error {
	if len(ip.stack) >= maxOperandStack {
		return msdf.ErrStackOverflow
	}
	ip.stack = append(ip.stack, v)
	return nil
}

func (ip *interpreter) clear() {
	ip.stack = ip.stack[:0]
}

// closeContour flushes the in-progress contour, first appending the
// implicit closing linear segment back to the contour's start point if
// the path didn't already return there (spec.md 3/8: generators that
// produce open paths must emit a closing linear segment).
func (ip *interpreter) closeContour() {
	if ip.contourOpen && len(ip.contour) > 0 {
		cur := msdf.Vec2{X: ip.x, Y: ip.y}
		if cur != ip.contourStart {
			ip.contour = append(ip.contour, msdf.NewLinear(cur, ip.contourStart, msdf.Black))
		}
		ip.shape.Contours = append(ip.shape.Contours, msdf.Contour{Edges: ip.contour})
	}
	ip.contour = nil
	ip.contourOpen = false
}

func (ip *interpreter) moveTo(dx, dy float64) {
	ip.closeContour()
	ip.x += dx
	ip.y += dy
	ip.contourStart = msdf.Vec2{X: ip.x, Y: ip.y}
	ip.contourOpen = true
}

func (ip *interpreter) lineTo(dx, dy float64) {
	start := msdf.Vec2{X: ip.x, Y: ip.y}
	ip.x += dx
	ip.y += dy
	end := msdf.Vec2{X: ip.x, Y: ip.y}
	ip.contour = append(ip.contour, msdf.NewLinear(start, end, msdf.Black))
}

func (ip *interpreter) curveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	p0 := msdf.Vec2{X: ip.x, Y: ip.y}
	p1 := msdf.Vec2{X: p0.X + dx1, Y: p0.Y + dy1}
	p2 := msdf.Vec2{X: p1.X + dx2, Y: p1.Y + dy2}
	p3 := msdf.Vec2{X: p2.X + dx3, Y: p2.Y + dy3}
	ip.x, ip.y = p3.X, p3.Y
	ip.contour = append(ip.contour, msdf.NewCubic(p0, p1, p2, p3, msdf.Black))
}

// consumeOddWidth drops a leading width argument from the stack before
// the first stem hint or moveto, per the Type 2 spec: such operators take
// one more argument than their normal arity exactly once, at the start of
// the charstring.
func (ip *interpreter) consumeOddWidth(expectedArgs int) {
	if ip.haveWidth {
		return
	}
	ip.haveWidth = true
	if len(ip.stack) > expectedArgs && (len(ip.stack)-expectedArgs)%2 == 1 {
		ip.stack = ip.stack[1:]
	}
}

// run interprets a flat top-level CharString. maxCallDepth documents the
// depth callsubr/callgsubr would recurse to if subroutines were
// supported; this reference decoder rejects them outright (see
// execOperator) so the limit is never exercised here.
func (ip *interpreter) run(cs []byte) error {
	i := 0
	for i < len(cs) {
		b0 := cs[i]
		switch {
		case b0 == 28:
			if i+2 >= len(cs) {
				return msdf.ErrUnterminatedCharString
			}
			v := int16(uint16(cs[i+1])<<8 | uint16(cs[i+2]))
			if err := ip.push(float64(v)); err != nil {
				return err
			}
			i += 3

		case b0 >= 32 && b0 <= 246:
			if err := ip.push(float64(int(b0) - 139)); err != nil {
				return err
			}
			i++

		case b0 >= 247 && b0 <= 250:
			if i+1 >= len(cs) {
				return msdf.ErrUnterminatedCharString
			}
			v := (int(b0)-247)*256 + int(cs[i+1]) + 108
			if err := ip.push(float64(v)); err != nil {
				return err
			}
			i += 2

		case b0 >= 251 && b0 <= 254:
			if i+1 >= len(cs) {
				return msdf.ErrUnterminatedCharString
			}
			v := -(int(b0)-251)*256 - int(cs[i+1]) - 108
			if err := ip.push(float64(v)); err != nil {
				return err
			}
			i += 2

		case b0 == 255:
			if i+4 >= len(cs) {
				return msdf.ErrUnterminatedCharString
			}
			bits := int32(uint32(cs[i+1])<<24 | uint32(cs[i+2])<<16 | uint32(cs[i+3])<<8 | uint32(cs[i+4]))
			if err := ip.push(float64(bits) / 65536); err != nil {
				return err
			}
			i += 5

		default:
			n, err := ip.execOperator(b0, cs, i)
			if err != nil {
				return err
			}
			i = n
		}
	}
	return nil
}

// execOperator dispatches one operator starting at cs[i] (cs[i] is the
// operator byte) and returns the index to resume parsing at.
func (ip *interpreter) execOperator(b0 byte, cs []byte, i int) (int, error) {
	op := int(b0)
	if op == opEscape {
		if i+1 >= len(cs) {
			return 0, msdf.ErrUnterminatedCharString
		}
		// The arithmetic/flex two-byte operator set (12 N) is out of
		// scope for this reference decoder.
		return 0, msdf.ErrInvalidOperator
	}

	switch op {
	case opHStem, opVStem, opHStemHM, opVStemHM:
		ip.consumeOddWidth(len(ip.stack) &^ 1)
		ip.nStems += len(ip.stack) / 2
		ip.clear()

	case opHintMask, opCntrMask:
		ip.consumeOddWidth(len(ip.stack) &^ 1)
		ip.nStems += len(ip.stack) / 2
		ip.clear()
		maskBytes := (ip.nStems + 7) / 8
		if i+1+maskBytes > len(cs) {
			return 0, msdf.ErrUnterminatedCharString
		}
		return i + 1 + maskBytes, nil

	case opRMoveTo:
		ip.consumeOddWidth(2)
		if len(ip.stack) < 2 {
			return 0, msdf.ErrStackUnderflow
		}
		ip.moveTo(ip.stack[0], ip.stack[1])
		ip.clear()

	case opHMoveTo:
		ip.consumeOddWidth(1)
		if len(ip.stack) < 1 {
			return 0, msdf.ErrStackUnderflow
		}
		ip.moveTo(ip.stack[0], 0)
		ip.clear()

	case opVMoveTo:
		ip.consumeOddWidth(1)
		if len(ip.stack) < 1 {
			return 0, msdf.ErrStackUnderflow
		}
		ip.moveTo(0, ip.stack[0])
		ip.clear()

	case opRLineTo:
		for k := 0; k+1 < len(ip.stack); k += 2 {
			ip.lineTo(ip.stack[k], ip.stack[k+1])
		}
		ip.clear()

	case opHLineTo:
		ip.altLineTo(true)
		ip.clear()

	case opVLineTo:
		ip.altLineTo(false)
		ip.clear()

	case opRRCurveTo:
		for k := 0; k+5 < len(ip.stack); k += 6 {
			a := ip.stack[k:]
			ip.curveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		}
		ip.clear()

	case opRCurveLine:
		k := 0
		for ; k+5 < len(ip.stack)-2; k += 6 {
			a := ip.stack[k:]
			ip.curveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		}
		if k+1 < len(ip.stack) {
			ip.lineTo(ip.stack[k], ip.stack[k+1])
		}
		ip.clear()

	case opRLineCurve:
		k := 0
		for ; k+1 < len(ip.stack)-6; k += 2 {
			ip.lineTo(ip.stack[k], ip.stack[k+1])
		}
		if k+5 < len(ip.stack) {
			a := ip.stack[k:]
			ip.curveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		}
		ip.clear()

	case opVVCurveTo:
		ip.vvCurveTo()
		ip.clear()

	case opHHCurveTo:
		ip.hhCurveTo()
		ip.clear()

	case opVHCurveTo:
		ip.alternatingCurveTo(false)
		ip.clear()

	case opHVCurveTo:
		ip.alternatingCurveTo(true)
		ip.clear()

	case opCallSubr, opCallGSubr:
		// No subroutine index is resolvable without the subroutine
		// tables (out of scope for this reference decoder).
		return 0, msdf.ErrInvalidSubroutineIndex

	case opReturn:
		// no-op at top level

	case opEndChar:
		ip.consumeOddWidth(0)
		ip.closeContour()
		return len(cs), nil

	default:
		return 0, msdf.ErrInvalidOperator
	}

	return i + 1, nil
}

// altLineTo implements hlineto/vlineto: alternating horizontal/vertical
// deltas starting in the direction given by startHorizontal.
func (ip *interpreter) altLineTo(startHorizontal bool) {
	horiz := startHorizontal
	for _, d := range ip.stack {
		if horiz {
			ip.lineTo(d, 0)
		} else {
			ip.lineTo(0, d)
		}
		horiz = !horiz
	}
}

// vvCurveTo implements vvcurveto: optional leading dx1, then groups of
// (dya, dxb, dyb, dyc) each a vertical-tangent curve.
func (ip *interpreter) vvCurveTo() {
	s := ip.stack
	dx1 := 0.0
	if len(s)%4 == 1 {
		dx1 = s[0]
		s = s[1:]
	}
	for k := 0; k+3 < len(s); k += 4 {
		a := s[k:]
		ip.curveTo(dx1, a[0], a[1], a[2], 0, a[3])
		dx1 = 0
	}
}

// hhCurveTo implements hhcurveto: optional leading dy1, then groups of
// (dxa, dxb, dyb, dxc) each a horizontal-tangent curve.
func (ip *interpreter) hhCurveTo() {
	s := ip.stack
	dy1 := 0.0
	if len(s)%4 == 1 {
		dy1 = s[0]
		s = s[1:]
	}
	for k := 0; k+3 < len(s); k += 4 {
		a := s[k:]
		ip.curveTo(a[0], dy1, a[1], a[2], a[3], 0)
		dy1 = 0
	}
}

// alternatingCurveTo implements vhcurveto/hvcurveto: curves alternate
// which endpoint tangent is axis-aligned, with an optional trailing
// fifth argument supplying the final off-axis delta on the very last
// curve of the sequence.
func (ip *interpreter) alternatingCurveTo(startHorizontal bool) {
	s := ip.stack
	horiz := startHorizontal
	for k := 0; k+3 < len(s); k += 4 {
		a := s[k:]
		last := k+4 >= len(s)-1
		extra := 0.0
		if last && k+4 == len(s)-1 {
			extra = s[len(s)-1]
		}
		if horiz {
			ip.curveTo(a[0], 0, a[1], a[2], extra, a[3])
		} else {
			ip.curveTo(0, a[0], a[1], a[2], a[3], extra)
		}
		horiz = !horiz
	}
}
