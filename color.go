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

// EdgeColor is a 3-bit channel mask over {R,G,B} assigned to an edge so
// that, after MSDF synthesis, a channel disagreement at a corner lets the
// median reconstruct a sharp angle there.
type EdgeColor uint8

const (
	Black   EdgeColor = 0
	Red     EdgeColor = 1 << 0
	Green   EdgeColor = 1 << 1
	Blue    EdgeColor = 1 << 2
	Yellow  EdgeColor = Red | Green
	Magenta EdgeColor = Red | Blue
	Cyan    EdgeColor = Green | Blue
	White   EdgeColor = Red | Green | Blue
)

func (c EdgeColor) HasRed() bool   { return c&Red != 0 }
func (c EdgeColor) HasGreen() bool { return c&Green != 0 }
func (c EdgeColor) HasBlue() bool  { return c&Blue != 0 }

func (c EdgeColor) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// switchColor cycles Cyan -> Magenta -> Yellow -> Cyan, the deterministic
// three-way rotation used when assigning colors to successive splines
// within a contour.
func switchColor(c EdgeColor) EdgeColor {
	switch c {
	case Cyan:
		return Magenta
	case Magenta:
		return Yellow
	case Yellow:
		return Cyan
	default:
		// White or Black are not rotated; callers never feed these in.
		return c
	}
}

// switchColorSeeded picks uniformly between the two colors that are not c,
// advancing the PRNG state. Used by the optional seeded coloring variant to
// add variety beyond the fixed three-cycle rotation.
func switchColorSeeded(c EdgeColor, seed *uint64) EdgeColor {
	a, b := switchColor(c), switchColor(switchColor(c))
	if xorshift64(seed)%2 == 0 {
		return a
	}
	return b
}

// xorshift64 advances and returns a deterministic pseudo-random stream.
// A package-level RNG is never used: callers own their seed explicitly
// (see design notes on "no global state").
func xorshift64(state *uint64) uint64 {
	x := *state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*state = x
	return x
}
