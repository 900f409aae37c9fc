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

import "errors"

// Sentinel errors raised at the kernel boundary (spec.md 7). Parser
// collaborators (truetypesrc, cffsrc) return these directly or wrapped
// with fmt.Errorf("%w: ...", ...); callers compare with errors.Is.
var (
	ErrMissingTable    = errors.New("msdf: missing required font table")
	ErrInvalidFontData = errors.New("msdf: invalid font data")
	ErrUnsupportedFormat = errors.New("msdf: unsupported font format")
	ErrInvalidGlyph    = errors.New("msdf: invalid glyph outline")
	ErrGlyphNotFound   = errors.New("msdf: glyph not found for codepoint")
	ErrOutOfMemory     = errors.New("msdf: out of memory")

	// CFF charstring interpreter errors, returned as they are by
	// cffsrc.Decode; no code in this module translates them to
	// ErrInvalidGlyph.
	ErrStackOverflow          = errors.New("msdf: charstring operand stack overflow")
	ErrStackUnderflow         = errors.New("msdf: charstring operand stack underflow")
	ErrSubroutineCallTooDeep  = errors.New("msdf: charstring subroutine call nesting too deep")
	ErrInvalidSubroutineIndex = errors.New("msdf: charstring invalid subroutine index")
	ErrInvalidOperator        = errors.New("msdf: charstring invalid or unsupported operator")
	ErrUnterminatedCharString = errors.New("msdf: charstring ended without endchar")
)
