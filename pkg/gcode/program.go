// Package gcode builds numerically-controlled drilling programs as an
// ordered stream of instruction lines. It owns the output dialects and the
// program preamble/postamble framing; the drilling decisions themselves are
// made by pkg/toolpath.
package gcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the textual formatting of the emitted program.
// It affects number precision and homing phrasing only, never which
// motions are emitted.
type Dialect int

const (
	// DialectNC is the verbose, commented dialect (.nc files).
	DialectNC Dialect = iota
	// DialectTap is the compact dialect used for .tap files.
	DialectTap
)

// Precision returns the number of decimals used for coordinates.
func (d Dialect) Precision() int {
	if d == DialectTap {
		return 1
	}
	return 3
}

// Coord formats a coordinate value in this dialect.
func (d Dialect) Coord(v float64) string {
	return strconv.FormatFloat(v, 'f', d.Precision(), 64)
}

// Program is an append-only instruction stream.
type Program struct {
	dialect Dialect
	lines   []string
}

// NewProgram returns an empty program for the given dialect.
func NewProgram(d Dialect) *Program {
	return &Program{dialect: d}
}

// Dialect returns the program's output dialect.
func (p *Program) Dialect() Dialect {
	return p.dialect
}

// Raw appends a line verbatim.
func (p *Program) Raw(line string) {
	p.lines = append(p.lines, line)
}

// Comment appends a parenthesized comment line.
func (p *Program) Comment(format string, args ...interface{}) {
	p.lines = append(p.lines, "("+fmt.Sprintf(format, args...)+")")
}

// RapidX appends a rapid move on the X axis.
func (p *Program) RapidX(x float64) {
	p.lines = append(p.lines, "G0 X"+p.dialect.Coord(x))
}

// RapidY appends a rapid move on the Y axis.
func (p *Program) RapidY(y float64) {
	p.lines = append(p.lines, "G0 Y"+p.dialect.Coord(y))
}

// RapidZ appends a rapid move on the Z axis.
func (p *Program) RapidZ(z float64) {
	p.lines = append(p.lines, "G0 Z"+p.dialect.Coord(z))
}

// FeedZ appends a fed move on the Z axis at the given feed rate (mm/min).
func (p *Program) FeedZ(z, feed float64) {
	p.lines = append(p.lines, fmt.Sprintf("G1 Z%s F%.0f", p.dialect.Coord(z), feed))
}

// Dwell appends a pause of the given duration in seconds.
func (p *Program) Dwell(seconds float64) {
	p.lines = append(p.lines, "G4 P"+p.dialect.Coord(seconds))
}

// Len returns the number of lines emitted so far.
func (p *Program) Len() int {
	return len(p.lines)
}

// Lines returns a copy of the emitted lines.
func (p *Program) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// String returns the newline-joined program with a trailing newline.
func (p *Program) String() string {
	return strings.Join(p.lines, "\n") + "\n"
}
