package gcode

import "fmt"

// FrameOptions carries the machine settings that appear in the program
// preamble and postamble framing.
type FrameOptions struct {
	Title      string  // program title comment
	WorkOffset string  // coordinate-system selector, emitted verbatim (e.g. "G54")
	ToolDiam   float64 // noted in the preamble comment when positive
	SpindleRPM int     // spindle speed for the M3 start
	CoolantOn  bool    // emit M8/M9 around the program
	SafeZ      float64 // initial rapid target after homing
	TravelFeed float64 // mm/min, announced once in the preamble
}

// WritePreamble emits the program start framing: units/plane selection, work
// offset, spindle start, optional coolant, homing and an initial rapid to the
// safe height. Every program starts here so the first profile block begins
// from a known position.
func (p *Program) WritePreamble(o FrameOptions) {
	if o.Title != "" {
		p.Comment("%s", o.Title)
	}
	if o.ToolDiam > 0 {
		p.Comment("tool D%.1f S%d", o.ToolDiam, o.SpindleRPM)
	}
	p.Raw("G90 G94 G91.1 G40 G49 G17")
	p.Raw("G21")
	if o.WorkOffset != "" {
		p.Raw(o.WorkOffset)
	}
	p.Raw(fmt.Sprintf("S%d M3", o.SpindleRPM))
	if o.CoolantOn {
		p.Raw("M8")
	}
	if o.TravelFeed > 0 {
		p.Raw(fmt.Sprintf("G0 F%.0f", o.TravelFeed))
	}
	p.homeZ()
	p.RapidZ(o.SafeZ)
}

// WritePostamble emits the program end framing: coolant off when it was on,
// spindle stop, homing and the program-end marker.
func (p *Program) WritePostamble(o FrameOptions) {
	if o.CoolantOn {
		p.Raw("M9")
	}
	p.Raw("M5")
	p.homeZ()
	p.homeXY()
	p.Raw("M30")
}

func (p *Program) homeZ() {
	if p.dialect == DialectTap {
		p.Raw("G53 G0 Z0.")
		return
	}
	p.Raw("G28 G91 Z0.")
	p.Raw("G90")
}

func (p *Program) homeXY() {
	if p.dialect == DialectTap {
		p.Raw("G53 G0 X0. Y0.")
		return
	}
	p.Raw("G28 G91 X0. Y0.")
	p.Raw("G90")
}
