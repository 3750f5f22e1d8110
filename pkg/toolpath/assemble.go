package toolpath

import (
	"math"

	"cutdrill/pkg/gcode"
	"cutdrill/pkg/machine"
	"cutdrill/pkg/profile"
)

// Generate builds the complete drilling program for a set of profiles. It
// is a pure function of its inputs: identical profiles and settings produce
// byte-identical output. An empty profile list yields a valid program with
// only the preamble/postamble framing.
func Generate(profiles []profile.Spec, s machine.Settings) string {
	d := gcode.DialectNC
	if s.TapMode {
		d = gcode.DialectTap
	}
	p := gcode.NewProgram(d)

	frame := gcode.FrameOptions{
		Title:      "cutdrill program",
		WorkOffset: s.WorkOffset,
		ToolDiam:   s.ToolDiam,
		SpindleRPM: s.SpindleRPM,
		CoolantOn:  s.CoolantOn,
		SafeZ:      s.SafeZ,
		TravelFeed: s.TravelFeed,
	}
	p.WritePreamble(frame)
	p.Comment("profiles: %d", len(profiles))

	for i := range profiles {
		assembleProfile(p, &profiles[i], &s)
	}

	p.WritePostamble(frame)
	return p.String()
}

// assembleProfile emits one profile block: identification comment, the
// fixed safe-travel preamble, then every side in stored order. Travel order
// mirrors input order exactly; no reordering or clustering.
func assembleProfile(p *gcode.Program, spec *profile.Spec, s *machine.Settings) {
	p.Comment("PROFILE %s %s L%.0f", spec.Name, spec.Type, spec.LengthMM)

	// Known starting position regardless of where the previous profile
	// block finished: reference X, safe Z, reference Y.
	p.RapidX(s.RefX)
	p.RapidZ(s.SafeZ)
	p.RapidY(s.YTop)

	thickness := profile.Thickness(spec.Type, s.FallbackThickness)
	toolDiam := spec.ToolDiam
	if toolDiam <= 0 {
		toolDiam = s.ToolDiam
	}
	targetZ := s.TargetZ()

	for _, sec := range spec.Sections {
		y, ok := ResolveSide(sec.Side, s)
		if !ok {
			// One unrecognized side must not abort the rest of the
			// profile or the program.
			p.Comment("SKIP side %s: no axis mapping", sec.Side)
			continue
		}
		p.Comment("side %s", sec.Side)
		p.RapidY(y)

		for _, x := range sec.Holes {
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
				p.Comment("SKIP hole on %s: bad X position", sec.Side)
				continue
			}
			p.RapidX(x)
			p.Comment("DRILL X%.3f D%.1f", x, toolDiam)
			p.RapidZ(s.TopZ)
			DrillCycle(p, s.TopZ, targetZ, thickness, s)
		}
	}
}
