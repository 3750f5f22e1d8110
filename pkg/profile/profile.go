// Package profile defines the cut-list records consumed by the toolpath
// engine: one Spec per physical extrusion profile, carrying the per-side
// hole positions produced by the external profile builder.
package profile

// Section is one named side of a profile and the X positions (mm) of the
// holes to drill along it, in drilling order.
type Section struct {
	Side  string
	Holes []float64
}

// Spec describes one physical profile to be machined. Sections keep their
// insertion order so program output is deterministic; hole order within a
// section is preserved as supplied. Duplicate (side, position) pairs are
// legal and are simply drilled twice.
type Spec struct {
	Name     string
	Type     string // cross-section label, e.g. "20x40"; only used for thickness
	LengthMM float64
	ToolDiam float64 // 0 means: use the configured default tool
	Sections []Section
}

// Section returns the holes for a side label, or nil if the profile has no
// such side.
func (s *Spec) Section(side string) []float64 {
	for _, sec := range s.Sections {
		if sec.Side == side {
			return sec.Holes
		}
	}
	return nil
}

// AddHoles appends holes to the named side, creating the side in insertion
// order if it does not exist yet.
func (s *Spec) AddHoles(side string, xs ...float64) {
	for i := range s.Sections {
		if s.Sections[i].Side == side {
			s.Sections[i].Holes = append(s.Sections[i].Holes, xs...)
			return
		}
	}
	s.Sections = append(s.Sections, Section{Side: side, Holes: xs})
}
