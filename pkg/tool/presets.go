// Package tool carries drill presets and the cutting-parameter formulas
// used to derive spindle speed and plunge feed from tool geometry.
package tool

import (
	"fmt"
	"math"
)

// Preset is a drill with safe starting parameters.
type Preset struct {
	Name       string
	DiamMM     float64
	SurfaceMPM float64 // cutting speed V, m/min
	RPM        int
	FeedPerRev float64 // mm/rev
	PlungeFeed int     // mm/min
}

// RPMFromSurfaceSpeed converts a cutting speed (m/min) and tool diameter
// (mm) to spindle rpm: n = 1000·V / (π·D).
func RPMFromSurfaceSpeed(v, diamMM float64) float64 {
	return (1000.0 * v) / (math.Pi * math.Max(0.01, diamMM))
}

// FeedFromRev converts rpm and feed-per-revolution (mm/rev) to a feed rate
// in mm/min.
func FeedFromRev(rpm, feedPerRev float64) float64 {
	return rpm * feedPerRev
}

// AluminumHSS returns safe starting presets for HSS drills in aluminium:
// Ø4.0 through Ø8.0 in 0.5 mm steps, V ≈ 80 m/min, f_rev ≈ 0.02 + 0.01·D.
func AluminumHSS() []Preset {
	const surface = 80.0
	var out []Preset
	for d := 4.0; d <= 8.0+1e-9; d += 0.5 {
		rpm := math.Round(RPMFromSurfaceSpeed(surface, d))
		frev := 0.02 + 0.01*d
		out = append(out, Preset{
			Name:       fmt.Sprintf("Drill Ø%.1f HSS alu", d),
			DiamMM:     d,
			SurfaceMPM: surface,
			RPM:        int(rpm),
			FeedPerRev: frev,
			PlungeFeed: int(math.Round(FeedFromRev(rpm, frev))),
		})
	}
	return out
}

// ByDiameter returns the preset whose diameter is closest to d, within
// 0.25 mm. The second return value is false when nothing is close enough.
func ByDiameter(d float64) (Preset, bool) {
	var best Preset
	bestDist := math.Inf(1)
	for _, p := range AluminumHSS() {
		if dist := math.Abs(p.DiamMM - d); dist < bestDist {
			best, bestDist = p, dist
		}
	}
	if bestDist > 0.25 {
		return Preset{}, false
	}
	return best, true
}
