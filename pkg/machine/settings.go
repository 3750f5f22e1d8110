// Package machine defines the flat settings record that drives program
// generation. Every field has a default so callers may override any subset,
// either in code or through an INI settings file (see FromConfig).
package machine

import (
	"fmt"

	"cutdrill/pkg/config"
)

// Slow-start distance modes.
const (
	SlowStartFactor = "factor" // distance = slow_start_factor × profile thickness
	SlowStartMM     = "mm"     // distance = slow_start_mm
)

// Settings is the machine/tool/strategy configuration for one generation
// call. It is read-only once built; concurrent generation calls may share
// one value.
type Settings struct {
	// Machine
	WorkOffset string  // coordinate-system selector, emitted verbatim
	SafeZ      float64 // rapid-travel height, mm
	TopZ       float64 // material surface, mm
	Depth      float64 // drilling depth relative to TopZ, negative, mm
	TravelFeed float64 // mm/min, announced in the preamble
	PlungeFeed float64 // mm/min for drilling moves

	// Tool
	ToolDiam   float64 // default tool diameter, mm; profile records may override
	SpindleRPM int
	CoolantOn  bool

	// Peck drilling
	PeckEnable  bool
	PeckStep    float64 // mm per peck
	PeckRetract float64 // mm back between pecks
	PeckDwellMS float64 // pause between pecks, milliseconds; 0 disables

	// Slow start (reduced-feed entry)
	SlowStartEnable   bool
	SlowStartMode     string // SlowStartFactor or SlowStartMM
	SlowStartFactor   float64
	SlowStartMM       float64
	SlowStartFeedMult float64 // multiplier on PlungeFeed for the entry segment

	// Side-to-axis mapping
	YMap   map[string]float64 // numbered side token ("Y10") -> Y coordinate
	YTop   float64            // Y for the top face
	YSlotA float64            // Y for T-slot side A
	YSlotB float64            // Y for T-slot side B
	RefX   float64            // X for the per-profile safe-travel preamble

	// NumberedSideFallback, when set to a YMap key (e.g. "Y10"), resolves
	// numbered-side labels that carry no number to that key. Off by default:
	// such labels are skipped with a diagnostic instead.
	NumberedSideFallback string

	// Geometry
	FallbackThickness float64 // assumed when a type label has no "AxB" pattern

	// Output
	TapMode bool // compact .tap dialect instead of verbose .nc
}

// Defaults returns the full default settings set.
func Defaults() Settings {
	return Settings{
		WorkOffset: "G54",
		SafeZ:      85.0,
		TopZ:       0.0,
		Depth:      -5.0,
		TravelFeed: 6000.0,
		PlungeFeed: 250.0,

		ToolDiam:   4.0,
		SpindleRPM: 11000,
		CoolantOn:  false,

		PeckEnable:  false,
		PeckStep:    2.0,
		PeckRetract: 1.0,
		PeckDwellMS: 0.0,

		SlowStartEnable:   true,
		SlowStartMode:     SlowStartFactor,
		SlowStartFactor:   0.4,
		SlowStartMM:       4.0,
		SlowStartFeedMult: 0.4,

		YMap:   map[string]float64{"Y10": 10.0, "Y30": 30.0},
		YTop:   300.0,
		YSlotA: -10.0,
		YSlotB: 10.0,
		RefX:   0.0,

		FallbackThickness: 20.0,

		TapMode: false,
	}
}

// TargetZ returns the absolute drilling target depth.
func (s *Settings) TargetZ() float64 {
	return s.TopZ + s.Depth
}

// FromConfig builds Settings from an INI settings file layered over the
// defaults. All sections and options are optional. Malformed option values
// abort with an error: they indicate a broken settings file, not messy
// cut-list data.
func FromConfig(cfg *config.Config) (Settings, error) {
	s := Defaults()
	var err error

	if sec := cfg.GetSectionOptional("machine"); sec != nil {
		if s.WorkOffset, err = sec.Get("work_offset", s.WorkOffset); err != nil {
			return s, err
		}
		if s.SafeZ, err = sec.GetFloat("safe_z", s.SafeZ); err != nil {
			return s, err
		}
		if s.TopZ, err = sec.GetFloat("top_z", s.TopZ); err != nil {
			return s, err
		}
		if s.Depth, err = sec.GetFloat("depth", s.Depth); err != nil {
			return s, err
		}
		if s.TravelFeed, err = sec.GetFloat("travel_f", s.TravelFeed); err != nil {
			return s, err
		}
		if s.PlungeFeed, err = sec.GetFloat("plunge_f", s.PlungeFeed); err != nil {
			return s, err
		}
	}

	if sec := cfg.GetSectionOptional("tool"); sec != nil {
		if s.ToolDiam, err = sec.GetFloat("tool_diam", s.ToolDiam); err != nil {
			return s, err
		}
		if s.SpindleRPM, err = sec.GetInt("spindle_rpm", s.SpindleRPM); err != nil {
			return s, err
		}
		if s.CoolantOn, err = sec.GetBool("coolant_on", s.CoolantOn); err != nil {
			return s, err
		}
	}

	if sec := cfg.GetSectionOptional("peck"); sec != nil {
		if s.PeckEnable, err = sec.GetBool("enable", s.PeckEnable); err != nil {
			return s, err
		}
		if s.PeckStep, err = sec.GetFloat("step", s.PeckStep); err != nil {
			return s, err
		}
		if s.PeckRetract, err = sec.GetFloat("retract", s.PeckRetract); err != nil {
			return s, err
		}
		if s.PeckDwellMS, err = sec.GetFloat("dwell_ms", s.PeckDwellMS); err != nil {
			return s, err
		}
	}

	if sec := cfg.GetSectionOptional("slow_start"); sec != nil {
		if s.SlowStartEnable, err = sec.GetBool("enable", s.SlowStartEnable); err != nil {
			return s, err
		}
		if s.SlowStartMode, err = sec.Get("mode", s.SlowStartMode); err != nil {
			return s, err
		}
		if s.SlowStartMode != SlowStartFactor && s.SlowStartMode != SlowStartMM {
			return s, config.ErrInvalidValue("slow_start", "mode", s.SlowStartMode, `"factor" or "mm"`)
		}
		if s.SlowStartFactor, err = sec.GetFloat("factor", s.SlowStartFactor); err != nil {
			return s, err
		}
		if s.SlowStartMM, err = sec.GetFloat("mm", s.SlowStartMM); err != nil {
			return s, err
		}
		if s.SlowStartFeedMult, err = sec.GetFloat("feed_mult", s.SlowStartFeedMult); err != nil {
			return s, err
		}
	}

	if sec := cfg.GetSectionOptional("y_map"); sec != nil {
		m, err := sec.FloatMap()
		if err != nil {
			return s, err
		}
		if len(m) > 0 {
			s.YMap = m
		}
	}

	if sec := cfg.GetSectionOptional("mapping"); sec != nil {
		if s.YTop, err = sec.GetFloat("y_top", s.YTop); err != nil {
			return s, err
		}
		if s.YSlotA, err = sec.GetFloat("y_slot_a", s.YSlotA); err != nil {
			return s, err
		}
		if s.YSlotB, err = sec.GetFloat("y_slot_b", s.YSlotB); err != nil {
			return s, err
		}
		if s.RefX, err = sec.GetFloat("ref_x", s.RefX); err != nil {
			return s, err
		}
		if s.NumberedSideFallback, err = sec.Get("numbered_side_fallback", s.NumberedSideFallback); err != nil {
			return s, err
		}
		if s.FallbackThickness, err = sec.GetFloat("fallback_thickness", s.FallbackThickness); err != nil {
			return s, err
		}
	}

	if sec := cfg.GetSectionOptional("output"); sec != nil {
		if s.TapMode, err = sec.GetBool("tap_mode", s.TapMode); err != nil {
			return s, err
		}
	}

	return s, nil
}

// Describe returns a one-line summary for logs and reports.
func (s *Settings) Describe() string {
	return fmt.Sprintf("offset=%s safe_z=%.1f depth=%.1f tool=Ø%.1f rpm=%d peck=%t slow_start=%t tap=%t",
		s.WorkOffset, s.SafeZ, s.Depth, s.ToolDiam, s.SpindleRPM, s.PeckEnable, s.SlowStartEnable, s.TapMode)
}
