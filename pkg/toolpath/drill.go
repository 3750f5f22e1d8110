package toolpath

import (
	"math"

	"cutdrill/pkg/gcode"
	"cutdrill/pkg/machine"
)

// depthEps is the tolerance for "the cursor has reached the target depth".
const depthEps = 1e-6

// DrillCycle emits the motion sequence for a single hole into p. The tool
// is assumed positioned over the hole; the depth cursor starts at topZ and
// is driven toward targetZ (targetZ = topZ + depth, depth negative):
//
//  1. slow-start: a reduced-feed entry over the first part of the depth
//  2. peck: repeated plunge/retract steps until the target is reached, or
//  3. plain plunge: one fed move to the target when pecking is off
//  4. final retract: always a rapid to the safe height
//
// Every plunge clamps at targetZ and every retract clamps at topZ, so the
// cursor can never overshoot in either direction. Thickness is the profile
// cross-section used for factor-based slow-start distances.
func DrillCycle(p *gcode.Program, topZ, targetZ, thickness float64, s *machine.Settings) {
	cursor := topZ

	if s.SlowStartEnable {
		cursor = slowStart(p, topZ, targetZ, thickness, s)
	}

	if s.PeckEnable {
		peck(p, cursor, topZ, targetZ, s)
	} else if cursor > targetZ+depthEps {
		p.FeedZ(targetZ, s.PlungeFeed)
	}

	p.RapidZ(s.SafeZ)
}

// slowStart feeds the first start_mm of the hole at a reduced rate and
// returns the new cursor. The distance is clamped into [0, total depth] no
// matter how large the configured factor or fixed distance is.
func slowStart(p *gcode.Program, topZ, targetZ, thickness float64, s *machine.Settings) float64 {
	total := topZ - targetZ
	if total <= depthEps {
		return topZ
	}

	start := s.SlowStartMM
	if s.SlowStartMode == machine.SlowStartFactor {
		start = s.SlowStartFactor * thickness
	}
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if start <= depthEps {
		return topZ
	}

	cursor := topZ - start
	p.FeedZ(cursor, s.PlungeFeed*s.SlowStartFeedMult)
	return cursor
}

// peck drives the cursor from its current depth to targetZ in at most
// peck-step increments, retracting between pecks to clear chips. The peck
// count is fixed at phase entry as ceil(remaining/step); the loop stops the
// moment the cursor reaches the target, so the last peck gets no
// intermediate retract. A non-positive or negative step is clamped so the
// phase always makes progress and always terminates.
func peck(p *gcode.Program, cursor, topZ, targetZ float64, s *machine.Settings) {
	remaining := cursor - targetZ
	if remaining <= depthEps {
		return
	}

	step := math.Abs(s.PeckStep)
	if step <= depthEps {
		step = remaining // degenerate step: a single full-depth peck
	}
	retract := math.Abs(s.PeckRetract)

	count := int(math.Ceil((remaining - depthEps) / step))
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		next := cursor - step
		if next < targetZ {
			next = targetZ
		}
		p.FeedZ(next, s.PlungeFeed)
		cursor = next
		if cursor <= targetZ+depthEps {
			break
		}
		up := cursor + retract
		if up > topZ {
			up = topZ
		}
		p.RapidZ(up)
		if s.PeckDwellMS > 0 {
			p.Dwell(s.PeckDwellMS / 1000.0)
		}
	}
}
