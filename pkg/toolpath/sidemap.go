// Package toolpath synthesizes drilling programs from profile records: it
// maps logical profile sides to machine Y coordinates, generates the
// per-hole drill cycle, and assembles the per-profile instruction blocks.
package toolpath

import (
	"regexp"
	"sort"
	"strings"

	"cutdrill/pkg/machine"
)

// Side labels are fuzzy operator input ("BOVENKANT", "ZIJKANT T-slot A",
// "side-Y30", ...). Classification runs an ordered list of label-family
// matchers; the order is part of the contract because families can overlap
// (a label may contain both a slot marker and a Y number). An unmatched
// label is reported as unresolved, never as an error: the caller skips that
// side and keeps drilling the rest.

var (
	topRe      = regexp.MustCompile(`\b(BOVENKANT|TOP)\b`)
	slotRe     = regexp.MustCompile(`\bSLOT\s*([AB])\b`)
	sideRe     = regexp.MustCompile(`\b(ZIJKANT|SIDE)\b`)
	numberedRe = regexp.MustCompile(`\bY\s*(\d+)\b`)
)

type sideMatcher func(norm string, s *machine.Settings) (float64, bool)

// Checked in order: top face, T-slot A/B, numbered side.
var sideMatchers = []sideMatcher{matchTop, matchSlot, matchNumbered}

// ResolveSide maps a side label to its machine Y coordinate. The second
// return value is false when the label matches no known family; the caller
// must then skip the side with a diagnostic rather than abort the program.
func ResolveSide(label string, s *machine.Settings) (float64, bool) {
	norm := normalizeSide(label)
	for _, match := range sideMatchers {
		if y, ok := match(norm, s); ok {
			return y, true
		}
	}
	return 0, false
}

// normalizeSide case-folds and collapses separators so matchers see one
// canonical form: "side-slot-a" and "ZIJKANT T-Slot A" both contain "SLOT A".
func normalizeSide(label string) string {
	up := strings.ToUpper(label)
	up = strings.NewReplacer("-", " ", "_", " ").Replace(up)
	return strings.Join(strings.Fields(up), " ")
}

func matchTop(norm string, s *machine.Settings) (float64, bool) {
	if topRe.MatchString(norm) {
		return s.YTop, true
	}
	return 0, false
}

func matchSlot(norm string, s *machine.Settings) (float64, bool) {
	m := slotRe.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}
	if m[1] == "A" {
		return s.YSlotA, true
	}
	return s.YSlotB, true
}

func matchNumbered(norm string, s *machine.Settings) (float64, bool) {
	if !sideRe.MatchString(norm) {
		return 0, false
	}
	if m := numberedRe.FindStringSubmatch(norm); m != nil {
		key := "Y" + m[1]
		if y, ok := s.YMap[key]; ok {
			return y, true
		}
		// Exact key absent: fall back to a substring scan over the table,
		// in sorted key order for determinism.
		compact := strings.ReplaceAll(norm, " ", "")
		for _, k := range sortedKeys(s.YMap) {
			if strings.Contains(compact, k) {
				return s.YMap[k], true
			}
		}
		return 0, false
	}
	// A side label with no number at all only resolves through the
	// explicitly configured fallback key; silent defaulting masks data
	// errors.
	if s.NumberedSideFallback != "" {
		if y, ok := s.YMap[strings.ToUpper(s.NumberedSideFallback)]; ok {
			return y, true
		}
	}
	return 0, false
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
