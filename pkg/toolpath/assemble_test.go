package toolpath

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cutdrill/pkg/machine"
	"cutdrill/pkg/profile"
)

func scenarioProfile() profile.Spec {
	sp := profile.Spec{Name: "P1", Type: "20x40", LengthMM: 1000}
	sp.AddHoles("top face", 10.0, 50.0)
	return sp
}

// lineIndex returns the index of the first occurrence of line at or after
// from, or -1.
func lineIndex(lines []string, line string, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i] == line {
			return i
		}
	}
	return -1
}

func TestGenerateScenario(t *testing.T) {
	s := plainSettings()
	out := Generate([]profile.Spec{scenarioProfile()}, s)
	lines := strings.Split(out, "\n")

	// Rapid to the resolved top-axis coordinate before any hole.
	yIdx := lineIndex(lines, "G0 Y300.000", 0)
	if yIdx < 0 {
		t.Fatalf("missing rapid to top-axis coordinate:\n%s", out)
	}

	// Holes in input order, each drilled with a feed to target and a rapid
	// to safe height.
	idx := yIdx
	for _, x := range []string{"G0 X10.000", "G0 X50.000"} {
		idx = lineIndex(lines, x, idx)
		if idx < 0 {
			t.Fatalf("missing or out-of-order rapid %q:\n%s", x, out)
		}
		feed := lineIndex(lines, "G1 Z-5.000 F250", idx)
		if feed < 0 {
			t.Fatalf("missing feed move after %q:\n%s", x, out)
		}
		if lines[feed+1] != "G0 Z85.000" {
			t.Fatalf("feed move must be followed by the safe-height rapid, got %q", lines[feed+1])
		}
		idx = feed
	}
}

func TestGenerateUnresolvedSideIsSkipped(t *testing.T) {
	s := plainSettings()
	sp := scenarioProfile()
	sp.AddHoles("mystery-side", 70.0)

	out := Generate([]profile.Spec{sp}, s)

	if !strings.Contains(out, "(SKIP side mystery-side: no axis mapping)") {
		t.Errorf("missing skip diagnostic for unresolved side:\n%s", out)
	}
	if strings.Contains(out, "X70.000") {
		t.Errorf("unresolved side must emit no motion instructions:\n%s", out)
	}
	// The resolvable side is still fully drilled.
	for _, want := range []string{"G0 X10.000", "G0 X50.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("resolvable side lost hole %q:\n%s", want, out)
		}
	}
}

func TestGenerateBadHolePositionIsSkipped(t *testing.T) {
	s := plainSettings()
	sp := profile.Spec{Name: "P1", Type: "20x40"}
	sp.AddHoles("top face", 10.0, -3.0, 50.0)

	out := Generate([]profile.Spec{sp}, s)
	if !strings.Contains(out, "(SKIP hole on top face: bad X position)") {
		t.Errorf("missing bad-hole diagnostic:\n%s", out)
	}
	if strings.Contains(out, "X-3.000") {
		t.Errorf("bad hole position must not be drilled:\n%s", out)
	}
	if !strings.Contains(out, "G0 X50.000") {
		t.Errorf("holes after a bad one must still be drilled:\n%s", out)
	}
}

func TestGenerateEmptyProfileList(t *testing.T) {
	s := plainSettings()
	out := Generate(nil, s)

	if out == "" {
		t.Fatal("empty profile list must still yield framing")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "(cutdrill program)" {
		t.Errorf("missing program title, got %q", lines[0])
	}
	if !strings.Contains(out, "(profiles: 0)") {
		t.Errorf("missing profile count:\n%s", out)
	}
	if lines[len(lines)-1] != "M30" {
		t.Errorf("program must end with M30, got %q", lines[len(lines)-1])
	}
	if strings.Contains(out, "G1 ") {
		t.Errorf("no feed moves expected without profiles:\n%s", out)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	s := machine.Defaults()
	s.PeckEnable = true
	s.PeckDwellMS = 100
	sp := scenarioProfile()
	sp.AddHoles("ZIJKANT T-slot A", 25.0)
	sp.AddHoles("ZIJKANT Y30", 40.0)
	profiles := []profile.Spec{sp, {Name: "P2", Type: "40x80", LengthMM: 500}}

	first := Generate(profiles, s)
	second := Generate(profiles, s)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs must give byte-identical output (-first +second):\n%s", diff)
	}
}

func TestGenerateSectionOrderPreserved(t *testing.T) {
	s := plainSettings()
	sp := profile.Spec{Name: "P1", Type: "20x40"}
	sp.AddHoles("ZIJKANT T-slot B", 5.0)
	sp.AddHoles("top face", 6.0)
	sp.AddHoles("ZIJKANT T-slot A", 7.0)

	lines := strings.Split(Generate([]profile.Spec{sp}, s), "\n")
	b := lineIndex(lines, "(side ZIJKANT T-slot B)", 0)
	top := lineIndex(lines, "(side top face)", 0)
	a := lineIndex(lines, "(side ZIJKANT T-slot A)", 0)
	if b < 0 || top < 0 || a < 0 || !(b < top && top < a) {
		t.Errorf("sides must be emitted in insertion order, got indexes %d %d %d", b, top, a)
	}
}

func TestGenerateProfileFraming(t *testing.T) {
	s := plainSettings()
	out := Generate([]profile.Spec{scenarioProfile()}, s)

	if !strings.Contains(out, "(PROFILE P1 20x40 L1000)") {
		t.Errorf("missing profile marker:\n%s", out)
	}
	// Fixed safe-travel preamble: reference X, safe Z, reference Y.
	lines := strings.Split(out, "\n")
	m := lineIndex(lines, "(PROFILE P1 20x40 L1000)", 0)
	if m < 0 || len(lines) < m+4 {
		t.Fatalf("profile marker missing or truncated output")
	}
	want := []string{"G0 X0.000", "G0 Z85.000", "G0 Y300.000"}
	for i, w := range want {
		if lines[m+1+i] != w {
			t.Errorf("safe-travel preamble line %d = %q, want %q", i, lines[m+1+i], w)
		}
	}
}

func TestGenerateTapDialectFormatting(t *testing.T) {
	s := plainSettings()
	s.TapMode = true
	out := Generate([]profile.Spec{scenarioProfile()}, s)

	if !strings.Contains(out, "G0 X10.0\n") || !strings.Contains(out, "G1 Z-5.0 F250\n") {
		t.Errorf("tap dialect must use one-decimal coordinates:\n%s", out)
	}
	if !strings.Contains(out, "G53 G0 Z0.") {
		t.Errorf("tap dialect must use G53 homing phrasing:\n%s", out)
	}
	if strings.Contains(out, "G28 G91") {
		t.Errorf("tap dialect must not use the verbose homing phrasing:\n%s", out)
	}

	// Dialect affects formatting only: same motion sequence as verbose.
	sNC := plainSettings()
	nc := Generate([]profile.Spec{scenarioProfile()}, sNC)
	if countPrefix(nc, "G1 Z") != countPrefix(out, "G1 Z") ||
		countPrefix(nc, "G0 X") != countPrefix(out, "G0 X") {
		t.Errorf("dialect changed the motion sequence")
	}
}

func countPrefix(program, prefix string) int {
	n := 0
	for _, ln := range strings.Split(program, "\n") {
		if strings.HasPrefix(ln, prefix) {
			n++
		}
	}
	return n
}
