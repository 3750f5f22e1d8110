package profile

import (
	"strings"
	"testing"
)

func TestDecodePreservesSectionOrder(t *testing.T) {
	data := `[{
		"name": "Profiel 1",
		"ptype": "20x40",
		"length_mm": 1000,
		"tool_diam": 4.0,
		"sections": {
			"ZIJKANT T-slot B": [60.0],
			"BOVENKANT": [10.0, 50.0],
			"ZIJKANT T-slot A": [25.0]
		}
	}]`

	specs, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(specs))
	}

	sp := specs[0]
	if sp.Name != "Profiel 1" || sp.Type != "20x40" || sp.LengthMM != 1000 || sp.ToolDiam != 4.0 {
		t.Errorf("bad scalar members: %+v", sp)
	}

	wantOrder := []string{"ZIJKANT T-slot B", "BOVENKANT", "ZIJKANT T-slot A"}
	if len(sp.Sections) != len(wantOrder) {
		t.Fatalf("expected %d sections, got %d", len(wantOrder), len(sp.Sections))
	}
	for i, side := range wantOrder {
		if sp.Sections[i].Side != side {
			t.Errorf("section %d = %q, want %q (order must be preserved)", i, sp.Sections[i].Side, side)
		}
	}
	if holes := sp.Section("BOVENKANT"); len(holes) != 2 || holes[0] != 10 || holes[1] != 50 {
		t.Errorf("hole order lost: %v", holes)
	}
}

func TestDecodeSkipsMalformedHoles(t *testing.T) {
	data := `[{
		"name": "P",
		"type": "20x20",
		"sections": {"BOVENKANT": [10, "x", null, "12.5", {"bad": true}, 30]}
	}]`

	specs, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	holes := specs[0].Section("BOVENKANT")
	want := []float64{10, 12.5, 30}
	if len(holes) != len(want) {
		t.Fatalf("got holes %v, want %v", holes, want)
	}
	for i := range want {
		if holes[i] != want[i] {
			t.Errorf("hole %d = %v, want %v", i, holes[i], want[i])
		}
	}
}

func TestDecodeTypeAlias(t *testing.T) {
	data := `[{"name": "P", "type": "30x30", "sections": {}}]`
	specs, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if specs[0].Type != "30x30" {
		t.Errorf("'type' member not accepted: %+v", specs[0])
	}
}

func TestDecodeIgnoresUnknownMembers(t *testing.T) {
	data := `[{"name": "P", "sections": {}, "extra": {"nested": [1, 2, {"k": "v"}]}, "aantal": 3}]`
	specs, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if specs[0].Name != "P" {
		t.Errorf("unexpected spec: %+v", specs[0])
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	specs, err := Decode(strings.NewReader("[]"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("expected no profiles, got %d", len(specs))
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"name": "P"}`)); err == nil {
		t.Fatal("expected error for non-array document")
	}
}

func TestAddHolesMergesSides(t *testing.T) {
	var sp Spec
	sp.AddHoles("BOVENKANT", 1)
	sp.AddHoles("ZIJKANT T-slot A", 2)
	sp.AddHoles("BOVENKANT", 3)

	if len(sp.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sp.Sections))
	}
	if holes := sp.Section("BOVENKANT"); len(holes) != 2 || holes[1] != 3 {
		t.Errorf("holes not appended in order: %v", holes)
	}
}
