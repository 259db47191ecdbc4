package dcode

import (
	"math"
	"testing"

	"github.com/alexander-guesnon/gerbcore/gerbbase"
	"github.com/alexander-guesnon/gerbcore/xy"
)

func testFormatSpec(t *testing.T, mu string) *xy.FormatSpec {
	fs := new(xy.FormatSpec)
	if !fs.Init("%FSLAX34Y34*%", mu) {
		t.Fatal("format spec init failed")
	}
	return fs
}

func TestToolInit(t *testing.T) {
	fs := testFormatSpec(t, "%MOMM*%")
	tests := []struct {
		source string
		kind   gerbbase.ApertureKind
	}{
		{"10C,0.152", gerbbase.ApKindCircle},
		{"11C,0.5X0.25", gerbbase.ApKindCircle},
		{"12R,2.0X1.0", gerbbase.ApKindRect},
		{"13R,2.0X1.0X0.5", gerbbase.ApKindRect},
		{"14O,2.0X1.0", gerbbase.ApKindObround},
		{"15P,3.0X6", gerbbase.ApKindPoly},
		{"16P,3.0X6X45.0X1.0", gerbbase.ApKindPoly},
	}
	for _, tc := range tests {
		tool := new(Tool)
		if err := tool.Init(tc.source, fs); err != nil {
			t.Fatal(tc.source, ":", err)
		}
		if tool.Kind != tc.kind {
			t.Error(tc.source, ": want", tc.kind.String(), ", got", tool.Kind.String())
		}
	}
}

func TestToolInitValues(t *testing.T) {
	fs := testFormatSpec(t, "%MOMM*%")
	tool := new(Tool)
	if err := tool.Init("16P,3.0X6X45.0X1.0", fs); err != nil {
		t.Fatal(err)
	}
	if tool.Code != 16 || tool.Diameter != 3.0 || tool.Vertices != 6 ||
		tool.RotAngle != 45.0 || tool.HoleDiameter != 1.0 {
		t.Error("bad polygon parameters:", *tool)
	}
	w, h := tool.Size()
	if w != 3.0 || h != 3.0 {
		t.Error("polygon size must be the circumcircle, got", w, h)
	}
}

func TestToolInitInches(t *testing.T) {
	fs := testFormatSpec(t, "%MOIN*%")
	tool := new(Tool)
	if err := tool.Init("10C,0.1", fs); err != nil {
		t.Fatal(err)
	}
	if math.Abs(tool.Diameter-2.54) > 1e-9 {
		t.Error("inch sizes must scale to mm, got", tool.Diameter)
	}
}

func TestToolInitErrors(t *testing.T) {
	fs := testFormatSpec(t, "%MOMM*%")
	bad := []string{
		"C,0.152",        // no code
		"10C",            // no parameters
		"10C,1X2X3",      // too many circle parameters
		"10R,1",          // too few rectangle parameters
		"10P,3.0",        // too few polygon parameters
		"10C,zzz",        // not a number
		"10",             // empty template
	}
	for _, source := range bad {
		tool := new(Tool)
		if err := tool.Init(source, fs); err == nil {
			t.Error(source, ": want an error")
		}
	}
}

func TestTableMacro(t *testing.T) {
	fs := testFormatSpec(t, "%MOMM*%")
	table := NewTable()
	if err := table.Add("D20DONUT,0.5", fs); err == nil {
		t.Error("undefined macro reference must fail")
	}
	if err := table.DefineMacro("DONUT*1,1,0.100,0,0*1,0,0.080,0,0"); err != nil {
		t.Fatal(err)
	}
	if err := table.Add("D20DONUT,0.5", fs); err != nil {
		t.Fatal(err)
	}
	tool := table.Get(20)
	if tool == nil || tool.Kind != gerbbase.ApKindMacro || tool.MacroName != "DONUT" {
		t.Error("bad macro tool")
	}
}

func TestTableLookup(t *testing.T) {
	fs := testFormatSpec(t, "%MOMM*%")
	table := NewTable()
	if err := table.Add("D10C,0.152", fs); err != nil {
		t.Fatal(err)
	}
	if table.Get(10) == nil {
		t.Error("defined tool not found")
	}
	if table.Get(11) != nil {
		t.Error("lookup of a missing tool must return nil")
	}
	if table.Len() != 1 {
		t.Error("want 1 tool, got", table.Len())
	}
}

func TestClampCode(t *testing.T) {
	if got := ClampCode(gerbbase.ToolsMaxCount + 5); got != gerbbase.ToolsMaxCount-1 {
		t.Error("want", gerbbase.ToolsMaxCount-1, ", got", got)
	}
	if got := ClampCode(42); got != 42 {
		t.Error("in-range code must pass through, got", got)
	}
}
