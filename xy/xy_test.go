package xy

import (
	"math"
	"testing"
)

func TestFormatSpecInit(t *testing.T) {
	tests := []struct {
		head string
		mu   string
		ok   bool
	}{
		{"%FSLAX34Y34*%", "%MOMM*%", true},
		{"%FSLAX26Y26*%", "%MOIN*%", true},
		{"%FSLAX67Y67*%", "%MOMM*%", true},
		{"%FSLAX34Y35*%", "%MOMM*%", false}, // X and Y differ
		{"%FSLAX74Y74*%", "%MOMM*%", false}, // too many integer places
		{"%FSLAX32Y32*%", "%MOMM*%", false}, // too few decimal places
		{"%FSLAX38Y38*%", "%MOMM*%", false}, // too many decimal places
		{"%FSLAX34Y34*%", "%MOXX*%", false}, // bad units
		{"%FSTAX34Y34*%", "%MOMM*%", false}, // trailing zero omission
	}
	for _, tc := range tests {
		fs := new(FormatSpec)
		if got := fs.Init(tc.head, tc.mu); got != tc.ok {
			t.Error(tc.head, tc.mu, ": got", got, ", want", tc.ok)
		}
	}
}

func TestFormatSpecScale(t *testing.T) {
	fs := new(FormatSpec)
	if !fs.Init("%FSLAX26Y26*%", "%MOIN*%") {
		t.Fatal("init failed")
	}
	if fs.ReadXI() != 2 || fs.ReadXD() != 6 {
		t.Error("bad digit counts", fs.ReadXI(), fs.ReadXD())
	}
	if fs.ReadMU() != 25.4 {
		t.Error("inches scale must be 25.4, got", fs.ReadMU())
	}
}

func TestCoordDecode(t *testing.T) {
	fs := new(FormatSpec)
	if !fs.Init("%FSLAX34Y34*%", "%MOMM*%") {
		t.Fatal("init failed")
	}
	c := NewCoord()
	if err := c.Decode("X12345Y-6789", fs, nil, false); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.X-1.2345) > 1e-9 || math.Abs(c.Y+0.6789) > 1e-9 {
		t.Error("bad decoded values", c.String())
	}
	if c.HasIJ {
		t.Error("no I/J operands were present")
	}

	// X is modal, I/J are not
	next := NewCoord()
	if err := next.Decode("Y10000I500J-500", fs, c, false); err != nil {
		t.Fatal(err)
	}
	if math.Abs(next.X-1.2345) > 1e-9 {
		t.Error("X must stay modal, got", next.X)
	}
	if math.Abs(next.Y-1.0) > 1e-9 {
		t.Error("bad Y, got", next.Y)
	}
	if !next.HasIJ || math.Abs(next.I-0.05) > 1e-9 || math.Abs(next.J+0.05) > 1e-9 {
		t.Error("bad I/J", next.String())
	}
}

func TestCoordDecodeRelative(t *testing.T) {
	fs := new(FormatSpec)
	if !fs.Init("%FSLAX34Y34*%", "%MOMM*%") {
		t.Fatal("init failed")
	}
	prev := &Coord{X: 1.0, Y: 2.0}
	c := NewCoord()
	if err := c.Decode("X10000Y-10000", fs, prev, true); err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.X-2.0) > 1e-9 || math.Abs(c.Y-1.0) > 1e-9 {
		t.Error("relative accumulation failed", c.String())
	}
}

func TestCoordDecodeErrors(t *testing.T) {
	fs := new(FormatSpec)
	if !fs.Init("%FSLAX34Y34*%", "%MOMM*%") {
		t.Fatal("init failed")
	}
	c := NewCoord()
	if err := c.Decode("X12345678", fs, nil, false); err == nil {
		t.Error("too long coordinate must fail")
	}
	if err := c.Decode("X12a45", fs, nil, false); err == nil {
		t.Error("non-numeric coordinate must fail")
	}
	if err := c.Decode("Q123", fs, nil, false); err == nil {
		t.Error("unknown axis letter must fail")
	}
}

func TestCoordEquals(t *testing.T) {
	a := &Coord{X: 1.0, Y: 1.0}
	b := &Coord{X: 1.0005, Y: 1.0}
	if !a.Equals(b, 0.001) {
		t.Error("points inside the tolerance circle must be equal")
	}
	if a.Equals(b, 0.0001) {
		t.Error("points outside the tolerance circle must differ")
	}
}

func TestExtractLetterDelimitedFloats(t *testing.T) {
	out, err := ExtractLetterDelimitedFloats("X2Y3I10.5J-20", "XYIJ")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 {
		t.Fatal("want 4 values, got", len(out))
	}
	if out['X'] != 2 || out['Y'] != 3 || out['I'] != 10.5 || out['J'] != -20 {
		t.Error("bad values", out)
	}

	// the template order is not the string order
	out, err = ExtractLetterDelimitedFloats("J5X1", "XYIJ")
	if err != nil {
		t.Fatal(err)
	}
	if out['J'] != 5 || out['X'] != 1 {
		t.Error("bad values for unordered input", out)
	}
}
