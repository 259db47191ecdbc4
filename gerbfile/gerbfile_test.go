package gerbfile

import (
	"strings"
	"testing"

	"github.com/alexander-guesnon/gerbcore/compiler"
)

const sampleFile = `G04 two pads and one track*
%FSLAX34Y34*%
%MOMM*%
%ADD10C,0.152*%
%ADD11R,2.0X1.0*%
%LPD*%
D10*
X0Y0D02*
X50000Y0D01*
D11*
X0Y10000D03*
X50000Y10000D03*
G36*
X0Y20000D02*
X10000Y20000D01*
X10000Y30000D01*
X0Y30000D01*
X0Y20000D01*
G37*
M02*
`

func TestProcess(t *testing.T) {
	g, err := Process("sample.gbr", []byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Warnings()) != 0 {
		t.Fatal("unexpected warnings:", g.Warnings())
	}
	if g.Tools.Len() != 2 {
		t.Error("want 2 tools, got", g.Tools.Len())
	}
	if len(g.Items) != 4 {
		t.Fatal("want 4 items, got", len(g.Items))
	}
	if g.Items[0].Shape != compiler.ShapeLine {
		t.Error("item 0: want a line, got", g.Items[0].Shape.String())
	}
	if g.Items[0].End.X != 5.0 || g.Items[0].End.Y != 0 {
		t.Error("item 0: bad line end", g.Items[0].End)
	}
	if g.Items[1].Shape != compiler.ShapeSpotRect || g.Items[2].Shape != compiler.ShapeSpotRect {
		t.Error("items 1 and 2 must be flashed rectangles")
	}
	region := g.Items[3]
	if region.Shape != compiler.ShapeRegion {
		t.Fatal("item 3: want a region, got", region.Shape.String())
	}
	contour := region.Outline[0]
	if contour[0] != contour[len(contour)-1] {
		t.Error("region outline must be closed")
	}
	if len(contour) != 6 {
		t.Error("want 6 region vertexes, got", len(contour))
	}
}

func TestProcessWithoutFormatSpec(t *testing.T) {
	if _, err := Process("broken.gbr", []byte("G01*\nM02*\n")); err == nil {
		t.Fatal("stream without a format specification must fail")
	}
}

func TestProcessUnknownGCode(t *testing.T) {
	stream := "%FSLAX34Y34*%\n%MOMM*%\nG99*\nM02*\n"
	g, err := Process("odd.gbr", []byte(stream))
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range g.Warnings() {
		if strings.Contains(w, "G99") {
			found = true
		}
	}
	if !found {
		t.Error("want a warning naming G99, got", g.Warnings())
	}
}

func TestProcessStructuredComments(t *testing.T) {
	stream := "%FSLAX34Y34*%\n%MOMM*%\n" +
		"G04 #@! TF.Part,Single*\n" +
		"%ADD10C,0.152*%\nD10*\nX0Y0D02*\nX100Y100D01*\nM02*\n"
	g, err := Process("x2.gbr", []byte(stream))
	if err != nil {
		t.Fatal(err)
	}
	if g.Attrs.FileAttribute("Part") != "Single" {
		t.Error("structured comment attribute lost")
	}
}
