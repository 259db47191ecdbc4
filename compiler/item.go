/*
########################### draw items #######################################

DrawItem is the output unit of the geometry compiler: one renderable
primitive with its polarity and attribute snapshot attached at the
moment of creation. Ownership passes to the output sequence as soon as
the item is finished; closed regions are never mutated afterwards.
*/
package compiler

import (
	"math"
	"strconv"

	"github.com/akavel/polyclip-go"

	"github.com/alexander-guesnon/gerbcore/attrs"
)

type ShapeKind int

const (
	ShapeLine ShapeKind = iota + 1
	ShapeArc
	ShapeSpotCircle
	ShapeSpotOval
	ShapeSpotRect
	ShapeSpotPoly
	ShapeSpotMacro
	ShapeRegion
)

func (sk ShapeKind) String() string {
	switch sk {
	case ShapeLine:
		return "line"
	case ShapeArc:
		return "arc"
	case ShapeSpotCircle:
		return "flashed circle"
	case ShapeSpotOval:
		return "flashed oval"
	case ShapeSpotRect:
		return "flashed rectangle"
	case ShapeSpotPoly:
		return "flashed polygon"
	case ShapeSpotMacro:
		return "flashed macro"
	case ShapeRegion:
		return "region"
	default:
	}
	return "unknown shape"
}

// DrawItem is one compiled graphic primitive. Start and End are the
// canonical arc endpoints for ShapeArc (start precedes end in the
// counter-clockwise sense); for flashes both equal the flash point.
type DrawItem struct {
	Shape     ShapeKind
	Start     polyclip.Point
	End       polyclip.Point
	ArcCenter polyclip.Point // valid for ShapeArc only
	Width     float64
	Height    float64
	DCode     int

	// flashed polygon / macro extras
	Vertices  int
	RotAngle  float64
	MacroName string

	LayerNegative bool
	AperFunction  string
	NetAttrs      *attrs.NetAttributes

	// Outline holds the closed contours of a ShapeRegion item.
	Outline polyclip.Polygon
}

func NewDrawItem() *DrawItem {
	return new(DrawItem)
}

func (item *DrawItem) String() string {
	return "{" + item.Shape.String() +
		" D" + strconv.Itoa(item.DCode) +
		" start=" + ptString(item.Start) +
		" end=" + ptString(item.End) + "}"
}

func ptString(p polyclip.Point) string {
	return "(" + strconv.FormatFloat(p.X, 'f', 5, 64) +
		"," + strconv.FormatFloat(p.Y, 'f', 5, 64) + ")"
}

// IsFlash reports whether the item stamps an aperture at one point.
func (item *DrawItem) IsFlash() bool {
	switch item.Shape {
	case ShapeSpotCircle, ShapeSpotOval, ShapeSpotRect, ShapeSpotPoly, ShapeSpotMacro:
		return true
	default:
	}
	return false
}

// OffsetCopy returns a deep copy of the item translated by (dx, dy).
// Used by step-and-repeat replication.
func (item *DrawItem) OffsetCopy(dx, dy float64) *DrawItem {
	out := *item
	out.Start.X += dx
	out.Start.Y += dy
	out.End.X += dx
	out.End.Y += dy
	out.ArcCenter.X += dx
	out.ArcCenter.Y += dy
	if len(item.Outline) > 0 {
		out.Outline = make(polyclip.Polygon, len(item.Outline))
		for i, contour := range item.Outline {
			shifted := make(polyclip.Contour, len(contour))
			for j, pt := range contour {
				shifted[j] = polyclip.Point{X: pt.X + dx, Y: pt.Y + dy}
			}
			out.Outline[i] = shifted
		}
	}
	return &out
}

// BoundingBox returns the axis-aligned box around the item geometry,
// pen size included for strokes and flashes.
func (item *DrawItem) BoundingBox() polyclip.Rectangle {
	if item.Shape == ShapeRegion && len(item.Outline) > 0 {
		bb := item.Outline[0].BoundingBox()
		for _, contour := range item.Outline[1:] {
			bb = unionRect(bb, contour.BoundingBox())
		}
		return bb
	}
	halfW, halfH := item.Width/2, item.Height/2
	bb := polyclip.Rectangle{
		Min: polyclip.Point{X: item.Start.X - halfW, Y: item.Start.Y - halfH},
		Max: polyclip.Point{X: item.Start.X + halfW, Y: item.Start.Y + halfH},
	}
	end := polyclip.Rectangle{
		Min: polyclip.Point{X: item.End.X - halfW, Y: item.End.Y - halfH},
		Max: polyclip.Point{X: item.End.X + halfW, Y: item.End.Y + halfH},
	}
	return unionRect(bb, end)
}

// ItemsBounds returns the working area of a whole item sequence.
func ItemsBounds(items []*DrawItem) polyclip.Rectangle {
	if len(items) == 0 {
		return polyclip.Rectangle{}
	}
	bb := items[0].BoundingBox()
	for _, item := range items[1:] {
		bb = unionRect(bb, item.BoundingBox())
	}
	return bb
}

func unionRect(a, b polyclip.Rectangle) polyclip.Rectangle {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y)},
		Max: polyclip.Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y)},
	}
}
