/*
#################### geometry compilation helpers ############################
*/
package compiler

import (
	"github.com/akavel/polyclip-go"

	"github.com/alexander-guesnon/gerbcore/dcode"
	"github.com/alexander-guesnon/gerbcore/gerbbase"
)

// ResolveArcCenter turns the relative I/J center offset of an arc
// command into the absolute center and the canonical endpoint pair.
//
// In multi-quadrant mode the offset signs are authoritative and the
// center is simply start+rel. In single-quadrant mode the offset comes
// with unsigned magnitudes and the signs are recovered from the
// quadrant the chord end-start falls into; the arc is guaranteed to
// stay inside one quadrant around the center, which makes the
// recovery unambiguous.
//
// clockwise carries the winding sense of the downstream renderer
// (negative interpolation G02 maps to false, positive G03 to true).
// The canonical pair is ordered so that canonStart always precedes
// canonEnd counter-clockwise: a clockwise arc keeps (start, end), a
// counter-clockwise one swaps them.
func ResolveArcCenter(start, end, rel polyclip.Point, clockwise, multiQuadrant bool) (center, canonStart, canonEnd polyclip.Point) {
	center = rel
	if !multiQuadrant {
		delta := polyclip.Point{X: end.X - start.X, Y: end.Y - start.Y}
		switch {
		case delta.X >= 0 && delta.Y >= 0:
			center.X = -center.X
		case delta.X >= 0 && delta.Y < 0:
			// nothing to negate
		case delta.X < 0 && delta.Y >= 0:
			center.X = -center.X
			center.Y = -center.Y
		default: // delta.X < 0 && delta.Y < 0
			center.Y = -center.Y
		}
		if !clockwise {
			center.X = -center.X
			center.Y = -center.Y
		}
	}
	center.X += start.X
	center.Y += start.Y

	if clockwise {
		canonStart, canonEnd = start, end
	} else {
		canonStart, canonEnd = end, start
	}
	return center, canonStart, canonEnd
}

// fillLineItem populates one stroked segment between start and end.
func fillLineItem(item *DrawItem, start, end polyclip.Point, width, height float64, code int) {
	item.Shape = ShapeLine
	item.Start = start
	item.End = end
	item.Width = width
	item.Height = height
	item.DCode = code
}

// fillArcItem populates one stroked arc. Start and End are stored
// canonicalized, see ResolveArcCenter.
func fillArcItem(item *DrawItem, start, end, rel polyclip.Point, clockwise, multiQuadrant bool, width, height float64, code int) {
	center, canonStart, canonEnd := ResolveArcCenter(start, end, rel, clockwise, multiQuadrant)
	item.Shape = ShapeArc
	item.Start = canonStart
	item.End = canonEnd
	item.ArcCenter = center
	item.Width = width
	item.Height = height
	item.DCode = code
}

// fillFlashedItem populates one aperture stamp at pos. A missing tool
// degrades to a small default circle instead of failing.
func fillFlashedItem(item *DrawItem, pos polyclip.Point, tool *dcode.Tool, code int) {
	item.Start = pos
	item.End = pos
	item.DCode = code

	if tool == nil {
		item.Shape = ShapeSpotCircle
		item.Width = gerbbase.DefaultPenSize
		item.Height = gerbbase.DefaultPenSize
		return
	}

	item.Width, item.Height = tool.Size()
	switch tool.Kind {
	case gerbbase.ApKindCircle:
		item.Shape = ShapeSpotCircle
		item.Height = item.Width
	case gerbbase.ApKindRect:
		item.Shape = ShapeSpotRect
	case gerbbase.ApKindObround:
		item.Shape = ShapeSpotOval
	case gerbbase.ApKindPoly:
		item.Shape = ShapeSpotPoly
		item.Vertices = tool.Vertices
		item.RotAngle = tool.RotAngle
	case gerbbase.ApKindMacro:
		item.Shape = ShapeSpotMacro
		item.MacroName = tool.MacroName
	default:
		item.Shape = ShapeSpotCircle
		item.Width = gerbbase.DefaultPenSize
		item.Height = gerbbase.DefaultPenSize
	}
}
