/*
########################## command interpreter ###############################

The interpreter is the stateful G/D-code dispatcher. One instance per
command stream; the driver decodes coordinate blocks, applies them via
ApplyCoord and then executes the pen or mode command. Compiled items
are appended to the instance's output sequence, step-and-repeat copies
included.

Malformed input never aborts the stream: unknown codes produce a
warning on the message list and a false return, and the interpreter
keeps going.
*/
package compiler

import (
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexander-guesnon/gerbcore/attrs"
	"github.com/alexander-guesnon/gerbcore/dcode"
	"github.com/alexander-guesnon/gerbcore/gerbbase"
	"github.com/alexander-guesnon/gerbcore/xy"
)

type Interpreter struct {
	tools *dcode.Table
	dict  *attrs.Dict

	current  polyclip.Point
	previous polyclip.Point
	ij       polyclip.Point
	hasIJ    bool // the last coordinate block carried I/J operands

	ipMode        gerbbase.IPmode
	multiQuadrant bool
	metric        bool
	relative      bool
	exposure      bool
	regionMode    bool
	layerNegative bool

	currentTool int
	lastPenCode int

	// the one open region, nil outside an accumulation
	openRegion *DrawItem

	sr *SRBlock

	items    []*DrawItem
	messages []string
}

func NewInterpreter(tools *dcode.Table, dict *attrs.Dict) *Interpreter {
	return &Interpreter{
		tools:       tools,
		dict:        dict,
		ipMode:      gerbbase.IPModeLinear,
		metric:      true,
		lastPenCode: 2,
	}
}

func (ip *Interpreter) Items() []*DrawItem { return ip.items }

func (ip *Interpreter) Messages() []string { return ip.messages }

func (ip *Interpreter) CurrentTool() int { return ip.currentTool }

func (ip *Interpreter) LayerNegative() bool { return ip.layerNegative }

func (ip *Interpreter) Relative() bool { return ip.relative }

func (ip *Interpreter) RegionMode() bool { return ip.regionMode }

func (ip *Interpreter) Interpolation() gerbbase.IPmode { return ip.ipMode }

func (ip *Interpreter) QuadrantMode() gerbbase.QuadMode {
	if ip.multiQuadrant {
		return gerbbase.QuadModeMulti
	}
	return gerbbase.QuadModeSingle
}

func (ip *Interpreter) addMessage(format string, args ...interface{}) {
	ip.messages = append(ip.messages, fmt.Sprintf(format, args...))
}

// SetLayerPolarity applies an %LP command.
func (ip *Interpreter) SetLayerPolarity(pol gerbbase.PolType) {
	ip.layerNegative = pol == gerbbase.PolTypeClear
}

// SetStepRepeat installs (or, with nil, closes) the active %SR block.
func (ip *Interpreter) SetStepRepeat(sr *SRBlock) {
	ip.sr = sr
}

// ApplyCoord moves the current point to a freshly decoded coordinate
// block. I/J offsets are taken over verbatim; their absence is
// remembered because an arc draw without them degrades to a line.
func (ip *Interpreter) ApplyCoord(c *xy.Coord) {
	ip.current = polyclip.Point{X: c.X, Y: c.Y}
	ip.hasIJ = c.HasIJ
	if c.HasIJ {
		ip.ij = polyclip.Point{X: c.I, Y: c.J}
	} else {
		ip.ij = polyclip.Point{}
	}
}

// RepeatLastPen re-executes the modal pen command for a bare
// coordinate block (deprecated but common in old streams).
func (ip *Interpreter) RepeatLastPen() bool {
	return ip.ExecuteDCode(ip.lastPenCode)
}

// ExecuteGCode applies one mode-setting command. body carries the
// unconsumed rest of the data block (comment text, G54 tool number).
// Returns false for a code the interpreter does not know; the state is
// left untouched in that case.
func (ip *Interpreter) ExecuteGCode(code int, body string) bool {
	switch code {
	case gerbbase.GCodeLinearInterpol:
		ip.ipMode = gerbbase.IPModeLinear
	case gerbbase.GCodeCircleNegInterpol:
		ip.ipMode = gerbbase.IPModeCwC
	case gerbbase.GCodeCirclePosInterpol:
		ip.ipMode = gerbbase.IPModeCCwC
	case gerbbase.GCodeComment:
		if ip.dict != nil {
			ip.dict.ExecuteComment(body)
		}
	case gerbbase.GCodeRegionStart:
		ip.regionMode = true
		ip.exposure = false
	case gerbbase.GCodeRegionEnd:
		// closing the region mode while exposed finishes the open
		// outline exactly like a pen-up would
		if ip.exposure && ip.openRegion != nil {
			ip.closeRegion()
		}
		ip.regionMode = false
		ip.exposure = false
		ip.ipMode = gerbbase.IPModeLinear
	case gerbbase.GCodeSelectTool:
		n := 0
		i := 0
		if i < len(body) && (body[i] == 'D' || body[i] == 'd') {
			i++
		}
		for ; i < len(body) && body[i] >= '0' && body[i] <= '9'; i++ {
			n = n*10 + int(body[i]-'0')
		}
		if n < gerbbase.FirstDCode {
			ip.addMessage("G54 with bad tool number D%d", n)
			return false
		}
		ip.selectTool(n)
	case gerbbase.GCodePhotoMode:
		// G55 prepare flash, nothing to do
	case gerbbase.GCodeSpecifyInches:
		ip.metric = false
	case gerbbase.GCodeSpecifyMM:
		ip.metric = true
	case gerbbase.GCodeTurnOff360Arc:
		ip.multiQuadrant = false
		ip.ipMode = gerbbase.IPModeLinear
	case gerbbase.GCodeTurnOn360Arc:
		ip.multiQuadrant = true
	case gerbbase.GCodeAbsoluteCoord:
		ip.relative = false
	case gerbbase.GCodeRelativeCoord:
		ip.relative = true
	default:
		ip.addMessage("G%02d command not handled", code)
		return false
	}
	return true
}

// ExecuteDCode applies one pen command (1..3) or tool selection
// (>= FirstDCode). Returns false for a code outside both sets.
func (ip *Interpreter) ExecuteDCode(code int) bool {
	if code >= gerbbase.FirstDCode {
		ip.selectTool(code)
		return true
	}
	switch gerbbase.ActType(code) {
	case gerbbase.OpcodeD01Draw:
		ip.lastPenCode = code
		ip.exposure = true
		if ip.regionMode {
			ip.regionDraw()
		} else {
			ip.penDraw()
		}
	case gerbbase.OpcodeD02Move:
		ip.lastPenCode = code
		if ip.regionMode && ip.openRegion != nil {
			ip.closeRegion()
		}
		ip.exposure = false
	case gerbbase.OpcodeD03Flash:
		// a flash has no meaning inside an outline accumulation
		if ip.regionMode {
			return false
		}
		ip.lastPenCode = code
		ip.exposure = false
		item := ip.newItem()
		fillFlashedItem(item, ip.current, ip.tools.Get(ip.currentTool), ip.currentTool)
		ip.emit(item)
	default:
		return false
	}
	ip.previous = ip.current
	return true
}

// selectTool clamps and activates an aperture index. Selections past
// the table end are clamped, never rejected.
func (ip *Interpreter) selectTool(code int) {
	code = dcode.ClampCode(code)
	ip.currentTool = code
	if tool := ip.tools.Get(code); tool != nil {
		tool.InUse = true
	}
}

// newItem creates an item carrying the stream polarity and the
// attribute snapshot in force right now.
func (ip *Interpreter) newItem() *DrawItem {
	item := NewDrawItem()
	item.LayerNegative = ip.layerNegative
	if ip.dict != nil {
		item.AperFunction = ip.dict.AperFunction
		item.NetAttrs = ip.dict.ObjectAttributes()
	}
	return item
}

// penDraw compiles one stroked segment outside region mode.
func (ip *Interpreter) penDraw() {
	width, height := ip.penSize()
	switch ip.ipMode {
	case gerbbase.IPModeLinear:
		item := ip.newItem()
		fillLineItem(item, ip.previous, ip.current, width, height, ip.currentTool)
		ip.emit(item)
	case gerbbase.IPModeCwC, gerbbase.IPModeCCwC:
		if !ip.hasIJ {
			// arcs without I/J appear in broken streams, draw a
			// chord instead of guessing a center
			item := ip.newItem()
			fillLineItem(item, ip.previous, ip.current, width, height, ip.currentTool)
			ip.emit(item)
			return
		}
		item := ip.newItem()
		fillArcItem(item, ip.previous, ip.current, ip.ij,
			ip.clockwise(), ip.multiQuadrant, width, height, ip.currentTool)
		ip.emit(item)
	default:
		// position still advances, see ExecuteDCode
		ip.addMessage("interpolation mode %d not handled during draw", int(ip.ipMode))
	}
}

// regionDraw appends one segment to the open region outline, opening
// the region first when exposure was off.
func (ip *Interpreter) regionDraw() {
	if ip.openRegion == nil {
		item := ip.newItem()
		item.Shape = ShapeRegion
		item.Start = ip.previous
		item.DCode = ip.currentTool
		item.Outline = polyclip.Polygon{polyclip.Contour{}}
		ip.openRegion = item
	}
	contour := &ip.openRegion.Outline[len(ip.openRegion.Outline)-1]
	switch ip.ipMode {
	case gerbbase.IPModeCwC, gerbbase.IPModeCCwC:
		ip.fillArcPoly(contour)
	default:
		if len(*contour) == 0 {
			contour.Add(ip.previous)
		}
		contour.Add(ip.current)
	}
	ip.openRegion.End = ip.current
}

// closeRegion appends the closing vertex and hands the finished item
// to the output sequence.
func (ip *Interpreter) closeRegion() {
	item := ip.openRegion
	ip.openRegion = nil
	contour := &item.Outline[len(item.Outline)-1]
	if len(*contour) > 0 {
		contour.Add((*contour)[0])
	}
	ip.emit(item)
}

// clockwise maps the interpolation mode to the winding sense the
// renderer walks arcs in: negative interpolation (G02) is false,
// positive (G03) is true.
func (ip *Interpreter) clockwise() bool {
	return ip.ipMode != gerbbase.IPModeCwC
}

// penSize looks up the stroke size of the active tool, degrading to
// the default pen when the table has no entry.
func (ip *Interpreter) penSize() (float64, float64) {
	tool := ip.tools.Get(ip.currentTool)
	if tool == nil {
		return gerbbase.DefaultPenSize, gerbbase.DefaultPenSize
	}
	w, h := tool.Size()
	if tool.Kind == gerbbase.ApKindCircle {
		h = w
	}
	if w == 0 {
		w, h = gerbbase.DefaultPenSize, gerbbase.DefaultPenSize
	}
	return w, h
}

// emit appends a finished item and its step-and-repeat copies.
func (ip *Interpreter) emit(item *DrawItem) {
	ip.items = append(ip.items, item)
	if ip.sr == nil {
		return
	}
	for i := 0; i < ip.sr.NumX(); i++ {
		for j := 0; j < ip.sr.NumY(); j++ {
			if i == 0 && j == 0 {
				continue
			}
			ip.items = append(ip.items, item.OffsetCopy(float64(i)*ip.sr.DX(), float64(j)*ip.sr.DY()))
		}
	}
}

/*
######################### region arc tessellation ############################
*/

const (
	// tessellation resolution, tenths of a degree per chord
	arcStepDeciDeg = 100
	fullCircle     = 3600
)

func deciDegrees(p polyclip.Point) float64 {
	return mgl64.RadToDeg(math.Atan2(p.Y, p.X)) * 10
}

// fillArcPoly tessellates one arc segment of a region into chord
// vertices, 36 chords per full circle. The emitted sequence runs from
// the original arc start to the original arc end even though the
// stored canonical pair may be swapped. The arc start is appended only
// when it opens the contour (otherwise the previous segment already
// ends there), and the final vertex is the exact end point so chord
// error never accumulates across segments.
func (ip *Interpreter) fillArcPoly(contour *polyclip.Contour) {
	clockwise := ip.clockwise()
	center, canonStart, canonEnd := ResolveArcCenter(ip.previous, ip.current, ip.ij, clockwise, ip.multiQuadrant)

	relStart := polyclip.Point{X: canonStart.X - center.X, Y: canonStart.Y - center.Y}
	relEnd := polyclip.Point{X: canonEnd.X - center.X, Y: canonEnd.Y - center.Y}
	startAngle := deciDegrees(relStart)
	endAngle := deciDegrees(relEnd)
	if startAngle == endAngle {
		// a full circle
		endAngle += fullCircle
	}
	// atan2 wraps at +-180 degrees
	if startAngle > endAngle {
		endAngle += fullCircle
	}
	count := int(math.Abs(startAngle-endAngle)) / arcStepDeciDeg

	if len(*contour) == 0 {
		contour.Add(ip.previous)
	}
	for ii := 1; ii < count; ii++ {
		rot := float64(ii * arcStepDeciDeg)
		if !clockwise {
			rot = float64((count - ii) * arcStepDeciDeg)
		}
		v := mgl64.Rotate2D(mgl64.DegToRad(rot / 10)).Mul2x1(mgl64.Vec2{relStart.X, relStart.Y})
		contour.Add(polyclip.Point{X: v.X() + center.X, Y: v.Y() + center.Y})
	}
	// land exactly on the original arc end
	if clockwise {
		contour.Add(canonEnd)
	} else {
		contour.Add(canonStart)
	}
}
