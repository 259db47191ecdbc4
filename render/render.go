package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/spf13/viper"

	"github.com/alexander-guesnon/gerbcore/compiler"
	"github.com/alexander-guesnon/gerbcore/configurator"
	"github.com/alexander-guesnon/gerbcore/gerbbase"
	"github.com/alexander-guesnon/gerbcore/plotter"
)

/*
 ************************** Rendering context ****************************
 */
type Render struct {
	// physical plotter single step size
	XRes float64
	YRes float64

	// pen width
	PenWidth float64

	// paper or pcb max dimensions
	CanvasWidth  int // paper property
	CanvasHeight int // paper property
	LimitsX0     int
	LimitsY0     int
	LimitsX1     int
	LimitsY1     int

	// margin is a safety margin to draw all the border elements of the pcb
	margin float64

	YNeedsFlip bool

	// setPoint size in terms of real plotter pen points
	PointSize  float64
	PointSizeI int
	Plt        *plotter.Plotter
	// pcb properties
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
	// png image properties
	Img          *image.NRGBA
	ApColor      color.RGBA
	LineColor    color.RGBA
	RegionColor  color.RGBA
	ClearColor   color.RGBA
	ObRoundColor color.RGBA
	MovePenColor color.RGBA
	MissedColor  color.RGBA
	ContourColor color.RGBA

	DrawContours        bool
	DrawMoves           bool
	DrawOnlyRegionsMode bool
	PrintRegionInfo     bool

	// statistic
	LineBresCounter   int
	MovePenCounters   int
	MovePenDistance   float64
	CircleBresCounter int
	LineBresLen       float64
	CircleLen         float64
	FilledRctCounter  int
	ObRoundCounter    int
	RegionCounter     int

	// real pen position between items
	penX int
	penY int
}

func NewRender(plt *plotter.Plotter, v *viper.Viper, bounds polyclip.Rectangle) *Render {
	retVal := new(Render)
	retVal.Init(plt, v, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	return retVal
}

func (rc *Render) Init(plt *plotter.Plotter, v *viper.Viper, minX, minY, maxX, maxY float64) {
	// physical plotter single step size
	rc.XRes = v.GetFloat64(configurator.CfgPlotterXRes)
	rc.YRes = v.GetFloat64(configurator.CfgPlotterYRes)

	arr := v.Get(configurator.CfgPlotterPenSizes)
	b, ok := arr.([]float64)
	if !ok {
		bi, ok2 := arr.([]interface{})
		if !ok2 {
			panic("penSizes configuration error")
		}
		b = make([]float64, len(bi))
		for i := range bi {
			b[i] = bi[i].(float64)
		}
	}
	rc.PenWidth = b[0]

	// paper or pcb max dimensions
	rc.LimitsX0 = 0
	rc.LimitsY0 = 0
	rc.CanvasWidth = v.GetInt(configurator.CfgRendererCanvasWidth)
	rc.CanvasHeight = v.GetInt(configurator.CfgRendererCanvasHeight)
	rc.margin = 10.0
	rc.MinX = minX - rc.margin
	rc.MinY = minY - rc.margin
	rc.MaxX = maxX + rc.margin
	rc.MaxY = maxY + rc.margin

	rc.LimitsX1 = int((rc.MaxX - rc.MinX) / rc.XRes)
	rc.LimitsY1 = int((rc.MaxY - rc.MinY) / rc.YRes)

	maxLimX1 := int(float64(rc.CanvasWidth) / rc.XRes)
	maxLimY1 := int(float64(rc.CanvasHeight) / rc.YRes)

	if rc.LimitsX1 > maxLimX1 {
		fmt.Println("Warning: the PCB size X is bigger than plotter working area!")
		fmt.Println("the PCB will be truncated.")
		rc.LimitsX1 = maxLimX1
	}

	if rc.LimitsY1 > maxLimY1 {
		fmt.Println("Warning: the PCB size Y is bigger than plotter working area!")
		fmt.Println("the PCB will be truncated.")
		rc.LimitsY1 = maxLimY1
	}

	rc.Img = image.NewNRGBA(image.Rect(rc.LimitsX0, rc.LimitsY0, rc.LimitsX1, rc.LimitsY1))
	rc.YNeedsFlip = true

	// setPoint size in terms of real plotter pen points
	rc.PointSize = rc.PenWidth / rc.XRes
	rc.PointSizeI = int(math.Round(rc.PointSize))
	if rc.PointSizeI < 1 {
		rc.PointSizeI = 1
	}

	rc.ApColor = color.RGBA{255, 0, 0, 255}
	rc.LineColor = color.RGBA{0, 0, 255, 255}
	rc.RegionColor = color.RGBA{255, 0, 255, 255}
	rc.ClearColor = color.RGBA{255, 255, 0, 255}
	rc.ObRoundColor = color.RGBA{0, 127, 0, 255}
	rc.MovePenColor = color.RGBA{100, 100, 100, 255}
	rc.MissedColor = color.RGBA{255, 0, 255, 255}
	rc.ContourColor = color.RGBA{0, 255, 0, 255}

	rc.Plt = plt

	// drawing modes setting
	rc.DrawContours = v.GetBool(configurator.CfgRenderDrawContours)
	rc.DrawMoves = v.GetBool(configurator.CfgRenderDrawMoves)
	rc.DrawOnlyRegionsMode = v.GetBool(configurator.CfgRenderDrawOnlyRegions)
	rc.PrintRegionInfo = v.GetBool(configurator.CfgPrintRegionInfo)
}

/*
 ************************** item processor ****************************
 */

// Draw rasterizes the compiled item sequence.
func (rc *Render) Draw(items []*compiler.DrawItem) {
	for _, item := range items {
		rc.DrawItem(item)
	}
}

func (rc *Render) DrawItem(item *compiler.DrawItem) {
	xs := rc.pixelX(item.Start.X)
	ys := rc.pixelY(item.Start.Y)
	xe := rc.pixelX(item.End.X)
	ye := rc.pixelY(item.End.Y)

	if item.Shape == compiler.ShapeRegion {
		rc.renderRegion(item)
		rc.penX, rc.penY = xe, ye
		return
	}
	if rc.DrawOnlyRegionsMode {
		return
	}

	stepColor := rc.LineColor
	if item.IsFlash() {
		stepColor = rc.ApColor
	}
	if item.LayerNegative {
		stepColor = rc.ClearColor
	}

	switch item.Shape {
	case compiler.ShapeLine:
		if rc.penX != xs || rc.penY != ys {
			rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		}
		w := transformCoord(item.Width, rc.XRes)
		h := transformCoord(item.Height, rc.YRes)
		if w == h {
			rc.drawByCircleAperture(xs, ys, xe, ye, w, stepColor)
		} else {
			rc.drawByRectangleAperture(xs, ys, xe, ye, w, h, stepColor)
		}
		rc.penX, rc.penY = xe, ye
	case compiler.ShapeArc:
		w := transformCoord(item.Width, rc.XRes)
		rc.drawArc(item, w, stepColor)
		rc.drawDonut(xs, ys, w, 0, stepColor)
		rc.drawDonut(xe, ye, w, 0, stepColor)
		rc.penX, rc.penY = xe, ye
	case compiler.ShapeSpotCircle:
		rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		rc.drawDonut(xs, ys, transformCoord(item.Width, rc.XRes), 0, stepColor)
	case compiler.ShapeSpotRect:
		rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		rc.drawFilledRectangle(xs, ys, transformCoord(item.Width, rc.XRes), transformCoord(item.Height, rc.YRes), stepColor)
	case compiler.ShapeSpotOval:
		rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		w := transformCoord(item.Width, rc.XRes)
		h := transformCoord(item.Height, rc.YRes)
		if w == h {
			rc.drawDonut(xs, ys, w, 0, stepColor)
		} else {
			rc.drawObRound(xs, ys, w, h, 0, rc.ObRoundColor)
		}
	case compiler.ShapeSpotPoly:
		// polygon stamps are approximated by their circumcircle
		rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		rc.drawDonut(xs, ys, transformCoord(item.Width, rc.XRes), 0, rc.MissedColor)
	case compiler.ShapeSpotMacro:
		rc.penX, rc.penY = rc.movePen(rc.penX, rc.penY, xs, ys, rc.MovePenColor)
		rc.drawDonut(xs, ys, transformCoord(item.Width, rc.XRes), 0, rc.MissedColor)
		fmt.Println("Macro aperture " + item.MacroName + " flashed as a stamp placeholder.")
	default:
		fmt.Println("Unknown shape " + item.Shape.String() + " skipped.")
	}
}

func (rc *Render) pixelX(v float64) int {
	return transformCoord(v-rc.MinX, rc.XRes)
}

func (rc *Render) pixelY(v float64) int {
	return transformCoord(v-rc.MinY, rc.YRes)
}

func (rc *Render) DrawFrame() {
	x2 := transformCoord(rc.MaxX-rc.MinX, rc.XRes)
	y2 := transformCoord(rc.MaxY-rc.MinY, rc.YRes)
	frameColor := color.RGBA{127, 127, 127, 255}
	rc.bresenhamWithPattern(0, 0, x2, 0, 1, frameColor, 10, 10)
	rc.bresenhamWithPattern(x2, 0, x2, y2, 1, frameColor, 10, 10)
	rc.bresenhamWithPattern(x2, y2, 0, y2, 1, frameColor, 10, 10)
	rc.bresenhamWithPattern(0, y2, 0, 0, 1, frameColor, 10, 10)
}

/*----------------------------------------------*/
// draws a point
func (rc *Render) setPoint(x, y, pointSize int, col color.Color) {
	if pointSize < 0 {
		return
	}
	if !rc.DrawContours {
		// Draw by bresenham algorithm
		x1, y1, err := -pointSize, 0, 2-2*pointSize
		for {
			rc.Img.Set(x-x1, y+y1, col)
			rc.Img.Set(x-y1, y-x1, col)
			rc.Img.Set(x+x1, y-y1, col)
			rc.Img.Set(x+y1, y+x1, col)
			pointSize = err
			if pointSize > x1 {
				x1++
				err += x1*2 + 1
			}
			if pointSize <= y1 {
				y1++
				err += y1*2 + 1
			}
			if x1 >= 0 {
				break
			}
		}
	} else {
		rc.Img.Set(x, y, col)
	}
}

// for stroked segments with a rectangular pen
func (rc *Render) drawByRectangleAperture(x0, y0, x1, y1, apSizeX, apSizeY int, col color.Color) {
	var w, h, xOrigin, yOrigin int

	if x0 != x1 && y0 != y1 {
		fmt.Println("Drawing by rectangular aperture with arbitrary angle is not supported!")
		rc.drawCircle(x0, y0, apSizeX/2, rc.PointSizeI, rc.MissedColor)
		rc.drawCircle(x1, y1, apSizeX/2, rc.PointSizeI, rc.MissedColor)
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	if x0 == x1 { // vertical draw
		xOrigin = x0
		yOrigin = y0 + (y1-y0)/2
		h = y1 - y0 + apSizeY
		w = apSizeX
		// draw by pen from x0,y0 to rectangle's origin
		rc.drawByBrezenham(x0, y0, xOrigin, yOrigin, rc.PointSizeI, col)
		rc.drawFilledRectangle(xOrigin, yOrigin, w, h, col)
		// draw back by pen from rectangle's origin to x1, y1
		rc.drawByBrezenham(xOrigin, yOrigin, x1, y1, rc.PointSizeI, col)
		return
	}
	if y0 == y1 { // horizontal draw
		yOrigin = y0
		xOrigin = x0 + (x1-x0)/2
		w = x1 - x0 + apSizeX
		h = apSizeY
		rc.drawByBrezenham(x0, y0, xOrigin, yOrigin, rc.PointSizeI, col)
		rc.drawFilledRectangle(xOrigin, yOrigin, w, h, col)
		rc.drawByBrezenham(xOrigin, yOrigin, x1, y1, rc.PointSizeI, col)
		return
	}
}

// for stroked segments with a round pen
func (rc *Render) drawByCircleAperture(x0, y0, x1, y1, apDia int, col color.Color) {
	// save x0, y0, x1, y1
	savedx0 := x0
	savedy0 := y0
	savedx1 := x1
	savedy1 := y1

	ptsz := rc.PointSizeI

	rc.drawDonut(x0, y0, apDia, 0, col)

	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	} // now y0 definitely less than y1

	if y0 == y1 { // horizontal draw
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		yOrigin := y0
		xOrigin := x0 + (x1-x0)/2
		rc.drawByBrezenham(savedx0, savedy0, xOrigin, yOrigin, ptsz, col)
		w := x1 - x0
		h := apDia
		rc.drawFilledRectangle(xOrigin, yOrigin, w, h, col)
		rc.drawByBrezenham(xOrigin, yOrigin, savedx1, savedy1, ptsz, col)
		rc.drawDonut(savedx1, savedy1, apDia, 0, col)
		return
	}
	if x0 == x1 {
		// y0 < y1 always here
		// vertical draw
		xOrigin := x0
		yOrigin := y0 + (y1-y0)/2
		h := y1 - y0
		w := apDia
		rc.drawByBrezenham(savedx0, savedy0, xOrigin, yOrigin, ptsz, col)
		rc.drawFilledRectangle(xOrigin, yOrigin, w, h, col)
		rc.drawByBrezenham(xOrigin, yOrigin, savedx1, savedy1, ptsz, col)
		rc.drawDonut(savedx1, savedy1, apDia, 0, col)
		return
	}
	// non-orthogonal draw
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	l := math.Hypot(dx, dy)
	var sdelta = 1.0
	if x1 > x0 {
		sdelta = -1.0
	}
	var lines = apDia / ptsz
	if lines < 1 {
		lines = 1
	}
	alpha := math.Asin(dy / l)
	hypo := (float64(apDia) / 2) - (float64(ptsz) / 2)
	sin1 := math.Sin((math.Pi / 2) - alpha)
	cos1 := math.Cos((math.Pi / 2) - alpha)
	yv0 := float64(y0) - hypo*sin1
	xv0 := float64(x0) - (sdelta * hypo * cos1)
	dxv := math.Abs(float64(ptsz) * cos1)
	dyv := math.Abs(float64(ptsz) * sin1)
	var nx0, nx1, ny0, ny1 int
	for i := 0; i < lines; i++ {
		nx0 = int(math.Round(xv0))
		ny0 = int(math.Round(yv0))
		if i == 0 {
			// draw to start setPoint
			rc.drawByBrezenham(savedx0, savedy0, nx0, ny0, ptsz, col)
		}
		nx1 = int(math.Round(xv0 + dx))
		ny1 = int(math.Round(yv0 + dy))
		rc.drawByBrezenham(nx0, ny0, nx1, ny1, ptsz, col)
		xv0 = xv0 + sdelta*dxv
		yv0 = yv0 + dyv
	}
	// draw back to saved x1, y1
	rc.drawByBrezenham(nx1, ny1, savedx1, savedy1, ptsz, col)
	// and final drawDonut
	rc.drawDonut(savedx1, savedy1, apDia, 0, col)
}

// flash filling strategy: zig-zag
const strat int = 1

// draws a filled rectangle
func (rc *Render) drawFilledRectangle(origX, origY, w, h int, col color.Color) {
	xPen := origX // real pen position
	yPen := origY // real pen position

	// performs rectangle aperture flash
	x0 := origX - (w / 2)
	y0 := origY - (h / 2)
	x1 := origX + (w / 2)
	y1 := origY + (h / 2)

	if rc.DrawContours {
		rc.drawByBrezenham(x0, y0, x1, y0, 1, rc.ContourColor)
		rc.drawByBrezenham(x1, y0, x1, y1, 1, rc.ContourColor)
		rc.drawByBrezenham(x1, y1, x0, y1, 1, rc.ContourColor)
		rc.drawByBrezenham(x0, y1, x0, y0, 1, rc.ContourColor)
	}
	x0 = x0 + (rc.PointSizeI / 2)
	y0 = y0 + (rc.PointSizeI / 2)

	x1 = x1 - (rc.PointSizeI / 2)
	y1 = y1 - (rc.PointSizeI / 2)

	// imitate pen moving to the start setPoint
	rc.drawByBrezenham(origX, origY, x0, y0, rc.PointSizeI, col)

	// draw contour
	rc.drawByBrezenham(x0, y0, x1, y0, rc.PointSizeI, col)
	rc.drawByBrezenham(x1, y0, x1, y1, rc.PointSizeI, col)
	rc.drawByBrezenham(x1, y1, x0, y1, rc.PointSizeI, col)
	xPen, yPen = rc.drawByBrezenham(x0, y1, x0, y0, rc.PointSizeI, col)

	xp := x0
	yp := y0

	x0 = x0 + rc.PointSizeI
	y0 = y0 + rc.PointSizeI
	x1 = x1 - rc.PointSizeI
	y1 = y1 - rc.PointSizeI

	rc.drawByBrezenham(xp, yp, x0, y0, rc.PointSizeI, col)

	if strat == 0 {
		for {
			rc.drawByBrezenham(x0, y0, x1, y0, rc.PointSizeI, col)
			rc.drawByBrezenham(x1, y0, x1, y1, rc.PointSizeI, col)
			rc.drawByBrezenham(x1, y1, x0, y1, rc.PointSizeI, col)
			xPen, yPen = rc.drawByBrezenham(x0, y1, x0, y0, rc.PointSizeI, col)

			x0 = x0 + rc.PointSizeI
			x1 = x1 - rc.PointSizeI
			y0 = y0 + rc.PointSizeI
			y1 = y1 - rc.PointSizeI

			if ((x1 - x0) < 0) || ((y1 - y0) < 0) {
				break
			}
		}
	}
	if strat == 1 {
		if w > h {
			var tmpY int
			var retX int
			for {
				rc.drawByBrezenham(x0, y0, x1, y0, rc.PointSizeI, col)
				tmpY = y0
				y0 = y0 + rc.PointSizeI
				if y0 > y1 {
					retX = x1
					break
				}
				rc.drawByBrezenham(x1, tmpY, x1, y0, rc.PointSizeI, col)
				rc.drawByBrezenham(x1, y0, x0, y0, rc.PointSizeI, col)
				tmpY = y0
				y0 = y0 + rc.PointSizeI
				if y0 > y1 {
					retX = x0
					break
				}
				rc.drawByBrezenham(x0, tmpY, x0, y0, rc.PointSizeI, col)
			}
			// imitate pen moving to the origin setPoint
			xPen, yPen = rc.drawByBrezenham(retX, tmpY, origX, origY, rc.PointSizeI, col)
		} else {
			var tmpX int
			var retY int
			for {
				rc.drawByBrezenham(x0, y0, x0, y1, rc.PointSizeI, col)
				tmpX = x0
				x0 = x0 + rc.PointSizeI
				if x0 > x1 {
					retY = y1
					break
				}
				rc.drawByBrezenham(tmpX, y1, x0, y1, rc.PointSizeI, col)
				rc.drawByBrezenham(x0, y1, x0, y0, rc.PointSizeI, col)
				tmpX = x0
				x0 = x0 + rc.PointSizeI
				if x0 > x1 {
					retY = y0
					break
				}
				rc.drawByBrezenham(tmpX, y0, x0, y0, rc.PointSizeI, col)
			}
			// imitate pen moving to the origin setPoint
			xPen, yPen = rc.drawByBrezenham(tmpX, retY, origX, origY, rc.PointSizeI, col)
		}
	}
	_, _ = xPen, yPen
	rc.FilledRctCounter++
}

func (rc *Render) drawDonut(origX, origY, dia, holeDia int, col color.Color) {
	// performs drawDonut (drawCircle) aperture flash
	radius := dia / 2
	holeRadius := holeDia / 2
	if rc.DrawContours {
		rc.drawCircle(origX, origY, radius, 1, rc.ContourColor)
		if holeDia > 0 {
			rc.drawCircle(origX, origY, holeRadius, 1, rc.ContourColor)
		}
	}
	radius = radius - (rc.PointSizeI / 2)
	for {
		rc.drawCircle(origX, origY, radius, rc.PointSizeI, col)
		radius = radius - rc.PointSizeI
		if radius < holeRadius+(rc.PointSizeI/2) {
			break
		}
	}
}

// drawCircle plots a circle with center x, y and radius r.
// Limiting behavior:
// r < 0 plots no pixels.
// r = 0 plots a single pixel at x, y.
// r = 1 plots four pixels in a diamond shape around the center pixel at x, y.
func (rc *Render) drawCircle(x, y, r, ptsz int, col color.Color) {
	if r < 0 {
		return
	}
	// statistics
	rc.CircleBresCounter++
	rc.CircleLen += 2 * math.Pi * float64(r)

	rc.Plt.Circle(x, y, r)

	// Draw By bresenham algorithm
	x1, y1, err := -r, 0, 2-2*r
	for {
		rc.setPoint(x-x1, y+y1, ptsz, col)
		rc.setPoint(x-y1, y-x1, ptsz, col)
		rc.setPoint(x+x1, y-y1, ptsz, col)
		rc.setPoint(x+y1, y+x1, ptsz, col)
		r = err
		if r > x1 {
			x1++
			err += x1*2 + 1
		}
		if r <= y1 {
			y1++
			err += y1*2 + 1
		}
		if x1 >= 0 {
			break
		}
	}
}

// Move pen function
func (rc *Render) movePen(x1, y1, x2, y2 int, col color.Color) (int, int) {
	rc.MovePenCounters++
	rc.MovePenDistance += math.Hypot(float64(x2-x1), float64(y2-y1))
	newX := x2
	newY := y2
	if rc.DrawMoves {
		newX, newY = rc.bresenham(x1, y1, x2, y2, 1, col)
	}
	rc.Plt.MoveTo(x2, y2)
	return newX, newY
}

func (rc *Render) drawByBrezenham(x1, y1, x2, y2, pointSize int, col color.Color) (int, int) {
	// statistics
	rc.LineBresCounter++
	rc.LineBresLen += math.Hypot(float64(x2-x1), float64(y2-y1))
	newX, newY := rc.bresenham(x1, y1, x2, y2, pointSize, col)
	rc.Plt.DrawLine(x1, y1, x2, y2)
	return newX, newY
}

// Generalized with integer
func (rc *Render) bresenham(x1, y1, x2, y2, pointSize int, col color.Color) (int, int) {
	var dx, dy, e, slope int
	newX := x2
	newY := y2
	// Because drawing p1 -> p2 is equivalent to draw p2 -> p1,
	// I sort points in x-axis order to handle only half of possible cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	// Because setPoint is x-axis ordered, dx cannot be negative
	if dy < 0 {
		dy = -dy
	}

	switch {

	// Is line a setPoint ?
	case x1 == x2 && y1 == y2:
		rc.setPoint(x1, y1, pointSize, col)

		// Is line an horizontal ?
	case y1 == y2:
		for ; dx != 0; dx-- {
			rc.setPoint(x1, y1, pointSize, col)
			x1++
		}
		rc.setPoint(x1, y1, pointSize, col)

		// Is line a vertical ?
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			rc.setPoint(x1, y1, pointSize, col)
			y1++
		}
		rc.setPoint(x1, y1, pointSize, col)

		// Is line a diagonal ?
	case dx == dy:
		if y1 < y2 {
			for ; dx != 0; dx-- {
				rc.setPoint(x1, y1, pointSize, col)
				x1++
				y1++
			}
		} else {
			for ; dx != 0; dx-- {
				rc.setPoint(x1, y1, pointSize, col)
				x1++
				y1--
			}
		}
		rc.setPoint(x1, y1, pointSize, col)

		// wider than high ?
	case dx > dy:
		if y1 < y2 {
			dy, e, slope = 2*dy, dx, 2*dx
			for ; dx != 0; dx-- {
				rc.setPoint(x1, y1, pointSize, col)
				x1++
				e -= dy
				if e < 0 {
					y1++
					e += slope
				}
			}
		} else {
			dy, e, slope = 2*dy, dx, 2*dx
			for ; dx != 0; dx-- {
				rc.setPoint(x1, y1, pointSize, col)
				x1++
				e -= dy
				if e < 0 {
					y1--
					e += slope
				}
			}
		}
		rc.setPoint(x2, y2, pointSize, col)

		// higher than wide.
	default:
		if y1 < y2 {
			dx, e, slope = 2*dx, dy, 2*dy
			for ; dy != 0; dy-- {
				rc.setPoint(x1, y1, pointSize, col)
				y1++
				e -= dx
				if e < 0 {
					x1++
					e += slope
				}
			}
		} else {
			dx, e, slope = 2*dx, dy, 2*dy
			for ; dy != 0; dy-- {
				rc.setPoint(x1, y1, pointSize, col)
				y1--
				e -= dx
				if e < 0 {
					x1++
					e += slope
				}
			}
		}
		rc.setPoint(x2, y2, pointSize, col)
	}
	return newX, newY
}

// draw line using pattern
// dash - length of the dash in pixels
// space - length of the space in pixels
func (rc *Render) bresenhamWithPattern(x1, y1, x2, y2, pointSize int, col color.Color, dash, space int) (int, int) {
	length := int(math.Hypot(float64(x2-x1), float64(y2-y1)))
	if length == 0 {
		return x1, y1
	}
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := x2 - x1
	dy := y2 - y1
	signdY := 1

	if dy < 0 {
		dy = -dy
		signdY = -1
	}

	phi := math.Acos(float64(dx) / float64(length))

	steps := length / (dash + space)
	x01 := x1
	y01 := y1
	dashX := int(float64(dash) * math.Cos(phi))
	dashY := int(float64(dash)*math.Sin(phi)) * signdY
	spaceX := int(float64(space) * math.Cos(phi))
	spaceY := int(float64(space)*math.Sin(phi)) * signdY

	for steps > 0 {
		x11 := x01 + dashX
		y11 := y01 + dashY
		x01, y01 = rc.bresenham(x01, y01, x11, y11, pointSize, col)
		x01 += spaceX
		y01 += spaceY
		steps--
	}
	// x01, y01 here are the coordinates of the last dash line
	if x01+dashX > x2 {
		dashX = x2 - x01
		dashY = y2 - y01
	}
	x11 := x01 + dashX
	y11 := y01 + dashY

	return rc.bresenham(x01, y01, x11, y11, pointSize, col)
}

/*
 ***************************** arc functions *****************************
 */

// drawArc strokes one resolved arc. The item's Start always precedes
// its End in the counter-clockwise sense, so the walk is one degree
// counter-clockwise per step with a wraparound normalization.
func (rc *Render) drawArc(item *compiler.DrawItem, apertureSize int, col color.Color) {
	fXc := transformFloatCoord(item.ArcCenter.X-rc.MinX, rc.XRes)
	fYc := transformFloatCoord(item.ArcCenter.Y-rc.MinY, rc.YRes)
	fX1 := transformFloatCoord(item.Start.X-rc.MinX, rc.XRes)
	fY1 := transformFloatCoord(item.Start.Y-rc.MinY, rc.YRes)
	fX2 := transformFloatCoord(item.End.X-rc.MinX, rc.XRes)
	fY2 := transformFloatCoord(item.End.Y-rc.MinY, rc.YRes)

	if rc.DrawContours {
		rc.setPoint(int(fX1), int(fY1), 1, rc.ContourColor)
		rc.setPoint(int(fX2), int(fY2), 1, rc.ContourColor)
	}

	// average out the radius discrepancy of the two endpoints
	r := (math.Hypot(fX1-fXc, fY1-fYc) + math.Hypot(fX2-fXc, fY2-fYc)) / 2

	phi1 := rad2Deg(math.Atan2(fY1-fYc, fX1-fXc))
	phi2 := rad2Deg(math.Atan2(fY2-fYc, fX2-fXc))
	if phi2 <= phi1 {
		phi2 += 360.0
	}

	numArcs := apertureSize / rc.PointSizeI // how many arcs to do..
	if numArcs < 1 {
		numArcs = 1
	}
	rOuter := r + (float64(apertureSize) / 2) - (rc.PointSize / 2)

	rc.Plt.Arc(int(math.Round(fX1)), int(math.Round(fY1)),
		int(math.Round(fX2)), int(math.Round(fY2)),
		int(math.Round(r)), int(math.Round(phi1)), int(math.Round(phi2)),
		gerbbase.IPModeCCwC)

	for i := 0; i < numArcs; i++ {
		ri := rOuter - float64(i*rc.PointSizeI)
		ppx, ppy := 0, 0
		for angle := phi1; angle <= phi2; angle++ {
			ax := int(math.Round(ri*math.Cos(deg2Rad(angle)) + fXc))
			ay := int(math.Round(ri*math.Sin(deg2Rad(angle)) + fYc))
			if ppx != ax || ppy != ay {
				rc.setPoint(ax, ay, rc.PointSizeI, col)
			}
			ppx = ax
			ppy = ay
		}
	}
}

// obround aperture flash
func (rc *Render) drawObRound(centerX, centerY, width, height, holeDia int, col color.Color) {
	var sideDia int
	if width > height {
		sideDia = height
		rc.drawFilledRectangle(centerX, centerY, width-sideDia, height, col)
		xd1 := centerX - (width / 2) + (sideDia / 2)
		xd2 := centerX + (width / 2) - (sideDia / 2)
		rc.drawDonut(xd1, centerY, sideDia, holeDia, col)
		rc.drawDonut(xd2, centerY, sideDia, holeDia, col)
	} else {
		sideDia = width
		rc.drawFilledRectangle(centerX, centerY, width, height-sideDia, col)
		yd1 := centerY - (height / 2) + (sideDia / 2)
		yd2 := centerY + (height / 2) - (sideDia / 2)
		rc.drawDonut(centerX, yd1, sideDia, holeDia, col)
		rc.drawDonut(centerX, yd2, sideDia, holeDia, col)
	}
	rc.ObRoundCounter++
}

func rad2Deg(a float64) float64 {
	return 360 * a / (2 * math.Pi)
}

func deg2Rad(a float64) float64 {
	return (a / 360) * (2 * math.Pi)
}

/*
*********************** region (polygon) processor ***********************************
 */

// renderRegion scanline-fills every closed contour of a region item.
// The outline arrives tessellated, no arc handling is needed here.
func (rc *Render) renderRegion(item *compiler.DrawItem) {
	col := rc.RegionColor
	if item.LayerNegative {
		col = rc.ClearColor
	}
	for _, contour := range item.Outline {
		rc.fillContour(contour, col)
	}
	rc.RegionCounter++
}

func (rc *Render) fillContour(contour polyclip.Contour, col color.Color) {
	n := len(contour)
	if n < 3 {
		return
	}
	if rc.PrintRegionInfo {
		fmt.Println("Closed segment found with ", n, "vertexes")
	}

	polX := make([]float64, n)
	polY := make([]float64, n)
	minYInPolygon := math.Inf(1)
	maxYInPolygon := math.Inf(-1)
	for j := 0; j < n; j++ {
		polX[j] = (contour[j].X - rc.MinX) / rc.XRes
		polY[j] = (contour[j].Y - rc.MinY) / rc.YRes
		if polY[j] < minYInPolygon {
			minYInPolygon = polY[j]
		}
		if polY[j] > maxYInPolygon {
			maxYInPolygon = polY[j]
		}
	}

	var nodes = 0
	nodeX := make([]int, n)
	var pixelY int

	// take into account real plotter pen setPoint size
	startY := int(math.Round(minYInPolygon + rc.PointSize/2))
	stopY := int(math.Round(maxYInPolygon - rc.PointSize/2))
	marginX := int(math.Round(rc.PointSize / 2))

	// fill the inner points of the polygon
	var i int
	for pixelY = startY; pixelY < stopY; pixelY += rc.PointSizeI {
		fPixelY := float64(pixelY)
		nodes = 0
		j := n - 1
		for i = 0; i < n; i++ {
			if (polY[i] < fPixelY && polY[j] >= fPixelY) ||
				(polY[j] < fPixelY && polY[i] >= fPixelY) {
				nodeX[nodes] = int(polX[i] + (fPixelY-polY[i])/
					(polY[j]-polY[i])*(polX[j]-polX[i]))
				nodes++
			}
			j = i
		}
		i = 0
		for {
			if i < nodes-1 {
				if nodeX[i] > nodeX[i+1] {
					nodeX[i], nodeX[i+1] = nodeX[i+1], nodeX[i]
					if i != 0 {
						i--
					}
				} else {
					i++
				}
			} else {
				break
			}
		}
		//  Fill the pixels between node pairs.
		for i = 0; i+1 < nodes; i += 2 {
			rc.drawByBrezenham(nodeX[i]+marginX, pixelY, nodeX[i+1]-marginX, pixelY, rc.PointSizeI, col)
		}
	}
}

/* some draw helpers */

func transformCoord(inc float64, res float64) int {
	return int(inc / res)
}

func transformFloatCoord(inc float64, res float64) float64 {
	return inc / res
}
