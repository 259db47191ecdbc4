/*
############################ coordinate decoding #####################

Decodes %FSLA format specifications and the X/Y/I/J coordinate blocks
of D01/D02/D03 commands into absolute millimeter values. X and Y are
modal (a missing axis keeps its previous value), I and J are not.
*/
package xy

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alexander-guesnon/gerbcore/gerbbase"
)

// Format specification object, built from the %FSLA and %MO commands.
type FormatSpec struct {
	Head     string
	MUString string
	XI       int // digits in the integer part
	XD       int // digits in the fractional part
	YI       int
	YD       int
	MU       float64 // scale to millimeters
}

// Init parses the format and unit strings. Returns false when the
// strings can not be parsed or violate the 4.1.1 conformance limits.
func (fs *FormatSpec) Init(ins, mu string) bool {
	fs.XI, fs.XD, fs.YI, fs.YD = 0, 0, 0, 0
	fs.Head = strings.ToUpper(ins)
	fs.MUString = strings.ToUpper(mu)

	switch fs.MUString {
	case gerbbase.GerberMOIN:
		fs.MU = gerbbase.InchesToMM
	case gerbbase.GerberMOMM:
		fs.MU = 1.0
	default:
		return false
	}

	if !strings.HasPrefix(fs.Head, gerbbase.GerberFormatSpec) || !strings.HasSuffix(fs.Head, "*%") {
		return false
	}
	xPos := strings.IndexByte(fs.Head, 'X')
	yPos := strings.LastIndexByte(fs.Head, 'Y')
	suffPos := strings.LastIndexByte(fs.Head, '*')
	if xPos == -1 || yPos == -1 || xPos >= yPos || yPos >= suffPos {
		return false
	}

	xi, err := strconv.Atoi(fs.Head[xPos+1 : xPos+2])
	if err != nil {
		return false
	}
	xd, err := strconv.Atoi(fs.Head[xPos+2 : yPos])
	if err != nil {
		return false
	}
	yi, err := strconv.Atoi(fs.Head[yPos+1 : yPos+2])
	if err != nil {
		return false
	}
	yd, err := strconv.Atoi(fs.Head[yPos+2 : suffPos])
	if err != nil {
		return false
	}
	if xi != yi || xd != yd {
		return false
	}
	// 4.1.1 gerber format conformance test
	if xi > 6 || xd > 7 || xd < 3 {
		return false
	}
	fs.XI, fs.XD, fs.YI, fs.YD = xi, xd, yi, yd
	return true
}

func (fs *FormatSpec) ReadXI() int { return fs.XI }

func (fs *FormatSpec) ReadXD() int { return fs.XD }

func (fs *FormatSpec) ReadYI() int { return fs.YI }

func (fs *FormatSpec) ReadYD() int { return fs.YD }

func (fs *FormatSpec) ReadMU() float64 { return fs.MU }

// Function checks against non-number characters in the string
func isNumString(ins string) bool {
	for i := 0; i < len(ins); i++ {
		if ins[i] < '0' || ins[i] > '9' {
			return false
		}
	}
	return true
}

// decodeAxisValue converts one padded coordinate field to a float.
// n is the number of places for the integer part, m for the
// fractional part, s is the scale factor (1.0 or 25.4).
func decodeAxisValue(ins string, n, m int, s float64) (float64, error) {
	neg := false
	ws := ins
	if strings.HasPrefix(ws, "-") {
		neg = true
		ws = ws[1:]
	} else if strings.HasPrefix(ws, "+") {
		ws = ws[1:]
	}
	if len(ws) > n+m {
		return 0, errors.New("coordinate value " + ins + " is too long for the format")
	}
	if !isNumString(ws) {
		return 0, errors.New("coordinate value " + ins + " is not a number")
	}
	// restore omitted leading zeroes
	ps := strings.Repeat("0", n+m-len(ws)) + ws
	ipart, err := strconv.Atoi(ps[:n])
	if err != nil {
		return 0, err
	}
	fpart, err := strconv.Atoi(ps[n:])
	if err != nil {
		return 0, err
	}
	val := float64(ipart) + float64(fpart)/math.Pow10(m)
	if neg {
		val = -val
	}
	return val * s, nil
}

/*
######################### coordinates #########################################
*/

// Coord holds one decoded coordinate block in absolute millimeters.
// I and J keep the raw (unaccumulated) arc center offset.
type Coord struct {
	X, Y  float64
	I, J  float64
	HasIJ bool
}

func NewCoord() *Coord {
	return new(Coord)
}

func (c *Coord) String() string {
	return "x,y=(" + strconv.FormatFloat(c.X, 'f', 5, 64) +
		"," + strconv.FormatFloat(c.Y, 'f', 5, 64) +
		") i,j=(" + strconv.FormatFloat(c.I, 'f', 5, 64) +
		"," + strconv.FormatFloat(c.J, 'f', 5, 64) + ")"
}

// Equals treats another point as equal when it lies inside the circle
// of the given tolerance radius around this one.
func (c *Coord) Equals(another *Coord, tolerance float64) bool {
	return math.Hypot(c.X-another.X, c.Y-another.Y) < tolerance
}

// Decode parses a coordinate block such as "X1000Y-2000I30J40".
// prev supplies the modal values; relative selects incremental
// accumulation (G91). The trailing D-code must be stripped by the
// caller.
func (c *Coord) Decode(body string, fs *FormatSpec, prev *Coord, relative bool) error {
	if prev != nil {
		c.X, c.Y = prev.X, prev.Y
	} else {
		c.X, c.Y = 0, 0
	}
	// offsets are not modal
	c.I, c.J = 0, 0
	c.HasIJ = false

	body = strings.ToUpper(body)
	sf := fs.ReadMU()
	n, m := fs.ReadXI(), fs.ReadXD()

	i := 0
	for i < len(body) {
		axis := body[i]
		j := i + 1
		for j < len(body) && !isAxisLetter(body[j]) {
			j++
		}
		val, err := decodeAxisValue(body[i+1:j], n, m, sf)
		if err != nil {
			return err
		}
		switch axis {
		case 'X':
			if relative {
				c.X += val
			} else {
				c.X = val
			}
		case 'Y':
			if relative {
				c.Y += val
			} else {
				c.Y = val
			}
		case 'I':
			c.I = val
			c.HasIJ = true
		case 'J':
			c.J = val
			c.HasIJ = true
		default:
			return errors.New("unknown coordinate axis " + string(axis))
		}
		i = j
	}
	return nil
}

func isAxisLetter(b byte) bool {
	return b == 'X' || b == 'Y' || b == 'I' || b == 'J'
}

// the function splits the input string by substrings using template's
// symbols as ordered delimiters and returns a map symbol:value
func ExtractLetterDelimitedFloats(ins, template string) (map[byte]float64, error) {
	out := make(map[byte]float64)
	type pos struct {
		letter byte
		at     int
	}
	found := make([]pos, 0, len(template))
	for i := 0; i < len(template); i++ {
		if at := strings.IndexByte(ins, template[i]); at != -1 {
			found = append(found, pos{template[i], at})
		}
	}
	// bubble by position, the template order is not the string order
	for i := 0; i < len(found)-1; {
		if found[i].at > found[i+1].at {
			found[i], found[i+1] = found[i+1], found[i]
			if i != 0 {
				i--
			}
		} else {
			i++
		}
	}
	for i := range found {
		end := len(ins)
		if i < len(found)-1 {
			end = found[i+1].at
		}
		fv, err := strconv.ParseFloat(ins[found[i].at+1:end], 64)
		if err != nil {
			return nil, err
		}
		out[found[i].letter] = fv
	}
	return out, nil
}
