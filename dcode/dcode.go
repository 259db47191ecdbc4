// D-code (tool) table support: %ADD aperture definitions and the
// lookup-by-index contract used by the geometry compiler.
package dcode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexander-guesnon/gerbcore/gerbbase"
	"github.com/alexander-guesnon/gerbcore/xy"
)

// Tool describes one aperture. Sizes are in millimeters.
type Tool struct {
	Code         int
	SourceString string
	Kind         gerbbase.ApertureKind
	XSize        float64
	YSize        float64
	Diameter     float64
	HoleDiameter float64
	Vertices     int
	RotAngle     float64
	MacroName    string
	InUse        bool
}

func (tool *Tool) GetCode() int {
	return tool.Code
}

// Size returns the pen/flash size pair for the tool.
func (tool *Tool) Size() (float64, float64) {
	switch tool.Kind {
	case gerbbase.ApKindCircle, gerbbase.ApKindPoly:
		return tool.Diameter, tool.Diameter
	case gerbbase.ApKindRect, gerbbase.ApKindObround:
		return tool.XSize, tool.YSize
	default:
	}
	return 0, 0
}

// Init parses one aperture definition body, e.g. "10C,0.152X0.05" or
// "25P,0.3X6X45.0". The leading code digits select the D-code, the
// template letter (or a macro name) selects the shape.
func (tool *Tool) Init(sourceString string, fs *xy.FormatSpec) error {
	sourceString = strings.TrimSpace(sourceString)
	tool.SourceString = sourceString

	cp := 0
	for cp < len(sourceString) && sourceString[cp] >= '0' && sourceString[cp] <= '9' {
		cp++
	}
	if cp == 0 {
		return errors.New("bad aperture number")
	}
	code, err := strconv.Atoi(sourceString[:cp])
	if err != nil {
		return errors.New("bad aperture number")
	}
	tool.Code = code

	template := sourceString[cp:]
	params := ""
	if at := strings.IndexByte(template, ','); at != -1 {
		params = template[at+1:]
		template = template[:at]
	}
	split := strings.Split(params, "X")
	for j := range split {
		split[j] = strings.TrimSpace(split[j])
	}
	if params == "" {
		split = nil
	}

	switch template {
	case "C":
		tool.Kind = gerbbase.ApKindCircle
		if len(split) != 1 && len(split) != 2 {
			return errors.New("bad number of parameters for circle aperture")
		}
		if err = parseFloats(split, &tool.Diameter, &tool.HoleDiameter); err != nil {
			return err
		}
	case "R":
		tool.Kind = gerbbase.ApKindRect
		if len(split) != 2 && len(split) != 3 {
			return errors.New("bad number of parameters for rectangle aperture")
		}
		if err = parseFloats(split, &tool.XSize, &tool.YSize, &tool.HoleDiameter); err != nil {
			return err
		}
	case "O":
		tool.Kind = gerbbase.ApKindObround
		if len(split) != 2 && len(split) != 3 {
			return errors.New("bad number of parameters for obround aperture")
		}
		if err = parseFloats(split, &tool.XSize, &tool.YSize, &tool.HoleDiameter); err != nil {
			return err
		}
	case "P":
		tool.Kind = gerbbase.ApKindPoly
		if len(split) < 2 || len(split) > 4 {
			return errors.New("bad number of parameters for polygon aperture")
		}
		var vertices float64
		if err = parseFloats(split, &tool.Diameter, &vertices, &tool.RotAngle, &tool.HoleDiameter); err != nil {
			return err
		}
		tool.Vertices = int(vertices)
	default:
		if template == "" {
			return errors.New("empty aperture template")
		}
		// a macro reference; parameters stay uninterpreted
		tool.Kind = gerbbase.ApKindMacro
		tool.MacroName = template
		return nil
	}

	mu := fs.ReadMU()
	tool.HoleDiameter *= mu
	tool.Diameter *= mu
	tool.XSize *= mu
	tool.YSize *= mu
	return nil
}

func parseFloats(in []string, out ...*float64) error {
	if len(in) > len(out) {
		return errors.New("too many aperture parameters")
	}
	for i, s := range in {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*out[i] = v
	}
	return nil
}

/*
############################ tool table #####################
*/

// Table keeps the apertures of one command stream, keyed by D-code.
// Missing entries are legal: the compiler degrades to a default size.
type Table struct {
	tools  map[int]*Tool
	macros map[string]string // %AM name -> body, kept verbatim
}

func NewTable() *Table {
	return &Table{
		tools:  make(map[int]*Tool),
		macros: make(map[string]string),
	}
}

// Add parses an %ADD body (with the leading 'D' already removed by
// the lexer, e.g. "10C,0.152") and stores the tool.
func (table *Table) Add(body string, fs *xy.FormatSpec) error {
	body = strings.TrimPrefix(strings.TrimSpace(body), "D")
	tool := new(Tool)
	if err := tool.Init(body, fs); err != nil {
		return err
	}
	if tool.Kind == gerbbase.ApKindMacro {
		if _, ok := table.macros[tool.MacroName]; !ok {
			return errors.New("aperture macro " + tool.MacroName + " is not defined")
		}
	}
	table.tools[tool.Code] = tool
	return nil
}

// DefineMacro stores an %AM body. Only the name is interpreted; the
// primitive list is retained for tooling that wants it.
func (table *Table) DefineMacro(body string) error {
	at := strings.IndexByte(body, '*')
	if at == -1 {
		at = len(body)
	}
	name := strings.TrimSpace(body[:at])
	if name == "" {
		return errors.New("aperture macro without a name")
	}
	table.macros[name] = body
	return nil
}

// Get returns the tool for a D-code or nil when it was never defined.
func (table *Table) Get(code int) *Tool {
	return table.tools[code]
}

// Len returns the number of defined tools.
func (table *Table) Len() int {
	return len(table.tools)
}

// ClampCode forces a tool selection into the valid table range.
// Selections past the end of the table are clamped, never rejected.
func ClampCode(code int) int {
	if code > gerbbase.ToolsMaxCount-1 {
		return gerbbase.ToolsMaxCount - 1
	}
	return code
}
