/*
############################ file driver #####################################

Glues the layers together for one command stream: lexes the raw bytes,
locates the format and unit declarations, builds the tool table and
the attribute dictionary, then feeds every command through the
interpreter. The caller gets the compiled item list plus the collected
warnings; nothing here is fatal except a stream without a format
specification.
*/
package gerbfile

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexander-guesnon/gerbcore/attrs"
	"github.com/alexander-guesnon/gerbcore/compiler"
	"github.com/alexander-guesnon/gerbcore/dcode"
	"github.com/alexander-guesnon/gerbcore/gerbbase"
	"github.com/alexander-guesnon/gerbcore/lexer"
	"github.com/alexander-guesnon/gerbcore/xy"
)

type Gerber struct {
	FileName   string
	ImageName  string
	FormatSpec *xy.FormatSpec
	Tools      *dcode.Table
	Attrs      *attrs.Dict
	Items      []*compiler.DrawItem

	warnings []string
}

func (g *Gerber) Warnings() []string {
	return g.warnings
}

func (g *Gerber) warn(msg string) {
	g.warnings = append(g.warnings, msg)
}

// Process compiles one raw command stream.
func Process(fileName string, buf []byte) (*Gerber, error) {
	g := &Gerber{
		FileName: fileName,
		Tools:    dcode.NewTable(),
		Attrs:    attrs.NewDict(),
	}
	commands := lexer.Split(buf)

	fs, err := findFormat(commands, g)
	if err != nil {
		return nil, err
	}
	g.FormatSpec = fs

	interp := compiler.NewInterpreter(g.Tools, g.Attrs)
	prev := xy.NewCoord()

	// decodes one coordinate block and moves the pen state
	applyCoord := func(body string) bool {
		c := xy.NewCoord()
		if err := c.Decode(body, fs, prev, interp.Relative()); err != nil {
			g.warn("bad coordinate block " + body + ": " + err.Error())
			return false
		}
		interp.ApplyCoord(c)
		prev = c
		return true
	}

loop:
	for i := range commands {
		cmd := &commands[i]
		switch cmd.Id {
		case lexer.CmdFS, lexer.CmdMO:
			// consumed by findFormat
		case lexer.CmdAM:
			if err := g.Tools.DefineMacro(cmd.Body); err != nil {
				g.warn(err.Error())
			}
		case lexer.CmdAD:
			if err := g.Tools.Add(cmd.Body, fs); err != nil {
				g.warn(err.Error())
			}
		case lexer.CmdSR:
			if strings.TrimSpace(cmd.Body) == "" {
				interp.SetStepRepeat(nil)
				continue
			}
			sr := new(compiler.SRBlock)
			if err := sr.Init(cmd.Body, fs); err != nil {
				g.warn(err.Error())
				continue
			}
			interp.SetStepRepeat(sr)
		case lexer.CmdLP:
			switch strings.TrimSpace(cmd.Body) {
			case "D":
				interp.SetLayerPolarity(gerbbase.PolTypeDark)
			case "C":
				interp.SetLayerPolarity(gerbbase.PolTypeClear)
			default:
				g.warn("bad layer polarity " + cmd.Body)
			}
		case lexer.CmdTF, lexer.CmdTA, lexer.CmdTO, lexer.CmdTD:
			if !g.Attrs.Execute(cmd.Id.String(), cmd.Body) {
				g.warn("bad attribute command %" + cmd.Id.String() + cmd.Body)
			}
		case lexer.CmdIN, lexer.CmdLN:
			g.ImageName = strings.TrimSpace(cmd.Body)
		case lexer.CmdG04:
			interp.ExecuteGCode(gerbbase.GCodeComment, cmd.Body)
		case lexer.CmdG:
			interp.ExecuteGCode(cmd.Code, cmd.Body)
		case lexer.CmdD01, lexer.CmdD02, lexer.CmdD03:
			if cmd.Body != "" && !applyCoord(cmd.Body) {
				continue
			}
			if !interp.ExecuteDCode(cmd.Code) {
				g.warn("D0" + strconv.Itoa(cmd.Code) + " command not handled")
			}
		case lexer.CmdD:
			interp.ExecuteDCode(cmd.Code)
		case lexer.CmdM:
			// M00/M01/M02 all stop the stream
			break loop
		case lexer.CmdNop:
			if cmd.Body == "" {
				continue
			}
			// a bare coordinate block repeats the modal pen command
			if strings.IndexAny(cmd.Body, "XYIJxyij") == 0 {
				if applyCoord(cmd.Body) {
					interp.RepeatLastPen()
				}
				continue
			}
			g.warn("command " + cmd.Body + " ignored")
		default:
			g.warn("command %" + cmd.Id.String() + " ignored")
		}
	}

	g.Items = interp.Items()
	g.warnings = append(g.warnings, interp.Messages()...)
	return g, nil
}

// findFormat locates the %FS and %MO declarations. A stream without a
// format specification can not be decoded at all; missing units fall
// back to millimeters with a warning.
func findFormat(commands []lexer.Command, g *Gerber) (*xy.FormatSpec, error) {
	fsBody, moBody := "", ""
	for i := range commands {
		switch commands[i].Id {
		case lexer.CmdFS:
			if fsBody == "" {
				fsBody = commands[i].Body
			}
		case lexer.CmdMO:
			if moBody == "" {
				moBody = commands[i].Body
			}
		default:
		}
	}
	if fsBody == "" {
		return nil, errors.New("no format specification found in " + g.FileName)
	}
	if moBody == "" {
		g.warn("no unit declaration found, assuming millimeters")
		moBody = "MM"
	}
	fs := new(xy.FormatSpec)
	if !fs.Init("%FS"+fsBody+"*%", "%MO"+moBody+"*%") {
		return nil, errors.New("bad format specification %FS" + fsBody + "*%")
	}
	return fs, nil
}
