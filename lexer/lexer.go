/*
################################## lexer ######################################

Splits a raw Gerber byte stream into a flat list of commands. Extended
commands are the %-delimited blocks (FS, MO, AD, AM, SR, LP, TF, ...),
base commands are the *-terminated data blocks carrying G, D and M
codes with optional coordinate data.
*/
package lexer

import (
	"strings"
)

type CommandId int

const (
	CmdAB CommandId = iota
	CmdAD
	CmdAM
	CmdAS
	CmdD // tool selection Dnn, nn >= 10
	CmdD01
	CmdD02
	CmdD03
	CmdFS
	CmdG
	CmdG04
	CmdIN
	CmdIP
	CmdIR
	CmdLM
	CmdLN
	CmdLP
	CmdLR
	CmdLS
	CmdM
	CmdMI
	CmdMO
	CmdOF
	CmdSF
	CmdSR
	CmdTA
	CmdTD
	CmdTF
	CmdTO
	// must be last
	CmdNop
)

func (id CommandId) String() string {
	switch id {
	case CmdAB:
		return "AB"
	case CmdAD:
		return "AD"
	case CmdAM:
		return "AM"
	case CmdAS:
		return "AS"
	case CmdD:
		return "D"
	case CmdD01:
		return "D01"
	case CmdD02:
		return "D02"
	case CmdD03:
		return "D03"
	case CmdFS:
		return "FS"
	case CmdG:
		return "G"
	case CmdG04:
		return "G04"
	case CmdIN:
		return "IN"
	case CmdIP:
		return "IP"
	case CmdIR:
		return "IR"
	case CmdLM:
		return "LM"
	case CmdLN:
		return "LN"
	case CmdLP:
		return "LP"
	case CmdLR:
		return "LR"
	case CmdLS:
		return "LS"
	case CmdM:
		return "M"
	case CmdMI:
		return "MI"
	case CmdMO:
		return "MO"
	case CmdOF:
		return "OF"
	case CmdSF:
		return "SF"
	case CmdSR:
		return "SR"
	case CmdTA:
		return "TA"
	case CmdTD:
		return "TD"
	case CmdTF:
		return "TF"
	case CmdTO:
		return "TO"
	case CmdNop:
		return "NOP"
	default:
	}
	return "???"
}

var extCommands = map[string]CommandId{
	"AB": CmdAB, "AD": CmdAD, "AM": CmdAM, "AS": CmdAS,
	"FS": CmdFS, "IN": CmdIN, "IP": CmdIP, "IR": CmdIR,
	"LM": CmdLM, "LN": CmdLN, "LP": CmdLP, "LR": CmdLR,
	"LS": CmdLS, "MI": CmdMI, "MO": CmdMO, "OF": CmdOF,
	"SF": CmdSF, "SR": CmdSR, "TA": CmdTA, "TD": CmdTD,
	"TF": CmdTF, "TO": CmdTO,
}

// Command is one decoded data block.
//
// For CmdG and CmdM the numeric code is in Code and Body carries the
// rest of the block (operands, comment text). For CmdD01/D02/D03 Body
// is the coordinate block preceding the D-code. For CmdD Code is the
// tool number. Extended commands keep everything between the command
// letters and the closing '%' in Body.
type Command struct {
	Id   CommandId
	Code int
	Body string
}

func (cmd *Command) String() string {
	return "{command:\"" + cmd.Id.String() + "\",val:\"" + cmd.Body + "\"}"
}

const (
	dataBlockTrailer byte = '*'
	extCmdDelimiter  byte = '%'
)

// Split walks the byte stream and produces the command list.
// CR/LF and spaces outside comment bodies are discarded.
func Split(buf []byte) []Command {
	out := make([]Command, 0, 64)
	i := 0
	for i < len(buf) {
		c := buf[i]
		switch {
		case c == 0x0A || c == 0x0D || c == ' ' || c == '\t':
			i++
		case c == extCmdDelimiter:
			i = splitExtended(buf, i+1, &out)
		case c == dataBlockTrailer:
			i++
		default:
			i = splitBase(buf, i, &out)
		}
	}
	return out
}

// splitExtended consumes one %...% block starting after the leading
// '%'. One block may contain several *-separated data blocks (for
// example %AM bodies); they stay together in one command body.
func splitExtended(buf []byte, i int, out *[]Command) int {
	start := i
	for i < len(buf) && buf[i] != extCmdDelimiter {
		i++
	}
	body := filterNewLines(string(buf[start:i]))
	if i < len(buf) {
		i++ // eat the trailing '%'
	}
	if len(body) < 2 {
		*out = append(*out, Command{Id: CmdNop, Body: body})
		return i
	}
	id, ok := extCommands[strings.ToUpper(body[:2])]
	if !ok {
		*out = append(*out, Command{Id: CmdNop, Body: body})
		return i
	}
	body = strings.TrimSuffix(body[2:], "*")
	*out = append(*out, Command{Id: id, Body: body})
	return i
}

// splitBase consumes one *-terminated data block and classifies it.
func splitBase(buf []byte, i int, out *[]Command) int {
	start := i
	for i < len(buf) && buf[i] != dataBlockTrailer && buf[i] != extCmdDelimiter {
		i++
	}
	block := filterNewLines(string(buf[start:i]))
	if i < len(buf) && buf[i] == dataBlockTrailer {
		i++
	}
	classify(block, out)
	return i
}

// classify splits a data block such as "G01", "G04 comment",
// "X100Y200D01" or "D12" into one or more commands. A block may carry
// a leading G-code before the coordinate data ("G01X100Y200D01").
func classify(block string, out *[]Command) {
	if len(block) == 0 {
		return
	}
	switch block[0] {
	case 'G', 'g':
		code, rest := numberAfter(block, 1)
		if code == 4 {
			// keep the comment body verbatim, it may hold X2 metadata
			*out = append(*out, Command{Id: CmdG04, Code: code, Body: rest})
			return
		}
		*out = append(*out, Command{Id: CmdG, Code: code, Body: rest})
		// G54D11 and friends keep the rest on the G command; a plain
		// interpolation prefix is followed by coordinate data
		if len(rest) > 0 && (code == 1 || code == 2 || code == 3) {
			classify(rest, out)
		}
	case 'M', 'm':
		code, rest := numberAfter(block, 1)
		*out = append(*out, Command{Id: CmdM, Code: code, Body: rest})
	case 'D', 'd':
		code, _ := numberAfter(block, 1)
		appendDCode(code, "", out)
	default:
		// coordinate data with a trailing D-code
		dPos := strings.LastIndexAny(block, "Dd")
		if dPos == -1 {
			// a bare coordinate block implies the previous pen command;
			// keep it as a D01-less NOP for the driver to decide
			*out = append(*out, Command{Id: CmdNop, Body: block})
			return
		}
		code, _ := numberAfter(block, dPos+1)
		appendDCode(code, block[:dPos], out)
	}
}

func appendDCode(code int, body string, out *[]Command) {
	switch code {
	case 1:
		*out = append(*out, Command{Id: CmdD01, Code: code, Body: body})
	case 2:
		*out = append(*out, Command{Id: CmdD02, Code: code, Body: body})
	case 3:
		*out = append(*out, Command{Id: CmdD03, Code: code, Body: body})
	default:
		*out = append(*out, Command{Id: CmdD, Code: code, Body: body})
	}
}

// numberAfter reads the decimal number starting at position i and
// returns it with the unconsumed remainder of the block.
func numberAfter(s string, i int) (int, string) {
	j := i
	val := 0
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		val = val*10 + int(s[j]-'0')
		j++
	}
	return val, strings.TrimPrefix(s[j:], " ")
}

// filterNewLines drops \n and \r symbols from the string
func filterNewLines(in string) string {
	if !strings.ContainsAny(in, "\n\r") {
		return in
	}
	out := strings.Replace(in, "\n", "", -1)
	return strings.Replace(out, "\r", "", -1)
}
