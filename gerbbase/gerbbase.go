// Base types shared by the Gerber lexing, compilation and rendering packages
package gerbbase

// Extended command headers
const GerberFormatSpec = "%FSLA"
const GerberMOIN = "%MOIN*%"
const GerberMOMM = "%MOMM*%"

const InchesToMM float64 = 25.4

// D-code (tool) numbering. Codes below FirstDCode are pen commands,
// codes at or above it select an aperture. Selections past the table
// end are clamped, not rejected.
const (
	FirstDCode    = 10
	ToolsMaxCount = 1000
)

// DefaultPenSize is the degraded flash/stroke size used when the
// active tool has no definition in the table.
const DefaultPenSize float64 = 0.15

type ApertureKind int

const (
	ApKindCircle ApertureKind = iota + 1
	ApKindRect
	ApKindObround
	ApKindPoly
	ApKindMacro
)

func (ak ApertureKind) String() string {
	switch ak {
	case ApKindCircle:
		return "circle aperture"
	case ApKindRect:
		return "rectangle aperture"
	case ApKindObround:
		return "obround (oval) aperture"
	case ApKindPoly:
		return "polygon aperture"
	case ApKindMacro:
		return "macro aperture"
	default:
	}
	return "Unknown aperture type"
}

type PolType int

const (
	PolTypeDark PolType = iota + 1
	PolTypeClear
)

func (p PolType) String() string {
	switch p {
	case PolTypeDark:
		return "Polarity: dark"
	case PolTypeClear:
		return "Polarity: clear"
	default:
	}
	return "Unknown polarity"
}

type ActType int

const (
	OpcodeD01Draw ActType = iota + 1
	OpcodeD02Move
	OpcodeD03Flash
	OpcodeStop
)

func (act ActType) String() string {
	switch act {
	case OpcodeD01Draw:
		return "Opcode D01 (DRAW)"
	case OpcodeD02Move:
		return "Opcode D02 (MOVE)"
	case OpcodeD03Flash:
		return "Opcode D03 (FLASH)"
	case OpcodeStop:
		return "Opcode Stop"
	default:
	}
	return "Unknown OpCode"
}

type QuadMode int

const (
	QuadModeSingle QuadMode = iota + 1
	QuadModeMulti
)

func (q QuadMode) String() string {
	switch q {
	case QuadModeSingle:
		return "QuadMode: Single"
	case QuadModeMulti:
		return "QuadMode: Multi"
	default:
	}
	return "Unknown QuadMode"
}

type IPmode int

const (
	IPModeLinear IPmode = iota + 1
	IPModeCwC
	IPModeCCwC
)

func (ipm IPmode) String() string {
	switch ipm {
	case IPModeLinear:
		return "Linear interpolation"
	case IPModeCwC:
		return "Clockwise interpolation"
	case IPModeCCwC:
		return "Counter-clockwise interpolation"
	default:
	}
	return "Unknown interpolation"
}

// G-code values recognized by the interpreter. Deprecated codes stay
// in the set because real-world files still carry them.
const (
	GCodeMove              = 0
	GCodeLinearInterpol    = 1
	GCodeCircleNegInterpol = 2
	GCodeCirclePosInterpol = 3
	GCodeComment           = 4
	GCodeRegionStart       = 36
	GCodeRegionEnd         = 37
	GCodeSelectTool        = 54
	GCodePhotoMode         = 55
	GCodeSpecifyInches     = 70
	GCodeSpecifyMM         = 71
	GCodeTurnOff360Arc     = 74
	GCodeTurnOn360Arc      = 75
	GCodeAbsoluteCoord     = 90
	GCodeRelativeCoord     = 91
)
