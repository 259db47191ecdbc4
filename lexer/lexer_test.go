package lexer

import (
	"testing"
)

const sampleStream = `%FSLAX26Y26*%
%MOMM*%
G04 Layer_Physical_Order=1*
G04 #@! TF.FileFunction,Copper,L1,Top*
%ADD11C,0.152*%
%LPD*%
G54D11*
G01*
X100Y200D02*
X300D01*
G03X400Y500I10J20D01*
X500Y600*
D12*
G36*
X0Y0D02*
X100D01*
G37*
M02*
`

func TestSplit(t *testing.T) {
	cmds := Split([]byte(sampleStream))
	want := []struct {
		id   CommandId
		code int
		body string
	}{
		{CmdFS, 0, "LAX26Y26"},
		{CmdMO, 0, "MM"},
		{CmdG04, 4, "Layer_Physical_Order=1"},
		{CmdG04, 4, "#@! TF.FileFunction,Copper,L1,Top"},
		{CmdAD, 0, "D11C,0.152"},
		{CmdLP, 0, "D"},
		{CmdG, 54, "D11"},
		{CmdG, 1, ""},
		{CmdD02, 2, "X100Y200"},
		{CmdD01, 1, "X300"},
		{CmdG, 3, "X400Y500I10J20D01"},
		{CmdD01, 1, "X400Y500I10J20"},
		{CmdNop, 0, "X500Y600"},
		{CmdD, 12, ""},
		{CmdG, 36, ""},
		{CmdD02, 2, "X0Y0"},
		{CmdD01, 1, "X100"},
		{CmdG, 37, ""},
		{CmdM, 2, ""},
	}
	if len(cmds) != len(want) {
		for i := range cmds {
			t.Log(i, cmds[i].String())
		}
		t.Fatal("want", len(want), "commands, got", len(cmds))
	}
	for i := range want {
		if cmds[i].Id != want[i].id {
			t.Error("command", i, ": want id", want[i].id.String(), ", got", cmds[i].Id.String())
		}
		if cmds[i].Code != want[i].code {
			t.Error("command", i, ": want code", want[i].code, ", got", cmds[i].Code)
		}
		if cmds[i].Body != want[i].body {
			t.Error("command", i, ": want body", want[i].body, ", got", cmds[i].Body)
		}
	}
}

func TestSplitUnknownExtended(t *testing.T) {
	cmds := Split([]byte("%ZZfoo*%"))
	if len(cmds) != 1 || cmds[0].Id != CmdNop {
		t.Fatal("unknown extended command must become a NOP")
	}
}

func TestSplitMultilineExtended(t *testing.T) {
	cmds := Split([]byte("%AMDONUT*\n1,1,0.100,0,0*\n1,0,0.080,0,0*%"))
	if len(cmds) != 1 || cmds[0].Id != CmdAM {
		t.Fatal("macro body must stay one command")
	}
	if cmds[0].Body != "DONUT*1,1,0.100,0,0*1,0,0.080,0,0" {
		t.Error("bad macro body:", cmds[0].Body)
	}
}
