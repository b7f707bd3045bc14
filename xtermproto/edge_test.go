package xtermproto

import "testing"

func newTestMachine() *Machine {
	return &Machine{graph: &Graph{}, handler: &fakeHandler{}}
}

func TestControlEdgeMatchesC0AndC1(t *testing.T) {
	var e ControlEdge
	if !e.Matches(nil, 0x07) {
		t.Error("expected BEL (C0) to match")
	}
	if !e.Matches(nil, 0x9c) {
		t.Error("expected ST (C1, 0x9c) to match")
	}
	if e.Matches(nil, 'a') {
		t.Error("expected printable ascii not to match")
	}
}

func TestControlEdgeCallForNonRestartCode(t *testing.T) {
	var e ControlEdge
	m := newTestMachine()
	m.allSequence = []rune{0x9b, '1'} // sequence already in progress

	if got := e.Process(m, '\n'); got != Call {
		t.Errorf("Process(LF) = %v, want Call", got)
	}
}

func TestControlEdgeRestartsOnRestartCodeMidSequence(t *testing.T) {
	var e ControlEdge
	m := newTestMachine()
	m.allSequence = []rune{0x9b, '1'}

	if got := e.Process(m, esc); got != Restart {
		t.Errorf("Process(ESC) = %v, want Restart", got)
	}
}

func TestControlEdgeMovesOnRestartCodeAtIdle(t *testing.T) {
	var e ControlEdge
	m := newTestMachine()

	if got := e.Process(m, esc); got != Move {
		t.Errorf("Process(ESC) at idle = %v, want Move", got)
	}
}

func TestSingleNumericEdgeAccumulatesThenTerminates(t *testing.T) {
	e := SingleNumericEdge{Varnum: 0, Terminators: []rune{'A'}}
	m := newTestMachine()

	if !e.Matches(m, '4') {
		t.Fatal("expected digit to match")
	}
	if got := e.Process(m, '4'); got != Stay {
		t.Errorf("Process('4') = %v, want Stay", got)
	}
	if got := e.Process(m, '2'); got != Stay {
		t.Errorf("Process('2') = %v, want Stay", got)
	}
	if string(m.curSequence) != "42" {
		t.Errorf("curSequence = %q, want \"42\"", string(m.curSequence))
	}

	if !e.Matches(m, 'A') {
		t.Fatal("expected terminator to match")
	}
	if got := e.Process(m, 'A'); got != Skip {
		t.Errorf("Process('A') = %v, want Skip", got)
	}
	if got := m.Var(0); got != "42" {
		t.Errorf("Var(0) = %q, want \"42\"", got)
	}
}

func TestMultiNumericEdgeCapturesEachField(t *testing.T) {
	e := MultiNumericEdge{Varnum: 0, Separator: ';', Terminators: []rune{'H'}}
	m := newTestMachine()

	e.Process(m, '1')
	e.Process(m, '2')
	e.Process(m, ';')
	e.Process(m, '3')
	e.Process(m, '4')
	e.Process(m, 'H')

	list := m.VarList(0)
	if len(list) != 2 || list[0] != "12" || list[1] != "34" {
		t.Errorf("VarList(0) = %+v, want [12 34]", list)
	}
}

func TestSingleTextEdgeRejectsRestartCodes(t *testing.T) {
	e := SingleTextEdge{Varnum: 0, Terminators: []rune{0x07}}
	m := newTestMachine()

	if !e.Matches(m, 'x') {
		t.Error("expected ordinary text byte to match")
	}
	if e.Matches(m, esc) {
		t.Error("expected a restart code to abort text capture")
	}
}
