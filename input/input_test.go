package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestKeyTableMovement(t *testing.T) {
	table := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyCode
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), KeyLeft},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), KeyUp},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), KeyRight},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), KeyDown},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := table.Lookup(tt.ev)
			if e.Intent != IntentKeyDown {
				t.Errorf("intent = %d, want IntentKeyDown", e.Intent)
			}
			if e.Code != tt.want {
				t.Errorf("code = %v, want %v", e.Code, tt.want)
			}
		})
	}
}

func TestKeyCodeValues(t *testing.T) {
	if KeyLeft != 37 || KeyUp != 38 || KeyRight != 39 || KeyDown != 40 {
		t.Fatalf("movement codes changed: %d %d %d %d", KeyLeft, KeyUp, KeyRight, KeyDown)
	}
	if KeyOther.IsMovement() {
		t.Error("KeyOther should not be movement")
	}
	if !KeyDown.IsMovement() {
		t.Error("KeyDown should be movement")
	}
}

func TestMachineQuit(t *testing.T) {
	m := NewMachine(nil, 550*time.Millisecond)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		in := m.Process(ev, t0)
		if in == nil || in.Type != IntentQuit {
			t.Errorf("expected quit for %v, got %+v", ev.Name(), in)
		}
	}
	if m.HeldKeys() != 0 {
		t.Errorf("quit keys should not be tracked, held=%d", m.HeldKeys())
	}
}

func TestMachinePanelKeys(t *testing.T) {
	m := NewMachine(nil, 550*time.Millisecond)
	tests := []struct {
		r     rune
		want  IntentType
		steps int
	}{
		{'+', IntentPanelAdjust, 1},
		{'-', IntentPanelAdjust, -1},
		{'*', IntentPanelAdjust, 10},
		{'/', IntentPanelAdjust, -10},
		{' ', IntentPanelCycle, 0},
		{'g', IntentPanelToggle, 0},
		{'m', IntentToggleMute, 0},
	}
	for _, tt := range tests {
		in := m.Process(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone), t0)
		if in == nil || in.Type != tt.want || in.Steps != tt.steps {
			t.Errorf("rune %q: got %+v, want type %d steps %d", tt.r, in, tt.want, tt.steps)
		}
	}
	in := m.Process(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), t0)
	if in == nil || in.Type != IntentPanelNext {
		t.Errorf("tab: got %+v", in)
	}
	in = m.Process(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), t0)
	if in == nil || in.Type != IntentPanelPrev {
		t.Errorf("backtab: got %+v", in)
	}
}

func TestReleaseAfterDelay(t *testing.T) {
	delay := 550 * time.Millisecond
	m := NewMachine(nil, delay)

	in := m.Process(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), t0)
	if in == nil || in.Type != IntentKeyDown || in.Key != KeyRight {
		t.Fatalf("expected right key-down, got %+v", in)
	}

	if ups := m.Poll(t0.Add(delay - time.Millisecond)); len(ups) != 0 {
		t.Fatalf("released too early: %+v", ups)
	}

	ups := m.Poll(t0.Add(delay))
	if len(ups) != 1 || ups[0].Type != IntentKeyUp || ups[0].Key != KeyRight {
		t.Fatalf("expected one right key-up, got %+v", ups)
	}

	if ups := m.Poll(t0.Add(2 * delay)); len(ups) != 0 {
		t.Errorf("key-up repeated: %+v", ups)
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	delay := 550 * time.Millisecond
	m := NewMachine(nil, delay)
	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)

	now := t0
	for i := 0; i < 20; i++ {
		m.Process(ev, now)
		now = now.Add(33 * time.Millisecond)
		if ups := m.Poll(now); len(ups) != 0 {
			t.Fatalf("auto-repeat released at step %d", i)
		}
	}
	if m.HeldKeys() != 1 {
		t.Errorf("held = %d, want 1", m.HeldKeys())
	}
	if ups := m.Poll(now.Add(delay)); len(ups) != 1 {
		t.Errorf("expected release once repeats stop, got %+v", ups)
	}
}

func TestReleaseOrder(t *testing.T) {
	tr := NewReleaseTracker(100 * time.Millisecond)
	tr.Press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, t0)
	tr.Press(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyOther, t0.Add(10*time.Millisecond))
	tr.Press(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight, t0.Add(20*time.Millisecond))

	got := tr.Poll(t0.Add(time.Second))
	want := []KeyCode{KeyUp, KeyOther, KeyRight}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("release[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	tr.Press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, t0)
	tr.Reset()
	if tr.Held() != 0 {
		t.Errorf("reset left %d keys", tr.Held())
	}
}

func TestMouseIntents(t *testing.T) {
	m := NewMachine(nil, time.Second)

	in := m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), t0)
	if in == nil || in.Type != IntentClick || in.X != 10 || in.Y != 5 {
		t.Fatalf("expected click at 10,5, got %+v", in)
	}
	if !m.Dragging() {
		t.Fatal("expected drag to start")
	}

	in = m.Process(tcell.NewEventMouse(13, 4, tcell.Button1, tcell.ModNone), t0)
	if in == nil || in.Type != IntentDrag || in.DX != 3 || in.DY != -1 {
		t.Errorf("expected drag 3,-1, got %+v", in)
	}

	if in := m.Process(tcell.NewEventMouse(13, 4, tcell.Button1, tcell.ModNone), t0); in != nil {
		t.Errorf("no movement should yield nil, got %+v", in)
	}

	if in := m.Process(tcell.NewEventMouse(13, 4, tcell.ButtonNone, tcell.ModNone), t0); in != nil {
		t.Errorf("release should yield nil, got %+v", in)
	}
	if m.Dragging() {
		t.Error("drag should end on release")
	}

	in = m.Process(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), t0)
	if in == nil || in.Type != IntentZoom || in.Steps != -1 {
		t.Errorf("wheel up: got %+v", in)
	}
	in = m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), t0)
	if in == nil || in.Type != IntentZoom || in.Steps != 1 {
		t.Errorf("wheel down: got %+v", in)
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine(nil, time.Second)
	in := m.Process(tcell.NewEventResize(120, 40), t0)
	if in == nil || in.Type != IntentResize || in.Width != 120 || in.Height != 40 {
		t.Errorf("got %+v", in)
	}
}
