package gpio

import (
	"testing"

	"github.com/hbacelar8/stm32g0-ll-drivers/pac"
)

func field(reg uint32, width, index uint8) uint8 {
	return uint8(reg >> (index * width) & (1<<width - 1))
}

func TestNewPinsIdentity(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortC, rb)

	all := []Analog{
		pins.P0, pins.P1, pins.P2, pins.P3, pins.P4, pins.P5, pins.P6, pins.P7,
		pins.P8, pins.P9, pins.P10, pins.P11, pins.P12, pins.P13, pins.P14, pins.P15,
	}
	for i, p := range all {
		if p.Port() != PortC {
			t.Errorf("pin %d: port %v, want C", i, p.Port())
		}
		if p.Number() != uint8(i) {
			t.Errorf("pin %d: number %d", i, p.Number())
		}
	}
}

func TestIntoOutputPushPull(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)

	out := pins.P5.IntoOutputPushPull()

	if m := field(rb.MODER.Get(), 2, 5); m != ModeOutput.Bits() {
		t.Errorf("MODER field = %#b, want output", m)
	}
	if ot := field(rb.OTYPER.Get(), 1, 5); ot != OutputPushPull.Bits() {
		t.Errorf("OTYPER field = %d, want push-pull", ot)
	}
	if pl := field(rb.PUPDR.Get(), 2, 5); pl != PullNone.Bits() {
		t.Errorf("PUPDR field = %#b, want floating", pl)
	}
	if out.Port() != PortA || out.Number() != 5 {
		t.Errorf("identity changed: port %v pin %d", out.Port(), out.Number())
	}
}

func TestIntoOutputOpenDrain(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortB, rb)

	pins.P3.IntoOutputOpenDrain()

	if m := field(rb.MODER.Get(), 2, 3); m != ModeOutput.Bits() {
		t.Errorf("MODER field = %#b, want output", m)
	}
	if ot := field(rb.OTYPER.Get(), 1, 3); ot != OutputOpenDrain.Bits() {
		t.Errorf("OTYPER field = %d, want open-drain", ot)
	}
}

func TestIntoInputAndAnalog(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)

	in := pins.P7.IntoInput()
	if m := field(rb.MODER.Get(), 2, 7); m != ModeInput.Bits() {
		t.Errorf("MODER field = %#b, want input", m)
	}
	if pl := field(rb.PUPDR.Get(), 2, 7); pl != PullNone.Bits() {
		t.Errorf("PUPDR field = %#b, want floating", pl)
	}

	back := in.IntoAnalog()
	if m := field(rb.MODER.Get(), 2, 7); m != ModeAnalog.Bits() {
		t.Errorf("MODER field = %#b, want analog", m)
	}
	if back.Port() != PortA || back.Number() != 7 {
		t.Errorf("identity changed across transitions")
	}
}

func TestIntoAlternateLowHalf(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)

	pins.P2.IntoAlternate(AF5)

	if m := field(rb.MODER.Get(), 2, 2); m != ModeAlternate.Bits() {
		t.Errorf("MODER field = %#b, want alternate", m)
	}
	if f := field(rb.AFRL.Get(), 4, 2); f != AF5.Bits() {
		t.Errorf("AFRL nibble = %d, want %d", f, AF5.Bits())
	}
	if got := rb.AFRH.Get(); got != 0 {
		t.Errorf("AFRH touched for a low pin: %#x", got)
	}
}

func TestIntoAlternateHighHalf(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)

	pins.P10.IntoAlternate(AF7)

	if f := field(rb.AFRH.Get(), 4, 10-8); f != AF7.Bits() {
		t.Errorf("AFRH nibble = %d, want %d", f, AF7.Bits())
	}
	if got := rb.AFRL.Get(); got != 0 {
		t.Errorf("AFRL touched for a high pin: %#x", got)
	}
}

func TestTransitionsPreserveNeighbours(t *testing.T) {
	rb := new(pac.GPIO_Type)
	rb.MODER.Set(0xFFFF_FFFF) // reset state: all analog
	pins := NewPins(PortA, rb)

	pins.P4.IntoOutputPushPull()

	want := uint32(0xFFFF_FFFF) &^ (0x3 << (4 * 2)) | uint32(ModeOutput.Bits())<<(4*2)
	if got := rb.MODER.Get(); got != want {
		t.Errorf("MODER = %#x, want %#x (other pins untouched)", got, want)
	}
}

func TestSetHighSetLow(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)
	led := pins.P5.IntoOutputPushPull()

	led.SetHigh()
	if got := rb.BSRR.Get(); got != 1<<5 {
		t.Errorf("BSRR = %#x after SetHigh, want bit 5", got)
	}

	led.SetLow()
	if got := rb.BSRR.Get(); got != 1<<(5+16) {
		t.Errorf("BSRR = %#x after SetLow, want bit 21", got)
	}
}

func TestPullReconfigTouchesOnlyPullField(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)
	in := pins.P6.IntoInput()

	moder := rb.MODER.Get()
	otyper := rb.OTYPER.Get()

	in.PullUp()
	if pl := field(rb.PUPDR.Get(), 2, 6); pl != PullUp.Bits() {
		t.Errorf("PUPDR field = %#b, want pull-up", pl)
	}
	in.PullDown()
	if pl := field(rb.PUPDR.Get(), 2, 6); pl != PullDown.Bits() {
		t.Errorf("PUPDR field = %#b, want pull-down", pl)
	}
	in.Floating()
	if pl := field(rb.PUPDR.Get(), 2, 6); pl != PullNone.Bits() {
		t.Errorf("PUPDR field = %#b, want floating", pl)
	}

	if rb.MODER.Get() != moder || rb.OTYPER.Get() != otyper {
		t.Errorf("pull reconfiguration touched the mode or output type register")
	}

	out := in.IntoOutputOpenDrain()
	out.PullUp()
	if pl := field(rb.PUPDR.Get(), 2, 6); pl != PullUp.Bits() {
		t.Errorf("output PullUp: PUPDR field = %#b", pl)
	}
}

func TestInputRead(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortA, rb)
	in := pins.P9.IntoInput()

	if !in.IsLow() {
		t.Errorf("expected low on a zeroed IDR")
	}
	rb.IDR.SetBits(1 << 9)
	if !in.IsHigh() {
		t.Errorf("expected high after IDR bit set")
	}
}

func TestModeCodec(t *testing.T) {
	for _, m := range []Mode{ModeInput, ModeOutput, ModeAlternate, ModeAnalog} {
		got, ok := ModeFromBits(m.Bits())
		if !ok || got != m {
			t.Errorf("round trip %v: got %v ok=%v", m, got, ok)
		}
	}
	if _, ok := ModeFromBits(4); ok {
		t.Errorf("ModeFromBits(4) should not decode")
	}
}

func TestPullCodec(t *testing.T) {
	for _, p := range []Pull{PullNone, PullUp, PullDown} {
		got, ok := PullFromBits(p.Bits())
		if !ok || got != p {
			t.Errorf("round trip %v: got %v ok=%v", p, got, ok)
		}
	}
	if _, ok := PullFromBits(0b11); ok {
		t.Errorf("reserved pull code 0b11 should not decode")
	}
}

func TestOutputTypeCodec(t *testing.T) {
	for _, ot := range []OutputType{OutputPushPull, OutputOpenDrain} {
		got, ok := OutputTypeFromBits(ot.Bits())
		if !ok || got != ot {
			t.Errorf("round trip %v: got %v ok=%v", ot, got, ok)
		}
	}
	if _, ok := OutputTypeFromBits(2); ok {
		t.Errorf("OutputTypeFromBits(2) should not decode")
	}
}

func TestAltFuncCodec(t *testing.T) {
	for f := AF0; f <= AF7; f++ {
		got, ok := AltFuncFromBits(f.Bits())
		if !ok || got != f {
			t.Errorf("round trip AF%d: got %d ok=%v", f, got, ok)
		}
	}
	for _, bad := range []uint8{8, 15} {
		if _, ok := AltFuncFromBits(bad); ok {
			t.Errorf("AltFuncFromBits(%d) should not decode", bad)
		}
	}
}

func TestIntoInputPulled(t *testing.T) {
	rb := new(pac.GPIO_Type)
	pins := NewPins(PortC, rb)

	up := pins.P2.IntoInputPullUp()
	if m := field(rb.MODER.Get(), 2, 2); m != ModeInput.Bits() {
		t.Errorf("MODER field = %#b, want input", m)
	}
	if pl := field(rb.PUPDR.Get(), 2, 2); pl != PullUp.Bits() {
		t.Errorf("PUPDR field = %#b, want pull-up", pl)
	}

	down := up.IntoInputPullDown()
	if pl := field(rb.PUPDR.Get(), 2, 2); pl != PullDown.Bits() {
		t.Errorf("PUPDR field = %#b, want pull-down", pl)
	}

	floating := down.IntoInput()
	if pl := field(rb.PUPDR.Get(), 2, 2); pl != PullNone.Bits() {
		t.Errorf("PUPDR field = %#b, want floating", pl)
	}
	if floating.Port() != PortC || floating.Number() != 2 {
		t.Errorf("identity changed across transitions")
	}
}
