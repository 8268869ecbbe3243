// Package gpio models I/O pins as type-states: each electrical mode is a
// distinct Go type, so an operation that is only legal in one mode simply
// does not exist on the others. Mode transitions consume the old handle and
// return a new, differently typed one; the physical pin identity
// (port, number) never changes.
//
// The power-on default for every pin is analog.
package gpio

import "github.com/hbacelar8/stm32g0-ll-drivers/pac"

// Port identifies one of the I/O ports A..F.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
)

// String returns the port letter.
func (p Port) String() string {
	if p > PortF {
		return "?"
	}
	return string(rune('A' + p))
}

// pin is the physical identity and register access shared by every
// type-state. It is embedded, never used on its own.
type pin struct {
	rb   *pac.GPIO_Type
	port Port
	num  uint8
}

// Port returns the pin's port.
func (p pin) Port() Port { return p.port }

// Number returns the pin's index within the port, 0..15.
func (p pin) Number() uint8 { return p.num }

func (p pin) setMode(m Mode) {
	p.rb.MODER.ReplaceBits(uint32(m.Bits()), 0x3, p.num*2)
}

func (p pin) setOutputType(t OutputType) {
	p.rb.OTYPER.ReplaceBits(uint32(t.Bits()), 0x1, p.num)
}

func (p pin) setPull(pl Pull) {
	p.rb.PUPDR.ReplaceBits(uint32(pl.Bits()), 0x3, p.num*2)
}

// setAltFunc writes the 4-bit function nibble, in AFRL for pins 0..7 and
// AFRH for pins 8..15.
func (p pin) setAltFunc(f AltFunc) {
	if p.num < 8 {
		p.rb.AFRL.ReplaceBits(uint32(f.Bits()), 0xF, p.num*4)
	} else {
		p.rb.AFRH.ReplaceBits(uint32(f.Bits()), 0xF, (p.num-8)*4)
	}
}

// Transition register sequences. No read-back: the writes are unconditional
// and assumed to stick.

func (p pin) configAnalog() {
	p.setMode(ModeAnalog)
}

func (p pin) configOutput(t OutputType) {
	p.setMode(ModeOutput)
	p.setOutputType(t)
	p.setPull(PullNone)
}

func (p pin) configInput() {
	p.setMode(ModeInput)
	p.setPull(PullNone)
}

func (p pin) configInputPull(pl Pull) {
	p.setMode(ModeInput)
	p.setPull(pl)
}

func (p pin) configAlternate(f AltFunc) {
	p.setMode(ModeAlternate)
	p.setAltFunc(f)
}

// Type-state tags for the output flavour.
type (
	// PushPull drives both levels actively.
	PushPull struct{}
	// OpenDrain only pulls low; high is released.
	OpenDrain struct{}
)

// OutputMode is the sealed set of output flavours.
type OutputMode interface{ PushPull | OpenDrain }

// Type-state tags for the input flavour. They record how the pin was
// configured on entry; later pull reconfiguration does not retag the handle.
type (
	Floating   struct{}
	PulledUp   struct{}
	PulledDown struct{}
)

// InputMode is the sealed set of input flavours.
type InputMode interface{ Floating | PulledUp | PulledDown }

// Analog is a pin in analog mode, the reset state.
type Analog struct{ pin }

// Alternate is a pin routed to an internal peripheral function.
type Alternate struct{ pin }

// Output is a pin driving its level.
type Output[M OutputMode] struct{ pin }

// Input is a pin reading its level.
type Input[M InputMode] struct{ pin }

// Pins is the bulk handle set for one port, all in the reset (analog) state.
type Pins struct {
	P0, P1, P2, P3, P4, P5, P6, P7         Analog
	P8, P9, P10, P11, P12, P13, P14, P15   Analog
}

// NewPins builds the pin set of a port over the given register block. Use
// the root package's TakeGPIOx entry points for the device instances.
func NewPins(port Port, rb *pac.GPIO_Type) Pins {
	mk := func(n uint8) Analog {
		return Analog{pin{rb: rb, port: port, num: n}}
	}
	return Pins{
		P0: mk(0), P1: mk(1), P2: mk(2), P3: mk(3),
		P4: mk(4), P5: mk(5), P6: mk(6), P7: mk(7),
		P8: mk(8), P9: mk(9), P10: mk(10), P11: mk(11),
		P12: mk(12), P13: mk(13), P14: mk(14), P15: mk(15),
	}
}

// Transitions out of analog mode.

func (p Analog) IntoAnalog() Analog {
	p.configAnalog()
	return p
}

func (p Analog) IntoOutputPushPull() Output[PushPull] {
	p.configOutput(OutputPushPull)
	return Output[PushPull]{p.pin}
}

func (p Analog) IntoOutputOpenDrain() Output[OpenDrain] {
	p.configOutput(OutputOpenDrain)
	return Output[OpenDrain]{p.pin}
}

func (p Analog) IntoInput() Input[Floating] {
	p.configInput()
	return Input[Floating]{p.pin}
}

func (p Analog) IntoInputPullUp() Input[PulledUp] {
	p.configInputPull(PullUp)
	return Input[PulledUp]{p.pin}
}

func (p Analog) IntoInputPullDown() Input[PulledDown] {
	p.configInputPull(PullDown)
	return Input[PulledDown]{p.pin}
}

func (p Analog) IntoAlternate(f AltFunc) Alternate {
	p.configAlternate(f)
	return Alternate{p.pin}
}

// Transitions out of alternate function mode.

func (p Alternate) IntoAnalog() Analog {
	p.configAnalog()
	return Analog{p.pin}
}

func (p Alternate) IntoOutputPushPull() Output[PushPull] {
	p.configOutput(OutputPushPull)
	return Output[PushPull]{p.pin}
}

func (p Alternate) IntoOutputOpenDrain() Output[OpenDrain] {
	p.configOutput(OutputOpenDrain)
	return Output[OpenDrain]{p.pin}
}

func (p Alternate) IntoInput() Input[Floating] {
	p.configInput()
	return Input[Floating]{p.pin}
}

func (p Alternate) IntoInputPullUp() Input[PulledUp] {
	p.configInputPull(PullUp)
	return Input[PulledUp]{p.pin}
}

func (p Alternate) IntoInputPullDown() Input[PulledDown] {
	p.configInputPull(PullDown)
	return Input[PulledDown]{p.pin}
}

func (p Alternate) IntoAlternate(f AltFunc) Alternate {
	p.configAlternate(f)
	return p
}

// Transitions out of output mode.

func (p Output[M]) IntoAnalog() Analog {
	p.configAnalog()
	return Analog{p.pin}
}

func (p Output[M]) IntoOutputPushPull() Output[PushPull] {
	p.configOutput(OutputPushPull)
	return Output[PushPull]{p.pin}
}

func (p Output[M]) IntoOutputOpenDrain() Output[OpenDrain] {
	p.configOutput(OutputOpenDrain)
	return Output[OpenDrain]{p.pin}
}

func (p Output[M]) IntoInput() Input[Floating] {
	p.configInput()
	return Input[Floating]{p.pin}
}

func (p Output[M]) IntoInputPullUp() Input[PulledUp] {
	p.configInputPull(PullUp)
	return Input[PulledUp]{p.pin}
}

func (p Output[M]) IntoInputPullDown() Input[PulledDown] {
	p.configInputPull(PullDown)
	return Input[PulledDown]{p.pin}
}

func (p Output[M]) IntoAlternate(f AltFunc) Alternate {
	p.configAlternate(f)
	return Alternate{p.pin}
}

// Transitions out of input mode.

func (p Input[M]) IntoAnalog() Analog {
	p.configAnalog()
	return Analog{p.pin}
}

func (p Input[M]) IntoOutputPushPull() Output[PushPull] {
	p.configOutput(OutputPushPull)
	return Output[PushPull]{p.pin}
}

func (p Input[M]) IntoOutputOpenDrain() Output[OpenDrain] {
	p.configOutput(OutputOpenDrain)
	return Output[OpenDrain]{p.pin}
}

func (p Input[M]) IntoInput() Input[Floating] {
	p.configInput()
	return Input[Floating]{p.pin}
}

func (p Input[M]) IntoInputPullUp() Input[PulledUp] {
	p.configInputPull(PullUp)
	return Input[PulledUp]{p.pin}
}

func (p Input[M]) IntoInputPullDown() Input[PulledDown] {
	p.configInputPull(PullDown)
	return Input[PulledDown]{p.pin}
}

func (p Input[M]) IntoAlternate(f AltFunc) Alternate {
	p.configAlternate(f)
	return Alternate{p.pin}
}

// Output capabilities.

// SetHigh drives the pin high through the bit set/reset register.
func (p *Output[M]) SetHigh() {
	p.rb.BSRR.Set(1 << p.num)
}

// SetLow drives the pin low through the bit set/reset register.
func (p *Output[M]) SetLow() {
	p.rb.BSRR.Set(1 << (p.num + 16))
}

// PullUp enables the pull-up resistor. Only the pull field is rewritten.
func (p *Output[M]) PullUp() { p.setPull(PullUp) }

// PullDown enables the pull-down resistor. Only the pull field is rewritten.
func (p *Output[M]) PullDown() { p.setPull(PullDown) }

// Floating disables both resistors. Only the pull field is rewritten.
func (p *Output[M]) Floating() { p.setPull(PullNone) }

// Input capabilities.

// IsHigh reports whether the pin reads high.
func (p *Input[M]) IsHigh() bool {
	return p.rb.IDR.HasBits(1 << p.num)
}

// IsLow reports whether the pin reads low.
func (p *Input[M]) IsLow() bool {
	return !p.IsHigh()
}

// PullUp enables the pull-up resistor. Only the pull field is rewritten.
func (p *Input[M]) PullUp() { p.setPull(PullUp) }

// PullDown enables the pull-down resistor. Only the pull field is rewritten.
func (p *Input[M]) PullDown() { p.setPull(PullDown) }

// Floating disables both resistors. Only the pull field is rewritten.
func (p *Input[M]) Floating() { p.setPull(PullNone) }
