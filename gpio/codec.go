package gpio

// Mode is the 2-bit mode-select field of one pin. All four codes are valid.
type Mode uint8

const (
	ModeInput     Mode = 0b00
	ModeOutput    Mode = 0b01
	ModeAlternate Mode = 0b10
	ModeAnalog    Mode = 0b11
)

// Bits returns the MODER encoding of the mode.
func (m Mode) Bits() uint8 { return uint8(m) }

// ModeFromBits decodes a 2-bit mode-select field value.
func ModeFromBits(b uint8) (Mode, bool) {
	if b > uint8(ModeAnalog) {
		return 0, false
	}
	return Mode(b), true
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	case ModeAlternate:
		return "alternate"
	case ModeAnalog:
		return "analog"
	}
	return "?"
}

// Pull is the 2-bit pull field of one pin. Code 0b11 is reserved.
type Pull uint8

const (
	PullNone Pull = 0b00
	PullUp   Pull = 0b01
	PullDown Pull = 0b10
)

// Bits returns the PUPDR encoding of the pull setting.
func (p Pull) Bits() uint8 { return uint8(p) }

// PullFromBits decodes a 2-bit pull field value. The reserved code 0b11
// does not decode.
func PullFromBits(b uint8) (Pull, bool) {
	if b > uint8(PullDown) {
		return 0, false
	}
	return Pull(b), true
}

// String returns the pull setting name.
func (p Pull) String() string {
	switch p {
	case PullNone:
		return "floating"
	case PullUp:
		return "pull-up"
	case PullDown:
		return "pull-down"
	}
	return "?"
}

// OutputType is the 1-bit output driver field of one pin.
type OutputType uint8

const (
	OutputPushPull  OutputType = 0
	OutputOpenDrain OutputType = 1
)

// Bits returns the OTYPER encoding of the output type.
func (t OutputType) Bits() uint8 { return uint8(t) }

// OutputTypeFromBits decodes a 1-bit output type field value.
func OutputTypeFromBits(b uint8) (OutputType, bool) {
	if b > uint8(OutputOpenDrain) {
		return 0, false
	}
	return OutputType(b), true
}

// String returns the output type name.
func (t OutputType) String() string {
	switch t {
	case OutputPushPull:
		return "push-pull"
	case OutputOpenDrain:
		return "open-drain"
	}
	return "?"
}

// AltFunc selects one of the eight alternate functions of a pin.
type AltFunc uint8

const (
	AF0 AltFunc = iota
	AF1
	AF2
	AF3
	AF4
	AF5
	AF6
	AF7
)

// Bits returns the AFR nibble encoding of the function.
func (f AltFunc) Bits() uint8 { return uint8(f) }

// AltFuncFromBits decodes an AFR nibble value. The G0 ports route eight
// functions; codes 8..15 do not decode.
func AltFuncFromBits(b uint8) (AltFunc, bool) {
	if b > uint8(AF7) {
		return 0, false
	}
	return AltFunc(b), true
}
