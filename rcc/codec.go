package rcc

// SystemClockSource selects what feeds the system clock.
type SystemClockSource uint8

const (
	HSI SystemClockSource = iota
	HSE
	PLL
	LSI
	LSE
)

// Bits returns the CFGR.SW encoding of the source.
func (s SystemClockSource) Bits() uint8 { return uint8(s) }

// SystemClockSourceFromBits decodes a CFGR.SWS field value. ok is false for
// codes outside the table.
func SystemClockSourceFromBits(b uint8) (SystemClockSource, bool) {
	if b > uint8(LSE) {
		return 0, false
	}
	return SystemClockSource(b), true
}

// String returns the oscillator name.
func (s SystemClockSource) String() string {
	switch s {
	case HSI:
		return "HSI"
	case HSE:
		return "HSE"
	case PLL:
		return "PLL"
	case LSI:
		return "LSI"
	case LSE:
		return "LSE"
	}
	return "?"
}

// HSI16DivisionFactor divides the internal 16 MHz oscillator output.
type HSI16DivisionFactor uint8

const (
	Div1 HSI16DivisionFactor = iota
	Div2
	Div4
	Div8
	Div16
	Div32
	Div64
	Div128
)

// Bits returns the CR.HSIDIV encoding of the factor.
func (d HSI16DivisionFactor) Bits() uint8 { return uint8(d) }

// HSI16DivisionFactorFromBits decodes a CR.HSIDIV field value.
func HSI16DivisionFactorFromBits(b uint8) (HSI16DivisionFactor, bool) {
	if b > uint8(Div128) {
		return 0, false
	}
	return HSI16DivisionFactor(b), true
}

// Divisor returns the division factor as a plain number.
func (d HSI16DivisionFactor) Divisor() uint32 { return 1 << d }
