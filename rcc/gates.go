package rcc

// Bus identifies the gating register a peripheral's enable bit lives in.
type Bus uint8

const (
	BusAPB1 Bus = iota
	BusAPB2
	BusIOP
)

// Bits returns the bus code.
func (b Bus) Bits() uint8 { return uint8(b) }

// BusFromBits decodes a bus code.
func BusFromBits(v uint8) (Bus, bool) {
	if v > uint8(BusIOP) {
		return 0, false
	}
	return Bus(v), true
}

// String returns the bus name.
func (b Bus) String() string {
	switch b {
	case BusAPB1:
		return "APB1"
	case BusAPB2:
		return "APB2"
	case BusIOP:
		return "IOP"
	}
	return "?"
}

// ClockGate locates one peripheral's clock enable bit: the bus gating
// register and the bit offset inside it. Offsets are unique within a bus.
type ClockGate struct {
	Bus Bus
	Bit uint8

	name string
}

// String returns the peripheral name the gate belongs to.
func (g ClockGate) String() string { return g.name }

// APB1 peripherals.
var (
	TIM2    = ClockGate{BusAPB1, 0, "TIM2"}
	TIM3    = ClockGate{BusAPB1, 1, "TIM3"}
	TIM4    = ClockGate{BusAPB1, 2, "TIM4"}
	TIM6    = ClockGate{BusAPB1, 4, "TIM6"}
	TIM7    = ClockGate{BusAPB1, 5, "TIM7"}
	LPUART2 = ClockGate{BusAPB1, 7, "LPUART2"}
	USART5  = ClockGate{BusAPB1, 8, "USART5"}
	USART6  = ClockGate{BusAPB1, 9, "USART6"}
	RTCAPB  = ClockGate{BusAPB1, 10, "RTCAPB"}
	WWDG    = ClockGate{BusAPB1, 11, "WWDG"}
	FDCAN   = ClockGate{BusAPB1, 12, "FDCAN"}
	USB     = ClockGate{BusAPB1, 13, "USB"}
	SPI2    = ClockGate{BusAPB1, 14, "SPI2"}
	SPI3    = ClockGate{BusAPB1, 15, "SPI3"}
	CRS     = ClockGate{BusAPB1, 16, "CRS"}
	USART2  = ClockGate{BusAPB1, 17, "USART2"}
	USART3  = ClockGate{BusAPB1, 18, "USART3"}
	USART4  = ClockGate{BusAPB1, 19, "USART4"}
	LPUART1 = ClockGate{BusAPB1, 20, "LPUART1"}
	I2C1    = ClockGate{BusAPB1, 21, "I2C1"}
	I2C2    = ClockGate{BusAPB1, 22, "I2C2"}
	I2C3    = ClockGate{BusAPB1, 23, "I2C3"}
	CEC     = ClockGate{BusAPB1, 24, "CEC"}
	UCPD1   = ClockGate{BusAPB1, 25, "UCPD1"}
	UCPD2   = ClockGate{BusAPB1, 26, "UCPD2"}
	DBG     = ClockGate{BusAPB1, 27, "DBG"}
	PWR     = ClockGate{BusAPB1, 28, "PWR"}
	DAC1    = ClockGate{BusAPB1, 29, "DAC1"}
	LPTIM2  = ClockGate{BusAPB1, 30, "LPTIM2"}
	LPTIM1  = ClockGate{BusAPB1, 31, "LPTIM1"}
)

// APB2 peripherals.
var (
	SYSCFG = ClockGate{BusAPB2, 0, "SYSCFG"}
	TIM1   = ClockGate{BusAPB2, 11, "TIM1"}
	SPI1   = ClockGate{BusAPB2, 12, "SPI1"}
	USART1 = ClockGate{BusAPB2, 14, "USART1"}
	TIM14  = ClockGate{BusAPB2, 15, "TIM14"}
	TIM15  = ClockGate{BusAPB2, 16, "TIM15"}
	TIM16  = ClockGate{BusAPB2, 17, "TIM16"}
	TIM17  = ClockGate{BusAPB2, 18, "TIM17"}
	ADC    = ClockGate{BusAPB2, 20, "ADC"}
)

// GPIOPort identifies an I/O port in the IOP gating register.
type GPIOPort uint8

const (
	GPIOA GPIOPort = iota
	GPIOB
	GPIOC
	GPIOD
	GPIOE
	GPIOF
)

// Gate returns the port's clock gate descriptor (IOP bus, bits 0..5).
func (p GPIOPort) Gate() ClockGate {
	return ClockGate{BusIOP, uint8(p), p.String()}
}

// String returns the port name.
func (p GPIOPort) String() string {
	if p > GPIOF {
		return "?"
	}
	return "GPIO" + string(rune('A'+p))
}

// Gates returns every known clock gate descriptor.
func Gates() []ClockGate {
	gates := []ClockGate{
		TIM2, TIM3, TIM4, TIM6, TIM7, LPUART2, USART5, USART6, RTCAPB,
		WWDG, FDCAN, USB, SPI2, SPI3, CRS, USART2, USART3, USART4,
		LPUART1, I2C1, I2C2, I2C3, CEC, UCPD1, UCPD2, DBG, PWR, DAC1,
		LPTIM2, LPTIM1,
		SYSCFG, TIM1, SPI1, USART1, TIM14, TIM15, TIM16, TIM17, ADC,
	}
	for p := GPIOA; p <= GPIOF; p++ {
		gates = append(gates, p.Gate())
	}
	return gates
}

// GateName returns the name of the peripheral gated at (bus, bit), if any.
func GateName(b Bus, bit uint8) (string, bool) {
	for _, g := range Gates() {
		if g.Bus == b && g.Bit == bit {
			return g.name, true
		}
	}
	return "", false
}
