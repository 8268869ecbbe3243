package adc

// ClockMode selects the converter clock. Note the register codes do not
// follow the divider order.
type ClockMode uint8

const (
	// ClockAsync runs the converter from its asynchronous clock.
	ClockAsync ClockMode = 0
	// ClockSyncPclkDiv2 runs from PCLK divided by 2.
	ClockSyncPclkDiv2 ClockMode = 1
	// ClockSyncPclkDiv4 runs from PCLK divided by 4.
	ClockSyncPclkDiv4 ClockMode = 2
	// ClockSyncPclkDiv1 runs straight from PCLK.
	ClockSyncPclkDiv1 ClockMode = 3
)

// Bits returns the CFGR2.CKMODE encoding.
func (m ClockMode) Bits() uint8 { return uint8(m) }

// ClockModeFromBits decodes a 2-bit CKMODE field value.
func ClockModeFromBits(b uint8) (ClockMode, bool) {
	if b > uint8(ClockSyncPclkDiv1) {
		return 0, false
	}
	return ClockMode(b), true
}

// String returns the clock mode name.
func (m ClockMode) String() string {
	switch m {
	case ClockAsync:
		return "async"
	case ClockSyncPclkDiv1:
		return "pclk/1"
	case ClockSyncPclkDiv2:
		return "pclk/2"
	case ClockSyncPclkDiv4:
		return "pclk/4"
	}
	return "?"
}

// Resolution is the conversion resolution.
type Resolution uint8

const (
	Bits12 Resolution = iota
	Bits10
	Bits8
	Bits6
)

// Bits returns the CFGR1.RES encoding.
func (r Resolution) Bits() uint8 { return uint8(r) }

// ResolutionFromBits decodes a 2-bit RES field value.
func ResolutionFromBits(b uint8) (Resolution, bool) {
	if b > uint8(Bits6) {
		return 0, false
	}
	return Resolution(b), true
}

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case Bits12:
		return "12-bit"
	case Bits10:
		return "10-bit"
	case Bits8:
		return "8-bit"
	case Bits6:
		return "6-bit"
	}
	return "?"
}

// DataAlignment selects where the result sits in the data register.
type DataAlignment uint8

const (
	AlignRight DataAlignment = iota
	AlignLeft
)

// Bit returns the CFGR1.ALIGN encoding.
func (d DataAlignment) Bit() bool { return d == AlignLeft }

// DataAlignmentFromBit decodes the ALIGN bit.
func DataAlignmentFromBit(b bool) DataAlignment {
	if b {
		return AlignLeft
	}
	return AlignRight
}

// String returns the alignment name.
func (d DataAlignment) String() string {
	if d == AlignLeft {
		return "left"
	}
	return "right"
}

// LowPowerMode names the auto-wait/auto-off bit pair.
type LowPowerMode uint8

const (
	LowPowerNone LowPowerMode = iota
	AutoWait
	AutoPowerOff
	AutoWaitAndPowerOff
)

// Bits returns the WAIT/AUTOFF pair encoding.
func (m LowPowerMode) Bits() uint8 { return uint8(m) }

// LowPowerModeFromBits decodes a 2-bit WAIT/AUTOFF pair value.
func LowPowerModeFromBits(b uint8) (LowPowerMode, bool) {
	if b > uint8(AutoWaitAndPowerOff) {
		return 0, false
	}
	return LowPowerMode(b), true
}

// SamplingTime is the per-group sampling duration in converter clock
// cycles.
type SamplingTime uint8

const (
	T1_5 SamplingTime = iota
	T3_5
	T7_5
	T12_5
	T19_5
	T39_5
	T79_5
	T160_5
)

// Bits returns the 3-bit SMP field encoding.
func (t SamplingTime) Bits() uint8 { return uint8(t) }

// SamplingTimeFromBits decodes a 3-bit SMP field value.
func SamplingTimeFromBits(b uint8) (SamplingTime, bool) {
	if b > uint8(T160_5) {
		return 0, false
	}
	return SamplingTime(b), true
}

// SamplingTimeCommonGroup identifies one of the two shared sampling time
// fields.
type SamplingTimeCommonGroup uint8

const (
	Common1 SamplingTimeCommonGroup = iota
	Common2
)

// Bits returns the group's SMP field offset inside SMPR: 0 or 4.
func (g SamplingTimeCommonGroup) Bits() uint8 {
	if g == Common2 {
		return 4
	}
	return 0
}

// Bit returns the group as a channel selection bit value.
func (g SamplingTimeCommonGroup) Bit() bool { return g == Common2 }

// SamplingTimeCommonGroupFromBits decodes a group field offset (0 or 4).
func SamplingTimeCommonGroupFromBits(b uint8) (SamplingTimeCommonGroup, bool) {
	switch b {
	case 0:
		return Common1, true
	case 4:
		return Common2, true
	}
	return 0, false
}

// Channel is one of the 19 converter inputs.
type Channel uint8

const (
	C0 Channel = iota
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C9
	C10
	C11
	C12
	C13
	C14
	C15
	C16
	C17
	C18
)

// Bits returns the channel index.
func (c Channel) Bits() uint8 { return uint8(c) }

// ChannelFromIndex maps a one-based position to a channel: 1 -> C0 through
// 19 -> C18. 0 and anything above 19 yield nothing. The shifted mapping is
// part of the public contract; callers depend on it.
func ChannelFromIndex(idx int) (Channel, bool) {
	if idx < 1 || idx > 19 {
		return 0, false
	}
	return Channel(idx - 1), true
}

// ExternalTriggerMode selects the hardware trigger edge sensitivity.
type ExternalTriggerMode uint8

const (
	TriggerDisabled ExternalTriggerMode = iota
	TriggerRisingEdge
	TriggerFallingEdge
	TriggerBothEdges
)

// Bits returns the CFGR1.EXTEN encoding.
func (m ExternalTriggerMode) Bits() uint8 { return uint8(m) }

// ExternalTriggerModeFromBits decodes a 2-bit EXTEN field value.
func ExternalTriggerModeFromBits(b uint8) (ExternalTriggerMode, bool) {
	if b > uint8(TriggerBothEdges) {
		return 0, false
	}
	return ExternalTriggerMode(b), true
}

// ExternalTriggerSource selects which internal signal triggers a
// conversion.
type ExternalTriggerSource uint8

const (
	TRG0 ExternalTriggerSource = iota
	TRG1
	TRG2
	TRG3
	TRG4
	TRG5
	TRG6
	TRG7
)

// Bits returns the CFGR1.EXTSEL encoding.
func (s ExternalTriggerSource) Bits() uint8 { return uint8(s) }

// ExternalTriggerSourceFromBits decodes a 3-bit EXTSEL field value.
func ExternalTriggerSourceFromBits(b uint8) (ExternalTriggerSource, bool) {
	if b > uint8(TRG7) {
		return 0, false
	}
	return ExternalTriggerSource(b), true
}

// RegularRank is a position in the regular conversion sequence.
type RegularRank uint8

const (
	Rank1 RegularRank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Bits returns the rank's nibble offset: 0, 4, 8, ... 28.
func (r RegularRank) Bits() uint8 { return uint8(r) * 4 }

// RegularRankFromBits decodes a rank nibble offset. Only multiples of four
// up to 28 decode.
func RegularRankFromBits(b uint8) (RegularRank, bool) {
	if b > 28 || b%4 != 0 {
		return 0, false
	}
	return RegularRank(b / 4), true
}
