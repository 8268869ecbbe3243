// Package adc configures and runs the analog-to-digital converter.
//
// Status polls (Calibrate, Enable, Read) spin until the hardware reacts.
// There is no timeout or cancellation anywhere in this layer: a dead
// converter means a hang, not an error value. That is an accepted property
// of the design, not an oversight.
package adc

import "github.com/hbacelar8/stm32g0-ll-drivers/pac"

// ADC is a handle over the converter register block.
type ADC struct {
	rb *pac.ADC_Type
}

// New builds a handle over the given register block. Use the root package's
// TakeADC for the singleton device instance (it also gates the bus clock).
func New(rb *pac.ADC_Type) *ADC {
	return &ADC{rb: rb}
}

// Calibrate starts a calibration cycle and busy-waits until the hardware
// clears the calibration bit. Blocks forever if it never does.
func (a *ADC) Calibrate() {
	a.rb.CR.SetBits(pac.ADC_CR_ADCAL)
	for a.rb.CR.HasBits(pac.ADC_CR_ADCAL) {
	}
}

// Enable powers the converter up and busy-waits for the ready flag.
func (a *ADC) Enable() {
	a.rb.CR.SetBits(pac.ADC_CR_ADEN)
	for !a.rb.ISR.HasBits(pac.ADC_ISR_ADRDY) {
	}
}

// StartConversion starts the selected regular sequence.
func (a *ADC) StartConversion() {
	a.rb.CR.SetBits(pac.ADC_CR_ADSTART)
}

// Read busy-waits for end of conversion and returns the data register.
func (a *ADC) Read() uint16 {
	for !a.rb.ISR.HasBits(pac.ADC_ISR_EOC) {
	}
	return uint16(a.rb.DR.Get())
}

// SetClockMode selects the converter clock.
func (a *ADC) SetClockMode(m ClockMode) {
	a.rb.CFGR2.ReplaceBits(uint32(m.Bits()), pac.ADC_CFGR2_CKMODE_Msk, pac.ADC_CFGR2_CKMODE_Pos)
}

// SetResolution selects the conversion resolution.
func (a *ADC) SetResolution(r Resolution) {
	a.rb.CFGR1.ReplaceBits(uint32(r.Bits()), pac.ADC_CFGR1_RES_Msk, pac.ADC_CFGR1_RES_Pos)
}

// SetDataAlignment selects left or right alignment of the result.
func (a *ADC) SetDataAlignment(d DataAlignment) {
	if d.Bit() {
		a.rb.CFGR1.SetBits(pac.ADC_CFGR1_ALIGN)
	} else {
		a.rb.CFGR1.ClearBits(pac.ADC_CFGR1_ALIGN)
	}
}

// SetLowPowerMode clears the auto-wait/auto-off bits named by the requested
// mode. It never sets them.
//
// TODO: also OR in the requested mode bits; as written a caller can only
// ever leave or reach the "none" state. Needs a product decision before the
// set path is wired.
func (a *ADC) SetLowPowerMode(m LowPowerMode) {
	a.rb.CFGR1.ClearBits(uint32(m.Bits()) << pac.ADC_CFGR1_LP_Pos)
}

// SetExternalTrigger selects the hardware trigger edge and source for
// regular conversions.
func (a *ADC) SetExternalTrigger(m ExternalTriggerMode, s ExternalTriggerSource) {
	a.rb.CFGR1.ReplaceBits(uint32(m.Bits()), pac.ADC_CFGR1_EXTEN_Msk, pac.ADC_CFGR1_EXTEN_Pos)
	a.rb.CFGR1.ReplaceBits(uint32(s.Bits()), pac.ADC_CFGR1_EXTSEL_Msk, pac.ADC_CFGR1_EXTSEL_Pos)
}

// SetCommonGroupSamplingTime programs one of the two shared sampling time
// fields. Only that group's 3-bit field is rewritten.
func (a *ADC) SetCommonGroupSamplingTime(g SamplingTimeCommonGroup, t SamplingTime) {
	a.rb.SMPR.ReplaceBits(uint32(t.Bits()), pac.ADC_SMPR_SMP_Msk, g.Bits())
}

// SetChannelSamplingTimeGroup assigns a channel to one of the two common
// sampling time groups. Only that channel's selection bit is touched.
func (a *ADC) SetChannelSamplingTimeGroup(c Channel, g SamplingTimeCommonGroup) {
	bit := uint32(1) << (pac.ADC_SMPR_SMPSEL_Pos + c.Bits())
	if g.Bit() {
		a.rb.SMPR.SetBits(bit)
	} else {
		a.rb.SMPR.ClearBits(bit)
	}
}

// SelectChannels replaces the channel selection with exactly the given
// channels.
func (a *ADC) SelectChannels(channels ...Channel) {
	var mask uint32
	for _, c := range channels {
		mask |= 1 << c.Bits()
	}
	a.rb.CHSELR.ReplaceBits(mask, 0x7FFFF, 0)
}
