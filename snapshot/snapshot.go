// Package snapshot decodes peripheral register images back into
// configuration reports. A snapshot source can be anything that serves
// 32-bit words by address: a memory dump, a live target behind a probe, or
// the in-process register blocks used in tests.
package snapshot

import (
	"fmt"
	"strings"

	"github.com/hbacelar8/stm32g0-ll-drivers/adc"
	"github.com/hbacelar8/stm32g0-ll-drivers/gpio"
	"github.com/hbacelar8/stm32g0-ll-drivers/pac"
	"github.com/hbacelar8/stm32g0-ll-drivers/rcc"
)

// Memory serves aligned 32-bit words from a register image. The second
// return is false when the image does not cover the address.
type Memory interface {
	ReadWord(addr uint32) (uint32, bool)
}

// Register offsets inside each block. The pac structs define the same
// layout; the decoder works on flat addresses because its input is a raw
// image, not a mapped block.
const (
	rccCR      = 0x00
	rccCFGR    = 0x08
	rccIOPENR  = 0x34
	rccAPBENR1 = 0x3C
	rccAPBENR2 = 0x40

	gpioMODER  = 0x00
	gpioOTYPER = 0x04
	gpioPUPDR  = 0x0C
	gpioAFRL   = 0x20
	gpioAFRH   = 0x24

	adcCR     = 0x08
	adcCFGR1  = 0x0C
	adcCFGR2  = 0x10
	adcSMPR   = 0x14
	adcCHSELR = 0x28
)

// RCCReport is the decoded clock configuration. Fields whose register code
// has no decoding stay at their zero value with the Known flag false.
type RCCReport struct {
	SysClockSource      rcc.SystemClockSource
	SysClockSourceKnown bool
	HSIDiv              rcc.HSI16DivisionFactor
	EnabledGates        []string
	EnabledPorts        []rcc.GPIOPort
}

// PinReport is one pin's decoded electrical configuration.
type PinReport struct {
	Mode       gpio.Mode
	OutputType gpio.OutputType
	Pull       gpio.Pull
	PullKnown  bool
	AltFunc    gpio.AltFunc
}

// PortReport is a whole port's pin configuration.
type PortReport struct {
	Port gpio.Port
	Pins [16]PinReport
}

// ADCReport is the decoded converter configuration.
type ADCReport struct {
	Enabled          bool
	Resolution       adc.Resolution
	ResolutionKnown  bool
	Alignment        adc.DataAlignment
	ClockMode        adc.ClockMode
	ClockModeKnown   bool
	LowPower         adc.LowPowerMode
	LowPowerKnown    bool
	CommonSampling   [2]adc.SamplingTime
	GroupTwoChannels []adc.Channel
	SelectedChannels []adc.Channel
}

// Report bundles everything the decoder could recover from one image.
type Report struct {
	RCC   *RCCReport
	Ports []*PortReport
	ADC   *ADCReport
}

func field(word uint32, msk uint32, pos uint8) uint8 {
	return uint8(word >> pos & msk)
}

// DecodeRCC reads the clock block out of the image. It returns nil when the
// image does not cover the block.
func DecodeRCC(m Memory) *RCCReport {
	cr, ok1 := m.ReadWord(pac.RCC_BASE + rccCR)
	cfgr, ok2 := m.ReadWord(pac.RCC_BASE + rccCFGR)
	if !ok1 || !ok2 {
		return nil
	}

	r := &RCCReport{}
	r.SysClockSource, r.SysClockSourceKnown =
		rcc.SystemClockSourceFromBits(field(cfgr, pac.RCC_CFGR_SWS_Msk, pac.RCC_CFGR_SWS_Pos))
	r.HSIDiv, _ = rcc.HSI16DivisionFactorFromBits(field(cr, pac.RCC_CR_HSIDIV_Msk, pac.RCC_CR_HSIDIV_Pos))

	for _, bank := range []struct {
		bus rcc.Bus
		off uint32
	}{
		{rcc.BusAPB1, rccAPBENR1},
		{rcc.BusAPB2, rccAPBENR2},
	} {
		w, ok := m.ReadWord(pac.RCC_BASE + bank.off)
		if !ok {
			continue
		}
		for bit := uint8(0); bit < 32; bit++ {
			if w&(1<<bit) == 0 {
				continue
			}
			name, known := rcc.GateName(bank.bus, bit)
			if !known {
				name = fmt.Sprintf("%s.%d", bank.bus, bit)
			}
			r.EnabledGates = append(r.EnabledGates, name)
		}
	}

	if iop, ok := m.ReadWord(pac.RCC_BASE + rccIOPENR); ok {
		for p := rcc.GPIOA; p <= rcc.GPIOF; p++ {
			if iop&(1<<p.Gate().Bit) != 0 {
				r.EnabledPorts = append(r.EnabledPorts, p)
			}
		}
	}
	return r
}

func portBase(p gpio.Port) uint32 {
	return pac.GPIOA_BASE + 0x400*uint32(p)
}

// DecodePort reads one pin port out of the image. It returns nil when the
// image does not cover the block.
func DecodePort(m Memory, p gpio.Port) *PortReport {
	moder, ok1 := m.ReadWord(portBase(p) + gpioMODER)
	otyper, ok2 := m.ReadWord(portBase(p) + gpioOTYPER)
	pupdr, ok3 := m.ReadWord(portBase(p) + gpioPUPDR)
	afrl, ok4 := m.ReadWord(portBase(p) + gpioAFRL)
	afrh, ok5 := m.ReadWord(portBase(p) + gpioAFRH)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil
	}

	pr := &PortReport{Port: p}
	for n := uint8(0); n < 16; n++ {
		pin := &pr.Pins[n]
		pin.Mode, _ = gpio.ModeFromBits(field(moder, 0x3, 2*n))
		pin.OutputType, _ = gpio.OutputTypeFromBits(field(otyper, 0x1, n))
		pin.Pull, pin.PullKnown = gpio.PullFromBits(field(pupdr, 0x3, 2*n))
		afr := afrl
		shift := 4 * n
		if n >= 8 {
			afr = afrh
			shift = 4 * (n - 8)
		}
		pin.AltFunc, _ = gpio.AltFuncFromBits(field(afr, 0xF, shift))
	}
	return pr
}

// DecodeADC reads the converter block out of the image. It returns nil when
// the image does not cover the block.
func DecodeADC(m Memory) *ADCReport {
	cr, ok1 := m.ReadWord(pac.ADC_BASE + adcCR)
	cfgr1, ok2 := m.ReadWord(pac.ADC_BASE + adcCFGR1)
	cfgr2, ok3 := m.ReadWord(pac.ADC_BASE + adcCFGR2)
	smpr, ok4 := m.ReadWord(pac.ADC_BASE + adcSMPR)
	chselr, ok5 := m.ReadWord(pac.ADC_BASE + adcCHSELR)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil
	}

	r := &ADCReport{Enabled: cr&pac.ADC_CR_ADEN != 0}
	r.Resolution, r.ResolutionKnown =
		adc.ResolutionFromBits(field(cfgr1, pac.ADC_CFGR1_RES_Msk, pac.ADC_CFGR1_RES_Pos))
	r.Alignment = adc.DataAlignmentFromBit(cfgr1&pac.ADC_CFGR1_ALIGN != 0)
	r.ClockMode, r.ClockModeKnown =
		adc.ClockModeFromBits(field(cfgr2, pac.ADC_CFGR2_CKMODE_Msk, pac.ADC_CFGR2_CKMODE_Pos))
	r.LowPower, r.LowPowerKnown =
		adc.LowPowerModeFromBits(field(cfgr1, pac.ADC_CFGR1_LP_Msk, pac.ADC_CFGR1_LP_Pos))
	r.CommonSampling[0], _ = adc.SamplingTimeFromBits(field(smpr, pac.ADC_SMPR_SMP_Msk, pac.ADC_SMPR_SMP1_Pos))
	r.CommonSampling[1], _ = adc.SamplingTimeFromBits(field(smpr, pac.ADC_SMPR_SMP_Msk, pac.ADC_SMPR_SMP2_Pos))
	for c := adc.C0; c <= adc.C18; c++ {
		if smpr&(1<<(pac.ADC_SMPR_SMPSEL_Pos+c.Bits())) != 0 {
			r.GroupTwoChannels = append(r.GroupTwoChannels, c)
		}
		if chselr&(1<<c.Bits()) != 0 {
			r.SelectedChannels = append(r.SelectedChannels, c)
		}
	}
	return r
}

// Decode reads every known block out of the image. Blocks the image does
// not cover are simply absent from the report.
func Decode(m Memory) *Report {
	rep := &Report{RCC: DecodeRCC(m), ADC: DecodeADC(m)}
	for p := gpio.PortA; p <= gpio.PortF; p++ {
		if pr := DecodePort(m, p); pr != nil {
			rep.Ports = append(rep.Ports, pr)
		}
	}
	return rep
}

func (r *RCCReport) String() string {
	var b strings.Builder
	if r.SysClockSourceKnown {
		fmt.Fprintf(&b, "sysclk: %s\n", r.SysClockSource)
	} else {
		b.WriteString("sysclk: unknown\n")
	}
	fmt.Fprintf(&b, "hsi divisor: /%d\n", r.HSIDiv.Divisor())
	if len(r.EnabledGates) > 0 {
		fmt.Fprintf(&b, "gated on: %s\n", strings.Join(r.EnabledGates, " "))
	}
	if len(r.EnabledPorts) > 0 {
		names := make([]string, len(r.EnabledPorts))
		for i, p := range r.EnabledPorts {
			names[i] = p.String()
		}
		fmt.Fprintf(&b, "ports on: %s\n", strings.Join(names, " "))
	}
	return b.String()
}

func (p *PortReport) String() string {
	var b strings.Builder
	for n, pin := range p.Pins {
		fmt.Fprintf(&b, "P%s%d: %s", p.Port, n, pin.Mode)
		switch pin.Mode {
		case gpio.ModeOutput:
			fmt.Fprintf(&b, " %s", pin.OutputType)
		case gpio.ModeAlternate:
			fmt.Fprintf(&b, " %s af%d", pin.OutputType, pin.AltFunc.Bits())
		}
		if pin.PullKnown {
			fmt.Fprintf(&b, " %s", pin.Pull)
		} else {
			b.WriteString(" pull:reserved")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (a *ADCReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enabled: %v\n", a.Enabled)
	if a.ResolutionKnown {
		fmt.Fprintf(&b, "resolution: %s\n", a.Resolution)
	}
	fmt.Fprintf(&b, "alignment: %s\n", a.Alignment)
	if a.ClockModeKnown {
		fmt.Fprintf(&b, "clock: %s\n", a.ClockMode)
	}
	fmt.Fprintf(&b, "sampling: group1=%d group2=%d\n",
		a.CommonSampling[0].Bits(), a.CommonSampling[1].Bits())
	if len(a.SelectedChannels) > 0 {
		names := make([]string, len(a.SelectedChannels))
		for i, c := range a.SelectedChannels {
			names[i] = fmt.Sprintf("C%d", c.Bits())
		}
		fmt.Fprintf(&b, "channels: %s\n", strings.Join(names, " "))
	}
	return b.String()
}

func (r *Report) String() string {
	var b strings.Builder
	if r.RCC != nil {
		b.WriteString("RCC\n")
		b.WriteString(r.RCC.String())
	}
	for _, p := range r.Ports {
		fmt.Fprintf(&b, "GPIO%s\n", p.Port)
		b.WriteString(p.String())
	}
	if r.ADC != nil {
		b.WriteString("ADC\n")
		b.WriteString(r.ADC.String())
	}
	return b.String()
}
