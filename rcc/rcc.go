// Package rcc drives the reset and clock control block: system clock source
// selection, oscillator switches and per-peripheral bus clock gating.
//
// The package holds no global state. A handle is built over a register block
// with New; the guarded singleton entry point lives in the root package.
package rcc

import (
	"github.com/hbacelar8/stm32g0-ll-drivers/mmio"
	"github.com/hbacelar8/stm32g0-ll-drivers/pac"
)

// HSEFreq is the frequency of the external crystal oscillator in Hz.
const HSEFreq uint32 = 8_000_000

// RCC is a handle over the clock control register block.
type RCC struct {
	rb *pac.RCC_Type
}

// New builds a handle over the given register block. Use the root package's
// TakeRCC for the singleton device instance.
func New(rb *pac.RCC_Type) *RCC {
	return &RCC{rb: rb}
}

// SetSysClockSource selects the system clock source.
func (r *RCC) SetSysClockSource(src SystemClockSource) {
	r.rb.CFGR.ReplaceBits(uint32(src.Bits()), pac.RCC_CFGR_SW_Msk, pac.RCC_CFGR_SW_Pos)
}

// SysClockSource returns the system clock source reported by the switch
// status field. ok is false if the field holds a code outside the table.
func (r *RCC) SysClockSource() (SystemClockSource, bool) {
	bits := uint8(r.rb.CFGR.Get() >> pac.RCC_CFGR_SWS_Pos & pac.RCC_CFGR_SWS_Msk)
	return SystemClockSourceFromBits(bits)
}

// SysClockFreq returns the system clock frequency in Hz. Only the HSE path
// is implemented; every other source reports 0.
//
// TODO: derive the PLL output from PLLCFGR and the HSI16 path from HSIDIV
// instead of returning 0.
func (r *RCC) SysClockFreq() uint32 {
	src, ok := r.SysClockSource()
	if !ok {
		return 0
	}
	switch src {
	case HSE:
		return HSEFreq
	default:
		return 0
	}
}

// SetPLLState turns the PLL on or off.
func (r *RCC) SetPLLState(on bool) {
	r.setCR(pac.RCC_CR_PLLON, on)
}

// IsPLLLocked reports whether the PLL clock is locked (ready).
func (r *RCC) IsPLLLocked() bool {
	return r.rb.CR.HasBits(pac.RCC_CR_PLLRDY)
}

// SetHSI48State turns the HSI48 oscillator on or off.
func (r *RCC) SetHSI48State(on bool) {
	r.setCR(pac.RCC_CR_HSI48ON, on)
}

// IsHSI48Ready reports whether the HSI48 oscillator is stable.
func (r *RCC) IsHSI48Ready() bool {
	return r.rb.CR.HasBits(pac.RCC_CR_HSI48RDY)
}

// SetHSEState turns the external oscillator on or off.
func (r *RCC) SetHSEState(on bool) {
	r.setCR(pac.RCC_CR_HSEON, on)
}

// IsHSEReady reports whether the external oscillator is stable.
func (r *RCC) IsHSEReady() bool {
	return r.rb.CR.HasBits(pac.RCC_CR_HSERDY)
}

// SetHSIState turns the internal 16 MHz oscillator on or off.
func (r *RCC) SetHSIState(on bool) {
	r.setCR(pac.RCC_CR_HSION, on)
}

// IsHSIReady reports whether the internal 16 MHz oscillator is stable.
func (r *RCC) IsHSIReady() bool {
	return r.rb.CR.HasBits(pac.RCC_CR_HSIRDY)
}

// SetClockSecuritySystem enables or disables the clock security system.
func (r *RCC) SetClockSecuritySystem(on bool) {
	r.setCR(pac.RCC_CR_CSSON, on)
}

// BypassHSECrystalOscillator bypasses the crystal with an external clock.
func (r *RCC) BypassHSECrystalOscillator(on bool) {
	r.setCR(pac.RCC_CR_HSEBYP, on)
}

// SetHSI16DivisionFactor sets the HSI16 clock division factor.
func (r *RCC) SetHSI16DivisionFactor(div HSI16DivisionFactor) {
	r.rb.CR.ReplaceBits(uint32(div.Bits()), pac.RCC_CR_HSIDIV_Msk, pac.RCC_CR_HSIDIV_Pos)
}

// EnablePeripheralClock sets the peripheral's bit in its bus gating
// register, leaving every other bit untouched.
func (r *RCC) EnablePeripheralClock(g ClockGate) {
	r.gateReg(g.Bus).SetBits(1 << g.Bit)
}

// DisablePeripheralClock clears the peripheral's bit in its bus gating
// register, leaving every other bit untouched.
func (r *RCC) DisablePeripheralClock(g ClockGate) {
	r.gateReg(g.Bus).ClearBits(1 << g.Bit)
}

// EnableGPIOPortClock enables the clock of one I/O port.
func (r *RCC) EnableGPIOPortClock(p GPIOPort) {
	r.EnablePeripheralClock(p.Gate())
}

// DisableGPIOPortClock disables the clock of one I/O port.
func (r *RCC) DisableGPIOPortClock(p GPIOPort) {
	r.DisablePeripheralClock(p.Gate())
}

func (r *RCC) setCR(mask uint32, on bool) {
	if on {
		r.rb.CR.SetBits(mask)
	} else {
		r.rb.CR.ClearBits(mask)
	}
}

func (r *RCC) gateReg(b Bus) *mmio.Register32 {
	switch b {
	case BusAPB1:
		return &r.rb.APBENR1
	case BusAPB2:
		return &r.rb.APBENR2
	default:
		return &r.rb.IOPENR
	}
}
