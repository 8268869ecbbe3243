// Package stm32g0 hands out the singleton peripheral facades. Each
// hardware block exists once, so each take function succeeds exactly once
// for the life of the program; later and concurrent callers get false.
package stm32g0

import (
	"sync/atomic"

	"github.com/hbacelar8/stm32g0-ll-drivers/adc"
	"github.com/hbacelar8/stm32g0-ll-drivers/gpio"
	"github.com/hbacelar8/stm32g0-ll-drivers/pac"
	"github.com/hbacelar8/stm32g0-ll-drivers/rcc"
)

// Guard is a one-shot ownership flag. The zero value is unclaimed.
type Guard struct {
	taken atomic.Bool
}

// Acquire claims the guard. The first caller wins; every other caller,
// including concurrent ones, gets false and leaves the guard untouched.
func (g *Guard) Acquire() bool {
	return g.taken.CompareAndSwap(false, true)
}

var (
	rccGuard  Guard
	adcGuard  Guard
	gpioGuard [6]Guard
)

// TakeRCC hands out the reset and clock control facade.
func TakeRCC() (*rcc.RCC, bool) {
	if !rccGuard.Acquire() {
		return nil, false
	}
	return rcc.New(pac.RCC), true
}

// TakeADC hands out the converter facade. The bus clock is switched on
// before the ownership check, so a refused take still leaves the clock
// running.
func TakeADC(r *rcc.RCC) (*adc.ADC, bool) {
	r.EnablePeripheralClock(rcc.ADC)
	if !adcGuard.Acquire() {
		return nil, false
	}
	return adc.New(pac.ADC), true
}

func takePort(p gpio.Port, rb *pac.GPIO_Type) (*gpio.Pins, bool) {
	if !gpioGuard[p].Acquire() {
		return nil, false
	}
	pins := gpio.NewPins(p, rb)
	return &pins, true
}

// TakeGPIOA hands out the port A pin set.
func TakeGPIOA() (*gpio.Pins, bool) { return takePort(gpio.PortA, pac.GPIOA) }

// TakeGPIOB hands out the port B pin set.
func TakeGPIOB() (*gpio.Pins, bool) { return takePort(gpio.PortB, pac.GPIOB) }

// TakeGPIOC hands out the port C pin set.
func TakeGPIOC() (*gpio.Pins, bool) { return takePort(gpio.PortC, pac.GPIOC) }

// TakeGPIOD hands out the port D pin set.
func TakeGPIOD() (*gpio.Pins, bool) { return takePort(gpio.PortD, pac.GPIOD) }

// TakeGPIOE hands out the port E pin set.
func TakeGPIOE() (*gpio.Pins, bool) { return takePort(gpio.PortE, pac.GPIOE) }

// TakeGPIOF hands out the port F pin set.
func TakeGPIOF() (*gpio.Pins, bool) { return takePort(gpio.PortF, pac.GPIOF) }
