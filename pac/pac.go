// Package pac describes the STM32G0 peripheral register map consumed by the
// driver packages: block layouts, field constants and the device instances
// RCC, GPIOA..GPIOF and ADC.
//
// The layout itself is fixed by the reference manual; this package only
// mirrors it. On a bare-metal build (stm32g0 tag) the instances point at the
// real base addresses. On hosted builds they are ordinary allocated blocks,
// which makes every driver operation executable and testable off-target.
package pac

import "github.com/hbacelar8/stm32g0-ll-drivers/mmio"

// Peripheral base addresses.
const (
	RCC_BASE   = 0x4002_1000
	ADC_BASE   = 0x4001_2400
	GPIOA_BASE = 0x5000_0000
	GPIOB_BASE = 0x5000_0400
	GPIOC_BASE = 0x5000_0800
	GPIOD_BASE = 0x5000_0C00
	GPIOE_BASE = 0x5000_1000
	GPIOF_BASE = 0x5000_1400
)

// RCC_Type is the reset and clock control register block.
type RCC_Type struct {
	CR        mmio.Register32 // 0x00 clock control
	ICSCR     mmio.Register32 // 0x04 internal clock sources calibration
	CFGR      mmio.Register32 // 0x08 clock configuration
	PLLCFGR   mmio.Register32 // 0x0C PLL configuration
	_         [2]mmio.Register32
	CIER      mmio.Register32 // 0x18 clock interrupt enable
	CIFR      mmio.Register32 // 0x1C clock interrupt flag
	CICR      mmio.Register32 // 0x20 clock interrupt clear
	IOPRSTR   mmio.Register32 // 0x24 I/O port reset
	AHBRSTR   mmio.Register32 // 0x28 AHB peripheral reset
	APBRSTR1  mmio.Register32 // 0x2C APB peripheral reset 1
	APBRSTR2  mmio.Register32 // 0x30 APB peripheral reset 2
	IOPENR    mmio.Register32 // 0x34 I/O port clock enable
	AHBENR    mmio.Register32 // 0x38 AHB peripheral clock enable
	APBENR1   mmio.Register32 // 0x3C APB peripheral clock enable 1
	APBENR2   mmio.Register32 // 0x40 APB peripheral clock enable 2
	IOPSMENR  mmio.Register32 // 0x44 I/O port clock enable in sleep mode
	AHBSMENR  mmio.Register32 // 0x48 AHB clock enable in sleep mode
	APBSMENR1 mmio.Register32 // 0x4C APB clock enable in sleep mode 1
	APBSMENR2 mmio.Register32 // 0x50 APB clock enable in sleep mode 2
	CCIPR     mmio.Register32 // 0x54 peripherals independent clock config
	CCIPR2    mmio.Register32 // 0x58 peripherals independent clock config 2
	BDCR      mmio.Register32 // 0x5C RTC domain control
	CSR       mmio.Register32 // 0x60 control/status
}

// GPIO_Type is one I/O port register block.
type GPIO_Type struct {
	MODER   mmio.Register32 // 0x00 mode, 2 bits per pin
	OTYPER  mmio.Register32 // 0x04 output type, 1 bit per pin
	OSPEEDR mmio.Register32 // 0x08 output speed, 2 bits per pin
	PUPDR   mmio.Register32 // 0x0C pull-up/pull-down, 2 bits per pin
	IDR     mmio.Register32 // 0x10 input data
	ODR     mmio.Register32 // 0x14 output data
	BSRR    mmio.Register32 // 0x18 bit set/reset
	LCKR    mmio.Register32 // 0x1C configuration lock
	AFRL    mmio.Register32 // 0x20 alternate function, pins 0..7
	AFRH    mmio.Register32 // 0x24 alternate function, pins 8..15
	BRR     mmio.Register32 // 0x28 bit reset
}

// ADC_Type is the ADC register block.
type ADC_Type struct {
	ISR    mmio.Register32 // 0x00 interrupt and status
	IER    mmio.Register32 // 0x04 interrupt enable
	CR     mmio.Register32 // 0x08 control
	CFGR1  mmio.Register32 // 0x0C configuration 1
	CFGR2  mmio.Register32 // 0x10 configuration 2
	SMPR   mmio.Register32 // 0x14 sampling time
	_      [2]mmio.Register32
	AWD1TR mmio.Register32 // 0x20 watchdog 1 threshold
	AWD2TR mmio.Register32 // 0x24 watchdog 2 threshold
	CHSELR mmio.Register32 // 0x28 channel selection
	AWD3TR mmio.Register32 // 0x2C watchdog 3 threshold
	_      [4]mmio.Register32
	DR     mmio.Register32 // 0x40 data
	_      [23]mmio.Register32
	AWD2CR mmio.Register32 // 0xA0 watchdog 2 configuration
	AWD3CR mmio.Register32 // 0xA4 watchdog 3 configuration
	_      [3]mmio.Register32
	CALFACT mmio.Register32 // 0xB4 calibration factor
	_       [148]mmio.Register32
	CCR     mmio.Register32 // 0x308 common configuration
}

// RCC_CR bits.
const (
	RCC_CR_HSION      = 1 << 8
	RCC_CR_HSIKERON   = 1 << 9
	RCC_CR_HSIRDY     = 1 << 10
	RCC_CR_HSIDIV_Pos = 11
	RCC_CR_HSIDIV_Msk = 0x7
	RCC_CR_HSEON      = 1 << 16
	RCC_CR_HSERDY     = 1 << 17
	RCC_CR_HSEBYP     = 1 << 18
	RCC_CR_CSSON      = 1 << 19
	RCC_CR_HSI48ON    = 1 << 22
	RCC_CR_HSI48RDY   = 1 << 23
	RCC_CR_PLLON      = 1 << 24
	RCC_CR_PLLRDY     = 1 << 25
)

// RCC_CFGR fields.
const (
	RCC_CFGR_SW_Pos  = 0
	RCC_CFGR_SW_Msk  = 0x7
	RCC_CFGR_SWS_Pos = 3
	RCC_CFGR_SWS_Msk = 0x7
)

// ADC_ISR bits.
const (
	ADC_ISR_ADRDY = 1 << 0
	ADC_ISR_EOSMP = 1 << 1
	ADC_ISR_EOC   = 1 << 2
	ADC_ISR_EOS   = 1 << 3
	ADC_ISR_OVR   = 1 << 4
	ADC_ISR_EOCAL = 1 << 11
	ADC_ISR_CCRDY = 1 << 13
)

// ADC_CR bits.
const (
	ADC_CR_ADEN     = 1 << 0
	ADC_CR_ADDIS    = 1 << 1
	ADC_CR_ADSTART  = 1 << 2
	ADC_CR_ADSTP    = 1 << 4
	ADC_CR_ADVREGEN = 1 << 28
	ADC_CR_ADCAL    = 1 << 31
)

// ADC_CFGR1 fields.
const (
	ADC_CFGR1_RES_Pos    = 3
	ADC_CFGR1_RES_Msk    = 0x3
	ADC_CFGR1_ALIGN      = 1 << 5
	ADC_CFGR1_EXTSEL_Pos = 6
	ADC_CFGR1_EXTSEL_Msk = 0x7
	ADC_CFGR1_EXTEN_Pos  = 10
	ADC_CFGR1_EXTEN_Msk  = 0x3
	ADC_CFGR1_LP_Pos     = 14 // WAIT and AUTOFF as one 2-bit field
	ADC_CFGR1_LP_Msk     = 0x3
	ADC_CFGR1_WAIT       = 1 << 14
	ADC_CFGR1_AUTOFF     = 1 << 15
)

// ADC_CFGR2 fields.
const (
	ADC_CFGR2_CKMODE_Pos = 30
	ADC_CFGR2_CKMODE_Msk = 0x3
)

// ADC_SMPR fields.
const (
	ADC_SMPR_SMP1_Pos   = 0
	ADC_SMPR_SMP2_Pos   = 4
	ADC_SMPR_SMP_Msk    = 0x7
	ADC_SMPR_SMPSEL_Pos = 8
)
