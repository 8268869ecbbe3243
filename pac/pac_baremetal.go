//go:build stm32g0

package pac

import "unsafe"

// Device instances at their fixed base addresses.
var (
	RCC   = (*RCC_Type)(unsafe.Pointer(uintptr(RCC_BASE)))
	ADC   = (*ADC_Type)(unsafe.Pointer(uintptr(ADC_BASE)))
	GPIOA = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOA_BASE)))
	GPIOB = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOB_BASE)))
	GPIOC = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOC_BASE)))
	GPIOD = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOD_BASE)))
	GPIOE = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOE_BASE)))
	GPIOF = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOF_BASE)))
)
