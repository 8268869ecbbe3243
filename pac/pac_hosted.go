//go:build !stm32g0

package pac

// Hosted builds back the device instances with ordinary memory. Register
// contents behave like RAM: read-modify-write sequences work as on hardware,
// but side effects wired in silicon (BSRR mirroring into ODR, hardware
// clearing ADCAL, and so on) do not happen by themselves.
var (
	RCC   = new(RCC_Type)
	ADC   = new(ADC_Type)
	GPIOA = new(GPIO_Type)
	GPIOB = new(GPIO_Type)
	GPIOC = new(GPIO_Type)
	GPIOD = new(GPIO_Type)
	GPIOE = new(GPIO_Type)
	GPIOF = new(GPIO_Type)
)
