// Package mmio provides the register access primitives the peripheral
// packages are built on.
//
// On hosted builds the registers are plain memory; accesses go through
// sync/atomic so that busy-poll loops observe writes made from other
// goroutines and the compiler cannot cache a read out of a loop. On a
// bare-metal target the registers live at fixed addresses and the same
// accessors compile down to single loads and stores.
package mmio

import "sync/atomic"

// Register32 is a 32-bit memory-mapped register.
type Register32 struct {
	reg uint32
}

// Get returns the current register value.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.reg)
}

// Set writes the whole register.
func (r *Register32) Set(v uint32) {
	atomic.StoreUint32(&r.reg, v)
}

// SetBits ORs bits into the register (read-modify-write).
func (r *Register32) SetBits(bits uint32) {
	r.Set(r.Get() | bits)
}

// ClearBits clears bits in the register (read-modify-write).
func (r *Register32) ClearBits(bits uint32) {
	r.Set(r.Get() &^ bits)
}

// HasBits reports whether all given bits are set.
func (r *Register32) HasBits(bits uint32) bool {
	return r.Get()&bits == bits
}

// ReplaceBits replaces the field selected by mask<<pos with value<<pos,
// leaving every other bit untouched. The mask is given unshifted.
func (r *Register32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
