package probe

import (
	"errors"
	"fmt"
)

// Frame layout on the wire:
//
//	0x7E  len  payload...  crc16-hi  crc16-lo  0x7D
//
// len counts the whole frame including both sync bytes. The CRC covers
// len and the payload.
const (
	frameSyncStart = 0x7E
	frameSyncEnd   = 0x7D

	frameHeaderSize  = 2 // start sync + len
	frameTrailerSize = 3 // crc16 + end sync
	frameLengthMin   = frameHeaderSize + frameTrailerSize
	frameLengthMax   = 64
)

var (
	ErrFrameTooLarge = errors.New("probe: payload exceeds frame size")
	ErrShortFrame    = errors.New("probe: frame shorter than minimum")
	ErrBadSync       = errors.New("probe: bad sync byte")
	ErrBadCRC        = errors.New("probe: crc mismatch")
)

// crc16 is the CCITT variant used by the transport. It matches what the
// firmware side computes.
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}

// encodeFrame wraps a payload in sync bytes, length and CRC.
func encodeFrame(payload []byte) ([]byte, error) {
	total := frameLengthMin + len(payload)
	if total > frameLengthMax {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}

	f := make([]byte, 0, total)
	f = append(f, frameSyncStart, byte(total))
	f = append(f, payload...)
	crc := crc16(f[1:]) // len + payload
	f = append(f, byte(crc>>8), byte(crc), frameSyncEnd)
	return f, nil
}

// decodeFrame validates one complete frame and returns its payload. The
// payload aliases the input.
func decodeFrame(f []byte) ([]byte, error) {
	if len(f) < frameLengthMin {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(f))
	}
	if f[0] != frameSyncStart || f[len(f)-1] != frameSyncEnd {
		return nil, ErrBadSync
	}
	if int(f[1]) != len(f) {
		return nil, fmt.Errorf("%w: length byte %d for %d bytes", ErrShortFrame, f[1], len(f))
	}

	body := f[1 : len(f)-frameTrailerSize] // len + payload
	want := uint16(f[len(f)-3])<<8 | uint16(f[len(f)-2])
	if got := crc16(body); got != want {
		return nil, fmt.Errorf("%w: got %#04x want %#04x", ErrBadCRC, got, want)
	}
	return body[1:], nil
}
