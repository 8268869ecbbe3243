// Package probe speaks the debug-probe register protocol over any byte
// stream. The firmware side answers two requests: read a 32-bit word at an
// address, write a 32-bit word to an address.
package probe

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Request and response opcodes. A response echoes its request opcode with
// the high bit set.
const (
	opRead  = 0x01
	opWrite = 0x02
	opReply = 0x80
)

// Client drives one target over a framed byte stream. Not safe for
// concurrent use; the protocol is strictly request-response.
type Client struct {
	rw  io.ReadWriter
	buf [frameLengthMax]byte
}

// NewClient wraps a byte stream, typically an open serial port.
func NewClient(rw io.ReadWriter) *Client {
	return &Client{rw: rw}
}

func (c *Client) roundTrip(payload []byte) ([]byte, error) {
	f, err := encodeFrame(payload)
	if err != nil {
		return nil, err
	}
	if _, err := c.rw.Write(f); err != nil {
		return nil, fmt.Errorf("probe: send: %w", err)
	}

	// The length byte right after the sync tells how much to read.
	header := c.buf[:frameHeaderSize]
	if _, err := io.ReadFull(c.rw, header); err != nil {
		return nil, fmt.Errorf("probe: receive: %w", err)
	}
	total := int(header[1])
	if total < frameLengthMin || total > frameLengthMax {
		return nil, fmt.Errorf("%w: length byte %d", ErrShortFrame, total)
	}
	if _, err := io.ReadFull(c.rw, c.buf[frameHeaderSize:total]); err != nil {
		return nil, fmt.Errorf("probe: receive: %w", err)
	}
	return decodeFrame(c.buf[:total])
}

// ReadWord fetches the 32-bit word at addr from the target.
func (c *Client) ReadWord(addr uint32) (uint32, error) {
	var req [5]byte
	req[0] = opRead
	binary.LittleEndian.PutUint32(req[1:], addr)

	resp, err := c.roundTrip(req[:])
	if err != nil {
		return 0, err
	}
	if len(resp) != 5 || resp[0] != opRead|opReply {
		return 0, fmt.Errorf("probe: unexpected read reply % x", resp)
	}
	return binary.LittleEndian.Uint32(resp[1:]), nil
}

// WriteWord stores a 32-bit word at addr on the target. The reply carries
// the value back as written.
func (c *Client) WriteWord(addr, value uint32) error {
	var req [9]byte
	req[0] = opWrite
	binary.LittleEndian.PutUint32(req[1:], addr)
	binary.LittleEndian.PutUint32(req[5:], value)

	resp, err := c.roundTrip(req[:])
	if err != nil {
		return err
	}
	if len(resp) != 5 || resp[0] != opWrite|opReply {
		return fmt.Errorf("probe: unexpected write reply % x", resp)
	}
	if got := binary.LittleEndian.Uint32(resp[1:]); got != value {
		return fmt.Errorf("probe: write readback %#08x, sent %#08x", got, value)
	}
	return nil
}

// Handler serves the firmware side of the protocol against a word-granular
// memory. It exists so the host tools can be exercised end to end without
// a target attached.
type Handler struct {
	ReadWordFn  func(addr uint32) (uint32, bool)
	WriteWordFn func(addr, value uint32) bool
}

// ServeOne reads one request frame from r, executes it and writes the
// reply frame to w.
func (h *Handler) ServeOne(r io.Reader, w io.Writer) error {
	var buf [frameLengthMax]byte
	if _, err := io.ReadFull(r, buf[:frameHeaderSize]); err != nil {
		return err
	}
	total := int(buf[1])
	if total < frameLengthMin || total > frameLengthMax {
		return ErrShortFrame
	}
	if _, err := io.ReadFull(r, buf[frameHeaderSize:total]); err != nil {
		return err
	}
	req, err := decodeFrame(buf[:total])
	if err != nil {
		return err
	}

	var resp [5]byte
	switch {
	case len(req) == 5 && req[0] == opRead:
		addr := binary.LittleEndian.Uint32(req[1:])
		v, ok := h.ReadWordFn(addr)
		if !ok {
			return fmt.Errorf("probe: read of unmapped address %#08x", addr)
		}
		resp[0] = opRead | opReply
		binary.LittleEndian.PutUint32(resp[1:], v)
	case len(req) == 9 && req[0] == opWrite:
		addr := binary.LittleEndian.Uint32(req[1:])
		v := binary.LittleEndian.Uint32(req[5:])
		if !h.WriteWordFn(addr, v) {
			return fmt.Errorf("probe: write to unmapped address %#08x", addr)
		}
		resp[0] = opWrite | opReply
		binary.LittleEndian.PutUint32(resp[1:], v)
	default:
		return fmt.Errorf("probe: malformed request % x", req)
	}

	f, err := encodeFrame(resp[:])
	if err != nil {
		return err
	}
	_, err = w.Write(f)
	return err
}
