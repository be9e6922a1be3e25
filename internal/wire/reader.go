package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader is the decode-side counterpart to Writer, used by the inbound
// opcode dispatch (internal/net/packet) and by round-trip tests. Unlike Writer it never panics on overrun — it
// returns an error, since a malformed frame here is attacker input, not a
// server-side sizing bug.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps data for sequential decoding from the start.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) take(width int) ([]byte, error) {
	if r.pos+width > len(r.buf) {
		return nil, fmt.Errorf("wire: reader underrun: pos=%d width=%d len=%d", r.pos, width, len(r.buf))
	}
	b := r.buf[r.pos : r.pos+width]
	r.pos += width
	return b, nil
}

func (r *Reader) Bool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) I8() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) I16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) I32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) I64() (int64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Skip advances the cursor without interpreting the bytes.
func (r *Reader) Skip(count int) error {
	_, err := r.take(count)
	return err
}

// SizedString reads a u16 length prefix followed by that many raw bytes.
func (r *Reader) SizedString() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FixedString reads width raw bytes and trims trailing NUL padding — the
// counterpart to a NUL-padded fixed field written with RawBytes and Zero.
// Unlike SizedString it reads no u16 length prefix.
func (r *Reader) FixedString(width int) (string, error) {
	b, err := r.take(width)
	if err != nil {
		return "", err
	}
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end]), nil
}

// RawBytes reads count raw bytes verbatim — the counterpart to
// Writer.RawBytes.
func (r *Reader) RawBytes(count int) ([]byte, error) {
	return r.take(count)
}

// Rest returns every unread byte without advancing the cursor further than
// the end — used for trailing opaque payloads (a client movement path)
// whose length is the frame length itself, not a field within it.
func (r *Reader) Rest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}
