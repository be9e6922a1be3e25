// Package wire implements the fixed-layout binary packet encoding shared by
// every outgoing message: a forward-only cursor over a pre-sized buffer,
// explicit little-endian integers, and length-prefixed strings.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Writer is a forward cursor over a pre-sized byte buffer. Every write
// advances pos and panics if the write would exceed the declared capacity —
// callers size the buffer to an encoder's declared maximum up front, so an
// overrun means the maximum was miscalculated, not that the input was bad.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter allocates a Writer over a buffer of exactly size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.pos }

// Cap returns the writer's declared capacity.
func (w *Writer) Cap() int { return len(w.buf) }

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

func (w *Writer) reserve(width int) []byte {
	if w.pos+width > len(w.buf) {
		panic(fmt.Sprintf("wire: writer overrun: pos=%d width=%d cap=%d", w.pos, width, len(w.buf)))
	}
	b := w.buf[w.pos : w.pos+width]
	w.pos += width
	return b
}

// Bool writes a single byte: 0 for false, 1 for true.
func (w *Writer) Bool(v bool) {
	b := w.reserve(1)
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

// I8 writes a signed byte.
func (w *Writer) I8(v int8) {
	b := w.reserve(1)
	b[0] = byte(v)
}

// U8 writes an unsigned byte.
func (w *Writer) U8(v uint8) {
	b := w.reserve(1)
	b[0] = v
}

// I16 writes a signed 16-bit little-endian integer.
func (w *Writer) I16(v int16) {
	b := w.reserve(2)
	binary.LittleEndian.PutUint16(b, uint16(v))
}

// U16 writes an unsigned 16-bit little-endian integer.
func (w *Writer) U16(v uint16) {
	b := w.reserve(2)
	binary.LittleEndian.PutUint16(b, v)
}

// I32 writes a signed 32-bit little-endian integer.
func (w *Writer) I32(v int32) {
	b := w.reserve(4)
	binary.LittleEndian.PutUint32(b, uint32(v))
}

// U32 writes an unsigned 32-bit little-endian integer.
func (w *Writer) U32(v uint32) {
	b := w.reserve(4)
	binary.LittleEndian.PutUint32(b, v)
}

// I64 writes a signed 64-bit little-endian integer.
func (w *Writer) I64(v int64) {
	b := w.reserve(8)
	binary.LittleEndian.PutUint64(b, uint64(v))
}

// U64 writes an unsigned 64-bit little-endian integer.
func (w *Writer) U64(v uint64) {
	b := w.reserve(8)
	binary.LittleEndian.PutUint64(b, v)
}

// Zero writes count zero bytes. Equivalent to count calls to U8(0).
func (w *Writer) Zero(count int) {
	b := w.reserve(count)
	for i := range b {
		b[i] = 0
	}
}

// SizedString writes a u16 length prefix followed by the raw bytes of s.
// No NUL terminator, no sanitization — the caller-supplied length is
// authoritative (used by callers that need a length distinct from len(s),
// e.g. padding to a fixed field).
func (w *Writer) SizedString(size uint16, s string) {
	w.U16(size)
	b := w.reserve(int(size))
	n := copy(b, s)
	for i := n; i < len(b); i++ {
		b[i] = 0
	}
}

// String writes s with its own length as the u16 prefix.
func (w *Writer) String(s string) {
	w.SizedString(uint16(len(s)), s)
}

// RawBytes copies data verbatim.
func (w *Writer) RawBytes(data []byte) {
	b := w.reserve(len(data))
	copy(b, data)
}

// Opcode writes a u16 little-endian opcode. By convention every packet
// begins with one.
func (w *Writer) Opcode(op uint16) {
	w.U16(op)
}
