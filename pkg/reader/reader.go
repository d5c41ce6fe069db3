package reader

import (
	"encoding/base64"
)

// Reader reads a tagpro.eu telemetry blob bit by bit, most significant bit
// first. Reads past the end of the buffer yield zero bits.
type Reader struct {
	buf []byte
	pos int
}

func FromBuffer(buf []byte) Reader {
	return Reader{
		buf: buf,
		pos: 0,
	}
}

func FromBase64(s string) (Reader, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Reader{}, err
	}
	return FromBuffer(buf), nil
}

// End reports whether the cursor has reached the byte past the last one.
func (r *Reader) End() bool {
	return r.pos>>3 >= len(r.buf)
}

// Overrun reports whether bits past the end of the buffer have been consumed.
func (r *Reader) Overrun() bool {
	return r.pos > len(r.buf)<<3
}

func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) Len() int {
	return len(r.buf)
}

func (r *Reader) Reset() {
	r.pos = 0
}

func (r *Reader) ReadBit() uint {
	var bit uint
	if !r.End() {
		bit = uint(r.buf[r.pos>>3]>>(7-(r.pos&7))) & 1
	}
	r.pos++
	return bit
}

func (r *Reader) ReadBool() bool {
	return r.ReadBit() == 1
}

// ReadFixed reads an n-bit unsigned integer.
func (r *Reader) ReadFixed(n int) uint {
	var num uint
	for range n {
		num = num<<1 | r.ReadBit()
	}
	return num
}

// ReadTally reads a unary number: k one bits terminated by a zero bit.
func (r *Reader) ReadTally() uint {
	var num uint
	for r.ReadBool() {
		num++
	}
	return num
}

// ReadFooter reads a variable length number that ends on a byte boundary.
// A 2-bit selector picks the size class; the bits left before the next
// boundary are always part of the value, and every larger class starts where
// the previous one ends.
func (r *Reader) ReadFooter() uint {
	size := int(r.ReadFixed(2)) << 3
	free := (8 - (r.pos & 7)) & 7
	size |= free

	var minimum uint
	for free < size {
		minimum += 1 << free
		free += 8
	}

	return r.ReadFixed(size) + minimum
}
