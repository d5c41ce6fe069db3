package writer

// Writer packs bits most significant bit first, mirroring reader.Reader.
// It exists to build telemetry fixtures.
type Writer struct {
	Buf []byte
	pos int
}

func NewWriter() Writer {
	return Writer{
		Buf: []byte{},
	}
}

func (w *Writer) Pos() int {
	return w.pos
}

func (w *Writer) WriteBit(bit bool) {
	if w.pos&7 == 0 {
		w.Buf = append(w.Buf, 0)
	}
	if bit {
		w.Buf[w.pos>>3] |= 1 << (7 - (w.pos & 7))
	}
	w.pos++
}

func (w *Writer) WriteFixed(n int, value uint) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(value>>i&1 == 1)
	}
}

func (w *Writer) WriteTally(value uint) {
	for range value {
		w.WriteBit(true)
	}
	w.WriteBit(false)
}

// WriteFooter writes value in the smallest size class that can hold it.
func (w *Writer) WriteFooter(value uint) {
	// the size class is derived from the position after the selector
	free := (8 - ((w.pos + 2) & 7)) & 7

	for selector := uint(0); selector < 4; selector++ {
		size := int(selector<<3) | free
		var minimum uint
		for f := free; f < size; f += 8 {
			minimum += 1 << f
		}

		if value >= minimum && value-minimum < 1<<size {
			w.WriteFixed(2, selector)
			w.WriteFixed(size, value-minimum)
			return
		}
	}

	panic("footer value out of range")
}

// Align pads with zero bits up to the next byte boundary.
func (w *Writer) Align() {
	for w.pos&7 != 0 {
		w.WriteBit(false)
	}
}
