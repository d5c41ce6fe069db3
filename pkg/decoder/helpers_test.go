package decoder

import (
	"github.com/rejdeboer/tagpro-telemetry/pkg/writer"
)

type bitStream struct {
	w writer.Writer
}

func newStream() *bitStream {
	return &bitStream{w: writer.NewWriter()}
}

func (s *bitStream) bits(bits ...int) *bitStream {
	for _, b := range bits {
		s.w.WriteBit(b == 1)
	}
	return s
}

func (s *bitStream) tally(n uint) *bitStream {
	s.w.WriteTally(n)
	return s
}

func (s *bitStream) fixed(n int, v uint) *bitStream {
	s.w.WriteFixed(n, v)
	return s
}

func (s *bitStream) footer(v uint) *bitStream {
	s.w.WriteFooter(v)
	return s
}

func (s *bitStream) bytes() []byte {
	return s.w.Buf
}
