// Package decoder decodes the bit-packed blobs of tagpro.eu match files:
// player event streams, map tiles and team splats.
//
// Every decoder is lenient by default: reading past the end of a blob yields
// zero bits, so truncated input decodes to an empty tail instead of failing.
// WithStrict turns the detectable cases into ErrMalformedStream.
package decoder

import (
	"errors"
	"fmt"
)

var ErrMalformedStream = errors.New("malformed stream")

type options struct {
	strict   bool
	maxTiles int
}

type Option func(*options)

func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Strict sets strict mode from a configuration flag.
func Strict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithMaxTiles bounds the number of tiles DecodeMap produces. A map blob
// asking for more is malformed, in lenient mode too: one footer can describe
// billions of tiles.
func WithMaxTiles(n int) Option {
	return func(o *options) {
		o.maxTiles = n
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedStream, fmt.Sprintf(format, args...))
}
