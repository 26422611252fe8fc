package bmp

import "errors"

var (
	// ErrIO reports a file that cannot be opened or written, or a stream
	// shorter than its headers declare.
	ErrIO = errors.New("bmp: i/o error")

	// ErrFormat reports a file that is not a 24-bit uncompressed bitmap.
	ErrFormat = errors.New("bmp: unsupported format")

	// ErrDimensions reports a non-positive or oversized width or height.
	ErrDimensions = errors.New("bmp: invalid dimensions")
)
