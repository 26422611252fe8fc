// bmp package implements a 24 bit uncompressed bitmap codec
package bmp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/bmptool/internal/utils"
)

// Header is everything in a bitmap file that precedes the pixel array.
type Header struct {
	BFHeader BitmapFileHeader
	BIHeader BitmapInfoHeader
	Extra    []byte // Bytes between the info header and OffBits (larger DIB headers, gaps)
}

// NewHeader returns the headers of a fresh bottom-up 24 bit bitmap.
func NewHeader() *Header {
	return &Header{
		BFHeader: BitmapFileHeader{Type: Magic, OffBits: HeaderSize},
		BIHeader: BitmapInfoHeader{Size: InfoHeaderSize, Planes: 1, BitCount: 24},
	}
}

type BitmapImage struct {
	Filename string
	Header   *Header
	*Surface
}

// Decode reads a 24 bit uncompressed bitmap from r.
func Decode(r io.Reader) (*Header, *Surface, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, fmt.Errorf("%w: reading headers: %v", ErrIO, err)
	}

	var h Header
	if err := h.BFHeader.UnmarshalBinary(buf[:FileHeaderSize]); err != nil {
		return nil, nil, err
	}
	if h.BFHeader.Type != Magic {
		return nil, nil, fmt.Errorf("%w: provided file is not a bitmap (signature %q)", ErrFormat, h.BFHeader.Type[:])
	}

	// READ Info Header OR (more commonly) DIB Header!
	if err := h.BIHeader.UnmarshalBinary(buf[FileHeaderSize:]); err != nil {
		return nil, nil, err
	}

	// Support only 24bit uncompressed Bitmaps (common)
	if h.BIHeader.BitCount != 24 {
		return nil, nil, fmt.Errorf("%w: %d bits per pixel, only 24 is supported", ErrFormat, h.BIHeader.BitCount)
	}
	if h.BIHeader.Compression != 0 {
		return nil, nil, fmt.Errorf("%w: compression %d, only uncompressed is supported", ErrFormat, h.BIHeader.Compression)
	}

	width := int(h.BIHeader.Width)
	height := int(h.BIHeader.Height)
	if width <= 0 || height == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d image", ErrFormat, width, height)
	}
	orientation := BottomUp
	if height < 0 {
		orientation = TopDown
		height = -height // Abs(olute) Height
	}

	if h.BFHeader.OffBits < HeaderSize {
		return nil, nil, fmt.Errorf("%w: pixel offset %d lies inside the headers", ErrFormat, h.BFHeader.OffBits)
	}

	s, err := NewSurface(width, height)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	s.Orientation = orientation

	// Seek to Pixel Array (OffBits). Extra only grows as bytes actually arrive.
	if gap := int64(h.BFHeader.OffBits) - HeaderSize; gap > 0 {
		var extra bytes.Buffer
		if _, err := io.CopyN(&extra, r, gap); err != nil {
			return nil, nil, fmt.Errorf("%w: seeking to pixel data at %d: %v", ErrIO, h.BFHeader.OffBits, err)
		}
		h.Extra = extra.Bytes()
	}

	if _, err := io.ReadFull(r, s.Pix); err != nil {
		return nil, nil, fmt.Errorf("%w: reading %d bytes of pixel data: %v", ErrIO, len(s.Pix), err)
	}

	return &h, s, nil
}

// Encode writes h and s to w. The size fields, width and signed height of h
// are rewritten from s first.
func Encode(w io.Writer, h *Header, s *Surface) error {
	if h.BFHeader.OffBits < HeaderSize {
		return fmt.Errorf("%w: pixel offset %d lies inside the headers", ErrFormat, h.BFHeader.OffBits)
	}

	h.BIHeader.Width = int32(s.Width)
	h.BIHeader.Height = int32(s.Height)
	if s.Orientation == TopDown {
		h.BIHeader.Height = -h.BIHeader.Height
	}
	h.BIHeader.SizeImage = uint32(len(s.Pix))
	h.BFHeader.Size = h.BFHeader.OffBits + h.BIHeader.SizeImage

	fh, err := h.BFHeader.MarshalBinary()
	if err != nil {
		return err
	}
	ih, err := h.BIHeader.MarshalBinary()
	if err != nil {
		return err
	}

	// Extra is padded or cut to exactly fill the space up to OffBits
	gap := make([]byte, int(h.BFHeader.OffBits)-HeaderSize)
	copy(gap, h.Extra)

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)
	for _, chunk := range [][]byte{fh, ih, gap, s.Pix} {
		if _, err := bw.Write(chunk); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*BitmapImage, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	h, s, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &BitmapImage{Filename: filename, Header: h, Surface: s}, nil
}

// Saves the bitmap image onto local disk. A failed save leaves whatever
// was written so far in place.
func (b *BitmapImage) Save(filename string) error {
	newBitmap, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	if err := Encode(newBitmap, b.Header, b.Surface); err != nil {
		newBitmap.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	if err := newBitmap.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Print the bitmap in terminal. Use for small images only
func (b *BitmapImage) PrintBitmap(w io.Writer) {
	for y := 0; y < b.Height; y++ {
		row := b.displayRow(y)
		for x := 0; x < b.Width; x++ {
			p := b.At(x, row)
			fmt.Fprint(w, utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B)))
		}
		fmt.Fprintln(w)
	}
}

// Print the Metadata bitmap in terminal. (in human-readable format)
func (b *BitmapImage) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", b.Header.BFHeader.Size)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.Height)
	fmt.Fprintf(w, "Rows: \t\t%v\n", b.Orientation)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.Header.BIHeader.BitCount)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.Header.BFHeader.OffBits)
	fmt.Fprintf(w, "PixelCount: \t%v pixels\n", b.Width*b.Height)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", b.Stride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", b.Stride-b.Width*BytesPerPixel)
}
