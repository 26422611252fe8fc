// BMP-specific structs and their on-disk layout
package bmp

import (
	"encoding/binary"
	"fmt"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
)

// Magic is the file type marker of every bitmap ("BM").
var Magic = [2]byte{0x42, 0x4d}

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].
type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (negative = top-down)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// field is one entry of a fixed header layout: where a value lives and how
// many bytes it occupies. Values are little-endian.
type field struct {
	name   string
	offset int
	width  int
}

var fileHeaderLayout = []field{
	{"Type", 0, 2},
	{"Size", 2, 4},
	{"Reserved1", 6, 2},
	{"Reserved2", 8, 2},
	{"OffBits", 10, 4},
}

var infoHeaderLayout = []field{
	{"Size", 0, 4},
	{"Width", 4, 4},
	{"Height", 8, 4},
	{"Planes", 12, 2},
	{"BitCount", 14, 2},
	{"Compression", 16, 4},
	{"SizeImage", 20, 4},
	{"XPixelsPerM", 24, 4},
	{"YPixelsPerM", 28, 4},
	{"ColorsUsed", 32, 4},
	{"ColorsImportant", 36, 4},
}

// values returns pointers to the header fields in layout order.
func (h *BitmapFileHeader) values() []any {
	return []any{&h.Type, &h.Size, &h.Reserved1, &h.Reserved2, &h.OffBits}
}

func (h *BitmapInfoHeader) values() []any {
	return []any{
		&h.Size, &h.Width, &h.Height, &h.Planes, &h.BitCount, &h.Compression,
		&h.SizeImage, &h.XPixelsPerM, &h.YPixelsPerM, &h.ColorsUsed, &h.ColorsImportant,
	}
}

// MarshalBinary encodes the file header into its 14 byte form.
func (h *BitmapFileHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FileHeaderSize)
	return buf, put(buf, fileHeaderLayout, h.values())
}

// UnmarshalBinary decodes the first 14 bytes of data.
func (h *BitmapFileHeader) UnmarshalBinary(data []byte) error {
	if len(data) < FileHeaderSize {
		return fmt.Errorf("%w: file header needs %d bytes, got %d", ErrIO, FileHeaderSize, len(data))
	}
	return get(data, fileHeaderLayout, h.values())
}

// MarshalBinary encodes the info header into its 40 byte form.
func (h *BitmapInfoHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, InfoHeaderSize)
	return buf, put(buf, infoHeaderLayout, h.values())
}

// UnmarshalBinary decodes the first 40 bytes of data.
func (h *BitmapInfoHeader) UnmarshalBinary(data []byte) error {
	if len(data) < InfoHeaderSize {
		return fmt.Errorf("%w: info header needs %d bytes, got %d", ErrIO, InfoHeaderSize, len(data))
	}
	return get(data, infoHeaderLayout, h.values())
}

func put(buf []byte, layout []field, values []any) error {
	for i, f := range layout {
		b := buf[f.offset : f.offset+f.width]
		switch v := values[i].(type) {
		case *[2]byte:
			copy(b, v[:])
		case *uint16:
			binary.LittleEndian.PutUint16(b, *v)
		case *uint32:
			binary.LittleEndian.PutUint32(b, *v)
		case *int32:
			binary.LittleEndian.PutUint32(b, uint32(*v))
		default:
			return fmt.Errorf("bmp: field %s has unsupported type %T", f.name, v)
		}
	}
	return nil
}

func get(buf []byte, layout []field, values []any) error {
	for i, f := range layout {
		b := buf[f.offset : f.offset+f.width]
		switch v := values[i].(type) {
		case *[2]byte:
			copy(v[:], b)
		case *uint16:
			*v = binary.LittleEndian.Uint16(b)
		case *uint32:
			*v = binary.LittleEndian.Uint32(b)
		case *int32:
			*v = int32(binary.LittleEndian.Uint32(b))
		default:
			return fmt.Errorf("bmp: field %s has unsupported type %T", f.name, v)
		}
	}
	return nil
}
