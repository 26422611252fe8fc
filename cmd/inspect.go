package cmd

import (
	"io"

	"github.com/anas-shakeel/bmptool/internal/bmp"
)

// Info prints the headers and layout of a bitmap.
func Info(w io.Writer, filename string) error {
	bitmap, err := bmp.ReadBitmap(filename)
	if err != nil {
		return err
	}
	bitmap.PrintMetadata(w)
	return nil
}

// Preview draws a bitmap in the terminal with true-color blocks.
func Preview(w io.Writer, filename string) error {
	bitmap, err := bmp.ReadBitmap(filename)
	if err != nil {
		return err
	}
	bitmap.PrintBitmap(w)
	return nil
}
