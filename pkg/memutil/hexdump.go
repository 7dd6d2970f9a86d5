// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memutil contains the small memory helpers used by the debug shell:
// a hex/ASCII dumper, a pattern fill and power of two rounding.
//
// The raw address variants (DumpHex, MemFill, UnsafeBytes) do not validate
// anything. They exist so that arbitrary memory, including MMIO windows, can
// be inspected and poked while debugging. Handing them a bad address will
// crash the process. Be warned.
package memutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	txtOffset = "| Offset |"
	txtAscii  = "| ASCII |"

	// Bytes per group in both the header and the data rows
	groupSize = 8

	DefaultWidth = 16
)

// RowWidth coerces w to one of the supported row widths (8, 16 or 32).
func RowWidth(w int) int {
	switch w {
	case 8, 16, 32:
		return w
	}
	return DefaultWidth
}

// Header returns the column label line for the given row width, without line
// endings.
func Header(width int) string {
	width = RowWidth(width)
	b := []byte(txtOffset)
	for j := 0; j < width; j++ {
		if j > 0 && j%groupSize == 0 {
			b = append(b, ' ')
		}
		b = append(b, fmt.Sprintf(" %02X", j)...)
	}
	b = append(b, ' ')
	return string(b) + txtAscii
}

func isPrint(c byte) bool {
	return c >= ' ' && c < 0x7f
}

// Dump writes buf as an offset/hex/ASCII table to w. base is only used for
// the summary line.
func Dump(w io.Writer, base uintptr, buf []byte, width int) {
	width = RowWidth(width)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintf(bw, "\r\n%s\r\n", Header(width))
	fmt.Fprintf(bw, "== base address 0x%08X length %d ==\r\n", base, len(buf))

	for i := 0; i < len(buf); i += width {
		fmt.Fprintf(bw, "%08X: ", i)
		for j := 0; j < width; j++ {
			if j%groupSize == 0 {
				bw.WriteByte(' ')
			}
			if i+j < len(buf) {
				fmt.Fprintf(bw, "%02X ", buf[i+j])
			} else {
				bw.WriteString("   ")
			}
		}

		bw.WriteByte(' ')
		for j := 0; j < width && i+j < len(buf); j++ {
			c := buf[i+j]
			if !isPrint(c) {
				c = '.'
			}
			bw.WriteByte(c)
		}
		bw.WriteString("\r\n")
	}
}

// DumpHex dumps size bytes of raw memory starting at addr to stdout.
// The address is not checked.
func DumpHex(addr uintptr, size, width uint32) {
	Dump(os.Stdout, addr, UnsafeBytes(addr, int(size)), int(width))
}
