package ssd1331

import (
	"errors"

	"github.com/flavioheleno/ssd1331/imagergb565"
)

// The SSD1331 has a built-in graphic acceleration engine that draws lines
// and rectangles directly into display RAM. These operations take physical
// panel coordinates, bypass the frame buffer entirely and are overwritten by
// the next Flush.

// accelColor splits a packed RGB565 color into the three 6-bit channel bytes
// (red, green, blue) used by the acceleration commands.
func accelColor(c imagergb565.RGB565) (byte, byte, byte) {
	r := byte(c>>10) & 0x3E
	g := byte(c>>5) & 0x3F
	b := byte(c<<1) & 0x3E
	return r, g, b
}

// DrawLine draws a line between two physical panel coordinates using the
// acceleration engine.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c imagergb565.RGB565) error {
	if d.halted {
		return errHalted
	}
	if !inPanel(x0, y0) || !inPanel(x1, y1) {
		return errors.New("ssd1331: line endpoint out of range")
	}

	r, g, b := accelColor(c)
	return d.sendCommands([]byte{
		0x21, // Draw line
		byte(x0), byte(y0),
		byte(x1), byte(y1),
		r, g, b,
	})
}

// DrawRect draws a rectangle between two physical panel corners using the
// acceleration engine. fill is only honored after EnableFill(true).
func (d *Dev) DrawRect(x0, y0, x1, y1 int, line, fill imagergb565.RGB565) error {
	if d.halted {
		return errHalted
	}
	if !inPanel(x0, y0) || !inPanel(x1, y1) {
		return errors.New("ssd1331: rectangle corner out of range")
	}

	lr, lg, lb := accelColor(line)
	fr, fg, fb := accelColor(fill)
	return d.sendCommands([]byte{
		0x22, // Draw rectangle
		byte(x0), byte(y0),
		byte(x1), byte(y1),
		lr, lg, lb,
		fr, fg, fb,
	})
}

// EnableFill enables or disables filling of rectangles drawn with DrawRect.
func (d *Dev) EnableFill(on bool) error {
	if d.halted {
		return errHalted
	}
	fill := byte(0x00)
	if on {
		fill = 0x01
	}
	return d.sendCommands([]byte{0x26, fill})
}

// inPanel reports whether (x, y) is a valid physical panel coordinate.
func inPanel(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// ScrollSpeed defines the horizontal scroll time interval.
type ScrollSpeed byte

const (
	// Scroll intervals (in display refresh frames)
	Speed6Frames   ScrollSpeed = 0x00
	Speed10Frames  ScrollSpeed = 0x01
	Speed100Frames ScrollSpeed = 0x02
	Speed200Frames ScrollSpeed = 0x03
)

// Scroll configures and activates hardware scrolling. Each interval the
// rows startRow through startRow+numRows-1 shift by colOffset columns and
// the whole frame shifts by rowOffset rows. Rows are physical.
func (d *Dev) Scroll(colOffset, startRow, numRows, rowOffset byte, speed ScrollSpeed) error {
	if d.halted {
		return errHalted
	}
	if int(startRow) >= Height || int(startRow)+int(numRows) > Height {
		return errors.New("ssd1331: scroll row out of range")
	}
	if int(colOffset) >= Width {
		return errors.New("ssd1331: scroll column offset out of range")
	}

	return d.sendCommands([]byte{
		0x27, // Scroll setup
		colOffset,
		startRow,
		numRows,
		rowOffset,
		byte(speed),
		0x2F, // Activate scroll
	})
}

// StopScroll stops all scrolling and resets the display to normal operation.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errHalted
	}
	return d.sendCommand(0x2E) // Deactivate scroll
}
