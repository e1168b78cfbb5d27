// Package ssd1331 controls a SSD1331 color OLED display via SPI.
//
// The SSD1331 is a 65k-color OLED controller driving a 96x64 panel.
//
// See the examples for how to use this package.
package ssd1331

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"time"

	"github.com/flavioheleno/ssd1331/imagergb565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Physical panel dimensions in pixels. The SSD1331 drives a fixed 96x64
// matrix; logical dimensions depend on the configured rotation.
const (
	Width  = 96
	Height = 64
)

// Rotation is the fixed logical-to-physical coordinate remapping applied to
// all pixel operations. It is set at construction and cannot change for the
// lifetime of the device.
type Rotation uint8

const (
	Rotation0   Rotation = iota // No rotation
	Rotation90                  // 90° clockwise
	Rotation180                 // 180°
	Rotation270                 // 270° clockwise
)

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case Rotation90:
		return "90°"
	case Rotation180:
		return "180°"
	case Rotation270:
		return "270°"
	default:
		return "0°"
	}
}

// Opts is the configuration for the SSD1331 display.
type Opts struct {
	// Rotation of the logical coordinate space relative to the panel.
	Rotation Rotation
}

// Dev is the device handle for the SSD1331 display.
type Dev struct {
	// Communication
	c  conn.Conn   // SPI connection
	dc gpio.PinOut // Data/Command pin

	// Display geometry
	rotation Rotation

	// Frame buffer in physical panel coordinates
	buffer *imagergb565.Image

	// State
	halted bool
}

var errHalted = errors.New("ssd1331: halted")

// NewSPI creates a new SSD1331 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// No display traffic happens here: the frame buffer is allocated
// zero-initialized and the controller is left untouched. Call Reset
// (optional) and Init before drawing.
//
// opts can be nil to use defaults (no rotation).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Rotation > Rotation270 {
		return nil, errors.New("ssd1331: invalid rotation")
	}

	// SSD1331 supports up to 6MHz guaranteed; most modules run fine at 10MHz.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return &Dev{
		c:        c,
		dc:       dc,
		rotation: opts.Rotation,
		buffer:   imagergb565.NewImage(image.Rect(0, 0, Width, Height)),
	}, nil
}

// Reset drives the reset pin through the controller's hardware reset pulse:
// high, a 1ms settle, low for 10ms, then high again. It does not touch the
// bus; the controller must be re-initialized with Init afterwards.
//
// sleep provides the pulse-width delays. If nil, time.Sleep is used.
func (d *Dev) Reset(rst gpio.PinOut, sleep func(time.Duration)) error {
	if sleep == nil {
		sleep = time.Sleep
	}

	if err := rst.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	sleep(1 * time.Millisecond)

	if err := rst.Out(gpio.Low); err != nil {
		return &PinError{Err: err}
	}
	sleep(10 * time.Millisecond)

	if err := rst.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	return nil
}

// Init sends the initialization sequence to the display, leaving it on and
// in normal display mode. The sequence is fixed and can be re-issued at any
// time, e.g. after a hardware reset.
//
// If any command fails the sequence aborts with the first error and the
// controller is left partially configured; rerun Init before further use.
func (d *Dev) Init() error {
	cmds := []byte{
		0xAE,       // Display OFF
		0xA0, 0x60, // Remap and color depth: 65k color, horizontal increment
		0xA1, 0x00, // Display start line
		0xA2, 0x00, // Display offset
		0xA4,       // Normal display mode
		0xA8, 0x3F, // MUX ratio 1/64
		0xAD, 0x8E, // Master configuration
		0xB0, 0x0B, // Power save mode
		0xB1, 0x31, // Phase 1 and 2 period adjustment
		0xB3, 0xF0, // Clock divider and oscillator frequency
		0x8A, 0x64, // Pre-charge speed A
		0x8B, 0x78, // Pre-charge speed B
		0x8C, 0x64, // Pre-charge speed C
		0xBB, 0x3A, // Pre-charge voltage
		0xBE, 0x3E, // VCOMH deselect level
		0x87, 0x06, // Master current control
		0x81, 0x91, // Contrast for color A
		0x82, 0x50, // Contrast for color B
		0x83, 0x7D, // Contrast for color C
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Turn display ON
	if err := d.sendCommand(0xAF); err != nil {
		return err
	}

	d.halted = false
	return nil
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return &PinError{Err: err}
	}
	if err := d.c.Tx(cmds, nil); err != nil {
		return &CommError{Err: err}
	}
	return nil
}

// sendData sends a slice of pixel data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	if err := d.c.Tx(data, nil); err != nil {
		return &CommError{Err: err}
	}
	return nil
}

// SetPixel sets the pixel at the logical coordinate (x, y). Coordinates
// outside the logical bounds, including negative values, are silently
// dropped: renderers may emit clipped primitives without pre-validating
// every point. The change is buffered; call Flush to transmit it.
func (d *Dev) SetPixel(x, y int, c imagergb565.RGB565) {
	b := d.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	px, py := d.transform(x, y)
	d.buffer.SetRGB565(px, py, c)
}

// transform maps an in-bounds logical coordinate to the physical panel
// coordinate for the active rotation.
func (d *Dev) transform(x, y int) (int, int) {
	switch d.rotation {
	case Rotation90:
		return Width - 1 - y, x
	case Rotation180:
		return Width - 1 - x, Height - 1 - y
	case Rotation270:
		return y, Height - 1 - x
	default:
		return x, y
	}
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return imagergb565.RGB565Model
}

// Bounds returns the image bounds of the display in logical coordinates.
// Width and height are swapped at Rotation90 and Rotation270.
func (d *Dev) Bounds() image.Rectangle {
	if d.rotation == Rotation90 || d.rotation == Rotation270 {
		return image.Rect(0, 0, Height, Width)
	}
	return image.Rect(0, 0, Width, Height)
}

// Rotation returns the rotation fixed at construction.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// Clear resets every pixel in the frame buffer to black. Call Flush for any
// effect on the panel.
func (d *Dev) Clear() {
	clear(d.buffer.Pix)
}

// Flush transmits the entire frame buffer to the display.
//
// The addressing window is reset to the full panel before the transfer, so a
// prior partial or failed transfer cannot offset this one. On a bus failure
// partway through, the panel and the buffer may be left inconsistent until
// the next successful Flush; nothing is retried.
func (d *Dev) Flush() error {
	if d.halted {
		return errHalted
	}

	if err := d.sendCommands([]byte{
		0x15, 0, Width - 1, // Column address
		0x75, 0, Height - 1, // Row address
	}); err != nil {
		return err
	}

	return d.sendData(d.buffer.Pix)
}

// Write writes a raw frame to the display. pixels must be a full frame in
// physical row-major R5G6B5 big-endian layout, exactly Width*Height*2 bytes.
// The frame buffer is updated and flushed in one call.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer.Pix) {
		return 0, errors.New("ssd1331: invalid buffer size")
	}
	copy(d.buffer.Pix, pixels)
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the logical coordinate space of the display.
// It implements the display.Drawer interface from periph.io. The result is
// buffered; call Flush to transmit it.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}

	for y := 0; y < dst.Dy(); y++ {
		for x := 0; x < dst.Dx(); x++ {
			c := imagergb565.RGB565Model.Convert(src.At(sp.X+x, sp.Y+y)).(imagergb565.RGB565)
			d.SetPixel(dst.Min.X+x, dst.Min.Y+y, c)
		}
	}
	return nil
}

// DrawPixels consumes a stream of (point, color) pairs, typically produced
// lazily by an external renderer, and plots each through SetPixel.
// Out-of-range points are dropped like any other out-of-range write; the
// stream does not need to be pre-clipped.
func (d *Dev) DrawPixels(pixels iter.Seq2[image.Point, color.Color]) {
	for pt, c := range pixels {
		d.SetPixel(pt.X, pt.Y, imagergb565.RGB565Model.Convert(c).(imagergb565.RGB565))
	}
}

// SetContrast sets the per-channel contrast (0-255 each).
func (d *Dev) SetContrast(r, g, b byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommands([]byte{0x81, r, 0x82, g, 0x83, b})
}

// Invert inverts the display colors, or restores normal display mode.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(0xA4) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// AllOn drives every pixel fully on, or every pixel off, regardless of the
// display RAM contents. Use Invert(false) to resume normal display mode.
func (d *Dev) AllOn(on bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(0xA6) // Entire display off
	if on {
		mode = 0xA5 // Entire display on
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized with Init.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	b := d.Bounds()
	return fmt.Sprintf("ssd1331.Dev{%dx%d}", b.Dx(), b.Dy())
}
