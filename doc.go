// Package ssd1331 controls a SSD1331 color OLED display via SPI.
//
// The SSD1331 is a 65k-color OLED controller driving a fixed 96×64 panel.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit color, packed as 5 bits red, 6 bits green, 5 bits blue (R5G6B5)
// - Fixed 96×64 pixel matrix
// - Four fixed rotations (0°, 90°, 180°, 270°), chosen at construction
// - Hardware-accelerated line and rectangle drawing
// - Hardware scrolling
// - Adjustable per-channel contrast
// - Display inversion
//
// # Hardware Connection
//
// Connect the SSD1331 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/ssd1331"
//		"github.com/flavioheleno/ssd1331/imagergb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := ssd1331.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// Optional: hardware reset via a GPIO, then configure the controller
//		dev.Reset(gpioreg.ByName("GPIO24"), nil)
//		dev.Init()
//
//		// Draw a horizontal red-to-black gradient
//		for y := 0; y < 64; y++ {
//			for x := 0; x < 96; x++ {
//				dev.SetPixel(x, y, imagergb565.New(uint8(255-x*2), 0, 0))
//			}
//		}
//
//		// Transmit the frame
//		dev.Flush()
//	}
//
// # Life Cycle
//
// NewSPI only configures the SPI port and allocates the frame buffer; no
// traffic reaches the controller. The expected order is:
//
//	dev, err := ssd1331.NewSPI(spiBus, dcPin, opts)
//	dev.Reset(rstPin, nil) // optional, requires a wired RES pin
//	dev.Init()
//	// ... SetPixel / Draw / Flush ...
//
// Calling SetPixel or Flush before Init is not rejected, but the controller
// output is undefined until the initialization sequence has run.
//
// # Rotation
//
// The logical coordinate space can be rotated in 90° steps. Rotation is
// resolved in the frame buffer, so the full frame is always streamed in the
// panel's native order. At 90° and 270° the logical width and height swap:
//
//	dev, _ := ssd1331.NewSPI(spiBus, dcPin, &ssd1331.Opts{
//		Rotation: ssd1331.Rotation90,
//	})
//	dev.Bounds() // image.Rect(0, 0, 64, 96)
//
// Rotation is fixed for the lifetime of the device.
//
// # Drawing
//
// Pixel writes only mutate the in-memory frame buffer; Flush transmits the
// whole frame in one transfer. Out-of-range coordinates passed to SetPixel,
// including negative ones, are silently dropped, so the output of clipping
// renderers can be fed in directly. Three integration styles are supported:
//
//	// Direct pixel access
//	dev.SetPixel(10, 20, imagergb565.New(0, 255, 0))
//
//	// Standard library images via display.Drawer
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
//	// A lazy point stream from an external renderer
//	dev.DrawPixels(renderer.Pixels())
//
// # Accelerated Drawing
//
// The controller can draw lines and rectangles directly into display RAM,
// bypassing the frame buffer:
//
//	dev.EnableFill(true)
//	dev.DrawRect(0, 0, 95, 63, line, fill)
//	dev.DrawLine(0, 0, 95, 63, line)
//
// These take physical panel coordinates and their output is overwritten by
// the next Flush.
//
// # Hardware Scrolling
//
//	// Shift rows 0-63 left by one column every 10 frames
//	dev.Scroll(1, 0, 64, 0, ssd1331.Speed10Frames)
//	time.Sleep(5 * time.Second)
//
//	// Stop scrolling
//	dev.StopScroll()
//
// # Errors
//
// Every fallible operation returns either a *PinError (a control GPIO could
// not be driven) or a *CommError (the SPI transfer failed), wrapping the
// underlying periph.io error. Nothing is retried internally.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1331_1.2.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package ssd1331
