// Package imagergb565 provides a 16-bit R5G6B5 image format optimized for the SSD1331 display.
//
// The SSD1331 stores pixels as 16-bit values with 5 bits red, 6 bits green and
// 5 bits blue, transmitted high byte first. This package provides the RGB565
// color type and the Image implementation the driver streams to the panel.
package imagergb565

import (
	"image"
	"image/color"
)

// RGB565 represents a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// New returns the RGB565 color closest to the given 8-bit channel values.
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA converts the RGB565 color to standard RGBA.
// Each channel is expanded to 16 bits by bit replication.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	// 5-bit and 6-bit channels scaled to 8 bits, then doubled up to 16.
	r8 := uint32(c>>11) & 0x1F
	g8 := uint32(c>>5) & 0x3F
	b8 := uint32(c) & 0x1F
	r8 = r8<<3 | r8>>2
	g8 = g8<<2 | g8>>4
	b8 = b8<<3 | b8>>2
	return r8<<8 | r8, g8<<8 | g8, b8<<8 | b8, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if rgb, ok := c.(RGB565); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values; keep the top 5/6/5 bits.
	return RGB565(r&0xF800 | (g >> 5 & 0x07E0) | b>>11)
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// Image is an in-memory R5G6B5 image. Each pixel occupies two bytes in Pix,
// high byte first, matching the order the SSD1331 expects on the wire.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, big-endian)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new RGB565 image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565(0)
	}
	n := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[n])<<8 | uint16(p.Pix[n+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.setRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.setRGB565(x, y, c)
}

func (p *Image) setRGB565(x, y int, c RGB565) {
	n := p.PixOffset(x, y)
	p.Pix[n] = byte(c >> 8)
	p.Pix[n+1] = byte(c)
}

// PixOffset returns the byte offset in Pix of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
