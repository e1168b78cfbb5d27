// Package imagergb565 provides a 16-bit R5G6B5 image format for the SSD1331 display controller.
//
// The SSD1331 OLED controller works with 65k colors: each pixel is a 16-bit
// value packed as 5 bits red, 6 bits green and 5 bits blue, sent high byte
// first over the bus.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0      1
//	Values: 0xF800 0x07E0 (pure red, pure green)
//	Bytes:  0xF8 0x00 0x07 0xE0
//
// This package provides:
//
// - RGB565: A color type representing a packed 16-bit color
// - RGB565Model: A color model for converting standard Go colors to RGB565
// - Image: An image.Image and draw.Image implementation matching the wire format
//
// Example usage:
//
//	// Create a 96x64 image
//	img := imagergb565.NewImage(image.Rect(0, 0, 96, 64))
//
//	// Set a pixel to pure green
//	img.SetRGB565(10, 20, imagergb565.New(0, 255, 0))
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(imagergb565.New(255, 0, 0)), image.Point{}, draw.Src)
package imagergb565
