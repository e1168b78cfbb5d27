package imagergb565

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPacking(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB565
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"yellow", 255, 255, 0, 0xFFE0},
		{"truncated channels", 0x07, 0x03, 0x07, 0x0000}, // Below channel precision
		{"mid gray", 0x80, 0x80, 0x80, 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("New(%d, %d, %d) = 0x%04X, want 0x%04X", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", 0x0000, 0x0000, 0x0000, 0x0000},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0x0000, 0x0000},
		{"green", 0x07E0, 0x0000, 0xFFFF, 0x0000},
		{"blue", 0x001F, 0x0000, 0x0000, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"rgb565 passthrough", RGB565(0x1234), 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"red rgba", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, 0xF800},
		{"green rgba", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, 0x07E0},
		{"blue rgba", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, 0x001F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGB565Model.Convert(tt.input).(RGB565)
			if result != tt.want {
				t.Errorf("RGB565Model.Convert(%v) = 0x%04X, want 0x%04X", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"96x64", image.Rect(0, 0, 96, 64), 192, 12288},
		{"4x2", image.Rect(0, 0, 4, 2), 8, 16},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageByteOrder(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 1))

	img.SetRGB565(0, 0, 0xF800)
	img.SetRGB565(1, 0, 0x07E0)

	// Big-endian layout: high byte first
	want := []byte{0xF8, 0x00, 0x07, 0xE0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestImageSetGet(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 2))

	testCases := [][4]RGB565{
		{0x0000, 0x1111, 0x2222, 0x3333},
		{0xFFFF, 0xEEEE, 0xDDDD, 0xCCCC},
	}

	for y, row := range testCases {
		for x, val := range row {
			img.SetRGB565(x, y, val)
		}
	}

	// Verify round-trip
	for y, row := range testCases {
		for x, wantVal := range row {
			if result := img.RGB565At(x, y); result != wantVal {
				t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0x%04X", x, y, result, wantVal)
			}
		}
	}
}

func TestImageAt(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))
	img.SetRGB565(0, 0, 0x07E0)

	c := img.At(0, 0)
	rgb, ok := c.(RGB565)
	if !ok {
		t.Errorf("At(0, 0) returned %T, want RGB565", c)
	}
	if rgb != 0x07E0 {
		t.Errorf("At(0, 0) = 0x%04X, want 0x07E0", rgb)
	}
}

func TestImageSet(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))

	// Set with color.Color interface
	img.Set(0, 0, RGB565(0x1234))
	if result := img.RGB565At(0, 0); result != 0x1234 {
		t.Errorf("After Set(0, 0, 0x1234), RGB565At(0, 0) = 0x%04X, want 0x1234", result)
	}

	// Convert from standard color
	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) // White
	if result := img.RGB565At(1, 0); result != 0xFFFF {
		t.Errorf("After Set(1, 0, color.White), RGB565At(1, 0) = 0x%04X, want 0xFFFF", result)
	}
}

func TestImageColorModel(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))
	if img.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
}

func TestImageBounds(t *testing.T) {
	rect := image.Rect(10, 20, 14, 24)
	img := NewImage(rect)
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))

	// Out of bounds reads should return zero
	if result := img.RGB565At(-1, 0); result != 0 {
		t.Errorf("RGB565At(-1, 0) = 0x%04X, want 0 (out of bounds)", result)
	}
	if result := img.RGB565At(0, -1); result != 0 {
		t.Errorf("RGB565At(0, -1) = 0x%04X, want 0 (out of bounds)", result)
	}
	if result := img.RGB565At(4, 0); result != 0 {
		t.Errorf("RGB565At(4, 0) = 0x%04X, want 0 (out of bounds)", result)
	}

	// Out of bounds writes should do nothing
	img.SetRGB565(-1, 0, 0xFFFF)
	img.SetRGB565(0, -1, 0xFFFF)
	img.SetRGB565(4, 0, 0xFFFF)
	img.Set(0, 4, color.White)

	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds write altered the pixel data")
		}
	}
}

func TestImageOffsetRect(t *testing.T) {
	// Test with offset rectangle (min != 0,0)
	rect := image.Rect(100, 50, 104, 52)
	img := NewImage(rect)

	// Set pixel at absolute coordinates
	img.SetRGB565(100, 50, 0xABCD)

	// Verify read-back
	if result := img.RGB565At(100, 50); result != 0xABCD {
		t.Errorf("SetRGB565(100, 50, 0xABCD) then RGB565At(100, 50) = 0x%04X, want 0xABCD", result)
	}

	// Verify byte layout (0-based offset)
	if img.Pix[0] != 0xAB || img.Pix[1] != 0xCD {
		t.Errorf("Pix[0:2] = 0x%02X%02X, want 0xABCD", img.Pix[0], img.Pix[1])
	}
}

func TestImagePixOffset(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{7, 0, 14},
		{0, 1, 16}, // 16 bytes per row
		{3, 1, 22},
	}

	for _, tt := range tests {
		if offset := img.PixOffset(tt.x, tt.y); offset != tt.offset {
			t.Errorf("PixOffset(%d, %d) = %d, want %d", tt.x, tt.y, offset, tt.offset)
		}
	}
}
