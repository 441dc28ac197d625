package colors

import (
	"image/color"
)

// Color3 is a linear-light RGB color with float64 components.
// Components are nominally in [0,1] but high-dynamic-range values
// above 1 are preserved by all arithmetic.
type Color3 struct {
	R, G, B float64
}

func New(r, g, b float64) Color3 {
	return Color3{R: r, G: g, B: b}
}

func White() Color3 {
	return Color3{R: 1, G: 1, B: 1}
}

func Black() Color3 {
	return Color3{}
}

// Add returns c + o (component-wise).
func (c Color3) Add(o Color3) Color3 {
	return Color3{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns c - o (component-wise).
func (c Color3) Sub(o Color3) Color3 {
	return Color3{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns c * o (component-wise).
func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c * s (scalar).
func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

// Div returns c / s (scalar). Division by zero propagates Inf/NaN,
// same as plain float division.
func (c Color3) Div(s float64) Color3 {
	return Color3{c.R / s, c.G / s, c.B / s}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color3) Mix(o Color3, t float64) Color3 {
	return Color3{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
	}
}

// Luma returns the mean of the three channels.
func (c Color3) Luma() float64 {
	return (c.R + c.G + c.B) / 3.0
}

// Clamp01 clamps each component into [0,1].
func (c Color3) Clamp01() Color3 {
	return Color3{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// FromStandardColor converts any stdlib color to a linear Color3,
// dropping alpha. Premultiplied channels are divided back out.
func FromStandardColor(c color.Color) Color3 {
	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return Color3{}
	}

	invA := float64(0xFFFF) / float64(a16)
	return Color3{
		R: float64(r16) * invA / 65535.0,
		G: float64(g16) * invA / 65535.0,
		B: float64(b16) * invA / 65535.0,
	}
}

func From8BitRgb(r, g, b byte) Color3 {
	return Color3{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// ToNRGBA returns (R,G,B) as 0..255 integers with full alpha
// (truncates toward zero).
func (c Color3) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		255,
	}
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	y := 255.0 * clamp01(x)
	if y < 0 {
		y = 0
	}
	if y > 255 {
		y = 255
	}
	return uint8(y)
}
