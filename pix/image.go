package pix

import (
	"fmt"
	"image"

	"github.com/softrender/miptex/colors"
)

// Image is a row-major 2D grid of linear-light colors. The backing
// slice always holds exactly W*H texels; a zero-area image (W or H
// zero) is valid and owns no texels.
type Image struct {
	W, H int
	data []colors.Color3
}

// New returns a zero-initialized image of the given dimensions.
// Negative dimensions are a caller bug.
func New(w, h int) *Image {
	if w < 0 || h < 0 {
		panic(fmt.Errorf("pix: negative image dimensions %dx%d", w, h))
	}
	return &Image{W: w, H: h, data: make([]colors.Color3, w*h)}
}

// NewFilled returns an image of the given dimensions with every
// texel set to c.
func NewFilled(w, h int, c colors.Color3) *Image {
	img := New(w, h)
	for i := range img.data {
		img.data[i] = c
	}
	return img
}

// Zero reports whether the image has no texels.
func (m *Image) Zero() bool {
	return m.W == 0 || m.H == 0
}

// At returns the texel at (x, y). Out-of-range access is a contract
// violation and panics; samplers clamp before calling.
func (m *Image) At(x, y int) colors.Color3 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		panic(fmt.Errorf("pix: texel (%d,%d) outside %dx%d image", x, y, m.W, m.H))
	}
	return m.data[y*m.W+x]
}

// Set writes the texel at (x, y), with the same range contract as At.
func (m *Image) Set(x, y int, c colors.Color3) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		panic(fmt.Errorf("pix: texel (%d,%d) outside %dx%d image", x, y, m.W, m.H))
	}
	m.data[y*m.W+x] = c
}

// AtClamped returns the texel at (x, y) after clamping each
// coordinate independently into range, so edge and corner texels are
// effectively repeated. The image must be non-degenerate.
func (m *Image) AtClamped(x, y int) colors.Color3 {
	if x < 0 {
		x = 0
	} else if x >= m.W {
		x = m.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.H {
		y = m.H - 1
	}
	return m.data[y*m.W+x]
}

// Clone returns an independent deep copy.
func (m *Image) Clone() *Image {
	out := New(m.W, m.H)
	copy(out.data, m.data)
	return out
}

// Equal reports deep content equality: same dimensions, same texels.
func (m *Image) Equal(o *Image) bool {
	if m.W != o.W || m.H != o.H {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Average returns the mean texel color, or black for a zero-area
// image.
func (m *Image) Average() colors.Color3 {
	if m.Zero() {
		return colors.Color3{}
	}
	var sum colors.Color3
	for _, c := range m.data {
		sum = sum.Add(c)
	}
	return sum.Div(float64(len(m.data)))
}

// FromImage converts a decoded stdlib image into a linear pixel
// buffer, dropping alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	out := New(b.Dx(), b.Dy())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			out.data[y*out.W+x] = colors.FromStandardColor(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// ToNRGBA converts the buffer to an 8-bit stdlib image, clamping
// HDR values into [0,1].
func (m *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			out.SetNRGBA(x, y, m.data[y*m.W+x].ToNRGBA())
		}
	}
	return out
}
