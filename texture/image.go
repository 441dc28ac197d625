package texture

import (
	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/mipmap"
	"github.com/softrender/miptex/pix"
	"github.com/softrender/miptex/sampler"
	"github.com/softrender/miptex/vectors"
)

// Image is an image-backed texture. It owns a deep copy of its
// source buffer and, in trilinear mode, the derived mip level
// sequence. The pyramid is rebuilt eagerly on construction and on
// SetSource/SetMode; after mutating the source buffer in place the
// owner must call MakeValid, since Evaluate never rebuilds.
type Image struct {
	mode   Mode
	src    *pix.Image
	levels []*pix.Image
	opts   []mipmap.Option
}

// NewImage copies src into a new texture and derives its pyramid if
// mode is Trilinear. Build options are retained for later
// revalidations.
func NewImage(mode Mode, src *pix.Image, opts ...mipmap.Option) *Image {
	t := &Image{mode: mode, src: src.Clone(), opts: opts}
	t.MakeValid()
	return t
}

// Evaluate returns the filtered color at uv. Coordinates outside
// [0,1] are clamped and negative lod reads the full-resolution base;
// a zero-area source always yields black.
func (t *Image) Evaluate(uv vectors.Vec2, lod float64) colors.Color3 {
	if t.src.Zero() {
		return colors.Color3{}
	}
	switch t.mode {
	case Nearest:
		return sampler.Nearest(t.src, uv)
	case Bilinear:
		return sampler.Bilinear(t.src, uv)
	default:
		return sampler.Trilinear(t.src, t.levels, uv, lod)
	}
}

// MakeValid rederives the cached mip level sequence from the current
// source and mode: built for Trilinear, cleared otherwise.
func (t *Image) MakeValid() {
	if t.mode == Trilinear {
		t.levels = mipmap.Build(t.src, t.opts...)
	} else {
		t.levels = nil
	}
}

// SetSource replaces the base image with a deep copy of src and
// revalidates the pyramid.
func (t *Image) SetSource(src *pix.Image) {
	t.src = src.Clone()
	t.MakeValid()
}

// SetMode switches the sampling mode and revalidates the pyramid.
func (t *Image) SetMode(mode Mode) {
	t.mode = mode
	t.MakeValid()
}

// Mode returns the current sampling mode.
func (t *Image) Mode() Mode {
	return t.mode
}

// Source returns the owned base image. Callers that mutate it must
// call MakeValid before the next Evaluate.
func (t *Image) Source() *pix.Image {
	return t.src
}

// Levels returns the cached mip level sequence; empty unless the
// mode is Trilinear. Read-only for callers.
func (t *Image) Levels() []*pix.Image {
	return t.levels
}

// Equal reports whether both textures have the same mode and deeply
// equal base images. Derived levels are excluded: they are a pure
// function of the rest.
func (t *Image) Equal(o *Image) bool {
	return t.mode == o.mode && t.src.Equal(o.src)
}
