// Package texture dispatches texture evaluation over a closed set of
// variants: an image texture with nearest, bilinear or trilinear
// filtering, and a constant color.
package texture

import (
	"fmt"

	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/vectors"
)

// Mode selects the sampler an image texture dispatches to.
type Mode int

const (
	Nearest Mode = iota
	Bilinear
	Trilinear
)

func (m Mode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Trilinear:
		return "trilinear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Texture is the host-facing evaluation interface. Evaluate is a
// pure function of uv and lod; implementations must not be mutated
// while another goroutine is evaluating them.
type Texture interface {
	Evaluate(uv vectors.Vec2, lod float64) colors.Color3
}

// Equal reports deep equality between two textures. Textures of
// different variants are never equal.
func Equal(a, b Texture) bool {
	switch at := a.(type) {
	case *Image:
		bt, ok := b.(*Image)
		return ok && at.Equal(bt)
	case *Constant:
		bt, ok := b.(*Constant)
		return ok && at.Equal(bt)
	default:
		return false
	}
}
