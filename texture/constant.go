package texture

import (
	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/vectors"
)

// Constant is a coordinate-independent texture: every sample yields
// Color scaled by Scale. No buffer, no pyramid.
type Constant struct {
	Color colors.Color3
	Scale float64
}

func NewConstant(c colors.Color3, scale float64) *Constant {
	return &Constant{Color: c, Scale: scale}
}

// Evaluate ignores uv and lod.
func (t *Constant) Evaluate(uv vectors.Vec2, lod float64) colors.Color3 {
	return t.Color.Scale(t.Scale)
}

// Equal compares color and scale factor.
func (t *Constant) Equal(o *Constant) bool {
	return t.Color == o.Color && t.Scale == o.Scale
}
