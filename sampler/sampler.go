// Package sampler filters a pixel buffer at continuous texture
// coordinates. All functions are pure: they clamp their inputs, read
// a bounded number of texels, and never mutate the image.
package sampler

import (
	"math"

	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/pix"
	"github.com/softrender/miptex/vectors"
)

// Nearest returns the color of the single texel whose footprint
// contains uv. A zero-area image yields black.
func Nearest(img *pix.Image, uv vectors.Vec2) colors.Color3 {
	if img.Zero() {
		return colors.Color3{}
	}

	// clamp texture coordinates, convert to [0,w]x[0,h] pixel space
	uv = uv.Clamp01()
	x := float64(img.W) * uv.X
	y := float64(img.H) * uv.Y

	// the nearest texel is the one containing (x,y); uv exactly 1.0
	// maps to w (or h) and must be pulled back into range
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))
	if ix > img.W-1 {
		ix = img.W - 1
	}
	if iy > img.H-1 {
		iy = img.H - 1
	}

	return img.At(ix, iy)
}

// Bilinear returns the weighted blend of the four texels surrounding
// uv, using the fractional distance to each texel center as weight.
// Edge and corner texels repeat under address clamping. A zero-area
// image yields black.
func Bilinear(img *pix.Image, uv vectors.Vec2) colors.Color3 {
	if img.Zero() {
		return colors.Color3{}
	}

	uv = uv.Clamp01()

	// texel centers sit at integer+0.5 in pixel space
	cx := float64(img.W)*uv.X - 0.5
	cy := float64(img.H)*uv.Y - 0.5

	x0 := int(math.Floor(cx))
	y0 := int(math.Floor(cy))
	tx := cx - float64(x0)
	ty := cy - float64(y0)

	c00 := img.AtClamped(x0, y0)
	c10 := img.AtClamped(x0+1, y0)
	c01 := img.AtClamped(x0, y0+1)
	c11 := img.AtClamped(x0+1, y0+1)

	top := c00.Scale(1 - tx).Add(c10.Scale(tx))
	bottom := c01.Scale(1 - tx).Add(c11.Scale(tx))
	return top.Scale(1 - ty).Add(bottom.Scale(ty))
}

// Trilinear bilinear-samples the two mip levels bracketing lod and
// blends them. lod <= 0 (or an empty pyramid) reads the base image
// directly; lod beyond the coarsest level saturates to it.
func Trilinear(base *pix.Image, levels []*pix.Image, uv vectors.Vec2, lod float64) colors.Color3 {
	if lod <= 0 || len(levels) == 0 {
		return Bilinear(base, uv)
	}

	last := len(levels) - 1
	lo := clampLevel(int(math.Floor(lod)), last)
	hi := clampLevel(int(math.Ceil(lod)), last)

	if lo == hi {
		return Bilinear(levels[lo], uv)
	}

	frac := lod - float64(lo)
	fine := Bilinear(levels[lo], uv)
	coarse := Bilinear(levels[hi], uv)
	return fine.Mix(coarse, frac)
}

func clampLevel(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}
