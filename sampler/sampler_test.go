package sampler

import (
	"math"
	"testing"

	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/mipmap"
	"github.com/softrender/miptex/pix"
	"github.com/softrender/miptex/vectors"
)

// grid4x4 returns a 4x4 image where texel (x,y) has a unique color
// derived from its coordinates, so tests can tell texels apart.
func grid4x4() *pix.Image {
	img := pix.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, texelColor(x, y))
		}
	}
	return img
}

func texelColor(x, y int) colors.Color3 {
	return colors.New(float64(x)/4.0, float64(y)/4.0, float64(x+4*y)/16.0)
}

func colorsClose(a, b colors.Color3, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps
}

func TestNearestPicksContainingTexel(t *testing.T) {
	img := grid4x4()

	cases := []struct {
		name string
		uv   vectors.Vec2
		x, y int
	}{
		{"origin", vectors.Vec2{X: 0, Y: 0}, 0, 0},
		{"texel center", vectors.Vec2{X: 0.125, Y: 0.375}, 0, 1},
		{"interior", vectors.Vec2{X: 0.6, Y: 0.3}, 2, 1},
		{"exactly one", vectors.Vec2{X: 1, Y: 1}, 3, 3},
		{"clamped negative", vectors.Vec2{X: -0.5, Y: 0.9}, 0, 3},
		{"clamped above one", vectors.Vec2{X: 2.0, Y: 0.1}, 3, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Nearest(img, c.uv)
			want := img.At(c.x, c.y)
			if got != want {
				t.Errorf("Nearest(%v) = %v, want texel (%d,%d) = %v", c.uv, got, c.x, c.y, want)
			}
		})
	}
}

func TestNearestIsAlwaysAStoredTexel(t *testing.T) {
	img := grid4x4()

	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			uv := vectors.Vec2{X: float64(i) / 20.0, Y: float64(j) / 20.0}
			got := Nearest(img, uv)

			found := false
			for y := 0; y < 4 && !found; y++ {
				for x := 0; x < 4 && !found; x++ {
					found = got == img.At(x, y)
				}
			}
			if !found {
				t.Fatalf("Nearest(%v) = %v is not any stored texel", uv, got)
			}
		}
	}
}

func TestBilinearAtTexelCenter(t *testing.T) {
	img := grid4x4()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			uv := vectors.Vec2{
				X: (float64(x) + 0.5) / 4.0,
				Y: (float64(y) + 0.5) / 4.0,
			}
			got := Bilinear(img, uv)
			want := img.At(x, y)
			if got != want {
				t.Errorf("Bilinear at center of (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBilinearMidpointBlend(t *testing.T) {
	// 2x1 image: uv.x = 0.5 lands exactly between the two texel
	// centers, so the result is their unweighted average.
	img := pix.New(2, 1)
	img.Set(0, 0, colors.New(1, 0, 0))
	img.Set(1, 0, colors.New(0, 1, 0))

	got := Bilinear(img, vectors.Vec2{X: 0.5, Y: 0.5})
	want := colors.New(0.5, 0.5, 0)
	if !colorsClose(got, want, 1e-12) {
		t.Errorf("midpoint blend = %v, want %v", got, want)
	}
}

func TestBilinearIsConvex(t *testing.T) {
	// A convex combination of texels never leaves the per-channel
	// range spanned by the image.
	img := grid4x4()

	for i := 0; i <= 16; i++ {
		for j := 0; j <= 16; j++ {
			uv := vectors.Vec2{X: float64(i) / 16.0, Y: float64(j) / 16.0}
			got := Bilinear(img, uv)
			const eps = 1e-12
			if got.R < -eps || got.R > 0.75+eps ||
				got.G < -eps || got.G > 0.75+eps ||
				got.B < -eps || got.B > 15.0/16.0+eps {
				t.Fatalf("Bilinear(%v) = %v outside the image's channel range", uv, got)
			}
		}
	}
}

func TestBilinearConstantImage(t *testing.T) {
	img := pix.NewFilled(3, 5, colors.White())

	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			uv := vectors.Vec2{X: float64(i) / 10.0, Y: float64(j) / 10.0}
			if got := Bilinear(img, uv); !colorsClose(got, colors.White(), 1e-12) {
				t.Fatalf("Bilinear(%v) = %v on constant white image", uv, got)
			}
		}
	}
}

func TestTrilinearAtZeroLodMatchesBilinear(t *testing.T) {
	base := grid4x4()
	levels := mipmap.Build(base)

	for i := 0; i <= 8; i++ {
		for j := 0; j <= 8; j++ {
			uv := vectors.Vec2{X: float64(i) / 8.0, Y: float64(j) / 8.0}
			for _, lod := range []float64{0, -1, -0.25} {
				got := Trilinear(base, levels, uv, lod)
				want := Bilinear(base, uv)
				if got != want {
					t.Fatalf("Trilinear(%v, lod=%v) = %v, want bilinear %v", uv, lod, got, want)
				}
			}
		}
	}
}

func TestTrilinearAtIntegralLod(t *testing.T) {
	base := grid4x4()
	levels := mipmap.Build(base)
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels for 4x4 base, got %d", len(levels))
	}

	// lod 0 is the base-image fast path, so integral lookups start
	// at level 1
	uv := vectors.Vec2{X: 0.3, Y: 0.7}
	for k := 1; k < len(levels); k++ {
		got := Trilinear(base, levels, uv, float64(k))
		want := Bilinear(levels[k], uv)
		if got != want {
			t.Errorf("Trilinear(lod=%d) = %v, want bilinear on level %d = %v", k, got, k, want)
		}
	}
}

func TestTrilinearFractionalLodBlends(t *testing.T) {
	base := grid4x4()
	levels := mipmap.Build(base)

	uv := vectors.Vec2{X: 0.4, Y: 0.6}
	lod := 0.5
	got := Trilinear(base, levels, uv, lod)
	want := Bilinear(levels[0], uv).Mix(Bilinear(levels[1], uv), 0.5)
	if !colorsClose(got, want, 1e-12) {
		t.Errorf("Trilinear(lod=0.5) = %v, want %v", got, want)
	}
}

func TestTrilinearSaturatesAtCoarsestLevel(t *testing.T) {
	base := grid4x4()
	levels := mipmap.Build(base)

	uv := vectors.Vec2{X: 0.25, Y: 0.25}
	want := Bilinear(levels[len(levels)-1], uv)
	for _, lod := range []float64{float64(len(levels) - 1), 5, 100} {
		got := Trilinear(base, levels, uv, lod)
		if got != want {
			t.Errorf("Trilinear(lod=%v) = %v, want coarsest level %v", lod, got, want)
		}
	}
}

func TestTrilinearEmptyPyramid(t *testing.T) {
	base := pix.NewFilled(1, 1, colors.New(0.2, 0.4, 0.6))
	levels := mipmap.Build(base)
	if len(levels) != 0 {
		t.Fatalf("expected empty pyramid for 1x1 base, got %d levels", len(levels))
	}

	for _, lod := range []float64{0, 0.5, 3} {
		got := Trilinear(base, levels, vectors.Vec2{X: 0.9, Y: 0.1}, lod)
		if got != colors.New(0.2, 0.4, 0.6) {
			t.Errorf("Trilinear(lod=%v) = %v, want the single texel", lod, got)
		}
	}
}

func TestSamplersOnZeroAreaImage(t *testing.T) {
	img := pix.New(0, 0)
	uv := vectors.Vec2{X: 0.5, Y: 0.5}

	if got := Nearest(img, uv); got != (colors.Color3{}) {
		t.Errorf("Nearest on zero-area image = %v, want black", got)
	}
	if got := Bilinear(img, uv); got != (colors.Color3{}) {
		t.Errorf("Bilinear on zero-area image = %v, want black", got)
	}
	if got := Trilinear(img, nil, uv, 2); got != (colors.Color3{}) {
		t.Errorf("Trilinear on zero-area image = %v, want black", got)
	}
}
