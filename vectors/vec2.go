package vectors

// Vec2 is a simple 2D vector with float64 components, used for
// normalized texture coordinates.
type Vec2 struct {
	X, Y float64
}

func Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product v · o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Clamp01 clamps both components into [0,1].
func (v Vec2) Clamp01() Vec2 {
	return Vec2{clamp01(v.X), clamp01(v.Y)}
}

// Lerp returns v*(1-t) + o*t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X*(1-t) + o.X*t,
		Y: v.Y*(1-t) + o.Y*t,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
