// Package mipmap builds a pyramid of progressively halved,
// box-filtered copies of a base image for level-of-detail sampling.
package mipmap

import (
	"fmt"
	"log/slog"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/softrender/miptex/colors"
	"github.com/softrender/miptex/pix"
)

// Option configures a pyramid build.
type Option func(*config)

type config struct {
	workers  int
	progress func(level, w, h int)
}

// WithWorkers distributes each level's row downsampling across n
// goroutines. Levels are still produced strictly in order, since
// each one reads its predecessor. n < 1 means serial.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithProgress installs a per-level diagnostic callback, invoked
// with the level index and its dimensions before the level is
// filled. Purely observational.
func WithProgress(fn func(level, w, h int)) Option {
	return func(c *config) { c.progress = fn }
}

// Build returns the mip level sequence for base: level 0 is the
// first downsample (half resolution, rounded down, floored at 1),
// and the sequence continues until a 1x1 level. A 1x1 or zero-area
// base produces an empty sequence.
//
// Build is a pure function of the base image's content and
// dimensions. An arithmetic mismatch between the halving schedule
// and the expected level count is a programming defect and panics.
func Build(base *pix.Image, opts ...Option) []*pix.Image {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if base.Zero() {
		return nil
	}

	// floor(log2(max(w,h))) levels, halving each axis until 1x1
	n := bits.Len(uint(max(base.W, base.H))) - 1
	levels := make([]*pix.Image, 0, n)

	w, h := base.W, base.H
	for i := 0; i < n; i++ {
		if w == 1 && h == 1 {
			panic(fmt.Errorf("mipmap: halving schedule exhausted after %d of %d levels", i, n))
		}
		w = max(1, w/2)
		h = max(1, h/2)
		levels = append(levels, pix.New(w, h))
	}
	if w != 1 || h != 1 {
		panic(fmt.Errorf("mipmap: terminal level is %dx%d, want 1x1", w, h))
	}

	slog.Debug("regenerating mipmap", "base_w", base.W, "base_h", base.H, "levels", n)

	for i, dst := range levels {
		src := base
		if i > 0 {
			src = levels[i-1]
		}
		if cfg.progress != nil {
			cfg.progress(i, dst.W, dst.H)
		}
		downsample(src, dst, cfg.workers)
	}

	return levels
}

// downsample box-filters src into dst, which must be exactly one
// halving step smaller. Every source texel contributes to exactly
// one destination texel: interior blocks are 2x2, and when an axis
// of src is odd the last destination column/row widens its block to
// 3 along that axis so no source texel is dropped.
func downsample(src, dst *pix.Image, workers int) {
	if max(1, src.W/2) != dst.W || max(1, src.H/2) != dst.H {
		panic(fmt.Errorf("mipmap: downsample %dx%d -> %dx%d is not a halving step",
			src.W, src.H, dst.W, dst.H))
	}

	if workers < 2 || dst.H < 2 {
		for y := 0; y < dst.H; y++ {
			downsampleRow(src, dst, y)
		}
		return
	}

	// rows write disjoint destination texels and read only their own
	// source block, so bands need no coordination
	if workers > dst.H {
		workers = dst.H
	}
	var g errgroup.Group
	rowsPerBand := (dst.H + workers - 1) / workers
	for band := 0; band < workers; band++ {
		lo := band * rowsPerBand
		hi := min(lo+rowsPerBand, dst.H)
		g.Go(func() error {
			for y := lo; y < hi; y++ {
				downsampleRow(src, dst, y)
			}
			return nil
		})
	}
	_ = g.Wait() // band workers never fail
}

func downsampleRow(src, dst *pix.Image, y int) {
	// a collapsed axis (size 1) passes through; an odd axis folds its
	// leftover texel into the last block, widening it to 3
	blockH := 2
	if src.H == 1 {
		blockH = 1
	} else if src.H%2 == 1 && y == dst.H-1 {
		blockH = 3
	}
	for x := 0; x < dst.W; x++ {
		blockW := 2
		if src.W == 1 {
			blockW = 1
		} else if src.W%2 == 1 && x == dst.W-1 {
			blockW = 3
		}

		var sum colors.Color3
		for dy := 0; dy < blockH; dy++ {
			for dx := 0; dx < blockW; dx++ {
				sum = sum.Add(src.At(2*x+dx, 2*y+dy))
			}
		}
		dst.Set(x, y, sum.Div(float64(blockW*blockH)))
	}
}
