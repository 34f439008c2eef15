package collide

import (
	"fmt"

	"github.com/voxelsplace/voxmesh/vox"
)

// Reduce downsamples g by factor on every axis. An output cell is true when
// any input cell mapping to it is true, so the result never under-reports
// occupancy. Output sizes never drop below one cell.
func Reduce(g *vox.BoolGrid, factor int) (*vox.BoolGrid, error) {
	if factor < 1 {
		return nil, fmt.Errorf("reduce by %d: %w", factor, ErrBadFactor)
	}
	if factor == 1 {
		return g.Clone(), nil
	}
	sx, sy, sz := g.Size()
	out := [3]int{max(1, sx/factor), max(1, sy/factor), max(1, sz/factor)}
	r := vox.NewBoolGrid(out[0], out[1], out[2])
	g.Apply(func(v bool, c vox.Coord) {
		if !v {
			return
		}
		var t vox.Coord
		for i := range t {
			t[i] = min(out[i]-1, c[i]/factor)
		}
		r.Set(t, true)
	})
	return r, nil
}
