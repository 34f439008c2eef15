package collide

import (
	"fmt"

	"github.com/voxelsplace/voxmesh/vox"
)

// Build produces the collision proxies of g at detail d. A nil coverer uses
// GreedyCoverer. None yields no boxes.
func Build(g vox.Grid, d Detail, cov Coverer) ([]Box, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("build colliders: %w: %d", ErrUnknownDetail, int(d))
	}
	factor := d.Factor()
	if factor == 0 {
		return nil, nil
	}
	if cov == nil {
		cov = GreedyCoverer{}
	}
	occ := g.Project(vox.Occupied)
	if factor > 1 {
		var err error
		if occ, err = Reduce(occ, factor); err != nil {
			return nil, err
		}
	}
	return Scale(cov.MakeBoxes(occ), factor)
}
