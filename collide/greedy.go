package collide

import "github.com/voxelsplace/voxmesh/vox"

// GreedyCoverer covers occupancy with boxes by growing each unvisited seed
// cell along z, then y, then x, in scan order. Boxes never overlap.
type GreedyCoverer struct{}

func (GreedyCoverer) MakeBoxes(g *vox.BoolGrid) []Box {
	sx, sy, sz := g.Size()
	visited := vox.NewBoolGrid(sx, sy, sz)
	free := func(c vox.Coord) bool { return g.Get(c) && !visited.Get(c) }

	var boxes []Box
	g.Apply(func(v bool, c vox.Coord) {
		if !v || visited.Get(c) {
			return
		}
		ext := vox.Coord{1, 1, 1}
		for free(vox.Coord{c[0], c[1], c[2] + ext[2]}) {
			ext[2]++
		}
		for slabFree(free, c, ext, 1) {
			ext[1]++
		}
		for slabFree(free, c, ext, 0) {
			ext[0]++
		}
		for x := 0; x < ext[0]; x++ {
			for y := 0; y < ext[1]; y++ {
				for z := 0; z < ext[2]; z++ {
					visited.Set(c.Add(vox.Coord{x, y, z}), true)
				}
			}
		}
		boxes = append(boxes, Box{Origin: c, Extents: ext})
	})
	return boxes
}

// slabFree reports whether the one-cell-thick slab just past the box on axis
// is entirely free.
func slabFree(free func(vox.Coord) bool, origin, ext vox.Coord, axis int) bool {
	span := ext
	span[axis] = 1
	for x := 0; x < span[0]; x++ {
		for y := 0; y < span[1]; y++ {
			for z := 0; z < span[2]; z++ {
				d := vox.Coord{x, y, z}
				d[axis] = ext[axis]
				if !free(origin.Add(d)) {
					return false
				}
			}
		}
	}
	return true
}
