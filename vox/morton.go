package vox

import "sort"

// mortonOrder returns the linear cell indices of an sx*sy*sz grid sorted by
// their 3D Morton key, so spatially close voxels sit close in the stream.
func mortonOrder(sx, sy, sz int) []int {
	type kv struct {
		key uint64
		lin int
	}
	idx := make([]kv, 0, sx*sy*sz)
	for z := 0; z < sz; z++ {
		for y := 0; y < sy; y++ {
			for x := 0; x < sx; x++ {
				idx = append(idx, kv{Morton3D64(uint32(x), uint32(y), uint32(z)), x + y*sx + z*sx*sy})
			}
		}
	}
	// keys are unique per cell
	sort.Slice(idx, func(a, b int) bool { return idx[a].key < idx[b].key })
	order := make([]int, len(idx))
	for i := range idx {
		order[i] = idx[i].lin
	}
	return order
}

// flatten returns the grid cells in Morton order.
func flatten(g *DenseGrid) []Voxel {
	order := mortonOrder(g.sx, g.sy, g.sz)
	stream := make([]Voxel, len(order))
	for i, lin := range order {
		stream[i] = g.cells[lin]
	}
	return stream
}

// applyOrder writes a Morton-ordered stream back into g.
func applyOrder(g *DenseGrid, stream []Voxel) {
	for i, lin := range mortonOrder(g.sx, g.sy, g.sz) {
		g.cells[lin] = stream[i]
	}
}

// Morton3D64 interleaves the low 21 bits of x, y and z, x in the lowest bit.
func Morton3D64(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) |
		(part1By2(uint64(y)) << 1) |
		(part1By2(uint64(z)) << 2)
}

func part1By2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}
