package vox

// Voxel is a single RGBA cell. A == 0 means the cell is empty.
type Voxel struct {
	R, G, B, A uint8
}

// Empty reports whether the voxel is absent.
func (v Voxel) Empty() bool { return v.A == 0 }

// Opaque reports whether the voxel fully covers what is behind it.
func (v Voxel) Opaque() bool { return v.A == 255 }

// Translucent reports whether the voxel is present but see-through.
func (v Voxel) Translucent() bool { return v.A > 0 && v.A < 255 }

// Bytes returns the voxel as an [R,G,B,A] quadruple.
func (v Voxel) Bytes() [4]uint8 { return [4]uint8{v.R, v.G, v.B, v.A} }

// Coord is an integer cell index (x, y, z).
type Coord [3]int

func (c Coord) Add(o Coord) Coord { return Coord{c[0] + o[0], c[1] + o[1], c[2] + o[2]} }

func (c Coord) Mul(k int) Coord { return Coord{c[0] * k, c[1] * k, c[2] * k} }

// Grid is a read-only view over a 3D voxel container.
// Apply visits every cell in scan order: x outermost, then y, then z.
type Grid interface {
	Size() (sx, sy, sz int)
	IsValid(c Coord) bool
	Get(c Coord) Voxel
	Project(pred func(Voxel) bool) *BoolGrid
	Apply(fn func(v Voxel, c Coord))
}

// Occupied is the projection predicate for occupancy grids.
func Occupied(v Voxel) bool { return !v.Empty() }

// DenseGrid stores every cell of an sx*sy*sz box, linear index x + y*sx + z*sx*sy.
type DenseGrid struct {
	sx, sy, sz int
	cells      []Voxel
}

// NewDenseGrid allocates an empty grid. Non-positive sizes are clamped to zero.
func NewDenseGrid(sx, sy, sz int) *DenseGrid {
	sx, sy, sz = max(sx, 0), max(sy, 0), max(sz, 0)
	return &DenseGrid{sx: sx, sy: sy, sz: sz, cells: make([]Voxel, sx*sy*sz)}
}

func (g *DenseGrid) Size() (int, int, int) { return g.sx, g.sy, g.sz }

func (g *DenseGrid) IsValid(c Coord) bool {
	return c[0] >= 0 && c[0] < g.sx && c[1] >= 0 && c[1] < g.sy && c[2] >= 0 && c[2] < g.sz
}

func (g *DenseGrid) index(c Coord) int { return c[0] + c[1]*g.sx + c[2]*g.sx*g.sy }

// Get returns the voxel at c, or an empty voxel when c is out of bounds.
func (g *DenseGrid) Get(c Coord) Voxel {
	if !g.IsValid(c) {
		return Voxel{}
	}
	return g.cells[g.index(c)]
}

// Set writes v at c and reports whether c was inside the grid.
func (g *DenseGrid) Set(c Coord, v Voxel) bool {
	if !g.IsValid(c) {
		return false
	}
	g.cells[g.index(c)] = v
	return true
}

func (g *DenseGrid) Apply(fn func(v Voxel, c Coord)) {
	for x := 0; x < g.sx; x++ {
		for y := 0; y < g.sy; y++ {
			for z := 0; z < g.sz; z++ {
				c := Coord{x, y, z}
				fn(g.cells[g.index(c)], c)
			}
		}
	}
}

func (g *DenseGrid) Project(pred func(Voxel) bool) *BoolGrid {
	out := NewBoolGrid(g.sx, g.sy, g.sz)
	for i, v := range g.cells {
		out.cells[i] = pred(v)
	}
	return out
}

// Count returns the number of non-empty voxels.
func (g *DenseGrid) Count() int {
	n := 0
	for _, v := range g.cells {
		if !v.Empty() {
			n++
		}
	}
	return n
}

// BoolGrid is an occupancy grid with the same indexing as DenseGrid.
type BoolGrid struct {
	sx, sy, sz int
	cells      []bool
}

func NewBoolGrid(sx, sy, sz int) *BoolGrid {
	sx, sy, sz = max(sx, 0), max(sy, 0), max(sz, 0)
	return &BoolGrid{sx: sx, sy: sy, sz: sz, cells: make([]bool, sx*sy*sz)}
}

func (g *BoolGrid) Size() (int, int, int) { return g.sx, g.sy, g.sz }

func (g *BoolGrid) IsValid(c Coord) bool {
	return c[0] >= 0 && c[0] < g.sx && c[1] >= 0 && c[1] < g.sy && c[2] >= 0 && c[2] < g.sz
}

func (g *BoolGrid) index(c Coord) int { return c[0] + c[1]*g.sx + c[2]*g.sx*g.sy }

func (g *BoolGrid) Get(c Coord) bool {
	if !g.IsValid(c) {
		return false
	}
	return g.cells[g.index(c)]
}

func (g *BoolGrid) Set(c Coord, v bool) bool {
	if !g.IsValid(c) {
		return false
	}
	g.cells[g.index(c)] = v
	return true
}

// Apply visits every cell in the same order as DenseGrid.Apply.
func (g *BoolGrid) Apply(fn func(v bool, c Coord)) {
	for x := 0; x < g.sx; x++ {
		for y := 0; y < g.sy; y++ {
			for z := 0; z < g.sz; z++ {
				c := Coord{x, y, z}
				fn(g.cells[g.index(c)], c)
			}
		}
	}
}

func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

func (g *BoolGrid) Clone() *BoolGrid {
	out := &BoolGrid{sx: g.sx, sy: g.sy, sz: g.sz, cells: make([]bool, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and occupancy.
func (g *BoolGrid) Equal(o *BoolGrid) bool {
	if g.sx != o.sx || g.sy != o.sy || g.sz != o.sz {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
