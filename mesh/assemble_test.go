package mesh

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelsplace/voxmesh/vox"
)

func TestAssembleFlattensInBatchOrder(t *testing.T) {
	batches := []Batch{
		{Kind: Opaque, Quads: []Quad{
			{Anchor: vox.Coord{1, 2, 3}, Color: red, Face: PosY},
			{Anchor: vox.Coord{0, 0, 0}, Color: blue, Face: NegZ},
		}},
		{Kind: Translucent, Quads: []Quad{
			{Anchor: vox.Coord{4, 5, 6}, Color: glass, Face: NegX},
		}},
	}
	m := Assemble(batches)

	require.Equal(t, 3, m.Len())
	assert.Len(t, m.Colors, 3)
	assert.Len(t, m.UVs, 3)
	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}, m.Positions)
	assert.Equal(t, [][4]uint8{red.Bytes(), blue.Bytes(), glass.Bytes()}, m.Colors)
	assert.Equal(t, []mgl32.Vec2{{float32(PosY), 0}, {float32(NegZ), 0}, {float32(NegX), 0}}, m.UVs)
	assert.Equal(t, NegZ, m.Face(1))

	assert.Equal(t, []Range{
		{Kind: Opaque, Offset: 0, Count: 2},
		{Kind: Translucent, Offset: 2, Count: 1},
	}, m.Ranges)
}

func TestAssembleSkipsEmptyBatches(t *testing.T) {
	m := Assemble([]Batch{
		{Kind: Opaque},
		{Kind: Translucent, Quads: []Quad{{Color: glass, Face: PosX}, {Color: glass, Face: NegX}}},
	})
	require.Len(t, m.Ranges, 1)
	assert.Equal(t, Range{Kind: Translucent, Offset: 0, Count: 2}, m.Ranges[0])
	_, ok := m.RangeOf(Opaque)
	assert.False(t, ok)

	empty := Assemble([]Batch{{Kind: Opaque}, {Kind: Translucent}})
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, empty.Ranges)
}

func TestAssembleRangesPartitionArrays(t *testing.T) {
	g := randomGrid(6, 5, 4, 42)
	batches, err := Build(g)
	require.NoError(t, err)
	m := Assemble(batches)

	total := 0
	for _, b := range batches {
		total += len(b.Quads)
	}
	require.Equal(t, total, m.Len())

	next := 0
	for i, r := range m.Ranges {
		assert.Equal(t, next, r.Offset, "range %d must start where the previous ended", i)
		assert.Positive(t, r.Count)
		next += r.Count
		if i > 0 {
			assert.Greater(t, int(r.Kind), int(m.Ranges[i-1].Kind))
		}
	}
	assert.Equal(t, m.Len(), next)

	for _, r := range m.Ranges {
		for i := r.Offset; i < r.Offset+r.Count; i++ {
			a := m.Colors[i][3]
			if r.Kind == Opaque {
				assert.Equal(t, uint8(255), a)
			} else {
				assert.Less(t, a, uint8(255))
			}
		}
	}
}

func TestRangeIndices(t *testing.T) {
	r := Range{Offset: 3, Count: 4}
	assert.Equal(t, []uint32{3, 4, 5, 6}, r.Indices())
	assert.Empty(t, Range{}.Indices())
}

func randomGrid(sx, sy, sz int, seed int64) *vox.DenseGrid {
	r := rand.New(rand.NewSource(seed))
	g := vox.NewDenseGrid(sx, sy, sz)
	g.Apply(func(_ vox.Voxel, c vox.Coord) {
		switch r.Intn(4) {
		case 0:
			g.Set(c, vox.Voxel{R: uint8(r.Intn(256)), A: 255})
		case 1:
			g.Set(c, vox.Voxel{G: uint8(r.Intn(256)), A: uint8(1 + r.Intn(254))})
		}
	})
	return g
}
