package mesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelsplace/voxmesh/vox"
)

func TestBuildFollowsScanOrder(t *testing.T) {
	g := gridWith(2, 1, 3, map[vox.Coord]vox.Voxel{
		{1, 0, 0}: blue,
		{0, 0, 2}: red,
		{0, 0, 0}: glass,
	})
	batches, err := Build(g)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, Opaque, batches[0].Kind)
	assert.Equal(t, Translucent, batches[1].Kind)

	// x is the outermost loop, so (0,0,2) is visited before (1,0,0)
	op := batches[0].Quads
	require.Len(t, op, 12)
	for _, q := range op[:6] {
		assert.Equal(t, red, q.Color)
	}
	for _, q := range op[6:] {
		assert.Equal(t, blue, q.Color)
	}
	assert.Len(t, batches[1].Quads, 12)
}

func TestBuildEmptyGrid(t *testing.T) {
	batches, err := Build(vox.NewDenseGrid(4, 4, 4))
	require.NoError(t, err)
	for _, b := range batches {
		assert.Empty(t, b.Quads)
	}
	assert.True(t, Assemble(batches).IsEmpty())
}

func TestBuildParallelMatchesBuild(t *testing.T) {
	g := randomGrid(9, 7, 5, 3)
	want, err := Build(g)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 3, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := BuildParallel(g, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEndToEndSingleRedVoxel(t *testing.T) {
	g := gridWith(1, 1, 1, map[vox.Coord]vox.Voxel{{0, 0, 0}: {R: 255, A: 255}})
	batches, err := Build(g)
	require.NoError(t, err)
	m := Assemble(batches)

	assert.Equal(t, 6, m.Len())
	require.Len(t, m.Ranges, 1)
	assert.Equal(t, Range{Kind: Opaque, Offset: 0, Count: 6}, m.Ranges[0])
	_, ok := m.RangeOf(Translucent)
	assert.False(t, ok)
}
