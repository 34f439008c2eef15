package collide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelsplace/voxmesh/vox"
)

// requireExactCover checks the coverer contract: boxes inside bounds, every
// true cell covered, no false cell covered.
func requireExactCover(t *testing.T, g *vox.BoolGrid, boxes []Box) {
	t.Helper()
	for _, b := range boxes {
		require.Positive(t, b.Volume(), "%v", b)
		for _, corner := range []vox.Coord{b.Origin, b.Origin.Add(b.Extents).Add(vox.Coord{-1, -1, -1})} {
			require.True(t, g.IsValid(corner), "%v leaves the grid", b)
		}
	}
	g.Apply(func(v bool, c vox.Coord) {
		covered := false
		for _, b := range boxes {
			if b.Contains(c) {
				covered = true
				break
			}
		}
		require.Equal(t, v, covered, "cell %v", c)
	})
}

func TestGreedyCovererContract(t *testing.T) {
	for seed := int64(0); seed < 15; seed++ {
		g := randomOccupancy(6, 5, 7, 0.6, seed)
		requireExactCover(t, g, GreedyCoverer{}.MakeBoxes(g))
	}
}

func TestGreedyCovererMergesSolidBlock(t *testing.T) {
	g := vox.NewBoolGrid(3, 4, 5)
	g.Apply(func(_ bool, c vox.Coord) { g.Set(c, true) })
	boxes := GreedyCoverer{}.MakeBoxes(g)
	require.Len(t, boxes, 1)
	assert.Equal(t, Box{Origin: vox.Coord{0, 0, 0}, Extents: vox.Coord{3, 4, 5}}, boxes[0])

	assert.Empty(t, GreedyCoverer{}.MakeBoxes(vox.NewBoolGrid(3, 3, 3)))
}

func TestGreedyCovererLShape(t *testing.T) {
	g := boolGrid(2, 2, 1, vox.Coord{0, 0, 0}, vox.Coord{1, 0, 0}, vox.Coord{0, 1, 0})
	boxes := GreedyCoverer{}.MakeBoxes(g)
	assert.Len(t, boxes, 2)
	requireExactCover(t, g, boxes)
}

func TestScale(t *testing.T) {
	boxes := []Box{
		{Origin: vox.Coord{0, 1, 2}, Extents: vox.Coord{1, 2, 3}},
		{Origin: vox.Coord{3, 0, 0}, Extents: vox.Coord{1, 1, 1}},
	}
	got, err := Scale(boxes, 3)
	require.NoError(t, err)
	assert.Equal(t, []Box{
		{Origin: vox.Coord{0, 3, 6}, Extents: vox.Coord{3, 6, 9}},
		{Origin: vox.Coord{9, 0, 0}, Extents: vox.Coord{3, 3, 3}},
	}, got)
	assert.Equal(t, vox.Coord{0, 1, 2}, boxes[0].Origin, "input must not be modified")

	same, err := Scale(got, 1)
	require.NoError(t, err)
	assert.Equal(t, got, same)

	_, err = Scale(boxes, 0)
	assert.ErrorIs(t, err, ErrBadFactor)
}

func TestBoxCenter(t *testing.T) {
	b := Box{Origin: vox.Coord{2, 0, 4}, Extents: vox.Coord{2, 1, 4}}
	assert.Equal(t, mgl32.Vec3{3, 0.5, 6}, b.Center())
	assert.Equal(t, mgl32.Vec3{2, 1, 4}, b.Size())
	assert.Equal(t, 8, b.Volume())
}

func TestDetail(t *testing.T) {
	tests := []struct {
		in     string
		want   Detail
		factor int
	}{
		{"none", None, 0},
		{"Exact", Exact, 1},
		{"half", HalfScale, 2},
		{"HalfScale", HalfScale, 2},
		{" third ", ThirdScale, 3},
		{"QUARTER", QuarterScale, 4},
	}
	for _, tt := range tests {
		d, err := ParseDetail(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, tt.factor, d.Factor())

		var u Detail
		require.NoError(t, u.UnmarshalText([]byte(d.String())))
		assert.Equal(t, d, u)
	}
	_, err := ParseDetail("eighth")
	assert.Error(t, err)
	assert.Equal(t, "Detail(9)", Detail(9).String())
	assert.False(t, Detail(9).Valid())
	assert.True(t, QuarterScale.Valid())
}

func solidVoxels(sx, sy, sz int, on ...vox.Coord) *vox.DenseGrid {
	g := vox.NewDenseGrid(sx, sy, sz)
	for _, c := range on {
		g.Set(c, vox.Voxel{R: 255, A: 255})
	}
	return g
}

func TestBuildDetails(t *testing.T) {
	one := solidVoxels(1, 1, 1, vox.Coord{0, 0, 0})

	boxes, err := Build(one, None, nil)
	require.NoError(t, err)
	assert.Empty(t, boxes)

	boxes, err = Build(one, Exact, nil)
	require.NoError(t, err)
	assert.Equal(t, []Box{{Origin: vox.Coord{0, 0, 0}, Extents: vox.Coord{1, 1, 1}}}, boxes)

	for _, d := range []Detail{Detail(9), Detail(-1)} {
		boxes, err = Build(one, d, nil)
		assert.ErrorIs(t, err, ErrUnknownDetail, "%v", d)
		assert.Nil(t, boxes)
	}
}

func TestBuildReducedBoxesAlignAndContainShape(t *testing.T) {
	// 12 is a multiple of every factor, so no trailing cells get clamped
	g := vox.NewDenseGrid(12, 12, 12)
	for _, c := range []vox.Coord{{1, 1, 1}, {2, 1, 1}, {5, 6, 7}, {11, 0, 3}} {
		g.Set(c, vox.Voxel{G: 255, A: 80})
	}
	occ := g.Project(vox.Occupied)
	for _, d := range []Detail{HalfScale, ThirdScale, QuarterScale} {
		f := d.Factor()
		boxes, err := Build(g, d, nil)
		require.NoError(t, err)
		require.NotEmpty(t, boxes)
		for _, b := range boxes {
			for i := 0; i < 3; i++ {
				assert.Zero(t, b.Origin[i]%f, "%v origin not aligned to %d", b, f)
				assert.Zero(t, b.Extents[i]%f, "%v extents not aligned to %d", b, f)
			}
		}
		occ.Apply(func(v bool, c vox.Coord) {
			if !v {
				return
			}
			in := false
			for _, b := range boxes {
				in = in || b.Contains(c)
			}
			assert.True(t, in, "%v: solid cell %v outside proxies", d, c)
		})
	}
}

func TestBuildUsesCustomCoverer(t *testing.T) {
	calls := 0
	cov := CovererFunc(func(g *vox.BoolGrid) []Box {
		calls++
		sx, sy, sz := g.Size()
		return []Box{{Extents: vox.Coord{sx, sy, sz}}}
	})
	boxes, err := Build(solidVoxels(4, 4, 4, vox.Coord{3, 3, 3}), HalfScale, cov)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []Box{{Extents: vox.Coord{4, 4, 4}}}, boxes)
}
