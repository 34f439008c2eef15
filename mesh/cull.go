// Package mesh turns voxel grids into point-quad surfaces: one point per
// visible unit face, carrying the anchor corner, the owning voxel's colour and
// a face tag that a downstream stage expands into the actual quad.
package mesh

import (
	"errors"
	"fmt"

	"github.com/voxelsplace/voxmesh/vox"
)

var (
	ErrInvalidCoord = errors.New("mesh: coordinate outside grid")
	ErrEmptyVoxel   = errors.New("mesh: face extraction on empty voxel")
)

// Face identifies one of the six axis-aligned face directions.
// Tags come in axis pairs, the even member pointing in the positive direction.
type Face uint8

const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// Faces lists every face in tag order.
var Faces = [6]Face{PosX, NegX, PosY, NegY, PosZ, NegZ}

type dirSpec struct {
	step   vox.Coord
	axis   int
	u, v   int // in-plane axes
	du, dv vox.Coord
}

var directions = [6]dirSpec{
	{vox.Coord{1, 0, 0}, 0, 1, 2, vox.Coord{0, 1, 0}, vox.Coord{0, 0, 1}},
	{vox.Coord{-1, 0, 0}, 0, 1, 2, vox.Coord{0, 1, 0}, vox.Coord{0, 0, 1}},
	{vox.Coord{0, 1, 0}, 1, 0, 2, vox.Coord{1, 0, 0}, vox.Coord{0, 0, 1}},
	{vox.Coord{0, -1, 0}, 1, 0, 2, vox.Coord{1, 0, 0}, vox.Coord{0, 0, 1}},
	{vox.Coord{0, 0, 1}, 2, 0, 1, vox.Coord{1, 0, 0}, vox.Coord{0, 1, 0}},
	{vox.Coord{0, 0, -1}, 2, 0, 1, vox.Coord{1, 0, 0}, vox.Coord{0, 1, 0}},
}

// opposite pairs each tag with the other face of the same axis.
var opposite = [6]Face{1, 0, 3, 2, 5, 4}

// Opposite returns the face pointing the other way along the same axis.
func (f Face) Opposite() Face { return opposite[f] }

// Positive reports whether the face normal points along +axis.
func (f Face) Positive() bool { return f%2 == 0 }

// Axis returns 0, 1 or 2 for X, Y or Z.
func (f Face) Axis() int { return directions[f].axis }

// Normal returns the unit step from a voxel towards the neighbour behind f.
func (f Face) Normal() vox.Coord { return directions[f].step }

func (f Face) String() string {
	return [6]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}[f]
}

// Quad is one visible unit face.
type Quad struct {
	Anchor vox.Coord
	Color  vox.Voxel
	Face   Face
}

// visible applies the occlusion rule between a non-empty source voxel and the
// neighbour across one of its faces.
func visible(src, nb vox.Voxel) bool {
	switch {
	case nb.Empty():
		return true
	case src.Translucent() && nb.Translucent():
		return false
	case src.Opaque() && nb.Opaque():
		return false
	}
	return true
}

// anchor places the quad on the far side of the unit cube for positive faces
// so the two quads of a shared face coincide.
func anchor(c vox.Coord, f Face) vox.Coord {
	if f.Positive() {
		c[f.Axis()]++
	}
	return c
}

// ExtractFaces returns the visible faces of the voxel at c.
// Translucent voxels get a back-facing twin for every emitted face.
func ExtractFaces(g vox.Grid, c vox.Coord) ([]Quad, error) {
	return AppendFaces(nil, g, c)
}

// AppendFaces is ExtractFaces appending to dst.
func AppendFaces(dst []Quad, g vox.Grid, c vox.Coord) ([]Quad, error) {
	if !g.IsValid(c) {
		return dst, fmt.Errorf("extract faces at %v: %w", c, ErrInvalidCoord)
	}
	src := g.Get(c)
	if src.Empty() {
		return dst, fmt.Errorf("extract faces at %v: %w", c, ErrEmptyVoxel)
	}
	for _, f := range Faces {
		nc := c.Add(directions[f].step)
		if g.IsValid(nc) && !visible(src, g.Get(nc)) {
			continue
		}
		at := anchor(c, f)
		dst = append(dst, Quad{Anchor: at, Color: src, Face: f})
		if src.Translucent() {
			dst = append(dst, Quad{Anchor: at, Color: src, Face: f.Opposite()})
		}
	}
	return dst, nil
}
