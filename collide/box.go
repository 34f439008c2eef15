// Package collide builds axis-aligned box proxies for collision from voxel
// occupancy, optionally at a reduced resolution.
package collide

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelsplace/voxmesh/vox"
)

var (
	ErrBadFactor     = errors.New("collide: reduction factor must be >= 1")
	ErrUnknownDetail = errors.New("collide: unknown collider detail")
)

// Box is an axis-aligned box in grid units.
type Box struct {
	Origin  vox.Coord `json:"origin"`
	Extents vox.Coord `json:"extents"`
}

// Center is where the host should place a box-shaped collision volume.
func (b Box) Center() mgl32.Vec3 {
	o := mgl32.Vec3{float32(b.Origin[0]), float32(b.Origin[1]), float32(b.Origin[2])}
	e := mgl32.Vec3{float32(b.Extents[0]), float32(b.Extents[1]), float32(b.Extents[2])}
	return o.Add(e.Mul(0.5))
}

// Size returns the extents as a float vector.
func (b Box) Size() mgl32.Vec3 {
	return mgl32.Vec3{float32(b.Extents[0]), float32(b.Extents[1]), float32(b.Extents[2])}
}

func (b Box) Volume() int { return b.Extents[0] * b.Extents[1] * b.Extents[2] }

// Contains reports whether cell c lies inside the box.
func (b Box) Contains(c vox.Coord) bool {
	for i := 0; i < 3; i++ {
		if c[i] < b.Origin[i] || c[i] >= b.Origin[i]+b.Extents[i] {
			return false
		}
	}
	return true
}

func (b Box) String() string {
	return fmt.Sprintf("box%v+%v", b.Origin, b.Extents)
}

// Coverer turns an occupancy grid into boxes that lie inside the grid, cover
// every true cell and no false cell.
type Coverer interface {
	MakeBoxes(g *vox.BoolGrid) []Box
}

// CovererFunc adapts a function to Coverer.
type CovererFunc func(g *vox.BoolGrid) []Box

func (f CovererFunc) MakeBoxes(g *vox.BoolGrid) []Box { return f(g) }
