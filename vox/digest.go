package vox

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// Digest hashes the grid size and every voxel in scan order.
// Empty voxels hash the same regardless of their colour channels.
func Digest(g Grid) uint64 {
	h := xxhash.New()
	sx, sy, sz := g.Size()
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], uint32(sx))
	binary.LittleEndian.PutUint32(b[4:], uint32(sy))
	binary.LittleEndian.PutUint32(b[8:], uint32(sz))
	_, _ = h.Write(b[:])
	var px [4]byte
	g.Apply(func(v Voxel, _ Coord) {
		px = normalize(v).Bytes()
		_, _ = h.Write(px[:])
	})
	return h.Sum64()
}
