package api

import (
	"fmt"

	"github.com/voxelsplace/voxmesh/collide"
	"github.com/voxelsplace/voxmesh/mesh"
	"github.com/voxelsplace/voxmesh/vox"
)

// Options configures Bake.
type Options struct {
	Collider collide.Detail
	// Workers > 1 extracts faces on a worker pool; 0 or 1 stays sequential.
	Workers int
	// Coverer defaults to collide.GreedyCoverer.
	Coverer collide.Coverer
}

// Model is everything a host needs to attach a voxel object: the point-quad
// surface and the collision proxies.
type Model struct {
	Mesh   *mesh.Mesh
	Boxes  []collide.Box
	Digest uint64
}

// Bake runs face extraction, assembly and collider generation on g.
func Bake(g vox.Grid, opts Options) (*Model, error) {
	var (
		batches []mesh.Batch
		err     error
	)
	if opts.Workers > 1 {
		batches, err = mesh.BuildParallel(g, opts.Workers)
	} else {
		batches, err = mesh.Build(g)
	}
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	boxes, err := collide.Build(g, opts.Collider, opts.Coverer)
	if err != nil {
		return nil, fmt.Errorf("colliders (%v): %w", opts.Collider, err)
	}
	return &Model{
		Mesh:   mesh.Assemble(batches),
		Boxes:  boxes,
		Digest: vox.Digest(g),
	}, nil
}

// VOXGToGLB takes .voxg file bytes and returns .glb bytes.
func VOXGToGLB(voxg []byte, opts Options, topo Topology) ([]byte, error) {
	grid, err := vox.DecodeGrid(voxg)
	if err != nil {
		return nil, err
	}
	m, err := Bake(grid, opts)
	if err != nil {
		return nil, err
	}
	return ModelToGLB(m, topo, "")
}
