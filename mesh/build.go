package mesh

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/voxelsplace/voxmesh/vox"
)

func newBatches() []Batch {
	return []Batch{{Kind: Opaque}, {Kind: Translucent}}
}

// Build extracts the faces of every non-empty voxel in scan order and sorts
// them into an opaque and a translucent batch.
func Build(g vox.Grid) ([]Batch, error) {
	batches := newBatches()
	var err error
	g.Apply(func(v vox.Voxel, c vox.Coord) {
		if err != nil || v.Empty() {
			return
		}
		b := &batches[KindOf(v)]
		b.Quads, err = AppendFaces(b.Quads, g, c)
	})
	if err != nil {
		return nil, err
	}
	return batches, nil
}

// BuildParallel produces the same batches as Build, extracting faces from
// x-slabs on a worker pool. Slabs are stitched back in x order so each batch
// keeps the scan order. workers <= 0 uses one worker per CPU.
func BuildParallel(g vox.Grid, workers int) ([]Batch, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sx, sy, sz := g.Size()
	if workers == 1 || sx < 2 {
		return Build(g)
	}

	slab := (sx + workers - 1) / workers
	n := (sx + slab - 1) / slab
	parts := make([][]Batch, n)
	errs := make([]error, n)

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		startX := i * slab
		endX := min(startX+slab, sx)
		pool.Submit(func() {
			defer wg.Done()
			parts[i], errs[i] = buildSlab(g, startX, endX, sy, sz)
		})
	}
	wg.Wait()

	batches := newBatches()
	for i, p := range parts {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for k := range batches {
			batches[k].Quads = append(batches[k].Quads, p[k].Quads...)
		}
	}
	return batches, nil
}

func buildSlab(g vox.Grid, startX, endX, sy, sz int) ([]Batch, error) {
	batches := newBatches()
	var err error
	for x := startX; x < endX; x++ {
		for y := 0; y < sy; y++ {
			for z := 0; z < sz; z++ {
				c := vox.Coord{x, y, z}
				v := g.Get(c)
				if v.Empty() {
					continue
				}
				b := &batches[KindOf(v)]
				if b.Quads, err = AppendFaces(b.Quads, g, c); err != nil {
					return nil, err
				}
			}
		}
	}
	return batches, nil
}
