package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/voxelsplace/voxmesh/api"
	"github.com/voxelsplace/voxmesh/config"
	"github.com/voxelsplace/voxmesh/vox"
)

// RunBake converts a .voxg file into a .glb carrying the surface and the
// collision proxies selected by cfg.
func RunBake(inPath, outPath string, cfg *config.Config, logger *log.Logger) error {
	grid, err := vox.LoadGrid(inPath)
	if err != nil {
		return err
	}
	m, err := api.Bake(grid, cfg.Options())
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	out, err := api.ModelToGLB(m, cfg.Topology, cfg.Generator)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}
	sx, sy, sz := grid.Size()
	logger.Printf("%s: %dx%dx%d, %d quads, %d boxes (%v), %s written to %s",
		inPath, sx, sy, sz, m.Mesh.Len(), len(m.Boxes), cfg.Collider,
		humanize.Bytes(uint64(len(out))), outPath)
	return nil
}
