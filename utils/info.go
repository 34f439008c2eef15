package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/voxelsplace/voxmesh/vox"
)

// RunInfo describes a .voxg file: header fields, occupancy and digest.
func RunInfo(inPath string, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	hdr, _, err := vox.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	grid, err := vox.DecodeGrid(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	var opaque, translucent int
	grid.Apply(func(v vox.Voxel, _ vox.Coord) {
		switch {
		case v.Opaque():
			opaque++
		case v.Translucent():
			translucent++
		}
	})
	cells := int(hdr.W) * int(hdr.H) * int(hdr.D)
	fmt.Fprintf(w, "file:        %s (%s)\n", inPath, humanize.Bytes(uint64(len(data))))
	fmt.Fprintf(w, "size:        %dx%dx%d (%s cells)\n", hdr.W, hdr.H, hdr.D, humanize.Comma(int64(cells)))
	fmt.Fprintf(w, "encoding:    %s, payload %s\n", hdr.Encoding(), humanize.Bytes(uint64(hdr.PLen)))
	fmt.Fprintf(w, "opaque:      %s\n", humanize.Comma(int64(opaque)))
	fmt.Fprintf(w, "translucent: %s\n", humanize.Comma(int64(translucent)))
	fmt.Fprintf(w, "digest:      %016x\n", vox.Digest(grid))
	return nil
}
