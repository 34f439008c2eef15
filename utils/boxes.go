package utils

import (
	"encoding/json"
	"io"

	"github.com/voxelsplace/voxmesh/collide"
	"github.com/voxelsplace/voxmesh/vox"
)

// RunBoxes prints the collision proxies of a .voxg file as JSON.
func RunBoxes(inPath string, d collide.Detail, w io.Writer) error {
	grid, err := vox.LoadGrid(inPath)
	if err != nil {
		return err
	}
	boxes, err := collide.Build(grid, d, nil)
	if err != nil {
		return err
	}
	if boxes == nil {
		boxes = []collide.Box{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Detail collide.Detail `json:"detail"`
		Boxes  []collide.Box  `json:"boxes"`
	}{d, boxes})
}
