package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/voxelsplace/voxmesh/vox"
)

// noisePalette holds the colours used by gennoise; alpha is applied per voxel.
var noisePalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#fabebe", "#008080", "#e6beff",
	"#9a6324", "#fffac8", "#800000", "#aaffc3", "#808000", "#000075",
}

func clampPercent(p float64) float64 {
	return max(0, min(100, p))
}

// generateNoiseGrid fills percentage of a size³ grid with random palette
// colours; translucent percent of the filled cells get a random alpha in [32, 224].
func generateNoiseGrid(size int, percentage, translucent float64, r *rand.Rand) (*vox.DenseGrid, error) {
	palette := make([]vox.Voxel, len(noisePalette))
	for i, hex := range noisePalette {
		v, err := vox.ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		palette[i] = v
	}

	total := size * size * size
	want := int(float64(total)*(clampPercent(percentage)/100.0) + 0.5)
	want = min(want, total)

	// Fisher-Yates shuffle only first 'want' items
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	grid := vox.NewDenseGrid(size, size, size)
	share := clampPercent(translucent) / 100.0
	for _, i := range idx[:want] {
		c := vox.Coord{i % size, (i / size) % size, i / (size * size)}
		v := palette[r.Intn(len(palette))]
		if r.Float64() < share {
			v.A = uint8(32 + r.Intn(193))
		}
		grid.Set(c, v)
	}
	return grid, nil
}

// RunGenerateNoise writes amount random .voxg files named 0.voxg..(amount-1).voxg
// to outDir. File i is generated from seed derived from baseSeed and i.
func RunGenerateNoise(size int, percentage, translucent float64, amount int, outDir string, baseSeed uint64) error {
	if size < 1 {
		return fmt.Errorf("size must be positive, got %d", size)
	}
	if amount < 0 {
		amount = 0
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < amount; i++ {
		// Weyl-like progression so neighbouring files do not share a stream
		const weyl = uint64(0x9e3779b97f4a7c15)
		seed := baseSeed ^ (uint64(i)+1)*weyl
		r := rand.New(rand.NewSource(int64(seed & 0x7fffffffffffffff)))

		grid, err := generateNoiseGrid(size, percentage, translucent, r)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("%d.voxg", i))
		if err := vox.SaveGrid(grid, path); err != nil {
			return fmt.Errorf("falha ao salvar %s: %w", path, err)
		}
	}
	return nil
}
