package vox

import (
	"fmt"
	"strconv"
)

// ParseHexColor parses "#RRGGBB" (opaque) or "#RRGGBBAA".
func ParseHexColor(hex string) (Voxel, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return Voxel{}, fmt.Errorf("hex inválido: %s", hex)
	}
	h := hex[1:]
	if len(h) != 6 && len(h) != 8 {
		return Voxel{}, fmt.Errorf("hex length inválido: %s", hex)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(h)/2; i++ {
		n, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return Voxel{}, fmt.Errorf("hex inválido: %s: %w", hex, err)
		}
		ch[i] = uint8(n)
	}
	return Voxel{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// Hex formats v as "#RRGGBBAA".
func (v Voxel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", v.R, v.G, v.B, v.A)
}
