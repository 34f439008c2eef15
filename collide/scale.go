package collide

import "fmt"

// Scale maps boxes built on a grid reduced by factor back to full-resolution
// units. The result is always a fresh slice.
func Scale(boxes []Box, factor int) ([]Box, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale by %d: %w", factor, ErrBadFactor)
	}
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		if factor != 1 {
			b = Box{Origin: b.Origin.Mul(factor), Extents: b.Extents.Mul(factor)}
		}
		out[i] = b
	}
	return out, nil
}
