package vox

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// palettes larger than this are never smaller than the sparse encoding
const maxPalette = 1 << 12

// indexBits is the width of one packed palette index; index 0 means empty.
func indexBits(paletteSize int) uint {
	return uint(bits.Len(uint(paletteSize)))
}

// packIndices stores each index in width bits, least significant bit first.
func packIndices(idx []uint16, width uint) []byte {
	out := make([]byte, (len(idx)*int(width)+7)/8)
	bit := 0
	for _, v := range idx {
		for b := uint(0); b < width; b++ {
			if v>>b&1 != 0 {
				out[bit>>3] |= 1 << (bit & 7)
			}
			bit++
		}
	}
	return out
}

// indexAt reads the i-th index written by packIndices. data must hold it.
func indexAt(data []byte, i int, width uint) uint16 {
	var v uint16
	bit := i * int(width)
	for b := uint(0); b < width; b++ {
		if data[bit>>3]>>(bit&7)&1 != 0 {
			v |= 1 << b
		}
		bit++
	}
	return v
}

// encodePalette writes uvarint(len(palette)), the palette colours and the
// packed per-cell indices. It gives up when the grid has too many colours.
func encodePalette(stream []Voxel) ([]byte, bool) {
	index := make(map[Voxel]uint16)
	var pal []Voxel
	idx := make([]uint16, len(stream))
	for i, v := range stream {
		if v.Empty() {
			continue
		}
		k, ok := index[v]
		if !ok {
			if len(pal) == maxPalette {
				return nil, false
			}
			pal = append(pal, v)
			k = uint16(len(pal))
			index[v] = k
		}
		idx[i] = k
	}
	out := binary.AppendUvarint(nil, uint64(len(pal)))
	for _, c := range pal {
		out = append(out, c.R, c.G, c.B, c.A)
	}
	return append(out, packIndices(idx, indexBits(len(pal)))...), true
}

func decodePalette(payload []byte, n int) ([]Voxel, error) {
	size, pos := binary.Uvarint(payload)
	if pos <= 0 {
		return nil, fmt.Errorf("palette size: bad uvarint")
	}
	if size > maxPalette || uint64(len(payload)-pos) < 4*size {
		return nil, fmt.Errorf("palette truncated (%d entries)", size)
	}
	pal := make([]Voxel, size+1)
	for i := 1; i <= int(size); i++ {
		p := payload[pos:]
		pal[i] = normalize(Voxel{R: p[0], G: p[1], B: p[2], A: p[3]})
		pos += 4
	}
	width := indexBits(int(size))
	data := payload[pos:]
	if need := (n*int(width) + 7) / 8; len(data) < need {
		return nil, fmt.Errorf("palette indices: want %d bytes, got %d", need, len(data))
	}
	stream := make([]Voxel, n)
	for i := range stream {
		k := indexAt(data, i, width)
		if int(k) > int(size) {
			return nil, fmt.Errorf("palette index out of range: %d", k)
		}
		stream[i] = pal[k]
	}
	return stream, nil
}
