package vox

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const (
	encDense   = 0 // RGBA per cell
	encSparse  = 1 // occupancy bitmap + RGBA of occupied cells
	encPalette = 2 // palette + bit-packed indices, 0 = empty

	encZstd = 0x80
)

type encoded struct {
	encoding uint8
	payload  []byte
}

func normalize(v Voxel) Voxel {
	if v.Empty() {
		return Voxel{}
	}
	return v
}

func encodeDense(stream []Voxel) []byte {
	out := make([]byte, 0, 4*len(stream))
	for _, v := range stream {
		v = normalize(v)
		out = append(out, v.R, v.G, v.B, v.A)
	}
	return out
}

func encodeSparse(stream []Voxel) []byte {
	bitmap := make([]byte, (len(stream)+7)/8)
	values := make([]byte, 0, len(stream))
	for i, v := range stream {
		if v.Empty() {
			continue
		}
		bitmap[i>>3] |= 1 << (uint(i) & 7)
		values = append(values, v.R, v.G, v.B, v.A)
	}
	return append(bitmap, values...)
}

func decodeDense(payload []byte, n int) ([]Voxel, error) {
	if len(payload) != 4*n {
		return nil, fmt.Errorf("dense payload: want %d bytes, got %d", 4*n, len(payload))
	}
	stream := make([]Voxel, n)
	for i := range stream {
		p := payload[4*i:]
		stream[i] = normalize(Voxel{R: p[0], G: p[1], B: p[2], A: p[3]})
	}
	return stream, nil
}

func decodeSparse(payload []byte, n int) ([]Voxel, error) {
	nb := (n + 7) / 8
	if len(payload) < nb {
		return nil, fmt.Errorf("sparse payload: want at least %d bytes, got %d", nb, len(payload))
	}
	bitmap, values := payload[:nb], payload[nb:]
	stream := make([]Voxel, n)
	p := 0
	for i := 0; i < n; i++ {
		if (bitmap[i>>3]>>(uint(i)&7))&1 == 0 {
			continue
		}
		if p+4 > len(values) {
			return nil, fmt.Errorf("sparse payload truncated at voxel %d", i)
		}
		stream[i] = normalize(Voxel{R: values[p], G: values[p+1], B: values[p+2], A: values[p+3]})
		p += 4
	}
	return stream, nil
}

func zstdCompress(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil), nil
}

// zstdDecompress refuses frames that inflate past limit bytes.
func zstdDecompress(b []byte, limit uint64) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(limit))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

// bestEncoding tries every encoding, raw and compressed, and keeps the smallest.
func bestEncoding(stream []Voxel) (encoded, error) {
	candidates := []encoded{
		{encoding: encDense, payload: encodeDense(stream)},
		{encoding: encSparse, payload: encodeSparse(stream)},
	}
	if p, ok := encodePalette(stream); ok {
		candidates = append(candidates, encoded{encoding: encPalette, payload: p})
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.payload) < len(best.payload) {
			best = c
		}
	}
	for _, c := range candidates {
		zb, err := zstdCompress(c.payload)
		if err != nil {
			return encoded{}, err
		}
		if len(zb) < len(best.payload) {
			best = encoded{encoding: c.encoding | encZstd, payload: zb}
		}
	}
	return best, nil
}

// maxRawPayload bounds the uncompressed payload of an n-cell grid: dense is
// the largest encoding except for a tiny grid with a full palette.
func maxRawPayload(n int) uint64 {
	return 4*uint64(n) + 4*maxPalette + binary.MaxVarintLen64
}

func decodeStream(enc uint8, payload []byte, n int) ([]Voxel, error) {
	if enc&encZstd != 0 {
		var err error
		payload, err = zstdDecompress(payload, maxRawPayload(n))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
	}
	switch enc &^ encZstd {
	case encDense:
		return decodeDense(payload, n)
	case encSparse:
		return decodeSparse(payload, n)
	case encPalette:
		return decodePalette(payload, n)
	default:
		return nil, fmt.Errorf("encoding desconhecido: %d", enc&^encZstd)
	}
}
