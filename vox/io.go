package vox

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// MaxCells bounds the number of cells a .voxg grid may declare.
const MaxCells = 1 << 24

// SaveGrid writes g to filename as a .voxg file.
func SaveGrid(g *DenseGrid, filename string) error {
	data, err := EncodeGrid(g)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// EncodeGrid returns g as a complete .voxg file, picking the smallest encoding.
func EncodeGrid(g *DenseGrid) ([]byte, error) {
	if g.sx > math.MaxUint16 || g.sy > math.MaxUint16 || g.sz > math.MaxUint16 {
		return nil, fmt.Errorf("grid too large for .voxg: %dx%dx%d", g.sx, g.sy, g.sz)
	}
	if len(g.cells) > MaxCells {
		return nil, fmt.Errorf("grid too large for .voxg: %d cells, limit %d", len(g.cells), MaxCells)
	}
	enc, err := bestEncoding(flatten(g))
	if err != nil {
		return nil, err
	}
	hdr := Header{Ver: version1, Enc: enc.encoding, W: uint16(g.sx), H: uint16(g.sy), D: uint16(g.sz)}
	return BuildFromHeaderAndPayload(hdr, enc.payload), nil
}

// BuildFromHeaderAndPayload assembles a .voxg file. PLen is taken from payload.
func BuildFromHeaderAndPayload(h Header, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(payload))
	buf.WriteString(magic)
	_ = binary.Write(&buf, binary.LittleEndian, h.Ver)
	_ = binary.Write(&buf, binary.LittleEndian, h.Enc)
	_ = binary.Write(&buf, binary.LittleEndian, h.W)
	_ = binary.Write(&buf, binary.LittleEndian, h.H)
	_ = binary.Write(&buf, binary.LittleEndian, h.D)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	_, _ = buf.Write(payload)
	return buf.Bytes()
}

// ParseHeader validates the fixed header of a .voxg file and returns it with the payload.
func ParseHeader(data []byte) (Header, []byte, error) {
	var hdr Header
	if len(data) < headerSize || string(data[:4]) != magic {
		return hdr, nil, fmt.Errorf("não é um .voxg válido")
	}
	r := bytes.NewReader(data[4:headerSize])
	for _, f := range []any{&hdr.Ver, &hdr.Enc, &hdr.W, &hdr.H, &hdr.D, &hdr.PLen} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return hdr, nil, err
		}
	}
	if hdr.Ver != version1 {
		return hdr, nil, fmt.Errorf(".voxg versão não suportada: %d", hdr.Ver)
	}
	if uint32(len(data)-headerSize) != hdr.PLen {
		return hdr, nil, fmt.Errorf("payload length inválido (esperado %d, got %d)", hdr.PLen, len(data)-headerSize)
	}
	return hdr, data[headerSize:], nil
}

// DecodeGrid parses a .voxg file from memory.
func DecodeGrid(data []byte) (*DenseGrid, error) {
	hdr, payload, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	n := int(hdr.W) * int(hdr.H) * int(hdr.D)
	if n > MaxCells {
		return nil, fmt.Errorf("grid %dx%dx%d excede o limite de %d células", hdr.W, hdr.H, hdr.D, MaxCells)
	}
	stream, err := decodeStream(hdr.Enc, payload, n)
	if err != nil {
		return nil, err
	}
	g := NewDenseGrid(int(hdr.W), int(hdr.H), int(hdr.D))
	applyOrder(g, stream)
	return g, nil
}

func LoadGrid(filename string) (*DenseGrid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	g, err := DecodeGrid(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}
