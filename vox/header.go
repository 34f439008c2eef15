package vox

import "fmt"

// Header holds the fixed fields of a .voxg file.
// Enc carries the encoding id with bit 0x80 set when the payload is zstd-compressed.
type Header struct {
	Ver  uint8
	Enc  uint8
	W    uint16
	H    uint16
	D    uint16
	PLen uint32
}

const (
	magic      = "VOXG"
	version1   = 1
	headerSize = 4 + 1 + 1 + 2*3 + 4
)

// Encoding names the payload encoding, e.g. "palette+zstd".
func (h Header) Encoding() string {
	var name string
	switch h.Enc &^ encZstd {
	case encDense:
		name = "dense"
	case encSparse:
		name = "sparse"
	case encPalette:
		name = "palette"
	default:
		name = fmt.Sprintf("enc(%d)", h.Enc&^encZstd)
	}
	if h.Enc&encZstd != 0 {
		name += "+zstd"
	}
	return name
}
