// Package loader handles input image loading operations.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcinbor85/gohex"
)

// Image is a flat memory image and the byte address it is linked at.
// Opcode listing addresses are absolute, word addresses within the memory
// array are relative to Base.
type Image struct {
	Base uint64
	Data []byte
}

// Loader reads memory images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input image into a flat byte buffer. Files with a .hex or
// .ihex extension are parsed as Intel HEX, anything else is read as raw
// binary based at address 0.
func (l *Loader) Load(path string) (*Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".ihex":
		return l.loadIntelHex(path)
	default:
		return l.loadBinary(path)
	}
}

func (l *Loader) loadBinary(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return &Image{Data: data}, nil
}

// loadIntelHex flattens all data segments of an Intel HEX file into one
// buffer based at the lowest segment address, gaps are zero filled.
func (l *Loader) loadIntelHex(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return nil, fmt.Errorf("parsing Intel HEX image %s: %w", path, err)
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return &Image{}, nil
	}

	start := segments[0].Address
	end := segments[0].Address + uint32(len(segments[0].Data))
	for _, segment := range segments[1:] {
		if segment.Address < start {
			start = segment.Address
		}
		if segmentEnd := segment.Address + uint32(len(segment.Data)); segmentEnd > end {
			end = segmentEnd
		}
	}

	return &Image{
		Base: uint64(start),
		Data: mem.ToBinary(start, end-start, 0x00),
	}, nil
}
