// Package options contains the program options.
package options

import "fmt"

// Default option values.
const (
	DefaultMemoryName = "mock_mem"
	DefaultMember     = "block_ram_inst"
	DefaultWordWidth  = 8
)

// Program options of the converter.
type Program struct {
	Input   string // input .bin or .hex image
	Output  string // output listing file
	Opcodes string // optional opcode listing used for comments

	MemoryName string // name of the memory instance in the generated assignments
	Member     string // instance path between memory name and .memory
	WordWidth  int    // width of each memory word in bits

	Verify bool
	Debug  bool
	Quiet  bool
}

// Encoder defines options to control the memory word encoder.
type Encoder struct {
	MemoryName string
	Member     string // empty selects the legacy simplified addressing
	WordWidth  int    // word width in bits
	WordBytes  int    // word width in bytes
}

// NewEncoder validates the word width and derives encoder options from the program options.
func NewEncoder(opts Program) (Encoder, error) {
	if opts.WordWidth <= 0 || opts.WordWidth%8 != 0 {
		return Encoder{}, fmt.Errorf("word width %d must be a positive multiple of 8", opts.WordWidth)
	}

	return Encoder{
		MemoryName: opts.MemoryName,
		Member:     opts.Member,
		WordWidth:  opts.WordWidth,
		WordBytes:  opts.WordWidth / 8,
	}, nil
}
