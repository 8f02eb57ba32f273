// Package encoder converts a memory image into word based initialization assignments.
package encoder

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/svmemgen/internal/opcodes"
	"github.com/retroenv/svmemgen/internal/options"
)

// Encoder writes one memory assignment line per word of the input image.
type Encoder struct {
	logger      *log.Logger
	options     options.Encoder
	annotations opcodes.Map
}

// New creates a new encoder.
func New(logger *log.Logger, opts options.Encoder, annotations opcodes.Map) *Encoder {
	return &Encoder{
		logger:      logger,
		options:     opts,
		annotations: annotations,
	}
}

// Process streams the image as memory word assignments to the writer.
// The image is partitioned into consecutive words of the configured byte
// width, a short final word is zero padded on the high address side.
// base is the absolute address of the first image byte, annotations are
// resolved against absolute addresses.
func (e *Encoder) Process(image []byte, base uint64, writer io.Writer) error {
	wordBytes := e.options.WordBytes
	e.logger.Info("Encoding memory words",
		log.Int("width", e.options.WordWidth),
		log.Int("word_bytes", wordBytes))

	for addr := 0; addr < len(image); addr += wordBytes {
		chunk := image[addr:min(addr+wordBytes, len(image))]
		if len(chunk) < wordBytes {
			e.logger.Warn("Incomplete memory word, padding with zeros",
				log.Hex("address", base+uint64(addr)))
		}

		if _, err := io.WriteString(writer, e.formatLine(addr, base, chunk)); err != nil {
			return fmt.Errorf("writing assignment at address 0x%X: %w", base+uint64(addr), err)
		}
	}

	e.logger.Info("Memory initialization written",
		log.Int("words", WordCount(len(image), wordBytes)))
	return nil
}

// WordCount returns the number of assignment lines an image of the given
// size produces, counting a padded final word.
func WordCount(imageSize, wordBytes int) int {
	return (imageSize + wordBytes - 1) / wordBytes
}

// formatLine renders one assignment line. The exact token layout is a
// compatibility contract with the testbench preload scripts and has to be
// reproduced verbatim.
func (e *Encoder) formatLine(addr int, base uint64, chunk []byte) string {
	wordBytes := e.options.WordBytes

	// little-endian word value, the byte at the highest chunk offset forms
	// the most significant hex digits
	var value strings.Builder
	for i := wordBytes - 1; i >= 0; i-- {
		b := byte(0)
		if i < len(chunk) {
			b = chunk[i]
		}
		fmt.Fprintf(&value, "%02X", b)
	}

	// padding bytes never carry annotations, only the actual chunk span is looked up
	var instructions []string
	for offset := range chunk {
		byteAddr := base + uint64(addr+offset)
		if instruction, ok := e.annotations[byteAddr]; ok {
			instructions = append(instructions, fmt.Sprintf("0x%X: %s", byteAddr, instruction))
		}
	}
	comment := ""
	if len(instructions) > 0 {
		comment = " // " + strings.Join(instructions, " ; ")
	}

	member := ""
	if e.options.Member != "" {
		member = e.options.Member + "."
	}

	return fmt.Sprintf("%s.%smemory['h%04X] = %d'h%s;%s\n",
		e.options.MemoryName, member, addr/wordBytes, e.options.WordWidth, value.String(), comment)
}
