// Package verification re-decodes generated listings and compares them against the input image.
package verification

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/svmemgen/internal/encoder"
	"github.com/retroenv/svmemgen/internal/options"
)

// VerifyOutput decodes every assignment line of the generated listing and
// checks that the decoded bytes reproduce the input image. Padding bytes of
// the final word have to decode to zero.
func VerifyOutput(logger *log.Logger, opts options.Encoder, image []byte, output io.Reader) error {
	wordBytes := opts.WordBytes
	wantLines := encoder.WordCount(len(image), wordBytes)
	logger.Debug("Verifying generated listing", log.Int("lines", wantLines))

	lineNumber := 0
	scanner := bufio.NewScanner(output)
	for scanner.Scan() {
		index, word, err := decodeLine(scanner.Text(), wordBytes)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber+1, err)
		}
		if index != lineNumber {
			return fmt.Errorf("line %d: memory index %d out of order", lineNumber+1, index)
		}

		addr := index * wordBytes
		for i, b := range word {
			byteAddr := addr + i
			want := byte(0)
			if byteAddr < len(image) {
				want = image[byteAddr]
			}
			if b != want {
				return fmt.Errorf("byte mismatch at address 0x%X: output 0x%02X, image 0x%02X",
					byteAddr, b, want)
			}
		}
		lineNumber++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading generated output: %w", err)
	}

	if lineNumber != wantLines {
		return fmt.Errorf("mismatched line count, %d != %d", lineNumber, wantLines)
	}
	return nil
}

// decodeLine extracts the memory index and the little-endian word bytes from
// an assignment line.
func decodeLine(line string, wordBytes int) (int, []byte, error) {
	if comment := strings.Index(line, "//"); comment != -1 {
		line = line[:comment]
	}

	open := strings.Index(line, "['h")
	closing := strings.Index(line, "]")
	if open == -1 || closing == -1 || closing < open {
		return 0, nil, fmt.Errorf("no memory index in %q", line)
	}
	index, err := strconv.ParseInt(line[open+3:closing], 16, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("parsing memory index: %w", err)
	}

	rest := line[closing+1:]
	tick := strings.Index(rest, "'h")
	semicolon := strings.Index(rest, ";")
	if tick == -1 || semicolon == -1 || semicolon < tick {
		return 0, nil, fmt.Errorf("no word literal in %q", line)
	}
	literal := strings.TrimSpace(rest[tick+2 : semicolon])
	if len(literal) != wordBytes*2 {
		return 0, nil, fmt.Errorf("word literal %q has %d digits, want %d",
			literal, len(literal), wordBytes*2)
	}

	word := make([]byte, wordBytes)
	for i := range word {
		digits := literal[len(literal)-2*(i+1) : len(literal)-2*i]
		b, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return 0, nil, fmt.Errorf("parsing word literal %q: %w", literal, err)
		}
		word[i] = byte(b)
	}
	return int(index), word, nil
}
