// Package opcodes parses opcode listing files into an address to instruction mapping.
package opcodes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Map assigns an instruction text to the byte address it was disassembled at.
type Map map[uint64]string

// linePattern matches objdump style listing lines: a hex address, a colon,
// the instruction bytes as hex tokens and the instruction text.
var linePattern = regexp.MustCompile(`^\s*([0-9a-fA-F]+):\s+([0-9a-fA-F ]+)\s+(.+)$`)

// ParseFile reads an opcode listing file and returns the address to instruction map.
func ParseFile(path string) (Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening opcode listing %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	annotations, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading opcode listing %s: %w", path, err)
	}
	return annotations, nil
}

// Parse scans an opcode listing. Lines that do not match the listing pattern
// are skipped. If an address occurs multiple times the last instruction wins.
func Parse(reader io.Reader) (Map, error) {
	annotations := Map{}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		match := linePattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		address, err := strconv.ParseUint(match[1], 16, 64)
		if err != nil {
			continue // address does not fit into 64 bit
		}
		annotations[address] = strings.TrimSpace(match[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning listing: %w", err)
	}

	return annotations, nil
}
