package opcodes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Map
	}{
		{
			name:  "single instruction",
			input: "04: 93 02 40 06  addi x5,x0,100\n",
			want:  Map{0x04: "addi x5,x0,100"},
		},
		{
			name: "multiple instructions with indentation",
			input: "   0: 97 01 00 00  auipc x3,0x0\n" +
				"   4: 93 82 41 14  addi x5,x3,324\n",
			want: Map{0x00: "auipc x3,0x0", 0x04: "addi x5,x3,324"},
		},
		{
			name: "non matching lines are skipped",
			input: "firmware.elf:     file format elf32-littleriscv\n" +
				"\n" +
				"Disassembly of section .text:\n" +
				"00000000 <_start>:\n" +
				"   0: 6f 00 80 01  jal x0,18 <boot>\n",
			want: Map{0x00: "jal x0,18 <boot>"},
		},
		{
			name: "duplicate address keeps last instruction",
			input: "8: 13 00 00 00  nop\n" +
				"8: 73 00 10 00  ebreak\n",
			want: Map{0x08: "ebreak"},
		},
		{
			name:  "instruction text is trimmed",
			input: "c: 67 80 00 00  jalr x0,0(x1)   \n",
			want:  Map{0x0c: "jalr x0,0(x1)"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Map{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, len(tt.want), len(got))
			for address, instruction := range tt.want {
				assert.Equal(t, instruction, got[address])
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Run("existing listing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "firmware.lst")
		err := os.WriteFile(path, []byte("10: 93 02 40 06  addi x5,x0,100\n"), 0o644)
		assert.NoError(t, err)

		annotations, err := ParseFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "addi x5,x0,100", annotations[0x10])
	})

	t.Run("missing listing is an error", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "missing.lst"))
		assert.Error(t, err)
	})
}
