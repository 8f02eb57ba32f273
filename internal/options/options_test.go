package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewEncoder(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		wantBytes   int
		expectError bool
	}{
		{name: "8 bit", width: 8, wantBytes: 1},
		{name: "16 bit", width: 16, wantBytes: 2},
		{name: "32 bit", width: 32, wantBytes: 4},
		{name: "64 bit", width: 64, wantBytes: 8},
		{name: "128 bit", width: 128, wantBytes: 16},
		{name: "zero width", width: 0, expectError: true},
		{name: "negative width", width: -8, expectError: true},
		{name: "not a multiple of 8", width: 12, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := NewEncoder(Program{
				MemoryName: DefaultMemoryName,
				Member:     DefaultMember,
				WordWidth:  tt.width,
			})
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.width, opts.WordWidth)
			assert.Equal(t, tt.wantBytes, opts.WordBytes)
			assert.Equal(t, DefaultMemoryName, opts.MemoryName)
			assert.Equal(t, DefaultMember, opts.Member)
		})
	}
}
