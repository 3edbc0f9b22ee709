package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/nsfs/fs/core"
)

func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{name: "Unknown", fsType: core.FSTypeUnknown, expected: "unknown"},
		{name: "Local", fsType: core.FSTypeLocal, expected: "local"},
		{name: "Memory", fsType: core.FSTypeMemory, expected: "memory"},
		{name: "Invalid", fsType: core.FSType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fsType.String())
		})
	}
}
