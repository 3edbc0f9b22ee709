package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/nsfs/internal/config"
	"github.com/jmgilman/go/nsfs/namespace"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		mode string
		kind namespace.Kind
		want string
	}{
		{name: "always directory", mode: config.ColorAlways, kind: namespace.KindDirectory, want: "\x1b[94mdocs\x1b[0m"},
		{name: "always file", mode: config.ColorAlways, kind: namespace.KindRegularFile, want: "docs"},
		{name: "never directory", mode: config.ColorNever, kind: namespace.KindDirectory, want: "docs"},
		{name: "never file", mode: config.ColorNever, kind: namespace.KindRegularFile, want: "docs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.mode).DisplayName("docs", tt.kind))
		})
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "docs", Plain().DisplayName("docs", namespace.KindDirectory))
}
