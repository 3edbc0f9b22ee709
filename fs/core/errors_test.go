package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/nsfs/fs/core"
)

func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrInvalid", core.ErrInvalid, fs.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.coreErr, tt.stdlibErr))
			wrapped := &fs.PathError{Op: "open", Path: "x", Err: tt.stdlibErr}
			assert.True(t, errors.Is(fmt.Errorf("outer: %w", wrapped), tt.coreErr))
		})
	}
}
