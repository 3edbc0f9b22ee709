package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, CodeSeedFailed, "seed failed")

	require.NotNil(t, err)
	require.Equal(t, CodeSeedFailed, err.Code())
	require.Equal(t, "seed failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeNotFound, "test"))
	require.Nil(t, Wrapf(nil, CodeNotFound, "test %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeNotFound, "test", map[string]interface{}{"k": "v"}))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("yaml: line 3: mapping values are not allowed")
	err := Wrapf(cause, CodeConfigLoadFailed, "failed to parse %s", "nsh.yaml")

	require.Equal(t, "failed to parse nsh.yaml", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("boom")
	ctx := map[string]interface{}{"file": "nsh.yaml"}

	err := WrapWithContext(cause, CodeConfigLoadFailed, "failed", ctx)
	ctx["file"] = "mutated"

	require.Equal(t, "nsh.yaml", err.Context()["file"])
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext_NilContext(t *testing.T) {
	err := WrapWithContext(stderrors.New("boom"), CodeInternal, "failed", nil)
	require.Nil(t, err.Context())
}
