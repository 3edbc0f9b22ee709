package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeNotADirectory, "Not a directory")
	err = WithContext(err, "path", "/a/b")

	require.Equal(t, CodeNotADirectory, err.Code())
	require.Equal(t, "/a/b", err.Context()["path"])
}

func TestWithContext_Chaining(t *testing.T) {
	err := New(CodeAlreadyExists, "File exists")
	err = WithContext(err, "op", "mkdir")
	err = WithContext(err, "path", "/a")

	require.Equal(t, map[string]interface{}{"op": "mkdir", "path": "/a"}, err.Context())
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("plain")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain", err.Message())
	require.Equal(t, stdErr, err.Unwrap())
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(CodeNotFound, "missing")
	_ = WithContext(original, "path", "/x")

	require.Nil(t, original.Context())
}

func TestWithContextMap_Override(t *testing.T) {
	err := WithContext(New(CodeNotFound, "missing"), "path", "/old")
	err = WithContextMap(err, map[string]interface{}{"path": "/new", "op": "cd"})

	require.Equal(t, "/new", err.Context()["path"])
	require.Equal(t, "cd", err.Context()["op"])
}
