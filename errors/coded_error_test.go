package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodedError_Error(t *testing.T) {
	err := New(CodeNotFound, "No such file or directory")
	require.Equal(t, "[NOT_FOUND] No such file or directory", err.Error())
}

func TestCodedError_Error_WithCause(t *testing.T) {
	cause := stderrors.New("open /home/user/.nsh.yaml: permission denied")
	err := Wrap(cause, CodeConfigLoadFailed, "failed to read config")

	require.Equal(t,
		"[CONFIG_LOAD_FAILED] failed to read config: open /home/user/.nsh.yaml: permission denied",
		err.Error())
}

func TestCodedError_Code(t *testing.T) {
	codes := []Code{
		CodeNotFound,
		CodeAlreadyExists,
		CodeNotADirectory,
		CodeIsADirectory,
		CodeInvalidInput,
		CodeInvalidConfig,
		CodeConfigLoadFailed,
		CodeSeedFailed,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "message")
			require.Equal(t, code, err.Code())
			require.Equal(t, "message", err.Message())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "indent out of range: %d", 42)
	require.Equal(t, "indent out of range: 42", err.Message())
	require.Nil(t, err.Unwrap())
}

func TestCodedError_Context_Copy(t *testing.T) {
	err := WithContext(New(CodeNotFound, "missing"), "path", "/a")

	ctx := err.Context()
	ctx["path"] = "/mutated"

	require.Equal(t, "/a", err.Context()["path"])
}

func TestCodedError_Context_Nil(t *testing.T) {
	err := New(CodeNotFound, "missing")
	require.Nil(t, err.Context())
}

func TestCodedError_Unwrap_Chain(t *testing.T) {
	root := stderrors.New("root cause")
	inner := Wrap(root, CodeInternal, "inner")
	outer := Wrap(inner, CodeSeedFailed, "outer")

	require.True(t, stderrors.Is(outer, root))
	require.True(t, stderrors.Is(outer, inner))

	var coded Error
	require.True(t, stderrors.As(outer, &coded))
	require.Equal(t, CodeSeedFailed, coded.Code())
}
