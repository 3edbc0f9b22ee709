package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	depth int
	name  string
}

func collect(t *testing.T, ns *Namespace, path string) []line {
	t.Helper()
	seq, err := ns.Tree(path)
	require.NoError(t, err)
	var out []line
	for depth, name := range seq {
		out = append(out, line{depth, name})
	}
	return out
}

func TestTree_Scenario(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkdir("/c"))
	require.NoError(t, ns.Mkdir("/a"))
	require.NoError(t, ns.Mkfile("/a/b"))

	assert.Equal(t, []line{
		{0, "/"},
		{1, "a"},
		{2, "b"},
		{1, "c"},
	}, collect(t, ns, ""))
}

func TestTree_Subdirectory(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkdir("/a"))
	require.NoError(t, ns.Mkdir("/a/x"))
	require.NoError(t, ns.Mkdir("/a/x/y"))
	require.NoError(t, ns.Mkfile("/a/w"))
	require.NoError(t, ns.Mkdir("/b"))

	assert.Equal(t, []line{
		{0, "/a"},
		{1, "w"},
		{1, "x"},
		{2, "y"},
	}, collect(t, ns, "/a"))

	require.NoError(t, ns.Cd("/a/x"))
	assert.Equal(t, []line{{0, "/a/x"}, {1, "y"}}, collect(t, ns, ""))
	assert.Equal(t, []line{{0, "/a/x/y"}}, collect(t, ns, "y"))
}

func TestTree_Failures(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkfile("/f"))

	_, err := ns.Tree("/nope")
	assert.ErrorIs(t, err, ErrNoSuchEntry)

	_, err = ns.Tree("/f")
	assert.ErrorIs(t, err, ErrNotADirectory)
	assert.Equal(t, "tree: '/f': Not a directory", err.Error())
}

func TestTree_IsRestartable(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkdir("/a"))
	require.NoError(t, ns.Mkdir("/a/b"))

	seq, err := ns.Tree("/")
	require.NoError(t, err)

	var first, second []line
	for d, n := range seq {
		first = append(first, line{d, n})
	}
	for d, n := range seq {
		second = append(second, line{d, n})
	}
	assert.Equal(t, first, second)
}

func TestTree_StopsEarly(t *testing.T) {
	ns := New()
	for _, p := range []string{"/a", "/a/b", "/a/b/c", "/d"} {
		require.NoError(t, ns.Mkdir(p))
	}

	seq, err := ns.Tree("")
	require.NoError(t, err)

	var names []string
	for _, name := range seq {
		names = append(names, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"/", "a", "b"}, names)
}

func TestRenderSubtree(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkdir("/a"))
	require.NoError(t, ns.Mkfile("/a/z"))
	require.NoError(t, ns.Mkdir("/a/m"))
	require.NoError(t, ns.Mkfile("/a/m/k"))

	a, err := ns.Resolve("/a")
	require.NoError(t, err)

	var got []line
	for d, n := range renderSubtree(a, 3) {
		got = append(got, line{d, n})
	}
	assert.Equal(t, []line{{3, "a"}, {4, "m"}, {5, "k"}, {4, "z"}}, got)
}

func TestWalk(t *testing.T) {
	ns := New()
	require.NoError(t, ns.Mkdir("/a"))
	require.NoError(t, ns.Mkfile("/a/f"))
	require.NoError(t, ns.Mkdir("/b"))

	seq, err := ns.Walk("")
	require.NoError(t, err)

	var got []string
	var kinds []Kind
	for depth, e := range seq {
		got = append(got, string(rune('0'+depth))+e.Path())
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []string{"0/", "1/a", "2/a/f", "1/b"}, got)
	assert.Equal(t, []Kind{KindDirectory, KindDirectory, KindRegularFile, KindDirectory}, kinds)

	_, err = ns.Walk("/a/f")
	assert.ErrorIs(t, err, ErrNotADirectory)
}
