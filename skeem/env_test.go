package skeem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertIntEqual(t *testing.T, expect int, v *Val) {
	t.Helper()
	if assert.Equal(t, VInt, v.Type) {
		assert.Equal(t, expect, v.Int)
	}
}

func TestFrameRoot(t *testing.T) {
	env := NewFrame(nil)
	env.Define("a", Int(1))
	_, err := env.Lookup("b")
	require.Error(t, err)
	assert.True(t, IsNameError(err))
	v, err := env.Lookup("a")
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
}

func TestFrameChild(t *testing.T) {
	root := NewFrame(nil)
	root.Define("a", Int(1))
	root.Define("b", Int(2))
	env := NewFrame(root)
	env.Define("b", Int(3))

	v, err := env.Lookup("a")
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)

	// local binding shadows the parent's
	v, err = env.Lookup("b")
	require.NoError(t, err)
	AssertIntEqual(t, 3, v)

	// the parent's binding is untouched
	v, err = root.Lookup("b")
	require.NoError(t, err)
	AssertIntEqual(t, 2, v)
}

func TestFrameDefineLocalOnly(t *testing.T) {
	root := NewFrame(nil)
	root.Define("a", Int(1))
	env := NewFrame(root)
	env.Define("a", Int(2))
	v, err := root.Lookup("a")
	require.NoError(t, err)
	AssertIntEqual(t, 1, v)
}

func TestFrameRedefine(t *testing.T) {
	env := NewFrame(nil)
	env.Define("a", Int(1))
	env.Define("a", Int(2))
	v, err := env.Lookup("a")
	require.NoError(t, err)
	AssertIntEqual(t, 2, v)
}

func TestFrameNames(t *testing.T) {
	root := NewFrame(nil)
	root.Define("zeta", Int(1))
	env := NewFrame(root)
	env.Define("beta", Int(2))
	env.Define("alpha", Int(3))
	assert.Equal(t, []string{"alpha", "beta"}, env.Names())
}

func TestRootFrame(t *testing.T) {
	root := RootFrame()
	assert.Same(t, root, RootFrame())
	for _, name := range []string{"+", "-", "*", "/"} {
		v, err := root.Lookup(name)
		require.NoError(t, err, "builtin %q", name)
		assert.Equal(t, VFun, v.Type, "builtin %q", name)
		assert.NotNil(t, v.Builtin, "builtin %q", name)
	}
}
