package skeem

import (
	"sort"
	"sync"
)

// Frame is a lexical environment.  A Frame holds local symbol bindings and a
// parent frame; lookups that miss locally continue outward through the parent
// chain.  Frames may be shared by any number of closures but only Define ever
// writes into a frame after creation.
type Frame struct {
	scope  map[string]*Val
	parent *Frame
}

// NewFrame initializes and returns a new Frame.  A nil parent produces a root
// frame.
func NewFrame(parent *Frame) *Frame {
	return &Frame{
		scope:  make(map[string]*Val),
		parent: parent,
	}
}

// Define binds name to v in f's own scope.  Ancestor frames are never
// touched; rebinding an existing name overwrites it.
func (f *Frame) Define(name string, v *Val) {
	f.scope[name] = v
}

// Lookup resolves name against f and its ancestors, innermost first.  Lookup
// returns a name error when no frame on the chain binds name.
func (f *Frame) Lookup(name string) (*Val, error) {
	for env := f; env != nil; env = env.parent {
		if v, ok := env.scope[name]; ok {
			return v, nil
		}
	}
	return nil, NameErrorf("unbound symbol: %s", name)
}

// Names returns the names bound directly in f, sorted.  Ancestor bindings are
// not included.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.scope))
	for name := range f.scope {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	rootOnce  sync.Once
	rootFrame *Frame
)

// RootFrame returns the process-wide frame holding the builtin bindings.  It
// is populated once and never written afterwards; evaluations share it as the
// final ancestor of every frame chain.
func RootFrame() *Frame {
	rootOnce.Do(func() {
		rootFrame = NewFrame(nil)
		for _, def := range langBuiltins {
			rootFrame.scope[def.name] = Fun(def.name, def.fun)
		}
	})
	return rootFrame
}
