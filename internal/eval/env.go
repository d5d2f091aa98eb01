package eval

import (
	"sort"

	"github.com/benbjohnson/immutable"

	"github.com/nojima/toylang/internal/value"
)

// Env is an immutable mapping from names to values. Extending an Env
// returns a new Env that shares structure with the original; the original
// stays valid and unchanged. The zero Env is empty and ready to use.
type Env struct {
	vars *immutable.Map[string, value.Value]
}

// NewEnv returns an empty environment.
func NewEnv() Env {
	return Env{vars: immutable.NewMap[string, value.Value](immutable.NewHasher(""))}
}

// WithVariable returns a new Env in which name is bound to v. An existing
// binding for name is shadowed.
func (e Env) WithVariable(name string, v value.Value) Env {
	vars := e.vars
	if vars == nil {
		vars = NewEnv().vars
	}
	return Env{vars: vars.Set(name, v)}
}

// Lookup returns the value bound to name.
func (e Env) Lookup(name string) (value.Value, bool) {
	if e.vars == nil {
		return nil, false
	}
	return e.vars.Get(name)
}

// Len returns the number of bound names.
func (e Env) Len() int {
	if e.vars == nil {
		return 0
	}
	return e.vars.Len()
}

// Names returns the bound names in sorted order.
func (e Env) Names() []string {
	if e.vars == nil {
		return nil
	}
	names := make([]string, 0, e.vars.Len())
	itr := e.vars.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
