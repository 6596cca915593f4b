package codec

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/wippyai/displaywire/codec/internal/plan"
	"github.com/wippyai/displaywire/errors"
	"go.uber.org/zap"
)

// Registry records type declarations and compiles them into codec plans.
// Compilation is lazy: a declaration is checked the first time it is used or
// when Verify is called, so declarations may appear in any order.
type Registry struct {
	decls     map[reflect.Type]*declaration
	cache     sync.Map // reflect.Type -> *plan.Type
	mu        sync.RWMutex
	compileMu sync.Mutex
}

type declaration struct {
	typ   reflect.Type
	name  string
	cases []string
	shape Shape
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decls: make(map[reflect.Type]*declaration)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when no WithRegistry
// option is given.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) declare(t reflect.Type, shape Shape, name string, cases []string) *declaration {
	r.mu.Lock()
	if existing, ok := r.decls[t]; ok {
		r.mu.Unlock()
		if existing.shape != shape {
			panic(fmt.Sprintf("codec: %s already declared as %s, redeclared as %s", t, existing.shape, shape))
		}
		if existing.name != name {
			panic(fmt.Sprintf("codec: %s already declared as %q, redeclared as %q", t, existing.name, name))
		}
		if shape == ShapeEnum && !slices.Equal(existing.cases, cases) {
			panic(fmt.Sprintf("codec: enum %s redeclared with different cases", t))
		}
		return existing
	}
	for other, d := range r.decls {
		if d.name == name {
			r.mu.Unlock()
			panic(fmt.Sprintf("codec: name %q already declared for %s, cannot reuse it for %s", name, other, t))
		}
	}

	d := &declaration{
		typ:   t,
		shape: shape,
		name:  name,
		cases: slices.Clone(cases),
	}
	r.decls[t] = d
	r.mu.Unlock()

	// A new declaration can change how already compiled types embed t.
	r.compileMu.Lock()
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
	r.compileMu.Unlock()

	return d
}

func (r *Registry) lookupDecl(t reflect.Type) (*declaration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decls[t]
	return d, ok
}

// plan returns the compiled plan of a declared type.
func (r *Registry) plan(t reflect.Type) (*plan.Type, error) {
	if cached, ok := r.cache.Load(t); ok {
		return cached.(*plan.Type), nil
	}

	r.compileMu.Lock()
	defer r.compileMu.Unlock()

	if cached, ok := r.cache.Load(t); ok {
		return cached.(*plan.Type), nil
	}

	d, ok := r.lookupDecl(t)
	if !ok {
		return nil, errors.Undeclared(nil, t.String())
	}

	c := newCompiler(r)
	p, err := c.compileDeclared(d, []string{d.name})
	if err != nil {
		return nil, err
	}

	for typ, built := range c.building {
		r.cache.Store(typ, built)
	}

	Logger().Debug("compiled wire type",
		zap.String("type", d.name),
		zap.Stringer("shape", d.shape),
		zap.Int("declared_types", len(c.building)),
	)
	return p, nil
}

// Verify compiles every declaration and returns all failures joined.
func (r *Registry) Verify() error {
	var errs []error
	for _, t := range r.Types() {
		if _, err := r.plan(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Types returns the declared Go types sorted by declared name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	decls := make([]*declaration, 0, len(r.decls))
	for _, d := range r.decls {
		decls = append(decls, d)
	}
	r.mu.RUnlock()

	sort.Slice(decls, func(i, j int) bool {
		if decls[i].name != decls[j].name {
			return decls[i].name < decls[j].name
		}
		return decls[i].typ.String() < decls[j].typ.String()
	})

	types := make([]reflect.Type, len(decls))
	for i, d := range decls {
		types[i] = d.typ
	}
	return types
}

// TypeByName finds a declared type by its declared name. Names are unique
// within a registry.
func (r *Registry) TypeByName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for t, d := range r.decls {
		if d.name == name {
			return t, true
		}
	}
	return nil, false
}

// Lookup returns the compiled layout of a declared type. It reports false
// when t is not declared or its declaration does not compile.
func (r *Registry) Lookup(t reflect.Type) (Info, bool) {
	d, ok := r.lookupDecl(t)
	if !ok {
		return Info{}, false
	}
	p, err := r.plan(t)
	if err != nil {
		return Info{}, false
	}
	return newInfo(d.shape, p), true
}
