package registry

import (
	"reflect"
	"sort"
	"sync"

	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/logging"
)

// family is the type-erased view of a *Registry[B] kept in the global table.
type family interface {
	Info() FamilyInfo
}

// Global table of families, keyed by contract type. The map itself is
// created on the first registration of any family.
var (
	familiesMu sync.RWMutex
	families   map[reflect.Type]family
)

// Register declares that T, whose pointer implements B, is a plug-in of
// family B. It is meant to be called from init or a package-level var
// declaration, and returns an empty value so that the latter works.
//
// A contract mismatch or a duplicate registration panics. Any other
// failure drops the registration with a logged warning.
func Register[B, T any]() struct{} {
	logger := logging.GetLogger("registry")

	reg, err := NewRegistrar[B, T]()
	if err != nil {
		panic(err)
	}

	if err := store(reg); err != nil {
		if errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			panic(err)
		}
		logger.Warn().
			Err(err).
			Str("family", familyName[B]()).
			Str("type", reg.Type().String()).
			Msg("plug-in registration dropped")
		return struct{}{}
	}

	logger.Debug().
		Str("family", familyName[B]()).
		Str("type", reg.Type().String()).
		Msg("plug-in registered")
	return struct{}{}
}

// store adds reg to the global registry of its family. A panic while
// storing is returned as an error so that it never escapes init.
func store[B any](reg Registrar[B]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf(errors.ErrInternal, "storing plug-in in %s: %v", familyName[B](), p)
		}
	}()

	return registryFor[B]().Add(reg)
}

// registryFor returns the global registry of family B, creating it.
func registryFor[B any]() *Registry[B] {
	key := familyType[B]()

	familiesMu.Lock()
	defer familiesMu.Unlock()

	if families == nil {
		families = make(map[reflect.Type]family)
	}
	if f, ok := families[key]; ok {
		return f.(*Registry[B])
	}

	r := New[B](WithCapacity(DefaultCapacity))
	families[key] = r
	return r
}

// lookup returns the global registry of family B, or nil if nothing has
// ever registered against it.
func lookup[B any]() *Registry[B] {
	familiesMu.RLock()
	defer familiesMu.RUnlock()

	f, ok := families[familyType[B]()]
	if !ok {
		return nil
	}
	return f.(*Registry[B])
}

// Plugins returns one instance of every plug-in registered for family B.
// Repeated calls return the same instances. The order is registration
// order and is otherwise unspecified. A family with no registrations
// yields an empty slice.
func Plugins[B any]() []B {
	r := lookup[B]()
	if r == nil {
		return []B{}
	}
	return r.Plugins()
}

// Registrars returns the registrars of family B.
func Registrars[B any]() []Registrar[B] {
	r := lookup[B]()
	if r == nil {
		return []Registrar[B]{}
	}
	return r.Registrars()
}

// Count returns the number of plug-ins registered for family B.
func Count[B any]() int {
	r := lookup[B]()
	if r == nil {
		return 0
	}
	return r.Len()
}

// Describe returns a snapshot of family B. Unlike Families it also
// describes a family nobody registered against, without creating it.
func Describe[B any]() FamilyInfo {
	r := lookup[B]()
	if r == nil {
		return FamilyInfo{Family: familyName[B](), Path: familyPath[B](), Plugins: []PluginInfo{}}
	}
	return r.Info()
}

// Families returns a snapshot of every family that has at least one
// registration, sorted by family name.
func Families() []FamilyInfo {
	familiesMu.RLock()
	out := make([]FamilyInfo, 0, len(families))
	for _, f := range families {
		out = append(out, f.Info())
	}
	familiesMu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Path < out[j].Path
	})
	return out
}
