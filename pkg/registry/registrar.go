package registry

import (
	"reflect"

	"github.com/arthur-debert/linktime/pkg/errors"
)

// Registrar owns exactly one plug-in instance for the lifetime of the
// process.
type Registrar[B any] interface {
	// Plugin returns the stored instance. Every call returns the same one.
	Plugin() B

	// Type is the concrete type of the instance.
	Type() reflect.Type
}

// Describer is implemented by plug-ins that want a human-readable entry in
// snapshots. It is optional.
type Describer interface {
	Name() string
	Description() string
}

type registrar[B any] struct {
	plugin B
	typ    reflect.Type
}

func (r *registrar[B]) Plugin() B          { return r.plugin }
func (r *registrar[B]) Type() reflect.Type { return r.typ }

// NewRegistrar constructs new(T) and wraps it as a member of family B.
// It fails with ErrContractMismatch when *T does not implement B.
func NewRegistrar[B, T any]() (Registrar[B], error) {
	instance := new(T)
	plugin, ok := any(instance).(B)
	if !ok {
		return nil, errors.Newf(errors.ErrContractMismatch, "%s does not implement %s",
			reflect.TypeOf(instance), familyName[B]()).
			WithDetail("family", familyName[B]()).
			WithDetail("type", reflect.TypeOf(instance).String())
	}

	return &registrar[B]{
		plugin: plugin,
		typ:    reflect.TypeOf(instance),
	}, nil
}

func familyType[B any]() reflect.Type {
	return reflect.TypeFor[B]()
}

func familyName[B any]() string {
	return familyType[B]().String()
}

// familyPath is the import-path-qualified name of B. Unnamed types have
// no package and fall back to their string form.
func familyPath[B any]() string {
	t := familyType[B]()
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
