package registry

import (
	"fmt"
	"reflect"

	"github.com/samber/do/v2"
)

// Resolver yields a capability instance. It is either a TypeRef or a
// Factory; no other implementations exist.
type Resolver interface {
	isResolver()
}

// Factory is a zero-argument resolver. Its return value cannot be inspected
// without calling it, so conformance is checked at resolution time.
type Factory func() (any, error)

func (Factory) isResolver() {}

// TypeRef references a concrete type by its reflect.Type together with a
// constructor that instantiates it through a do injector. The zero TypeRef
// references no type.
type TypeRef struct {
	typ       reflect.Type
	construct func(i do.Injector) (any, error)
}

func (TypeRef) isResolver() {}

// TypeOf returns a reference to T. Instances are always *T. When
// instantiated with a non-nil injector, struct fields of T tagged `do:""`
// or `do:"name"` are filled from the injector; without one, a pointer to
// the zero value of T is returned.
func TypeOf[T any]() TypeRef {
	typ := reflect.TypeFor[T]()
	return TypeRef{
		typ: typ,
		construct: func(i do.Injector) (any, error) {
			if i == nil || typ.Kind() != reflect.Struct {
				return new(T), nil
			}
			v, err := do.InvokeStruct[T](i)
			if err != nil {
				return nil, err
			}
			return addressable(typ, v), nil
		},
	}
}

// addressable returns v as a pointer to typ, copying it when v is a value.
func addressable(typ reflect.Type, v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return v
	}
	p := reflect.New(typ)
	p.Elem().Set(rv)
	return p.Interface()
}

// Type returns the referenced type, or nil for the zero TypeRef.
func (r TypeRef) Type() reflect.Type {
	return r.typ
}

// IsZero reports whether r references no type.
func (r TypeRef) IsZero() bool {
	return r.typ == nil || r.construct == nil
}

// String returns the package-qualified type name, e.g. "trip.LocalStrategy".
func (r TypeRef) String() string {
	if r.typ == nil {
		return "<nil>"
	}
	return r.typ.String()
}

// New instantiates the referenced type. The injector may be nil.
func (r TypeRef) New(i do.Injector) (any, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("%w: type reference is empty", ErrInvalidResolver)
	}
	return r.construct(i)
}

// Implements reports whether the referenced type is concrete and satisfies
// capability, either directly or through its pointer type.
func (r TypeRef) Implements(capability reflect.Type) bool {
	if r.typ == nil || capability == nil {
		return false
	}
	return conforms(r.typ, capability)
}

// conforms reports whether t is an instantiable type satisfying capability.
// Interface and pointer types are never instantiable references.
func conforms(t, capability reflect.Type) bool {
	if t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer {
		return false
	}
	ptr := reflect.PointerTo(t)
	if capability.Kind() != reflect.Interface {
		return ptr.AssignableTo(capability)
	}
	return ptr.Implements(capability)
}
