package partial

import (
	"fmt"
	"reflect"
)

// FieldRef describes one field of a partial struct.
type FieldRef struct {
	// Name is the declared name used in diagnostics: the `partial` tag when
	// present, the Go field name otherwise.
	Name string

	// GoName is the Go identifier of the field.
	GoName string

	// Tag is the full struct tag, so sources can read their own keys
	// (`env`, `flag`, `setting`).
	Tag reflect.StructTag

	// Slot gives write access to the field.
	Slot Slot
}

// Fields returns the exported fields of the partial struct ptr points to,
// in declaration order. Every exported field must be an Optional.
func Fields(ptr any) ([]FieldRef, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: want pointer to struct, got %T", ErrNotPartial, ptr)
	}

	st := rv.Elem()
	typ := st.Type()

	refs := make([]FieldRef, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}

		slot, ok := st.Field(i).Addr().Interface().(Slot)
		if !ok {
			return nil, fmt.Errorf("%w: field %s.%s has type %s", ErrNotPartial, typ.Name(), sf.Name, sf.Type)
		}

		refs = append(refs, FieldRef{
			Name:   declaredName(sf),
			GoName: sf.Name,
			Tag:    sf.Tag,
			Slot:   slot,
		})
	}

	return refs, nil
}

func declaredName(sf reflect.StructField) string {
	if name, ok := sf.Tag.Lookup("partial"); ok && name != "" {
		return name
	}
	return sf.Name
}
