package dsl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	textscan "github.com/reoring/textscan"
)

// RecordBuilder declares a named record: an ordered field list where each
// name is paired with the shape of its value. The input carries no field
// labels; the declared order alone decides which token feeds which field.
type RecordBuilder struct {
	names  []string
	fields map[string]Adapter
}

// Record creates a new record builder.
func Record() *RecordBuilder {
	return &RecordBuilder{fields: map[string]Adapter{}}
}

// Field registers a field with its adapter. Re-registering a name replaces
// the adapter but keeps the original position.
func (b *RecordBuilder) Field(name string, ad Adapter) *RecordBuilder {
	if _, seen := b.fields[name]; !seen {
		b.names = append(b.names, name)
	}
	b.fields[name] = ad
	return b
}

// Build returns the map-shaped view of the record.
func (b *RecordBuilder) Build() textscan.Shape[map[string]any] {
	names := append([]string(nil), b.names...)
	fields := make(map[string]Adapter, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	return textscan.ShapeFunc[map[string]any](func(ctx context.Context, src textscan.Source) (map[string]any, error) {
		out := make(map[string]any, len(names))
		for _, name := range names {
			v, err := fields[name].run(ctx, src)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
		return out, nil
	})
}

// Bind builds the record and binds it to the struct type T. Each declared
// field name must resolve to a settable struct field, matched by `scan` tag,
// exact name, or case-insensitive name, in that order. Shape dispatch stays
// schema-driven; reflection is confined to copying decoded values into T.
func Bind[T any](b *RecordBuilder) (textscan.Shape[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Bind target %s is not a struct", rt)
	}
	index := make(map[string]int, len(b.names))
	for _, name := range b.names {
		fi, ok := lookupField(rt, name)
		if !ok {
			return nil, fmt.Errorf("dsl: no settable field for %q in %s", name, rt)
		}
		index[name] = fi
	}
	inner := b.Build()
	shape := textscan.ShapeFunc[T](func(ctx context.Context, src textscan.Source) (T, error) {
		var zero T
		m, err := inner.Decode(ctx, src)
		if err != nil {
			return zero, err
		}
		rv := reflect.New(rt).Elem()
		for name, fi := range index {
			v := m[name]
			if v == nil {
				continue
			}
			fv := rv.Field(fi)
			val := reflect.ValueOf(v)
			switch {
			case val.Type().AssignableTo(fv.Type()):
				fv.Set(val)
			case val.Type().ConvertibleTo(fv.Type()):
				fv.Set(val.Convert(fv.Type()))
			default:
				return zero, textscan.Issues{{
					Code:    textscan.CodeConversion,
					Message: fmt.Sprintf("field %q: cannot store %s into %s", name, val.Type(), fv.Type()),
					Offset:  -1,
				}}
			}
		}
		return rv.Interface().(T), nil
	})
	return shape, nil
}

// MustBind is Bind panicking on error; intended for package-level shape vars.
func MustBind[T any](b *RecordBuilder) textscan.Shape[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

func lookupField(rt reflect.Type, name string) (int, bool) {
	fold := -1
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup("scan"); ok && tag == name {
			return i, true
		}
		if f.Name == name {
			return i, true
		}
		if fold < 0 && strings.EqualFold(f.Name, name) {
			fold = i
		}
	}
	if fold >= 0 {
		return fold, true
	}
	return 0, false
}
