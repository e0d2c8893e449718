package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNoSuchProperty = errors.New("no such property")
	ErrNoSuchMethod   = errors.New("no such method")
	ErrUnexpectedType = errors.New("unexpected type")
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedType, res)
	}

	return val, nil
}

// Property reads the named property off v.
//
// Structs (or pointers to structs) are read by exported field name, maps with
// string keys by key. Anything else has no properties.
func Property(v any, name string) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %q on nil %T", ErrNoSuchProperty, name, v)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			break
		}
		return rv.FieldByIndex(field.Index).Interface(), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			break
		}
		return val.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrNoSuchProperty, name, v)
}

// TypedProperty is Property followed by an assertion to T.
func TypedProperty[T any](v any, name string) (T, error) {
	return GetTypedValueOf[T](func() (any, error) {
		return Property(v, name)
	})
}

// CallMethod calls the exported method name on recv with args and returns its
// first result, or nil when the method returns nothing.
func CallMethod(recv any, name string, args ...any) (any, error) {
	if recv == nil {
		return nil, fmt.Errorf("%w: %q on nil", ErrNoSuchMethod, name)
	}
	method := reflect.ValueOf(recv).MethodByName(name)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %q on %T", ErrNoSuchMethod, name, recv)
	}

	mt := method.Type()
	if (!mt.IsVariadic() && mt.NumIn() != len(args)) || (mt.IsVariadic() && len(args) < mt.NumIn()-1) {
		return nil, fmt.Errorf("%w: %q on %T takes %d arguments, got %d", ErrNoSuchMethod, name, recv, mt.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if mt.IsVariadic() && i >= mt.NumIn()-1 {
			want = mt.In(mt.NumIn() - 1).Elem()
		} else {
			want = mt.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %d of %q is %T, want %v", ErrUnexpectedType, i, name, arg, want)
		}
		in[i] = av
	}

	out := method.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
