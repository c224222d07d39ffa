// Package diff compares two values of the same struct type field by field,
// using the struct's db tags as field names.
package diff

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var (
	ErrTypeMismatch = errors.New("diff: values must be structs of the same type")
	ErrUnknownField = errors.New("diff: unknown field")
)

// Change is one field's old and new value, JSON encoded.
type Change struct {
	Old json.RawMessage `json:"old"`
	New json.RawMessage `json:"new"`
}

// RequestedChange is the same pair framed as a proposal.
type RequestedChange struct {
	From json.RawMessage `json:"from"`
	To   json.RawMessage `json:"to"`
}

// Changes maps a field name to its change.
type Changes map[string]Change

func (c Changes) Empty() bool {
	return len(c) == 0
}

// Fields returns the changed field names in sorted order.
func (c Changes) Fields() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Changes) Requested() map[string]RequestedChange {
	out := make(map[string]RequestedChange, len(c))
	for name, ch := range c {
		out[name] = RequestedChange{From: ch.Old, To: ch.New}
	}
	return out
}

func FromRequested(req map[string]RequestedChange) Changes {
	out := make(Changes, len(req))
	for name, rc := range req {
		out[name] = Change{Old: rc.From, New: rc.To}
	}
	return out
}

// Targets returns the new value of every change, keyed by field name.
func (c Changes) Targets() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(c))
	for name, ch := range c {
		out[name] = ch.New
	}
	return out
}

type field struct {
	name  string
	index int
}

// Declared returns the diffable field names of v's struct type. Fields with
// no db tag, db:"-" or diff:"-" are skipped.
func Declared(v any) []string {
	t := structType(reflect.TypeOf(v))
	if t == nil {
		return nil
	}
	fields, _ := declaredFields(t)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func declaredFields(t reflect.Type) ([]field, map[string]bool) {
	var fields []field
	skipped := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}
		if sf.Tag.Get("diff") == "-" {
			skipped[name] = true
			continue
		}
		fields = append(fields, field{name: name, index: i})
	}
	return fields, skipped
}

// Compute returns the fields whose values differ between original and
// updated. When only is non-empty, fields outside it are never reported.
// Names in only that are declared but excluded from diffing are ignored;
// names that are not declared at all yield ErrUnknownField.
func Compute(original, updated any, only []string) (Changes, error) {
	ov, uv, err := structValues(original, updated)
	if err != nil {
		return nil, err
	}

	fields, skipped := declaredFields(ov.Type())
	wanted, err := selection(fields, skipped, only)
	if err != nil {
		return nil, err
	}

	changes := make(Changes)
	for _, f := range fields {
		if wanted != nil && !wanted[f.name] {
			continue
		}
		a, b := ov.Field(f.index), uv.Field(f.index)
		if Equal(a, b) {
			continue
		}
		oldJSON, err := json.Marshal(a.Interface())
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.name, err)
		}
		newJSON, err := json.Marshal(b.Interface())
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.name, err)
		}
		changes[f.name] = Change{Old: oldJSON, New: newJSON}
	}
	return changes, nil
}

// Values returns the current value of each named field of v.
func Values(v any, names []string) (map[string]any, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, ErrTypeMismatch
	}
	fields, _ := declaredFields(rv.Type())
	byName := make(map[string]int, len(fields))
	for _, f := range fields {
		byName[f.name] = f.index
	}

	out := make(map[string]any, len(names))
	for _, name := range names {
		idx, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		out[name] = rv.Field(idx).Interface()
	}
	return out, nil
}

// Apply decodes each JSON value into the matching field of target, which
// must be a pointer to a struct. Fields excluded from diffing are left
// untouched, as in Compute; undeclared names yield ErrUnknownField.
func Apply(target any, values map[string]json.RawMessage) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrTypeMismatch
	}
	rv = rv.Elem()
	fields, skipped := declaredFields(rv.Type())
	byName := make(map[string]int, len(fields))
	for _, f := range fields {
		byName[f.name] = f.index
	}

	for name, raw := range values {
		if skipped[name] {
			continue
		}
		idx, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		fv := rv.Field(idx)
		fresh := reflect.New(fv.Type())
		if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		fv.Set(fresh.Elem())
	}
	return nil
}

// Equal is strict value equality: pointers compare by nil-ness and then by
// pointee, types with an Equal(T) bool method use it, and everything else
// uses == or deep equality.
func Equal(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	if a.Kind() == reflect.Pointer {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return Equal(a.Elem(), b.Elem())
	}
	if m := a.MethodByName("Equal"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0) == b.Type() && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool {
			return m.Call([]reflect.Value{b})[0].Bool()
		}
	}
	if a.Type().Comparable() {
		return a.Interface() == b.Interface()
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func selection(fields []field, skipped map[string]bool, only []string) (map[string]bool, error) {
	if len(only) == 0 {
		return nil, nil
	}
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.name] = true
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		switch {
		case known[name]:
			wanted[name] = true
		case skipped[name]:
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return wanted, nil
}

func structValues(a, b any) (reflect.Value, reflect.Value, error) {
	av := reflect.Indirect(reflect.ValueOf(a))
	bv := reflect.Indirect(reflect.ValueOf(b))
	if !av.IsValid() || !bv.IsValid() || av.Kind() != reflect.Struct || av.Type() != bv.Type() {
		return reflect.Value{}, reflect.Value{}, ErrTypeMismatch
	}
	return av, bv, nil
}

func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
