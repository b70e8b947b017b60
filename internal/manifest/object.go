package manifest

import (
	"sort"

	"github.com/iancoleman/orderedmap"
)

// Object is a JSON object that remembers key insertion order. Nested objects
// decode as *Object and arrays as []any. Numbers decode as float64.
type Object struct {
	m *orderedmap.OrderedMap
}

func newMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	// Scripts such as "a && b" stay readable.
	m.SetEscapeHTML(false)
	return m
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: newMap()}
}

func (o *Object) ordered() *orderedmap.OrderedMap {
	if o.m == nil {
		o.m = newMap()
	}
	return o.m
}

// Set stores v under k. A new key is appended; an existing key keeps its
// position.
func (o *Object) Set(k string, v any) *Object {
	o.ordered().Set(k, v)
	return o
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (any, bool) {
	return o.ordered().Get(k)
}

// GetString returns the string stored under k, or "" if absent or not a string.
func (o *Object) GetString(k string) string {
	v, _ := o.Get(k)
	s, _ := v.(string)
	return s
}

// GetObject returns the nested object stored under k.
func (o *Object) GetObject(k string) (*Object, bool) {
	v, _ := o.Get(k)
	obj, ok := v.(*Object)
	return obj, ok
}

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.ordered().Keys()...)
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.ordered().Keys()) }

// Clone returns a deep copy.
func (o *Object) Clone() *Object {
	c := NewObject()
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		c.Set(k, cloneValue(v))
	}
	return c
}

// sortedKeys returns a copy of o with keys in ascending order.
func (o *Object) sortedKeys() *Object {
	c := o.Clone()
	c.m.SortKeys(sort.Strings)
	return c
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return val
	}
}

// MarshalJSON encodes the object with keys in order and HTML characters
// left unescaped.
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.ordered().MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving key order at every depth.
func (o *Object) UnmarshalJSON(data []byte) error {
	m := newMap()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	o.m = adopt(m).m
	return nil
}

// adopt converts a decoded map, whose nested objects are orderedmap values,
// into an Object tree.
func adopt(m *orderedmap.OrderedMap) *Object {
	o := NewObject()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		o.Set(k, adoptValue(v))
	}
	return o
}

func adoptValue(v any) any {
	switch val := v.(type) {
	case orderedmap.OrderedMap:
		return adopt(&val)
	case *orderedmap.OrderedMap:
		return adopt(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = adoptValue(e)
		}
		return out
	default:
		return val
	}
}
