package manifest

import (
	"bytes"
	"encoding/json"
)

// DependencyFields are the keys holding name → version maps.
var DependencyFields = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// DeepMerge merges override into a copy of base. Objects merge recursively,
// arrays concatenate without duplicates, and any other override value wins.
// Neither argument is modified.
func DeepMerge(base, override *Object) *Object {
	out := base.Clone()
	for _, k := range override.Keys() {
		ov, _ := override.Get(k)
		bv, ok := out.Get(k)
		if !ok {
			out.Set(k, cloneValue(ov))
			continue
		}
		out.Set(k, mergeValues(bv, ov))
	}
	return out
}

func mergeValues(base, override any) any {
	switch ov := override.(type) {
	case *Object:
		if bo, ok := base.(*Object); ok {
			return DeepMerge(bo, ov)
		}
	case []any:
		if ba, ok := base.([]any); ok {
			return concatUnique(ba, ov)
		}
	}
	return cloneValue(override)
}

func concatUnique(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	for _, v := range append(append([]any(nil), a...), b...) {
		dup := false
		for _, seen := range out {
			if equalValues(seen, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cloneValue(v))
		}
	}
	return out
}

// equalValues compares by encoding, so two objects with the same keys in the
// same order are equal.
func equalValues(a, b any) bool {
	ea, errA := json.Marshal(a)
	eb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ea, eb)
}

// SortDependencies returns a copy of obj whose dependency maps have keys in
// ascending order. Every other key keeps its position and content.
func SortDependencies(obj *Object) *Object {
	out := obj.Clone()
	for _, field := range DependencyFields {
		if deps, ok := out.GetObject(field); ok {
			out.Set(field, deps.sortedKeys())
		}
	}
	return out
}
