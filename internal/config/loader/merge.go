package loader

import "strings"

// DeepMerge overlays src on dst and returns dst. Sections present in both
// are merged key by key; everything else from src replaces what dst had.
// src is copied, so later changes to either map do not affect the other.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if section, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				DeepMerge(existing, section)
				continue
			}
		}
		dst[k] = copyAny(v)
	}
	return dst
}

// Clone returns a deep copy of a configuration map.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	return DeepMerge(nil, src)
}

func copyAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return DeepMerge(nil, t)
	case []any:
		list := make([]any, 0, len(t))
		for _, item := range t {
			list = append(list, copyAny(item))
		}
		return list
	}
	return v
}

// GetByPath looks up a dotted key such as "editor.tab_width".
func GetByPath(data map[string]any, path string) (any, bool) {
	section, key := sectionOf(data, path, false)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// SetByPath stores value under a dotted key, creating sections on the way.
// A non-section value in the way is replaced.
func SetByPath(data map[string]any, path string, value any) {
	if section, key := sectionOf(data, path, true); section != nil {
		section[key] = value
	}
}

// sectionOf walks to the map holding the last element of path.
func sectionOf(data map[string]any, path string, create bool) (map[string]any, string) {
	if data == nil {
		return nil, ""
	}
	names := strings.Split(path, ".")
	last := len(names) - 1
	for _, name := range names[:last] {
		next, ok := data[name].(map[string]any)
		if !ok {
			if !create {
				return nil, ""
			}
			next = map[string]any{}
			data[name] = next
		}
		data = next
	}
	return data, names[last]
}
