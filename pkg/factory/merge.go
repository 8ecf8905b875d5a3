package factory

// Merge returns a new map combining target and sources without mutating any
// of them. For each key present in a source: if both the accumulated value
// and the incoming value are maps, they merge recursively; otherwise the
// incoming value replaces the accumulated one. Slices are never merged
// element-wise, they are replaced wholesale.
func Merge(target map[string]any, sources ...map[string]any) map[string]any {
	out := make(map[string]any, len(target))
	for k, v := range target {
		out[k] = v
	}
	for _, src := range sources {
		for k, incoming := range src {
			if existing, ok := out[k].(map[string]any); ok {
				if nested, ok := incoming.(map[string]any); ok {
					out[k] = Merge(existing, nested)
					continue
				}
			}
			out[k] = incoming
		}
	}
	return out
}

// deepCopy clones a value tree, copying nested maps and slices so callers can
// modify the result without touching the original.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

// deepCopyMap is deepCopy specialized for the map trees hooks receive.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return deepCopy(m).(map[string]any)
}
