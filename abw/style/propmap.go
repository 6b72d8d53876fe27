// Package style implements the property-string, unit, color, tab-stop,
// date-format, and language-tag micro-grammars used to translate AbiWord
// style properties into document-construction event properties, plus the
// style inheritance resolver.
package style

import "strings"

// PropMap is a mapping from property key to its raw string value.
// Iteration order is not significant to callers; a plain map suffices
// because the grammar resolves duplicate keys at parse time (last wins).
type PropMap map[string]string

// ParsePropString splits a `props="key:value;key:value"` attribute value
// into a PropMap. Entries are split on ';' then each on ':'; whitespace is
// trimmed from both key and value. Only the first ':' separates key from
// value; an entry with no ':' or an empty key is dropped. Repeated keys
// take the last value.
func ParsePropString(s string) PropMap {
	props := make(PropMap)
	if strings.TrimSpace(s) == "" {
		return props
	}
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		props[key] = val
	}
	return props
}

// Clone returns a shallow copy of the map.
func (p PropMap) Clone() PropMap {
	out := make(PropMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Overlay copies every key in other into p, overwriting existing keys.
func (p PropMap) Overlay(other PropMap) {
	for k, v := range other {
		p[k] = v
	}
}
