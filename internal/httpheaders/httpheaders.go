// Package httpheaders merges the client's built-in headers with headers
// configured by the user, treating names case-insensitively so a configured
// "authorization" entry replaces the built-in "Authorization" one instead of
// being sent twice.
package httpheaders

import (
	"sort"
	"strings"
)

// Set writes a header value, replacing any existing key that matches
// case-insensitively.
func Set(headers map[string]string, name, value string) map[string]string {
	name = strings.TrimSpace(name)
	if name == "" {
		return headers
	}

	if headers == nil {
		headers = make(map[string]string, 1)
	}
	if existing, ok := lookupKeyFold(headers, name); ok && existing != name {
		delete(headers, existing)
	}
	headers[name] = value
	return headers
}

// Merge applies overrides into base. Override entries win over base entries
// even when the casing differs. Blank names are skipped. Overrides are applied
// in sorted order so fold-equal duplicates resolve deterministically.
func Merge(base map[string]string, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overrides))
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		base = Set(base, name, overrides[name])
	}
	return base
}

func lookupKeyFold(headers map[string]string, name string) (string, bool) {
	for key := range headers {
		if strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(name)) {
			return key, true
		}
	}
	return "", false
}
