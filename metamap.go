package newshound

import "strings"

// MetaMapIdentifierKey is the reserved key a leaf value is demoted under
// when a nested namespace is stored at the same key (or vice versa).
const MetaMapIdentifierKey = "identifier"

// metaMapSeparator splits namespaced meta keys, e.g. "og:image:width".
const metaMapSeparator = ":"

// MetaMap holds a document's meta declarations keyed by namespace.
// Values are either locator strings or nested MetaMaps. A leaf and a
// branch never coexist at a key: on collision the leaf is demoted into
// the branch under MetaMapIdentifierKey, so insertion order does not
// affect the final shape.
type MetaMap map[string]any

// Set stores the locator under the (possibly namespaced) key.
func (m MetaMap) Set(key, locator string) {
	key = strings.TrimSpace(key)
	locator = strings.TrimSpace(locator)
	if key == "" || locator == "" {
		return
	}

	if !strings.Contains(key, metaMapSeparator) {
		if branch, ok := m[key].(MetaMap); ok {
			branch[MetaMapIdentifierKey] = locator
			return
		}
		m[key] = locator
		return
	}

	parts := strings.Split(key, metaMapSeparator)
	ref := m
	for _, part := range parts[:len(parts)-1] {
		ref = ref.branch(part)
	}

	last := parts[len(parts)-1]
	if branch, ok := ref[last].(MetaMap); ok {
		branch[MetaMapIdentifierKey] = locator
		return
	}
	ref[last] = locator
}

// branch returns the nested map at key, creating it if missing and
// demoting an existing leaf under MetaMapIdentifierKey.
func (m MetaMap) branch(key string) MetaMap {
	switch v := m[key].(type) {
	case MetaMap:
		return v
	case string:
		// Not always a URL, sometimes an ID of some sort.
		branch := MetaMap{MetaMapIdentifierKey: v}
		m[key] = branch
		return branch
	default:
		branch := MetaMap{}
		m[key] = branch
		return branch
	}
}
