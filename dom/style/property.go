package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"
)

// KeyValue is a container for a single property setting.
type KeyValue struct {
	Key   string
	Value string
}

// PropertyMap is a mapping of string keys to string values with two extra
// guarantees over a plain map: iteration follows insertion order, and
// setting an existing key overwrites the value in place, keeping the key's
// original position ("last write wins, first position kept"). Both rules
// exist to make serialized output stable, which keeps diff-based tests
// meaningful.
//
// The zero value is ready to use.
type PropertyMap struct {
	keys   []string
	values map[string]string
}

// Set stores a value for key. The first Set for a key fixes the key's
// position; later writes overwrite the value without moving the key.
func (pm *PropertyMap) Set(key, value string) {
	if pm.values == nil {
		pm.values = make(map[string]string)
	}
	if _, ok := pm.values[key]; !ok {
		pm.keys = append(pm.keys, key)
	}
	pm.values[key] = value
}

// Get returns the value stored for key, if present.
func (pm *PropertyMap) Get(key string) (string, bool) {
	if pm.values == nil {
		return "", false
	}
	v, ok := pm.values[key]
	return v, ok
}

// Remove deletes a key, giving up its position.
func (pm *PropertyMap) Remove(key string) {
	if pm.values == nil {
		return
	}
	if _, ok := pm.values[key]; !ok {
		return
	}
	delete(pm.values, key)
	for i, k := range pm.keys {
		if k == key {
			pm.keys = append(pm.keys[:i], pm.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (pm *PropertyMap) Len() int {
	return len(pm.keys)
}

// Each calls f for every key/value pair in insertion order.
func (pm *PropertyMap) Each(f func(key, value string)) {
	for _, k := range pm.keys {
		f(k, pm.values[k])
	}
}

// Pairs returns all key/value pairs in insertion order.
func (pm *PropertyMap) Pairs() []KeyValue {
	pairs := make([]KeyValue, 0, len(pm.keys))
	for _, k := range pm.keys {
		pairs = append(pairs, KeyValue{Key: k, Value: pm.values[k]})
	}
	return pairs
}

// InlineString joins all pairs as "key:value" separated by semicolons, the
// form an inline `style` attribute expects. An empty map yields "".
func (pm *PropertyMap) InlineString() string {
	if pm.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range pm.keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(pm.values[k])
	}
	return b.String()
}
