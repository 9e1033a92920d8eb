//go:build unit

package testutil

// Field mutates one key of a DtoMap body. A nil value deletes the key,
// which is how missing-field binding cases are built.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
