package cypher

import "fmt"

// paramTable accumulates named query parameters while a request is compiled.
// Key derivation (block prefix + sanitized property + operator name) keeps
// keys unique across blocks; the numeric suffix covers the residual case of
// the same property filtered twice with the same operator in one block.
type paramTable struct {
	values map[string]any
}

func newParamTable() *paramTable {
	return &paramTable{values: make(map[string]any)}
}

// add stores value under key, suffixing deterministically on collision, and
// returns the key actually used.
func (t *paramTable) add(key string, value any) string {
	k := key
	for i := 2; ; i++ {
		if _, taken := t.values[k]; !taken {
			break
		}
		k = fmt.Sprintf("%s_%d", key, i)
	}
	t.values[k] = value
	return k
}
