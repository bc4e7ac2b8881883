//go:build unit || e2e

// Package testutil builds request variants for table-driven handler tests.
package testutil

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so a test can break individual fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets a body field; a nil value drops it.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Param sets a query parameter; an empty value drops it.
func Param(key, value string) func(url.Values) {
	return func(v url.Values) {
		if value == "" {
			v.Del(key)
			return
		}
		v.Set(key, value)
	}
}

// WithParams copies base before applying muts so shared fixtures stay intact.
func WithParams(base url.Values, muts ...func(url.Values)) url.Values {
	out := make(url.Values, len(base))
	for k, vs := range base {
		out[k] = append([]string(nil), vs...)
	}
	for _, mut := range muts {
		mut(out)
	}
	return out
}
