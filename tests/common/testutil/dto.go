//go:build unit || e2e

// Package testutil builds request bodies that deviate from a valid DTO.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON object form of a request DTO.
type Mutation func(m map[string]any)

// DtoMap returns v as a JSON object with muts applied in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value.
func Field(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

// Without removes key, as a client omitting it would.
func Without(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
