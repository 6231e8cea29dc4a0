// Package patch applies partial-update request fields onto current values.
package patch

// Coalesce returns *field when the request set it, else cur.
func Coalesce[T any](field *T, cur T) T {
	if field != nil {
		return *field
	}
	return cur
}

// Replace is Coalesce for nullable columns: a set field replaces cur, an
// absent one keeps it. Clearing is the caller's decision.
func Replace[T any](field, cur *T) *T {
	if field != nil {
		return field
	}
	return cur
}
