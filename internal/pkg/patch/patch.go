// Package patch applies partial updates where a nil pointer means "leave as is".
package patch

// Coalesce returns *p when set, otherwise current.
func Coalesce[T any](p *T, current T) T {
	if p != nil {
		return *p
	}
	return current
}

// Noop reports whether applying p over current leaves current unchanged.
func Noop[T comparable](p *T, current T) bool {
	return p == nil || *p == current
}
