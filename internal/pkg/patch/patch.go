package patch

// Coalesce dereferences an optional value, falling back when it was not supplied.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
