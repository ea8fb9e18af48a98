package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
