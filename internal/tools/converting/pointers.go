package converting

func PointerToValue[T any](v T) *T {
	return &v
}
