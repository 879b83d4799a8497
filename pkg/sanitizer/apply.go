package sanitizer

// Apply passes value through each transform in turn.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, f := range transforms {
		value = f(value)
	}
	return value
}

// Compose returns the pipeline of transforms as one function, for chains
// reused across many inputs.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T { return Apply(value, transforms...) }
}
