package promise

type (
	// ResolveFunc fulfills the promise it was created for. Only the first
	// settlement call on a promise has an effect.
	ResolveFunc[T any] func(value T)

	// RejectFunc rejects the promise it was created for. Only the first
	// settlement call on a promise has an effect.
	RejectFunc func(reason error)
)
