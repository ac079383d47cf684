package promise

// Resolve returns an already-fulfilled promise holding value.
func Resolve[T any](value T) *Promise[T] {
	return &Promise[T]{
		state: StateFulfilled,
		value: value,
	}
}

// ResolvePromise returns p itself. A promise is never wrapped in another
// promise; code generic over "value or promise" inputs uses this alongside
// Resolve the way an overloaded resolve would be used elsewhere.
func ResolvePromise[T any](p *Promise[T]) *Promise[T] {
	if p == nil {
		panic(nilPromisePanicMsg)
	}
	return p
}

// Reject returns an already-rejected promise holding reason.
func Reject[T any](reason error) *Promise[T] {
	return &Promise[T]{
		state: StateRejected,
		err:   reason,
	}
}
