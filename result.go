package promise

// Result is the settled outcome of one promise, as reported by AllSettled.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

func (r Result[T]) Fulfilled() bool {
	return r.State == StateFulfilled
}

func (r Result[T]) Rejected() bool {
	return r.State == StateRejected
}
