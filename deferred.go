package promise

// Deferred constructs a pending promise and returns it together with its two
// one-shot settlement functions. The producer keeps resolve and reject and
// hands only the promise to consumers, so no consumer can settle a promise it
// merely observes.
func Deferred[T any]() (p *Promise[T], resolve ResolveFunc[T], reject RejectFunc) {
	p = newPromise[T]()
	return p, p.fulfill, p.reject
}
