package promise

// The continuation passed to a chaining call comes in two kinds: one that
// computes the next value directly, and one that returns another promise for
// the chained promise to adopt. Go methods cannot introduce new type
// parameters, so the type-changing entry points live here as package
// functions; the methods on Promise cover the common same-type case.

// Then chains a value continuation that may change the result type. The
// returned promise fulfills with onFulfilled's result, or rejects with its
// error; a rejected p forwards its reason without invoking onFulfilled.
// A nil exec means DefaultExecutor.
func Then[T, U any](p *Promise[T], exec Executor, onFulfilled func(value T) (U, error)) *Promise[U] {
	if p == nil {
		panic(nilPromisePanicMsg)
	}
	if onFulfilled == nil {
		panic(nilCallbackPanicMsg)
	}
	return then(p, exec, onFulfilled)
}

// ThenPromise chains a promise-returning continuation. The returned promise
// adopts the continuation's promise: it settles with whatever that promise
// eventually settles with, however deeply the nesting recurses. Returning a
// nil promise rejects the chain with ErrNilPromise.
func ThenPromise[T, U any](p *Promise[T], exec Executor, onFulfilled func(value T) (*Promise[U], error)) *Promise[U] {
	if p == nil {
		panic(nilPromisePanicMsg)
	}
	if onFulfilled == nil {
		panic(nilCallbackPanicMsg)
	}

	e := executorOrDefault(exec)
	next := newPromise[U]()
	p.subscribe(
		func(value T) {
			e.Exec(func() {
				inner, err := onFulfilled(value)
				if err != nil {
					next.reject(err)
					return
				}
				adopt(next, inner)
			})
		},
		func(reason error) {
			e.Exec(func() {
				next.reject(reason)
			})
		},
	)
	return next
}

// CatchPromise chains a recovering rejection handler: the only way a
// rejection chain turns back into a fulfillment. On rejection of p the
// handler produces a promise whose outcome the returned promise adopts; on
// fulfillment of p the value passes through untouched.
func CatchPromise[T any](p *Promise[T], exec Executor, onRejected func(reason error) (*Promise[T], error)) *Promise[T] {
	if p == nil {
		panic(nilPromisePanicMsg)
	}
	if onRejected == nil {
		panic(nilCallbackPanicMsg)
	}

	e := executorOrDefault(exec)
	next := newPromise[T]()
	p.subscribe(
		func(value T) {
			e.Exec(func() {
				next.fulfill(value)
			})
		},
		func(reason error) {
			e.Exec(func() {
				inner, err := onRejected(reason)
				if err != nil {
					next.reject(err)
					return
				}
				adopt(next, inner)
			})
		},
	)
	return next
}

// then is the shared core of the value-continuation entry points.
func then[T, U any](p *Promise[T], exec Executor, onFulfilled func(value T) (U, error)) *Promise[U] {
	e := executorOrDefault(exec)
	next := newPromise[U]()
	p.subscribe(
		func(value T) {
			e.Exec(func() {
				result, err := onFulfilled(value)
				if err != nil {
					next.reject(err)
					return
				}
				next.fulfill(result)
			})
		},
		func(reason error) {
			e.Exec(func() {
				next.reject(reason)
			})
		},
	)
	return next
}

// adopt settles next with inner's eventual outcome. Registration happens on
// inner's lock only; neither promise's lock is held across the other's, which
// keeps cross-promise adoption deadlock-free. The forwarding callbacks run on
// the goroutine that settles inner and only flip next's state; user
// continuations on next still go through their own executors.
func adopt[U any](next, inner *Promise[U]) {
	if inner == nil {
		next.reject(ErrNilPromise)
		return
	}
	inner.subscribe(next.fulfill, next.reject)
}
