package promise

import "sync"

// All returns a promise for the results of every input promise, positionally
// aligned with the input slice regardless of settlement order. It rejects
// with the first rejection observed from any input, after which settlements
// of the remaining inputs are ignored; the inputs themselves keep running,
// nothing cancels them. An empty input fulfills immediately with an empty
// slice.
func All[T any](promises []*Promise[T]) *Promise[[]T] {
	next := newPromise[[]T]()
	if len(promises) == 0 {
		next.fulfill([]T{})
		return next
	}

	// The accumulator has its own lock because inputs may settle
	// concurrently. It is held for the bookkeeping only, never while
	// settling next.
	var (
		mu        sync.Mutex
		results   = make([]T, len(promises))
		remaining = len(promises)
		finished  bool
	)

	for i, p := range promises {
		if p == nil {
			panic(nilPromisePanicMsg)
		}

		i := i
		p.subscribe(
			func(value T) {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				results[i] = value
				remaining--
				last := remaining == 0
				if last {
					finished = true
				}
				mu.Unlock()

				if last {
					next.fulfill(results)
				}
			},
			func(reason error) {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				finished = true
				mu.Unlock()

				next.reject(reason)
			},
		)
	}

	return next
}

// Race returns a promise that settles with the outcome of whichever input
// settles first, fulfillment or rejection alike. An empty input returns a
// promise that stays pending forever.
func Race[T any](promises []*Promise[T]) *Promise[T] {
	next := newPromise[T]()

	// losing inputs are ignored here, before they reach next's settle
	// guard, which stays reserved for real double-settlement bugs.
	var (
		mu       sync.Mutex
		finished bool
	)

	win := func(settle func()) {
		mu.Lock()
		if finished {
			mu.Unlock()
			return
		}
		finished = true
		mu.Unlock()

		settle()
	}

	for _, p := range promises {
		if p == nil {
			panic(nilPromisePanicMsg)
		}
		p.subscribe(
			func(value T) {
				win(func() { next.fulfill(value) })
			},
			func(reason error) {
				win(func() { next.reject(reason) })
			},
		)
	}
	return next
}

// AllSettled returns a promise that fulfills once every input has settled,
// with one Result per input in input order. It never rejects; rejections of
// the inputs are carried inside their Results.
func AllSettled[T any](promises []*Promise[T]) *Promise[[]Result[T]] {
	next := newPromise[[]Result[T]]()
	if len(promises) == 0 {
		next.fulfill([]Result[T]{})
		return next
	}

	var (
		mu        sync.Mutex
		results   = make([]Result[T], len(promises))
		remaining = len(promises)
	)

	settleOne := func(i int, r Result[T]) {
		mu.Lock()
		results[i] = r
		remaining--
		last := remaining == 0
		mu.Unlock()

		if last {
			next.fulfill(results)
		}
	}

	for i, p := range promises {
		if p == nil {
			panic(nilPromisePanicMsg)
		}

		i := i
		p.subscribe(
			func(value T) {
				settleOne(i, Result[T]{State: StateFulfilled, Value: value})
			},
			func(reason error) {
				settleOne(i, Result[T]{State: StateRejected, Err: reason})
			},
		)
	}

	return next
}
