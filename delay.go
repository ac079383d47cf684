package promise

import "time"

// Delay returns a promise that fulfills with value no earlier than d from
// now. The countdown runs on the runtime timer; no goroutine blocks for it.
func Delay[T any](value T, d time.Duration) *Promise[T] {
	next := newPromise[T]()
	time.AfterFunc(d, func() {
		next.fulfill(value)
	})
	return next
}

// DelayPromise returns a promise that settles with p's outcome no earlier
// than d after p settles. The countdown starts at p's settlement, not at the
// call; a p that never settles means a result that never arrives.
func DelayPromise[T any](p *Promise[T], d time.Duration) *Promise[T] {
	if p == nil {
		panic(nilPromisePanicMsg)
	}

	next := newPromise[T]()
	p.subscribe(
		func(value T) {
			time.AfterFunc(d, func() {
				next.fulfill(value)
			})
		},
		func(reason error) {
			time.AfterFunc(d, func() {
				next.reject(reason)
			})
		},
	)
	return next
}
