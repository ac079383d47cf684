package promise

import "sync"

// Pair carries the results of Join in argument order.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Triple carries the results of Join3 in argument order.
type Triple[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Join is the fixed-arity analogue of All for two promises of different
// types. It fulfills with both values once both inputs fulfill, and rejects
// as soon as either input rejects, without waiting for the other.
func Join[T1, T2 any](p1 *Promise[T1], p2 *Promise[T2]) *Promise[Pair[T1, T2]] {
	if p1 == nil || p2 == nil {
		panic(nilPromisePanicMsg)
	}

	next := newPromise[Pair[T1, T2]]()

	var (
		mu        sync.Mutex
		pair      Pair[T1, T2]
		remaining = 2
		finished  bool
	)

	record := func(set func()) {
		mu.Lock()
		if finished {
			mu.Unlock()
			return
		}
		set()
		remaining--
		last := remaining == 0
		if last {
			finished = true
		}
		mu.Unlock()

		if last {
			next.fulfill(pair)
		}
	}
	rejectOnce := func(reason error) {
		mu.Lock()
		if finished {
			mu.Unlock()
			return
		}
		finished = true
		mu.Unlock()

		next.reject(reason)
	}

	p1.subscribe(func(v T1) { record(func() { pair.First = v }) }, rejectOnce)
	p2.subscribe(func(v T2) { record(func() { pair.Second = v }) }, rejectOnce)

	return next
}

// Join3 is Join for three promises.
func Join3[T1, T2, T3 any](p1 *Promise[T1], p2 *Promise[T2], p3 *Promise[T3]) *Promise[Triple[T1, T2, T3]] {
	if p1 == nil || p2 == nil || p3 == nil {
		panic(nilPromisePanicMsg)
	}

	next := newPromise[Triple[T1, T2, T3]]()

	var (
		mu        sync.Mutex
		triple    Triple[T1, T2, T3]
		remaining = 3
		finished  bool
	)

	record := func(set func()) {
		mu.Lock()
		if finished {
			mu.Unlock()
			return
		}
		set()
		remaining--
		last := remaining == 0
		if last {
			finished = true
		}
		mu.Unlock()

		if last {
			next.fulfill(triple)
		}
	}
	rejectOnce := func(reason error) {
		mu.Lock()
		if finished {
			mu.Unlock()
			return
		}
		finished = true
		mu.Unlock()

		next.reject(reason)
	}

	p1.subscribe(func(v T1) { record(func() { triple.First = v }) }, rejectOnce)
	p2.subscribe(func(v T2) { record(func() { triple.Second = v }) }, rejectOnce)
	p3.subscribe(func(v T3) { record(func() { triple.Third = v }) }, rejectOnce)

	return next
}
