package promise

import "sync"

// Promise is a one-shot result cell. It is created pending, settles at most
// once, and afterwards hands its value or error to every continuation that
// was or will be registered on it.
//
// All methods are safe to call concurrently from any goroutine. The mutex
// guards the state, the stored result and both callback queues as one unit;
// it is never held while user code or another promise's lock is involved.
//
// The zero value is a promise that is never settled. Use New, Deferred,
// Resolve or Reject to construct promises.
type Promise[T any] struct {
	mu    sync.Mutex
	state State

	// value and err are written exactly once, before the state leaves
	// pending, and are immutable afterwards.
	value T
	err   error

	// continuations queued while pending, in registration order. Settling
	// drains one queue and discards both.
	fulfillCallbacks []func(T)
	rejectCallbacks  []func(error)

	// lazily created by Done, closed on settlement.
	done chan struct{}
}

// New constructs a pending promise and passes its settlement capability to
// fn, which is invoked synchronously before New returns. The capability never
// appears on the Promise itself, so fn is the only place it can escape from.
//
// Long-running work belongs on a goroutine or executor started by fn; New
// itself does not schedule anything.
func New[T any](fn func(resolve ResolveFunc[T], reject RejectFunc)) *Promise[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	p := newPromise[T]()
	fn(p.fulfill, p.reject)

	return p
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{state: StatePending}
}

// State reports the promise's current lifecycle phase.
func (p *Promise[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == "" {
		return StatePending
	}
	return p.state
}

// String implements fmt.Stringer. It exposes the state name only, never the
// value or error.
func (p *Promise[T]) String() string {
	return "Promise(" + string(p.State()) + ")"
}

// Done returns a channel that is closed once the promise settles. It exists
// for select integration; the settled value still travels through Then/Catch.
func (p *Promise[T]) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateFulfilled || p.state == StateRejected {
		return closedChan
	}
	if p.done == nil {
		p.done = make(chan struct{})
	}
	return p.done
}

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// fulfill transitions the promise to fulfilled and dispatches the queued
// fulfill continuations in registration order. It is a no-op on a promise
// that already left pending.
func (p *Promise[T]) fulfill(value T) {
	p.mu.Lock()
	if p.state != StatePending {
		p.mu.Unlock()
		settledAgain(p.state)
		return
	}

	p.state = StateFulfilled
	p.value = value
	callbacks := p.fulfillCallbacks
	p.fulfillCallbacks = nil
	p.rejectCallbacks = nil
	done := p.done
	p.mu.Unlock()

	if done != nil {
		close(done)
	}
	for _, callback := range callbacks {
		callback(value)
	}
}

// reject is the mirror of fulfill for the failure path.
func (p *Promise[T]) reject(reason error) {
	p.mu.Lock()
	if p.state != StatePending {
		p.mu.Unlock()
		settledAgain(p.state)
		return
	}

	p.state = StateRejected
	p.err = reason
	callbacks := p.rejectCallbacks
	p.fulfillCallbacks = nil
	p.rejectCallbacks = nil
	done := p.done
	p.mu.Unlock()

	if done != nil {
		close(done)
	}
	for _, callback := range callbacks {
		callback(reason)
	}
}

// subscribe registers one continuation pair. On a pending promise both are
// queued; on a settled one the matching side is invoked immediately, outside
// the lock. Both continuations are internal wrappers that hand the actual
// user callback to an executor, so nothing heavy ever runs here.
func (p *Promise[T]) subscribe(onFulfilled func(T), onRejected func(error)) {
	p.mu.Lock()
	switch p.state {
	case StateFulfilled:
		value := p.value
		p.mu.Unlock()
		onFulfilled(value)
	case StateRejected:
		reason := p.err
		p.mu.Unlock()
		onRejected(reason)
	default:
		p.fulfillCallbacks = append(p.fulfillCallbacks, onFulfilled)
		p.rejectCallbacks = append(p.rejectCallbacks, onRejected)
		p.mu.Unlock()
	}
}

// Then registers a fulfillment continuation on the DefaultExecutor and
// returns the promise of its outcome. A rejected receiver forwards its error
// to the returned promise without invoking onFulfilled.
func (p *Promise[T]) Then(onFulfilled FulfillHandler[T]) *Promise[T] {
	return p.ThenOn(DefaultExecutor, onFulfilled)
}

// ThenOn is Then with an explicit executor for the continuation body.
func (p *Promise[T]) ThenOn(exec Executor, onFulfilled FulfillHandler[T]) *Promise[T] {
	if onFulfilled == nil {
		panic(nilCallbackPanicMsg)
	}
	return then(p, exec, func(value T) (T, error) {
		return onFulfilled(value)
	})
}

// Catch registers a rejection observer on the DefaultExecutor. The returned
// promise is rejected with the same reason after onRejected runs; a fulfilled
// receiver passes its value through untouched. Recovery requires a handler
// that produces a fulfilling promise, see CatchPromise.
func (p *Promise[T]) Catch(onRejected RejectHandler) *Promise[T] {
	return p.CatchOn(DefaultExecutor, onRejected)
}

// CatchOn is Catch with an explicit executor for the observer body.
func (p *Promise[T]) CatchOn(exec Executor, onRejected RejectHandler) *Promise[T] {
	if onRejected == nil {
		panic(nilCallbackPanicMsg)
	}

	exec = executorOrDefault(exec)
	next := newPromise[T]()
	p.subscribe(
		func(value T) {
			exec.Exec(func() {
				next.fulfill(value)
			})
		},
		func(reason error) {
			exec.Exec(func() {
				onRejected(reason)
				next.reject(reason)
			})
		},
	)
	return next
}

// Finally registers fn to run on both settlement paths, on the
// DefaultExecutor. The settled value or error is forwarded untouched.
//
// Known limitation: fn cannot return a promise, so it cannot delay the
// forwarded settlement.
func (p *Promise[T]) Finally(fn FinallyHandler) *Promise[T] {
	return p.FinallyOn(DefaultExecutor, fn)
}

// FinallyOn is Finally with an explicit executor for fn.
func (p *Promise[T]) FinallyOn(exec Executor, fn FinallyHandler) *Promise[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	exec = executorOrDefault(exec)
	next := newPromise[T]()
	p.subscribe(
		func(value T) {
			exec.Exec(func() {
				fn()
				next.fulfill(value)
			})
		},
		func(reason error) {
			exec.Exec(func() {
				fn()
				next.reject(reason)
			})
		},
	)
	return next
}
