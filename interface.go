package promise

// State names the coarse lifecycle phase of a Promise. It is safe to expose
// in logs and diagnostics; it never carries the settled value or error.
type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// FulfillHandler consumes the fulfilled value and produces the value for the
// next promise in the chain. A non-nil error rejects the next promise.
type FulfillHandler[T any] func(value T) (result T, err error)

// RejectHandler observes the rejection reason. It cannot recover the chain;
// the next promise is rejected with the same reason after it returns.
type RejectHandler func(reason error)

// FinallyHandler runs on both settlement paths and sees neither the value
// nor the error.
type FinallyHandler func()

// Promiser is the consumer-facing surface of a Promise. It deliberately
// excludes any way to settle the promise; settlement capability travels
// separately, through New or Deferred.
type Promiser[T any] interface {
	Then(onFulfilled FulfillHandler[T]) *Promise[T]
	ThenOn(exec Executor, onFulfilled FulfillHandler[T]) *Promise[T]
	Catch(onRejected RejectHandler) *Promise[T]
	CatchOn(exec Executor, onRejected RejectHandler) *Promise[T]
	Finally(fn FinallyHandler) *Promise[T]
	FinallyOn(exec Executor, fn FinallyHandler) *Promise[T]
	State() State
	Done() <-chan struct{}
}
