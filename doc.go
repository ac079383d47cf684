// Package promise provides a one-shot container for the eventual outcome of
// an asynchronous operation: a value on fulfillment, or an error on rejection.
//
// A Promise has three states, and it is in exactly one of them at any time:
// Pending: the operation that corresponds to this Promise has not settled yet.
// Fulfilled: the operation finished successfully and the Promise holds a value.
// Rejected: the operation failed and the Promise holds an error.
//
// The first transition out of Pending is final. Later fulfill or reject
// attempts are ignored, and the stored value or error never changes.
//
// Consumers register interest through Then, Catch and Finally, before or
// after settlement, and each continuation runs asynchronously on an Executor.
// The package never blocks a calling goroutine on registration or settlement;
// waiting is expressed by chaining, or by selecting on Done.
//
// Rejections propagate forward through a chain until a handler recovers from
// them by producing a fulfilling promise (see CatchPromise). A Catch handler
// only observes the error; the chain stays rejected after it runs. A
// rejection that reaches the end of a chain unhandled is not logged and does
// not crash the program; surfacing it is the host application's concern.
//
// A pending Promise that nothing ever settles stays pending forever and keeps
// every continuation registered on it reachable. There is no cancellation.
package promise
