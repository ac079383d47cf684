//go:build !promisedebug

package promise

// settledAgain is called when fulfill or reject finds the promise already
// settled. In normal builds the second settlement attempt is silently
// ignored; build with the promisedebug tag to turn it into a panic.
func settledAgain(State) {}
