//go:build promisedebug

package promise

// settledAgain panics on a second settlement attempt. Settling a promise
// twice is a programmer error; this build flags the call site instead of
// ignoring it.
func settledAgain(s State) {
	panic("promise: settle attempted on an already " + string(s) + " promise")
}
