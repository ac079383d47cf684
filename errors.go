package promise

import "errors"

// ErrNilPromise rejects a chained promise whose continuation returned a nil
// promise to adopt.
var ErrNilPromise = errors.New("promise: cannot adopt a nil promise")

const (
	nilCallbackPanicMsg = "promise: the provided callback is nil"
	nilPromisePanicMsg  = "promise: the provided promise is nil"
)
