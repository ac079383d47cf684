package promise

import "sync"

// Executor decides where a continuation body runs. The package dispatches
// continuations onto executors in registration order and never blocks on
// Exec; any ordering guarantee beyond submission order is the executor's.
//
// Executors are supplied and lifecycle-managed by the host. The two
// implementations in this package exist because almost every host wants one
// of them anyway.
type Executor interface {
	Exec(fn func())
}

// DefaultExecutor is used by every chaining call that does not name an
// executor explicitly.
var DefaultExecutor Executor = GoExecutor{}

// GoExecutor runs every task on its own goroutine.
type GoExecutor struct{}

func (GoExecutor) Exec(fn func()) {
	go fn()
}

// SerialExecutor runs tasks one at a time, in strict submission order, the
// way a serial dispatch queue does. Continuations registered on one promise
// through the same SerialExecutor therefore run in registration order.
type SerialExecutor struct {
	mu      sync.Mutex
	queue   []func()
	running bool
}

func NewSerialExecutor() *SerialExecutor {
	return &SerialExecutor{}
}

func (e *SerialExecutor) Exec(fn func()) {
	e.mu.Lock()
	e.queue = append(e.queue, fn)
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	go e.drain()
}

// drain owns the queue until it observes it empty. The running flag makes
// sure at most one drain goroutine exists per executor.
func (e *SerialExecutor) drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.running = false
			e.mu.Unlock()
			return
		}
		fn := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		fn()
	}
}

// executorOrDefault lets the ...On variants accept nil as "use the default".
func executorOrDefault(exec Executor) Executor {
	if exec == nil {
		return DefaultExecutor
	}
	return exec
}
