package async

// Executor runs collaborator calls off the caller's goroutine.
type Executor interface {
	Submit(task func()) error
}

// GoExecutor starts one goroutine per task.
type GoExecutor struct{}

func (GoExecutor) Submit(task func()) error {
	go task()
	return nil
}

// InlineExecutor runs the task before Submit returns. Tests use it to make
// state transitions deterministic.
type InlineExecutor struct{}

func (InlineExecutor) Submit(task func()) error {
	task()
	return nil
}
