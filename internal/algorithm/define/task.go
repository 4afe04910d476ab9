package define

// Task is an immutable unit of execution load carried by an Agent.
// ArriveTime of -1 means the task was present in the system at t=0.
type Task struct {
	ID         int
	Size       float64
	ArriveTime int
}

// Present reports whether the task belongs to the initial (t=0) batch.
func (t *Task) Present() bool {
	return t.ArriveTime == -1
}

// Clone returns a value copy; Task is immutable after load so this is
// only needed when deep-cloning the enclosing world state.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}
