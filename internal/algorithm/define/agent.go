package define

// Agent is a node of the network with finite capacity and a mutable
// ordered task list. FaultA marks a functionally failed agent (a
// migration source, never a destination); FaultO is the overload-fault
// probability derived from individual survivability.
type Agent struct {
	ID       int
	Capacity float64
	Load     float64
	Tasks    []*Task
	GroupID  int
	FaultA   int
	FaultO   float64
}

// Faulted reports whether the agent is functionally failed.
func (a *Agent) Faulted() bool {
	return a.FaultA == 1
}

// AddTask appends a task to the agent's ordered list and updates Load.
func (a *Agent) AddTask(t *Task) {
	a.Tasks = append(a.Tasks, t)
	a.Load += t.Size
}

// RemoveTask removes the first occurrence of t by ID and updates Load.
// Reports false if the task was not found on this agent.
func (a *Agent) RemoveTask(t *Task) bool {
	for i, cur := range a.Tasks {
		if cur.ID == t.ID {
			a.Tasks = append(a.Tasks[:i], a.Tasks[i+1:]...)
			a.Load -= t.Size
			return true
		}
	}
	return false
}

// Clone deep-copies the agent, including its task slice (tasks
// themselves are immutable so their pointers may be shared).
func (a *Agent) Clone() *Agent {
	clone := *a
	clone.Tasks = make([]*Task, len(a.Tasks))
	copy(clone.Tasks, a.Tasks)
	return &clone
}
