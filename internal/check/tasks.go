package check

import "github.com/ahrtr/gocontainer/set"

// Task is a feature number declared in the TASKS section.
type Task int

const (
	TaskChecks     Task = 1 // fatal semantic checks and syntax error reporting
	TaskExecute    Task = 2 // program execution
	TaskUninit     Task = 3 // uninitialized-use warning
	TaskDeadAssign Task = 4 // useless-assignment warning
)

// TaskSet is the immutable set of enabled tasks.
// The zero value enables nothing.
type TaskSet struct {
	s set.Interface
}

// NewTaskSet returns the set of the given task numbers. Unknown numbers are
// kept but have no effect. Elements are stored as Task; Has must be given a
// Task, never a plain int, or the lookup misses.
func NewTaskSet(nums ...int) TaskSet {
	s := set.New()
	for _, n := range nums {
		s.Add(Task(n))
	}
	return TaskSet{s: s}
}

// Has reports whether t is enabled.
func (ts TaskSet) Has(t Task) bool {
	return ts.s != nil && ts.s.Contains(t)
}

// List returns the enabled tasks among the recognized ones, ascending.
func (ts TaskSet) List() []Task {
	var out []Task
	for _, t := range []Task{TaskChecks, TaskExecute, TaskUninit, TaskDeadAssign} {
		if ts.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
