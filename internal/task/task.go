package task

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Task struct {
	ID               string   `db:"id"`
	Title            string   `db:"title"`
	Priority         Priority `db:"priority"`
	Completed        bool     `db:"completed"`
	AISuggested      bool     `db:"ai_suggested"`
	EstimatedMinutes int      `db:"estimated_minutes"`
}

// List is an ordered task list. Slice order is display order.
type List []Task

// Toggle flips Completed on the task with the given id and leaves every
// other task untouched. It returns false when no task has that id.
func (l List) Toggle(id string) bool {
	for i := range l {
		if l[i].ID == id {
			l[i].Completed = !l[i].Completed
			return true
		}
	}
	return false
}

func (l List) Find(id string) (Task, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// CompletedCount returns the number of completed tasks.
func (l List) CompletedCount() int {
	n := 0
	for _, t := range l {
		if t.Completed {
			n++
		}
	}
	return n
}

// Clone returns a copy that can be mutated without affecting l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}
