package domain

// IsListCompleted reports whether a todo list counts as completed: it must
// hold at least one task and every task must be completed.
func IsListCompleted(tasks []Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, task := range tasks {
		if !task.IsCompleted {
			return false
		}
	}
	return true
}
