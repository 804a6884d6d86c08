package domain

// TouchedTasks returns the ids of tasks owning at least one block that
// touches day d.
func (c *Calendar) TouchedTasks(blocks []TimeBlock, d Date) map[uint64]struct{} {
	ids := make(map[uint64]struct{})
	for _, b := range blocks {
		if c.Touches(b, d) {
			ids[b.TaskID] = struct{}{}
		}
	}
	return ids
}

// VisibleTasks filters tasks down to those shown for day d: every incomplete
// task, and completed tasks that were worked on d. The order of tasks is
// preserved.
func (c *Calendar) VisibleTasks(tasks []Task, blocks []TimeBlock, d Date) []Task {
	touched := c.TouchedTasks(blocks, d)
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			visible = append(visible, t)
			continue
		}
		if _, ok := touched[t.ID]; ok {
			visible = append(visible, t)
		}
	}
	return visible
}
