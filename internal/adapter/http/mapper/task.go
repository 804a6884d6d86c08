package mapper

import (
	"dayplanner/internal/adapter/http/dto"
	"dayplanner/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}

	if task.CompletedAt != nil {
		value := formatTimestamp(*task.CompletedAt)
		item.CompletedAt = &value
	}

	return item
}

func ToCreatedTask(task domain.Task) dto.CreatedTask {
	return dto.CreatedTask{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}
